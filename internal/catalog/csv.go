package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Source CSV column headers. The catalog is scraped from a Korean foster
// platform, so the raw headers are Korean; ingestion maps them onto the
// normalized Record fields.
const (
	colName            = "이름"
	colStatus          = "현 상황"
	colCareType        = "임보종류"
	colRescueRegion    = "구조 지역"
	colGender          = "성별"
	colNeutered        = "중성화 여부"
	colBirth           = "출생시기"
	colWeight          = "몸무게"
	colHashtags        = "해시태그"
	colCareRegion      = "임보조건_지역"
	colCareDuration    = "임보조건_임보 기간"
	colCarePickup      = "임보조건_픽업"
	colCareAdditional  = "임보조건_기타 조건"
	colSuitableHomes   = "이런_집도_가능해요"
	colVaccination     = "건강정보_접종 현황"
	colExamination     = "건강정보_검사 현황"
	colMedicalHistory  = "건강정보_병력 사항"
	colHealthNotes     = "건강정보_기타 사항"
	colSupportProvided = "책임자_제공_사항"
	colDetailLink      = "상세링크"
	colSNS             = "SNS"
	colAnnouncementNo  = "공고번호"
)

// traitColumns maps behavior trait columns to their normalized trait names
var traitColumns = map[string]Trait{
	"참고용정보_배변":   TraitToiletTraining,
	"참고용정보_산책":   TraitWalkingNeeds,
	"참고용정보_짖음":   TraitBarking,
	"참고용정보_분리불안": TraitSeparationAnxiety,
	"참고용정보_털빠짐":  TraitShedding,
	"참고용정보_스킨십":  TraitAffection,
	"참고용정보_대인":   TraitHumanFriendly,
	"참고용정보_대견":   TraitDogFriendly,
	"참고용정보_외동":   TraitSoloLiving,
	"참고용정보_대묘":   TraitCatFriendly,
}

// statusAvailableRaw is the platform's label for a fosterable animal
const statusAvailableRaw = "임보가능"

// regionNationwideRaw is the platform's label for a nationwide care region
const regionNationwideRaw = "전국"

var (
	idPattern       = regexp.MustCompile(`/(\d+)/?$`)
	yearPattern     = regexp.MustCompile(`(\d{4})`)
	numberPattern   = regexp.MustCompile(`(\d+(?:\.\d+)?)`)
	integerPattern  = regexp.MustCompile(`(\d+)`)
	vaccinePattern  = regexp.MustCompile(`(\d+)차접종.*?(\d{2}\.\d{2}\.\d{2})`)
)

// LoadCSV reads and normalizes the animal catalog from a CSV file.
func LoadCSV(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	defer f.Close()

	records, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}
	return records, nil
}

// ReadCSV reads and normalizes catalog rows from r. The first row must be
// the header; unrecognized columns are ignored so the scraper can add
// fields without breaking ingestion.
func ReadCSV(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // tolerate ragged rows

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.TrimSpace(h)] = i
	}
	if _, ok := cols[colStatus]; !ok {
		return nil, fmt.Errorf("missing required column %q", colStatus)
	}

	var records []Record
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row: %w", err)
		}

		field := func(name string) string {
			idx, ok := cols[name]
			if !ok || idx >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[idx])
		}

		records = append(records, normalizeRow(field))
	}

	return records, nil
}

// rowField looks up a named column in the current row
type rowField func(name string) string

func normalizeRow(field rowField) Record {
	birthYear := extractBirthYear(field(colBirth))

	rec := Record{
		ID:           extractID(field(colDetailLink)),
		Name:         field(colName),
		Status:       normalizeStatus(field(colStatus)),
		CareType:     field(colCareType),
		RescueRegion: field(colRescueRegion),
		Gender:       normalizeGender(field(colGender)),
		Neutered:     normalizeNeutered(field(colNeutered)),
		BirthYear:    birthYear,
		Age:          ageFromBirthYear(birthYear),
		Weight:       extractWeight(field(colWeight)),
		Hashtags:     splitTags(field(colHashtags), "#"),
		CareConditions: CareConditions{
			Region:               normalizeCareRegion(field(colCareRegion)),
			DurationDays:         extractInt(field(colCareDuration)),
			PickupMethod:         field(colCarePickup),
			AdditionalConditions: optionalText(field(colCareAdditional)),
			SuitableHomes:        splitTags(field(colSuitableHomes), ""),
		},
		HealthInfo: HealthInfo{
			Vaccinations:    parseVaccinations(field(colVaccination)),
			Examination:     optionalText(field(colExamination)),
			MedicalHistory:  optionalText(field(colMedicalHistory)),
			AdditionalNotes: optionalText(field(colHealthNotes)),
		},
		SupportProvided: field(colSupportProvided),
		DetailLink:      field(colDetailLink),
		SNSLink:         optionalText(field(colSNS)),
		AnnouncementNo:  field(colAnnouncementNo),
	}

	traits := make(map[Trait]*int, len(traitColumns))
	for col, trait := range traitColumns {
		traits[trait] = parseTraitValue(field(col))
	}
	rec.BehaviorTraits = traits

	return rec
}

// extractID pulls the trailing numeric ID out of a detail link
func extractID(link string) *string {
	m := idPattern.FindStringSubmatch(link)
	if m == nil {
		return nil
	}
	id := m[1]
	return &id
}

// normalizeStatus maps the platform status label to the available sentinel.
// Other statuses pass through trimmed so the status gate can report them.
func normalizeStatus(s string) string {
	if s == statusAvailableRaw || strings.EqualFold(s, StatusAvailable) {
		return StatusAvailable
	}
	return s
}

// normalizeCareRegion maps the nationwide label to its sentinel
func normalizeCareRegion(s string) string {
	if s == regionNationwideRaw || strings.EqualFold(s, RegionNationwide) {
		return RegionNationwide
	}
	return s
}

func normalizeGender(s string) Gender {
	if s == "" {
		return ""
	}
	lower := strings.ToLower(s)
	switch {
	case strings.Contains(lower, "female") || strings.Contains(s, "여"):
		return GenderFemale
	case strings.Contains(lower, "male") || strings.Contains(s, "남"):
		return GenderMale
	}
	return GenderUnknown
}

func normalizeNeutered(s string) *bool {
	if s == "" {
		return nil
	}
	done := strings.Contains(s, "완")
	return &done
}

func extractBirthYear(s string) *int {
	m := yearPattern.FindStringSubmatch(s)
	if m == nil {
		return nil
	}
	year, err := strconv.Atoi(m[1])
	if err != nil {
		return nil
	}
	return &year
}

func ageFromBirthYear(birthYear *int) *float64 {
	if birthYear == nil {
		return nil
	}
	age := float64(time.Now().Year() - *birthYear)
	if age < 0 {
		return nil
	}
	return &age
}

func extractWeight(s string) *float64 {
	m := numberPattern.FindStringSubmatch(s)
	if m == nil {
		return nil
	}
	w, err := strconv.ParseFloat(m[1], 64)
	if err != nil || w < 0 {
		return nil
	}
	return &w
}

func extractInt(s string) *int {
	m := integerPattern.FindStringSubmatch(s)
	if m == nil {
		return nil
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return nil
	}
	return &n
}

// splitTags splits a comma-separated tag list, stripping the given prefix
// and dropping empty entries
func splitTags(s, prefix string) []string {
	if s == "" {
		return nil
	}
	var tags []string
	for _, part := range strings.Split(s, ",") {
		if prefix != "" {
			part = strings.ReplaceAll(part, prefix, "")
		}
		part = strings.TrimSpace(part)
		if part != "" {
			tags = append(tags, part)
		}
	}
	return tags
}

// parseVaccinations extracts vaccination rounds from the free-text block,
// one "N차접종 ... YY.MM.DD" entry per line
func parseVaccinations(s string) []VaccinationRecord {
	if s == "" {
		return nil
	}
	var out []VaccinationRecord
	for _, line := range strings.Split(s, "\n") {
		m := vaccinePattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		round, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		out = append(out, VaccinationRecord{Round: round, Date: m[2]})
	}
	return out
}

// parseTraitValue converts a behavior trait cell to its 1-5 value,
// returning nil for empty, malformed, or out-of-scale values
func parseTraitValue(s string) *int {
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	v := int(f)
	if v < TraitMin || v > TraitMax {
		return nil
	}
	return &v
}

func optionalText(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
