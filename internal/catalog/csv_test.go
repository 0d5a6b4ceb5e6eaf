package catalog

import (
	"strings"
	"testing"
	"time"
)

func TestReadCSV(t *testing.T) {
	data := "이름,현 상황,성별,중성화 여부,출생시기,몸무게,해시태그,임보조건_지역,임보조건_임보 기간,상세링크,참고용정보_짖음\n" +
		"보리,임보가능,여아,완료,2021년생,8.5kg,\"#사람좋아,#조용함\",서울,90일 이상,https://example.com/animals/412/,2\n" +
		"두부,입양완료,남아,,,,,전국,,https://example.com/animals/88,\n"

	records, err := ReadCSV(strings.NewReader(data))
	if err != nil {
		t.Fatalf("ReadCSV() error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}

	bori := records[0]
	if bori.Name != "보리" {
		t.Errorf("expected name 보리, got %s", bori.Name)
	}
	if bori.Status != StatusAvailable {
		t.Errorf("expected status %q, got %q", StatusAvailable, bori.Status)
	}
	if bori.Gender != GenderFemale {
		t.Errorf("expected female, got %s", bori.Gender)
	}
	if bori.Neutered == nil || !*bori.Neutered {
		t.Error("expected neutered=true")
	}
	if bori.BirthYear == nil || *bori.BirthYear != 2021 {
		t.Errorf("expected birth year 2021, got %v", bori.BirthYear)
	}
	wantAge := float64(time.Now().Year() - 2021)
	if bori.Age == nil || *bori.Age != wantAge {
		t.Errorf("expected age %g, got %v", wantAge, bori.Age)
	}
	if bori.Weight == nil || *bori.Weight != 8.5 {
		t.Errorf("expected weight 8.5, got %v", bori.Weight)
	}
	if len(bori.Hashtags) != 2 || bori.Hashtags[0] != "사람좋아" || bori.Hashtags[1] != "조용함" {
		t.Errorf("unexpected hashtags: %v", bori.Hashtags)
	}
	if bori.CareConditions.Region != "서울" {
		t.Errorf("expected care region 서울, got %s", bori.CareConditions.Region)
	}
	if bori.CareConditions.DurationDays == nil || *bori.CareConditions.DurationDays != 90 {
		t.Errorf("expected duration 90, got %v", bori.CareConditions.DurationDays)
	}
	if bori.ID == nil || *bori.ID != "412" {
		t.Errorf("expected ID 412, got %v", bori.ID)
	}
	if v, ok := bori.Trait(TraitBarking); !ok || v != 2 {
		t.Errorf("expected barking=2, got %d (known=%v)", v, ok)
	}

	dubu := records[1]
	if dubu.Status == StatusAvailable {
		t.Error("adopted animal should not normalize to available")
	}
	if dubu.Gender != GenderMale {
		t.Errorf("expected male, got %s", dubu.Gender)
	}
	if dubu.Neutered != nil {
		t.Error("expected unknown neutered status")
	}
	if dubu.Age != nil || dubu.Weight != nil {
		t.Error("expected unknown age and weight")
	}
	if dubu.CareConditions.Region != RegionNationwide {
		t.Errorf("expected nationwide region, got %s", dubu.CareConditions.Region)
	}
	if dubu.ID == nil || *dubu.ID != "88" {
		t.Errorf("expected ID 88, got %v", dubu.ID)
	}
	if _, ok := dubu.Trait(TraitBarking); ok {
		t.Error("expected unknown barking trait")
	}
}

func TestReadCSVMissingStatusColumn(t *testing.T) {
	data := "이름,성별\n보리,여아\n"

	if _, err := ReadCSV(strings.NewReader(data)); err == nil {
		t.Error("expected error for missing status column")
	}
}

func TestNormalizeStatus(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"임보가능", StatusAvailable},
		{"available", StatusAvailable},
		{"Available", StatusAvailable},
		{"입양완료", "입양완료"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := normalizeStatus(tt.input); got != tt.expected {
			t.Errorf("normalizeStatus(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestNormalizeGender(t *testing.T) {
	tests := []struct {
		input    string
		expected Gender
	}{
		{"여아", GenderFemale},
		{"남아", GenderMale},
		{"female", GenderFemale},
		{"male", GenderMale},
		{"모름", GenderUnknown},
		{"", ""},
	}

	for _, tt := range tests {
		if got := normalizeGender(tt.input); got != tt.expected {
			t.Errorf("normalizeGender(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestExtractID(t *testing.T) {
	tests := []struct {
		link     string
		expected string // empty means nil
	}{
		{"https://example.com/animals/412/", "412"},
		{"https://example.com/animals/412", "412"},
		{"https://example.com/animals/", ""},
		{"", ""},
	}

	for _, tt := range tests {
		got := extractID(tt.link)
		if tt.expected == "" {
			if got != nil {
				t.Errorf("extractID(%q) = %v, want nil", tt.link, *got)
			}
			continue
		}
		if got == nil || *got != tt.expected {
			t.Errorf("extractID(%q) = %v, want %q", tt.link, got, tt.expected)
		}
	}
}

func TestExtractWeight(t *testing.T) {
	tests := []struct {
		input    string
		expected float64 // -1 means nil
	}{
		{"8.5kg", 8.5},
		{"약 3kg", 3},
		{"20", 20},
		{"몸무게 미상", -1},
		{"", -1},
	}

	for _, tt := range tests {
		got := extractWeight(tt.input)
		if tt.expected < 0 {
			if got != nil {
				t.Errorf("extractWeight(%q) = %v, want nil", tt.input, *got)
			}
			continue
		}
		if got == nil || *got != tt.expected {
			t.Errorf("extractWeight(%q) = %v, want %g", tt.input, got, tt.expected)
		}
	}
}

func TestParseVaccinations(t *testing.T) {
	text := "1차접종 완료 24.03.15\n2차접종 완료 24.04.12\n항체검사 예정"

	vaccs := parseVaccinations(text)
	if len(vaccs) != 2 {
		t.Fatalf("expected 2 vaccinations, got %d", len(vaccs))
	}
	if vaccs[0].Round != 1 || vaccs[0].Date != "24.03.15" {
		t.Errorf("unexpected first vaccination: %+v", vaccs[0])
	}
	if vaccs[1].Round != 2 || vaccs[1].Date != "24.04.12" {
		t.Errorf("unexpected second vaccination: %+v", vaccs[1])
	}

	if got := parseVaccinations(""); got != nil {
		t.Errorf("expected nil for empty text, got %v", got)
	}
}

func TestParseTraitValue(t *testing.T) {
	tests := []struct {
		input    string
		expected int // 0 means nil
	}{
		{"3", 3},
		{"5.0", 5},
		{"1", 1},
		{"0", 0},
		{"6", 0},
		{"높음", 0},
		{"", 0},
	}

	for _, tt := range tests {
		got := parseTraitValue(tt.input)
		if tt.expected == 0 {
			if got != nil {
				t.Errorf("parseTraitValue(%q) = %v, want nil", tt.input, *got)
			}
			continue
		}
		if got == nil || *got != tt.expected {
			t.Errorf("parseTraitValue(%q) = %v, want %d", tt.input, got, tt.expected)
		}
	}
}

func TestSplitTags(t *testing.T) {
	tests := []struct {
		input    string
		prefix   string
		expected []string
	}{
		{"#사람좋아,#조용함", "#", []string{"사람좋아", "조용함"}},
		{"아파트, 1인 가구", "", []string{"아파트", "1인 가구"}},
		{"", "#", nil},
		{" , ", "#", nil},
	}

	for _, tt := range tests {
		got := splitTags(tt.input, tt.prefix)
		if len(got) != len(tt.expected) {
			t.Errorf("splitTags(%q) = %v, want %v", tt.input, got, tt.expected)
			continue
		}
		for i := range got {
			if got[i] != tt.expected[i] {
				t.Errorf("splitTags(%q)[%d] = %q, want %q", tt.input, i, got[i], tt.expected[i])
			}
		}
	}
}
