package database

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/seobin0224/petmatch/internal/catalog"
)

// ImportState tracks the latest catalog import
type ImportState struct {
	ID              int        `json:"id"`
	LastImportAt    *time.Time `json:"last_import_at,omitempty"`
	SourcePath      *string    `json:"source_path,omitempty"`
	RecordsImported int        `json:"records_imported"`
}

// ListOptions contains options for listing animals
type ListOptions struct {
	Status        *string
	RescueRegion  *string
	CareRegion    *string
	Gender        *catalog.Gender
	CareType      *string
	AvailableOnly bool
	Limit         int
	Offset        int
}

// animalRow carries the scanned nullable columns for one animal before
// conversion back to a catalog.Record
type animalRow struct {
	id               string
	name             string
	status           string
	careType         sql.NullString
	rescueRegion     sql.NullString
	gender           sql.NullString
	neutered         sql.NullBool
	birthYear        sql.NullInt64
	age              sql.NullFloat64
	weight           sql.NullFloat64
	hashtags         sql.NullString
	careRegion       sql.NullString
	careDurationDays sql.NullInt64
	carePickupMethod sql.NullString
	careAdditional   sql.NullString
	suitableHomes    sql.NullString
	vaccinations     sql.NullString
	examination      sql.NullString
	medicalHistory   sql.NullString
	healthNotes      sql.NullString
	behaviorTraits   sql.NullString
	supportProvided  sql.NullString
	detailLink       sql.NullString
	snsLink          sql.NullString
	announcementNo   sql.NullString
	importedAt       time.Time
}

func (a *animalRow) record() (catalog.Record, error) {
	rec := catalog.Record{
		Name:            a.name,
		Status:          a.status,
		CareType:        a.careType.String,
		RescueRegion:    a.rescueRegion.String,
		Gender:          catalog.Gender(a.gender.String),
		SupportProvided: a.supportProvided.String,
		DetailLink:      a.detailLink.String,
		SNSLink:         StringPtr(a.snsLink),
		AnnouncementNo:  a.announcementNo.String,
	}

	id := a.id
	rec.ID = &id
	rec.Neutered = BoolPtr(a.neutered)
	rec.BirthYear = IntPtr(a.birthYear)
	rec.Age = Float64Ptr(a.age)
	rec.Weight = Float64Ptr(a.weight)

	rec.CareConditions = catalog.CareConditions{
		Region:               a.careRegion.String,
		DurationDays:         IntPtr(a.careDurationDays),
		PickupMethod:         a.carePickupMethod.String,
		AdditionalConditions: StringPtr(a.careAdditional),
	}
	rec.HealthInfo = catalog.HealthInfo{
		Examination:     StringPtr(a.examination),
		MedicalHistory:  StringPtr(a.medicalHistory),
		AdditionalNotes: StringPtr(a.healthNotes),
	}

	if err := decodeJSON(a.hashtags, &rec.Hashtags); err != nil {
		return rec, fmt.Errorf("animal %s: bad hashtags: %w", a.id, err)
	}
	if err := decodeJSON(a.suitableHomes, &rec.CareConditions.SuitableHomes); err != nil {
		return rec, fmt.Errorf("animal %s: bad suitable homes: %w", a.id, err)
	}
	if err := decodeJSON(a.vaccinations, &rec.HealthInfo.Vaccinations); err != nil {
		return rec, fmt.Errorf("animal %s: bad vaccinations: %w", a.id, err)
	}
	if err := decodeJSON(a.behaviorTraits, &rec.BehaviorTraits); err != nil {
		return rec, fmt.Errorf("animal %s: bad behavior traits: %w", a.id, err)
	}

	return rec, nil
}

// decodeJSON unmarshals a nullable JSON column, leaving dst untouched when
// the column is NULL or empty
func decodeJSON(ns sql.NullString, dst interface{}) error {
	if !ns.Valid || ns.String == "" {
		return nil
	}
	return json.Unmarshal([]byte(ns.String), dst)
}

// encodeJSON marshals a list-valued field for storage, mapping empty values
// to NULL
func encodeJSON(v interface{}) (sql.NullString, error) {
	switch t := v.(type) {
	case []string:
		if len(t) == 0 {
			return sql.NullString{}, nil
		}
	case []catalog.VaccinationRecord:
		if len(t) == 0 {
			return sql.NullString{}, nil
		}
	case map[catalog.Trait]*int:
		if len(t) == 0 {
			return sql.NullString{}, nil
		}
	}

	data, err := json.Marshal(v)
	if err != nil {
		return sql.NullString{}, err
	}
	return sql.NullString{String: string(data), Valid: true}, nil
}

// NullString is a helper to convert *string to sql.NullString
func NullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

// NullText maps the empty string to NULL
func NullText(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// NullFloat64 is a helper to convert *float64 to sql.NullFloat64
func NullFloat64(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}

// NullInt64 is a helper to convert *int to sql.NullInt64
func NullInt64(i *int) sql.NullInt64 {
	if i == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*i), Valid: true}
}

// NullBool is a helper to convert *bool to sql.NullBool
func NullBool(b *bool) sql.NullBool {
	if b == nil {
		return sql.NullBool{}
	}
	return sql.NullBool{Bool: *b, Valid: true}
}

// StringPtr converts sql.NullString to *string
func StringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	return &ns.String
}

// Float64Ptr converts sql.NullFloat64 to *float64
func Float64Ptr(nf sql.NullFloat64) *float64 {
	if !nf.Valid {
		return nil
	}
	return &nf.Float64
}

// IntPtr converts sql.NullInt64 to *int
func IntPtr(ni sql.NullInt64) *int {
	if !ni.Valid {
		return nil
	}
	v := int(ni.Int64)
	return &v
}

// BoolPtr converts sql.NullBool to *bool
func BoolPtr(nb sql.NullBool) *bool {
	if !nb.Valid {
		return nil
	}
	return &nb.Bool
}
