package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/seobin0224/petmatch/internal/catalog"
	"github.com/seobin0224/petmatch/internal/match"
)

var recordHeader = []string{
	"id", "name", "status", "care_type", "rescue_region", "gender",
	"neutered", "age", "weight", "hashtags", "care_region",
	"care_duration_days", "care_pickup_method", "suitable_homes",
	"vaccination_count", "detail_link",
}

// RecordsCSV writes records as CSV to the given writer
func RecordsCSV(w io.Writer, records []catalog.Record) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(recordHeader); err != nil {
		return err
	}
	for i := range records {
		if err := cw.Write(recordRow(&records[i])); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// CandidatesCSV writes scored candidates as CSV, one match_score column
// ahead of the record fields
func CandidatesCSV(w io.Writer, candidates []match.Candidate) error {
	cw := csv.NewWriter(w)

	header := append([]string{"match_score"}, recordHeader...)
	if err := cw.Write(header); err != nil {
		return err
	}
	for i := range candidates {
		c := &candidates[i]
		row := append([]string{strconv.FormatFloat(c.MatchScore, 'f', 3, 64)}, recordRow(&c.Record)...)
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteCSVFile writes records or candidates as CSV to a file
func WriteCSVFile(path string, data interface{}) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	switch v := data.(type) {
	case []catalog.Record:
		err = RecordsCSV(f, v)
	case []match.Candidate:
		err = CandidatesCSV(f, v)
	default:
		return fmt.Errorf("unsupported data type for CSV export: %T", data)
	}
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func recordRow(r *catalog.Record) []string {
	return []string{
		formatID(r.ID),
		r.Name,
		r.Status,
		r.CareType,
		r.RescueRegion,
		string(r.Gender),
		csvBool(r.Neutered),
		csvFloat(r.Age),
		csvFloat(r.Weight),
		strings.Join(r.Hashtags, ";"),
		r.CareConditions.Region,
		csvInt(r.CareConditions.DurationDays),
		r.CareConditions.PickupMethod,
		strings.Join(r.CareConditions.SuitableHomes, ";"),
		strconv.Itoa(r.VaccinationCount()),
		r.DetailLink,
	}
}

func csvBool(b *bool) string {
	if b == nil {
		return ""
	}
	return strconv.FormatBool(*b)
}

func csvFloat(f *float64) string {
	if f == nil {
		return ""
	}
	return strconv.FormatFloat(*f, 'f', -1, 64)
}

func csvInt(i *int) string {
	if i == nil {
		return ""
	}
	return strconv.Itoa(*i)
}
