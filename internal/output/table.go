package output

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/seobin0224/petmatch/internal/catalog"
	"github.com/seobin0224/petmatch/internal/database"
	"github.com/seobin0224/petmatch/internal/match"
)

// Table writes data as a formatted table to stdout
func Table(data interface{}) error {
	return TableTo(os.Stdout, data)
}

// TableTo writes data as a formatted table to the given writer
func TableTo(w io.Writer, data interface{}) error {
	switch v := data.(type) {
	case []catalog.Record:
		return recordsTable(w, v)
	case []match.Candidate:
		return candidatesTable(w, v)
	case *catalog.Record:
		return RecordDetail(w, v)
	case catalog.Stats:
		return statsTable(w, v)
	case catalog.ResultStats:
		return resultStatsTable(w, v)
	case catalog.Metadata:
		return metadataTable(w, v)
	case *database.ImportState:
		return importStateTable(w, v)
	default:
		return fmt.Errorf("unsupported data type for table output: %T", data)
	}
}

func recordsTable(w io.Writer, records []catalog.Record) error {
	if len(records) == 0 {
		fmt.Fprintln(w, "No animals found.")
		return nil
	}

	tbl := tablewriter.NewTable(w)
	tbl.Header("ID", "NAME", "GENDER", "AGE", "WEIGHT", "CARE REGION", "CARE TYPE", "STATUS")

	for i := range records {
		r := &records[i]
		tbl.Append(
			formatID(r.ID),
			truncate(r.Name, 16),
			string(r.Gender),
			formatAge(r.Age),
			formatWeight(r.Weight),
			truncate(r.CareConditions.Region, 14),
			truncate(r.CareType, 14),
			r.Status,
		)
	}

	if err := tbl.Render(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\n%d animals\n", len(records))
	return nil
}

func candidatesTable(w io.Writer, candidates []match.Candidate) error {
	if len(candidates) == 0 {
		fmt.Fprintln(w, "No matches found.")
		return nil
	}

	tbl := tablewriter.NewTable(w)
	tbl.Header("SCORE", "ID", "NAME", "AGE", "WEIGHT", "CARE REGION", "HASHTAGS")

	for i := range candidates {
		c := &candidates[i]
		tbl.Append(
			fmt.Sprintf("%.2f", c.MatchScore),
			formatID(c.ID),
			truncate(c.Name, 16),
			formatAge(c.Age),
			formatWeight(c.Weight),
			truncate(c.CareConditions.Region, 14),
			truncate(strings.Join(c.Hashtags, ", "), 30),
		)
	}

	if err := tbl.Render(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\n%d matches\n", len(candidates))
	return nil
}

// RecordDetail prints the full profile of one animal
func RecordDetail(w io.Writer, r *catalog.Record) error {
	fmt.Fprintf(w, "Name:          %s\n", r.Name)
	fmt.Fprintf(w, "ID:            %s\n", formatID(r.ID))
	fmt.Fprintf(w, "Status:        %s\n", r.Status)
	if r.CareType != "" {
		fmt.Fprintf(w, "Care type:     %s\n", r.CareType)
	}
	if r.Gender != "" {
		fmt.Fprintf(w, "Gender:        %s\n", r.Gender)
	}
	if r.Neutered != nil {
		fmt.Fprintf(w, "Neutered:      %s\n", formatBool(*r.Neutered))
	}
	fmt.Fprintf(w, "Age:           %s\n", formatAge(r.Age))
	fmt.Fprintf(w, "Weight:        %s\n", formatWeight(r.Weight))
	if r.RescueRegion != "" {
		fmt.Fprintf(w, "Rescue region: %s\n", r.RescueRegion)
	}
	if len(r.Hashtags) > 0 {
		fmt.Fprintf(w, "Hashtags:      %s\n", strings.Join(r.Hashtags, ", "))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Care conditions:")
	if r.CareConditions.Region != "" {
		fmt.Fprintf(w, "  Region:      %s\n", r.CareConditions.Region)
	}
	if r.CareConditions.DurationDays != nil {
		fmt.Fprintf(w, "  Duration:    %d days\n", *r.CareConditions.DurationDays)
	}
	if r.CareConditions.PickupMethod != "" {
		fmt.Fprintf(w, "  Pickup:      %s\n", r.CareConditions.PickupMethod)
	}
	if r.CareConditions.AdditionalConditions != nil {
		fmt.Fprintf(w, "  Conditions:  %s\n", *r.CareConditions.AdditionalConditions)
	}
	if len(r.CareConditions.SuitableHomes) > 0 {
		fmt.Fprintf(w, "  Homes:       %s\n", strings.Join(r.CareConditions.SuitableHomes, ", "))
	}

	if r.VaccinationCount() > 0 || r.HealthInfo.MedicalHistory != nil || r.HealthInfo.Examination != nil {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Health:")
		for _, v := range r.HealthInfo.Vaccinations {
			fmt.Fprintf(w, "  Vaccination: round %d (%s)\n", v.Round, v.Date)
		}
		if r.HealthInfo.Examination != nil {
			fmt.Fprintf(w, "  Examination: %s\n", *r.HealthInfo.Examination)
		}
		if r.HealthInfo.MedicalHistory != nil {
			fmt.Fprintf(w, "  History:     %s\n", *r.HealthInfo.MedicalHistory)
		}
	}

	known := false
	for _, trait := range catalog.AllTraits {
		if _, ok := r.Trait(trait); ok {
			known = true
			break
		}
	}
	if known {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Behavior traits (1-5):")
		for _, trait := range catalog.AllTraits {
			if v, ok := r.Trait(trait); ok {
				fmt.Fprintf(w, "  %-20s %d\n", trait, v)
			}
		}
	}

	if r.DetailLink != "" {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Link: %s\n", r.DetailLink)
	}

	return nil
}

func statsTable(w io.Writer, s catalog.Stats) error {
	fmt.Fprintln(w, "Catalog Statistics")
	fmt.Fprintln(w, strings.Repeat("-", 30))
	fmt.Fprintf(w, "Total animals:       %d\n", s.Total)
	fmt.Fprintf(w, "Available:           %d\n", s.Available)
	if s.AverageAge != nil {
		fmt.Fprintf(w, "Average age:         %.1f years\n", *s.AverageAge)
	}
	if s.AverageWeight != nil {
		fmt.Fprintf(w, "Average weight:      %.1f kg\n", *s.AverageWeight)
	}

	printDistribution(w, "By gender", s.ByGender)
	printDistribution(w, "By care type", s.ByCareType)
	printDistribution(w, "By rescue region", s.ByRegion)

	return nil
}

func resultStatsTable(w io.Writer, s catalog.ResultStats) error {
	fmt.Fprintf(w, "Matched animals: %d\n", s.Total)

	printDistribution(w, "By gender", s.ByGender)
	printDistribution(w, "By age group", s.ByAgeGroup)
	printDistribution(w, "By size", s.BySize)
	printDistribution(w, "By care type", s.ByCareType)
	printDistribution(w, "By rescue region", s.ByRegion)

	return nil
}

func metadataTable(w io.Writer, m catalog.Metadata) error {
	printList(w, "Regions", m.Regions)
	printList(w, "Genders", m.Genders)
	printList(w, "Care types", m.CareTypes)
	printList(w, "Hashtags", m.Hashtags)
	printList(w, "Suitable homes", m.SuitableHomes)
	return nil
}

func importStateTable(w io.Writer, s *database.ImportState) error {
	if s.LastImportAt == nil {
		fmt.Fprintln(w, "No catalog imported yet.")
		return nil
	}

	fmt.Fprintf(w, "Last import:  %s\n", s.LastImportAt.Format("Jan 02, 2006 15:04"))
	if s.SourcePath != nil {
		fmt.Fprintf(w, "Source:       %s\n", *s.SourcePath)
	}
	fmt.Fprintf(w, "Records:      %d\n", s.RecordsImported)
	return nil
}

// printDistribution prints a count map sorted by descending count
func printDistribution(w io.Writer, title string, counts map[string]int) {
	if len(counts) == 0 {
		return
	}

	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if counts[keys[i]] != counts[keys[j]] {
			return counts[keys[i]] > counts[keys[j]]
		}
		return keys[i] < keys[j]
	})

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s:\n", title)
	for _, k := range keys {
		fmt.Fprintf(w, "  %-20s %d\n", k, counts[k])
	}
}

func printList(w io.Writer, title string, values []string) {
	if len(values) == 0 {
		return
	}
	fmt.Fprintf(w, "%s (%d):\n", title, len(values))
	fmt.Fprintf(w, "  %s\n", strings.Join(values, ", "))
	fmt.Fprintln(w)
}

func formatID(id *string) string {
	if id == nil {
		return "-"
	}
	return *id
}

func formatAge(age *float64) string {
	if age == nil {
		return "?"
	}
	return fmt.Sprintf("%gy", *age)
}

func formatWeight(weight *float64) string {
	if weight == nil {
		return "?"
	}
	return fmt.Sprintf("%gkg", *weight)
}

func formatBool(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// truncate shortens s to at most max runes. It counts runes, not bytes,
// so Korean names and regions are never cut mid-character.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
