package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/seobin0224/petmatch/internal/catalog"
	"github.com/seobin0224/petmatch/internal/config"
	"github.com/seobin0224/petmatch/internal/database"
	"github.com/seobin0224/petmatch/internal/match"
	"github.com/seobin0224/petmatch/internal/output"
)

var filterCmd = &cobra.Command{
	Use:   "filter",
	Short: "Filter animals by hard constraints",
	Long: `Filter available animals by fixed constraints. Every given
constraint must hold; animals missing data for a bounded constraint
(age, weight, neutered) are excluded, while unknown behavior traits
are not held against an animal.

Constraints can come from flags, from a JSON file, or both (flags
override the file).

Examples:
  petmatch filter --care-region=서울 --max-age=5
  petmatch filter --trait="barking<=2" --trait="human_friendly>=4"
  petmatch filter --hashtag=조용함 --neutered --stats
  petmatch filter --criteria=my-constraints.json --export=matches.csv`,
	RunE: runFilter,
}

var (
	filterCriteriaFile   string
	filterRegions        []string
	filterGenders        []string
	filterCareTypes      []string
	filterMinAge         float64
	filterMaxAge         float64
	filterMinWeight      float64
	filterMaxWeight      float64
	filterNeutered       bool
	filterHashtags       []string
	filterHomes          []string
	filterTraits         []string
	filterMinVacc        int
	filterNoHistory      bool
	filterExcludeHealth  []string
	filterMaxDuration    int
	filterPickup         string
	filterExcludeConds   []string
	filterShowStats      bool
	filterExportPath     string
	filterLimit          int
)

func init() {
	rootCmd.AddCommand(filterCmd)

	filterCmd.Flags().StringVar(&filterCriteriaFile, "criteria", "", "JSON file with filter constraints")
	filterCmd.Flags().StringSliceVar(&filterRegions, "care-region", nil, "Care region (repeatable, any matches)")
	filterCmd.Flags().StringSliceVar(&filterGenders, "gender", nil, "Gender (male, female)")
	filterCmd.Flags().StringSliceVar(&filterCareTypes, "care-type", nil, "Care type (repeatable)")
	filterCmd.Flags().Float64Var(&filterMinAge, "min-age", 0, "Minimum age in years")
	filterCmd.Flags().Float64Var(&filterMaxAge, "max-age", 0, "Maximum age in years")
	filterCmd.Flags().Float64Var(&filterMinWeight, "min-weight", 0, "Minimum weight in kg")
	filterCmd.Flags().Float64Var(&filterMaxWeight, "max-weight", 0, "Maximum weight in kg")
	filterCmd.Flags().BoolVar(&filterNeutered, "neutered", false, "Require a known neutering status of yes/no")
	filterCmd.Flags().StringSliceVar(&filterHashtags, "hashtag", nil, "Personality hashtag (repeatable, any matches)")
	filterCmd.Flags().StringSliceVar(&filterHomes, "home", nil, "Suitable home type (repeatable, any matches)")
	filterCmd.Flags().StringSliceVar(&filterTraits, "trait", nil, `Behavior trait constraint, e.g. "barking<=2" (repeatable)`)
	filterCmd.Flags().IntVar(&filterMinVacc, "min-vaccinations", 0, "Minimum vaccination rounds")
	filterCmd.Flags().BoolVar(&filterNoHistory, "no-medical-history", false, "Exclude animals with recorded medical history")
	filterCmd.Flags().StringSliceVar(&filterExcludeHealth, "exclude-health", nil, "Exclude animals whose medical history mentions this (repeatable)")
	filterCmd.Flags().IntVar(&filterMaxDuration, "max-duration", 0, "Maximum foster duration in days")
	filterCmd.Flags().StringVar(&filterPickup, "pickup", "", "Required pickup method (substring of the animal's pickup text)")
	filterCmd.Flags().StringSliceVar(&filterExcludeConds, "exclude-condition", nil, "Exclude animals whose extra conditions mention this (repeatable)")
	filterCmd.Flags().BoolVar(&filterShowStats, "stats", false, "Print result distributions instead of the full list")
	filterCmd.Flags().StringVar(&filterExportPath, "export", "", "Write results to a CSV or JSON file (by extension)")
	filterCmd.Flags().IntVar(&filterLimit, "limit", 0, "Maximum number of results")
}

func runFilter(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	criteria, err := buildCriteria(cmd)
	if err != nil {
		return err
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	records, err := db.ListRecords(ctx, database.ListOptions{})
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	matched, err := match.Apply(records, criteria)
	if err != nil {
		return err
	}

	if filterLimit > 0 && len(matched) > filterLimit {
		matched = matched[:filterLimit]
	}

	if filterExportPath != "" {
		if err := exportResults(filterExportPath, matched); err != nil {
			return err
		}
		fmt.Printf("Wrote %d animals to %s\n", len(matched), filterExportPath)
		return nil
	}

	if filterShowStats {
		return output.Output(outputFmt, catalog.SummarizeResults(matched))
	}
	return output.Output(outputFmt, matched)
}

// buildCriteria merges the criteria file with flag overrides
func buildCriteria(cmd *cobra.Command) (match.Criteria, error) {
	var criteria match.Criteria

	if filterCriteriaFile != "" {
		data, err := os.ReadFile(filterCriteriaFile)
		if err != nil {
			return criteria, fmt.Errorf("failed to read criteria file: %w", err)
		}
		if err := json.Unmarshal(data, &criteria); err != nil {
			return criteria, fmt.Errorf("failed to parse criteria file: %w", err)
		}
	}

	if len(filterRegions) > 0 {
		criteria.Regions = filterRegions
	}
	if len(filterGenders) > 0 {
		criteria.Genders = nil
		for _, g := range filterGenders {
			criteria.Genders = append(criteria.Genders, catalog.Gender(g))
		}
	}
	if len(filterCareTypes) > 0 {
		criteria.CareTypes = filterCareTypes
	}
	if cmd.Flags().Changed("min-age") || cmd.Flags().Changed("max-age") {
		criteria.AgeRange = rangeFromFlags(cmd, "min-age", filterMinAge, "max-age", filterMaxAge)
	}
	if cmd.Flags().Changed("min-weight") || cmd.Flags().Changed("max-weight") {
		criteria.WeightRange = rangeFromFlags(cmd, "min-weight", filterMinWeight, "max-weight", filterMaxWeight)
	}
	if cmd.Flags().Changed("neutered") {
		criteria.Neutered = &filterNeutered
	}
	if len(filterHashtags) > 0 {
		criteria.Hashtags = filterHashtags
	}
	if len(filterHomes) > 0 {
		criteria.SuitableHomes = filterHomes
	}

	if len(filterTraits) > 0 {
		criteria.BehaviorTraits = map[catalog.Trait]match.TraitRequirement{}
		for _, s := range filterTraits {
			trait, req, err := parseTraitFlag(s)
			if err != nil {
				return criteria, err
			}
			criteria.BehaviorTraits[trait] = req
		}
	}

	if cmd.Flags().Changed("min-vaccinations") || filterNoHistory || len(filterExcludeHealth) > 0 {
		health := &match.HealthRequirements{
			NoMedicalHistory:  filterNoHistory,
			ExcludeConditions: filterExcludeHealth,
		}
		if cmd.Flags().Changed("min-vaccinations") {
			health.MinVaccinations = &filterMinVacc
		}
		criteria.Health = health
	}

	if cmd.Flags().Changed("max-duration") || filterPickup != "" || len(filterExcludeConds) > 0 {
		care := &match.CarePreferences{
			PickupMethod:      filterPickup,
			ExcludeConditions: filterExcludeConds,
		}
		if cmd.Flags().Changed("max-duration") {
			care.MaxDurationDays = &filterMaxDuration
		}
		criteria.Care = care
	}

	return criteria, nil
}

func rangeFromFlags(cmd *cobra.Command, minName string, minVal float64, maxName string, maxVal float64) *match.Range {
	r := &match.Range{}
	if cmd.Flags().Changed(minName) {
		r.Min = &minVal
	}
	if cmd.Flags().Changed(maxName) {
		r.Max = &maxVal
	}
	return r
}

// exportResults writes records or candidates to a file, picking the codec
// from the extension
func exportResults(path string, data interface{}) error {
	if strings.HasSuffix(path, ".json") {
		return output.WriteJSONFile(path, data)
	}
	return output.WriteCSVFile(path, data)
}
