package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/seobin0224/petmatch/internal/catalog"
	"github.com/seobin0224/petmatch/internal/config"
	"github.com/seobin0224/petmatch/internal/database"
	"github.com/seobin0224/petmatch/internal/match"
	"github.com/seobin0224/petmatch/internal/output"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Rank animals by preference fit",
	Long: `Score available animals against your preferences and print them
best-fit first. Unlike 'petmatch filter', preferences are soft: an
animal outside a preferred range loses score instead of being dropped,
and missing data scores neutrally.

Preferences can come from flags, from a JSON profile file, or both
(flags override the file).

Examples:
  petmatch recommend --age=1-3 --size=-10 --region=서울
  petmatch recommend --personality=조용함 --behavior="barking=1:2"
  petmatch recommend --profile=me.json --weight="behavior=2" --limit=5`,
	RunE: runRecommend,
}

var (
	recommendProfileFile string
	recommendRegions     []string
	recommendAge         string
	recommendAgeOK       string
	recommendSize        string
	recommendSizeOK      string
	recommendPersonality []string
	recommendBehavior    []string
	recommendWeights     []string
	recommendThreshold   float64
	recommendShowStats   bool
	recommendExportPath  string
	recommendLimit       int
)

func init() {
	rootCmd.AddCommand(recommendCmd)

	recommendCmd.Flags().StringVar(&recommendProfileFile, "profile", "", "JSON file with a preference profile")
	recommendCmd.Flags().StringSliceVar(&recommendRegions, "region", nil, "Preferred care region (repeatable)")
	recommendCmd.Flags().StringVar(&recommendAge, "age", "", `Preferred age range in years, e.g. "1-3"`)
	recommendCmd.Flags().StringVar(&recommendAgeOK, "age-ok", "", "Acceptable age range (scores lower than preferred)")
	recommendCmd.Flags().StringVar(&recommendSize, "size", "", `Preferred weight range in kg, e.g. "-10"`)
	recommendCmd.Flags().StringVar(&recommendSizeOK, "size-ok", "", "Acceptable weight range")
	recommendCmd.Flags().StringSliceVar(&recommendPersonality, "personality", nil, "Wanted personality hashtag (repeatable)")
	recommendCmd.Flags().StringSliceVar(&recommendBehavior, "behavior", nil, `Behavior preference, e.g. "barking=1:2,3" (repeatable)`)
	recommendCmd.Flags().StringSliceVar(&recommendWeights, "weight", nil, `Dimension weight override, e.g. "personality=2" (repeatable)`)
	recommendCmd.Flags().Float64Var(&recommendThreshold, "threshold", 0, "Minimum score to include (default from config)")
	recommendCmd.Flags().BoolVar(&recommendShowStats, "stats", false, "Print result distributions instead of the full list")
	recommendCmd.Flags().StringVar(&recommendExportPath, "export", "", "Write results to a CSV or JSON file (by extension)")
	recommendCmd.Flags().IntVar(&recommendLimit, "limit", 0, "Maximum number of results (default from config)")
}

func runRecommend(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	profile, err := buildProfile(cfg)
	if err != nil {
		return err
	}

	threshold := cfg.Recommend.Threshold
	if cmd.Flags().Changed("threshold") {
		threshold = recommendThreshold
	}
	limit := cfg.Recommend.MaxResults
	if cmd.Flags().Changed("limit") {
		limit = recommendLimit
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

	candidates, err := match.Score(records, profile, threshold)
	if err != nil {
		return err
	}

	if limit > 0 && len(candidates) > limit {
		candidates = candidates[:limit]
	}

	if recommendExportPath != "" {
		if err := exportResults(recommendExportPath, candidates); err != nil {
			return err
		}
		fmt.Printf("Wrote %d matches to %s\n", len(candidates), recommendExportPath)
		return nil
	}

	if recommendShowStats {
		matched := make([]catalog.Record, len(candidates))
		for i := range candidates {
			matched[i] = candidates[i].Record
		}
		return output.Output(outputFmt, catalog.SummarizeResults(matched))
	}

	return output.Output(outputFmt, candidates)
}

// buildProfile merges the profile file, config weights, and flag overrides
func buildProfile(cfg *config.Config) (match.Profile, error) {
	profile := match.Profile{
		Weights: cfg.Recommend.Weights,
	}

	if recommendProfileFile != "" {
		data, err := os.ReadFile(recommendProfileFile)
		if err != nil {
			return profile, fmt.Errorf("failed to read profile file: %w", err)
		}
		if err := json.Unmarshal(data, &profile); err != nil {
			return profile, fmt.Errorf("failed to parse profile file: %w", err)
		}
		if profile.Weights == nil {
			profile.Weights = cfg.Recommend.Weights
		}
	}

	if len(recommendRegions) > 0 {
		profile.Regions = recommendRegions
	}

	agePref, err := preferenceFromFlags(recommendAge, recommendAgeOK)
	if err != nil {
		return profile, fmt.Errorf("invalid age preference: %w", err)
	}
	if agePref != nil {
		profile.AgePreference = agePref
	}

	sizePref, err := preferenceFromFlags(recommendSize, recommendSizeOK)
	if err != nil {
		return profile, fmt.Errorf("invalid size preference: %w", err)
	}
	if sizePref != nil {
		profile.SizePreference = sizePref
	}

	if len(recommendPersonality) > 0 {
		profile.PersonalityTraits = recommendPersonality
	}

	if len(recommendBehavior) > 0 {
		profile.Behavior = map[catalog.Trait]match.BehaviorPreference{}
		for _, s := range recommendBehavior {
			trait, pref, err := parseBehaviorFlag(s)
			if err != nil {
				return profile, err
			}
			profile.Behavior[trait] = pref
		}
	}

	if len(recommendWeights) > 0 {
		// copy before overriding so config defaults stay intact
		weights := map[string]float64{}
		for dim, w := range profile.Weights {
			weights[dim] = w
		}
		for _, s := range recommendWeights {
			dim, w, err := parseWeightFlag(s)
			if err != nil {
				return profile, err
			}
			weights[dim] = w
		}
		profile.Weights = weights
	}

	return profile, nil
}

func preferenceFromFlags(preferred, acceptable string) (*match.RangePreference, error) {
	if preferred == "" && acceptable == "" {
		return nil, nil
	}

	pref := &match.RangePreference{}
	if preferred != "" {
		r, err := parseRange(preferred)
		if err != nil {
			return nil, err
		}
		pref.Preferred = r
	}
	if acceptable != "" {
		r, err := parseRange(acceptable)
		if err != nil {
			return nil, err
		}
		pref.Acceptable = r
	}
	return pref, nil
}
