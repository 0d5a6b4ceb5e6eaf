package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/seobin0224/petmatch/internal/config"
	"github.com/seobin0224/petmatch/internal/database"
	"github.com/seobin0224/petmatch/internal/match"
	"github.com/seobin0224/petmatch/internal/output"
)

var batchCmd = &cobra.Command{
	Use:   "batch <profiles.json>",
	Short: "Run recommendations for multiple profiles",
	Long: `Score the catalog against several preference profiles in one run.

The input file is a JSON array of named profiles:

  [
    {"name": "apartment", "profile": {"size_preference": {"preferred": {"max": 7}}}},
    {"name": "house with yard", "threshold": 0.5, "profile": {...}}
  ]

Entries may also carry a "criteria" object to hard-filter the catalog
before scoring.

Examples:
  petmatch batch family-profiles.json
  petmatch batch profiles.json --export-dir=results/`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

var (
	batchExportDir string
	batchLimit     int
)

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringVar(&batchExportDir, "export-dir", "", "Write one CSV per profile into this directory")
	batchCmd.Flags().IntVar(&batchLimit, "limit", 0, "Maximum results per profile (default from config)")
}

// BatchProfile is one named entry in a batch input file. Criteria, when
// given, hard-filter the catalog before the profile scores it.
type BatchProfile struct {
	Name      string          `json:"name"`
	Threshold *float64        `json:"threshold,omitempty"`
	Criteria  *match.Criteria `json:"criteria,omitempty"`
	Profile   match.Profile   `json:"profile"`
}

// BatchResult pairs a profile with its scored candidates
type BatchResult struct {
	Name       string            `json:"name"`
	Matches    int               `json:"matches"`
	Candidates []match.Candidate `json:"candidates"`
}

func runBatch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read profiles file: %w", err)
	}
	var profiles []BatchProfile
	if err := json.Unmarshal(data, &profiles); err != nil {
		return fmt.Errorf("failed to parse profiles file: %w", err)
	}
	if len(profiles) == 0 {
		return fmt.Errorf("no profiles in %s", args[0])
	}

	limit := cfg.Recommend.MaxResults
	if cmd.Flags().Changed("limit") {
		limit = batchLimit
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

	if batchExportDir != "" {
		if err := os.MkdirAll(batchExportDir, 0755); err != nil {
			return fmt.Errorf("failed to create export directory: %w", err)
		}
	}

	results := make([]BatchResult, 0, len(profiles))
	for i, bp := range profiles {
		name := bp.Name
		if name == "" {
			name = fmt.Sprintf("profile-%d", i+1)
		}

		profile := bp.Profile
		if profile.Weights == nil {
			profile.Weights = cfg.Recommend.Weights
		}

		threshold := cfg.Recommend.Threshold
		if bp.Threshold != nil {
			threshold = *bp.Threshold
		}

		pool := records
		if bp.Criteria != nil {
			pool, err = match.Apply(records, *bp.Criteria)
			if err != nil {
				return fmt.Errorf("profile %q: %w", name, err)
			}
		}

		candidates, err := match.Score(pool, profile, threshold)
		if err != nil {
			return fmt.Errorf("profile %q: %w", name, err)
		}
		if limit > 0 && len(candidates) > limit {
			candidates = candidates[:limit]
		}

		if batchExportDir != "" {
			path := filepath.Join(batchExportDir, slugify(name)+".csv")
			if err := output.WriteCSVFile(path, candidates); err != nil {
				return fmt.Errorf("profile %q: %w", name, err)
			}
		}

		results = append(results, BatchResult{
			Name:       name,
			Matches:    len(candidates),
			Candidates: candidates,
		})
	}

	if batchExportDir != "" {
		summary := filepath.Join(batchExportDir, "summary.json")
		if err := output.WriteJSONFile(summary, results); err != nil {
			return err
		}
	}

	if outputFmt == "json" {
		return output.JSON(results)
	}

	printBatchSummary(results)
	return nil
}

func printBatchSummary(results []BatchResult) {
	term := NewTerminal()

	for _, r := range results {
		fmt.Printf("%s: %d matches\n", term.Color(ColorCyan, r.Name), r.Matches)
		for i, c := range r.Candidates {
			if i >= 3 {
				fmt.Printf("  ... and %d more\n", r.Matches-3)
				break
			}
			score := term.Color(ScoreColor(c.MatchScore), fmt.Sprintf("%.2f", c.MatchScore))
			fmt.Printf("  %s %s\n", score, c.Name)
		}
		fmt.Println()
	}

	if batchExportDir != "" {
		fmt.Printf("Results written to %s\n", batchExportDir)
	}
}

// slugify makes a profile name safe as a file name
func slugify(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == ' ' || r == '/' || r == '\\':
			return '-'
		default:
			return r
		}
	}, name)
}
