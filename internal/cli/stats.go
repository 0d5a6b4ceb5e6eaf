package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/seobin0224/petmatch/internal/catalog"
	"github.com/seobin0224/petmatch/internal/config"
	"github.com/seobin0224/petmatch/internal/database"
	"github.com/seobin0224/petmatch/internal/output"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show catalog statistics",
	Long: `Display aggregate statistics over the imported catalog.

Examples:
  petmatch stats             # Totals and distributions
  petmatch stats --detailed  # Adds behavior trait averages
  petmatch stats -o json`,
	RunE: runStats,
}

var statsDetailed bool

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.Flags().BoolVar(&statsDetailed, "detailed", false, "Show behavior trait averages and import info")
}

func runStats(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load(configPath)
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

	stats := catalog.Summarize(records)

	if !statsDetailed {
		return output.Output(outputFmt, stats)
	}

	importState, err := db.GetImportState(ctx)
	if err != nil {
		return fmt.Errorf("failed to read import state: %w", err)
	}

	if outputFmt == "json" {
		return output.JSON(struct {
			Stats  catalog.Stats         `json:"stats"`
			Import *database.ImportState `json:"import"`
		}{stats, importState})
	}

	if err := output.Table(stats); err != nil {
		return err
	}
	printTraitAverages(stats)
	fmt.Println()
	return output.Table(importState)
}

// printTraitAverages renders trait averages as ASCII bars on the 1-5 scale
func printTraitAverages(stats catalog.Stats) {
	fmt.Println()
	fmt.Println("Behavior trait averages (1-5)")
	fmt.Println(strings.Repeat("-", 30))

	for _, trait := range catalog.AllTraits {
		avg := stats.TraitAverages[trait]
		if avg == nil {
			fmt.Printf("  %-20s no data\n", trait)
			continue
		}

		barLen := int((*avg - catalog.TraitMin) / (catalog.TraitMax - catalog.TraitMin) * 20)
		bar := strings.Repeat("█", barLen)
		fmt.Printf("  %-20s %s %.1f\n", trait, bar, *avg)
	}
}
