package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/seobin0224/petmatch/internal/catalog"
	"github.com/seobin0224/petmatch/internal/config"
	"github.com/seobin0224/petmatch/internal/database"
)

var importCmd = &cobra.Command{
	Use:   "import [csv-file]",
	Short: "Import the animal catalog from a CSV export",
	Long: `Import animals from the rescue platform's CSV export into the
local database, replacing any previously imported catalog.

When no file is given, the catalog path from the config file is used.

Examples:
  petmatch import animals.csv
  petmatch import                 # use catalog.csv_path from config`,
	Args: cobra.MaximumNArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	csvPath := cfg.Catalog.CSVPath
	if len(args) > 0 {
		csvPath = args[0]
	}
	if csvPath == "" {
		return fmt.Errorf("no catalog file given and catalog.csv_path is not configured")
	}

	records, err := catalog.LoadCSV(csvPath)
	if err != nil {
		return err
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if err := db.ReplaceAll(ctx, records, csvPath); err != nil {
		return fmt.Errorf("failed to import catalog: %w", err)
	}

	available := 0
	for i := range records {
		if records[i].Available() {
			available++
		}
	}

	term := NewTerminal()
	fmt.Printf("Imported %s animals (%s available) from %s\n",
		term.Color(ColorGreen, fmt.Sprintf("%d", len(records))),
		term.Color(ColorCyan, fmt.Sprintf("%d", available)),
		csvPath)
	return nil
}
