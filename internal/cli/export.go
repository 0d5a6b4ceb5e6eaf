package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/seobin0224/petmatch/internal/config"
	"github.com/seobin0224/petmatch/internal/database"
	"github.com/seobin0224/petmatch/internal/output"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the catalog to CSV or JSON",
	Long: `Export the imported catalog to a file or stdout.

Supported formats:
  - csv: Comma-separated values (spreadsheet-compatible)
  - json: JSON array of animal records

Examples:
  petmatch export --format=csv > catalog.csv
  petmatch export --format=json --file=catalog.json
  petmatch export --available --format=csv > available.csv`,
	RunE: runExport,
}

var (
	exportFormat    string
	exportFile      string
	exportAvailable bool
)

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVar(&exportFormat, "format", "csv", "Export format (csv, json)")
	exportCmd.Flags().StringVar(&exportFile, "file", "", "Write to this file instead of stdout")
	exportCmd.Flags().BoolVar(&exportAvailable, "available", false, "Only animals open for fostering")
}

func runExport(cmd *cobra.Command, args []string) error {
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

	records, err := db.ListRecords(ctx, database.ListOptions{AvailableOnly: exportAvailable})
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	if exportFile != "" {
		switch exportFormat {
		case "csv":
			err = output.WriteCSVFile(exportFile, records)
		case "json":
			err = output.WriteJSONFile(exportFile, records)
		default:
			return fmt.Errorf("unknown format: %s (use csv or json)", exportFormat)
		}
		if err != nil {
			return err
		}
		fmt.Printf("Wrote %d animals to %s\n", len(records), exportFile)
		return nil
	}

	switch exportFormat {
	case "csv":
		return output.RecordsCSV(os.Stdout, records)
	case "json":
		return output.JSON(records)
	default:
		return fmt.Errorf("unknown format: %s (use csv or json)", exportFormat)
	}
}
