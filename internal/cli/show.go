package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/seobin0224/petmatch/internal/catalog"
	"github.com/seobin0224/petmatch/internal/config"
	"github.com/seobin0224/petmatch/internal/database"
	"github.com/seobin0224/petmatch/internal/output"
)

var showCmd = &cobra.Command{
	Use:   "show <id|name>",
	Short: "Show one animal's full profile",
	Long: `Show detailed information about a specific animal.

The identifier can be:
  - The animal's catalog ID
  - The animal's name (case-insensitive, partial match)

Examples:
  petmatch show 412
  petmatch show 보리`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	identifier := args[0]

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	// Try ID first, then name match
	rec, err := db.GetRecord(ctx, identifier)
	if err != nil {
		return fmt.Errorf("database error: %w", err)
	}

	if rec == nil {
		rec, err = findByName(ctx, db, identifier)
		if err != nil {
			return err
		}
	}

	if rec == nil {
		return fmt.Errorf("animal not found: %s", identifier)
	}

	return output.Output(outputFmt, rec)
}

func findByName(ctx context.Context, db *database.DB, name string) (*catalog.Record, error) {
	records, err := db.ListRecords(ctx, database.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}

	lower := strings.ToLower(name)
	for i := range records {
		if strings.Contains(strings.ToLower(records[i].Name), lower) {
			return &records[i], nil
		}
	}
	return nil, nil
}
