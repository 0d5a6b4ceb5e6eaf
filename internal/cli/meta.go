package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/seobin0224/petmatch/internal/catalog"
	"github.com/seobin0224/petmatch/internal/config"
	"github.com/seobin0224/petmatch/internal/database"
	"github.com/seobin0224/petmatch/internal/output"
)

var metaCmd = &cobra.Command{
	Use:   "meta",
	Short: "List the distinct filterable values in the catalog",
	Long: `List the distinct regions, genders, care types, hashtags, and
suitable home types present in the imported catalog. Useful for
discovering what values 'petmatch filter' and 'petmatch recommend'
can be given.

Examples:
  petmatch meta
  petmatch meta -o json`,
	RunE: runMeta,
}

func init() {
	rootCmd.AddCommand(metaCmd)
}

func runMeta(cmd *cobra.Command, args []string) error {
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

	return output.Output(outputFmt, catalog.CollectMetadata(records))
}
