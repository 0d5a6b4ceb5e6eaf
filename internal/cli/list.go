package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/seobin0224/petmatch/internal/catalog"
	"github.com/seobin0224/petmatch/internal/config"
	"github.com/seobin0224/petmatch/internal/database"
	"github.com/seobin0224/petmatch/internal/output"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List animals in the imported catalog",
	Long: `List animals from the local database with optional filters.

These filters run in SQL over the stored catalog; for constraint-based
matching use 'petmatch filter' instead.

Examples:
  petmatch list                       # List the whole catalog
  petmatch list --available           # Only animals open for fostering
  petmatch list --care-region=서울     # Animals fosterable in Seoul
  petmatch list --gender=female -o json`,
	RunE: runList,
}

var (
	listStatus       string
	listRescueRegion string
	listCareRegion   string
	listGender       string
	listCareType     string
	listAvailable    bool
	listLimit        int
	listOffset       int
)

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVar(&listStatus, "status", "", "Filter by raw status")
	listCmd.Flags().StringVar(&listRescueRegion, "region", "", "Filter by rescue region (substring)")
	listCmd.Flags().StringVar(&listCareRegion, "care-region", "", "Filter by care region (substring, nationwide always matches)")
	listCmd.Flags().StringVar(&listGender, "gender", "", "Filter by gender (male, female, unknown)")
	listCmd.Flags().StringVar(&listCareType, "care-type", "", "Filter by care type (substring)")
	listCmd.Flags().BoolVar(&listAvailable, "available", false, "Only animals open for fostering")
	listCmd.Flags().IntVar(&listLimit, "limit", 0, "Maximum number of results")
	listCmd.Flags().IntVar(&listOffset, "offset", 0, "Number of results to skip")
}

func runList(cmd *cobra.Command, args []string) error {
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

	opts := database.ListOptions{
		AvailableOnly: listAvailable,
		Limit:         listLimit,
		Offset:        listOffset,
	}
	if listStatus != "" {
		opts.Status = &listStatus
	}
	if listRescueRegion != "" {
		opts.RescueRegion = &listRescueRegion
	}
	if listCareRegion != "" {
		opts.CareRegion = &listCareRegion
	}
	if listGender != "" {
		g := catalog.Gender(listGender)
		opts.Gender = &g
	}
	if listCareType != "" {
		opts.CareType = &listCareType
	}

	records, err := db.ListRecords(ctx, opts)
	if err != nil {
		return fmt.Errorf("failed to list animals: %w", err)
	}

	return output.Output(outputFmt, records)
}
