package config

import (
	"github.com/seobin0224/petmatch/internal/match"
)

// Config represents the application configuration
type Config struct {
	Catalog   CatalogConfig   `toml:"catalog"`
	Database  DatabaseConfig  `toml:"database"`
	Recommend RecommendConfig `toml:"recommend"`
	Export    ExportConfig    `toml:"export"`
}

// CatalogConfig contains catalog ingestion settings
type CatalogConfig struct {
	CSVPath string `toml:"csv_path"`
}

// DatabaseConfig contains database settings
type DatabaseConfig struct {
	Path string `toml:"path"`
}

// RecommendConfig contains soft scoring defaults
type RecommendConfig struct {
	Threshold  float64            `toml:"threshold"`
	MaxResults int                `toml:"max_results"`
	Weights    map[string]float64 `toml:"weights"`
}

// ExportConfig contains result export settings
type ExportConfig struct {
	Directory string `toml:"directory"`
}

// Default returns a Config with sensible defaults
func Default() *Config {
	return &Config{
		Catalog: CatalogConfig{
			CSVPath: "~/.local/share/petmatch/animals.csv",
		},
		Database: DatabaseConfig{
			Path: "~/.local/share/petmatch/petmatch.db",
		},
		Recommend: RecommendConfig{
			Threshold:  match.DefaultThreshold,
			MaxResults: 50,
			Weights: map[string]float64{
				match.DimAge:         1.0,
				match.DimSize:        1.0,
				match.DimPersonality: 1.5,
				match.DimBehavior:    1.2,
				match.DimRegion:      0.8,
			},
		},
		Export: ExportConfig{
			Directory: "~/.local/share/petmatch/results",
		},
	}
}
