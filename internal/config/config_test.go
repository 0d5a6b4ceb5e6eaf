package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/seobin0224/petmatch/internal/match"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Recommend.Threshold != match.DefaultThreshold {
		t.Errorf("expected Threshold=%g, got %g", match.DefaultThreshold, cfg.Recommend.Threshold)
	}

	if cfg.Recommend.MaxResults != 50 {
		t.Errorf("expected MaxResults=50, got %d", cfg.Recommend.MaxResults)
	}

	if w := cfg.Recommend.Weights[match.DimPersonality]; w != 1.5 {
		t.Errorf("expected personality weight=1.5, got %g", w)
	}

	if cfg.Database.Path == "" {
		t.Error("expected non-empty database path")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid default config",
			modify:  func(c *Config) {},
			wantErr: false,
		},
		{
			name: "missing database path",
			modify: func(c *Config) {
				c.Database.Path = ""
			},
			wantErr: true,
		},
		{
			name: "threshold above one",
			modify: func(c *Config) {
				c.Recommend.Threshold = 1.5
			},
			wantErr: true,
		},
		{
			name: "negative threshold",
			modify: func(c *Config) {
				c.Recommend.Threshold = -0.1
			},
			wantErr: true,
		},
		{
			name: "invalid max_results",
			modify: func(c *Config) {
				c.Recommend.MaxResults = 0
			},
			wantErr: true,
		},
		{
			name: "negative weight",
			modify: func(c *Config) {
				c.Recommend.Weights[match.DimAge] = -1
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	content := `
[recommend]
threshold = 0.5
max_results = 10

[database]
path = "/tmp/petmatch-test.db"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Recommend.Threshold != 0.5 {
		t.Errorf("expected Threshold=0.5, got %g", cfg.Recommend.Threshold)
	}
	if cfg.Recommend.MaxResults != 10 {
		t.Errorf("expected MaxResults=10, got %d", cfg.Recommend.MaxResults)
	}
	if cfg.Database.Path != "/tmp/petmatch-test.db" {
		t.Errorf("expected overridden database path, got %s", cfg.Database.Path)
	}

	// fields absent from the file keep their defaults
	if len(cfg.Recommend.Weights) == 0 {
		t.Error("expected default weights to survive partial config")
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load() on missing file should use defaults, got error: %v", err)
	}

	if cfg.Recommend.MaxResults != 50 {
		t.Errorf("expected default MaxResults=50, got %d", cfg.Recommend.MaxResults)
	}
}

func TestLoadInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	content := `
[recommend]
threshold = 2.0
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() should reject out-of-range threshold")
	}
}

func TestExpandPath(t *testing.T) {
	home, _ := os.UserHomeDir()

	tests := []struct {
		input    string
		expected string
	}{
		{"~/test", filepath.Join(home, "test")},
		{"/absolute/path", "/absolute/path"},
		{"relative/path", "relative/path"},
	}

	for _, tt := range tests {
		result, err := expandPath(tt.input)
		if err != nil {
			t.Errorf("expandPath(%q) error: %v", tt.input, err)
		}
		if result != tt.expected {
			t.Errorf("expandPath(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}
