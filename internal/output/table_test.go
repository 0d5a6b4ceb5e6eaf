package output

import (
	"testing"
	"unicode/utf8"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		max      int
		expected string
	}{
		{"short ascii", "Bori", 16, "Bori"},
		{"long ascii", "a very long animal name", 10, "a very ..."},
		{"short korean", "보리", 16, "보리"},
		{"long korean", "사람좋아하고 조용한 강아지", 10, "사람좋아하고 ..."},
		{"exact length", "보리보리", 4, "보리보리"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncate(tt.input, tt.max)
			if got != tt.expected {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.input, tt.max, got, tt.expected)
			}
			if !utf8.ValidString(got) {
				t.Errorf("truncate(%q, %d) produced invalid UTF-8", tt.input, tt.max)
			}
		})
	}
}
