package match

import "testing"

func TestTagMatches(t *testing.T) {
	tests := []struct {
		want     string
		have     string
		expected bool
	}{
		{"friendly", "human-friendly", true},      // request contained in tag
		{"human-friendly dog", "friendly", true}, // tag contained in request
		{"friendly dog", "human-friendly", false},
		{"quiet", "quiet", true},
		{"quiet", "playful", false},
		{"개", "애교쟁이개", true}, // short tags cross-match by design
	}

	for _, tt := range tests {
		if got := TagMatches(tt.want, tt.have); got != tt.expected {
			t.Errorf("TagMatches(%q, %q) = %v, want %v", tt.want, tt.have, got, tt.expected)
		}
	}
}

func TestAnyTagMatches(t *testing.T) {
	tags := []string{"human-friendly", "shy"}

	if !anyTagMatches("friendly", tags) {
		t.Error("expected substring match against tag list")
	}
	if anyTagMatches("barky", tags) {
		t.Error("unexpected match for unrelated tag")
	}
	if anyTagMatches("anything", nil) {
		t.Error("empty tag list must never match")
	}
}

func TestContainsAnyFold(t *testing.T) {
	tests := []struct {
		text     string
		terms    []string
		expected bool
	}{
		{"Treated for Heartworm in 2023", []string{"heartworm"}, true},
		{"treated for heartworm", []string{"HEARTWORM"}, true},
		{"healthy", []string{"heartworm", "parvo"}, false},
		{"healthy", nil, false},
		{"healthy", []string{""}, false}, // empty terms are ignored
	}

	for _, tt := range tests {
		if got := containsAnyFold(tt.text, tt.terms); got != tt.expected {
			t.Errorf("containsAnyFold(%q, %v) = %v, want %v", tt.text, tt.terms, got, tt.expected)
		}
	}
}
