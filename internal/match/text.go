// Package match implements the hard filtering and soft scoring engines for
// the animal catalog. Both engines are pure functions over a record slice:
// they never mutate their input and hold no state between calls, so
// concurrent sessions can share them freely.
package match

import "strings"

// TagMatches reports whether a requested tag matches a record tag.
// Matching is containment in either direction, so a request for "friendly"
// matches the record tag "human-friendly" and a request for
// "human-friendly dog" matches the record tag "friendly". This is
// deliberately fuzzy to tolerate partial and compound tag spellings; short
// tags can cross-match liberally.
func TagMatches(want, have string) bool {
	return strings.Contains(have, want) || strings.Contains(want, have)
}

// anyTagMatches reports whether want matches at least one of the tags
func anyTagMatches(want string, tags []string) bool {
	for _, tag := range tags {
		if TagMatches(want, tag) {
			return true
		}
	}
	return false
}

// containsAnyFold reports whether text contains any of the terms,
// case-insensitively. Empty terms are ignored.
func containsAnyFold(text string, terms []string) bool {
	lower := strings.ToLower(text)
	for _, term := range terms {
		if term == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(term)) {
			return true
		}
	}
	return false
}
