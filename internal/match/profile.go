package match

import (
	"fmt"

	"github.com/seobin0224/petmatch/internal/catalog"
)

// Scoring dimension names, used as weight keys
const (
	DimRegion      = "region"
	DimAge         = "age"
	DimSize        = "size"
	DimPersonality = "personality"
	DimBehavior    = "behavior"
)

// RangePreference is a tiered numeric preference: values inside the
// preferred band score full marks, values merely inside the acceptable
// band score partial marks. A nil band is absent; use open-bound Ranges
// for a partially open preference.
type RangePreference struct {
	Preferred  *Range `json:"preferred,omitempty"`
	Acceptable *Range `json:"acceptable,omitempty"`
}

// Validate rejects preferences with crossed bounds
func (p RangePreference) Validate() error {
	if p.Preferred != nil {
		if err := p.Preferred.Validate(); err != nil {
			return fmt.Errorf("preferred: %w", err)
		}
	}
	if p.Acceptable != nil {
		if err := p.Acceptable.Validate(); err != nil {
			return fmt.Errorf("acceptable: %w", err)
		}
	}
	return nil
}

// BehaviorPreference expresses the wanted value for one behavior trait on
// the 1-5 scale: Ideal scores full marks, membership in Acceptable scores
// partial marks, anything else decays linearly with distance from Ideal.
type BehaviorPreference struct {
	Ideal      int   `json:"ideal"`
	Acceptable []int `json:"acceptable,omitempty"`
}

// Profile is a sparse set of soft scoring dimensions with per-dimension
// weights. A dimension contributes to the match score only when its field
// is non-nil / non-empty; Weights entries default to 1 for any present but
// unweighted dimension.
type Profile struct {
	Regions           []string                               `json:"region,omitempty"`
	AgePreference     *RangePreference                       `json:"age_preference,omitempty"`
	SizePreference    *RangePreference                       `json:"size_preference,omitempty"`
	PersonalityTraits []string                               `json:"personality_traits,omitempty"`
	Behavior          map[catalog.Trait]BehaviorPreference   `json:"behavior_preferences,omitempty"`
	Weights           map[string]float64                     `json:"weights,omitempty"`
}

// Weight returns the weight for a dimension, defaulting to 1
func (p Profile) Weight(dim string) float64 {
	if w, ok := p.Weights[dim]; ok {
		return w
	}
	return 1
}

// Validate checks the profile for caller configuration errors
func (p Profile) Validate() error {
	if p.AgePreference != nil {
		if err := p.AgePreference.Validate(); err != nil {
			return fmt.Errorf("age_preference: %w", err)
		}
	}
	if p.SizePreference != nil {
		if err := p.SizePreference.Validate(); err != nil {
			return fmt.Errorf("size_preference: %w", err)
		}
	}
	for dim, w := range p.Weights {
		if w < 0 {
			return fmt.Errorf("weights[%s]: weight must be non-negative, got %g", dim, w)
		}
	}
	return nil
}
