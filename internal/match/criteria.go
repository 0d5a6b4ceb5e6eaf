package match

import (
	"fmt"

	"github.com/seobin0224/petmatch/internal/catalog"
)

// Range is an inclusive numeric interval. A nil bound is open: a range
// with only Min set matches everything at or above it.
type Range struct {
	Min *float64 `json:"min,omitempty"`
	Max *float64 `json:"max,omitempty"`
}

// Contains reports whether v lies inside the range
func (r Range) Contains(v float64) bool {
	if r.Min != nil && v < *r.Min {
		return false
	}
	if r.Max != nil && v > *r.Max {
		return false
	}
	return true
}

// Validate rejects ranges whose bounds cross
func (r Range) Validate() error {
	if r.Min != nil && r.Max != nil && *r.Min > *r.Max {
		return fmt.Errorf("%w: min %.1f > max %.1f", ErrInvalidRange, *r.Min, *r.Max)
	}
	return nil
}

// IntRange is Range over integers, used for behavior trait bounds
type IntRange struct {
	Min *int `json:"min,omitempty"`
	Max *int `json:"max,omitempty"`
}

// TraitRequirement constrains a behavior trait value. Any present bound
// that the record's value violates rejects the record; a record with an
// unknown value for the trait is not rejected.
type TraitRequirement struct {
	Min   *int `json:"min,omitempty"`
	Max   *int `json:"max,omitempty"`
	Exact *int `json:"exact,omitempty"`
}

// HealthRequirements constrains an animal's health record
type HealthRequirements struct {
	MinVaccinations   *int     `json:"min_vaccinations,omitempty"`
	NoMedicalHistory  bool     `json:"no_medical_history,omitempty"`
	ExcludeConditions []string `json:"exclude_conditions,omitempty"`
}

// CarePreferences constrains the foster placement conditions
type CarePreferences struct {
	MaxDurationDays   *int     `json:"max_duration,omitempty"`
	PickupMethod      string   `json:"pickup_method,omitempty"`
	ExcludeConditions []string `json:"exclude_conditions,omitempty"`
}

// Criteria is a sparse set of hard filter predicates. Nil or empty fields
// impose no constraint; present fields combine with logical AND.
type Criteria struct {
	Regions        []string                              `json:"region,omitempty"`
	Genders        []catalog.Gender                      `json:"gender,omitempty"`
	CareTypes      []string                              `json:"care_type,omitempty"`
	AgeRange       *Range                                `json:"age_range,omitempty"`
	WeightRange    *Range                                `json:"weight_range,omitempty"`
	Neutered       *bool                                 `json:"neutered,omitempty"`
	Hashtags       []string                              `json:"hashtags,omitempty"`
	SuitableHomes  []string                              `json:"suitable_homes,omitempty"`
	BehaviorTraits map[catalog.Trait]TraitRequirement    `json:"behavior_traits,omitempty"`
	Health         *HealthRequirements                   `json:"health_requirements,omitempty"`
	Care           *CarePreferences                      `json:"care_preferences,omitempty"`
}

// Validate checks the criteria for caller configuration errors
func (c Criteria) Validate() error {
	if c.AgeRange != nil {
		if err := c.AgeRange.Validate(); err != nil {
			return fmt.Errorf("age_range: %w", err)
		}
	}
	if c.WeightRange != nil {
		if err := c.WeightRange.Validate(); err != nil {
			return fmt.Errorf("weight_range: %w", err)
		}
	}
	for trait, req := range c.BehaviorTraits {
		if req.Min != nil && req.Max != nil && *req.Min > *req.Max {
			return fmt.Errorf("behavior_traits[%s]: %w: min %d > max %d", trait, ErrInvalidRange, *req.Min, *req.Max)
		}
	}
	return nil
}
