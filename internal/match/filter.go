package match

import (
	"strings"

	"github.com/seobin0224/petmatch/internal/catalog"
)

// Apply runs the hard filter over records and returns the survivors in
// their original relative order. Records are first restricted to available
// status, then each present criterion field narrows the set (logical AND).
// A record missing its status field is a data-contract violation and
// aborts the whole call.
func Apply(records []catalog.Record, c Criteria) ([]catalog.Record, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	out := make([]catalog.Record, 0, len(records))
	for i := range records {
		r := &records[i]
		if r.Status == "" {
			return nil, &ContractError{RecordID: r.Label(), Field: "status"}
		}
		if !r.Available() {
			continue
		}
		if matches(r, c) {
			out = append(out, records[i])
		}
	}
	return out, nil
}

// matches evaluates every present criterion against a single record
func matches(r *catalog.Record, c Criteria) bool {
	if len(c.Regions) > 0 && !matchRegion(r, c.Regions) {
		return false
	}
	if len(c.Genders) > 0 && !matchGender(r, c.Genders) {
		return false
	}
	if len(c.CareTypes) > 0 && !containsString(c.CareTypes, r.CareType) {
		return false
	}
	if c.AgeRange != nil && !matchRange(r.Age, *c.AgeRange) {
		return false
	}
	if c.WeightRange != nil && !matchRange(r.Weight, *c.WeightRange) {
		return false
	}
	if c.Neutered != nil && !matchNeutered(r, *c.Neutered) {
		return false
	}
	if len(c.Hashtags) > 0 && !matchTags(c.Hashtags, r.Hashtags) {
		return false
	}
	if len(c.SuitableHomes) > 0 && !matchTags(c.SuitableHomes, r.CareConditions.SuitableHomes) {
		return false
	}
	if len(c.BehaviorTraits) > 0 && !matchBehaviorTraits(r, c.BehaviorTraits) {
		return false
	}
	if c.Health != nil && !matchHealth(r, *c.Health) {
		return false
	}
	if c.Care != nil && !matchCare(r, *c.Care) {
		return false
	}
	return true
}

// matchRegion accepts records rescued in a requested region, or whose care
// conditions allow nationwide placement
func matchRegion(r *catalog.Record, regions []string) bool {
	if r.Nationwide() {
		return true
	}
	return containsString(regions, r.RescueRegion)
}

func matchGender(r *catalog.Record, genders []catalog.Gender) bool {
	for _, g := range genders {
		if r.Gender == g {
			return true
		}
	}
	return false
}

// matchRange tests a bounded range against an optional value. An unknown
// value never satisfies a bounded range query.
func matchRange(v *float64, rng Range) bool {
	if v == nil {
		return false
	}
	return rng.Contains(*v)
}

// matchNeutered requires an exact known neutered status
func matchNeutered(r *catalog.Record, want bool) bool {
	return r.Neutered != nil && *r.Neutered == want
}

// matchTags is an OR over the requested tags, each matched bidirectionally
// against the record's tags. Records with no tags never match.
func matchTags(wanted, have []string) bool {
	if len(have) == 0 {
		return false
	}
	for _, want := range wanted {
		if anyTagMatches(want, have) {
			return true
		}
	}
	return false
}

// matchBehaviorTraits enforces every requested trait bound. Traits the
// record has no value for are skipped: unknown behavior data is expected
// and does not disqualify.
func matchBehaviorTraits(r *catalog.Record, reqs map[catalog.Trait]TraitRequirement) bool {
	for trait, req := range reqs {
		v, ok := r.Trait(trait)
		if !ok {
			continue
		}
		if req.Min != nil && v < *req.Min {
			return false
		}
		if req.Max != nil && v > *req.Max {
			return false
		}
		if req.Exact != nil && v != *req.Exact {
			return false
		}
	}
	return true
}

func matchHealth(r *catalog.Record, reqs HealthRequirements) bool {
	if reqs.MinVaccinations != nil && r.VaccinationCount() < *reqs.MinVaccinations {
		return false
	}

	history := ""
	if r.HealthInfo.MedicalHistory != nil {
		history = *r.HealthInfo.MedicalHistory
	}
	if reqs.NoMedicalHistory && history != "" {
		return false
	}
	if history != "" && containsAnyFold(history, reqs.ExcludeConditions) {
		return false
	}
	return true
}

func matchCare(r *catalog.Record, prefs CarePreferences) bool {
	cc := &r.CareConditions

	if prefs.MaxDurationDays != nil && cc.DurationDays != nil && *cc.DurationDays > *prefs.MaxDurationDays {
		return false
	}
	if prefs.PickupMethod != "" && !strings.Contains(cc.PickupMethod, prefs.PickupMethod) {
		return false
	}
	if cc.AdditionalConditions != nil && containsAnyFold(*cc.AdditionalConditions, prefs.ExcludeConditions) {
		return false
	}
	return true
}

func containsString(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}
