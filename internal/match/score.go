package match

import (
	"math"
	"sort"

	"github.com/seobin0224/petmatch/internal/catalog"
)

// DefaultThreshold is the minimum match score a candidate needs to appear
// in recommendation results.
const DefaultThreshold = 0.3

// Score values for the tiered range dimensions and missing data.
const (
	scorePreferred  = 1.0
	scoreAcceptable = 0.7
	// scoreNeutral is assigned when the record lacks the data a dimension
	// needs: missing data signals uncertainty, not disqualification, so it
	// neither helps nor hurts the ranking.
	scoreNeutral = 0.5
)

// Candidate is a record annotated with its computed match score
type Candidate struct {
	catalog.Record
	MatchScore float64 `json:"match_score"`
}

// Score computes a weighted match score for every available record and
// returns the candidates at or above threshold, sorted by descending
// score. Ties keep their original input order. The input slice is not
// modified.
func Score(records []catalog.Record, p Profile, threshold float64) ([]Candidate, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	var out []Candidate
	for i := range records {
		r := &records[i]
		if r.Status == "" {
			return nil, &ContractError{RecordID: r.Label(), Field: "status"}
		}
		if !r.Available() {
			continue
		}
		score := matchScore(r, p)
		if score < threshold {
			continue
		}
		out = append(out, Candidate{Record: records[i], MatchScore: score})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].MatchScore > out[j].MatchScore
	})
	return out, nil
}

// matchScore is the weighted average of the dimension scores for every
// dimension present in the profile. With no present dimensions (or all
// weights zero) the score is 0.
func matchScore(r *catalog.Record, p Profile) float64 {
	var total, totalWeight float64

	add := func(dim string, score float64) {
		w := p.Weight(dim)
		total += score * w
		totalWeight += w
	}

	if p.Regions != nil {
		add(DimRegion, regionScore(r, p.Regions))
	}
	if p.AgePreference != nil {
		add(DimAge, rangeScore(r.Age, *p.AgePreference))
	}
	if p.SizePreference != nil {
		add(DimSize, rangeScore(r.Weight, *p.SizePreference))
	}
	if p.PersonalityTraits != nil {
		add(DimPersonality, personalityScore(r, p.PersonalityTraits))
	}
	if p.Behavior != nil {
		add(DimBehavior, behaviorScore(r, p.Behavior))
	}

	if totalWeight == 0 {
		return 0
	}
	return total / totalWeight
}

// regionScore is all-or-nothing: nationwide care conditions or a rescue
// region in the preferred list score full marks
func regionScore(r *catalog.Record, regions []string) float64 {
	if r.Nationwide() {
		return scorePreferred
	}
	if containsString(regions, r.RescueRegion) {
		return scorePreferred
	}
	return 0
}

// rangeScore applies the tiered preferred/acceptable bands to an optional
// value; an unknown value scores neutral
func rangeScore(v *float64, pref RangePreference) float64 {
	if v == nil {
		return scoreNeutral
	}
	if pref.Preferred != nil && pref.Preferred.Contains(*v) {
		return scorePreferred
	}
	if pref.Acceptable != nil && pref.Acceptable.Contains(*v) {
		return scoreAcceptable
	}
	return 0
}

// personalityScore is the fraction of requested personality traits that
// match at least one record hashtag. Records without hashtags, and empty
// requests, score neutral.
func personalityScore(r *catalog.Record, traits []string) float64 {
	if len(r.Hashtags) == 0 || len(traits) == 0 {
		return scoreNeutral
	}
	matched := 0
	for _, trait := range traits {
		if anyTagMatches(trait, r.Hashtags) {
			matched++
		}
	}
	return float64(matched) / float64(len(traits))
}

// behaviorScore averages the per-trait scores over the traits the record
// has values for. Unknown traits are skipped entirely and do not affect
// the denominator; with no evaluable traits the score is neutral.
func behaviorScore(r *catalog.Record, prefs map[catalog.Trait]BehaviorPreference) float64 {
	var total float64
	evaluated := 0

	for trait, pref := range prefs {
		v, ok := r.Trait(trait)
		if !ok {
			continue
		}
		total += traitScore(v, pref)
		evaluated++
	}

	if evaluated == 0 {
		return scoreNeutral
	}
	return total / float64(evaluated)
}

// traitScore scores one trait value: exact ideal, acceptable membership,
// then linear decay with distance from ideal on the 1-5 scale
func traitScore(v int, pref BehaviorPreference) float64 {
	if v == pref.Ideal {
		return scorePreferred
	}
	for _, a := range pref.Acceptable {
		if v == a {
			return scoreAcceptable
		}
	}
	distance := math.Abs(float64(v - pref.Ideal))
	return math.Max(0, 1-distance/float64(catalog.TraitMax-catalog.TraitMin))
}
