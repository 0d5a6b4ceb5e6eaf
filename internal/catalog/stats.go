package catalog

// Stats summarizes a whole catalog
type Stats struct {
	Total         int                `json:"total"`
	Available     int                `json:"available"`
	ByGender      map[string]int     `json:"gender_distribution"`
	ByCareType    map[string]int     `json:"care_type_distribution"`
	ByRegion      map[string]int     `json:"region_distribution"`
	AverageAge    *float64           `json:"average_age,omitempty"`
	AverageWeight *float64           `json:"average_weight,omitempty"`
	TraitAverages map[Trait]*float64 `json:"trait_averages,omitempty"`
}

// Summarize computes catalog-wide statistics over all records
func Summarize(records []Record) Stats {
	s := Stats{
		Total:      len(records),
		ByGender:   map[string]int{},
		ByCareType: map[string]int{},
		ByRegion:   map[string]int{},
	}

	var ageSum, weightSum float64
	var ageN, weightN int
	traitSums := map[Trait]float64{}
	traitNs := map[Trait]int{}

	for i := range records {
		r := &records[i]
		if r.Available() {
			s.Available++
		}
		if r.Gender != "" {
			s.ByGender[string(r.Gender)]++
		}
		if r.CareType != "" {
			s.ByCareType[r.CareType]++
		}
		if r.RescueRegion != "" {
			s.ByRegion[r.RescueRegion]++
		}
		if r.Age != nil {
			ageSum += *r.Age
			ageN++
		}
		if r.Weight != nil {
			weightSum += *r.Weight
			weightN++
		}
		for _, trait := range AllTraits {
			if v, ok := r.Trait(trait); ok {
				traitSums[trait] += float64(v)
				traitNs[trait]++
			}
		}
	}

	if ageN > 0 {
		avg := ageSum / float64(ageN)
		s.AverageAge = &avg
	}
	if weightN > 0 {
		avg := weightSum / float64(weightN)
		s.AverageWeight = &avg
	}

	s.TraitAverages = map[Trait]*float64{}
	for _, trait := range AllTraits {
		if n := traitNs[trait]; n > 0 {
			avg := traitSums[trait] / float64(n)
			s.TraitAverages[trait] = &avg
		} else {
			s.TraitAverages[trait] = nil
		}
	}

	return s
}

// ResultStats breaks a filtered result set down by the display groupings
type ResultStats struct {
	Total      int            `json:"total"`
	ByGender   map[string]int `json:"gender_distribution"`
	ByAgeGroup map[string]int `json:"age_distribution"`
	BySize     map[string]int `json:"weight_distribution"`
	ByCareType map[string]int `json:"care_type_distribution"`
	ByRegion   map[string]int `json:"region_distribution"`
}

// SummarizeResults computes distributions over a filtered candidate set
func SummarizeResults(records []Record) ResultStats {
	s := ResultStats{
		Total:      len(records),
		ByGender:   map[string]int{},
		ByAgeGroup: map[string]int{},
		BySize:     map[string]int{},
		ByCareType: map[string]int{},
		ByRegion:   map[string]int{},
	}

	for i := range records {
		r := &records[i]
		if r.Gender != "" {
			s.ByGender[string(r.Gender)]++
		}
		s.ByAgeGroup[GroupLabel(AgeGroups, r.Age)]++
		s.BySize[GroupLabel(SizeGroups, r.Weight)]++
		if r.CareType != "" {
			s.ByCareType[r.CareType]++
		}
		if r.RescueRegion != "" {
			s.ByRegion[r.RescueRegion]++
		}
	}

	return s
}
