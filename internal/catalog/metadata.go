package catalog

import "sort"

// Metadata collects the distinct values present in a catalog, used by the
// CLI to suggest filter inputs.
type Metadata struct {
	Regions       []string `json:"regions"`
	Genders       []string `json:"genders"`
	CareTypes     []string `json:"care_types"`
	Hashtags      []string `json:"hashtags"`
	SuitableHomes []string `json:"suitable_home_types"`
}

// CollectMetadata scans the records for distinct filterable values
func CollectMetadata(records []Record) Metadata {
	regions := map[string]struct{}{}
	genders := map[string]struct{}{}
	careTypes := map[string]struct{}{}
	hashtags := map[string]struct{}{}
	homes := map[string]struct{}{}

	for i := range records {
		r := &records[i]
		if r.RescueRegion != "" {
			regions[r.RescueRegion] = struct{}{}
		}
		if r.Gender != "" {
			genders[string(r.Gender)] = struct{}{}
		}
		if r.CareType != "" {
			careTypes[r.CareType] = struct{}{}
		}
		for _, tag := range r.Hashtags {
			hashtags[tag] = struct{}{}
		}
		for _, home := range r.CareConditions.SuitableHomes {
			homes[home] = struct{}{}
		}
	}

	return Metadata{
		Regions:       sortedKeys(regions),
		Genders:       sortedKeys(genders),
		CareTypes:     sortedKeys(careTypes),
		Hashtags:      sortedKeys(hashtags),
		SuitableHomes: sortedKeys(homes),
	}
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Group is a labeled numeric band used for age and size breakdowns in
// statistics. Each band starts at Min and runs up to the next band's Min,
// so the bands are contiguous and the last one is open-ended. Fractional
// values always land in a band.
type Group struct {
	Label string  `json:"label"`
	Min   float64 `json:"min"`
}

// AgeGroups buckets animals by age in years
var AgeGroups = []Group{
	{Label: "puppy (<1y)", Min: 0},
	{Label: "young (1-3y)", Min: 1},
	{Label: "adult (4-7y)", Min: 4},
	{Label: "senior (8y+)", Min: 8},
}

// SizeGroups buckets animals by weight in kg
var SizeGroups = []Group{
	{Label: "small (<5kg)", Min: 0},
	{Label: "medium (5-15kg)", Min: 5},
	{Label: "large (15kg+)", Min: 15},
}

// GroupLabelUnknown is used when the grouped value is missing
const GroupLabelUnknown = "unknown"

// GroupLabel returns the label of the band containing v. Unknown is
// returned when v is nil or below every band.
func GroupLabel(groups []Group, v *float64) string {
	if v == nil {
		return GroupLabelUnknown
	}
	for i := len(groups) - 1; i >= 0; i-- {
		if *v >= groups[i].Min {
			return groups[i].Label
		}
	}
	return GroupLabelUnknown
}
