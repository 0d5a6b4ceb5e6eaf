package catalog

// StatusAvailable marks animals currently open for foster placement.
// Every filtering and scoring pass starts by restricting to this status.
const StatusAvailable = "available"

// RegionNationwide is the care-condition region that satisfies any region
// filter or preference unconditionally.
const RegionNationwide = "nationwide"

// Gender represents an animal's normalized gender
type Gender string

const (
	GenderMale    Gender = "male"
	GenderFemale  Gender = "female"
	GenderUnknown Gender = "unknown"
)

// Trait names one of the fixed behavior dimensions scored on a 1-5 scale
type Trait string

const (
	TraitToiletTraining    Trait = "toilet_training"
	TraitWalkingNeeds      Trait = "walking_needs"
	TraitBarking           Trait = "barking"
	TraitSeparationAnxiety Trait = "separation_anxiety"
	TraitShedding          Trait = "shedding"
	TraitAffection         Trait = "affection"
	TraitHumanFriendly     Trait = "human_friendly"
	TraitDogFriendly       Trait = "dog_friendly"
	TraitSoloLiving        Trait = "solo_living"
	TraitCatFriendly       Trait = "cat_friendly"
)

// AllTraits lists every behavior trait in display order
var AllTraits = []Trait{
	TraitToiletTraining,
	TraitWalkingNeeds,
	TraitBarking,
	TraitSeparationAnxiety,
	TraitShedding,
	TraitAffection,
	TraitHumanFriendly,
	TraitDogFriendly,
	TraitSoloLiving,
	TraitCatFriendly,
}

// TraitMin and TraitMax bound the behavior trait scale
const (
	TraitMin = 1
	TraitMax = 5
)

// VaccinationRecord is a single vaccination round with its date
type VaccinationRecord struct {
	Round int    `json:"round"`
	Date  string `json:"date"`
}

// CareConditions holds the foster placement conditions for an animal
type CareConditions struct {
	Region               string   `json:"region"`
	DurationDays         *int     `json:"duration_days,omitempty"`
	PickupMethod         string   `json:"pickup_method,omitempty"`
	AdditionalConditions *string  `json:"additional_conditions,omitempty"`
	SuitableHomes        []string `json:"suitable_homes,omitempty"`
}

// HealthInfo holds an animal's health record
type HealthInfo struct {
	Vaccinations    []VaccinationRecord `json:"vaccinations,omitempty"`
	Examination     *string             `json:"examination,omitempty"`
	MedicalHistory  *string             `json:"medical_history,omitempty"`
	AdditionalNotes *string             `json:"additional_notes,omitempty"`
}

// Record is one animal in the catalog. Unknown numeric and boolean fields
// are nil pointers, never zero values: an animal with no recorded weight is
// different from one weighing 0 kg. Records are read-only once ingested;
// the filter and scoring engines return derived slices and never mutate
// their input.
type Record struct {
	ID             *string           `json:"id,omitempty"`
	Name           string            `json:"name"`
	Status         string            `json:"status"`
	CareType       string            `json:"care_type,omitempty"`
	RescueRegion   string            `json:"rescue_region,omitempty"`
	Gender         Gender            `json:"gender,omitempty"`
	Neutered       *bool             `json:"neutered,omitempty"`
	BirthYear      *int              `json:"birth_year,omitempty"`
	Age            *float64          `json:"age,omitempty"`
	Weight         *float64          `json:"weight,omitempty"`
	Hashtags       []string          `json:"hashtags,omitempty"`
	CareConditions CareConditions    `json:"care_conditions"`
	HealthInfo     HealthInfo        `json:"health_info"`
	BehaviorTraits map[Trait]*int    `json:"behavior_traits,omitempty"`
	SupportProvided string           `json:"support_provided,omitempty"`
	DetailLink     string            `json:"detail_link,omitempty"`
	SNSLink        *string           `json:"sns_link,omitempty"`
	AnnouncementNo string            `json:"announcement_no,omitempty"`
}

// Available reports whether the animal is open for foster placement
func (r *Record) Available() bool {
	return r.Status == StatusAvailable
}

// Nationwide reports whether the animal's care region overrides region matching
func (r *Record) Nationwide() bool {
	return r.CareConditions.Region == RegionNationwide
}

// Trait returns the animal's value for the named behavior trait.
// The second return is false when the trait is unknown for this animal.
func (r *Record) Trait(name Trait) (int, bool) {
	v, ok := r.BehaviorTraits[name]
	if !ok || v == nil {
		return 0, false
	}
	return *v, true
}

// VaccinationCount returns the number of recorded vaccination rounds
func (r *Record) VaccinationCount() int {
	return len(r.HealthInfo.Vaccinations)
}

// Label returns the best human identifier for the record, for error messages
func (r *Record) Label() string {
	if r.ID != nil && *r.ID != "" {
		return *r.ID
	}
	if r.Name != "" {
		return r.Name
	}
	return "(unnamed)"
}
