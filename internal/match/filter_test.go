package match

import (
	"errors"
	"testing"

	"github.com/seobin0224/petmatch/internal/catalog"
)

func fptr(v float64) *float64 { return &v }
func iptr(v int) *int         { return &v }
func bptr(v bool) *bool       { return &v }
func sptr(v string) *string   { return &v }

// sampleRecords returns a small catalog exercising the filter edge cases
func sampleRecords() []catalog.Record {
	return []catalog.Record{
		{
			ID:           sptr("1"),
			Name:         "Bori",
			Status:       catalog.StatusAvailable,
			Gender:       catalog.GenderMale,
			Age:          fptr(3),
			Weight:       fptr(8),
			RescueRegion: "Seoul",
			CareType:     "standard",
			Neutered:     bptr(true),
			Hashtags:     []string{"human-friendly", "shy"},
			CareConditions: catalog.CareConditions{
				Region:        catalog.RegionNationwide,
				DurationDays:  iptr(90),
				PickupMethod:  "direct pickup in Seoul",
				SuitableHomes: []string{"apartment", "house with yard"},
			},
			HealthInfo: catalog.HealthInfo{
				Vaccinations: []catalog.VaccinationRecord{
					{Round: 1, Date: "24.01.15"},
					{Round: 2, Date: "24.02.15"},
				},
			},
			BehaviorTraits: map[catalog.Trait]*int{
				catalog.TraitBarking:       iptr(2),
				catalog.TraitHumanFriendly: iptr(5),
			},
		},
		{
			ID:           sptr("2"),
			Name:         "Dubu",
			Status:       catalog.StatusAvailable,
			Gender:       catalog.GenderFemale,
			Age:          nil, // unknown age
			Weight:       fptr(20),
			RescueRegion: "Busan",
			CareType:     "short-term",
			Neutered:     nil, // unknown
			Hashtags:     []string{"quiet"},
			CareConditions: catalog.CareConditions{
				Region: "Busan",
			},
			HealthInfo: catalog.HealthInfo{
				MedicalHistory: sptr("treated for heartworm in 2023"),
			},
		},
		{
			ID:           sptr("3"),
			Name:         "Choco",
			Status:       "adopted",
			Gender:       catalog.GenderMale,
			Age:          fptr(2),
			RescueRegion: "Seoul",
		},
	}
}

func TestApply_StatusGate(t *testing.T) {
	records := sampleRecords()

	got, err := Apply(records, Criteria{})
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("expected 2 available records, got %d", len(got))
	}
	if *got[0].ID != "1" || *got[1].ID != "2" {
		t.Errorf("expected records 1,2 in input order, got %s,%s", *got[0].ID, *got[1].ID)
	}
}

func TestApply_ContractViolation(t *testing.T) {
	records := []catalog.Record{{ID: sptr("9"), Name: "NoStatus"}}

	_, err := Apply(records, Criteria{})
	if err == nil {
		t.Fatal("expected contract error for record without status")
	}

	var cerr *ContractError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected ContractError, got %T: %v", err, err)
	}
	if cerr.RecordID != "9" || cerr.Field != "status" {
		t.Errorf("ContractError = %+v, want record 9 / status", cerr)
	}
}

func TestApply_InvalidRange(t *testing.T) {
	records := sampleRecords()
	c := Criteria{AgeRange: &Range{Min: fptr(5), Max: fptr(1)}}

	_, err := Apply(records, c)
	if !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}
}

func TestApply_Predicates(t *testing.T) {
	tests := []struct {
		name     string
		criteria Criteria
		wantIDs  []string
	}{
		{
			name:     "region match includes nationwide",
			criteria: Criteria{Regions: []string{"Daegu"}},
			wantIDs:  []string{"1"}, // record 1 is nationwide, record 2 is Busan only
		},
		{
			name:     "region direct match",
			criteria: Criteria{Regions: []string{"Busan"}},
			wantIDs:  []string{"1", "2"},
		},
		{
			name:     "gender",
			criteria: Criteria{Genders: []catalog.Gender{catalog.GenderFemale}},
			wantIDs:  []string{"2"},
		},
		{
			name:     "care type",
			criteria: Criteria{CareTypes: []string{"short-term"}},
			wantIDs:  []string{"2"},
		},
		{
			name:     "age range excludes unknown age",
			criteria: Criteria{AgeRange: &Range{Min: fptr(1), Max: fptr(5)}},
			wantIDs:  []string{"1"},
		},
		{
			name:     "age range excludes out of bounds",
			criteria: Criteria{AgeRange: &Range{Min: fptr(5), Max: fptr(10)}},
			wantIDs:  []string{},
		},
		{
			name:     "open-ended weight range",
			criteria: Criteria{WeightRange: &Range{Min: fptr(10)}},
			wantIDs:  []string{"2"},
		},
		{
			name:     "neutered true excludes unknown",
			criteria: Criteria{Neutered: bptr(true)},
			wantIDs:  []string{"1"},
		},
		{
			name:     "neutered false matches nothing here",
			criteria: Criteria{Neutered: bptr(false)},
			wantIDs:  []string{},
		},
		{
			name:     "hashtag substring containment",
			criteria: Criteria{Hashtags: []string{"friendly"}},
			wantIDs:  []string{"1"},
		},
		{
			name:     "hashtag OR across requested tags",
			criteria: Criteria{Hashtags: []string{"clingy", "quiet"}},
			wantIDs:  []string{"2"},
		},
		{
			name:     "suitable homes rejects records without data",
			criteria: Criteria{SuitableHomes: []string{"apartment"}},
			wantIDs:  []string{"1"},
		},
		{
			name: "behavior trait bound rejects violation",
			criteria: Criteria{BehaviorTraits: map[catalog.Trait]TraitRequirement{
				catalog.TraitBarking: {Max: iptr(1)},
			}},
			wantIDs: []string{"2"}, // record 2 has unknown barking: skipped, not rejected
		},
		{
			name: "behavior trait exact",
			criteria: Criteria{BehaviorTraits: map[catalog.Trait]TraitRequirement{
				catalog.TraitHumanFriendly: {Exact: iptr(5)},
			}},
			wantIDs: []string{"1", "2"},
		},
		{
			name:     "min vaccinations",
			criteria: Criteria{Health: &HealthRequirements{MinVaccinations: iptr(2)}},
			wantIDs:  []string{"1"},
		},
		{
			name:     "no medical history",
			criteria: Criteria{Health: &HealthRequirements{NoMedicalHistory: true}},
			wantIDs:  []string{"1"},
		},
		{
			name:     "exclude condition case-insensitive",
			criteria: Criteria{Health: &HealthRequirements{ExcludeConditions: []string{"HEARTWORM"}}},
			wantIDs:  []string{"1"},
		},
		{
			name:     "max duration passes unknown duration",
			criteria: Criteria{Care: &CarePreferences{MaxDurationDays: iptr(30)}},
			wantIDs:  []string{"2"}, // record 1 has 90 days, record 2 unknown
		},
		{
			name:     "pickup method substring",
			criteria: Criteria{Care: &CarePreferences{PickupMethod: "direct pickup"}},
			wantIDs:  []string{"1"},
		},
		{
			name: "combined criteria AND",
			criteria: Criteria{
				AgeRange:    &Range{Min: fptr(1), Max: fptr(5)},
				WeightRange: &Range{Min: fptr(5), Max: fptr(15)},
			},
			wantIDs: []string{"1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Apply(sampleRecords(), tt.criteria)
			if err != nil {
				t.Fatalf("Apply failed: %v", err)
			}

			var gotIDs []string
			for _, r := range got {
				gotIDs = append(gotIDs, *r.ID)
			}

			if len(gotIDs) != len(tt.wantIDs) {
				t.Fatalf("got %v, want %v", gotIDs, tt.wantIDs)
			}
			for i := range tt.wantIDs {
				if gotIDs[i] != tt.wantIDs[i] {
					t.Errorf("got %v, want %v", gotIDs, tt.wantIDs)
					break
				}
			}
		})
	}
}

func TestApply_Idempotent(t *testing.T) {
	c := Criteria{
		AgeRange: &Range{Min: fptr(1), Max: fptr(5)},
		Hashtags: []string{"friendly"},
	}

	once, err := Apply(sampleRecords(), c)
	if err != nil {
		t.Fatalf("first Apply failed: %v", err)
	}
	twice, err := Apply(once, c)
	if err != nil {
		t.Fatalf("second Apply failed: %v", err)
	}

	if len(once) != len(twice) {
		t.Fatalf("re-applying changed result size: %d != %d", len(once), len(twice))
	}
	for i := range once {
		if *once[i].ID != *twice[i].ID {
			t.Errorf("re-applying changed result at %d: %s != %s", i, *once[i].ID, *twice[i].ID)
		}
	}
}

func TestApply_Monotonic(t *testing.T) {
	base := Criteria{Regions: []string{"Seoul", "Busan"}}
	narrowed := base
	narrowed.AgeRange = &Range{Min: fptr(1), Max: fptr(5)}

	wide, err := Apply(sampleRecords(), base)
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	narrow, err := Apply(sampleRecords(), narrowed)
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	if len(narrow) > len(wide) {
		t.Errorf("adding a criterion grew the result: %d > %d", len(narrow), len(wide))
	}
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	records := sampleRecords()
	before := *records[0].Age

	if _, err := Apply(records, Criteria{AgeRange: &Range{Min: fptr(0), Max: fptr(100)}}); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	if *records[0].Age != before {
		t.Error("Apply mutated an input record")
	}
	if records[0].Status != catalog.StatusAvailable {
		t.Error("Apply mutated record status")
	}
}
