package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/seobin0224/petmatch/internal/catalog"
	"github.com/seobin0224/petmatch/internal/match"
)

// parseRange parses a numeric range flag value.
//
//	"2-5"  -> min 2, max 5
//	"2-"   -> min 2, open above
//	"-5"   -> open below, max 5
//	"3"    -> exactly 3
func parseRange(s string) (*match.Range, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("empty range")
	}

	idx := strings.Index(s, "-")
	if idx < 0 {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid range %q", s)
		}
		return &match.Range{Min: &v, Max: &v}, nil
	}

	r := &match.Range{}
	if minStr := strings.TrimSpace(s[:idx]); minStr != "" {
		v, err := strconv.ParseFloat(minStr, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid range %q", s)
		}
		r.Min = &v
	}
	if maxStr := strings.TrimSpace(s[idx+1:]); maxStr != "" {
		v, err := strconv.ParseFloat(maxStr, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid range %q", s)
		}
		r.Max = &v
	}
	if r.Min == nil && r.Max == nil {
		return nil, fmt.Errorf("invalid range %q", s)
	}
	return r, nil
}

// traitByName resolves a behavior trait flag name
func traitByName(name string) (catalog.Trait, error) {
	trait := catalog.Trait(strings.TrimSpace(name))
	for _, t := range catalog.AllTraits {
		if t == trait {
			return trait, nil
		}
	}
	return "", fmt.Errorf("unknown behavior trait %q", name)
}

// parseTraitFlag parses a hard trait constraint.
//
//	"barking=2"    -> exactly 2
//	"barking=1-3"  -> between 1 and 3
//	"barking<=2"   -> at most 2
//	"barking>=4"   -> at least 4
func parseTraitFlag(s string) (catalog.Trait, match.TraitRequirement, error) {
	var req match.TraitRequirement

	for _, op := range []string{"<=", ">=", "="} {
		idx := strings.Index(s, op)
		if idx < 0 {
			continue
		}

		trait, err := traitByName(s[:idx])
		if err != nil {
			return "", req, err
		}
		value := strings.TrimSpace(s[idx+len(op):])

		switch op {
		case "<=":
			v, err := strconv.Atoi(value)
			if err != nil {
				return "", req, fmt.Errorf("invalid trait constraint %q", s)
			}
			req.Max = &v
		case ">=":
			v, err := strconv.Atoi(value)
			if err != nil {
				return "", req, fmt.Errorf("invalid trait constraint %q", s)
			}
			req.Min = &v
		case "=":
			if strings.Contains(value, "-") {
				r, err := parseRange(value)
				if err != nil {
					return "", req, fmt.Errorf("invalid trait constraint %q", s)
				}
				if r.Min != nil {
					min := int(*r.Min)
					req.Min = &min
				}
				if r.Max != nil {
					max := int(*r.Max)
					req.Max = &max
				}
			} else {
				v, err := strconv.Atoi(value)
				if err != nil {
					return "", req, fmt.Errorf("invalid trait constraint %q", s)
				}
				req.Exact = &v
			}
		}
		return trait, req, nil
	}

	return "", req, fmt.Errorf("invalid trait constraint %q (want name=value)", s)
}

// parseBehaviorFlag parses a soft behavior preference.
//
//	"barking=1"      -> ideal 1
//	"barking=1:2,3"  -> ideal 1, acceptable 2 and 3
func parseBehaviorFlag(s string) (catalog.Trait, match.BehaviorPreference, error) {
	var pref match.BehaviorPreference

	idx := strings.Index(s, "=")
	if idx < 0 {
		return "", pref, fmt.Errorf("invalid behavior preference %q (want name=ideal)", s)
	}

	trait, err := traitByName(s[:idx])
	if err != nil {
		return "", pref, err
	}

	value := s[idx+1:]
	if colon := strings.Index(value, ":"); colon >= 0 {
		for _, part := range strings.Split(value[colon+1:], ",") {
			v, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil {
				return "", pref, fmt.Errorf("invalid behavior preference %q", s)
			}
			pref.Acceptable = append(pref.Acceptable, v)
		}
		value = value[:colon]
	}

	ideal, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return "", pref, fmt.Errorf("invalid behavior preference %q", s)
	}
	pref.Ideal = ideal

	return trait, pref, nil
}

// parseWeightFlag parses a scoring weight override like "age=1.5"
func parseWeightFlag(s string) (string, float64, error) {
	idx := strings.Index(s, "=")
	if idx < 0 {
		return "", 0, fmt.Errorf("invalid weight %q (want dimension=value)", s)
	}

	dim := strings.TrimSpace(s[:idx])
	switch dim {
	case match.DimRegion, match.DimAge, match.DimSize, match.DimPersonality, match.DimBehavior:
	default:
		return "", 0, fmt.Errorf("unknown scoring dimension %q", dim)
	}

	w, err := strconv.ParseFloat(strings.TrimSpace(s[idx+1:]), 64)
	if err != nil {
		return "", 0, fmt.Errorf("invalid weight %q", s)
	}
	return dim, w, nil
}
