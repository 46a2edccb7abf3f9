package casting

import "strings"

// Gender is the closed category set used by briefs and roster records.
type Gender string

const (
	GenderMen   Gender = "men"
	GenderWomen Gender = "women"
	GenderOther Gender = "other"
)

// NormalizeGender maps a free-form gender string into a category. Matching
// is prefix-based on purpose: "Men's" and "MENSWEAR" are men, "Women" and
// "women's" are women, and anything else (including "Male"/"Female") is
// other. Callers relying on this coarseness include existing briefs, so the
// rule must not be tightened.
func NormalizeGender(raw string) Gender {
	s := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case strings.HasPrefix(s, "women"):
		return GenderWomen
	case strings.HasPrefix(s, "men"):
		return GenderMen
	default:
		return GenderOther
	}
}
