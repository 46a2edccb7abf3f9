package measure

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Factor for converting centimeters to inches.
const cmToInches = 0.393701

type pattern struct {
	re      *regexp.Regexp
	convert func(groups []string) (float64, bool)
}

// patterns is tried in order and the first regexp that matches decides the
// outcome. The order matters: a plain number would also match the suit-size
// and centimeter inputs if it came first.
var patterns = []pattern{
	{
		// Feet and inches: 5'9" or 5'9. An inches component of 12 or more
		// means the value is malformed, not that it rolls over into feet.
		re: regexp.MustCompile(`^(\d+)'\s*(\d+(?:\.\d+)?)"?$`),
		convert: func(groups []string) (float64, bool) {
			feet, err := strconv.ParseFloat(groups[1], 64)
			if err != nil {
				return 0, false
			}
			inches, err := strconv.ParseFloat(groups[2], 64)
			if err != nil || inches >= 12 {
				return 0, false
			}
			return feet*12 + inches, true
		},
	},
	{
		// Bare inches: 34"
		re: regexp.MustCompile(`^(\d+(?:\.\d+)?)\s*"$`),
		convert: func(groups []string) (float64, bool) {
			return parseGroup(groups[1])
		},
	},
	{
		// Centimeters: 175cm or 175 CM, converted to inches at one decimal.
		re: regexp.MustCompile(`(?i)^(\d+(?:\.\d+)?)\s*cm$`),
		convert: func(groups []string) (float64, bool) {
			cm, ok := parseGroup(groups[1])
			if !ok {
				return 0, false
			}
			return math.Round(cm*cmToInches*10) / 10, true
		},
	},
	{
		// Suit and dress sizing with a cut suffix: 40R, 42XL, 38s.
		re: regexp.MustCompile(`(?i)^(\d+(?:\.\d+)?)\s*[rsxl]+$`),
		convert: func(groups []string) (float64, bool) {
			return parseGroup(groups[1])
		},
	},
	{
		// Plain decimal number as a string: 8.5
		re: regexp.MustCompile(`^(\d+(?:\.\d+)?)$`),
		convert: func(groups []string) (float64, bool) {
			return parseGroup(groups[1])
		},
	},
}

// Parse converts a raw measurement into canonical inches. It never fails
// loudly: unrecognized input simply reports no parse, since casting data is
// human-entered and partial.
func Parse(v Value) (float64, bool) {
	switch v.kind {
	case kindNumeric:
		if math.IsNaN(v.num) || math.IsInf(v.num, 0) {
			return 0, false
		}
		return v.num, true
	case kindText:
		return parseText(v.text)
	default:
		return 0, false
	}
}

func parseText(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}

	for _, p := range patterns {
		if groups := p.re.FindStringSubmatch(s); groups != nil {
			return p.convert(groups)
		}
	}

	return 0, false
}

func parseGroup(s string) (float64, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
