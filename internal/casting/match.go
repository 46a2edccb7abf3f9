package casting

import (
	"math"

	"github.com/castingdesk/castmatch/internal/measure"
)

// FieldDetail is the per-field parse and score trace for one requirement.
type FieldDetail struct {
	Key      string        `json:"key"`
	Label    string        `json:"label"`
	Raw      measure.Value `json:"raw"`
	Parsed   *float64      `json:"parsed,omitempty"`
	Required bool          `json:"required"`
	Score    *float64      `json:"score,omitempty"`
}

// AINote carries an optional AI second opinion attached to a result by the
// shortlist pipeline.
type AINote struct {
	Fit    bool    `json:"fit,omitempty"`
	Score  float64 `json:"score,omitempty"`
	Reason string  `json:"reason,omitempty"`
	Raw    string  `json:"raw,omitempty"`
	Error  string  `json:"error,omitempty"`
}

// MatchResult is one talent's outcome against one brief.
type MatchResult struct {
	Talent             *Talent       `json:"talent"`
	OverallScore       float64       `json:"overall_score"`
	GenderMatch        bool          `json:"gender_match"`
	FieldDetails       []FieldDetail `json:"field_details"`
	MeasuredFieldCount int           `json:"measured_field_count"`
	RequiredFieldCount int           `json:"required_field_count"`
	AI                 *AINote       `json:"ai,omitempty"`
}

// ComputeMatchScore scores one talent against one brief. Every requirement
// produces exactly one detail entry, in the brief's own field order. A field
// contributes to the average only when it is constrained and its raw value
// parsed; unreadable data is excluded from the average, never scored as
// zero. A gender mismatch forces the overall score to 0 regardless of
// measurements.
func ComputeMatchScore(talent *Talent, brief *Brief) *MatchResult {
	genderMatch := NormalizeGender(talent.Gender) == brief.Gender

	details := make([]FieldDetail, 0, len(brief.Requirements))
	var sum float64
	measured := 0
	required := 0

	for _, req := range brief.Requirements {
		raw := talent.Measurement(req.Key)
		parsed, ok := measure.Parse(raw)
		constrained := req.Range.Constrained()
		if constrained {
			required++
		}

		detail := FieldDetail{
			Key:      req.Key,
			Label:    measure.Label(req.Key),
			Raw:      raw,
			Required: constrained,
		}

		if ok {
			v := parsed
			detail.Parsed = &v
		}

		if constrained && ok {
			score := scoreField(parsed, req.Range)
			detail.Score = &score
			sum += score
			measured++
		}

		details = append(details, detail)
	}

	var overall float64
	switch {
	case !genderMatch:
		overall = 0
	case measured == 0:
		// A brief with requirements none of which could be evaluated is a
		// non-match; a brief with no real requirements matches vacuously.
		if required == 0 {
			overall = 1
		}
	default:
		overall = round2(sum / float64(measured))
	}

	return &MatchResult{
		Talent:             talent,
		OverallScore:       overall,
		GenderMatch:        genderMatch,
		FieldDetails:       details,
		MeasuredFieldCount: measured,
		RequiredFieldCount: required,
	}
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
