package report

import (
	"strings"
	"testing"

	"github.com/castingdesk/castmatch/internal/casting"
	"github.com/castingdesk/castmatch/internal/measure"
)

func TestShortlist(t *testing.T) {
	t.Parallel()

	results := []*casting.MatchResult{
		{
			Talent:             &casting.Talent{Name: "Ana Reyes"},
			OverallScore:       0.89,
			GenderMatch:        true,
			MeasuredFieldCount: 3,
			RequiredFieldCount: 3,
			AI:                 &casting.AINote{Fit: true, Score: 0.8},
		},
		{
			Talent:       &casting.Talent{Name: "Max Holt"},
			OverallScore: 0,
			GenderMatch:  false,
		},
	}

	out := Shortlist(results)

	for _, want := range []string{"Ana Reyes", "0.89", "fit 0.80", "Max Holt", "mismatch"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected table to contain %q:\n%s", want, out)
		}
	}
}

func TestBreakdown(t *testing.T) {
	t.Parallel()

	parsed := 68.0
	score := 1.0
	result := &casting.MatchResult{
		Talent: &casting.Talent{Name: "Ana Reyes"},
		FieldDetails: []casting.FieldDetail{
			{Key: "height", Label: "Height", Raw: measure.Text(`5'8"`), Parsed: &parsed, Required: true, Score: &score},
			{Key: "waist", Label: "Waist", Raw: measure.Text("slim"), Required: true},
			{Key: "shoe", Label: "Shoe", Raw: measure.Absent()},
		},
	}

	out := Breakdown(result)

	for _, want := range []string{"Height", `5'8"`, "68", "1.00", "Waist", "slim"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected table to contain %q:\n%s", want, out)
		}
	}

	// Unparsed and absent cells render as a dash.
	if !strings.Contains(out, noValue) {
		t.Fatalf("expected placeholder cells:\n%s", out)
	}
}
