package ai

import (
	"context"

	"github.com/castingdesk/castmatch/internal/casting"
)

// FitAssessment is an AI second opinion on one match result.
type FitAssessment struct {
	Fit    bool
	Score  float64
	Reason string
	Raw    string
}

// Matcher evaluates how well a scored candidate fits a casting brief beyond
// the numeric measurements.
type Matcher interface {
	Evaluate(ctx context.Context, brief *casting.Brief, result *casting.MatchResult) (*FitAssessment, error)
}
