package gemini

import (
	"context"
	"math"
	"strings"
	"testing"

	"github.com/castingdesk/castmatch/internal/casting"

	"go.uber.org/zap"
)

type stubGenerator struct {
	response   string
	err        error
	lastPrompt string
}

func (s *stubGenerator) GenerateContent(_ context.Context, prompt string) (string, error) {
	s.lastPrompt = prompt
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func evalResult() *casting.MatchResult {
	return &casting.MatchResult{
		Talent:       &casting.Talent{Name: "Ana Reyes", Gender: "women"},
		OverallScore: 0.82,
		GenderMatch:  true,
	}
}

func TestMatcherEvaluate(t *testing.T) {
	stub := &stubGenerator{response: `{"fit": true, "score": 0.9, "reason": "Within range on every read field"}`}
	matcher := NewMatcher(stub, 0.5, 0, zap.NewNop())

	assessment, err := matcher.Evaluate(context.Background(), casting.DefaultBrief(), evalResult())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !assessment.Fit {
		t.Fatalf("expected fit to be true")
	}
	if assessment.Score != 0.9 {
		t.Fatalf("expected score 0.9, got %v", assessment.Score)
	}
	if assessment.Reason == "" {
		t.Fatalf("expected reason to be populated")
	}
	if assessment.Raw == "" {
		t.Fatalf("expected raw response to be kept")
	}

	if stub.lastPrompt == "" {
		t.Fatalf("expected prompt to be sent")
	}
	if !strings.Contains(stub.lastPrompt, "Ana Reyes") {
		t.Fatalf("expected candidate payload in prompt")
	}
	if strings.Contains(stub.lastPrompt, "{{BRIEF_JSON}}") || strings.Contains(stub.lastPrompt, "{{CANDIDATE_JSON}}") {
		t.Fatalf("expected placeholders to be substituted")
	}
}

func TestMatcherScoreThreshold(t *testing.T) {
	stub := &stubGenerator{response: `{"fit": true, "score": 0.3, "reason": "Borderline"}`}
	matcher := NewMatcher(stub, 0.5, 0, zap.NewNop())

	assessment, err := matcher.Evaluate(context.Background(), casting.DefaultBrief(), evalResult())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if assessment.Fit {
		t.Fatalf("expected fit to be forced false below threshold")
	}
}

func TestMatcherFencedResponse(t *testing.T) {
	stub := &stubGenerator{response: "```json\n{\"fit\": false, \"score\": 0.2, \"reason\": \"Too far outside range\"}\n```"}
	matcher := NewMatcher(stub, 0, 0, zap.NewNop())

	assessment, err := matcher.Evaluate(context.Background(), casting.DefaultBrief(), evalResult())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if assessment.Fit {
		t.Fatalf("expected fit false")
	}
	if assessment.Score != 0.2 {
		t.Fatalf("expected score 0.2, got %v", assessment.Score)
	}
}

func TestMatcherInvalidResponse(t *testing.T) {
	stub := &stubGenerator{response: "I cannot help with that."}
	matcher := NewMatcher(stub, 0, 0, zap.NewNop())

	if _, err := matcher.Evaluate(context.Background(), casting.DefaultBrief(), evalResult()); err == nil {
		t.Fatalf("expected error for non-JSON response")
	}
}

func TestMatcherRequiresInputs(t *testing.T) {
	matcher := NewMatcher(&stubGenerator{}, 0, 0, zap.NewNop())

	if _, err := matcher.Evaluate(context.Background(), nil, evalResult()); err == nil {
		t.Fatalf("expected error for nil brief")
	}
	if _, err := matcher.Evaluate(context.Background(), casting.DefaultBrief(), nil); err == nil {
		t.Fatalf("expected error for nil result")
	}
}

func TestCoercions(t *testing.T) {
	t.Parallel()

	if !coerceBool("Yes") || coerceBool("nope") || !coerceBool(1.0) {
		t.Fatalf("unexpected bool coercion")
	}

	if got := coerceFloat("0.75"); got != 0.75 {
		t.Fatalf("expected 0.75, got %v", got)
	}
	if got := coerceFloat("not a number"); !math.IsNaN(got) {
		t.Fatalf("expected NaN, got %v", got)
	}

	if got := coerceString("  padded  "); got != "padded" {
		t.Fatalf("expected trimmed string, got %q", got)
	}
}

func TestExtractJSON(t *testing.T) {
	t.Parallel()

	fenced := "```json\n{\"fit\": true}\n```"
	if got := extractJSON(fenced); got != `{"fit": true}` {
		t.Fatalf("unexpected extraction: %q", got)
	}

	plain := ` {"fit": false} `
	if got := extractJSON(plain); got != `{"fit": false}` {
		t.Fatalf("unexpected extraction: %q", got)
	}
}
