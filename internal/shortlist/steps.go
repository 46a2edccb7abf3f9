package shortlist

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/castingdesk/castmatch/internal/casting"

	"go.uber.org/zap"
)

type genderFilter struct {
	keepMismatch bool
}

// NewGender creates a filter that drops results whose gender gate failed.
func NewGender() Filter {
	return &genderFilter{}
}

func (f *genderFilter) Name() string { return "gender" }

func (f *genderFilter) Disable(string) {}

func (f *genderFilter) IsEnabled() bool { return true }

func (f *genderFilter) Validate(cfg *Config) error {
	f.keepMismatch = cfg != nil && cfg.KeepGenderMismatch
	return nil
}

func (f *genderFilter) Apply(_ context.Context, deps Deps, r *Results) (*Results, Step, error) {
	initial := r.Len()
	if f.keepMismatch {
		return r, Step{Initial: initial, Dropped: 0, Left: r.Len()}, nil
	}

	var targets []string
	for _, result := range r.Items {
		if !result.GenderMatch {
			targets = append(targets, result.Talent.Name)
		}
	}

	removed := r.Remove(targets)
	if deps.Logger != nil && len(removed) > 0 {
		deps.Logger.Info("excluding talent on gender mismatch",
			zap.Strings("excluded_talent", removed),
			zap.Int("talent_left", r.Len()),
		)
	}

	return r, Step{Initial: initial, Dropped: len(removed), Left: r.Len()}, nil
}

func (f *genderFilter) Status() Status {
	return Status{
		Name:    f.Name(),
		Enabled: true,
		Details: map[string]string{
			"keep_mismatch": strconv.FormatBool(f.keepMismatch),
		},
	}
}

type minScoreFilter struct {
	min float64
}

// NewMinScore creates a filter that drops results below the configured score floor.
func NewMinScore() Filter {
	return &minScoreFilter{}
}

func (f *minScoreFilter) Name() string { return "min_score" }

func (f *minScoreFilter) Disable(string) {}

func (f *minScoreFilter) IsEnabled() bool { return true }

func (f *minScoreFilter) Validate(cfg *Config) error {
	f.min = 0
	if cfg != nil {
		if cfg.MinScore < 0 || cfg.MinScore > 1 {
			return fmt.Errorf("min score must be within [0, 1], got %v", cfg.MinScore)
		}
		f.min = cfg.MinScore
	}
	return nil
}

func (f *minScoreFilter) Apply(_ context.Context, deps Deps, r *Results) (*Results, Step, error) {
	initial := r.Len()
	if f.min <= 0 {
		return r, Step{Initial: initial, Dropped: 0, Left: r.Len()}, nil
	}

	var targets []string
	for _, result := range r.Items {
		if result.OverallScore < f.min {
			targets = append(targets, result.Talent.Name)
		}
	}

	removed := r.Remove(targets)
	if deps.Logger != nil && len(removed) > 0 {
		deps.Logger.Info("excluding talent below score floor",
			zap.Float64("min_score", f.min),
			zap.Strings("excluded_talent", removed),
			zap.Int("talent_left", r.Len()),
		)
	}

	return r, Step{Initial: initial, Dropped: len(removed), Left: r.Len()}, nil
}

func (f *minScoreFilter) Status() Status {
	return Status{
		Name:    f.Name(),
		Enabled: true,
		Details: map[string]string{
			"min_score": fmt.Sprintf("%.2f", f.min),
		},
	}
}

type excludeFileFilter struct {
	path string
}

// NewExcludeFile creates a filter that removes talent listed in the exclude file.
func NewExcludeFile() Filter {
	return &excludeFileFilter{}
}

func (f *excludeFileFilter) Name() string { return "exclude_file" }

func (f *excludeFileFilter) Disable(string) {}

func (f *excludeFileFilter) IsEnabled() bool { return true }

func (f *excludeFileFilter) Validate(cfg *Config) error {
	f.path = ""
	if cfg != nil {
		f.path = strings.TrimSpace(cfg.ExcludeFile)
	}
	return nil
}

func (f *excludeFileFilter) Apply(_ context.Context, deps Deps, r *Results) (*Results, Step, error) {
	initial := r.Len()
	if f.path == "" {
		return r, Step{Initial: initial, Dropped: 0, Left: r.Len()}, nil
	}

	excluded, err := LoadExcluded(f.path)
	if err != nil {
		return r, Step{}, fmt.Errorf("getting excluded talent from file: %w", err)
	}

	removed := r.Remove(excluded.Names())
	if deps.Logger != nil && len(removed) > 0 {
		deps.Logger.Info("excluding talent based on exclude file",
			zap.String("path", f.path),
			zap.Strings("excluded_talent", removed),
			zap.Int("talent_left", r.Len()),
		)
	}

	return r, Step{Initial: initial, Dropped: len(removed), Left: r.Len()}, nil
}

func (f *excludeFileFilter) Status() Status {
	details := map[string]string{}
	if f.path != "" {
		details["path"] = f.path
	}
	return Status{Name: f.Name(), Enabled: true, Details: details}
}

type limitFilter struct {
	limit int
}

// NewLimit creates a filter that caps the shortlist length. It runs last so
// the cap applies after every other step has dropped its share.
func NewLimit() Filter {
	return &limitFilter{}
}

func (f *limitFilter) Name() string { return "limit" }

func (f *limitFilter) Disable(string) {}

func (f *limitFilter) IsEnabled() bool { return true }

func (f *limitFilter) Validate(cfg *Config) error {
	f.limit = 0
	if cfg != nil {
		if cfg.Limit < 0 {
			return fmt.Errorf("limit must not be negative, got %d", cfg.Limit)
		}
		f.limit = cfg.Limit
	}
	return nil
}

func (f *limitFilter) Apply(_ context.Context, deps Deps, r *Results) (*Results, Step, error) {
	initial := r.Len()
	dropped := r.Truncate(f.limit)
	if deps.Logger != nil && len(dropped) > 0 {
		deps.Logger.Info("capping shortlist length",
			zap.Int("limit", f.limit),
			zap.Strings("excluded_talent", dropped),
		)
	}

	return r, Step{Initial: initial, Dropped: len(dropped), Left: r.Len()}, nil
}

func (f *limitFilter) Status() Status {
	return Status{
		Name:    f.Name(),
		Enabled: true,
		Details: map[string]string{
			"limit": strconv.Itoa(f.limit),
		},
	}
}

type aiFitFilter struct {
	disabled bool
	reason   string
	config   *AIConfig
}

// NewAIFit creates the AI second-opinion step.
func NewAIFit() Filter {
	return &aiFitFilter{}
}

func (f *aiFitFilter) Name() string { return "ai_fit" }

func (f *aiFitFilter) Disable(reason string) {
	f.disabled = true
	f.reason = reason
}

func (f *aiFitFilter) IsEnabled() bool { return !f.disabled }

func (f *aiFitFilter) Validate(cfg *Config) error {
	f.config = nil
	if cfg != nil {
		f.config = cfg.AI
	}
	if !f.IsEnabled() {
		return nil
	}
	if cfg == nil || cfg.AI == nil {
		return fmt.Errorf("ai configuration is required when ai filter is enabled")
	}
	if cfg.AI.Gemini == nil {
		return fmt.Errorf("gemini configuration is required when ai filter is enabled")
	}
	if strings.TrimSpace(cfg.AI.Gemini.Model) == "" {
		return fmt.Errorf("gemini model is required when ai filter is enabled")
	}
	return nil
}

func (f *aiFitFilter) Apply(ctx context.Context, deps Deps, r *Results) (*Results, Step, error) {
	initial := r.Len()
	if deps.Matcher == nil {
		if deps.Logger != nil {
			deps.Logger.Info("ai matcher is not configured; skipping ai_fit step")
		}
		return r, Step{Initial: initial, Dropped: 0, Left: r.Len()}, nil
	}
	if deps.Brief == nil {
		return r, Step{}, fmt.Errorf("brief is required for AI evaluation")
	}

	kept := make([]*casting.MatchResult, 0, initial)
	for _, result := range r.Items {
		assessment, err := deps.Matcher.Evaluate(ctx, deps.Brief, result)
		if err != nil {
			// AI trouble never costs a candidate their spot.
			if deps.Logger != nil {
				deps.Logger.Warn("AI evaluation failed",
					zap.String("talent", result.Talent.Name),
					zap.Error(err),
				)
			}
			result.AI = &casting.AINote{Error: err.Error()}
			kept = append(kept, result)
			continue
		}

		if !assessment.Fit {
			if deps.Logger != nil {
				deps.Logger.Info("talent rejected by AI second opinion",
					zap.String("talent", result.Talent.Name),
					zap.Float64("ai_score", assessment.Score),
					zap.String("reason", assessment.Reason),
				)
			}
			continue
		}

		result.AI = &casting.AINote{
			Fit:    assessment.Fit,
			Score:  assessment.Score,
			Reason: assessment.Reason,
			Raw:    assessment.Raw,
		}
		kept = append(kept, result)
	}

	r.Items = kept
	return r, Step{Initial: initial, Dropped: initial - r.Len(), Left: r.Len()}, nil
}

func (f *aiFitFilter) Status() Status {
	details := map[string]string{}
	if f.config != nil {
		details["minimum_fit_score"] = fmt.Sprintf("%.2f", f.config.MinimumFitScore)
		if f.config.Gemini != nil {
			details["model"] = f.config.Gemini.Model
			details["max_log_length"] = strconv.Itoa(f.config.Gemini.MaxLogLength)
		}
	}
	return Status{Name: f.Name(), Enabled: f.IsEnabled(), Reason: f.reason, Details: details}
}
