package shortlist

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/castingdesk/castmatch/internal/casting"
)

// Results wraps the ranked match results flowing through the shortlist
// pipeline. All removal operations preserve the rank order.
type Results struct {
	Items []*casting.MatchResult
}

func (r *Results) Len() int {
	return len(r.Items)
}

func (r *Results) Names() []string {
	names := make([]string, 0, len(r.Items))
	for _, result := range r.Items {
		names = append(names, result.Talent.Name)
	}
	return names
}

func (r *Results) FindByName(name string) *casting.MatchResult {
	for _, result := range r.Items {
		if result.Talent.Name == name {
			return result
		}
	}
	return nil
}

// Remove drops results whose talent name is in targets, keeping the
// remaining results in order. It returns the names actually removed.
func (r *Results) Remove(targets []string) []string {
	if len(targets) == 0 {
		return nil
	}

	drop := make(map[string]bool, len(targets))
	for _, name := range targets {
		drop[name] = true
	}

	var removed []string
	kept := r.Items[:0]
	for _, result := range r.Items {
		if drop[result.Talent.Name] {
			removed = append(removed, result.Talent.Name)
			continue
		}
		kept = append(kept, result)
	}
	r.Items = kept

	return removed
}

// Truncate caps the shortlist at n results, returning the names dropped off
// the tail. Non-positive n means no cap.
func (r *Results) Truncate(n int) []string {
	if n <= 0 || len(r.Items) <= n {
		return nil
	}

	var dropped []string
	for _, result := range r.Items[n:] {
		dropped = append(dropped, result.Talent.Name)
	}
	r.Items = r.Items[:n]

	return dropped
}

// DumpToTmpFile writes the current shortlist to a temporary JSON file and
// returns its name.
func (r *Results) DumpToTmpFile() (string, error) {
	file, err := os.CreateTemp("", "shortlist_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return "", err
	}
	return file.Name(), nil
}

// ReportByTalent groups the per-field outcome of every result by talent for
// a quick textual report.
func (r *Results) ReportByTalent() map[string][]map[string]string {
	report := make(map[string][]map[string]string)
	for _, result := range r.Items {
		key := fmt.Sprintf("%s (%.2f)", result.Talent.Name, result.OverallScore)
		for _, detail := range result.FieldDetails {
			entry := map[string]string{
				"field":    detail.Label,
				"raw":      detail.Raw.Display(),
				"required": fmt.Sprintf("%t", detail.Required),
			}
			if detail.Parsed != nil {
				entry["parsed"] = fmt.Sprintf("%g", *detail.Parsed)
			}
			if detail.Score != nil {
				entry["score"] = fmt.Sprintf("%.2f", *detail.Score)
			}
			report[key] = append(report[key], entry)
		}
		if result.AI != nil {
			note := map[string]string{
				"field": "ai note",
			}
			if result.AI.Error != "" {
				note["error"] = result.AI.Error
			} else {
				note["fit"] = fmt.Sprintf("%t", result.AI.Fit)
				note["score"] = fmt.Sprintf("%.2f", result.AI.Score)
				note["reason"] = result.AI.Reason
			}
			report[key] = append(report[key], note)
		}
	}
	return report
}
