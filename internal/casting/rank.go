package casting

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Rank orders match results by overall score descending, then measured
// field count descending (more evidence wins a tie), then talent name
// ascending with case-insensitive, numeric-aware collation so "Talent 2"
// sorts before "Talent 10". The sort is stable and the input slice is left
// untouched.
func Rank(results []*MatchResult) []*MatchResult {
	ranked := make([]*MatchResult, len(results))
	copy(ranked, results)

	coll := collate.New(language.Und, collate.IgnoreCase, collate.Numeric)
	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.OverallScore != b.OverallScore {
			return a.OverallScore > b.OverallScore
		}
		if a.MeasuredFieldCount != b.MeasuredFieldCount {
			return a.MeasuredFieldCount > b.MeasuredFieldCount
		}
		return coll.CompareString(a.Talent.Name, b.Talent.Name) < 0
	})

	return ranked
}

// RankTalentForBrief scores every talent against the brief and returns the
// results in rank order.
func RankTalentForBrief(talents []*Talent, brief *Brief) []*MatchResult {
	results := make([]*MatchResult, 0, len(talents))
	for _, talent := range talents {
		results = append(results, ComputeMatchScore(talent, brief))
	}
	return Rank(results)
}
