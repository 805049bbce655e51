// ABOUTME: Thin wrapper over sahilm/fuzzy for ranking and "did you mean" hints
// ABOUTME: Suggest picks the closest known name for a mistyped one

package fuzzy

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// Match represents a single fuzzy match result.
type Match struct {
	Str   string
	Index int
	Score int
}

// Find ranks items against pattern, best first.
func Find(pattern string, items []string) []Match {
	results := fuzzy.Find(pattern, items)
	matches := make([]Match, len(results))
	for i, r := range results {
		matches[i] = Match{Str: r.Str, Index: r.Index, Score: r.Score}
	}
	return matches
}

// Suggest returns the known name closest to input. It tries input as a
// subsequence pattern first, then each known name against input, so both
// abbreviations ("win") and typos with extra letters ("maac") resolve.
func Suggest(input string, known []string) (string, bool) {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" || len(known) == 0 {
		return "", false
	}
	if m := Find(input, known); len(m) > 0 {
		return m[0].Str, true
	}

	best, bestScore := "", 0
	for _, name := range known {
		m := fuzzy.Find(name, []string{input})
		if len(m) > 0 && (best == "" || m[0].Score > bestScore) {
			best, bestScore = name, m[0].Score
		}
	}
	return best, best != ""
}
