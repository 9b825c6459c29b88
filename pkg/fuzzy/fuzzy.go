// Package fuzzy provides the default similarity scorer for the search engines.
package fuzzy

import (
	"github.com/hbollon/go-edlib"
)

// Score rates how well pattern matches candidate using Jaro-Winkler
// similarity, in the 0..1 range. Empty inputs score 0 so the underlying
// algorithm never sees them. Deterministic for identical inputs, which the
// engines rely on for stable result ordering.
func Score(pattern, candidate string) float64 {
	if pattern == "" || candidate == "" {
		return 0
	}
	sim, err := edlib.StringsSimilarity(pattern, candidate, edlib.JaroWinkler)
	if err != nil {
		return 0
	}
	return float64(sim)
}
