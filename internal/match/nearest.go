package match

import "strings"

// DefaultMinScore is the minimum similarity for a suggestion.
const DefaultMinScore = 0.7

// Fold normalizes a key or classname for comparison: case is dropped and
// so are the separators map authors use inconsistently.
func Fold(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for _, r := range strings.ToLower(s) {
		if r == '_' || r == '-' || r == ' ' {
			continue
		}

		b.WriteRune(r)
	}

	return b.String()
}

// Nearest returns the candidate most similar to target, if any scores at
// least minScore after folding. Ties keep the earliest candidate, so
// callers passing a deterministic order get a deterministic suggestion.
func Nearest(target string, candidates []string, minScore float64) (string, bool) {
	folded := Fold(target)

	best := ""
	bestScore := 0.0

	for _, c := range candidates {
		score := Similarity(folded, Fold(c))
		if score > bestScore {
			best = c
			bestScore = score
		}
	}

	if bestScore < minScore {
		return "", false
	}

	return best, true
}
