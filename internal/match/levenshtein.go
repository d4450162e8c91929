package match

// Levenshtein computes the edit distance between two strings: the minimum
// number of single-character insertions, deletions and substitutions
// turning one into the other. Two rows of the DP matrix suffice, so space
// is O(min(len(a), len(b))).
func Levenshtein(a, b string) int {
	if a == b {
		return 0
	}

	if len(a) == 0 {
		return len(b)
	}

	if len(b) == 0 {
		return len(a)
	}

	// Keep a the shorter string; the rows span it.
	if len(a) > len(b) {
		a, b = b, a
	}

	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)

	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(b); j++ {
		curr[0] = j

		for i := 1; i <= len(a); i++ {
			cost := 0
			if a[i-1] != b[j-1] {
				cost = 1
			}

			curr[i] = min(prev[i]+1, curr[i-1]+1, prev[i-1]+cost)
		}

		prev, curr = curr, prev
	}

	return prev[len(a)]
}

// Similarity is the normalized inverse of the edit distance: 1 for equal
// strings, 0 when every character differs.
func Similarity(a, b string) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1.0
	}

	longest := max(len(a), len(b))

	return 1.0 - float64(Levenshtein(a, b))/float64(longest)
}
