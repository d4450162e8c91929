package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a        string
		b        string
		expected int
	}{
		{"", "", 0},
		{"light", "light", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"a", "b", 1},
		{"a", "ab", 1},
		{"ab", "a", 1},
		{"kitten", "sitting", 3},
		{"saturday", "sunday", 3},
		{"ABC", "abc", 3},

		// Entity key typos the suggestions exist for.
		{"brightness", "brigthness", 2},
		{"targetname", "targetnam", 1},
		{"spawnflags", "spawn_flags", 1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.expected, Levenshtein(tt.a, tt.b))
			assert.Equal(t, tt.expected, Levenshtein(tt.b, tt.a), "distance is symmetric")
		})
	}
}

func TestSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, Similarity("", ""))
	assert.Equal(t, 1.0, Similarity("origin", "origin"))
	assert.Equal(t, 0.0, Similarity("abc", "xyz"))
	assert.InDelta(t, 0.8, Similarity("angle", "angl"), 1e-9, "one deletion over five characters")
}
