package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfo(t *testing.T) {
	origVersion, origCommit := Version, Commit
	defer func() {
		Version, Commit = origVersion, origCommit
	}()

	tests := []struct {
		name    string
		version string
		commit  string
		want    string
	}{
		{"unknown commit", "1.0.0", "unknown", "1.0.0"},
		{"short commit", "1.0.0", "abc", "1.0.0"},
		{"full hash truncated", "1.0.0", "abc1234567890", "1.0.0 (abc1234)"},
		{"seven chars stay bare", "2.0.0", "1234567", "2.0.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Version, Commit = tt.version, tt.commit
			assert.Equal(t, tt.want, Info())
		})
	}
}

func TestFull(t *testing.T) {
	origVersion, origCommit, origDate := Version, Commit, BuildDate
	defer func() {
		Version, Commit, BuildDate = origVersion, origCommit, origDate
	}()

	Version, Commit, BuildDate = "1.2.3", "deadbeef", "2024-06-01"

	full := Full()
	assert.Contains(t, full, "bsp-entity-generator 1.2.3")
	assert.Contains(t, full, "Commit: deadbeef")
	assert.Contains(t, full, "Built: 2024-06-01")
}
