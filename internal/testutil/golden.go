package testutil

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// updateGolden controls whether golden files should be updated.
// Use: go test ./... -update
var updateGolden = flag.Bool("update", false, "update golden files")

// ShouldUpdate returns true if golden files should be rewritten.
func ShouldUpdate() bool {
	return *updateGolden
}

// CompareGolden compares got against the golden file at path, failing with a
// diff on mismatch. If -update is set, the golden file is rewritten instead.
func CompareGolden(t *testing.T, path string, got []byte) {
	t.Helper()

	if *updateGolden {
		WriteGolden(t, path, got)
		t.Logf("updated golden: %s", path)

		return
	}

	expected, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("golden file missing: %s\n\ngot:\n%s\n\nrun with -update to create it", path, got)
		}

		t.Fatalf("read golden file: %v", err)
	}

	require.Equal(t, string(expected), string(got), "golden mismatch for %s (run with -update to refresh)", path)
}

// WriteGolden writes data to the golden file, creating parent directories.
func WriteGolden(t *testing.T, path string, data []byte) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, data, 0o644))
}
