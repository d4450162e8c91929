package gen

import (
	"os"
	"path/filepath"
	"strings"
)

// writeDebugUnformatted writes unformatted code to a sidecar file next to
// the intended output, so template bugs stay inspectable. Best-effort; a
// failed sidecar write never makes generation fail harder.
func writeDebugUnformatted(outDir, filename string, content []byte) error {
	if outDir == "" || filename == "" {
		return nil
	}

	if err := os.MkdirAll(outDir, dirPerm); err != nil {
		return err
	}

	// A .go suffix keeps editors highlighting it without colliding with the
	// real output name.
	sidecar := strings.TrimSuffix(filename, ".go") + ".unformatted.go"

	return os.WriteFile(filepath.Join(outDir, sidecar), content, filePerm)
}
