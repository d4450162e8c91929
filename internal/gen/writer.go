package gen

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFiles writes all generated files to the output directory, creating
// it if needed.
func WriteFiles(files []GeneratedFile, outputDir string) error {
	err := os.MkdirAll(outputDir, dirPerm)
	if err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	for _, file := range files {
		outputPath := filepath.Join(outputDir, file.Filename)

		err := os.WriteFile(outputPath, file.Content, filePerm)
		if err != nil {
			return fmt.Errorf("writing file %s: %w", file.Filename, err)
		}
	}

	return nil
}

// WriteTo streams all generated files to w in order, for stdout use.
func WriteTo(w io.Writer, files []GeneratedFile) error {
	for _, file := range files {
		if _, err := w.Write(file.Content); err != nil {
			return fmt.Errorf("writing %s: %w", file.Filename, err)
		}
	}

	return nil
}
