package override

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile loads and parses a YAML overrides file from the given path.
func LoadFile(path string) (*Overrides, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read overrides file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into Overrides.
func Parse(data []byte) (*Overrides, error) {
	var o Overrides

	err := yaml.Unmarshal(data, &o)
	if err != nil {
		return nil, fmt.Errorf("failed to parse overrides YAML: %w", err)
	}

	return &o, nil
}
