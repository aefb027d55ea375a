package theme

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Parse decodes a YAML theme document layered over the light theme, so a
// file only needs to state the values it changes.
func Parse(data []byte) (*Theme, error) {
	var overlay Theme
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return nil, fmt.Errorf("failed to parse theme: %w", err)
	}
	return Light().With(&overlay)
}

// LoadFile reads and parses a YAML theme file.
func LoadFile(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme file: %w", err)
	}
	return Parse(data)
}
