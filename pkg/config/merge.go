package config

import (
	"fmt"
	"os"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// Merge layers a partial configuration over base and returns the merged
// result as a new configuration; neither input is modified. The merge is
// deep and field-level: data records are replaced wholesale, maps are
// merged key by key, and nil pointer fields of the partial leave the
// base untouched. Two exceptions to field-level merging:
//
//   - Padding is carried over only when the partial sets it explicitly.
//   - Title and description blocks replace wholesale, so an update that
//     supplies an empty text clears the slot instead of keeping the old
//     text.
func Merge(base, partial *PlotConfig) (*PlotConfig, error) {
	merged, err := base.Clone()
	if err != nil {
		return nil, fmt.Errorf("failed to snapshot base config: %w", err)
	}
	if merged == nil {
		merged = &PlotConfig{}
	}
	if partial == nil {
		return merged, nil
	}

	padding := merged.Padding
	if partial.Padding.IsSet() {
		padding = partial.Padding
	}
	if err := mergo.Merge(merged, partial, mergo.WithOverride); err != nil {
		return nil, fmt.Errorf("failed to merge config: %w", err)
	}
	merged.Padding = padding
	if partial.Title != nil {
		merged.Title = cloneText(partial.Title)
	}
	if partial.Description != nil {
		merged.Description = cloneText(partial.Description)
	}
	return merged, nil
}

func cloneText(t *Text) *Text {
	out := *t
	if t.AlignWithAxis != nil {
		v := *t.AlignWithAxis
		out.AlignWithAxis = &v
	}
	return &out
}

// Parse decodes a declarative YAML plot configuration.
func Parse(data []byte) (*PlotConfig, error) {
	var cfg PlotConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse plot config: %w", err)
	}
	return &cfg, nil
}

// LoadFile reads and parses a YAML plot configuration file.
func LoadFile(path string) (*PlotConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read plot config: %w", err)
	}
	return Parse(data)
}
