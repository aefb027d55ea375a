// Package config defines the user-facing plot configuration, the
// internal rendering configuration assembled from it, and the merge
// machinery between the two. A PlotConfig is immutable per lifecycle
// epoch; the RenderingConfig built from it is owned by a single builder
// and discarded wholesale on reconfiguration.
package config

import (
	"github.com/tiendc/go-deepcopy"

	"github.com/go-plotkit/plotkit/pkg/chrome"
	"github.com/go-plotkit/plotkit/pkg/theme"
)

// Record is one data row keyed by field name.
type Record = map[string]any

// EventHandler receives the payload of a view event.
type EventHandler func(payload any)

// Text configures a title or description block.
type Text struct {
	Text  string           `yaml:"text"`
	Style chrome.TextStyle `yaml:"style,omitempty"`
	// AlignWithAxis left-aligns the block with the panel edge instead of
	// the theme default; nil keeps the theme's choice.
	AlignWithAxis *bool `yaml:"alignWithAxis,omitempty"`
}

// Tooltip configures tooltip visibility and styling. Nil pointer fields
// defer to the theme.
type Tooltip struct {
	Visible   *bool             `yaml:"visible,omitempty"`
	ShowTitle *bool             `yaml:"showTitle,omitempty"`
	Shared    *bool             `yaml:"shared,omitempty"`
	Style     map[string]string `yaml:"style,omitempty"`
}

// Legend configures legend visibility, placement, and styling.
type Legend struct {
	Visible  *bool                `yaml:"visible,omitempty"`
	Position theme.LegendPosition `yaml:"position,omitempty"`
	Style    map[string]string    `yaml:"style,omitempty"`
}

// Meta carries per-field metadata merged into the scale configuration.
// It is applied after every other source, so field metadata always wins
// over chart-variant defaults.
type Meta struct {
	Alias     string   `yaml:"alias,omitempty"`
	Type      string   `yaml:"type,omitempty"`
	Min       *float64 `yaml:"min,omitempty"`
	Max       *float64 `yaml:"max,omitempty"`
	TickCount int      `yaml:"tickCount,omitempty"`
	Nice      *bool    `yaml:"nice,omitempty"`
	Formatter string   `yaml:"formatter,omitempty"`
}

// PlotConfig is the user-supplied configuration for one plot.
type PlotConfig struct {
	Data        []Record        `yaml:"data,omitempty"`
	Meta        map[string]Meta `yaml:"meta,omitempty"`
	Title       *Text           `yaml:"title,omitempty"`
	Description *Text           `yaml:"description,omitempty"`
	Padding     PaddingSpec     `yaml:"padding,omitempty"`
	Tooltip     *Tooltip        `yaml:"tooltip,omitempty"`
	Legend      *Legend         `yaml:"legend,omitempty"`
	// Events maps declared handler names (onClick, onMouseMove, ...) to
	// handler functions. Not representable in YAML.
	Events map[string]EventHandler `yaml:"-"`
	// Options holds chart-variant-specific configuration, opaque to the
	// orchestration core and interpreted by the Variant hooks.
	Options map[string]any `yaml:"options,omitempty"`
}

// Clone returns a deep, independent copy of the configuration. Event
// handlers are copied by reference; everything else is duplicated.
func (c *PlotConfig) Clone() (*PlotConfig, error) {
	if c == nil {
		return nil, nil
	}
	out := &PlotConfig{Padding: c.Padding}
	copies := []struct {
		dst any
		src any
	}{
		{&out.Data, c.Data},
		{&out.Meta, c.Meta},
		{&out.Title, c.Title},
		{&out.Description, c.Description},
		{&out.Tooltip, c.Tooltip},
		{&out.Legend, c.Legend},
		{&out.Options, c.Options},
	}
	for _, cp := range copies {
		if err := deepcopy.Copy(cp.dst, cp.src); err != nil {
			return nil, err
		}
	}
	if c.Events != nil {
		out.Events = make(map[string]EventHandler, len(c.Events))
		for name, handler := range c.Events {
			out.Events[name] = handler
		}
	}
	return out, nil
}
