// Package theme defines the resolved visual theme consumed by plot
// assembly and layout. A theme is read-only for the charting core: it is
// supplied once per lifecycle epoch and selectively overridden by user
// configuration, never mutated in place.
package theme

import (
	"fmt"

	"dario.cat/mergo"
	"github.com/tiendc/go-deepcopy"

	"github.com/go-plotkit/plotkit/pkg/chrome"
	"github.com/go-plotkit/plotkit/pkg/geom"
)

// LegendPosition names a legend docking edge.
type LegendPosition string

const (
	LegendTop    LegendPosition = "top"
	LegendRight  LegendPosition = "right"
	LegendBottom LegendPosition = "bottom"
	LegendLeft   LegendPosition = "left"
)

// TitleTheme holds the defaults for the plot title block.
type TitleTheme struct {
	// TopMargin is the gap between the canvas top edge and the title.
	TopMargin float64          `yaml:"topMargin"`
	Style     chrome.TextStyle `yaml:"style"`
	// AlignWithAxis left-aligns the title with the panel edge by default.
	AlignWithAxis bool `yaml:"alignWithAxis,omitempty"`
}

// DescriptionTheme holds the defaults for the description block placed
// under the title.
type DescriptionTheme struct {
	// TopMargin is the gap below the title (or the canvas edge when no
	// title exists).
	TopMargin float64 `yaml:"topMargin"`
	// BottomMargin extends the view margin below the description.
	BottomMargin float64          `yaml:"bottomMargin"`
	Style        chrome.TextStyle `yaml:"style"`
	// AlignWithAxis left-aligns the description with the panel edge by
	// default.
	AlignWithAxis bool `yaml:"alignWithAxis,omitempty"`
}

// LegendTheme holds legend placement and styling defaults.
type LegendTheme struct {
	Position LegendPosition    `yaml:"position"`
	Style    map[string]string `yaml:"style,omitempty"`
}

// TooltipTheme holds tooltip behavior and styling defaults.
type TooltipTheme struct {
	ShowTitle bool              `yaml:"showTitle"`
	Shared    bool              `yaml:"shared"`
	Style     map[string]string `yaml:"style,omitempty"`
}

// ChannelTheme carries per-channel visual defaults applied to geometry
// elements that do not specify their own.
type ChannelTheme struct {
	Fill      string  `yaml:"fill,omitempty"`
	Stroke    string  `yaml:"stroke,omitempty"`
	LineWidth float64 `yaml:"lineWidth,omitempty"`
	Opacity   float64 `yaml:"opacity,omitempty"`
}

// Theme is a fully resolved visual theme.
type Theme struct {
	// Background fills the canvas surface behind the panel.
	Background string `yaml:"background,omitempty"`
	// Padding is the default padding floor in top, right, bottom, left
	// order. Auto padding never resolves below these values.
	Padding [4]float64 `yaml:"padding"`

	Title       TitleTheme       `yaml:"title"`
	Description DescriptionTheme `yaml:"description"`
	Legend      LegendTheme      `yaml:"legend"`
	Tooltip     TooltipTheme     `yaml:"tooltip"`

	// Colors is the categorical palette.
	Colors []string `yaml:"colors,omitempty"`
	// Channels maps channel names (line, area, point, interval) to their
	// visual defaults.
	Channels map[string]ChannelTheme `yaml:"channels,omitempty"`
}

// PaddingFloor returns the default padding as a geom.Padding.
func (t *Theme) PaddingFloor() geom.Padding {
	return geom.PaddingFromSlice(t.Padding)
}

// Default returns the theme used when none is provided.
func Default() *Theme { return Light() }

// With returns a copy of t with the non-zero fields of overlay applied.
// The receiver is never mutated, including its nested maps.
func (t *Theme) With(overlay *Theme) (*Theme, error) {
	var cp Theme
	if err := deepcopy.Copy(&cp, t); err != nil {
		return nil, fmt.Errorf("failed to copy theme: %w", err)
	}
	if overlay != nil {
		if err := mergo.Merge(&cp, *overlay, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge theme overrides: %w", err)
		}
	}
	return &cp, nil
}

// Light returns the default light theme.
func Light() *Theme {
	return &Theme{
		Background: "#ffffff",
		Padding:    [4]float64{20, 20, 20, 20},
		Title: TitleTheme{
			TopMargin: 20,
			Style:     chrome.TextStyle{Fill: "#333333", FontSize: 18, FontWeight: chrome.FontWeightBold},
		},
		Description: DescriptionTheme{
			TopMargin:    12,
			BottomMargin: 24,
			Style:        chrome.TextStyle{Fill: "#8c8c8c", FontSize: 12},
		},
		Legend: LegendTheme{Position: LegendBottom},
		Tooltip: TooltipTheme{
			ShowTitle: true,
			Shared:    true,
		},
		Colors: []string{
			"#5b8ff9", "#5ad8a6", "#5d7092", "#f6bd16", "#e8684a",
			"#6dc8ec", "#9270ca", "#ff9d4d", "#269a99", "#ff99c3",
		},
		Channels: map[string]ChannelTheme{
			"line":     {Stroke: "#5b8ff9", LineWidth: 2},
			"area":     {Fill: "#5b8ff9", Opacity: 0.25},
			"point":    {Fill: "#5b8ff9", Stroke: "#ffffff", LineWidth: 1},
			"interval": {Fill: "#5b8ff9"},
		},
	}
}

// Dark returns the default dark theme.
func Dark() *Theme {
	t := Light()
	t.Background = "#141414"
	t.Title.Style.Fill = "#f0f0f0"
	t.Description.Style.Fill = "#a6a6a6"
	return t
}
