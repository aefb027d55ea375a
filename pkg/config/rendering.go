package config

import (
	"maps"

	"dario.cat/mergo"

	"github.com/go-plotkit/plotkit/pkg/chrome"
	"github.com/go-plotkit/plotkit/pkg/geom"
	"github.com/go-plotkit/plotkit/pkg/theme"
)

// ScaleConfig maps one data field onto a visual scale.
type ScaleConfig struct {
	Field     string
	Type      string
	Alias     string
	Min       *float64
	Max       *float64
	TickCount int
	Nice      *bool
	Formatter string
}

// AxisConfig configures the axis of one field.
type AxisConfig struct {
	Field   string
	Visible *bool
	Title   string
	Style   map[string]string
}

// CoordinateConfig selects the coordinate system for the panel.
type CoordinateConfig struct {
	Type       string
	Transposed bool
}

// ElementConfig describes one visual layer (geometry) of the chart.
type ElementConfig struct {
	Type     string
	Position string
	Color    string
	Shape    string
	Size     float64
	Adjust   string
	Style    map[string]string
}

// AnnotationConfig describes one annotation drawn over the panel.
type AnnotationConfig struct {
	Type    string
	Start   []any
	End     []any
	Content string
	Style   map[string]string
}

// InteractionConfig names an interaction behavior with its options.
type InteractionConfig struct {
	Type string
	Cfg  map[string]any
}

// AnimationConfig controls enter/update animation of the view.
type AnimationConfig struct {
	Enabled  bool
	Duration int
	Easing   string
}

// TooltipSection is the assembled tooltip configuration. Disabled is a
// short-circuit sentinel: once set, no further merging reaches the
// section.
type TooltipSection struct {
	Disabled  bool
	ShowTitle bool
	Shared    bool
	Style     map[string]string
}

// LegendSection is the assembled legend configuration, with the same
// disabled short-circuit as TooltipSection.
type LegendSection struct {
	Disabled bool
	Position theme.LegendPosition
	Style    map[string]string
}

// ChromeSection is the assembled placement of a title or description
// block. A nil section means the slot is explicitly cleared.
type ChromeSection struct {
	Text          string
	Style         chrome.TextStyle
	AlignWithAxis bool
	// LeftMargin and WrapWidth derive from the panel range.
	LeftMargin float64
	WrapWidth  float64
	// TopMargin is the theme constant; for a description the measured
	// title height is added at placement time.
	TopMargin float64
}

// RenderingConfig is the fully assembled configuration handed to the
// rendering engine. It is built once per lifecycle epoch; mutating it
// after the drawable view exists has no effect until the next full
// re-initialization.
type RenderingConfig struct {
	Theme        *theme.Theme
	Data         []Record
	Scales       map[string]ScaleConfig
	Axes         map[string]AxisConfig
	Coordinate   CoordinateConfig
	Tooltip      TooltipSection
	Legend       LegendSection
	Elements     []ElementConfig
	Annotations  []AnnotationConfig
	Interactions []InteractionConfig
	Animation    AnimationConfig
	Title        *ChromeSection
	Description  *ChromeSection
	PanelRange   geom.BBox
}

// Builder owns a RenderingConfig under assembly and exposes
// section-scoped operations. Map-backed sections merge field-by-field;
// element, annotation, and interaction lists are append-only.
type Builder struct {
	cfg *RenderingConfig
}

// NewBuilder starts a RenderingConfig seeded with the structural
// defaults: legend placement and tooltip behavior from the theme, a
// cartesian coordinate, and empty containers for every section.
func NewBuilder(th *theme.Theme) *Builder {
	return &Builder{cfg: &RenderingConfig{
		Theme:  th,
		Scales: make(map[string]ScaleConfig),
		Axes:   make(map[string]AxisConfig),
		Coordinate: CoordinateConfig{
			Type: "cartesian",
		},
		Tooltip: TooltipSection{
			ShowTitle: th.Tooltip.ShowTitle,
			Shared:    th.Tooltip.Shared,
			Style:     maps.Clone(th.Tooltip.Style),
		},
		Legend: LegendSection{
			Position: th.Legend.Position,
			Style:    maps.Clone(th.Legend.Style),
		},
	}}
}

// Config returns the assembled configuration.
func (b *Builder) Config() *RenderingConfig {
	return b.cfg
}

// SetData binds the data records.
func (b *Builder) SetData(data []Record) {
	b.cfg.Data = data
}

// SetPanelRange records the resolved panel rectangle.
func (b *Builder) SetPanelRange(panel geom.BBox) {
	b.cfg.PanelRange = panel
}

// MergeScale merges patch into the scale for field. Zero fields of the
// patch leave existing values untouched.
func (b *Builder) MergeScale(field string, patch ScaleConfig) error {
	existing := b.cfg.Scales[field]
	if err := mergo.Merge(&existing, patch, mergo.WithOverride); err != nil {
		return err
	}
	existing.Field = field
	b.cfg.Scales[field] = existing
	return nil
}

// MergeAxis merges patch into the axis for field.
func (b *Builder) MergeAxis(field string, patch AxisConfig) error {
	existing := b.cfg.Axes[field]
	if err := mergo.Merge(&existing, patch, mergo.WithOverride); err != nil {
		return err
	}
	existing.Field = field
	b.cfg.Axes[field] = existing
	return nil
}

// SetCoordinate replaces the coordinate configuration.
func (b *Builder) SetCoordinate(c CoordinateConfig) {
	b.cfg.Coordinate = c
}

// MergeTooltip merges patch into the tooltip section. Once the section
// is disabled the merge is a no-op.
func (b *Builder) MergeTooltip(patch *Tooltip) error {
	if b.cfg.Tooltip.Disabled || patch == nil {
		return nil
	}
	if patch.ShowTitle != nil {
		b.cfg.Tooltip.ShowTitle = *patch.ShowTitle
	}
	if patch.Shared != nil {
		b.cfg.Tooltip.Shared = *patch.Shared
	}
	return mergeStyle(&b.cfg.Tooltip.Style, patch.Style)
}

// MergeLegend merges patch into the legend section. Once the section is
// disabled the merge is a no-op.
func (b *Builder) MergeLegend(patch *Legend) error {
	if b.cfg.Legend.Disabled || patch == nil {
		return nil
	}
	if patch.Position != "" {
		b.cfg.Legend.Position = patch.Position
	}
	return mergeStyle(&b.cfg.Legend.Style, patch.Style)
}

// DisableTooltip marks the tooltip section as disabled; later merges
// into the section are ignored.
func (b *Builder) DisableTooltip() {
	b.cfg.Tooltip = TooltipSection{Disabled: true}
}

// DisableLegend marks the legend section as disabled; later merges into
// the section are ignored.
func (b *Builder) DisableLegend() {
	b.cfg.Legend = LegendSection{Disabled: true}
}

// AppendElement adds a visual layer. Elements are an ordered list, never
// a keyed merge: a chart may declare several layers of the same type.
func (b *Builder) AppendElement(e ElementConfig) {
	b.cfg.Elements = append(b.cfg.Elements, e)
}

// AppendAnnotation adds an annotation.
func (b *Builder) AppendAnnotation(a AnnotationConfig) {
	b.cfg.Annotations = append(b.cfg.Annotations, a)
}

// AppendInteraction adds an interaction descriptor.
func (b *Builder) AppendInteraction(i InteractionConfig) {
	b.cfg.Interactions = append(b.cfg.Interactions, i)
}

// SetAnimation replaces the animation configuration.
func (b *Builder) SetAnimation(a AnimationConfig) {
	b.cfg.Animation = a
}

// SetTitle fills the title slot.
func (b *Builder) SetTitle(s *ChromeSection) {
	b.cfg.Title = s
}

// ClearTitle explicitly empties the title slot so a configuration update
// that drops the title also releases its occupied space.
func (b *Builder) ClearTitle() {
	b.cfg.Title = nil
}

// SetDescription fills the description slot.
func (b *Builder) SetDescription(s *ChromeSection) {
	b.cfg.Description = s
}

// ClearDescription explicitly empties the description slot.
func (b *Builder) ClearDescription() {
	b.cfg.Description = nil
}

func mergeStyle(dst *map[string]string, src map[string]string) error {
	if len(src) == 0 {
		return nil
	}
	if *dst == nil {
		*dst = make(map[string]string, len(src))
	}
	return mergo.Merge(dst, src, mergo.WithOverride)
}
