package config

import (
	"github.com/go-plotkit/plotkit/pkg/chrome"
	"github.com/go-plotkit/plotkit/pkg/errors"
	"github.com/go-plotkit/plotkit/pkg/geom"
	"github.com/go-plotkit/plotkit/pkg/theme"
)

// Variant is the capability interface a concrete chart type implements
// to contribute its specific configuration. Each hook may only write to
// its own named section of the builder; the assembler fixes the order in
// which hooks run.
type Variant interface {
	DefineScales(b *Builder, props *PlotConfig) error
	DefineAxes(b *Builder, props *PlotConfig) error
	DefineCoordinate(b *Builder, props *PlotConfig) error
	DefineElements(b *Builder, props *PlotConfig) error
	DefineAnnotations(b *Builder, props *PlotConfig) error
	DefineAnimation(b *Builder, props *PlotConfig) error
	DefineInteractions(b *Builder, props *PlotConfig) error
}

// BaseVariant implements Variant with no-ops. Concrete chart types embed
// it and override only the hooks they need.
type BaseVariant struct{}

func (BaseVariant) DefineScales(*Builder, *PlotConfig) error       { return nil }
func (BaseVariant) DefineAxes(*Builder, *PlotConfig) error         { return nil }
func (BaseVariant) DefineCoordinate(*Builder, *PlotConfig) error   { return nil }
func (BaseVariant) DefineElements(*Builder, *PlotConfig) error     { return nil }
func (BaseVariant) DefineAnnotations(*Builder, *PlotConfig) error  { return nil }
func (BaseVariant) DefineAnimation(*Builder, *PlotConfig) error    { return nil }
func (BaseVariant) DefineInteractions(*Builder, *PlotConfig) error { return nil }

// Assembler builds a RenderingConfig from user configuration and a
// theme. It is pure with respect to external state: it only reads its
// inputs.
type Assembler struct {
	variant Variant
}

// NewAssembler creates an assembler for the given chart variant. A nil
// variant contributes nothing beyond the structural defaults.
func NewAssembler(v Variant) *Assembler {
	if v == nil {
		v = BaseVariant{}
	}
	return &Assembler{variant: v}
}

// Assemble merges configuration sources into one RenderingConfig, in
// precedence order with the strongest source last:
//
//  1. structural defaults seeded by the builder from the theme
//  2. chart-variant hooks
//  3. cross-cutting user overrides (tooltip, legend, title, description)
//  4. per-field meta, merged into the scales
//
// The panel range must already be resolved: title and description
// placement derives its left margin and wrap width from it.
func (a *Assembler) Assemble(props *PlotConfig, th *theme.Theme, panel geom.BBox) (*RenderingConfig, error) {
	const op = "config.Assemble"
	if props == nil {
		return nil, errors.New(op, errors.KindConfig, "nil plot configuration")
	}
	if th == nil {
		return nil, errors.New(op, errors.KindConfig, "nil theme")
	}

	b := NewBuilder(th)
	b.SetData(props.Data)
	b.SetPanelRange(panel)

	hooks := []func(*Builder, *PlotConfig) error{
		a.variant.DefineScales,
		a.variant.DefineAxes,
		a.variant.DefineCoordinate,
		a.variant.DefineElements,
		a.variant.DefineAnnotations,
		a.variant.DefineAnimation,
		a.variant.DefineInteractions,
	}
	for _, hook := range hooks {
		if err := hook(b, props); err != nil {
			return nil, errors.Wrap(op, errors.KindConfig, err)
		}
	}

	if err := a.applyUserOverrides(b, props, th, panel); err != nil {
		return nil, errors.Wrap(op, errors.KindConfig, err)
	}

	// Per-field metadata is applied last so it always wins over variant
	// defaults.
	for field, meta := range props.Meta {
		patch := ScaleConfig{
			Alias:     meta.Alias,
			Type:      meta.Type,
			Min:       meta.Min,
			Max:       meta.Max,
			TickCount: meta.TickCount,
			Nice:      meta.Nice,
			Formatter: meta.Formatter,
		}
		if err := b.MergeScale(field, patch); err != nil {
			return nil, errors.Wrap(op, errors.KindConfig, err)
		}
	}

	return b.Config(), nil
}

func (a *Assembler) applyUserOverrides(b *Builder, props *PlotConfig, th *theme.Theme, panel geom.BBox) error {
	if props.Tooltip != nil && props.Tooltip.Visible != nil && !*props.Tooltip.Visible {
		b.DisableTooltip()
	} else if err := b.MergeTooltip(props.Tooltip); err != nil {
		return err
	}

	if props.Legend != nil && props.Legend.Visible != nil && !*props.Legend.Visible {
		b.DisableLegend()
	} else if err := b.MergeLegend(props.Legend); err != nil {
		return err
	}

	if props.Title != nil && props.Title.Text != "" {
		b.SetTitle(chromeSection(props.Title, th.Title.Style, th.Title.TopMargin, th.Title.AlignWithAxis, panel))
	} else {
		b.ClearTitle()
	}

	if props.Description != nil && props.Description.Text != "" {
		b.SetDescription(chromeSection(props.Description, th.Description.Style, th.Description.TopMargin, th.Description.AlignWithAxis, panel))
	} else {
		b.ClearDescription()
	}
	return nil
}

// chromeSection positions a text block against the panel: left margin
// from the panel's left edge, wrap width from the panel's width, style
// from the theme overridden by the user's style, alignment from the
// user's choice overridden onto the theme default.
func chromeSection(text *Text, themeStyle chrome.TextStyle, topMargin float64, themeAlign bool, panel geom.BBox) *ChromeSection {
	align := themeAlign
	if text.AlignWithAxis != nil {
		align = *text.AlignWithAxis
	}
	return &ChromeSection{
		Text:          text.Text,
		Style:         text.Style.Merge(themeStyle),
		AlignWithAxis: align,
		LeftMargin:    panel.MinX,
		WrapWidth:     panel.Width(),
		TopMargin:     topMargin,
	}
}
