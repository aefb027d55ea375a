package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-plotkit/plotkit/pkg/chrome"
	"github.com/go-plotkit/plotkit/pkg/geom"
	"github.com/go-plotkit/plotkit/pkg/theme"
)

// panelFor resolves the panel range from the theme's default padding.
func panelFor(th *theme.Theme, width, height float64) geom.BBox {
	floor := th.PaddingFloor()
	return geom.BBoxFromLTWH(floor.Left, floor.Top, width-floor.Horizontal(), height-floor.Vertical())
}

// lineVariant is a minimal chart variant declaring one scale, one axis,
// and one line layer.
type lineVariant struct {
	BaseVariant
}

func (lineVariant) DefineScales(b *Builder, _ *PlotConfig) error {
	if err := b.MergeScale("x", ScaleConfig{Type: "linear"}); err != nil {
		return err
	}
	return b.MergeScale("y", ScaleConfig{Type: "linear", Alias: "variant-alias"})
}

func (lineVariant) DefineAxes(b *Builder, _ *PlotConfig) error {
	return b.MergeAxis("x", AxisConfig{Title: "x axis"})
}

func (lineVariant) DefineElements(b *Builder, _ *PlotConfig) error {
	b.AppendElement(ElementConfig{Type: "line", Position: "x*y"})
	return nil
}

func TestAssembleStructuralDefaults(t *testing.T) {
	th := theme.Light()
	a := NewAssembler(nil)

	cfg, err := a.Assemble(&PlotConfig{}, th, panelFor(th, 400, 300))
	require.NoError(t, err)

	assert.Equal(t, "cartesian", cfg.Coordinate.Type)
	assert.Equal(t, th.Legend.Position, cfg.Legend.Position)
	assert.Equal(t, th.Tooltip.ShowTitle, cfg.Tooltip.ShowTitle)
	assert.Same(t, th, cfg.Theme)
	assert.Empty(t, cfg.Elements)
	assert.NotNil(t, cfg.Scales)
	assert.Nil(t, cfg.Title)
}

func TestAssembleVariantHooks(t *testing.T) {
	th := theme.Light()
	a := NewAssembler(lineVariant{})

	cfg, err := a.Assemble(&PlotConfig{Data: []Record{{"x": 1, "y": 2}}}, th, panelFor(th, 400, 300))
	require.NoError(t, err)

	assert.Equal(t, "linear", cfg.Scales["x"].Type)
	assert.Equal(t, "x axis", cfg.Axes["x"].Title)
	require.Len(t, cfg.Elements, 1)
	assert.Equal(t, "line", cfg.Elements[0].Type)
	assert.Len(t, cfg.Data, 1)
}

func TestAssembleMetaWinsOverVariant(t *testing.T) {
	th := theme.Light()
	a := NewAssembler(lineVariant{})

	cfg, err := a.Assemble(&PlotConfig{
		Meta: map[string]Meta{"y": {Alias: "user-alias"}},
	}, th, panelFor(th, 400, 300))
	require.NoError(t, err)

	// Meta is applied last, so the user alias replaces the variant's.
	assert.Equal(t, "user-alias", cfg.Scales["y"].Alias)
	// Fields meta leaves empty keep the variant values.
	assert.Equal(t, "linear", cfg.Scales["y"].Type)
}

func TestAssembleTooltipDisabledShortCircuits(t *testing.T) {
	th := theme.Light()
	a := NewAssembler(nil)

	cfg, err := a.Assemble(&PlotConfig{
		Tooltip: &Tooltip{
			Visible: boolPtr(false),
			Style:   map[string]string{"background": "#000"},
		},
	}, th, panelFor(th, 400, 300))
	require.NoError(t, err)

	assert.True(t, cfg.Tooltip.Disabled)
	// The style supplied alongside visible:false is never merged.
	assert.Empty(t, cfg.Tooltip.Style)
}

func TestAssembleLegendOverrides(t *testing.T) {
	th := theme.Light()
	a := NewAssembler(nil)

	cfg, err := a.Assemble(&PlotConfig{
		Legend: &Legend{Position: theme.LegendRight, Style: map[string]string{"itemGap": "8"}},
	}, th, panelFor(th, 400, 300))
	require.NoError(t, err)

	assert.False(t, cfg.Legend.Disabled)
	assert.Equal(t, theme.LegendRight, cfg.Legend.Position)
	assert.Equal(t, "8", cfg.Legend.Style["itemGap"])
}

func TestAssembleTitlePlacement(t *testing.T) {
	th := theme.Light()
	a := NewAssembler(nil)
	panel := geom.BBoxFromLTWH(10, 10, 380, 280)

	cfg, err := a.Assemble(&PlotConfig{
		Title: &Text{Text: "Revenue", Style: chrome.TextStyle{FontSize: 24}},
	}, th, panel)
	require.NoError(t, err)

	require.NotNil(t, cfg.Title)
	assert.Equal(t, "Revenue", cfg.Title.Text)
	assert.Equal(t, 10.0, cfg.Title.LeftMargin)
	assert.Equal(t, 380.0, cfg.Title.WrapWidth)
	assert.Equal(t, th.Title.TopMargin, cfg.Title.TopMargin)
	// User style wins field-by-field over the theme style.
	assert.Equal(t, 24.0, cfg.Title.Style.FontSize)
	assert.Equal(t, th.Title.Style.Fill, cfg.Title.Style.Fill)
}

func TestAssembleEmptyTitleClearsSlot(t *testing.T) {
	th := theme.Light()
	a := NewAssembler(nil)

	cfg, err := a.Assemble(&PlotConfig{Title: &Text{Text: ""}}, th, panelFor(th, 400, 300))
	require.NoError(t, err)

	assert.Nil(t, cfg.Title)
	assert.Nil(t, cfg.Description)
}

func TestAssembleDescriptionPlacement(t *testing.T) {
	th := theme.Light()
	a := NewAssembler(nil)
	panel := geom.BBoxFromLTWH(20, 20, 360, 260)

	cfg, err := a.Assemble(&PlotConfig{
		Description: &Text{Text: "Quarterly numbers", AlignWithAxis: boolPtr(true)},
	}, th, panel)
	require.NoError(t, err)

	require.NotNil(t, cfg.Description)
	assert.Equal(t, 20.0, cfg.Description.LeftMargin)
	assert.Equal(t, th.Description.TopMargin, cfg.Description.TopMargin)
	assert.True(t, cfg.Description.AlignWithAxis)
}

func TestAssembleNilInputs(t *testing.T) {
	th := theme.Light()
	a := NewAssembler(nil)

	_, err := a.Assemble(nil, th, geom.BBox{})
	assert.Error(t, err)

	_, err = a.Assemble(&PlotConfig{}, nil, geom.BBox{})
	assert.Error(t, err)
}

func TestBuilderAppendIsAdditive(t *testing.T) {
	b := NewBuilder(theme.Light())

	b.AppendElement(ElementConfig{Type: "line"})
	b.AppendElement(ElementConfig{Type: "point"})
	b.AppendElement(ElementConfig{Type: "line"})

	cfg := b.Config()
	require.Len(t, cfg.Elements, 3)
	assert.Equal(t, "line", cfg.Elements[0].Type)
	assert.Equal(t, "point", cfg.Elements[1].Type)
	assert.Equal(t, "line", cfg.Elements[2].Type)
}

func TestBuilderDisabledLegendIgnoresMerge(t *testing.T) {
	b := NewBuilder(theme.Light())
	b.DisableLegend()

	require.NoError(t, b.MergeLegend(&Legend{Position: theme.LegendTop}))

	assert.True(t, b.Config().Legend.Disabled)
	assert.Empty(t, b.Config().Legend.Position)
}

func TestBuilderMergeScaleAccumulates(t *testing.T) {
	b := NewBuilder(theme.Light())

	require.NoError(t, b.MergeScale("y", ScaleConfig{Type: "linear"}))
	require.NoError(t, b.MergeScale("y", ScaleConfig{Alias: "value"}))

	scale := b.Config().Scales["y"]
	assert.Equal(t, "linear", scale.Type)
	assert.Equal(t, "value", scale.Alias)
	assert.Equal(t, "y", scale.Field)
}
