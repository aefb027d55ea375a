package plot

import (
	"math"

	"github.com/go-plotkit/plotkit/pkg/config"
	"github.com/go-plotkit/plotkit/pkg/geom"
	"github.com/go-plotkit/plotkit/pkg/theme"
)

// Side names a canvas edge a padding participant docks against.
type Side int

const (
	SideTop Side = iota
	SideRight
	SideBottom
	SideLeft
)

// PaddingParticipant is a component whose measured footprint must be
// included when resolving auto padding. Participants register before the
// measurement pass and report bounds in canvas coordinates.
type PaddingParticipant interface {
	// PaddingSide returns the edge the participant docks against.
	PaddingSide() Side
	// PaddingBounds returns the measured bounds of the participant.
	PaddingBounds() geom.BBox
}

// chromeParticipant adapts a measured chrome box into a participant.
type chromeParticipant struct {
	side   Side
	bounds geom.BBox
}

func (p chromeParticipant) PaddingSide() Side        { return p.side }
func (p chromeParticipant) PaddingBounds() geom.BBox { return p.bounds }

// ResolvePadding turns a padding spec into concrete insets. An auto (or
// unset) spec resolves to neutral zero insets for the provisional pass;
// the final insets come from AutoPadding after measurement.
func ResolvePadding(spec config.PaddingSpec) geom.Padding {
	if spec.IsAuto() {
		return geom.Padding{}
	}
	return spec.Values()
}

// PanelRange computes the canvas rectangle remaining after padding. It
// must run before title and description placement: their left margin and
// wrap width derive from it.
func PanelRange(p geom.Padding, canvasWidth, canvasHeight float64) geom.BBox {
	return geom.BBoxFromLTWH(p.Left, p.Top, canvasWidth-p.Left-p.Right, canvasHeight-p.Top-p.Bottom)
}

// ViewMargin computes the space consumed by title and description
// chrome, to be subtracted from the drawable view's vertical start. When
// a description exists its bottom margin extends the box. MaxY is kept
// strictly below canvasHeight so the view's vertical start can never
// meet or pass its end.
func ViewMargin(title, description *geom.BBox, canvasHeight, descriptionBottomMargin float64) geom.BBox {
	if title == nil && description == nil {
		return geom.BBox{}
	}
	var margin geom.BBox
	switch {
	case title != nil && description != nil:
		margin = title.Union(*description)
	case title != nil:
		margin = *title
	default:
		margin = *description
	}
	if description != nil {
		margin.MaxY += descriptionBottomMargin
	}
	return margin.ClampMaxY(canvasHeight)
}

// AutoPadding resolves the final padding from the measured extents of
// every participant, never dropping below the theme's per-side floor.
// For a participant docked at the top the required inset is how far it
// reaches down from the canvas top edge; the other sides are symmetric.
func AutoPadding(participants []PaddingParticipant, th *theme.Theme, canvasWidth, canvasHeight float64) geom.Padding {
	padding := th.PaddingFloor()
	for _, participant := range participants {
		bounds := participant.PaddingBounds()
		switch participant.PaddingSide() {
		case SideTop:
			padding.Top = math.Max(padding.Top, bounds.MaxY)
		case SideBottom:
			padding.Bottom = math.Max(padding.Bottom, canvasHeight-bounds.MinY)
		case SideLeft:
			padding.Left = math.Max(padding.Left, bounds.MaxX)
		case SideRight:
			padding.Right = math.Max(padding.Right, canvasWidth-bounds.MinX)
		}
	}
	return padding
}
