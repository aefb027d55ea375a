// Package geom provides the geometric primitives used by plot layout:
// axis-aligned bounding boxes and four-side padding insets.
package geom

import "math"

// Epsilon is the tolerance for floating-point comparisons and the minimum
// gap kept between a clamped coordinate and its limit.
const Epsilon = 0.0001

// Point is a position in pixel coordinates.
type Point struct {
	X float64
	Y float64
}

// BBox is an axis-aligned rectangle in pixel coordinates.
// Width and height are derived from the min/max pairs, never stored.
type BBox struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// BBoxFromLTWH constructs a BBox from left, top, width, height values.
func BBoxFromLTWH(left, top, width, height float64) BBox {
	return BBox{
		MinX: left,
		MinY: top,
		MaxX: left + width,
		MaxY: top + height,
	}
}

// Width returns the horizontal extent of the box.
func (b BBox) Width() float64 {
	return b.MaxX - b.MinX
}

// Height returns the vertical extent of the box.
func (b BBox) Height() float64 {
	return b.MaxY - b.MinY
}

// IsZero reports whether the box is the zero value.
func (b BBox) IsZero() bool {
	return b == BBox{}
}

// Union returns the smallest box containing both b and other.
func (b BBox) Union(other BBox) BBox {
	return BBox{
		MinX: math.Min(b.MinX, other.MinX),
		MinY: math.Min(b.MinY, other.MinY),
		MaxX: math.Max(b.MaxX, other.MaxX),
		MaxY: math.Max(b.MaxY, other.MaxY),
	}
}

// ClampMaxY caps MaxY so it stays strictly below limit by at least Epsilon.
func (b BBox) ClampMaxY(limit float64) BBox {
	if b.MaxY >= limit {
		b.MaxY = limit - Epsilon
	}
	return b
}

// Padding holds four-side insets in top, right, bottom, left order.
type Padding struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

// PaddingFromSlice builds a Padding from a [top, right, bottom, left] tuple.
func PaddingFromSlice(values [4]float64) Padding {
	return Padding{
		Top:    values[0],
		Right:  values[1],
		Bottom: values[2],
		Left:   values[3],
	}
}

// Slice returns the padding as a [top, right, bottom, left] tuple.
func (p Padding) Slice() [4]float64 {
	return [4]float64{p.Top, p.Right, p.Bottom, p.Left}
}

// Horizontal returns the combined left and right insets.
func (p Padding) Horizontal() float64 {
	return p.Left + p.Right
}

// Vertical returns the combined top and bottom insets.
func (p Padding) Vertical() float64 {
	return p.Top + p.Bottom
}

// Max returns a padding taking the larger inset per side.
func (p Padding) Max(other Padding) Padding {
	return Padding{
		Top:    math.Max(p.Top, other.Top),
		Right:  math.Max(p.Right, other.Right),
		Bottom: math.Max(p.Bottom, other.Bottom),
		Left:   math.Max(p.Left, other.Left),
	}
}
