// Package chrome renders and measures the text furniture of a plot:
// titles, descriptions, and similar positioned text blocks.
package chrome

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/go-plotkit/plotkit/pkg/geom"
)

const (
	// defaultFontSize is used when a style does not specify a size.
	defaultFontSize = 12
	// faceBaseSize is the nominal point size of the bundled bitmap face.
	faceBaseSize = 13
)

// FontWeight represents a numeric font weight.
type FontWeight int

const (
	FontWeightNormal   FontWeight = 400
	FontWeightSemibold FontWeight = 600
	FontWeightBold     FontWeight = 700
)

// TextStyle describes how a chrome text block should be rendered.
type TextStyle struct {
	Fill       string     `yaml:"fill,omitempty"`
	FontSize   float64    `yaml:"fontSize,omitempty"`
	FontWeight FontWeight `yaml:"fontWeight,omitempty"`
	FontFamily string     `yaml:"fontFamily,omitempty"`
}

// Merge returns s with any zero field replaced by the corresponding
// field of fallback.
func (s TextStyle) Merge(fallback TextStyle) TextStyle {
	if s.Fill == "" {
		s.Fill = fallback.Fill
	}
	if s.FontSize == 0 {
		s.FontSize = fallback.FontSize
	}
	if s.FontWeight == 0 {
		s.FontWeight = fallback.FontWeight
	}
	if s.FontFamily == "" {
		s.FontFamily = fallback.FontFamily
	}
	return s
}

// Line is a single laid-out line of text.
type Line struct {
	Text  string
	Width float64
}

// Measurer resolves the pixel footprint of text in a given style.
type Measurer interface {
	// MeasureWidth returns the advance width of s.
	MeasureWidth(s string, style TextStyle) float64
	// LineHeight returns the height of one text line.
	LineHeight(style TextStyle) float64
}

// FaceMeasurer measures text with an x/image font.Face, scaling the
// face metrics to the requested font size.
type FaceMeasurer struct {
	Face font.Face
}

// NewFaceMeasurer returns a measurer backed by face, falling back to the
// bundled bitmap face when face is nil.
func NewFaceMeasurer(face font.Face) *FaceMeasurer {
	if face == nil {
		face = basicfont.Face7x13
	}
	return &FaceMeasurer{Face: face}
}

func (m *FaceMeasurer) scale(style TextStyle) float64 {
	size := style.FontSize
	if size == 0 {
		size = defaultFontSize
	}
	return size / faceBaseSize
}

// MeasureWidth returns the advance width of s at the style's font size.
func (m *FaceMeasurer) MeasureWidth(s string, style TextStyle) float64 {
	advance := font.MeasureString(m.Face, s)
	return float64(advance) / 64 * m.scale(style)
}

// LineHeight returns the scaled height of one line, ascent plus descent.
func (m *FaceMeasurer) LineHeight(style TextStyle) float64 {
	metrics := m.Face.Metrics()
	height := float64(metrics.Ascent+metrics.Descent) / 64
	return height * m.scale(style)
}

// BlockSpec describes a text block to be placed on the canvas.
type BlockSpec struct {
	Text string
	// X, Y position the top-left corner of the block in canvas pixels.
	X float64
	Y float64
	// MaxWidth wraps the text when positive; zero disables wrapping.
	MaxWidth float64
	Style    TextStyle
	// AlignWithAxis left-aligns the block with the panel rather than
	// centering it over the canvas.
	AlignWithAxis bool
}

// Block is a positioned, measured text element. Its bounds are fixed at
// creation; a disposed block keeps reporting them but is no longer live.
type Block struct {
	Spec     BlockSpec
	Lines    []Line
	bounds   geom.BBox
	disposed bool
}

// Bounds returns the measured bounding box of the block in canvas
// coordinates.
func (b *Block) Bounds() geom.BBox {
	return b.bounds
}

// Dispose releases the block. Safe to call more than once.
func (b *Block) Dispose() {
	b.disposed = true
}

// Disposed reports whether Dispose has been called.
func (b *Block) Disposed() bool {
	return b.disposed
}

// Renderer lays out chrome text blocks using a Measurer.
type Renderer struct {
	measurer Measurer
}

// NewRenderer creates a renderer. A nil measurer selects the bundled
// bitmap face.
func NewRenderer(m Measurer) *Renderer {
	if m == nil {
		m = NewFaceMeasurer(nil)
	}
	return &Renderer{measurer: m}
}

// Render lays out spec into a positioned Block and measures its bounds.
func (r *Renderer) Render(spec BlockSpec) *Block {
	measure := func(s string) float64 {
		return r.measurer.MeasureWidth(s, spec.Style)
	}
	lines := layoutLines(spec.Text, spec.MaxWidth, measure)

	maxLineWidth := 0.0
	for _, line := range lines {
		maxLineWidth = math.Max(maxLineWidth, line.Width)
	}
	lineHeight := r.measurer.LineHeight(spec.Style)

	return &Block{
		Spec:   spec,
		Lines:  lines,
		bounds: geom.BBoxFromLTWH(spec.X, spec.Y, maxLineWidth, lineHeight*float64(len(lines))),
	}
}

// layoutLines splits text into paragraphs and wraps each one to maxWidth.
func layoutLines(text string, maxWidth float64, measure func(string) float64) []Line {
	if maxWidth < 0 || math.IsInf(maxWidth, 0) {
		maxWidth = 0
	}
	paragraphs := strings.Split(text, "\n")
	lines := make([]Line, 0, len(paragraphs))
	for _, paragraph := range paragraphs {
		if paragraph == "" {
			lines = append(lines, Line{})
			continue
		}
		if maxWidth == 0 {
			lines = append(lines, Line{Text: paragraph, Width: measure(paragraph)})
			continue
		}
		for _, line := range wrapParagraph(paragraph, maxWidth, measure) {
			lines = append(lines, Line{Text: line, Width: measure(line)})
		}
	}
	if len(lines) == 0 {
		lines = []Line{{}}
	}
	return lines
}

// wrapParagraph greedily breaks a paragraph at word boundaries, falling
// back to a mid-word break when a single word exceeds maxWidth.
func wrapParagraph(text string, maxWidth float64, measure func(string) float64) []string {
	var lines []string
	start := 0
	for start < len(text) {
		lastBreak := -1
		lastFit := -1
		for i := start; i < len(text); {
			r, size := utf8.DecodeRuneInString(text[i:])
			next := i + size
			if measure(text[start:next]) > maxWidth {
				break
			}
			lastFit = next
			if unicode.IsSpace(r) {
				lastBreak = next
			}
			i = next
		}
		if lastFit == -1 {
			// Not even one rune fits; take it anyway to guarantee progress.
			_, size := utf8.DecodeRuneInString(text[start:])
			lastFit = start + size
		}
		cut := lastFit
		if lastFit < len(text) && lastBreak > start && lastBreak < lastFit {
			cut = lastBreak
		}
		lines = append(lines, strings.TrimRightFunc(text[start:cut], unicode.IsSpace))
		start = cut
		for start < len(text) {
			r, size := utf8.DecodeRuneInString(text[start:])
			if !unicode.IsSpace(r) {
				break
			}
			start += size
		}
	}
	if len(lines) == 0 {
		return []string{""}
	}
	return lines
}
