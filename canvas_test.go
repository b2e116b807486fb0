package chart

import (
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"

	"github.com/gogpu/chart/surface"
)

// pathCall is a completed Stroke or Fill with the path it consumed.
type pathCall struct {
	points []gg.Point
	brush  gg.Brush
	width  float64
}

// textCall is a DrawString call.
type textCall struct {
	s       string
	x, y    float64
	brush   gg.Brush
	hasFont bool
}

// recordingCanvas is a surface.Canvas that records what would be drawn.
type recordingCanvas struct {
	path   []gg.Point
	width  float64
	fill   gg.Brush
	stroke gg.Brush
	face   text.Face

	strokes []pathCall
	fills   []pathCall
	texts   []textCall
}

var _ surface.Canvas = (*recordingCanvas)(nil)

func (c *recordingCanvas) MoveTo(x, y float64)       { c.path = append(c.path, gg.Point{X: x, Y: y}) }
func (c *recordingCanvas) LineTo(x, y float64)       { c.path = append(c.path, gg.Point{X: x, Y: y}) }
func (c *recordingCanvas) ClosePath()                {}
func (c *recordingCanvas) SetLineWidth(w float64)    { c.width = w }
func (c *recordingCanvas) SetFillBrush(b gg.Brush)   { c.fill = b }
func (c *recordingCanvas) SetStrokeBrush(b gg.Brush) { c.stroke = b }
func (c *recordingCanvas) SetFont(face text.Face)    { c.face = face }

func (c *recordingCanvas) DrawRectangle(x, y, w, h float64) {
	c.path = append(c.path,
		gg.Point{X: x, Y: y}, gg.Point{X: x + w, Y: y},
		gg.Point{X: x + w, Y: y + h}, gg.Point{X: x, Y: y + h})
}

func (c *recordingCanvas) Fill() error {
	c.fills = append(c.fills, pathCall{points: c.path, brush: c.fill})
	c.path = nil
	return nil
}

func (c *recordingCanvas) Stroke() error {
	c.strokes = append(c.strokes, pathCall{points: c.path, brush: c.stroke, width: c.width})
	c.path = nil
	return nil
}

func (c *recordingCanvas) DrawString(s string, x, y float64) {
	c.texts = append(c.texts, textCall{s: s, x: x, y: y, brush: c.fill, hasFont: c.face != nil})
}

// fakeTarget hands out a fresh recordingCanvas on every Prepare.
type fakeTarget struct {
	size     surface.Size
	err      error
	prepared int
	canvas   *recordingCanvas
}

func newFakeTarget(w, h float64) *fakeTarget {
	return &fakeTarget{size: surface.Size{W: w, H: h}}
}

func (f *fakeTarget) Prepare() (surface.Canvas, surface.Size, error) {
	f.prepared++
	if f.err != nil {
		return nil, surface.Size{}, f.err
	}
	f.canvas = &recordingCanvas{}
	return f.canvas, f.size, nil
}

// solidColor returns the color of a solid brush and false otherwise.
func solidColor(b gg.Brush) (gg.RGBA, bool) {
	sb, ok := b.(gg.SolidBrush)
	if !ok {
		return gg.RGBA{}, false
	}
	return sb.Color, true
}
