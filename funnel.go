package chart

import (
	"fmt"
	"math"

	"github.com/gogpu/gg"

	"github.com/gogpu/chart/internal/fonts"
	"github.com/gogpu/chart/surface"
)

// stageAlpha is the opacity of funnel trapezoids.
const stageAlpha = 0.8

// Offsets of a stage label from its trapezoid's top-left corner.
const (
	stageLabelInsetX = 12
	stageLabelInsetY = 16
)

// Trapezoid is one funnel stage. The top edge spans [TopLeft, TopRight] at
// Top and the bottom edge spans [BottomLeft, BottomRight] at Bottom.
type Trapezoid struct {
	TopLeft, TopRight       float64
	BottomLeft, BottomRight float64
	Top, Bottom             float64
}

// TopWidth returns the width of the top edge.
func (t Trapezoid) TopWidth() float64 { return t.TopRight - t.TopLeft }

// BottomWidth returns the width of the bottom edge.
func (t Trapezoid) BottomWidth() float64 { return t.BottomRight - t.BottomLeft }

// Center returns the horizontal center shared by both edges.
func (t Trapezoid) Center() float64 { return (t.TopLeft + t.TopRight) / 2 }

// FunnelGeometry lays out stages top to bottom on a surface of the given
// size.
//
// Each stage gets an equal band of the padded height and is drawn
// l.FunnelGap shorter. The first top edge spans the padded width; every
// later top edge is the previous bottom edge. A bottom edge is its top
// edge times TaperRatio, centered under it.
func FunnelGeometry(size surface.Size, stages Series, l Layout) []Trapezoid {
	n := len(stages)
	if n == 0 {
		return nil
	}

	pad := l.FunnelPad
	band := (size.H - 2*pad) / float64(n)
	height := math.Max(band-l.FunnelGap, 0)

	left := pad
	topW := math.Max(size.W-2*pad, 0)

	traps := make([]Trapezoid, n)
	for i, st := range stages {
		next, hasNext := 0.0, i+1 < n
		if hasNext {
			next = stages[i+1].Value
		}
		bottomW := topW * TaperRatio(st.Value, next, hasNext, l)
		inset := (topW - bottomW) / 2
		top := pad + float64(i)*band

		traps[i] = Trapezoid{
			TopLeft:     left,
			TopRight:    left + topW,
			BottomLeft:  left + inset,
			BottomRight: left + inset + bottomW,
			Top:         top,
			Bottom:      top + height,
		}

		left += inset
		topW = bottomW
	}
	return traps
}

// TaperRatio returns the bottom/top width ratio of a stage: next/cur
// scaled by l.FunnelShrink. It falls back to l.FunnelTaper for the last
// stage and whenever the ratio is zero, negative, NaN or infinite. The
// result is clamped to [minTaper, 1] so a stage never widens and its bottom
// edge keeps a visible width.
func TaperRatio(cur, next float64, hasNext bool, l Layout) float64 {
	if !hasNext {
		return l.FunnelTaper
	}
	r := next / cur * l.FunnelShrink
	if !isFinite(r) || r <= 0 {
		return l.FunnelTaper
	}
	return math.Min(math.Max(r, minTaper), 1)
}

// minTaper is the smallest bottom/top width ratio a stage may have.
const minTaper = 1e-6

// RenderFunnel draws stages as stacked trapezoids whose widths follow the
// stage-to-stage value ratio. Each stage is labeled "label: value".
func RenderFunnel(dst surface.Target, stages Series, opts ...Option) error {
	return renderFunnel(dst, stages, newOptions(opts))
}

func renderFunnel(dst surface.Target, stages Series, o options) error {
	dc, size, err := dst.Prepare()
	if err != nil {
		return fmt.Errorf("chart: funnel: %w", err)
	}
	if err := drawFunnel(dc, size, stages, o); err != nil {
		return fmt.Errorf("chart: funnel: %w", err)
	}
	return nil
}

func drawFunnel(dc surface.Canvas, size surface.Size, stages Series, o options) error {
	traps := FunnelGeometry(size, stages, o.layout)
	if len(traps) == 0 {
		Logger().Debug("chart: funnel has no stages")
		return nil
	}

	face, err := fonts.Face(fonts.Bold, o.layout.LabelSize)
	if err != nil {
		return err
	}
	palette := o.palette
	if len(palette) == 0 {
		palette = defaultPalette
	}

	for i, t := range traps {
		dc.MoveTo(t.TopLeft, t.Top)
		dc.LineTo(t.TopRight, t.Top)
		dc.LineTo(t.BottomRight, t.Bottom)
		dc.LineTo(t.BottomLeft, t.Bottom)
		dc.ClosePath()

		col := resolveColor(palette[i%len(palette)])
		dc.SetFillBrush(gg.Solid(withAlpha(col, col.A*stageAlpha)))
		if err := dc.Fill(); err != nil {
			return err
		}

		dc.SetFont(face)
		dc.SetFillBrush(gg.Solid(stageTextColor))
		dc.DrawString(stageLabel(stages[i]), t.TopLeft+stageLabelInsetX, t.Top+stageLabelInsetY)
	}
	return nil
}
