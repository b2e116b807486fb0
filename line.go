package chart

import (
	"fmt"
	"math"

	"github.com/gogpu/gg"

	"github.com/gogpu/chart/internal/fonts"
	"github.com/gogpu/chart/surface"
)

// areaAlpha is the opacity at the top of the area gradient (0xAA).
const areaAlpha = 170.0 / 255

// Offsets of the last-point label from the bottom-right corner.
const (
	lineLabelInsetX = 28
	lineLabelInsetY = 6
)

// LinePlot is the computed geometry of a line chart.
type LinePlot struct {
	// Points holds one vertex per finite value, in series order.
	Points []gg.Point

	// Min and Max are the padded value range mapped to the plot height.
	Min, Max float64

	// Top and Baseline are the y coordinates of the top and bottom
	// padding lines.
	Top, Baseline float64

	// Gridlines holds the y coordinate of each horizontal gridline.
	Gridlines []float64
}

// LineGeometry lays out s on a surface of the given size.
//
// The value range is padded by l.RangePadding of the extreme magnitudes on
// both ends, so points stay strictly inside the plot band. With n points the
// horizontal step is (W - 2*pad)/(n - 1); a single point sits at the
// horizontal midpoint. Non-finite values get no vertex.
func LineGeometry(size surface.Size, s Series, l Layout) LinePlot {
	pad := l.LinePad
	plot := LinePlot{
		Top:      pad,
		Baseline: size.H - pad,
	}

	if l.GridLines > 0 {
		plot.Gridlines = make([]float64, l.GridLines)
		for i := range plot.Gridlines {
			frac := 0.0
			if l.GridLines > 1 {
				frac = float64(i) / float64(l.GridLines-1)
			}
			plot.Gridlines[i] = pad + (size.H-2*pad)*frac
		}
	}

	values := s.Values()
	if len(values) == 0 {
		return plot
	}

	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	plot.Min = lo - math.Abs(lo)*l.RangePadding
	plot.Max = hi + math.Abs(hi)*l.RangePadding

	step := 0.0
	if len(s) > 1 {
		step = (size.W - 2*pad) / float64(len(s)-1)
	}

	plot.Points = make([]gg.Point, 0, len(values))
	for i, p := range s {
		if !isFinite(p.Value) {
			continue
		}
		x := size.W / 2
		if len(s) > 1 {
			x = pad + float64(i)*step
		}
		y := Scale(p.Value, plot.Min, plot.Max, plot.Top, plot.Baseline)
		plot.Points = append(plot.Points, gg.Point{X: x, Y: y})
	}
	return plot
}

// RenderLine draws s as a gridded line chart with a gradient-filled area
// underneath and the last point's label in the bottom-right corner.
//
// s is never modified. An empty series draws the grid only.
func RenderLine(dst surface.Target, s Series, style Style, opts ...Option) error {
	return renderLine(dst, s, style, newOptions(opts))
}

func renderLine(dst surface.Target, s Series, style Style, o options) error {
	dc, size, err := dst.Prepare()
	if err != nil {
		return fmt.Errorf("chart: line: %w", err)
	}
	if err := drawLine(dc, size, s, style, o.layout); err != nil {
		return fmt.Errorf("chart: line: %w", err)
	}
	return nil
}

func drawLine(dc surface.Canvas, size surface.Size, s Series, style Style, l Layout) error {
	plot := LineGeometry(size, s, l)
	pad := l.LinePad

	dc.SetLineWidth(1)
	dc.SetStrokeBrush(gg.Solid(gridColor))
	for _, y := range plot.Gridlines {
		dc.MoveTo(pad, y)
		dc.LineTo(size.W-pad, y)
		if err := dc.Stroke(); err != nil {
			return err
		}
	}

	if len(plot.Points) == 0 {
		Logger().Debug("chart: line has no finite values", "points", len(s))
		return nil
	}

	col := resolveColor(style.Color)

	tracePolyline(dc, plot.Points)
	dc.SetLineWidth(2)
	dc.SetStrokeBrush(gg.Solid(col))
	if err := dc.Stroke(); err != nil {
		return err
	}

	first, last := plot.Points[0], plot.Points[len(plot.Points)-1]
	tracePolyline(dc, plot.Points)
	dc.LineTo(last.X, plot.Baseline)
	dc.LineTo(first.X, plot.Baseline)
	dc.ClosePath()
	grad := gg.NewLinearGradientBrush(0, plot.Top, 0, plot.Baseline).
		AddColorStop(0, withAlpha(col, col.A*areaAlpha)).
		AddColorStop(1, withAlpha(col, 0))
	dc.SetFillBrush(grad)
	if err := dc.Fill(); err != nil {
		return err
	}

	p, _ := s.Last()
	face, err := fonts.Face(fonts.Regular, l.LabelSize)
	if err != nil {
		return err
	}
	dc.SetFont(face)
	dc.SetFillBrush(gg.Solid(lineLabelColor))
	dc.DrawString(p.Label, size.W-pad-lineLabelInsetX, size.H-lineLabelInsetY)
	return nil
}

func tracePolyline(dc surface.Canvas, pts []gg.Point) {
	for i, p := range pts {
		if i == 0 {
			dc.MoveTo(p.X, p.Y)
		} else {
			dc.LineTo(p.X, p.Y)
		}
	}
}
