package chart

import (
	"fmt"
	"math"

	"github.com/gogpu/gg"

	"github.com/gogpu/chart/surface"
)

// Heat grid dimensions.
const (
	HeatCols = 24
	HeatRows = 6
)

// Heat cell opacity is heatAlphaBase + intensity*heatAlphaRange.
const (
	heatAlphaBase  = 0.15
	heatAlphaRange = 0.75
)

// maxIntensity is the largest float64 below 1.
var maxIntensity = math.Nextafter(1, 0)

// Cell is one drawn heat-map rectangle.
type Cell struct {
	Row, Col int
	X, Y     float64
	W, H     float64
}

// HeatGeometry lays out the HeatRows x HeatCols grid over the padded area
// of a surface, row by row. Each cell is l.HeatGutter smaller than its slot;
// cells never get a negative size.
func HeatGeometry(size surface.Size, l Layout) []Cell {
	pad := l.HeatPad
	cw := (size.W - 2*pad) / HeatCols
	ch := (size.H - 2*pad) / HeatRows
	w := math.Max(cw-l.HeatGutter, 0)
	h := math.Max(ch-l.HeatGutter, 0)

	cells := make([]Cell, 0, HeatRows*HeatCols)
	for r := range HeatRows {
		for c := range HeatCols {
			cells = append(cells, Cell{
				Row: r,
				Col: c,
				X:   pad + float64(c)*cw,
				Y:   pad + float64(r)*ch,
				W:   w,
				H:   h,
			})
		}
	}
	return cells
}

// HeatAlpha returns the fill opacity for an intensity. The intensity is
// clamped to [0, 1); NaN counts as 0.
func HeatAlpha(intensity float64) float64 {
	switch {
	case !(intensity > 0):
		intensity = 0
	case intensity > maxIntensity:
		intensity = maxIntensity
	}
	return heatAlphaBase + intensity*heatAlphaRange
}

// RenderHeat draws the heat grid, shading each cell by fn. A nil fn means
// RandomIntensity.
func RenderHeat(dst surface.Target, fn IntensityFunc, opts ...Option) error {
	return renderHeat(dst, fn, newOptions(opts))
}

func renderHeat(dst surface.Target, fn IntensityFunc, o options) error {
	if fn == nil {
		fn = o.intensity
	}
	if fn == nil {
		fn = RandomIntensity
	}

	dc, size, err := dst.Prepare()
	if err != nil {
		return fmt.Errorf("chart: heat: %w", err)
	}
	if err := drawHeat(dc, size, fn, o.layout); err != nil {
		return fmt.Errorf("chart: heat: %w", err)
	}
	return nil
}

func drawHeat(dc surface.Canvas, size surface.Size, fn IntensityFunc, l Layout) error {
	for _, c := range HeatGeometry(size, l) {
		dc.SetFillBrush(gg.Solid(withAlpha(heatColor, HeatAlpha(fn(c.Row, c.Col)))))
		dc.DrawRectangle(c.X, c.Y, c.W, c.H)
		if err := dc.Fill(); err != nil {
			return err
		}
	}
	return nil
}
