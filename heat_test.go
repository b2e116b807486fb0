package chart

import (
	"bytes"
	"image"
	"image/draw"
	"math"
	"testing"

	"github.com/gogpu/chart/surface"
)

func TestHeatGeometry(t *testing.T) {
	size := surface.Size{W: 264, H: 96}
	cells := HeatGeometry(size, DefaultLayout())

	if len(cells) != HeatRows*HeatCols {
		t.Fatalf("got %d cells, want %d", len(cells), HeatRows*HeatCols)
	}

	first := cells[0]
	if first.X != 12 || first.Y != 12 {
		t.Errorf("first cell at (%v, %v), want (12, 12)", first.X, first.Y)
	}
	// slot is 240/24 x 72/6 = 10 x 12
	if first.W != 8 || first.H != 10 {
		t.Errorf("cell size = %vx%v, want 8x10", first.W, first.H)
	}

	last := cells[len(cells)-1]
	if last.Row != HeatRows-1 || last.Col != HeatCols-1 {
		t.Errorf("last cell = (%d, %d), want (%d, %d)", last.Row, last.Col, HeatRows-1, HeatCols-1)
	}
	if math.Abs(last.X+last.W+2-(size.W-12)) > eps || math.Abs(last.Y+last.H+2-(size.H-12)) > eps {
		t.Errorf("last cell %+v does not end at the padded edge", last)
	}

	for i, c := range cells {
		if want := i / HeatCols; c.Row != want {
			t.Fatalf("cell %d row = %d, want %d (row-major order)", i, c.Row, want)
		}
	}
}

func TestHeatGeometryTinySurface(t *testing.T) {
	for _, size := range []surface.Size{{}, {W: 20, H: 20}, {W: 30, H: 400}} {
		for _, c := range HeatGeometry(size, DefaultLayout()) {
			if c.W < 0 || c.H < 0 {
				t.Fatalf("size %+v: cell %+v has negative extent", size, c)
			}
		}
	}
}

func TestHeatAlpha(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"zero", 0, 0.15},
		{"half", 0.5, 0.525},
		{"near one", 0.999, 0.15 + 0.999*0.75},
		{"one is clamped below", 1, 0.15 + maxIntensity*0.75},
		{"above one", 7, 0.15 + maxIntensity*0.75},
		{"negative", -0.3, 0.15},
		{"NaN", math.NaN(), 0.15},
		{"+Inf", math.Inf(1), 0.15 + maxIntensity*0.75},
		{"-Inf", math.Inf(-1), 0.15},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HeatAlpha(tt.in)
			if math.Abs(got-tt.want) > eps {
				t.Errorf("HeatAlpha(%v) = %v, want %v", tt.in, got, tt.want)
			}
			if got >= 0.9 {
				t.Errorf("HeatAlpha(%v) = %v, want < 0.9", tt.in, got)
			}
		})
	}
}

func TestRenderHeatFillsEveryCell(t *testing.T) {
	dst := newFakeTarget(264, 96)

	if err := RenderHeat(dst, ConstantIntensity(0.5)); err != nil {
		t.Fatalf("RenderHeat: %v", err)
	}
	fills := dst.canvas.fills
	if len(fills) != HeatRows*HeatCols {
		t.Fatalf("got %d fills, want %d", len(fills), HeatRows*HeatCols)
	}
	for i, f := range fills {
		col, ok := solidColor(f.brush)
		if !ok {
			t.Fatalf("fill %d brush = %T, want solid", i, f.brush)
		}
		if math.Abs(col.A-0.525) > eps || !colorNear(withAlpha(col, 1), heatColor) {
			t.Fatalf("fill %d color = %+v", i, col)
		}
		if len(f.points) != 4 {
			t.Fatalf("fill %d has %d points, want a rectangle", i, len(f.points))
		}
	}
}

func TestRenderHeatIntensitySource(t *testing.T) {
	var calls int
	counting := func(row, col int) float64 {
		calls++
		return 0
	}

	t.Run("argument wins over option", func(t *testing.T) {
		calls = 0
		dst := newFakeTarget(100, 100)
		if err := RenderHeat(dst, counting, WithIntensity(ConstantIntensity(1))); err != nil {
			t.Fatal(err)
		}
		if calls != HeatRows*HeatCols {
			t.Errorf("generator called %d times, want %d", calls, HeatRows*HeatCols)
		}
	})

	t.Run("option used when argument is nil", func(t *testing.T) {
		calls = 0
		dst := newFakeTarget(100, 100)
		if err := RenderHeat(dst, nil, WithIntensity(counting)); err != nil {
			t.Fatal(err)
		}
		if calls != HeatRows*HeatCols {
			t.Errorf("generator called %d times, want %d", calls, HeatRows*HeatCols)
		}
	})

	t.Run("random when both nil", func(t *testing.T) {
		dst := newFakeTarget(100, 100)
		if err := RenderHeat(dst, nil); err != nil {
			t.Fatal(err)
		}
		for i, f := range dst.canvas.fills {
			col, _ := solidColor(f.brush)
			if col.A < 0.15-eps || col.A >= 0.9 {
				t.Fatalf("fill %d alpha = %v, want in [0.15, 0.9)", i, col.A)
			}
		}
	})
}

// pixels copies img into a fresh RGBA buffer.
func pixels(img image.Image) []byte {
	rgba := image.NewRGBA(img.Bounds())
	draw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, draw.Src)
	return rgba.Pix
}

func nonZero(pix []byte) int {
	n := 0
	for _, b := range pix {
		if b != 0 {
			n++
		}
	}
	return n
}

func TestRenderHeatIdempotent(t *testing.T) {
	s := surface.New(surface.Container{Width: 264, Height: 96, PixelRatio: 2})
	defer s.Close()

	fn := HashIntensity(7)
	if err := RenderHeat(s, fn); err != nil {
		t.Fatalf("first RenderHeat: %v", err)
	}
	first := pixels(s.Image())

	if err := RenderHeat(s, fn); err != nil {
		t.Fatalf("second RenderHeat: %v", err)
	}
	second := pixels(s.Image())

	if len(first) != 528*192*4 {
		t.Fatalf("frame has %d bytes, want %d", len(first), 528*192*4)
	}
	if !bytes.Equal(first, second) {
		t.Error("rendering the same grid twice produced different frames")
	}
}
