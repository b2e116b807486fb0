package chart

import "math/rand/v2"

// IntensityFunc returns the intensity of the heat cell at (row, col), in
// [0, 1). Values outside that range are clamped by the renderer.
//
// A deterministic IntensityFunc makes RenderHeat idempotent.
type IntensityFunc func(row, col int) float64

// RandomIntensity draws a fresh uniform value for every cell. It is the
// default generator and exists for demos; output differs between calls.
func RandomIntensity(_, _ int) float64 {
	return rand.Float64()
}

// HashIntensity returns a deterministic generator that gives every cell a
// pseudo-random value derived from seed and the cell position. It keeps no
// state, so repeated renders produce the same grid.
func HashIntensity(seed uint64) IntensityFunc {
	return func(row, col int) float64 {
		cell := uint64(row)*HeatCols + uint64(col)
		return rand.New(rand.NewPCG(seed, cell)).Float64()
	}
}

// ConstantIntensity returns a generator that yields v for every cell.
func ConstantIntensity(v float64) IntensityFunc {
	return func(int, int) float64 { return v }
}

// MatrixIntensity returns a generator reading m[row][col]. Cells outside m
// have zero intensity.
func MatrixIntensity(m [][]float64) IntensityFunc {
	return func(row, col int) float64 {
		if row < 0 || row >= len(m) || col < 0 || col >= len(m[row]) {
			return 0
		}
		return m[row][col]
	}
}
