// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import "math"

// MaxPhysicalDim caps each physical buffer dimension. Larger requests are
// clamped rather than allocated.
const MaxPhysicalDim = 16384

// Size is a logical size in layout pixels.
type Size struct {
	W, H float64
}

// Empty reports whether the size has no drawable area.
func (s Size) Empty() bool {
	return s.W <= 0 || s.H <= 0
}

// Container describes the layout box a chart is mounted in.
type Container struct {
	// Width and Height are the layout size in logical pixels
	// (clientWidth/clientHeight).
	Width  float64 `yaml:"width" json:"width"`
	Height float64 `yaml:"height" json:"height"`

	// PixelRatio is the device pixel ratio. Zero means 1.
	PixelRatio float64 `yaml:"pixel_ratio,omitempty" json:"pixel_ratio,omitempty"`
}

// Ratio returns the effective device pixel ratio. Non-positive and
// non-finite ratios resolve to 1.
func (c Container) Ratio() float64 {
	r := c.PixelRatio
	if !(r > 0) || math.IsInf(r, 0) {
		return 1
	}
	return r
}

// Size returns the logical size with invalid dimensions clamped to zero.
func (c Container) Size() Size {
	return Size{W: clampDim(c.Width), H: clampDim(c.Height)}
}

// Physical returns the backing buffer size in device pixels.
func (c Container) Physical() (width, height int) {
	s := c.Size()
	r := c.Ratio()
	return physicalDim(s.W * r), physicalDim(s.H * r)
}

func clampDim(v float64) float64 {
	if !(v > 0) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func physicalDim(v float64) int {
	if !(v > 0) {
		return 0
	}
	if v > MaxPhysicalDim {
		return MaxPhysicalDim
	}
	return int(v)
}
