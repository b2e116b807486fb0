// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package config loads the board layout and dataset files used by the
// chartdemo command.
package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/gogpu/chart"
	"github.com/gogpu/chart/surface"
)

// Configuration errors.
var (
	ErrNotFound          = errors.New("config: file not found")
	ErrUnsupportedFormat = errors.New("config: unsupported format")
	ErrInvalidFormat     = errors.New("config: invalid format")
	ErrValidation        = errors.New("config: validation failed")
)

// Colors overrides the chart colors.
type Colors struct {
	Revenue string   `yaml:"revenue" json:"revenue"`
	Signups string   `yaml:"signups" json:"signups"`
	Palette []string `yaml:"palette" json:"palette"`
}

// Board describes the dashboard: which slots have a surface, how big they
// are and how they are drawn.
type Board struct {
	// PixelRatio applies to every surface that does not set its own.
	PixelRatio float64 `yaml:"pixel_ratio" json:"pixel_ratio"`

	// Backend names a surface backend; empty selects the best available.
	Backend string `yaml:"backend" json:"backend"`

	// Seed makes the heat map deterministic when the dataset has no heat
	// matrix. Nil means a fresh random grid on every render.
	Seed *uint64 `yaml:"seed" json:"seed"`

	// Surfaces maps slot names to container sizes. A slot left out is not
	// mounted.
	Surfaces map[chart.Slot]surface.Container `yaml:"surfaces" json:"surfaces"`

	Colors Colors       `yaml:"colors" json:"colors"`
	Layout chart.Layout `yaml:"layout" json:"layout"`
}

// DefaultBoard returns the four-slot dashboard at pixel ratio 1.
func DefaultBoard() Board {
	return Board{
		PixelRatio: 1,
		Surfaces: map[chart.Slot]surface.Container{
			chart.SlotRevenue: {Width: 640, Height: 220},
			chart.SlotSignups: {Width: 640, Height: 220},
			chart.SlotFunnel:  {Width: 640, Height: 320},
			chart.SlotHeat:    {Width: 640, Height: 200},
		},
		Layout: chart.DefaultLayout(),
	}
}

// Container returns the container of slot with the board pixel ratio
// applied, and false if the slot is not mounted.
func (b Board) Container(slot chart.Slot) (surface.Container, bool) {
	c, ok := b.Surfaces[slot]
	if !ok {
		return surface.Container{}, false
	}
	if c.PixelRatio == 0 {
		c.PixelRatio = b.PixelRatio
	}
	return c, true
}

// Options returns the chart options the board asks for.
func (b Board) Options() []chart.Option {
	opts := []chart.Option{
		chart.WithLayout(b.Layout),
		chart.WithColors(b.Colors.Revenue, b.Colors.Signups),
		chart.WithPalette(b.Colors.Palette...),
	}
	if b.Seed != nil {
		opts = append(opts, chart.WithIntensity(chart.HashIntensity(*b.Seed)))
	}
	return opts
}

// Validate reports every problem with b.
func (b Board) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(finite(b.PixelRatio) && b.PixelRatio >= 0, "pixel_ratio must be a non-negative number, got %v", b.PixelRatio)
	for slot, c := range b.Surfaces {
		check(finite(c.Width) && c.Width >= 0, "surfaces.%s.width must be a non-negative number, got %v", slot, c.Width)
		check(finite(c.Height) && c.Height >= 0, "surfaces.%s.height must be a non-negative number, got %v", slot, c.Height)
		check(finite(c.PixelRatio) && c.PixelRatio >= 0, "surfaces.%s.pixel_ratio must be a non-negative number, got %v", slot, c.PixelRatio)
	}

	l := b.Layout
	check(l.FunnelTaper > 0 && l.FunnelTaper <= 1, "layout.funnel_taper must be in (0, 1], got %v", l.FunnelTaper)
	check(l.FunnelShrink > 0, "layout.funnel_shrink must be positive, got %v", l.FunnelShrink)
	check(l.RangePadding >= 0, "layout.range_padding must not be negative, got %v", l.RangePadding)
	check(l.GridLines >= 0, "layout.grid_lines must not be negative, got %d", l.GridLines)
	check(l.LabelSize > 0, "layout.label_size must be positive, got %v", l.LabelSize)

	for _, s := range append([]string{b.Colors.Revenue, b.Colors.Signups}, b.Colors.Palette...) {
		if s == "" {
			continue
		}
		_, err := chart.ParseColor(s)
		check(err == nil, "colors: %v", err)
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrValidation, errors.Join(errs...))
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
