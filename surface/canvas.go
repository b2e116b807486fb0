// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"image"
	"io"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

// Canvas is the immediate-mode drawing capability the chart renderers
// consume. Coordinates are logical pixels.
//
// *gg.Context satisfies Canvas.
type Canvas interface {
	// Path construction.
	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()

	// Paint state.
	SetLineWidth(width float64)
	SetFillBrush(b gg.Brush)
	SetStrokeBrush(b gg.Brush)
	SetFont(face text.Face)

	// Fill and Stroke consume the current path.
	Fill() error
	Stroke() error

	DrawRectangle(x, y, w, h float64)

	// DrawString draws s with its baseline at y.
	DrawString(s string, x, y float64)
}

// Backing is a physical pixel buffer with a Canvas on top of it.
// Backends produce Backings; a Surface owns at most one at a time.
type Backing interface {
	Canvas
	io.Closer

	// Scale post-multiplies the current transform.
	Scale(sx, sy float64)

	// Image returns the buffer contents.
	Image() image.Image
}

var (
	_ Canvas  = (*gg.Context)(nil)
	_ Backing = (*gg.Context)(nil)
	_ Canvas  = nopCanvas{}
)

// nopCanvas accepts every drawing call and draws nothing. It stands in for
// containers with no physical area.
type nopCanvas struct{}

func (nopCanvas) MoveTo(_, _ float64)               {}
func (nopCanvas) LineTo(_, _ float64)               {}
func (nopCanvas) ClosePath()                        {}
func (nopCanvas) SetLineWidth(float64)              {}
func (nopCanvas) SetFillBrush(gg.Brush)             {}
func (nopCanvas) SetStrokeBrush(gg.Brush)           {}
func (nopCanvas) SetFont(text.Face)                 {}
func (nopCanvas) Fill() error                       { return nil }
func (nopCanvas) Stroke() error                     { return nil }
func (nopCanvas) DrawRectangle(_, _, _, _ float64)  {}
func (nopCanvas) DrawString(_ string, _, _ float64) {}
