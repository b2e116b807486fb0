// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package surface adapts a logical chart container to a raster drawing
// target.
//
// A container is described by its layout size in logical pixels and the
// device pixel ratio of the display it is shown on. The host passes both
// explicitly; nothing is read from the environment. On every Prepare the
// surface allocates a backing buffer of the physical size
// (logical size times pixel ratio), which also clears it, and applies a
// uniform scale so that all drawing commands are issued in logical pixels.
//
// # Usage
//
//	s := surface.New(surface.Container{Width: 300, Height: 120, PixelRatio: 2})
//	defer s.Close()
//
//	dc, size, err := s.Prepare()
//	if err != nil {
//	    return err
//	}
//	dc.SetStrokeBrush(gg.SolidHex("#60a5fa"))
//	dc.MoveTo(0, size.H/2)
//	dc.LineTo(size.W, size.H/2)
//	_ = dc.Stroke()
//
//	img := s.Image() // 600x240 physical pixels
//
// # Zero-area containers
//
// A hidden or collapsed container is a normal UI state. Prepare on a
// container with no physical area returns a canvas that accepts every
// drawing call and draws nothing.
//
// # Backends
//
// Backing buffers come from a registry of named factories, in the same
// spirit as database/sql drivers. The built-in "software" backend is a
// [github.com/gogpu/gg] context. Register a higher-priority backend to
// replace it:
//
//	surface.Register("mybackend", 100, factory, available)
//
// # Concurrency
//
// Surfaces are NOT safe for concurrent use. Prepare mutates the backing
// buffer and its transform in place, so renders against the same surface
// must be serialized by the caller. Distinct surfaces are independent.
package surface
