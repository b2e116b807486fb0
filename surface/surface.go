// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
)

// ErrClosed is returned by Prepare after Close.
var ErrClosed = errors.New("surface: closed")

// Target is anything a chart can be rendered onto.
//
// Prepare readies a fresh frame and returns the canvas to draw it with and
// the logical size of the drawable area.
type Target interface {
	Prepare() (Canvas, Size, error)
}

// Option configures a Surface.
type Option func(*Surface)

// WithBackend selects a named backend instead of the best available one.
func WithBackend(name string) Option {
	return func(s *Surface) {
		s.backend = name
	}
}

// WithRegistry makes the surface resolve backends from r instead of the
// global registry.
func WithRegistry(r *Registry) Option {
	return func(s *Surface) {
		s.registry = r
	}
}

// Surface is a logical container plus the physical buffer backing it.
// It implements Target.
type Surface struct {
	container Container
	backend   string
	registry  *Registry
	backing   Backing
	closed    bool
}

var _ Target = (*Surface)(nil)

// New creates a surface for the given container. No buffer is allocated
// until the first Prepare.
func New(c Container, opts ...Option) *Surface {
	s := &Surface{
		container: c,
		registry:  globalRegistry,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Container returns the container the surface is laid out in.
func (s *Surface) Container() Container {
	return s.container
}

// Backend returns the backend name chosen with WithBackend, or "" when the
// surface uses the best available one.
func (s *Surface) Backend() string {
	return s.backend
}

// Resize records a new layout size. It takes effect on the next Prepare.
func (s *Surface) Resize(width, height float64) {
	s.container.Width = width
	s.container.Height = height
}

// SetPixelRatio records a new device pixel ratio. It takes effect on the
// next Prepare.
func (s *Surface) SetPixelRatio(ratio float64) {
	s.container.PixelRatio = ratio
}

// PhysicalSize returns the size of the current backing buffer in device
// pixels, or 0x0 if none is allocated.
func (s *Surface) PhysicalSize() (width, height int) {
	if s.backing == nil {
		return 0, 0
	}
	b := s.backing.Image().Bounds()
	return b.Dx(), b.Dy()
}

// Prepare sizes the backing buffer to the container, which clears it, and
// returns a canvas scaled by the pixel ratio.
func (s *Surface) Prepare() (Canvas, Size, error) {
	if s.closed {
		return nil, Size{}, ErrClosed
	}

	size := s.container.Size()
	pw, ph := s.container.Physical()

	if err := s.release(); err != nil {
		return nil, Size{}, err
	}
	if pw == 0 || ph == 0 {
		return nopCanvas{}, size, nil
	}

	b, err := s.newBacking(pw, ph)
	if err != nil {
		return nil, Size{}, fmt.Errorf("surface: prepare %dx%d: %w", pw, ph, err)
	}
	r := s.container.Ratio()
	b.Scale(r, r)
	s.backing = b

	return b, size, nil
}

// Image returns the current frame. A surface that has never been prepared,
// or whose container has no area, yields an empty image.
func (s *Surface) Image() image.Image {
	if s.backing == nil {
		return image.NewRGBA(image.Rectangle{})
	}
	return s.backing.Image()
}

// EncodePNG writes the current frame to w as PNG.
func (s *Surface) EncodePNG(w io.Writer) error {
	return png.Encode(w, s.Image())
}

// Close releases the backing buffer. Close is idempotent.
func (s *Surface) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	return s.release()
}

func (s *Surface) newBacking(width, height int) (Backing, error) {
	if s.backend != "" {
		return s.registry.NewBackingByName(s.backend, width, height)
	}
	return s.registry.NewBacking(width, height)
}

func (s *Surface) release() error {
	if s.backing == nil {
		return nil
	}
	err := s.backing.Close()
	s.backing = nil
	if err != nil {
		return fmt.Errorf("surface: release backing: %w", err)
	}
	return nil
}
