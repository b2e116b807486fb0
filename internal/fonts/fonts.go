// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package fonts provides the label faces used by the chart renderers.
//
// The Go fonts are embedded through golang.org/x/image, so rendering never
// depends on fonts installed on the host.
package fonts

import (
	"fmt"
	"sync"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Weight selects a face weight.
type Weight uint8

const (
	Regular Weight = iota
	Bold
)

// String returns the weight name.
func (w Weight) String() string {
	switch w {
	case Regular:
		return "regular"
	case Bold:
		return "bold"
	default:
		return fmt.Sprintf("Weight(%d)", w)
	}
}

// Sources are parsed once and shared for the process lifetime.
var (
	regular = sync.OnceValues(func() (*text.FontSource, error) {
		return text.NewFontSource(goregular.TTF)
	})
	bold = sync.OnceValues(func() (*text.FontSource, error) {
		return text.NewFontSource(gobold.TTF)
	})
)

// maxFaces bounds the number of cached faces.
const maxFaces = 32

var faces = newFaceCache(maxFaces)

// Face returns a face of the given weight and size in points. Faces are
// cached and shared; they must not be mutated.
func Face(w Weight, size float64) (text.Face, error) {
	return faces.getOrCreate(faceKey{w, size}, func() (text.Face, error) {
		load := regular
		if w == Bold {
			load = bold
		}
		src, err := load()
		if err != nil {
			return nil, fmt.Errorf("fonts: load %s: %w", w, err)
		}
		return src.Face(size), nil
	})
}
