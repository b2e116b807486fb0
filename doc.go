// Package chart renders small dashboard charts onto raster surfaces.
//
// # Overview
//
// chart draws three kinds of chart without a general-purpose charting
// library: a gradient-filled line chart for an ordered series, a
// conversion funnel built from trapezoids, and a fixed 24x6 density
// heat-map. Drawing goes through [surface.Canvas], which a
// [github.com/gogpu/gg] context satisfies.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/chart"
//	    "github.com/gogpu/chart/surface"
//	)
//
//	s := surface.New(surface.Container{Width: 300, Height: 120, PixelRatio: 2})
//	defer s.Close()
//
//	series := chart.Series{{Label: "Jan", Value: 100}, {Label: "Feb", Value: 200}}
//	if err := chart.RenderLine(s, series, chart.Style{Color: "#22c55e"}); err != nil {
//	    return err
//	}
//
// # Redraw contract
//
// Every render is a full redraw from its inputs. Renderers keep no state
// between calls; each call prepares its surface (which resizes and clears
// the backing buffer) and draws the whole chart. Calling a renderer twice
// with the same surface size and data produces identical pixels, provided
// the heat map is given a deterministic [IntensityFunc].
//
// After each data refresh the host calls [Dispatcher.RenderAll] with the
// surfaces it currently has mounted. Unmounted surfaces are skipped.
//
// # Degenerate data
//
// Empty series, single points, constant series and zero-valued funnel
// stages never produce NaN or infinite coordinates. Fallbacks are
// described on each renderer.
//
// # Coordinate System
//
// Coordinates are logical (layout) pixels with the origin at the top-left
// and Y increasing down. The surface maps them to device pixels.
package chart

// Version information
const (
	// Version is the current version of the library
	Version = "0.3.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 3

	// VersionPatch is the patch version
	VersionPatch = 0
)
