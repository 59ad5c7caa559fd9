// Package gauge renders responsive instrument gauges onto gg drawing
// surfaces.
//
// # Overview
//
// gauge draws radial dials, semicircular gauges, linear scales,
// compass and wind dials, and multi-row numeric displays. Every widget is a
// thin configuration wrapper around one shared engine that maps values to
// angles, builds ticks and threshold sectors, picks a responsive layout mode
// from the container aspect ratio, sizes text by binary search against real
// glyph measurements, and caches expensive static layers between frames.
//
// # Quick Start
//
//	fonts := surface.NewFontBook()
//	s := surface.New(320, 200, 2, fonts)
//	defer s.Close()
//
//	w, err := widget.New(widget.SpeedKind{Variant: widget.SpeedOverGround}, widget.Deps{
//	    Fonts: fonts,
//	    Theme: theme.NewResolver(nil),
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	w.Render(s, engine.Props{Value: 6.4, Caption: "SOG", Unit: "kn"})
//	_ = s.SavePNG("sog.png")
//
// # Architecture
//
// The module is organized leaf first:
//   - axis: value/angle mapping, angle normalization, tick generation
//   - layout: flat/normal/high mode selection
//   - sector: warning/alarm band construction
//   - surface: gg-backed drawing surface and font book
//   - theme: per-surface style token resolution
//   - textfit: binary-search text sizing and the fit cache
//   - format: number formatting, unit conversion and fallbacks
//   - layer: static layer cache keyed per surface
//   - drawing: stateless draw primitives
//   - engine: radial, circle, linear and text engines
//   - widget: host contract and per-cluster widget kinds
//   - config: TOML dashboard files for the demo renderer
//
// # Coordinate System
//
// Surfaces are addressed in logical units with the origin at the top-left
// and y increasing down. Dial angles are degrees with 0 at 12 o'clock
// increasing clockwise unless a widget configures another frame.
//
// # Concurrency
//
// Rendering is synchronous. A surface and the engine bound to it must be
// used from one goroutine at a time; different surfaces never share
// mutable state.
package gauge

// Version is the current version of the library.
const Version = "0.1.0"
