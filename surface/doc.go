// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package surface provides the drawing surface gauges render into.
//
// A [Surface] wraps a gg.Context backing buffer with a logical (CSS) size and
// a device pixel ratio. Every drawing call takes logical coordinates and the
// surface scales them to buffer pixels, so gauge code never deals with the
// pixel ratio directly.
//
// Each surface carries a stable [ID]. Per-surface caches (theme tokens,
// layer caches) are keyed by this identity and released through explicit
// invalidation rather than by garbage collection.
//
// Fonts are resolved through a [FontBook], which maps a family and weight
// to a gg text face and doubles as the text measurer used by the fitting
// engine.
//
// Surfaces are NOT safe for concurrent use.
//
//	fonts := surface.NewFontBook()
//	s := surface.New(240, 160, 2, fonts)
//	defer s.Close()
//
//	s.SetColor(color.White)
//	s.Circle(120, 80, 60)
//	_ = s.Fill()
//	_ = s.SavePNG("gauge.png")
package surface
