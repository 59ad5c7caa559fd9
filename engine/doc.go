// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package engine renders complete gauges onto a [surface.Surface].
//
// Four engines share one frame pipeline:
//
//	theme -> mode -> geometry -> axis, ticks, sectors -> static layers
//	-> back layer -> pointer -> front layer -> text -> NO DATA overlay
//
//   - [Radial] draws a dial over an arbitrary arc, a semicircle by default.
//   - [Circle] draws a full circle, either a fixed card (wind) or a card
//     rotated by the heading (compass) with bearing markers.
//   - [Linear] draws a horizontal track.
//   - [Text] draws numeric text only, including a two-line pair layout.
//
// Each engine has a pure Plan method that computes everything a frame
// needs without touching pixels. Render never returns an error: invalid
// input degrades to a fallback string and drawing errors are logged
// through [gauge.Logger].
package engine
