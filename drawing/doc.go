// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package drawing provides the gauge primitives: annular bands, radial and
// linear ticks, tick labels, needles, rim markers, linear tracks and
// pointers, text items and the NO DATA overlay.
//
// Every primitive draws in logical coordinates on a [surface.Surface].
// Radial primitives take dial angles in degrees and an [axis.Frame] that
// converts them to canvas angles, so the same code serves semicircle
// dials, full circles and rotating compass cards.
//
// Primitives return the first error reported by the surface; a failed
// primitive leaves the current path cleared.
package drawing
