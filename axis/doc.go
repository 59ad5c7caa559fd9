// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package axis maps gauge values to drawing angles or positions and back.
//
// A [Scale] is an affine mapping from a value domain {Min, Max} to a range
// {From, To}. For radial gauges the range is in degrees, for linear gauges it
// is in logical pixels. Angles are converted to canvas radians through a
// [Frame], which fixes the zero reference, the winding direction and an
// optional rotation (used for heading-stabilized compass cards).
//
// Tick sequences are generated with [BuildTickAngles] (range space) and
// [BuildValueTicks] (value space). Both always include the range endpoints
// as major ticks.
package axis
