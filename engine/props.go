// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package engine

import (
	"encoding/json"
	"image/color"
	"math"
	"strconv"
	"strings"
)

// Props are the per-frame inputs of a gauge.
type Props struct {
	// Value is the live value. Numbers of any Go numeric type and numeric
	// strings are accepted; anything else is treated as missing.
	Value any

	Caption string
	Unit    string

	// Default replaces the "---" fallback for missing values.
	Default string

	// Disconnect draws the NO DATA overlay.
	Disconnect bool

	// FormatParams are passed to the formatter. When empty the configured
	// number of decimals is passed.
	FormatParams []string

	// SecScale is the caption and unit size relative to the value. Zero
	// uses the theme default.
	SecScale float64

	// Markers are bearings drawn on the rim of a Circle gauge.
	Markers []Marker

	// Lines replace Value in the Text pair layout.
	Lines []string
}

// Marker is a bearing indicator on a circular card.
type Marker struct {
	Name    string
	Bearing float64

	// Color overrides the theme marker color.
	Color color.Color
}

// Number coerces v to a finite float64.
func Number(v any) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case nil:
		return 0, false
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int8:
		f = float64(n)
	case int16:
		f = float64(n)
	case int32:
		f = float64(n)
	case int64:
		f = float64(n)
	case uint:
		f = float64(n)
	case uint8:
		f = float64(n)
	case uint16:
		f = float64(n)
	case uint32:
		f = float64(n)
	case uint64:
		f = float64(n)
	case *float64:
		if n == nil {
			return 0, false
		}
		f = *n
	case json.Number:
		x, err := n.Float64()
		if err != nil {
			return 0, false
		}
		f = x
	case string:
		x, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		f = x
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// Display is the resolved text of a frame.
type Display struct {
	// Value is NaN when Valid is false.
	Value float64
	Valid bool

	Text    string
	Caption string
	Unit    string

	// SecScale is clamped to the textfit bounds.
	SecScale float64
}
