// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package layout selects the responsive layout mode of a gauge from the
// aspect ratio of its container.
package layout

import (
	"fmt"
	"math"
)

// Mode is the responsive layout shape.
type Mode uint8

const (
	// Normal is the balanced layout used for roughly square containers.
	Normal Mode = iota

	// Flat is used for wide, short containers.
	Flat

	// High is used for tall, narrow containers.
	High
)

// Modes lists every mode in a stable order.
var Modes = [...]Mode{Normal, Flat, High}

// String returns the lowercase mode name.
func (m Mode) String() string {
	switch m {
	case Flat:
		return "flat"
	case Normal:
		return "normal"
	case High:
		return "high"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// ParseMode parses a mode name as produced by String.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "flat":
		return Flat, nil
	case "normal":
		return Normal, nil
	case "high":
		return High, nil
	}
	return Normal, fmt.Errorf("layout: unknown mode %q", s)
}

// Thresholds are the aspect-ratio breakpoints of a widget.
// A ratio below Normal selects High, a ratio above Flat selects Flat.
type Thresholds struct {
	Normal float64 `toml:"normal"`
	Flat   float64 `toml:"flat"`
}

// Default thresholds per widget family.
var (
	NumericThresholds = Thresholds{Normal: 1.0, Flat: 3.0}
	CompassThresholds = Thresholds{Normal: 0.7, Flat: 2.0}
	RadialThresholds  = Thresholds{Normal: 1.1, Flat: 3.5}
	LinearThresholds  = Thresholds{Normal: 1.1, Flat: 3.5}
)

// Validate reports whether the thresholds are usable.
func (t Thresholds) Validate() error {
	if !(t.Normal > 0) || math.IsInf(t.Normal, 0) {
		return fmt.Errorf("layout: normal threshold must be positive, got %v", t.Normal)
	}
	if !(t.Flat >= t.Normal) || math.IsInf(t.Flat, 0) {
		return fmt.Errorf("layout: flat threshold %v must not be below normal threshold %v", t.Flat, t.Normal)
	}
	return nil
}

// Or returns t, or def when t is the zero value.
func (t Thresholds) Or(def Thresholds) Thresholds {
	if t == (Thresholds{}) {
		return def
	}
	return t
}

// Option adjusts mode selection for a single call.
type Option func(*selectOptions)

type selectOptions struct {
	flatNoCaption bool
	caption       string
	normalNoUnit  bool
	unit          string
}

// FlatWithoutCaption forces Flat when caption is empty.
func FlatWithoutCaption(caption string) Option {
	return func(o *selectOptions) {
		o.flatNoCaption = true
		o.caption = caption
	}
}

// NormalWithoutUnit collapses High to Normal when unit is empty.
func NormalWithoutUnit(unit string) Option {
	return func(o *selectOptions) {
		o.normalNoUnit = true
		o.unit = unit
	}
}

// Ratio returns width / max(1, height), treating non-finite or negative
// input as zero.
func Ratio(width, height float64) float64 {
	if !(width > 0) || math.IsInf(width, 0) {
		width = 0
	}
	if !(height > 1) || math.IsInf(height, 0) {
		height = 1
	}
	return width / height
}

// Select picks the mode for a container of the given size.
func Select(width, height float64, t Thresholds, opts ...Option) Mode {
	var o selectOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.flatNoCaption && o.caption == "" {
		return Flat
	}

	r := Ratio(width, height)
	var m Mode
	switch {
	case r < t.Normal:
		m = High
	case r > t.Flat:
		m = Flat
	default:
		m = Normal
	}

	if m == High && o.normalNoUnit && o.unit == "" {
		m = Normal
	}
	return m
}
