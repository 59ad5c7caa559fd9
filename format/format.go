// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package format is the hook through which gauges turn numbers into
// display strings.
//
// Hosts usually supply their own [Formatter]. [Fixed] is the default: a
// locale-aware fixed-decimals formatter built on golang.org/x/text. Every
// formatter used by an engine is wrapped in [Safe], so a failing or
// panicking formatter degrades to the fallback string instead of breaking
// a frame.
package format

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/gauge"
)

// Fallback is the display string for missing or invalid values.
const Fallback = "---"

// ErrNotFinite is returned for NaN and infinite input.
var ErrNotFinite = errors.New("format: value is not finite")

// Formatter converts a value to a display string. params are
// formatter-specific, for example the number of decimals.
type Formatter interface {
	Format(value float64, params ...string) (string, error)
}

// Func adapts a function to Formatter.
type Func func(value float64, params ...string) (string, error)

// Format calls f.
func (f Func) Format(value float64, params ...string) (string, error) {
	return f(value, params...)
}

// Fixed formats with a fixed number of decimals in the conventions of
// Lang. A first param that parses as an integer overrides Decimals.
type Fixed struct {
	Decimals int
	Lang     language.Tag

	// Grouping enables thousands separators.
	Grouping bool
}

// NewFixed returns an English Fixed formatter without grouping.
func NewFixed(decimals int) Fixed {
	return Fixed{Decimals: decimals, Lang: language.English}
}

// Format implements Formatter.
func (f Fixed) Format(value float64, params ...string) (string, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return "", ErrNotFinite
	}
	d := f.Decimals
	if len(params) > 0 && params[0] != "" {
		n, err := strconv.Atoi(params[0])
		if err != nil {
			return "", fmt.Errorf("format: bad decimals %q: %w", params[0], err)
		}
		d = n
	}
	d = max(0, min(d, 10))

	// Avoid "-0.0" for values that round to zero.
	if r := math.Pow10(d); math.Round(value*r) == 0 {
		value = 0
	}
	if !f.Grouping {
		return strconv.FormatFloat(value, 'f', d, 64), nil
	}
	p := message.NewPrinter(f.Lang)
	return p.Sprintf(fmt.Sprintf("%%.%df", d), value), nil
}

// Scaled converts the value with Factor and Offset before handing it to
// Next, for unit conversion (m/s to knots, Kelvin to Celsius).
type Scaled struct {
	Factor float64
	Offset float64
	Next   Formatter
}

// Common conversions.
var (
	MetersPerSecondToKnots = Scaled{Factor: 3600.0 / 1852.0}
	KelvinToCelsius        = Scaled{Factor: 1, Offset: -273.15}
	MetersToFeet           = Scaled{Factor: 1 / 0.3048}
)

// Apply returns the converted value.
func (s Scaled) Apply(v float64) float64 {
	f := s.Factor
	if f == 0 {
		f = 1
	}
	return v*f + s.Offset
}

// Format implements Formatter.
func (s Scaled) Format(value float64, params ...string) (string, error) {
	next := s.Next
	if next == nil {
		next = NewFixed(1)
	}
	return next.Format(s.Apply(value), params...)
}

// Safe wraps f so that errors, panics and empty results yield fallback.
// A nil f formats with NewFixed(1).
func Safe(f Formatter, fallback string) Func {
	if f == nil {
		f = NewFixed(1)
	}
	return func(value float64, params ...string) (out string, err error) {
		defer func() {
			if r := recover(); r != nil {
				gauge.Logger().Warn("format: formatter panicked", "value", value, "panic", r)
				out, err = fallback, nil
			}
		}()
		s, ferr := f.Format(value, params...)
		if ferr != nil {
			gauge.Logger().Debug("format: fallback", "value", value, "err", ferr)
			return fallback, nil
		}
		if s == "" {
			return fallback, nil
		}
		return s, nil
	}
}
