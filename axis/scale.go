// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package axis

import "math"

// Scale is an affine mapping from the value domain [Min, Max] to the range
// [From, To]. The range may be descending.
type Scale struct {
	Min, Max float64
	From, To float64

	// Clamp limits mapped values to the range endpoints.
	Clamp bool
}

// NewScale returns an unclamped scale.
func NewScale(min, max, from, to float64) Scale {
	return Scale{Min: min, Max: max, From: from, To: to}
}

// Clamped returns a copy of s with clamping enabled.
func (s Scale) Clamped() Scale {
	s.Clamp = true
	return s
}

// Degenerate reports whether the value domain has zero width.
func (s Scale) Degenerate() bool {
	return s.Max == s.Min
}

// Map converts a domain value into range space.
// A degenerate domain maps every value to From.
func (s Scale) Map(v float64) float64 {
	if s.Degenerate() {
		return s.From
	}
	if s.Clamp {
		v = ClampValue(v, s.Min, s.Max)
	}
	t := (v - s.Min) / (s.Max - s.Min)
	return s.From + t*(s.To-s.From)
}

// Invert converts a range position back into the value domain.
// A degenerate range inverts to Min.
func (s Scale) Invert(p float64) float64 {
	if s.To == s.From {
		return s.Min
	}
	if s.Clamp {
		p = ClampValue(p, s.From, s.To)
	}
	t := (p - s.From) / (s.To - s.From)
	return s.Min + t*(s.Max-s.Min)
}

// Span returns To - From.
func (s Scale) Span() float64 {
	return s.To - s.From
}

// Contains reports whether v lies inside the value domain (inclusive),
// regardless of the order of Min and Max.
func (s Scale) Contains(v float64) bool {
	lo, hi := s.Min, s.Max
	if lo > hi {
		lo, hi = hi, lo
	}
	return v >= lo && v <= hi
}

// ValueToAngle maps v through s.
func ValueToAngle(v float64, s Scale) float64 {
	return s.Map(v)
}

// AngleToValue maps the angle a back through s.
func AngleToValue(a float64, s Scale) float64 {
	return s.Invert(a)
}

// ClampValue limits v to the interval spanned by a and b in either order.
func ClampValue(v, a, b float64) float64 {
	lo, hi := a, b
	if lo > hi {
		lo, hi = hi, lo
	}
	return math.Max(lo, math.Min(hi, v))
}
