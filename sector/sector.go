// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package sector builds warning and alarm bands from threshold values.
//
// Two shapes are supported. [HighEnd] places the bands at the top of the
// axis (overspeed, over-temperature). [LowEnd] places them at the bottom
// (shallow water, under-voltage). Bounds are clamped into the axis and
// bands narrower than [MinSpan] are dropped.
package sector

import (
	"fmt"
	"image/color"
	"math"

	"github.com/gogpu/gauge/axis"
)

// MinSpan is the narrowest band that is kept.
const MinSpan = 1e-9

// Kind identifies the severity of a band.
type Kind uint8

const (
	// Warning is the first, milder band.
	Warning Kind = iota

	// Alarm is the band beyond the alarm limit.
	Alarm
)

func (k Kind) String() string {
	switch k {
	case Warning:
		return "warning"
	case Alarm:
		return "alarm"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Shape selects which end of the axis the bands attach to.
type Shape uint8

const (
	// None builds no bands.
	None Shape = iota

	// HighEnd puts the bands between the limits and Max.
	HighEnd

	// LowEnd puts the bands between Min and the limits.
	LowEnd
)

// ParseShape parses "none", "high" or "low".
func ParseShape(s string) (Shape, error) {
	switch s {
	case "", "none":
		return None, nil
	case "high":
		return HighEnd, nil
	case "low":
		return LowEnd, nil
	}
	return None, fmt.Errorf("sector: unknown shape %q", s)
}

// Sector is a colored band. From <= To always holds.
type Sector struct {
	From, To float64
	Kind     Kind
	Color    color.Color
}

// Span returns To - From.
func (s Sector) Span() float64 { return s.To - s.From }

// Limits are the configured threshold values. A nil field is unset.
type Limits struct {
	WarningFrom *float64 `toml:"warning_from"`
	AlarmFrom   *float64 `toml:"alarm_from"`
}

// At returns a pointer to v, for building Limits literals.
func At(v float64) *float64 { return &v }

// Palette colors the bands.
type Palette struct {
	Warning color.Color
	Alarm   color.Color
}

func (p Palette) color(k Kind) color.Color {
	if k == Alarm {
		return p.Alarm
	}
	return p.Warning
}

// Build dispatches on shape.
func Build(shape Shape, l Limits, min, max float64, p Palette) []Sector {
	switch shape {
	case HighEnd:
		return BuildHighEnd(l, min, max, p)
	case LowEnd:
		return BuildLowEnd(l, min, max, p)
	default:
		return nil
	}
}

// BuildHighEnd builds warning [W, A) and alarm [A, max]. Without an alarm
// value the warning band runs to max.
func BuildHighEnd(l Limits, min, max float64, p Palette) []Sector {
	lo, hi := ordered(min, max)
	w, hasW := value(l.WarningFrom)
	a, hasA := value(l.AlarmFrom)

	var out []Sector
	if hasW {
		to := hi
		if hasA {
			to = a
		}
		out = appendBand(out, w, to, lo, hi, Warning, p)
	}
	if hasA {
		out = appendBand(out, a, hi, lo, hi, Alarm, p)
	}
	return out
}

// BuildLowEnd builds alarm [min, A] and warning (A, W]. Without an alarm
// value the warning band starts at min.
func BuildLowEnd(l Limits, min, max float64, p Palette) []Sector {
	lo, hi := ordered(min, max)
	w, hasW := value(l.WarningFrom)
	a, hasA := value(l.AlarmFrom)

	var out []Sector
	if hasA {
		out = appendBand(out, lo, a, lo, hi, Alarm, p)
	}
	if hasW {
		from := lo
		if hasA {
			from = a
		}
		out = appendBand(out, from, w, lo, hi, Warning, p)
	}
	return out
}

// Project maps value-space sectors into the range space of s. Endpoints
// are swapped when the mapping inverts them.
func Project(sectors []Sector, s axis.Scale) []Sector {
	out := make([]Sector, 0, len(sectors))
	for _, sec := range sectors {
		from, to := s.Map(sec.From), s.Map(sec.To)
		if to < from {
			from, to = to, from
		}
		if to-from < MinSpan {
			continue
		}
		sec.From, sec.To = from, to
		out = append(out, sec)
	}
	return out
}

func appendBand(out []Sector, from, to, lo, hi float64, k Kind, p Palette) []Sector {
	from = axis.ClampValue(from, lo, hi)
	to = axis.ClampValue(to, lo, hi)
	if to-from < MinSpan {
		return out
	}
	return append(out, Sector{From: from, To: to, Kind: k, Color: p.color(k)})
}

func value(p *float64) (float64, bool) {
	if p == nil || math.IsNaN(*p) || math.IsInf(*p, 0) {
		return 0, false
	}
	return *p, true
}

func ordered(a, b float64) (float64, float64) {
	if a > b {
		return b, a
	}
	return a, b
}
