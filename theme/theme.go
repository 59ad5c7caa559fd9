// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package theme resolves style tokens for a drawing surface.
//
// Tokens start from the built-in [Light] or [Dark] set and are overridden by
// named values read from a host [Source]. Resolved tokens are cached per
// surface and recomputed when the host flips its dark-mode flag or when the
// surface is invalidated explicitly.
package theme

import (
	"image/color"

	"github.com/gogpu/gg"
	"github.com/gogpu/gauge/surface"
)

// Tokens are the resolved style constants of one surface.
//
// Length tokens are fractions of the gauge radius (radial) or track length
// (linear) unless noted otherwise.
type Tokens struct {
	Dark bool

	Background color.Color
	Foreground color.Color
	Dim        color.Color
	Ring       color.Color
	TickMajor  color.Color
	TickMinor  color.Color
	Pointer    color.Color
	Marker     color.Color
	Warning    color.Color
	Alarm      color.Color
	Overlay    color.Color

	RingWidth      float64
	MajorTickLen   float64
	MinorTickLen   float64
	MajorTickWidth float64
	MinorTickWidth float64
	PointerWidth   float64
	SectorWidth    float64
	LabelInset     float64

	// Pad is the container padding as a fraction of min(width, height).
	Pad float64
	// Gap is the spacing between text elements as a fraction of value size.
	Gap float64

	FontFamily    string
	ValueWeight   surface.Weight
	CaptionWeight surface.Weight
	UnitWeight    surface.Weight
	LabelWeight   surface.Weight

	// SecScale is the default caption/unit size relative to the value.
	SecScale float64
}

// Light returns the default light-mode tokens.
func Light() Tokens {
	t := base()
	t.Background = gg.Hex("#ffffff").Color()
	t.Foreground = gg.Hex("#1b1f24").Color()
	t.Dim = gg.Hex("#6b7280").Color()
	t.Ring = gg.Hex("#9aa3ad").Color()
	t.TickMajor = gg.Hex("#1b1f24").Color()
	t.TickMinor = gg.Hex("#6b7280").Color()
	t.Pointer = gg.Hex("#d1342f").Color()
	t.Marker = gg.Hex("#1f6feb").Color()
	t.Warning = gg.Hex("#f0a30a").Color()
	t.Alarm = gg.Hex("#d1342f").Color()
	t.Overlay = gg.Hex("#ffffffb3").Color()
	return t
}

// Dark returns the default dark-mode tokens.
func Dark() Tokens {
	t := base()
	t.Dark = true
	t.Background = gg.Hex("#0d1117").Color()
	t.Foreground = gg.Hex("#e6edf3").Color()
	t.Dim = gg.Hex("#8b949e").Color()
	t.Ring = gg.Hex("#484f58").Color()
	t.TickMajor = gg.Hex("#e6edf3").Color()
	t.TickMinor = gg.Hex("#8b949e").Color()
	t.Pointer = gg.Hex("#ff6b5e").Color()
	t.Marker = gg.Hex("#58a6ff").Color()
	t.Warning = gg.Hex("#d29922").Color()
	t.Alarm = gg.Hex("#f85149").Color()
	t.Overlay = gg.Hex("#0d1117b3").Color()
	return t
}

// Default returns Dark() or Light().
func Default(dark bool) Tokens {
	if dark {
		return Dark()
	}
	return Light()
}

func base() Tokens {
	return Tokens{
		RingWidth:      0.06,
		MajorTickLen:   0.12,
		MinorTickLen:   0.06,
		MajorTickWidth: 0.025,
		MinorTickWidth: 0.012,
		PointerWidth:   0.04,
		SectorWidth:    0.08,
		LabelInset:     0.28,
		Pad:            0.04,
		Gap:            0.25,
		FontFamily:     surface.FamilySans,
		ValueWeight:    surface.WeightBold,
		CaptionWeight:  surface.WeightRegular,
		UnitWeight:     surface.WeightRegular,
		LabelWeight:    surface.WeightRegular,
		SecScale:       0.8,
	}
}
