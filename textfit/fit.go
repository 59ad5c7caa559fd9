// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package textfit sizes text to fit a box by binary search over integer
// pixel sizes, measuring candidates with the real glyph metrics of a
// [Measurer] rather than estimating them.
//
// The primitive solvers are [FitSingleLine], [FitMultiRow],
// [FitValueUnitRow] and [FitInlineTriplet]. Composite layouts
// ([FitStack], [FitCaptionRow], [FitHeaderPair]) build on the same search
// and [LayoutBlock] turns a fit into positioned text items for a layout
// mode. No solver fails: when nothing fits, the minimum size is returned
// with Fits set to false.
package textfit

import (
	"math"

	"github.com/gogpu/gauge/surface"
)

// Search bounds.
const (
	// MaxIterations caps the binary search.
	MaxIterations = 18

	// DefaultMinPx is the smallest size a solver returns.
	DefaultMinPx = 1

	// Tolerance is the slack allowed when comparing measured extents
	// against the box.
	Tolerance = 0.01
)

// Measurer reports the advance width and line height of s in font f.
// *surface.FontBook implements Measurer.
type Measurer interface {
	Measure(s string, f surface.Font) (width, height float64)
}

// Box is an available area in logical units.
type Box struct {
	W, H float64
}

// Valid reports whether the box has a positive, finite area.
func (b Box) Valid() bool {
	return b.W > 0 && b.H > 0 && !math.IsInf(b.W, 0) && !math.IsInf(b.H, 0)
}

// Candidate is what a Check sees for one trial size.
type Candidate struct {
	// Px is the primary size being tried.
	Px float64

	// Widths are the measured widths of the elements, in solver order.
	Widths []float64

	// Height is the total height of the composition.
	Height float64
}

// Check is an additional constraint; returning false rejects the size.
type Check func(Candidate) bool

// Option configures a solver call.
type Option func(*options)

type options struct {
	minPx float64
	maxPx float64
	check Check
}

// WithMinPx sets the smallest size considered.
func WithMinPx(px float64) Option {
	return func(o *options) {
		if px >= 1 {
			o.minPx = math.Floor(px)
		}
	}
}

// WithMaxPx caps the primary size.
func WithMaxPx(px float64) Option {
	return func(o *options) {
		if px > 0 {
			o.maxPx = math.Floor(px)
		}
	}
}

// WithCheck adds a custom constraint evaluated after the box checks.
func WithCheck(c Check) Option {
	return func(o *options) { o.check = c }
}

func newOptions(opts []Option) options {
	o := options{minPx: DefaultMinPx}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// upper returns the search ceiling for a composition whose height grows
// at least by heightScale per px.
func (o options) upper(boxH, heightScale float64) int {
	hi := boxH
	if heightScale > 0 {
		hi = boxH / heightScale
	}
	if o.maxPx > 0 {
		hi = math.Min(hi, o.maxPx)
	}
	if !(hi >= o.minPx) || math.IsInf(hi, 0) {
		return int(o.minPx)
	}
	return int(math.Floor(hi))
}

func (o options) accept(c Candidate) bool {
	return o.check == nil || o.check(c)
}

// search returns the largest px in [lo, hi] for which fits holds. It
// assumes fits is monotone (true up to some size, false above it). When
// even lo does not fit it returns lo and false.
func search(lo, hi int, fits func(px int) bool) (int, bool) {
	if hi < lo {
		hi = lo
	}
	if !fits(lo) {
		return lo, false
	}
	for i := 0; lo < hi && i < MaxIterations; i++ {
		mid := lo + (hi-lo+1)/2
		if fits(mid) {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo, true
}

func within(v, limit float64) bool {
	return v <= limit+Tolerance
}

// Line is the fit of a single string.
type Line struct {
	Px     float64
	Width  float64
	Height float64
	Fits   bool
}

// FitSingleLine finds the largest size at which text fits box.
func FitSingleLine(m Measurer, text string, box Box, font surface.Font, opts ...Option) Line {
	o := newOptions(opts)
	measure := func(px int) Line {
		w, h := m.Measure(text, font.WithPx(float64(px)))
		return Line{Px: float64(px), Width: w, Height: h}
	}
	px, ok := search(int(o.minPx), o.upper(box.H, 0), func(px int) bool {
		l := measure(px)
		return within(l.Width, box.W) && within(l.Height, box.H) &&
			o.accept(Candidate{Px: l.Px, Widths: []float64{l.Width}, Height: l.Height})
	})
	l := measure(px)
	l.Fits = ok
	return l
}

// Rows is the fit of several strings sharing one size.
type Rows struct {
	Px     float64
	Widths []float64
	Height float64
	Fits   bool
}

// FitMultiRow finds the largest size at which every text fits row, so
// that independent lines render at identical size.
func FitMultiRow(m Measurer, texts []string, row Box, font surface.Font, opts ...Option) Rows {
	o := newOptions(opts)
	measure := func(px int) Rows {
		r := Rows{Px: float64(px), Widths: make([]float64, len(texts))}
		for i, t := range texts {
			w, h := m.Measure(t, font.WithPx(float64(px)))
			r.Widths[i] = w
			r.Height = math.Max(r.Height, h)
		}
		return r
	}
	px, ok := search(int(o.minPx), o.upper(row.H, 0), func(px int) bool {
		r := measure(px)
		if !within(r.Height, row.H) {
			return false
		}
		for _, w := range r.Widths {
			if !within(w, row.W) {
				return false
			}
		}
		return o.accept(Candidate{Px: r.Px, Widths: r.Widths, Height: r.Height})
	})
	r := measure(px)
	r.Fits = ok
	return r
}

// ValueUnit is the fit of a value followed by a smaller unit.
type ValueUnit struct {
	ValuePx, UnitPx float64
	ValueW, UnitW   float64
	ValueH, UnitH   float64
	Gap             float64
	Fits            bool
}

// Width returns the total row width.
func (v ValueUnit) Width() float64 { return v.ValueW + v.Gap + v.UnitW }

// Height returns the row height.
func (v ValueUnit) Height() float64 { return math.Max(v.ValueH, v.UnitH) }

// FitValueUnitRow sizes value and unit jointly on one row. The unit size
// is secScale times the value size and the gap is gapFrac times the value
// size (no gap without a unit).
func FitValueUnitRow(m Measurer, value, unit string, box Box, valueFont, unitFont surface.Font, secScale, gapFrac float64, opts ...Option) ValueUnit {
	o := newOptions(opts)
	secScale = ClampSecScale(secScale)
	measure := func(px int) ValueUnit {
		p := float64(px)
		v := ValueUnit{ValuePx: p, UnitPx: unitPx(p, secScale)}
		v.ValueW, v.ValueH = m.Measure(value, valueFont.WithPx(v.ValuePx))
		if unit != "" {
			v.UnitW, v.UnitH = m.Measure(unit, unitFont.WithPx(v.UnitPx))
			v.Gap = p * gapFrac
		}
		return v
	}
	px, ok := search(int(o.minPx), o.upper(box.H, math.Max(1, secScale)), func(px int) bool {
		v := measure(px)
		return within(v.Width(), box.W) && within(v.Height(), box.H) &&
			o.accept(Candidate{Px: v.ValuePx, Widths: []float64{v.ValueW, v.UnitW}, Height: v.Height()})
	})
	v := measure(px)
	v.Fits = ok
	return v
}

// Fonts holds the family and weight of each text role. Px is ignored.
type Fonts struct {
	Caption surface.Font
	Value   surface.Font
	Unit    surface.Font
}

// Triplet is the fit of caption, value and unit on one row.
type Triplet struct {
	CaptionPx, ValuePx, UnitPx float64
	CaptionW, ValueW, UnitW    float64
	CaptionH, ValueH, UnitH    float64
	Gap                        float64
	Fits                       bool
}

// Width returns the total row width including gaps.
func (t Triplet) Width() float64 {
	return t.CaptionW + t.ValueW + t.UnitW + t.Gap*float64(gaps(t.CaptionW, t.ValueW, t.UnitW))
}

// Height returns the row height.
func (t Triplet) Height() float64 {
	return math.Max(t.CaptionH, math.Max(t.ValueH, t.UnitH))
}

// FitInlineTriplet sizes caption, value and unit on one row. Caption and
// unit sizes are secScale times the value size; one gap of gapFrac times
// the value size separates neighbouring non-empty parts.
func FitInlineTriplet(m Measurer, caption, value, unit string, box Box, fonts Fonts, secScale, gapFrac float64, opts ...Option) Triplet {
	o := newOptions(opts)
	secScale = ClampSecScale(secScale)
	measure := func(px int) Triplet {
		p := float64(px)
		s := unitPx(p, secScale)
		t := Triplet{CaptionPx: s, ValuePx: p, UnitPx: s, Gap: p * gapFrac}
		if caption != "" {
			t.CaptionW, t.CaptionH = m.Measure(caption, fonts.Caption.WithPx(s))
		}
		t.ValueW, t.ValueH = m.Measure(value, fonts.Value.WithPx(p))
		if unit != "" {
			t.UnitW, t.UnitH = m.Measure(unit, fonts.Unit.WithPx(s))
		}
		return t
	}
	px, ok := search(int(o.minPx), o.upper(box.H, math.Max(1, secScale)), func(px int) bool {
		t := measure(px)
		return within(t.Width(), box.W) && within(t.Height(), box.H) &&
			o.accept(Candidate{Px: t.ValuePx, Widths: []float64{t.CaptionW, t.ValueW, t.UnitW}, Height: t.Height()})
	})
	t := measure(px)
	t.Fits = ok
	return t
}

// Secondary scale bounds.
const (
	// MinSecScale is the smallest caption and unit size relative to the value.
	MinSecScale = 0.3

	// MaxSecScale is the largest caption and unit size relative to the value.
	MaxSecScale = 3.0
)

// ClampSecScale limits s to [MinSecScale, MaxSecScale]; non-finite input
// yields 1.
func ClampSecScale(s float64) float64 {
	if math.IsNaN(s) || math.IsInf(s, 0) || s == 0 {
		return 1
	}
	return math.Max(MinSecScale, math.Min(MaxSecScale, s))
}

func unitPx(valuePx, secScale float64) float64 {
	return math.Max(DefaultMinPx, math.Round(valuePx*secScale))
}

// gaps counts the separators between non-empty parts given their widths.
func gaps(widths ...float64) int {
	n := 0
	for _, w := range widths {
		if w > 0 {
			n++
		}
	}
	if n < 2 {
		return 0
	}
	return n - 1
}
