// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package engine

import (
	"math"

	"github.com/gogpu/gauge/axis"
	"github.com/gogpu/gauge/drawing"
	"github.com/gogpu/gauge/layout"
	"github.com/gogpu/gauge/textfit"
)

// Rect is an axis-aligned area in logical units.
type Rect struct {
	X, Y, W, H float64
}

// Box returns the size of r.
func (r Rect) Box() textfit.Box { return textfit.Box{W: r.W, H: r.H} }

// Origin returns the top-left corner of r.
func (r Rect) Origin() textfit.Origin { return textfit.Origin{X: r.X, Y: r.Y} }

// Inset shrinks r by d on every side, never below zero size.
func (r Rect) Inset(d float64) Rect {
	return Rect{X: r.X + d, Y: r.Y + d, W: math.Max(0, r.W-2*d), H: math.Max(0, r.H-2*d)}
}

// Geometry is the per-frame layout of a gauge.
type Geometry struct {
	Width, Height float64
	Pad           float64

	// Dial is the area of the graphic part; Text the area of the text block.
	Dial Rect
	Text Rect

	// Radial gauges.
	Center drawing.Center
	Radius float64
	Ring   float64

	// Linear gauges.
	Track drawing.Track

	// LabelPx is the tick label size.
	LabelPx float64
}

// bounds is the extent of a dial arc relative to a unit circle centered on
// the pivot. The pivot itself is always inside.
type bounds struct {
	minX, maxX, minY, maxY float64
}

func (b bounds) w() float64 { return b.maxX - b.minX }
func (b bounds) h() float64 { return b.maxY - b.minY }

func arcBounds(f axis.Frame, start, end float64) bounds {
	b := bounds{}
	sweep := end - start
	n := int(math.Ceil(math.Abs(sweep)))
	if n < 1 {
		n = 1
	}
	for i := 0; i <= n; i++ {
		x, y := f.Point(0, 0, 1, start+sweep*float64(i)/float64(n))
		b.minX = math.Min(b.minX, x)
		b.maxX = math.Max(b.maxX, x)
		b.minY = math.Min(b.minY, y)
		b.maxY = math.Max(b.maxY, y)
	}
	// Keep room for the hub on shallow arcs.
	b.maxY = math.Max(b.maxY, 0.1)
	return b
}

// padOf returns the container padding for a w x h gauge.
func padOf(w, h, frac float64) float64 {
	return math.Max(0, frac) * math.Min(w, h)
}

// radialGeometry places a dial with extent b and its text box inside the
// w x h container for mode.
func radialGeometry(mode layout.Mode, w, h, pad, ringFrac float64, b bounds) Geometry {
	g := Geometry{Width: w, Height: h, Pad: pad}
	inner := Rect{W: w, H: h}.Inset(pad)
	bw, bh := b.w(), b.h()

	switch mode {
	case layout.Flat:
		dw := math.Min(inner.W*0.5, inner.H*bw/bh)
		g.Dial = Rect{X: inner.X, Y: inner.Y, W: dw, H: inner.H}
		g.Text = Rect{X: inner.X + dw + pad, Y: inner.Y, W: math.Max(0, inner.W-dw-pad), H: inner.H}
	case layout.High:
		dh := math.Min(inner.H*0.65, inner.W*bh/bw)
		g.Dial = Rect{X: inner.X, Y: inner.Y, W: inner.W, H: dh}
		g.Text = Rect{X: inner.X, Y: inner.Y + dh + pad, W: inner.W, H: math.Max(0, inner.H-dh-pad)}
	default:
		if b.maxY < 0.5 {
			// Shallow arcs have no room under the pivot; the text takes a
			// strip under the dial.
			th := inner.H * 0.3
			g.Dial = Rect{X: inner.X, Y: inner.Y, W: inner.W, H: inner.H - th}
			g.Text = Rect{X: inner.X, Y: inner.Y + inner.H - th, W: inner.W, H: th}
		} else {
			g.Dial = inner
		}
	}

	r := math.Max(1, math.Min(g.Dial.W/bw, g.Dial.H/bh))
	g.Radius = r
	g.Ring = r * ringFrac
	g.Center = drawing.Center{
		X: g.Dial.X + (g.Dial.W-r*bw)/2 - r*b.minX,
		Y: g.Dial.Y + (g.Dial.H-r*bh)/2 - r*b.minY,
	}
	if mode == layout.Normal && b.maxY >= 0.5 {
		// Text sits inside the dial, below the pivot.
		g.Text = Rect{X: g.Center.X - 0.45*r, Y: g.Center.Y + 0.12*r, W: 0.9 * r, H: 0.4 * r}
	}
	return g
}
