// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package drawing

import (
	"image/color"
	"math"

	"github.com/gogpu/gauge/axis"
	"github.com/gogpu/gauge/surface"
)

// Center is the pivot of a radial gauge in logical coordinates.
type Center struct {
	X, Y float64
}

// Band fills the annular sector between radii r-width and r from dial
// angle a0 to a1. A zero sweep or non-positive width draws nothing.
func Band(s *surface.Surface, c Center, f axis.Frame, r, width, a0, a1 float64, col color.Color) error {
	if width <= 0 || r <= 0 || a0 == a1 {
		return nil
	}
	inner := math.Max(0, r-width)
	s.SetColor(col)
	s.Arc(c.X, c.Y, r, f.Radians(a0), f.Radians(a1))
	s.Arc(c.X, c.Y, inner, f.Radians(a1), f.Radians(a0))
	s.ClosePath()
	return s.Fill()
}

// Ring strokes a circular arc of the given width centered on radius r.
func Ring(s *surface.Surface, c Center, f axis.Frame, r, width, a0, a1 float64, col color.Color) error {
	if width <= 0 || r <= 0 {
		return nil
	}
	s.SetColor(col)
	s.SetLineWidth(width)
	s.SetLineCap(surface.CapButt)
	s.Arc(c.X, c.Y, r, f.Radians(a0), f.Radians(a1))
	if math.Abs(a1-a0) >= 360 {
		s.ClosePath()
	}
	return s.Stroke()
}

// TickStyle sizes radial or linear ticks.
type TickStyle struct {
	MajorLen, MinorLen     float64
	MajorWidth, MinorWidth float64
	Major, Minor           color.Color
}

// RadialTicks strokes ticks running inward from radius r. Ticks are dial
// angles in degrees.
func RadialTicks(s *surface.Surface, c Center, f axis.Frame, r float64, t axis.Ticks, st TickStyle) error {
	s.SetLineCap(surface.CapButt)
	if err := radialSet(s, c, f, r, t.Minors, st.MinorLen, st.MinorWidth, st.Minor); err != nil {
		return err
	}
	return radialSet(s, c, f, r, t.Majors, st.MajorLen, st.MajorWidth, st.Major)
}

func radialSet(s *surface.Surface, c Center, f axis.Frame, r float64, angles []float64, length, width float64, col color.Color) error {
	if len(angles) == 0 || length <= 0 || width <= 0 {
		return nil
	}
	s.SetColor(col)
	s.SetLineWidth(width)
	for _, a := range angles {
		x0, y0 := f.Point(c.X, c.Y, r, a)
		x1, y1 := f.Point(c.X, c.Y, math.Max(0, r-length), a)
		s.MoveTo(x0, y0)
		s.LineTo(x1, y1)
	}
	return s.Stroke()
}

// Label is a string placed at a dial angle or track position.
type Label struct {
	At   float64
	Text string
}

// RadialLabels draws upright labels centered on radius r.
func RadialLabels(s *surface.Surface, c Center, f axis.Frame, r float64, labels []Label, font surface.Font, col color.Color) {
	if len(labels) == 0 {
		return
	}
	s.SetColor(col)
	s.SetFont(font)
	for _, l := range labels {
		x, y := f.Point(c.X, c.Y, r, l.At)
		s.FillText(l.Text, x, y, surface.AlignCenter, surface.BaselineMiddle)
	}
}

// Needle fills a tapered pointer from the pivot to length along dial angle
// a, with a hub of the same width at the pivot.
func Needle(s *surface.Surface, c Center, f axis.Frame, length, width, a float64, col color.Color) error {
	if length <= 0 || width <= 0 {
		return nil
	}
	half := width / 2
	tx, ty := f.Point(c.X, c.Y, length, a)
	lx, ly := f.Point(c.X, c.Y, half, a-90)
	rx, ry := f.Point(c.X, c.Y, half, a+90)
	bx, by := f.Point(c.X, c.Y, half, a+180)

	s.SetColor(col)
	s.MoveTo(tx, ty)
	s.LineTo(lx, ly)
	s.LineTo(bx, by)
	s.LineTo(rx, ry)
	s.ClosePath()
	if err := s.Fill(); err != nil {
		return err
	}
	s.Circle(c.X, c.Y, width)
	return s.Fill()
}

// Marker fills a triangle on the rim at dial angle a with its tip pointing
// at the pivot. size is the triangle height.
func Marker(s *surface.Surface, c Center, f axis.Frame, r, size, a float64, col color.Color) error {
	if size <= 0 || r <= 0 {
		return nil
	}
	tip := math.Max(0, r-size)
	// Half-angle subtended by half the base at radius r.
	spread := axis.Deg(math.Atan2(size/2, r))
	tx, ty := f.Point(c.X, c.Y, tip, a)
	lx, ly := f.Point(c.X, c.Y, r, a-spread)
	rx, ry := f.Point(c.X, c.Y, r, a+spread)

	s.SetColor(col)
	s.MoveTo(tx, ty)
	s.LineTo(lx, ly)
	s.LineTo(rx, ry)
	s.ClosePath()
	return s.Fill()
}
