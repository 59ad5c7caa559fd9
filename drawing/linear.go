// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package drawing

import (
	"image/color"
	"math"

	"github.com/gogpu/gauge/axis"
	"github.com/gogpu/gauge/surface"
)

// Track is a horizontal scale from X0 to X1 whose baseline is Y.
// Ticks and sectors grow upward from Y.
type Track struct {
	X0, X1 float64
	Y      float64
}

// Length returns the track length.
func (t Track) Length() float64 { return math.Abs(t.X1 - t.X0) }

// Line strokes the track baseline.
func (t Track) Line(s *surface.Surface, width float64, col color.Color) error {
	if width <= 0 {
		return nil
	}
	s.SetColor(col)
	s.SetLineWidth(width)
	s.SetLineCap(surface.CapButt)
	s.MoveTo(t.X0, t.Y)
	s.LineTo(t.X1, t.Y)
	return s.Stroke()
}

// Ticks strokes ticks at the given x positions.
func (t Track) Ticks(s *surface.Surface, ticks axis.Ticks, st TickStyle) error {
	s.SetLineCap(surface.CapButt)
	if err := t.tickSet(s, ticks.Minors, st.MinorLen, st.MinorWidth, st.Minor); err != nil {
		return err
	}
	return t.tickSet(s, ticks.Majors, st.MajorLen, st.MajorWidth, st.Major)
}

func (t Track) tickSet(s *surface.Surface, xs []float64, length, width float64, col color.Color) error {
	if len(xs) == 0 || length <= 0 || width <= 0 {
		return nil
	}
	s.SetColor(col)
	s.SetLineWidth(width)
	for _, x := range xs {
		s.MoveTo(x, t.Y)
		s.LineTo(x, t.Y-length)
	}
	return s.Stroke()
}

// Labels draws labels centered below the baseline, offset by gap.
func (t Track) Labels(s *surface.Surface, labels []Label, gap float64, font surface.Font, col color.Color) {
	if len(labels) == 0 {
		return
	}
	s.SetColor(col)
	s.SetFont(font)
	for _, l := range labels {
		s.FillText(l.Text, l.At, t.Y+gap, surface.AlignCenter, surface.BaselineTop)
	}
}

// Sector fills the band [from, to] of the track with the given thickness.
func (t Track) Sector(s *surface.Surface, from, to, thickness float64, col color.Color) error {
	if from > to {
		from, to = to, from
	}
	if to-from <= 0 || thickness <= 0 {
		return nil
	}
	s.SetColor(col)
	s.Rect(from, t.Y-thickness, to-from, thickness)
	return s.Fill()
}

// Pointer fills a downward triangle of the given height whose tip touches
// the baseline at x.
func (t Track) Pointer(s *surface.Surface, x, size float64, col color.Color) error {
	if size <= 0 {
		return nil
	}
	half := size * 0.6
	s.SetColor(col)
	s.MoveTo(x, t.Y)
	s.LineTo(x-half, t.Y-size)
	s.LineTo(x+half, t.Y-size)
	s.ClosePath()
	return s.Fill()
}
