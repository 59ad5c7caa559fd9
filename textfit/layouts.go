// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package textfit

import (
	"math"

	"github.com/gogpu/gauge/layout"
	"github.com/gogpu/gauge/surface"
)

// Stack is the fit of caption, value and unit on three rows.
type Stack struct {
	CaptionPx, ValuePx, UnitPx float64
	CaptionW, ValueW, UnitW    float64
	CaptionH, ValueH, UnitH    float64
	Gap                        float64
	Fits                       bool
}

// Height returns the stacked height including row gaps.
func (s Stack) Height() float64 {
	return s.CaptionH + s.ValueH + s.UnitH + s.Gap*float64(gaps(s.CaptionH, s.ValueH, s.UnitH))
}

// FitStack sizes caption, value and unit as three rows. Empty caption or
// unit rows take no space.
func FitStack(m Measurer, caption, value, unit string, box Box, fonts Fonts, secScale, gapFrac float64, opts ...Option) Stack {
	o := newOptions(opts)
	secScale = ClampSecScale(secScale)
	measure := func(px int) Stack {
		p := float64(px)
		sec := unitPx(p, secScale)
		s := Stack{CaptionPx: sec, ValuePx: p, UnitPx: sec, Gap: p * gapFrac * 0.5}
		if caption != "" {
			s.CaptionW, s.CaptionH = m.Measure(caption, fonts.Caption.WithPx(sec))
		}
		s.ValueW, s.ValueH = m.Measure(value, fonts.Value.WithPx(p))
		if unit != "" {
			s.UnitW, s.UnitH = m.Measure(unit, fonts.Unit.WithPx(sec))
		}
		return s
	}
	px, ok := search(int(o.minPx), o.upper(box.H, 1+present(caption, secScale)+present(unit, secScale)), func(px int) bool {
		s := measure(px)
		return within(s.CaptionW, box.W) && within(s.ValueW, box.W) && within(s.UnitW, box.W) &&
			within(s.Height(), box.H) &&
			o.accept(Candidate{Px: s.ValuePx, Widths: []float64{s.CaptionW, s.ValueW, s.UnitW}, Height: s.Height()})
	})
	s := measure(px)
	s.Fits = ok
	return s
}

// CaptionRow is the fit of a caption line above a value+unit row.
type CaptionRow struct {
	CaptionPx float64
	CaptionW  float64
	CaptionH  float64
	Row       ValueUnit
	Gap       float64
	Fits      bool
}

// Height returns the total height.
func (c CaptionRow) Height() float64 {
	if c.CaptionH == 0 {
		return c.Row.Height()
	}
	return c.CaptionH + c.Gap + c.Row.Height()
}

// FitCaptionRow sizes a caption line above a value+unit row jointly.
func FitCaptionRow(m Measurer, caption, value, unit string, box Box, fonts Fonts, secScale, gapFrac float64, opts ...Option) CaptionRow {
	o := newOptions(opts)
	secScale = ClampSecScale(secScale)
	measure := func(px int) CaptionRow {
		p := float64(px)
		sec := unitPx(p, secScale)
		c := CaptionRow{CaptionPx: sec, Gap: p * gapFrac * 0.5}
		if caption != "" {
			c.CaptionW, c.CaptionH = m.Measure(caption, fonts.Caption.WithPx(sec))
		}
		c.Row = ValueUnit{ValuePx: p, UnitPx: sec}
		c.Row.ValueW, c.Row.ValueH = m.Measure(value, fonts.Value.WithPx(p))
		if unit != "" {
			c.Row.UnitW, c.Row.UnitH = m.Measure(unit, fonts.Unit.WithPx(sec))
			c.Row.Gap = p * gapFrac
		}
		return c
	}
	row := 1.0
	if unit != "" {
		row = math.Max(1, secScale)
	}
	px, ok := search(int(o.minPx), o.upper(box.H, row+present(caption, secScale)), func(px int) bool {
		c := measure(px)
		return within(c.CaptionW, box.W) && within(c.Row.Width(), box.W) && within(c.Height(), box.H) &&
			o.accept(Candidate{Px: c.Row.ValuePx, Widths: []float64{c.CaptionW, c.Row.ValueW, c.Row.UnitW}, Height: c.Height()})
	})
	c := measure(px)
	c.Fits = ok
	c.Row.Fits = ok
	return c
}

// HeaderPair is the fit of a header above two equally sized lines.
type HeaderPair struct {
	HeaderPx float64
	HeaderW  float64
	HeaderH  float64
	LinePx   float64
	LineW    [2]float64
	LineH    float64
	Gap      float64
	Fits     bool
}

// Height returns the total height.
func (p HeaderPair) Height() float64 {
	h := 2*p.LineH + p.Gap
	if p.HeaderH > 0 {
		h += p.HeaderH + p.Gap
	}
	return h
}

// FitHeaderPair sizes a header line (secScale times the line size) above
// two value lines that share one size, as used for coordinate pairs.
func FitHeaderPair(m Measurer, header, line1, line2 string, box Box, headerFont, lineFont surface.Font, secScale, gapFrac float64, opts ...Option) HeaderPair {
	o := newOptions(opts)
	secScale = ClampSecScale(secScale)
	measure := func(px int) HeaderPair {
		p := float64(px)
		sec := unitPx(p, secScale)
		hp := HeaderPair{HeaderPx: sec, LinePx: p, Gap: p * gapFrac * 0.5}
		if header != "" {
			hp.HeaderW, hp.HeaderH = m.Measure(header, headerFont.WithPx(sec))
		}
		w1, h1 := m.Measure(line1, lineFont.WithPx(p))
		w2, h2 := m.Measure(line2, lineFont.WithPx(p))
		hp.LineW = [2]float64{w1, w2}
		hp.LineH = math.Max(h1, h2)
		return hp
	}
	px, ok := search(int(o.minPx), o.upper(box.H, 2+present(header, secScale)), func(px int) bool {
		hp := measure(px)
		return within(hp.HeaderW, box.W) && within(hp.LineW[0], box.W) && within(hp.LineW[1], box.W) &&
			within(hp.Height(), box.H) &&
			o.accept(Candidate{Px: hp.LinePx, Widths: []float64{hp.HeaderW, hp.LineW[0], hp.LineW[1]}, Height: hp.Height()})
	})
	hp := measure(px)
	hp.Fits = ok
	return hp
}

// present returns scale when s takes a row and 0 when it is empty.
func present(s string, scale float64) float64 {
	if s == "" {
		return 0
	}
	return scale
}

// Role names a text element of a block.
type Role uint8

const (
	// RoleCaption is the label above or before the value.
	RoleCaption Role = iota

	// RoleValue is the formatted value.
	RoleValue

	// RoleUnit is the unit after or below the value.
	RoleUnit

	// RoleLine is one line of a two-line pair.
	RoleLine
)

// Item is one positioned string. (X, Y) is the anchor point for Align and
// Baseline.
type Item struct {
	Role     Role
	Text     string
	Font     surface.Font
	X, Y     float64
	Width    float64
	Align    surface.Align
	Baseline surface.Baseline
}

// Block is a laid out text composition.
type Block struct {
	Mode  layout.Mode
	Items []Item
	Fits  bool
}

// Px returns the size of the first item with role r, or 0.
func (b Block) Px(r Role) float64 {
	for _, it := range b.Items {
		if it.Role == r {
			return it.Font.Px
		}
	}
	return 0
}

// Content is the text of a block.
type Content struct {
	Caption string
	Value   string
	Unit    string

	// Lines, when non-empty, replaces Value and Unit with two lines drawn
	// under Caption at one shared size.
	Lines []string
}

// Origin is the top-left of the area a block is placed in.
type Origin struct {
	X, Y float64
}

// LayoutBlock fits c into box for mode and positions the items inside the
// box at origin:
//   - Flat: caption, value and unit inline on one row
//   - Normal: caption above a value+unit row
//   - High: caption, value and unit on three rows
//
// Content with Lines uses the header+pair layout in every mode.
func LayoutBlock(m Measurer, mode layout.Mode, c Content, at Origin, box Box, fonts Fonts, secScale, gapFrac float64, opts ...Option) Block {
	b := Block{Mode: mode}
	cx := at.X + box.W/2
	cy := at.Y + box.H/2

	if len(c.Lines) > 0 {
		l1 := c.Lines[0]
		l2 := ""
		if len(c.Lines) > 1 {
			l2 = c.Lines[1]
		}
		hp := FitHeaderPair(m, c.Caption, l1, l2, box, fonts.Caption, fonts.Value, secScale, gapFrac, opts...)
		y := cy - hp.Height()/2
		if hp.HeaderH > 0 {
			b.Items = append(b.Items, item(RoleCaption, c.Caption, fonts.Caption, hp.HeaderPx, cx, y, hp.HeaderW, surface.AlignCenter))
			y += hp.HeaderH + hp.Gap
		}
		b.Items = append(b.Items, item(RoleLine, l1, fonts.Value, hp.LinePx, cx, y, hp.LineW[0], surface.AlignCenter))
		y += hp.LineH + hp.Gap
		b.Items = append(b.Items, item(RoleLine, l2, fonts.Value, hp.LinePx, cx, y, hp.LineW[1], surface.AlignCenter))
		b.Fits = hp.Fits
		return b
	}

	switch mode {
	case layout.Flat:
		t := FitInlineTriplet(m, c.Caption, c.Value, c.Unit, box, fonts, secScale, gapFrac, opts...)
		x := cx - t.Width()/2
		bottom := cy + t.Height()/2
		if t.CaptionW > 0 {
			b.Items = append(b.Items, rowItem(RoleCaption, c.Caption, fonts.Caption, t.CaptionPx, x, bottom, t.CaptionW))
			x += t.CaptionW + t.Gap
		}
		b.Items = append(b.Items, rowItem(RoleValue, c.Value, fonts.Value, t.ValuePx, x, bottom, t.ValueW))
		if t.UnitW > 0 {
			x += t.ValueW + t.Gap
			b.Items = append(b.Items, rowItem(RoleUnit, c.Unit, fonts.Unit, t.UnitPx, x, bottom, t.UnitW))
		}
		b.Fits = t.Fits

	case layout.High:
		s := FitStack(m, c.Caption, c.Value, c.Unit, box, fonts, secScale, gapFrac, opts...)
		y := cy - s.Height()/2
		if s.CaptionH > 0 {
			b.Items = append(b.Items, item(RoleCaption, c.Caption, fonts.Caption, s.CaptionPx, cx, y, s.CaptionW, surface.AlignCenter))
			y += s.CaptionH + s.Gap
		}
		b.Items = append(b.Items, item(RoleValue, c.Value, fonts.Value, s.ValuePx, cx, y, s.ValueW, surface.AlignCenter))
		y += s.ValueH
		if s.UnitH > 0 {
			y += s.Gap
			b.Items = append(b.Items, item(RoleUnit, c.Unit, fonts.Unit, s.UnitPx, cx, y, s.UnitW, surface.AlignCenter))
		}
		b.Fits = s.Fits

	default:
		cr := FitCaptionRow(m, c.Caption, c.Value, c.Unit, box, fonts, secScale, gapFrac, opts...)
		y := cy - cr.Height()/2
		if cr.CaptionH > 0 {
			b.Items = append(b.Items, item(RoleCaption, c.Caption, fonts.Caption, cr.CaptionPx, cx, y, cr.CaptionW, surface.AlignCenter))
			y += cr.CaptionH + cr.Gap
		}
		row := cr.Row
		x := cx - row.Width()/2
		bottom := y + row.Height()
		b.Items = append(b.Items, rowItem(RoleValue, c.Value, fonts.Value, row.ValuePx, x, bottom, row.ValueW))
		if row.UnitW > 0 {
			x += row.ValueW + row.Gap
			b.Items = append(b.Items, rowItem(RoleUnit, c.Unit, fonts.Unit, row.UnitPx, x, bottom, row.UnitW))
		}
		b.Fits = cr.Fits
	}
	return b
}

// item anchors a row at its top edge.
func item(r Role, text string, f surface.Font, px, x, top, w float64, align surface.Align) Item {
	return Item{Role: r, Text: text, Font: f.WithPx(px), X: x, Y: top, Width: w, Align: align, Baseline: surface.BaselineTop}
}

// rowItem anchors a left-aligned element at the shared bottom of a row.
func rowItem(r Role, text string, f surface.Font, px, x, bottom, w float64) Item {
	return Item{Role: r, Text: text, Font: f.WithPx(px), X: x, Y: bottom, Width: w, Align: surface.AlignLeft, Baseline: surface.BaselineBottom}
}
