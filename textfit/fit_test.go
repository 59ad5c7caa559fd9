// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package textfit

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/gogpu/gauge/layout"
	"github.com/gogpu/gauge/surface"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// monoMeasurer is a deterministic measurer: every rune is 0.6 px wide per
// px of size (0.65 for bold), lines are 1.2 px high per px.
type monoMeasurer struct {
	calls int
}

func (m *monoMeasurer) Measure(s string, f surface.Font) (float64, float64) {
	m.calls++
	adv := 0.6
	if f.Weight >= surface.WeightBold {
		adv = 0.65
	}
	return float64(utf8.RuneCountInString(s)) * adv * f.Px, 1.2 * f.Px
}

var (
	sans    = surface.Font{Family: surface.FamilySans, Weight: surface.WeightRegular}
	bold    = surface.Font{Family: surface.FamilySans, Weight: surface.WeightBold}
	testSet = Fonts{Caption: sans, Value: bold, Unit: sans}
)

func TestFitSingleLine(t *testing.T) {
	m := &monoMeasurer{}
	l := FitSingleLine(m, "123", Box{W: 100, H: 40}, sans)
	assert.True(t, l.Fits)
	assert.Equal(t, 33.0, l.Px)
	assert.LessOrEqual(t, l.Width, 100.0)
	assert.LessOrEqual(t, m.calls, MaxIterations+2)

	wide := FitSingleLine(m, "1234567890", Box{W: 60, H: 40}, sans)
	assert.Equal(t, 10.0, wide.Px)
}

func TestFitSingleLineNeverExceedsBox(t *testing.T) {
	m := &monoMeasurer{}
	boxes := []Box{{40, 20}, {200, 30}, {13, 300}, {500, 500}, {7.5, 9.25}}
	texts := []string{"0", "12.3", "---", "NO DATA", "1023.45 hPa"}
	for _, b := range boxes {
		for _, s := range texts {
			l := FitSingleLine(m, s, b, sans)
			if l.Fits {
				assert.LessOrEqual(t, l.Width, b.W+Tolerance, "%q in %+v", s, b)
				assert.LessOrEqual(t, l.Height, b.H+Tolerance, "%q in %+v", s, b)
			}
		}
	}
}

func TestFitSingleLineMonotone(t *testing.T) {
	m := &monoMeasurer{}
	box := Box{W: 120, H: 50}
	prev := 1e9
	for n := 1; n <= 30; n++ {
		l := FitSingleLine(m, strings.Repeat("8", n), box, bold)
		assert.LessOrEqual(t, l.Px, prev, "length %d", n)
		prev = l.Px
	}
}

func TestFitSingleLineRealFonts(t *testing.T) {
	fonts := surface.NewFontBook()
	box := Box{W: 90, H: 40}
	prev := 1e9
	for _, s := range []string{"8", "88", "888.8", "8888.88", "888888.888"} {
		l := FitSingleLine(fonts, s, box, bold)
		require.True(t, l.Fits, s)
		w, _ := fonts.Measure(s, bold.WithPx(l.Px))
		assert.LessOrEqual(t, w, box.W+Tolerance, s)
		assert.LessOrEqual(t, l.Px, prev, s)
		prev = l.Px
	}
}

func TestFitDegenerateBox(t *testing.T) {
	m := &monoMeasurer{}
	l := FitSingleLine(m, "12.5", Box{W: 1, H: 1}, sans)
	assert.False(t, l.Fits)
	assert.Equal(t, float64(DefaultMinPx), l.Px)
	assert.Greater(t, l.Width, 0.0, "best-effort width is reported")

	zero := FitInlineTriplet(m, "SOG", "6.2", "kn", Box{}, testSet, 0.8, 0.25)
	assert.False(t, zero.Fits)
	assert.Equal(t, float64(DefaultMinPx), zero.ValuePx)
}

func TestFitCheckAndMax(t *testing.T) {
	m := &monoMeasurer{}
	l := FitSingleLine(m, "1", Box{W: 500, H: 500}, sans, WithCheck(func(c Candidate) bool {
		return c.Px <= 10
	}))
	assert.Equal(t, 10.0, l.Px)

	l = FitSingleLine(m, "1", Box{W: 500, H: 500}, sans, WithMaxPx(24))
	assert.Equal(t, 24.0, l.Px)

	l = FitSingleLine(m, "1", Box{W: 500, H: 500}, sans, WithMinPx(30), WithCheck(func(Candidate) bool { return false }))
	assert.False(t, l.Fits)
	assert.Equal(t, 30.0, l.Px)
}

func TestFitMultiRowSharesSize(t *testing.T) {
	m := &monoMeasurer{}
	r := FitMultiRow(m, []string{"N 54°12.345'", "E 010°"}, Box{W: 120, H: 30}, sans)
	require.True(t, r.Fits)
	require.Len(t, r.Widths, 2)
	assert.LessOrEqual(t, r.Widths[0], 120.0)
	assert.Greater(t, r.Widths[0], r.Widths[1])

	alone := FitSingleLine(m, "E 010°", Box{W: 120, H: 30}, sans)
	assert.Greater(t, alone.Px, r.Px)
}

func TestFitValueUnitRow(t *testing.T) {
	m := &monoMeasurer{}
	v := FitValueUnitRow(m, "12.5", "kn", Box{W: 130, H: 60}, sans, sans, 0.5, 0.25)
	require.True(t, v.Fits)
	assert.Equal(t, 40.0, v.ValuePx)
	assert.Equal(t, 20.0, v.UnitPx)
	assert.Equal(t, 10.0, v.Gap)
	assert.LessOrEqual(t, v.Width(), 130.0)

	noUnit := FitValueUnitRow(m, "12.5", "", Box{W: 130, H: 60}, sans, sans, 0.5, 0.25)
	assert.Zero(t, noUnit.Gap)
	assert.Greater(t, noUnit.ValuePx, v.ValuePx)
}

func TestFitInlineTriplet(t *testing.T) {
	m := &monoMeasurer{}
	box := Box{W: 300, H: 40}
	tr := FitInlineTriplet(m, "SOG", "6.2", "kn", box, testSet, 0.8, 0.25)
	require.True(t, tr.Fits)
	assert.LessOrEqual(t, tr.Width(), box.W+Tolerance)
	assert.LessOrEqual(t, tr.Height(), box.H+Tolerance)
	assert.InDelta(t, tr.ValuePx*0.8, tr.CaptionPx, 0.5)
	assert.Equal(t, tr.CaptionPx, tr.UnitPx)

	longer := FitInlineTriplet(m, "SOG", "6.2", "knots per hour", Box{W: 300, H: 40}, testSet, 0.8, 0.25)
	assert.LessOrEqual(t, longer.ValuePx, tr.ValuePx)
}

func TestSecScaleClamped(t *testing.T) {
	assert.Equal(t, MinSecScale, ClampSecScale(0.01))
	assert.Equal(t, MaxSecScale, ClampSecScale(9))
	assert.Equal(t, 1.0, ClampSecScale(0))
	assert.Equal(t, 0.8, ClampSecScale(0.8))
}

func TestFitStack(t *testing.T) {
	m := &monoMeasurer{}
	box := Box{W: 80, H: 120}
	s := FitStack(m, "DEPTH", "12.4", "m", box, testSet, 0.6, 0.25)
	require.True(t, s.Fits)
	assert.LessOrEqual(t, s.Height(), box.H+Tolerance)
	assert.LessOrEqual(t, s.CaptionW, box.W+Tolerance)
	assert.LessOrEqual(t, s.ValueW, box.W+Tolerance)
}

func TestFitHeaderPair(t *testing.T) {
	m := &monoMeasurer{}
	box := Box{W: 150, H: 90}
	hp := FitHeaderPair(m, "POSITION", "N 54°12.345'", "E 010°01.234'", box, sans, bold, 0.6, 0.2)
	require.True(t, hp.Fits)
	assert.LessOrEqual(t, hp.Height(), box.H+Tolerance)
	assert.LessOrEqual(t, hp.LineW[1], box.W+Tolerance)
	assert.Greater(t, hp.LinePx, hp.HeaderPx)
}

func TestCompositesMatchSingleLineWithoutSecondaryRows(t *testing.T) {
	m := &monoMeasurer{}
	box := Box{W: 200, H: 120}
	single := FitSingleLine(m, "8", box, bold)
	require.Equal(t, 100.0, single.Px)

	stack := FitStack(m, "", "8", "", box, testSet, 1, 0.25)
	assert.True(t, stack.Fits)
	assert.Equal(t, single.Px, stack.ValuePx)

	row := FitCaptionRow(m, "", "8", "", box, testSet, 1, 0.25)
	assert.True(t, row.Fits)
	assert.Equal(t, single.Px, row.Row.ValuePx)

	high := LayoutBlock(m, layout.High, Content{Value: "8"}, Origin{}, box, testSet, 1, 0.25)
	assert.Equal(t, single.Px, high.Px(RoleValue))

	// Two 1.2px-per-px lines without a gap fill 120 at 50px.
	hp := FitHeaderPair(m, "", "8", "8", box, sans, bold, 1, 0)
	assert.True(t, hp.Fits)
	assert.Equal(t, 50.0, hp.LinePx)
}

func TestLayoutBlockStaysInBox(t *testing.T) {
	m := &monoMeasurer{}
	at := Origin{X: 10, Y: 20}
	box := Box{W: 160, H: 90}
	content := Content{Caption: "SOG", Value: "6.2", Unit: "kn"}

	for _, mode := range layout.Modes {
		b := LayoutBlock(m, mode, content, at, box, testSet, 0.8, 0.25)
		require.True(t, b.Fits, mode.String())
		require.NotEmpty(t, b.Items)
		for _, it := range b.Items {
			left := it.X
			if it.Align == surface.AlignCenter {
				left -= it.Width / 2
			}
			assert.GreaterOrEqual(t, left, at.X-Tolerance, "%s %q", mode, it.Text)
			assert.LessOrEqual(t, left+it.Width, at.X+box.W+Tolerance, "%s %q", mode, it.Text)
			assert.GreaterOrEqual(t, it.Y, at.Y-Tolerance)
			assert.LessOrEqual(t, it.Y, at.Y+box.H+Tolerance)
		}
		assert.Greater(t, b.Px(RoleValue), 0.0)
	}
}

func TestLayoutBlockModes(t *testing.T) {
	m := &monoMeasurer{}
	content := Content{Caption: "SOG", Value: "6.2", Unit: "kn"}
	box := Box{W: 160, H: 90}

	flat := LayoutBlock(m, layout.Flat, content, Origin{}, box, testSet, 0.8, 0.25)
	require.Len(t, flat.Items, 3)
	assert.Equal(t, flat.Items[0].Y, flat.Items[2].Y, "inline row shares its bottom")

	high := LayoutBlock(m, layout.High, content, Origin{}, box, testSet, 0.8, 0.25)
	require.Len(t, high.Items, 3)
	assert.Less(t, high.Items[0].Y, high.Items[1].Y)
	assert.Less(t, high.Items[1].Y, high.Items[2].Y)

	pair := LayoutBlock(m, layout.Normal, Content{Caption: "POS", Lines: []string{"N 54°", "E 10°"}}, Origin{}, box, testSet, 0.8, 0.25)
	require.Len(t, pair.Items, 3)
	assert.Equal(t, pair.Items[1].Font.Px, pair.Items[2].Font.Px)
}
