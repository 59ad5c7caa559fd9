// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package engine

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/gogpu/gauge/layer"
	"github.com/gogpu/gauge/layout"
	"github.com/gogpu/gauge/sector"
	"github.com/gogpu/gauge/surface"
	"github.com/gogpu/gauge/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fonts = surface.NewFontBook()

func newDeps(t *testing.T) (Deps, *theme.StaticSource) {
	t.Helper()
	src := theme.NewStaticSource(false, nil)
	layers, err := layer.NewRegistry(layer.Back, layer.Front)
	require.NoError(t, err)
	return Deps{Measurer: fonts, Theme: theme.NewResolver(src), Layers: layers}, src
}

func newSurface(t *testing.T, w, h float64) *surface.Surface {
	t.Helper()
	s := surface.New(w, h, 1, fonts)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func speedConfig() RadialConfig {
	cfg := DefaultRadialConfig()
	cfg.Min, cfg.Max = 0, 30
	cfg.MajorStep, cfg.MinorStep = 5, 1
	cfg.Shape = sector.HighEnd
	cfg.Limits = sector.Limits{WarningFrom: sector.At(20), AlarmFrom: sector.At(25)}
	return cfg
}

func TestNumber(t *testing.T) {
	tests := []struct {
		in   any
		want float64
		ok   bool
	}{
		{15.0, 15, true},
		{float32(1.5), 1.5, true},
		{int(-3), -3, true},
		{uint8(7), 7, true},
		{" 12.5 ", 12.5, true},
		{json.Number("4"), 4, true},
		{"abc", 0, false},
		{math.NaN(), 0, false},
		{math.Inf(-1), 0, false},
		{nil, 0, false},
		{(*float64)(nil), 0, false},
		{true, 0, false},
	}
	for _, tt := range tests {
		got, ok := Number(tt.in)
		assert.Equal(t, tt.ok, ok, "%#v", tt.in)
		if tt.ok {
			assert.Equal(t, tt.want, got, "%#v", tt.in)
		}
	}
}

func TestMissingCollaborator(t *testing.T) {
	_, err := NewRadial(DefaultRadialConfig(), Deps{})
	assert.ErrorIs(t, err, ErrMissingCollaborator)

	_, err = NewText(DefaultTextConfig(), Deps{Measurer: fonts})
	assert.ErrorIs(t, err, ErrMissingCollaborator)

	_, err = NewCircle(DefaultWindConfig(), Deps{Theme: theme.NewResolver(nil)})
	assert.ErrorIs(t, err, ErrMissingCollaborator)
}

func TestConfigValidation(t *testing.T) {
	d, _ := newDeps(t)
	bad := []func(*RadialConfig){
		func(c *RadialConfig) { c.Max = c.Min },
		func(c *RadialConfig) { c.Min = math.NaN() },
		func(c *RadialConfig) { c.EndAngle = c.StartAngle },
		func(c *RadialConfig) { c.StartAngle, c.EndAngle = -200, 200 },
		func(c *RadialConfig) { c.MajorStep = -1 },
		func(c *RadialConfig) { c.MinorStep = math.Inf(1) },
		func(c *RadialConfig) { c.Decimals = 11 },
		func(c *RadialConfig) { c.Thresholds = layout.Thresholds{Normal: 2, Flat: 1} },
		func(c *RadialConfig) { c.Limits.WarningFrom = sector.At(math.NaN()) },
		func(c *RadialConfig) { c.Limits.AlarmFrom = sector.At(math.Inf(1)) },
	}
	for i, mutate := range bad {
		cfg := DefaultRadialConfig()
		mutate(&cfg)
		_, err := NewRadial(cfg, d)
		assert.ErrorIs(t, err, ErrInvalidConfig, "case %d", i)
	}

	_, err := NewLinear(LinearConfig{Min: 1, Max: 1}, d)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	lin := DefaultLinearConfig()
	lin.Limits = sector.Limits{AlarmFrom: sector.At(math.Inf(-1))}
	_, err = NewLinear(lin, d)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = NewCircle(CircleConfig{Card: 9, Min: 0, Max: 1}, d)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestRadialSpeedScenario(t *testing.T) {
	d, _ := newDeps(t)
	r, err := NewRadial(speedConfig(), d)
	require.NoError(t, err)

	pl := r.Plan(200, 200, Props{Value: 15, Caption: "SOG", Unit: "kn"})

	require.Len(t, pl.ValueSectors, 2)
	assert.Equal(t, sector.Warning, pl.ValueSectors[0].Kind)
	assert.Equal(t, 20.0, pl.ValueSectors[0].From)
	assert.Equal(t, 25.0, pl.ValueSectors[0].To)
	assert.Equal(t, sector.Alarm, pl.ValueSectors[1].Kind)
	assert.Equal(t, 25.0, pl.ValueSectors[1].From)
	assert.Equal(t, 30.0, pl.ValueSectors[1].To)

	require.Len(t, pl.Sectors, 2)
	assert.InDelta(t, 30, pl.Sectors[0].From, 1e-9)
	assert.InDelta(t, 60, pl.Sectors[0].To, 1e-9)
	assert.InDelta(t, 90, pl.Sectors[1].To, 1e-9)

	assert.True(t, pl.HasPointer)
	assert.InDelta(t, 0, pl.PointerAngle, 1e-9)
	assert.Equal(t, "15.0", pl.Display.Text)

	assert.InDelta(t, -90, pl.Ticks.Majors[0], 1e-9)
	assert.InDelta(t, 90, pl.Ticks.Majors[len(pl.Ticks.Majors)-1], 1e-9)
	assert.Len(t, pl.Ticks.Majors, 7)
	assert.Len(t, pl.Ticks.Minors, 24)

	require.NotEmpty(t, pl.Labels)
	assert.Equal(t, "0", pl.Labels[0].Text)
	assert.Equal(t, "30", pl.Labels[len(pl.Labels)-1].Text)
}

func TestRadialFallback(t *testing.T) {
	d, _ := newDeps(t)
	r, err := NewRadial(speedConfig(), d)
	require.NoError(t, err)

	for _, v := range []any{math.NaN(), "abc", nil, math.Inf(1)} {
		pl := r.Plan(200, 200, Props{Value: v})
		assert.False(t, pl.HasPointer, "%v", v)
		assert.False(t, pl.Display.Valid)
		assert.True(t, math.IsNaN(pl.Display.Value))
		assert.Equal(t, "---", pl.Display.Text)
	}

	pl := r.Plan(200, 200, Props{Default: "n/a"})
	assert.Equal(t, "n/a", pl.Display.Text)
}

func TestRadialPointerClamped(t *testing.T) {
	d, _ := newDeps(t)
	r, err := NewRadial(speedConfig(), d)
	require.NoError(t, err)

	assert.InDelta(t, 90, r.Plan(200, 200, Props{Value: 99}).PointerAngle, 1e-9)
	assert.InDelta(t, -90, r.Plan(200, 200, Props{Value: -5}).PointerAngle, 1e-9)
	assert.Equal(t, "99.0", r.Plan(200, 200, Props{Value: 99}).Display.Text, "text shows the raw value")
}

func TestRadialGeometryFitsContainer(t *testing.T) {
	d, _ := newDeps(t)
	r, err := NewRadial(speedConfig(), d)
	require.NoError(t, err)

	for _, size := range [][2]float64{{200, 200}, {400, 100}, {100, 300}, {1, 1}} {
		pl := r.Plan(size[0], size[1], Props{Value: 10})
		g := pl.Geometry
		assert.GreaterOrEqual(t, g.Radius, 1.0)
		if size[0] > 1 {
			assert.LessOrEqual(t, g.Center.X+g.Radius, size[0]+1e-9, "%v", size)
			assert.GreaterOrEqual(t, g.Center.X-g.Radius, -1e-9, "%v", size)
			assert.GreaterOrEqual(t, g.Center.Y-g.Radius, -1e-9, "%v", size)
		}
	}
}

func TestCompassMarkerRelativeToHeading(t *testing.T) {
	d, _ := newDeps(t)
	c, err := NewCircle(DefaultCompassConfig(), d)
	require.NoError(t, err)

	pl := c.Plan(200, 200, Props{Value: 350, Unit: "°", Markers: []Marker{{Name: "wp", Bearing: 10}}})
	require.Len(t, pl.Markers, 1)
	assert.InDelta(t, 20, pl.Markers[0].Angle, 1e-9)
	assert.InDelta(t, -350, pl.CardFrame.Rotation, 1e-9)
	assert.False(t, pl.HasPointer)
	assert.Equal(t, "350", pl.Display.Text)

	require.NotEmpty(t, pl.Labels)
	assert.Equal(t, "N", pl.Labels[0].Text)
	assert.Equal(t, "E", pl.Labels[3].Text)
	assert.Len(t, pl.Labels, 12)
}

func TestCompassWithoutHeading(t *testing.T) {
	d, _ := newDeps(t)
	c, err := NewCircle(DefaultCompassConfig(), d)
	require.NoError(t, err)

	pl := c.Plan(200, 200, Props{Markers: []Marker{{Bearing: 370}, {Bearing: math.NaN()}}})
	require.Len(t, pl.Markers, 1)
	assert.InDelta(t, 10, pl.Markers[0].Angle, 1e-9)
	assert.Zero(t, pl.CardFrame.Rotation)
}

func TestWindCard(t *testing.T) {
	d, _ := newDeps(t)
	c, err := NewCircle(DefaultWindConfig(), d)
	require.NoError(t, err)

	pl := c.Plan(200, 200, Props{Value: -45})
	assert.True(t, pl.HasPointer)
	assert.InDelta(t, -45, pl.PointerAngle, 1e-9)
	require.Len(t, pl.Labels, 12)
	assert.Equal(t, "180", pl.Labels[0].Text)
	assert.Equal(t, "90", pl.Labels[3].Text)
	require.Len(t, pl.Sectors, 2)
	assert.InDelta(t, -60, pl.Sectors[0].From, 1e-9)
	assert.Len(t, pl.Ticks.Majors, 12, "closing major of the full turn is dropped")
}

func TestTextModes(t *testing.T) {
	d, _ := newDeps(t)
	e, err := NewText(DefaultTextConfig(), d)
	require.NoError(t, err)

	assert.Equal(t, layout.Normal, e.Plan(100, 100, Props{Value: 1}).Mode)
	assert.Equal(t, layout.High, e.Plan(50, 100, Props{Value: 1}).Mode)
	assert.Equal(t, layout.Flat, e.Plan(400, 100, Props{Value: 1}).Mode)
}

func TestTextModeOptions(t *testing.T) {
	d, _ := newDeps(t)
	cfg := DefaultTextConfig()
	cfg.FlatWithoutCaption = true
	cfg.NormalWithoutUnit = true
	e, err := NewText(cfg, d)
	require.NoError(t, err)

	assert.Equal(t, layout.Flat, e.Plan(100, 100, Props{Value: 1}).Mode)
	assert.Equal(t, layout.Normal, e.Plan(50, 100, Props{Value: 1, Caption: "DPT"}).Mode)
	assert.Equal(t, layout.High, e.Plan(50, 100, Props{Value: 1, Caption: "DPT", Unit: "m"}).Mode)
}

func TestTextPair(t *testing.T) {
	d, _ := newDeps(t)
	e, err := NewText(DefaultTextConfig(), d)
	require.NoError(t, err)

	pl := e.Plan(200, 120, Props{Caption: "POS", Lines: []string{"54°12.345'N", ""}})
	assert.Equal(t, []string{"54°12.345'N", "---"}, pl.Lines)
	require.Len(t, pl.Block.Items, 3)
	assert.Equal(t, pl.Block.Items[1].Font.Px, pl.Block.Items[2].Font.Px)
}

func TestTextBlockInsideContainer(t *testing.T) {
	d, _ := newDeps(t)
	e, err := NewText(DefaultTextConfig(), d)
	require.NoError(t, err)

	for _, size := range [][2]float64{{100, 100}, {50, 100}, {400, 100}} {
		pl := e.Plan(size[0], size[1], Props{Value: 12.34, Caption: "DEPTH", Unit: "m"})
		for _, it := range pl.Block.Items {
			assert.LessOrEqual(t, it.Width, size[0], "%v %q", size, it.Text)
		}
	}
}

func TestLinear(t *testing.T) {
	d, _ := newDeps(t)
	cfg := DefaultLinearConfig()
	cfg.Shape = sector.LowEnd
	cfg.Limits = sector.Limits{WarningFrom: sector.At(30), AlarmFrom: sector.At(10)}
	l, err := NewLinear(cfg, d)
	require.NoError(t, err)

	pl := l.Plan(300, 150, Props{Value: 25})
	tr := pl.Geometry.Track
	require.True(t, pl.HasPointer)
	assert.InDelta(t, tr.X0+0.25*(tr.X1-tr.X0), pl.PointerX, 1e-9)

	require.Len(t, pl.ValueSectors, 2)
	assert.Equal(t, sector.Alarm, pl.ValueSectors[0].Kind)
	assert.Equal(t, 10.0, pl.ValueSectors[0].To)
	assert.Equal(t, 30.0, pl.ValueSectors[1].To)
	assert.Less(t, tr.X0, tr.X1)
	assert.LessOrEqual(t, tr.X1, 300.0)
}

func TestRenderRebuildsOnlyOnKeyChange(t *testing.T) {
	d, src := newDeps(t)
	r, err := NewRadial(speedConfig(), d)
	require.NoError(t, err)
	s := newSurface(t, 200, 200)

	r.Render(s, Props{Value: 10})
	r.Render(s, Props{Value: 20})
	lc := d.Layers.For(s)
	assert.Equal(t, 1, lc.Rebuilds(), "value changes reuse the static layers")

	src.SetDark(true)
	r.Render(s, Props{Value: 20})
	assert.Equal(t, 2, lc.Rebuilds(), "theme flip rebuilds")

	require.NoError(t, s.Resize(300, 200, 1))
	r.Render(s, Props{Value: 20})
	assert.Equal(t, 3, lc.Rebuilds(), "resize rebuilds")

	r.Invalidate(s.ID())
	r.Render(s, Props{Value: 20})
	assert.Equal(t, 4, lc.Rebuilds())
}

func TestRenderFitCache(t *testing.T) {
	d, _ := newDeps(t)
	e, err := NewText(DefaultTextConfig(), d)
	require.NoError(t, err)
	s := newSurface(t, 120, 60)

	e.Render(s, Props{Value: 1, Unit: "V"})
	e.Render(s, Props{Value: 1, Unit: "V"})
	e.Render(s, Props{Value: 2, Unit: "V"})
	hits, misses := e.fitCache(s.ID()).Stats()
	assert.Equal(t, 1, hits)
	assert.Equal(t, 2, misses)
}

func TestRenderFitCacheFollowsGapToken(t *testing.T) {
	d, src := newDeps(t)
	e, err := NewText(DefaultTextConfig(), d)
	require.NoError(t, err)
	s := newSurface(t, 120, 60)

	e.Render(s, Props{Value: 1, Unit: "V"})
	src.Set("gauge-gap", "0.6")
	src.SetDark(true)
	e.Render(s, Props{Value: 1, Unit: "V"})

	hits, misses := e.fitCache(s.ID()).Stats()
	assert.Zero(t, hits, "a new gap is a new layout")
	assert.Equal(t, 2, misses)
}

func TestLinearPaintsOnlyBackLayer(t *testing.T) {
	d, _ := newDeps(t)
	l, err := NewLinear(DefaultLinearConfig(), d)
	require.NoError(t, err)
	s := newSurface(t, 300, 120)

	l.Render(s, Props{Value: 40})
	lc := d.Layers.For(s)
	assert.True(t, lc.Valid())
	assert.True(t, lc.Built(layer.Back))
	assert.False(t, lc.Built(layer.Front))
}

func TestNonFiniteLimitRejectedBeforeRender(t *testing.T) {
	d, _ := newDeps(t)
	cfg := speedConfig()
	cfg.Limits.WarningFrom = sector.At(math.NaN())
	_, err := NewRadial(cfg, d)
	require.ErrorIs(t, err, ErrInvalidConfig)

	r, err := NewRadial(speedConfig(), d)
	require.NoError(t, err)
	s := newSurface(t, 200, 200)
	r.Render(s, Props{Value: 10})
	lc := d.Layers.For(s)
	assert.True(t, lc.Valid())
	assert.Equal(t, 1, lc.Rebuilds())
}

func TestRenderPaintsBackground(t *testing.T) {
	d, _ := newDeps(t)
	e, err := NewText(DefaultTextConfig(), d)
	require.NoError(t, err)
	s := newSurface(t, 60, 40)

	e.Render(s, Props{Value: 3})
	r, g, b, a := s.Image().At(0, 0).RGBA()
	assert.Equal(t, [4]uint32{0xffff, 0xffff, 0xffff, 0xffff}, [4]uint32{r, g, b, a})
}

func TestFinalizeForgetsSurface(t *testing.T) {
	d, _ := newDeps(t)
	c, err := NewCircle(DefaultWindConfig(), d)
	require.NoError(t, err)
	s := newSurface(t, 150, 150)

	c.Render(s, Props{Value: 30})
	assert.Equal(t, 1, d.Layers.Len())
	assert.Equal(t, 1, d.Theme.Len())

	c.Finalize(s.ID())
	assert.Zero(t, d.Layers.Len())
	assert.Zero(t, d.Theme.Len())
}

func TestRenderNeverPanics(t *testing.T) {
	d, _ := newDeps(t)
	radial, err := NewRadial(speedConfig(), d)
	require.NoError(t, err)
	wind, err := NewCircle(DefaultWindConfig(), d)
	require.NoError(t, err)
	compass, err := NewCircle(DefaultCompassConfig(), d)
	require.NoError(t, err)
	linear, err := NewLinear(DefaultLinearConfig(), d)
	require.NoError(t, err)
	text, err := NewText(DefaultTextConfig(), d)
	require.NoError(t, err)

	type renderer interface{ Render(*surface.Surface, Props) }
	engines := []renderer{radial, wind, compass, linear, text}
	props := []Props{
		{Value: math.NaN()},
		{Value: 1e300, Caption: "X", Unit: "Y"},
		{Value: 5, Disconnect: true},
		{Value: "7", Lines: []string{"a", "b"}, Markers: []Marker{{Bearing: 45}}},
	}
	for _, size := range [][2]float64{{0, 0}, {1, 300}, {300, 1}, {120, 80}} {
		s := newSurface(t, size[0], size[1])
		for _, e := range engines {
			for _, p := range props {
				assert.NotPanics(t, func() { e.Render(s, p) })
			}
		}
	}
	assert.NotPanics(t, func() { radial.Render(nil, Props{}) })
}
