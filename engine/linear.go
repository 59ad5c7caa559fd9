// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package engine

import (
	"fmt"
	"math"

	"github.com/gogpu/gauge/axis"
	"github.com/gogpu/gauge/drawing"
	"github.com/gogpu/gauge/layer"
	"github.com/gogpu/gauge/layout"
	"github.com/gogpu/gauge/sector"
	"github.com/gogpu/gauge/surface"
	"github.com/gogpu/gauge/textfit"
	"github.com/gogpu/gauge/theme"
)

// linearUnit converts theme length ratios, which are calibrated for a
// radius, into fractions of the track area height.
const linearUnit = 2.5

// LinearConfig configures a Linear engine.
type LinearConfig struct {
	Min float64 `toml:"min" json:"min"`
	Max float64 `toml:"max" json:"max"`

	MajorStep     float64 `toml:"major_step" json:"major"`
	MinorStep     float64 `toml:"minor_step" json:"minor"`
	LabelStep     float64 `toml:"label_step" json:"label_step"`
	LabelDecimals int     `toml:"label_decimals" json:"label_decimals"`

	Decimals int `toml:"decimals" json:"-"`

	Shape  sector.Shape  `toml:"-" json:"shape"`
	Limits sector.Limits `toml:"limits" json:"limits"`

	Thresholds layout.Thresholds `toml:"thresholds" json:"-"`
}

// DefaultLinearConfig returns a 0..100 track.
func DefaultLinearConfig() LinearConfig {
	return LinearConfig{
		Min:        0,
		Max:        100,
		MajorStep:  20,
		MinorStep:  5,
		Decimals:   1,
		Thresholds: layout.LinearThresholds,
	}
}

// Validate reports configuration errors.
func (c LinearConfig) Validate() error {
	if err := validateRange(c.Min, c.Max); err != nil {
		return err
	}
	if err := validateSteps(c.MajorStep, c.MinorStep); err != nil {
		return err
	}
	if err := validateLimits(c.Limits); err != nil {
		return err
	}
	if err := validateDecimals(c.Decimals, c.LabelDecimals); err != nil {
		return err
	}
	if err := c.Thresholds.Or(layout.LinearThresholds).Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// Linear draws a horizontal scale with a pointer.
type Linear struct {
	*base
	cfg LinearConfig
}

// NewLinear validates cfg and returns a linear engine.
func NewLinear(cfg LinearConfig, d Deps) (*Linear, error) {
	cfg.Thresholds = cfg.Thresholds.Or(layout.LinearThresholds)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	b, err := newBase("linear", d, cfg.Decimals)
	if err != nil {
		return nil, err
	}
	return &Linear{base: b, cfg: cfg}, nil
}

// Config returns the engine configuration.
func (l *Linear) Config() LinearConfig { return l.cfg }

// LinearPlan is everything one linear frame draws.
type LinearPlan struct {
	Mode     layout.Mode
	Geometry Geometry

	// Scale maps values to track x positions.
	Scale axis.Scale

	Ticks        axis.Ticks
	Labels       []drawing.Label
	Sectors      []sector.Sector
	ValueSectors []sector.Sector

	HasPointer bool
	PointerX   float64

	Display Display
	Block   textfit.Block
}

// Plan computes a frame for a w x h container with the default light
// theme.
func (l *Linear) Plan(w, h float64, p Props) LinearPlan {
	return l.plan(w, h, theme.Light(), p, nil)
}

func (l *Linear) plan(w, h float64, tok theme.Tokens, p Props, cache *textfit.Cache[textfit.Block]) LinearPlan {
	c := l.cfg
	pl := LinearPlan{Mode: layout.Select(w, h, c.Thresholds)}
	pl.Geometry = linearGeometry(pl.Mode, w, h, padOf(w, h, tok.Pad))
	t := pl.Geometry.Track
	pl.Scale = axis.NewScale(c.Min, c.Max, t.X0, t.X1).Clamped()
	pl.Ticks = axis.BuildValueTickAngles(pl.Scale, c.MajorStep, c.MinorStep, 0)
	pl.Labels = labelsFor(c.Min, c.Max, labelStep(c.LabelStep, c.MajorStep), c.LabelDecimals, false, pl.Scale.Map)
	pl.ValueSectors = sector.Build(c.Shape, c.Limits, c.Min, c.Max, sector.Palette{Warning: tok.Warning, Alarm: tok.Alarm})
	pl.Sectors = sector.Project(pl.ValueSectors, pl.Scale)

	pl.Display = l.display(p, tok)
	if pl.Display.Valid {
		pl.HasPointer = true
		pl.PointerX = pl.Scale.Map(pl.Display.Value)
	}
	pl.Block = l.block(cache, textMode(pl.Geometry.Text), pl.Display, nil, pl.Geometry.Text, tok)
	return pl
}

func linearGeometry(mode layout.Mode, w, h, pad float64) Geometry {
	g := Geometry{Width: w, Height: h, Pad: pad}
	inner := Rect{W: w, H: h}.Inset(pad)

	switch mode {
	case layout.Flat:
		tw := inner.W * 0.4
		g.Text = Rect{X: inner.X, Y: inner.Y, W: tw, H: inner.H}
		g.Dial = Rect{X: inner.X + tw + pad, Y: inner.Y, W: math.Max(0, inner.W-tw-pad), H: inner.H}
	case layout.High:
		th := inner.H * 0.6
		g.Text = Rect{X: inner.X, Y: inner.Y, W: inner.W, H: th}
		g.Dial = Rect{X: inner.X, Y: inner.Y + th, W: inner.W, H: inner.H - th}
	default:
		th := inner.H * 0.45
		g.Text = Rect{X: inner.X, Y: inner.Y, W: inner.W, H: th}
		g.Dial = Rect{X: inner.X, Y: inner.Y + th, W: inner.W, H: inner.H - th}
	}

	d := g.Dial
	g.LabelPx = math.Max(6, math.Round(d.H*0.2))
	margin := math.Min(g.LabelPx*1.5, d.W/4)
	g.Track = drawing.Track{
		X0: d.X + margin,
		X1: d.X + d.W - margin,
		Y:  d.Y + math.Max(1, d.H-g.LabelPx*1.4),
	}
	return g
}

type linearKey struct {
	Config LinearConfig    `json:"config"`
	Mode   string          `json:"mode"`
	Style  styleKey        `json:"style"`
	Track  drawing.Track   `json:"track"`
	Labels []drawing.Label `json:"labels"`
}

// Render draws one frame onto s.
func (l *Linear) Render(s *surface.Surface, p Props) {
	if s == nil {
		return
	}
	tok := l.theme.Resolve(s.ID())
	w, h := s.Size()
	pl := l.plan(w, h, tok, p, l.fitCache(s.ID()))
	g := pl.Geometry
	u := g.Dial.H * linearUnit

	key := linearKey{
		Config: l.cfg,
		Mode:   pl.Mode.String(),
		Style:  styleOf(s, tok),
		Track:  g.Track,
		Labels: pl.Labels,
	}
	lc := l.layers.For(s)
	if _, err := lc.EnsureOnly(s, key, []string{layer.Back}, func(dst *surface.Surface, _ string) {
		l.paintTrack(dst, pl, tok)
	}); err != nil {
		l.check(err, "layers")
	}

	s.ClearWithColor(tok.Background)
	lc.BlitLayer(s, layer.Back)
	if pl.HasPointer {
		l.check(g.Track.Pointer(s, pl.PointerX, u*tok.MajorTickLen, tok.Pointer), "pointer")
	}
	l.finish(s, pl.Block, p, tok)
}

func (l *Linear) paintTrack(dst *surface.Surface, pl LinearPlan, tok theme.Tokens) {
	g := pl.Geometry
	t := g.Track
	u := g.Dial.H * linearUnit
	for _, sc := range pl.Sectors {
		l.check(t.Sector(dst, sc.From, sc.To, u*tok.SectorWidth, sc.Color), "sector")
	}
	st := drawing.TickStyle{
		MajorLen: u * tok.MajorTickLen, MinorLen: u * tok.MinorTickLen,
		MajorWidth: math.Max(1, u*tok.MinorTickWidth), MinorWidth: math.Max(0.5, u*tok.MinorTickWidth*0.5),
		Major: tok.TickMajor, Minor: tok.TickMinor,
	}
	l.check(t.Ticks(dst, pl.Ticks, st), "ticks")
	l.check(t.Line(dst, math.Max(1, u*tok.MinorTickWidth), tok.Ring), "track")
	font := surface.Font{Family: tok.FontFamily, Weight: tok.LabelWeight, Px: g.LabelPx}
	t.Labels(dst, pl.Labels, g.LabelPx*0.2, font, tok.Foreground)
}
