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

// RadialConfig configures a Radial engine.
type RadialConfig struct {
	Min float64 `toml:"min" json:"min"`
	Max float64 `toml:"max" json:"max"`

	// StartAngle and EndAngle are the dial angles of Min and Max in
	// degrees, 0 at the top, clockwise.
	StartAngle float64 `toml:"start_angle" json:"start"`
	EndAngle   float64 `toml:"end_angle" json:"end"`

	MajorStep float64 `toml:"major_step" json:"major"`
	MinorStep float64 `toml:"minor_step" json:"minor"`

	// LabelStep is the value distance between tick labels; zero uses
	// MajorStep and a negative value hides labels.
	LabelStep     float64 `toml:"label_step" json:"label_step"`
	LabelDecimals int     `toml:"label_decimals" json:"label_decimals"`

	// Decimals of the value text when no format params are given.
	Decimals int `toml:"decimals" json:"-"`

	Shape  sector.Shape  `toml:"-" json:"shape"`
	Limits sector.Limits `toml:"limits" json:"limits"`

	Thresholds layout.Thresholds `toml:"thresholds" json:"-"`
}

// DefaultRadialConfig returns a 0..100 semicircle dial.
func DefaultRadialConfig() RadialConfig {
	return RadialConfig{
		Min:        0,
		Max:        100,
		StartAngle: -90,
		EndAngle:   90,
		MajorStep:  10,
		MinorStep:  2,
		Decimals:   1,
		Thresholds: layout.RadialThresholds,
	}
}

// Validate reports configuration errors.
func (c RadialConfig) Validate() error {
	if err := validateRange(c.Min, c.Max); err != nil {
		return err
	}
	if !finite(c.StartAngle) || !finite(c.EndAngle) || c.StartAngle == c.EndAngle {
		return fmt.Errorf("%w: arc %v..%v", ErrInvalidConfig, c.StartAngle, c.EndAngle)
	}
	if math.Abs(c.EndAngle-c.StartAngle) > 360 {
		return fmt.Errorf("%w: arc %v..%v exceeds a full turn", ErrInvalidConfig, c.StartAngle, c.EndAngle)
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
	if err := c.Thresholds.Or(layout.RadialThresholds).Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// Scale returns the value-to-angle mapping.
func (c RadialConfig) Scale() axis.Scale {
	return axis.NewScale(c.Min, c.Max, c.StartAngle, c.EndAngle).Clamped()
}

// Radial draws a needle dial over an arc.
type Radial struct {
	*base
	cfg   RadialConfig
	frame axis.Frame
}

// NewRadial validates cfg and returns a radial engine.
func NewRadial(cfg RadialConfig, d Deps) (*Radial, error) {
	cfg.Thresholds = cfg.Thresholds.Or(layout.RadialThresholds)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	b, err := newBase("radial", d, cfg.Decimals)
	if err != nil {
		return nil, err
	}
	return &Radial{base: b, cfg: cfg, frame: axis.DefaultFrame}, nil
}

// Config returns the engine configuration.
func (r *Radial) Config() RadialConfig { return r.cfg }

// RadialPlan is everything one radial frame draws.
type RadialPlan struct {
	Mode     layout.Mode
	Geometry Geometry
	Scale    axis.Scale

	// Ticks and sector bounds are dial angles.
	Ticks   axis.Ticks
	Labels  []drawing.Label
	Sectors []sector.Sector

	// ValueSectors are the sectors in value space.
	ValueSectors []sector.Sector

	HasPointer   bool
	PointerAngle float64

	Display Display
	Block   textfit.Block
}

// Plan computes a frame for a w x h container with the default light
// theme.
func (r *Radial) Plan(w, h float64, p Props) RadialPlan {
	return r.plan(w, h, theme.Light(), p, nil)
}

func (r *Radial) plan(w, h float64, tok theme.Tokens, p Props, cache *textfit.Cache[textfit.Block]) RadialPlan {
	c := r.cfg
	pl := RadialPlan{
		Mode:  layout.Select(w, h, c.Thresholds),
		Scale: c.Scale(),
	}
	b := arcBounds(r.frame, c.StartAngle, c.EndAngle)
	pl.Geometry = radialGeometry(pl.Mode, w, h, padOf(w, h, tok.Pad), tok.RingWidth, b)
	pl.Ticks = axis.BuildValueTickAngles(pl.Scale, c.MajorStep, c.MinorStep, 0)
	pl.Labels = labelsFor(c.Min, c.Max, labelStep(c.LabelStep, c.MajorStep), c.LabelDecimals, false, pl.Scale.Map)
	pl.ValueSectors = sector.Build(c.Shape, c.Limits, c.Min, c.Max, sector.Palette{Warning: tok.Warning, Alarm: tok.Alarm})
	pl.Sectors = sector.Project(pl.ValueSectors, pl.Scale)

	pl.Display = r.display(p, tok)
	if pl.Display.Valid {
		pl.HasPointer = true
		pl.PointerAngle = pl.Scale.Map(pl.Display.Value)
	}
	pl.Block = r.block(cache, textMode(pl.Geometry.Text), pl.Display, nil, pl.Geometry.Text, tok)
	return pl
}

// radialKey identifies the static layers of a radial frame.
type radialKey struct {
	Config RadialConfig    `json:"config"`
	Mode   string          `json:"mode"`
	Style  styleKey        `json:"style"`
	Geom   []float64       `json:"geom"`
	Labels []drawing.Label `json:"labels"`
}

// Render draws one frame onto s.
func (r *Radial) Render(s *surface.Surface, p Props) {
	if s == nil {
		return
	}
	tok := r.theme.Resolve(s.ID())
	w, h := s.Size()
	pl := r.plan(w, h, tok, p, r.fitCache(s.ID()))
	g := pl.Geometry

	key := radialKey{
		Config: r.cfg,
		Mode:   pl.Mode.String(),
		Style:  styleOf(s, tok),
		Geom:   []float64{g.Center.X, g.Center.Y, g.Radius},
		Labels: pl.Labels,
	}
	lc := r.layers.For(s)
	if _, err := lc.Ensure(s, key, func(dst *surface.Surface, name string) {
		r.paintStatic(dst, name, pl, tok)
	}); err != nil {
		r.check(err, "layers")
	}

	s.ClearWithColor(tok.Background)
	lc.BlitLayer(s, layer.Back)
	if pl.HasPointer {
		r.check(drawing.Needle(s, g.Center, r.frame, g.Radius-g.Ring, g.Radius*tok.PointerWidth, pl.PointerAngle, tok.Pointer), "needle")
	}
	lc.BlitLayer(s, layer.Front)
	r.finish(s, pl.Block, p, tok)
}

func (r *Radial) paintStatic(dst *surface.Surface, name string, pl RadialPlan, tok theme.Tokens) {
	g := pl.Geometry
	switch name {
	case layer.Back:
		paintDial(r.base, dst, r.frame, g, pl.Scale.From, pl.Scale.To, pl.Ticks, pl.Labels, pl.Sectors, tok)
	case layer.Front:
		paintHub(r.base, dst, g, tok)
	}
}

// paintDial draws ring, sectors, ticks and labels.
func paintDial(b *base, dst *surface.Surface, f axis.Frame, g Geometry, from, to float64, ticks axis.Ticks, labels []drawing.Label, sectors []sector.Sector, tok theme.Tokens) {
	r := g.Radius
	b.check(drawing.Band(dst, g.Center, f, r, g.Ring, from, to, tok.Ring), "ring")
	for _, sc := range sectors {
		b.check(drawing.Band(dst, g.Center, f, r-g.Ring, r*tok.SectorWidth, sc.From, sc.To, sc.Color), "sector")
	}
	st := drawing.TickStyle{
		MajorLen: r * tok.MajorTickLen, MinorLen: r * tok.MinorTickLen,
		MajorWidth: r * tok.MajorTickWidth, MinorWidth: r * tok.MinorTickWidth,
		Major: tok.TickMajor, Minor: tok.TickMinor,
	}
	b.check(drawing.RadialTicks(dst, g.Center, f, r-g.Ring, ticks, st), "ticks")
	font := surface.Font{Family: tok.FontFamily, Weight: tok.LabelWeight, Px: labelPx(r)}
	drawing.RadialLabels(dst, g.Center, f, r*(1-tok.LabelInset), labels, font, tok.Foreground)
}

func paintHub(b *base, dst *surface.Surface, g Geometry, tok theme.Tokens) {
	dst.SetColor(tok.Pointer)
	dst.Circle(g.Center.X, g.Center.Y, g.Radius*tok.PointerWidth*1.5)
	b.check(dst.Fill(), "hub")
}

func labelPx(radius float64) float64 {
	return math.Max(6, math.Round(radius*0.12))
}

func labelStep(step, major float64) float64 {
	switch {
	case step < 0:
		return 0
	case step == 0:
		return major
	}
	return step
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

func validateRange(min, max float64) error {
	if !finite(min) || !finite(max) || min == max {
		return fmt.Errorf("%w: range %v..%v", ErrInvalidConfig, min, max)
	}
	return nil
}

func validateSteps(major, minor float64) error {
	if !finite(major) || major < 0 || !finite(minor) || minor < 0 {
		return fmt.Errorf("%w: steps must be finite and non-negative (major %v, minor %v)", ErrInvalidConfig, major, minor)
	}
	return nil
}

// validateLimits rejects set limits that are not finite.
func validateLimits(l sector.Limits) error {
	if l.WarningFrom != nil && !finite(*l.WarningFrom) {
		return fmt.Errorf("%w: warning limit %v", ErrInvalidConfig, *l.WarningFrom)
	}
	if l.AlarmFrom != nil && !finite(*l.AlarmFrom) {
		return fmt.Errorf("%w: alarm limit %v", ErrInvalidConfig, *l.AlarmFrom)
	}
	return nil
}

func validateDecimals(ds ...int) error {
	for _, d := range ds {
		if d < 0 || d > 10 {
			return fmt.Errorf("%w: decimals %d out of 0..10", ErrInvalidConfig, d)
		}
	}
	return nil
}
