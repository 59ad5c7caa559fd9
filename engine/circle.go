// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package engine

import (
	"fmt"
	"image/color"
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

// Card selects how a circle gauge moves.
type Card uint8

const (
	// FixedCard keeps the scale still and moves a needle (wind angle).
	FixedCard Card = iota

	// RotatingCard turns the scale by the heading under a fixed lubber
	// mark at the top (compass).
	RotatingCard
)

func (c Card) String() string {
	switch c {
	case FixedCard:
		return "fixed"
	case RotatingCard:
		return "rotating"
	default:
		return fmt.Sprintf("Card(%d)", uint8(c))
	}
}

// Band is a colored range of a fixed card in value space.
type Band struct {
	From float64     `toml:"from" json:"from"`
	To   float64     `toml:"to" json:"to"`
	Kind sector.Kind `toml:"-" json:"kind"`
}

// CircleConfig configures a Circle engine.
type CircleConfig struct {
	Card Card `toml:"-" json:"card"`

	// Min maps to StartAngle and Max one full turn later. Rotating cards
	// always use 0..360.
	Min        float64 `toml:"min" json:"min"`
	Max        float64 `toml:"max" json:"max"`
	StartAngle float64 `toml:"start_angle" json:"start"`

	MajorStep     float64 `toml:"major_step" json:"major"`
	MinorStep     float64 `toml:"minor_step" json:"minor"`
	LabelStep     float64 `toml:"label_step" json:"label_step"`
	LabelDecimals int     `toml:"label_decimals" json:"label_decimals"`

	// AbsLabels labels magnitudes, so a -180..180 wind card reads 0..180
	// on both sides.
	AbsLabels bool `toml:"abs_labels" json:"abs_labels"`

	// Cardinals replaces labels at 0, 90, 180 and 270 with N, E, S, W.
	Cardinals bool `toml:"cardinals" json:"cardinals"`

	Bands []Band `toml:"bands" json:"bands"`

	Decimals   int               `toml:"decimals" json:"-"`
	Thresholds layout.Thresholds `toml:"thresholds" json:"-"`
}

// DefaultWindConfig returns a fixed -180..180 card with close-hauled bands.
func DefaultWindConfig() CircleConfig {
	return CircleConfig{
		Card:       FixedCard,
		Min:        -180,
		Max:        180,
		StartAngle: -180,
		MajorStep:  30,
		MinorStep:  10,
		AbsLabels:  true,
		Bands: []Band{
			{From: -60, To: -20, Kind: sector.Alarm},
			{From: 20, To: 60, Kind: sector.Warning},
		},
		Decimals:   0,
		Thresholds: layout.CompassThresholds,
	}
}

// DefaultCompassConfig returns a rotating 0..360 card.
func DefaultCompassConfig() CircleConfig {
	return CircleConfig{
		Card:       RotatingCard,
		Min:        0,
		Max:        360,
		MajorStep:  30,
		MinorStep:  10,
		Cardinals:  true,
		Decimals:   0,
		Thresholds: layout.CompassThresholds,
	}
}

// Validate reports configuration errors.
func (c CircleConfig) Validate() error {
	if c.Card > RotatingCard {
		return fmt.Errorf("%w: unknown card %d", ErrInvalidConfig, c.Card)
	}
	if err := validateRange(c.Min, c.Max); err != nil {
		return err
	}
	if !finite(c.StartAngle) {
		return fmt.Errorf("%w: start angle %v", ErrInvalidConfig, c.StartAngle)
	}
	if err := validateSteps(c.MajorStep, c.MinorStep); err != nil {
		return err
	}
	if err := validateDecimals(c.Decimals, c.LabelDecimals); err != nil {
		return err
	}
	for i, b := range c.Bands {
		if !finite(b.From) || !finite(b.To) {
			return fmt.Errorf("%w: band %d is not finite", ErrInvalidConfig, i)
		}
	}
	if err := c.Thresholds.Or(layout.CompassThresholds).Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// Scale returns the value-to-angle mapping of the card.
func (c CircleConfig) Scale() axis.Scale {
	if c.Card == RotatingCard {
		return axis.NewScale(0, 360, 0, 360)
	}
	return axis.NewScale(c.Min, c.Max, c.StartAngle, c.StartAngle+360)
}

// Circle draws a full-circle dial.
type Circle struct {
	*base
	cfg   CircleConfig
	frame axis.Frame
}

// NewCircle validates cfg and returns a circle engine.
func NewCircle(cfg CircleConfig, d Deps) (*Circle, error) {
	cfg.Thresholds = cfg.Thresholds.Or(layout.CompassThresholds)
	if cfg.Card == RotatingCard {
		cfg.Min, cfg.Max, cfg.StartAngle = 0, 360, 0
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	b, err := newBase("circle", d, cfg.Decimals)
	if err != nil {
		return nil, err
	}
	return &Circle{base: b, cfg: cfg, frame: axis.DefaultFrame}, nil
}

// Config returns the engine configuration.
func (c *Circle) Config() CircleConfig { return c.cfg }

// MarkerPlan is a marker placed at a screen dial angle.
type MarkerPlan struct {
	Name  string
	Angle float64
	Color color.Color
}

// CirclePlan is everything one circle frame draws.
type CirclePlan struct {
	Mode     layout.Mode
	Geometry Geometry
	Scale    axis.Scale

	// CardFrame is the frame of ticks, labels and bands; it is rotated by
	// the heading on rotating cards.
	CardFrame axis.Frame

	Ticks   axis.Ticks
	Labels  []drawing.Label
	Sectors []sector.Sector

	// HasPointer is set on fixed cards with a valid value.
	HasPointer   bool
	PointerAngle float64

	// Markers are in screen dial angles (unrotated frame).
	Markers []MarkerPlan

	Display Display
	Block   textfit.Block
}

// Plan computes a frame for a w x h container with the default light
// theme.
func (c *Circle) Plan(w, h float64, p Props) CirclePlan {
	return c.plan(w, h, theme.Light(), p, nil)
}

func (c *Circle) plan(w, h float64, tok theme.Tokens, p Props, cache *textfit.Cache[textfit.Block]) CirclePlan {
	cfg := c.cfg
	pl := CirclePlan{
		Mode:      layout.Select(w, h, cfg.Thresholds),
		Scale:     cfg.Scale(),
		CardFrame: c.frame,
	}
	pl.Geometry = radialGeometry(pl.Mode, w, h, padOf(w, h, tok.Pad), tok.RingWidth, arcBounds(c.frame, 0, 360))
	pl.Ticks = dropWrapped(axis.BuildValueTickAngles(pl.Scale, cfg.MajorStep, cfg.MinorStep, 0))
	pl.Labels = c.labels(pl.Scale)
	pl.Sectors = c.sectors(pl.Scale, tok)
	pl.Display = c.display(p, tok)

	heading := 0.0
	if cfg.Card == RotatingCard && pl.Display.Valid {
		heading = pl.Display.Value
		pl.CardFrame = c.frame.Rotated(-heading)
	}
	if cfg.Card == FixedCard && pl.Display.Valid {
		pl.HasPointer = true
		pl.PointerAngle = pl.Scale.Map(axis.ClampValue(pl.Display.Value, cfg.Min, cfg.Max))
	}
	for _, m := range p.Markers {
		if !finite(m.Bearing) {
			continue
		}
		col := m.Color
		if col == nil {
			col = tok.Marker
		}
		angle := axis.Norm360(m.Bearing)
		if cfg.Card == RotatingCard {
			angle = axis.Delta(m.Bearing, heading)
		}
		pl.Markers = append(pl.Markers, MarkerPlan{Name: m.Name, Angle: angle, Color: col})
	}
	pl.Block = c.block(cache, textMode(pl.Geometry.Text), pl.Display, nil, pl.Geometry.Text, tok)
	return pl
}

func (c *Circle) labels(s axis.Scale) []drawing.Label {
	cfg := c.cfg
	ls := labelsFor(cfg.Min, cfg.Max, labelStep(cfg.LabelStep, cfg.MajorStep), cfg.LabelDecimals, cfg.AbsLabels, s.Map)
	// The last label coincides with the first on a full turn.
	if n := len(ls); n > 1 && math.Abs(axis.Delta(ls[n-1].At, ls[0].At)) < axis.AngleTolerance {
		ls = ls[:n-1]
	}
	if cfg.Cardinals {
		for i := range ls {
			if name, ok := cardinal(ls[i].At); ok {
				ls[i].Text = name
			}
		}
	}
	return ls
}

func cardinal(angle float64) (string, bool) {
	a := axis.Norm360(angle)
	for i, name := range [...]string{"N", "E", "S", "W"} {
		if math.Abs(axis.Delta(a, float64(i*90))) < axis.AngleTolerance {
			return name, true
		}
	}
	return "", false
}

func (c *Circle) sectors(s axis.Scale, tok theme.Tokens) []sector.Sector {
	var out []sector.Sector
	for _, b := range c.cfg.Bands {
		col := tok.Warning
		if b.Kind == sector.Alarm {
			col = tok.Alarm
		}
		from := axis.ClampValue(b.From, c.cfg.Min, c.cfg.Max)
		to := axis.ClampValue(b.To, c.cfg.Min, c.cfg.Max)
		out = append(out, sector.Sector{From: math.Min(from, to), To: math.Max(from, to), Kind: b.Kind, Color: col})
	}
	return sector.Project(out, s)
}

// dropWrapped removes the closing major of a full turn.
func dropWrapped(t axis.Ticks) axis.Ticks {
	if n := len(t.Majors); n > 1 && math.Abs(axis.Delta(t.Majors[n-1], t.Majors[0])) < axis.AngleTolerance {
		t.Majors = t.Majors[:n-1]
	}
	return t
}

type circleKey struct {
	Config CircleConfig    `json:"config"`
	Mode   string          `json:"mode"`
	Style  styleKey        `json:"style"`
	Geom   []float64       `json:"geom"`
	Labels []drawing.Label `json:"labels"`
}

// Render draws one frame onto s.
func (c *Circle) Render(s *surface.Surface, p Props) {
	if s == nil {
		return
	}
	tok := c.theme.Resolve(s.ID())
	w, h := s.Size()
	pl := c.plan(w, h, tok, p, c.fitCache(s.ID()))
	g := pl.Geometry

	key := circleKey{
		Config: c.cfg,
		Mode:   pl.Mode.String(),
		Style:  styleOf(s, tok),
		Geom:   []float64{g.Center.X, g.Center.Y, g.Radius},
		Labels: pl.Labels,
	}
	lc := c.layers.For(s)
	if _, err := lc.Ensure(s, key, func(dst *surface.Surface, name string) {
		c.paintStatic(dst, name, pl, tok)
	}); err != nil {
		c.check(err, "layers")
	}

	s.ClearWithColor(tok.Background)
	lc.BlitLayer(s, layer.Back)
	if c.cfg.Card == RotatingCard {
		c.paintCard(s, pl, tok)
	}
	for _, m := range pl.Markers {
		c.check(drawing.Marker(s, g.Center, c.frame, g.Radius-g.Ring, g.Radius*tok.MajorTickLen, m.Angle, m.Color), "marker")
	}
	if pl.HasPointer {
		c.check(drawing.Needle(s, g.Center, c.frame, g.Radius-g.Ring, g.Radius*tok.PointerWidth, pl.PointerAngle, tok.Pointer), "needle")
	}
	lc.BlitLayer(s, layer.Front)
	c.finish(s, pl.Block, p, tok)
}

func (c *Circle) paintStatic(dst *surface.Surface, name string, pl CirclePlan, tok theme.Tokens) {
	g := pl.Geometry
	switch {
	case name == layer.Back && c.cfg.Card == FixedCard:
		paintDial(c.base, dst, c.frame, g, pl.Scale.From, pl.Scale.To, pl.Ticks, pl.Labels, pl.Sectors, tok)
	case name == layer.Back:
		c.check(drawing.Ring(dst, g.Center, c.frame, g.Radius-g.Ring/2, g.Ring, 0, 360, tok.Ring), "rim")
	case name == layer.Front && c.cfg.Card == FixedCard:
		paintHub(c.base, dst, g, tok)
	case name == layer.Front:
		// Lubber mark.
		c.check(drawing.Marker(dst, g.Center, c.frame, g.Radius, g.Radius*tok.MajorTickLen, 0, tok.Pointer), "lubber")
	}
}

// paintCard draws the heading-dependent card of a rotating compass.
func (c *Circle) paintCard(s *surface.Surface, pl CirclePlan, tok theme.Tokens) {
	g := pl.Geometry
	r := g.Radius
	st := drawing.TickStyle{
		MajorLen: r * tok.MajorTickLen, MinorLen: r * tok.MinorTickLen,
		MajorWidth: r * tok.MajorTickWidth, MinorWidth: r * tok.MinorTickWidth,
		Major: tok.TickMajor, Minor: tok.TickMinor,
	}
	c.check(drawing.RadialTicks(s, g.Center, pl.CardFrame, r-g.Ring, pl.Ticks, st), "card ticks")
	font := surface.Font{Family: tok.FontFamily, Weight: tok.LabelWeight, Px: labelPx(r)}
	drawing.RadialLabels(s, g.Center, pl.CardFrame, r*(1-tok.LabelInset), pl.Labels, font, tok.Foreground)
}
