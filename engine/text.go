// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package engine

import (
	"fmt"

	"github.com/gogpu/gauge/layout"
	"github.com/gogpu/gauge/surface"
	"github.com/gogpu/gauge/textfit"
	"github.com/gogpu/gauge/theme"
)

// TextConfig configures a Text engine.
type TextConfig struct {
	Decimals   int               `toml:"decimals"`
	Thresholds layout.Thresholds `toml:"thresholds"`

	// FlatWithoutCaption forces the inline layout when there is no caption.
	FlatWithoutCaption bool `toml:"flat_without_caption"`

	// NormalWithoutUnit avoids the three-row layout when there is no unit.
	NormalWithoutUnit bool `toml:"normal_without_unit"`
}

// DefaultTextConfig returns the numeric display defaults.
func DefaultTextConfig() TextConfig {
	return TextConfig{Decimals: 1, Thresholds: layout.NumericThresholds}
}

// Validate reports configuration errors.
func (c TextConfig) Validate() error {
	if err := validateDecimals(c.Decimals); err != nil {
		return err
	}
	if err := c.Thresholds.Or(layout.NumericThresholds).Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// Text draws a numeric display: caption, value and unit, or a caption
// above two lines (Props.Lines) at one shared size.
type Text struct {
	*base
	cfg TextConfig
}

// NewText validates cfg and returns a text engine.
func NewText(cfg TextConfig, d Deps) (*Text, error) {
	cfg.Thresholds = cfg.Thresholds.Or(layout.NumericThresholds)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	b, err := newBase("text", d, cfg.Decimals)
	if err != nil {
		return nil, err
	}
	return &Text{base: b, cfg: cfg}, nil
}

// Config returns the engine configuration.
func (t *Text) Config() TextConfig { return t.cfg }

// TextPlan is everything one text frame draws.
type TextPlan struct {
	Mode     layout.Mode
	Geometry Geometry

	// Lines is non-empty for the pair layout.
	Lines []string

	Display Display
	Block   textfit.Block
}

// Plan computes a frame for a w x h container with the default light
// theme.
func (t *Text) Plan(w, h float64, p Props) TextPlan {
	return t.plan(w, h, theme.Light(), p, nil)
}

func (t *Text) plan(w, h float64, tok theme.Tokens, p Props, cache *textfit.Cache[textfit.Block]) TextPlan {
	var opts []layout.Option
	if t.cfg.FlatWithoutCaption {
		opts = append(opts, layout.FlatWithoutCaption(p.Caption))
	}
	if t.cfg.NormalWithoutUnit {
		opts = append(opts, layout.NormalWithoutUnit(p.Unit))
	}
	pl := TextPlan{Mode: layout.Select(w, h, t.cfg.Thresholds, opts...)}
	pad := padOf(w, h, tok.Pad)
	pl.Geometry = Geometry{Width: w, Height: h, Pad: pad}
	pl.Geometry.Text = Rect{W: w, H: h}.Inset(pad)
	pl.Geometry.Dial = pl.Geometry.Text

	pl.Display = t.display(p, tok)
	if len(p.Lines) > 0 {
		pl.Lines = pairLines(p.Lines, pl.Display.Text)
	}
	pl.Block = t.block(cache, pl.Mode, pl.Display, pl.Lines, pl.Geometry.Text, tok)
	return pl
}

// pairLines returns exactly two lines, replacing blank ones with fallback.
func pairLines(lines []string, fallback string) []string {
	out := []string{fallback, fallback}
	for i := 0; i < len(lines) && i < 2; i++ {
		if lines[i] != "" {
			out[i] = lines[i]
		}
	}
	return out
}

// Render draws one frame onto s.
func (t *Text) Render(s *surface.Surface, p Props) {
	if s == nil {
		return
	}
	tok := t.theme.Resolve(s.ID())
	w, h := s.Size()
	pl := t.plan(w, h, tok, p, t.fitCache(s.ID()))

	s.ClearWithColor(tok.Background)
	t.finish(s, pl.Block, p, tok)
}
