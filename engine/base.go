// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package engine

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/gogpu/gauge"
	"github.com/gogpu/gauge/axis"
	"github.com/gogpu/gauge/drawing"
	"github.com/gogpu/gauge/format"
	"github.com/gogpu/gauge/layer"
	"github.com/gogpu/gauge/layout"
	"github.com/gogpu/gauge/surface"
	"github.com/gogpu/gauge/textfit"
	"github.com/gogpu/gauge/theme"
)

// Deps are the collaborators shared by every engine.
type Deps struct {
	// Measurer sizes text. Required; usually the *surface.FontBook shared
	// with the surfaces.
	Measurer textfit.Measurer

	// Theme resolves tokens per surface. Required.
	Theme *theme.Resolver

	// Formatter turns values into strings. Nil uses format.Fixed with the
	// configured decimals.
	Formatter format.Formatter

	// Layers caches static layers per surface. Nil gives the engine its
	// own registry.
	Layers *layer.Registry
}

// base carries the per-surface state common to every engine.
type base struct {
	kind      string
	measurer  textfit.Measurer
	theme     *theme.Resolver
	formatter format.Formatter
	layers    *layer.Registry
	decimals  int

	mu   sync.Mutex
	fits map[surface.ID]*textfit.Cache[textfit.Block]
}

func newBase(kind string, d Deps, decimals int) (*base, error) {
	if d.Measurer == nil {
		return nil, fmt.Errorf("%w: %s engine needs a measurer", ErrMissingCollaborator, kind)
	}
	if d.Theme == nil {
		return nil, fmt.Errorf("%w: %s engine needs a theme resolver", ErrMissingCollaborator, kind)
	}
	layers := d.Layers
	if layers == nil {
		var err error
		if layers, err = layer.NewRegistry(layer.Back, layer.Front); err != nil {
			return nil, err
		}
	}
	f := d.Formatter
	if f == nil {
		f = format.NewFixed(decimals)
	}
	return &base{
		kind:      kind,
		measurer:  d.Measurer,
		theme:     d.Theme,
		formatter: f,
		layers:    layers,
		decimals:  decimals,
		fits:      make(map[surface.ID]*textfit.Cache[textfit.Block]),
	}, nil
}

// Layers returns the static layer registry.
func (b *base) Layers() *layer.Registry { return b.layers }

// Invalidate drops every cached artifact of surface id so the next frame
// rebuilds from scratch.
func (b *base) Invalidate(id surface.ID) {
	b.layers.Invalidate(id)
	b.theme.Invalidate(id)
	b.mu.Lock()
	if c, ok := b.fits[id]; ok {
		c.Clear()
	}
	b.mu.Unlock()
}

// Finalize releases everything held for surface id.
func (b *base) Finalize(id surface.ID) {
	b.layers.Forget(id)
	b.theme.Invalidate(id)
	b.mu.Lock()
	delete(b.fits, id)
	b.mu.Unlock()
	gauge.Logger().Debug("engine: finalized", "engine", b.kind, "surface", id.String())
}

func (b *base) fitCache(id surface.ID) *textfit.Cache[textfit.Block] {
	b.mu.Lock()
	defer b.mu.Unlock()
	c, ok := b.fits[id]
	if !ok {
		c = textfit.NewCache[textfit.Block]()
		b.fits[id] = c
	}
	return c
}

// display resolves the value text of p.
func (b *base) display(p Props, tok theme.Tokens) Display {
	sec := p.SecScale
	if sec == 0 {
		sec = tok.SecScale
	}
	d := Display{
		Value:    math.NaN(),
		Caption:  p.Caption,
		Unit:     p.Unit,
		SecScale: textfit.ClampSecScale(sec),
	}
	fallback := p.Default
	if fallback == "" {
		fallback = format.Fallback
	}
	v, ok := Number(p.Value)
	if !ok {
		d.Text = fallback
		if p.Value != nil {
			gauge.Logger().Debug("engine: value is not a finite number", "engine", b.kind, "value", p.Value)
		}
		return d
	}
	params := p.FormatParams
	if len(params) == 0 {
		params = []string{strconv.Itoa(b.decimals)}
	}
	d.Value, d.Valid = v, true
	d.Text, _ = format.Safe(b.formatter, fallback).Format(v, params...)
	return d
}

// textMode picks the text layout for a text box from its own shape.
func textMode(r Rect) layout.Mode {
	return layout.Select(r.W, r.H, layout.NumericThresholds)
}

// block fits the display text into r for mode. cache may be nil.
func (b *base) block(cache *textfit.Cache[textfit.Block], mode layout.Mode, d Display, lines []string, r Rect, tok theme.Tokens) textfit.Block {
	fonts := fontsOf(tok)
	compute := func() textfit.Block {
		c := textfit.Content{Caption: d.Caption, Value: d.Text, Unit: d.Unit, Lines: lines}
		return textfit.LayoutBlock(b.measurer, mode, c, r.Origin(), r.Box(), fonts, d.SecScale, tok.Gap)
	}
	if cache == nil {
		return compute()
	}
	k := textfit.Key{
		Mode:    mode,
		W:       r.W,
		H:       r.H,
		Caption: d.Caption,
		Unit:    d.Unit,
		Value:   d.Text,
		Scale:   d.SecScale,
		Family:  tok.FontFamily,
		Weights: [3]surface.Weight{tok.CaptionWeight, tok.ValueWeight, tok.UnitWeight},
		Extra: strings.Join([]string{
			strconv.FormatFloat(r.X, 'g', -1, 64),
			strconv.FormatFloat(r.Y, 'g', -1, 64),
			strconv.FormatFloat(tok.Gap, 'g', -1, 64),
		}, ",") + "\x1e" + strings.Join(lines, "\x1e"),
	}
	return cache.Fit(k, compute)
}

func fontsOf(tok theme.Tokens) textfit.Fonts {
	return textfit.Fonts{
		Caption: surface.Font{Family: tok.FontFamily, Weight: tok.CaptionWeight},
		Value:   surface.Font{Family: tok.FontFamily, Weight: tok.ValueWeight},
		Unit:    surface.Font{Family: tok.FontFamily, Weight: tok.UnitWeight},
	}
}

func textColors(tok theme.Tokens) drawing.TextColors {
	return drawing.TextColors{Caption: tok.Dim, Value: tok.Foreground, Unit: tok.Dim}
}

// check logs a drawing error.
func (b *base) check(err error, what string) {
	if err != nil {
		gauge.Logger().Warn("engine: draw failed", "engine", b.kind, "part", what, "err", err)
	}
}

// finish draws the text block and the optional overlay.
func (b *base) finish(s *surface.Surface, blk textfit.Block, p Props, tok theme.Tokens) {
	drawing.Text(s, blk, textColors(tok))
	if p.Disconnect {
		f := surface.Font{Family: tok.FontFamily, Weight: tok.ValueWeight}
		b.check(drawing.NoData(s, f, tok.Overlay, tok.Foreground), "nodata")
	}
}

// styleKey is the theme part of a static layer key.
type styleKey struct {
	Dark    bool      `json:"dark"`
	Colors  []string  `json:"colors"`
	Ratios  []float64 `json:"ratios"`
	Family  string    `json:"family"`
	Weight  int       `json:"weight"`
	Surface []float64 `json:"surface"`
}

func styleOf(s *surface.Surface, tok theme.Tokens) styleKey {
	w, h := s.Size()
	return styleKey{
		Dark: tok.Dark,
		Colors: []string{
			theme.HexOf(tok.Ring), theme.HexOf(tok.TickMajor), theme.HexOf(tok.TickMinor),
			theme.HexOf(tok.Warning), theme.HexOf(tok.Alarm), theme.HexOf(tok.Foreground),
			theme.HexOf(tok.Dim), theme.HexOf(tok.Pointer), theme.HexOf(tok.Marker),
		},
		Ratios: []float64{
			tok.RingWidth, tok.MajorTickLen, tok.MinorTickLen, tok.MajorTickWidth,
			tok.MinorTickWidth, tok.PointerWidth, tok.SectorWidth, tok.LabelInset, tok.Pad,
		},
		Family:  tok.FontFamily,
		Weight:  int(tok.LabelWeight),
		Surface: []float64{w, h, s.Ratio()},
	}
}

// labelsFor formats a label at every step of [min, max], placed by mapTo.
// abs labels magnitudes, as on a wind dial.
func labelsFor(min, max, step float64, decimals int, abs bool, mapTo func(float64) float64) []drawing.Label {
	if step <= 0 {
		return nil
	}
	values := axis.BuildValueTicks(min, max, step, 0, 0).Majors
	f := format.NewFixed(decimals)
	out := make([]drawing.Label, 0, len(values))
	for _, v := range values {
		shown := v
		if abs {
			shown = math.Abs(v)
		}
		txt, err := f.Format(shown)
		if err != nil {
			continue
		}
		out = append(out, drawing.Label{At: mapTo(v), Text: txt})
	}
	return out
}
