// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package theme

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gauge"
	"github.com/gogpu/gauge/surface"
)

// Source is the host environment tokens are read from. The resolver only
// reads from it.
type Source interface {
	// Dark reports whether the host shows id in dark mode.
	Dark(id surface.ID) bool

	// Lookup returns the raw value of a named token such as
	// "gauge-pointer" or "gauge-ring-width".
	Lookup(id surface.ID, name string) (string, bool)
}

// StaticSource is a Source with one flag and one value map for every surface.
type StaticSource struct {
	mu     sync.RWMutex
	dark   bool
	values map[string]string
}

// NewStaticSource returns a source with the given mode and values.
func NewStaticSource(dark bool, values map[string]string) *StaticSource {
	v := make(map[string]string, len(values))
	for k, val := range values {
		v[k] = val
	}
	return &StaticSource{dark: dark, values: v}
}

// SetDark flips the mode flag.
func (s *StaticSource) SetDark(dark bool) {
	s.mu.Lock()
	s.dark = dark
	s.mu.Unlock()
}

// Set stores a token value.
func (s *StaticSource) Set(name, value string) {
	s.mu.Lock()
	s.values[name] = value
	s.mu.Unlock()
}

// Dark implements Source.
func (s *StaticSource) Dark(surface.ID) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dark
}

// Lookup implements Source.
func (s *StaticSource) Lookup(_ surface.ID, name string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[name]
	return v, ok
}

type entry struct {
	dark   bool
	tokens Tokens
}

// Resolver caches resolved tokens per surface. The cache entry of a
// surface is rebuilt when the source's dark flag differs from the flag the
// entry was built with. Resolver is safe for concurrent use across
// surfaces.
type Resolver struct {
	src Source

	mu      sync.Mutex
	entries map[surface.ID]entry
}

// NewResolver returns a resolver reading from src. A nil src yields the
// light defaults for every surface.
func NewResolver(src Source) *Resolver {
	return &Resolver{src: src, entries: make(map[surface.ID]entry)}
}

// Resolve returns the tokens for id.
func (r *Resolver) Resolve(id surface.ID) Tokens {
	dark := r.src != nil && r.src.Dark(id)

	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.entries[id]; ok && e.dark == dark {
		return e.tokens
	}
	t := r.build(id, dark)
	r.entries[id] = entry{dark: dark, tokens: t}
	gauge.Logger().Debug("theme: resolved tokens", "surface", id.String(), "dark", dark)
	return t
}

// Invalidate drops the cached tokens of id.
func (r *Resolver) Invalidate(id surface.ID) {
	r.mu.Lock()
	delete(r.entries, id)
	r.mu.Unlock()
}

// Len returns the number of cached surfaces.
func (r *Resolver) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

func (r *Resolver) build(id surface.ID, dark bool) Tokens {
	t := Default(dark)
	if r.src == nil {
		return t
	}
	for _, b := range bindings(&t) {
		raw, ok := r.src.Lookup(id, b.name)
		if !ok {
			continue
		}
		if err := b.set(strings.TrimSpace(raw)); err != nil {
			gauge.Logger().Warn("theme: ignoring token", "name", b.name, "value", raw, "err", err)
		}
	}
	return t
}

type binding struct {
	name string
	set  func(string) error
}

func bindings(t *Tokens) []binding {
	return []binding{
		colorBinding("gauge-background", &t.Background),
		colorBinding("gauge-foreground", &t.Foreground),
		colorBinding("gauge-dim", &t.Dim),
		colorBinding("gauge-ring", &t.Ring),
		colorBinding("gauge-tick-major", &t.TickMajor),
		colorBinding("gauge-tick-minor", &t.TickMinor),
		colorBinding("gauge-pointer", &t.Pointer),
		colorBinding("gauge-marker", &t.Marker),
		colorBinding("gauge-warning", &t.Warning),
		colorBinding("gauge-alarm", &t.Alarm),
		colorBinding("gauge-overlay", &t.Overlay),
		floatBinding("gauge-ring-width", &t.RingWidth),
		floatBinding("gauge-major-tick-len", &t.MajorTickLen),
		floatBinding("gauge-minor-tick-len", &t.MinorTickLen),
		floatBinding("gauge-major-tick-width", &t.MajorTickWidth),
		floatBinding("gauge-minor-tick-width", &t.MinorTickWidth),
		floatBinding("gauge-pointer-width", &t.PointerWidth),
		floatBinding("gauge-sector-width", &t.SectorWidth),
		floatBinding("gauge-label-inset", &t.LabelInset),
		floatBinding("gauge-pad", &t.Pad),
		floatBinding("gauge-gap", &t.Gap),
		floatBinding("gauge-sec-scale", &t.SecScale),
		{name: "gauge-font-family", set: func(s string) error {
			if s == "" {
				return fmt.Errorf("empty family")
			}
			t.FontFamily = s
			return nil
		}},
		weightBinding("gauge-value-weight", &t.ValueWeight),
		weightBinding("gauge-caption-weight", &t.CaptionWeight),
		weightBinding("gauge-unit-weight", &t.UnitWeight),
		weightBinding("gauge-label-weight", &t.LabelWeight),
	}
}

func colorBinding(name string, dst *color.Color) binding {
	return binding{name: name, set: func(s string) error {
		c, err := ParseColor(s)
		if err != nil {
			return err
		}
		*dst = c
		return nil
	}}
}

func floatBinding(name string, dst *float64) binding {
	return binding{name: name, set: func(s string) error {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		if v < 0 {
			return fmt.Errorf("negative value %v", v)
		}
		*dst = v
		return nil
	}}
}

func weightBinding(name string, dst *surface.Weight) binding {
	return binding{name: name, set: func(s string) error {
		w, err := ParseWeight(s)
		if err != nil {
			return err
		}
		*dst = w
		return nil
	}}
}

// ParseColor parses #rgb, #rgba, #rrggbb or #rrggbbaa.
func ParseColor(s string) (color.Color, error) {
	h := strings.TrimPrefix(s, "#")
	switch len(h) {
	case 3, 4, 6, 8:
	default:
		return nil, fmt.Errorf("theme: invalid color %q", s)
	}
	if _, err := strconv.ParseUint(h, 16, 32); err != nil {
		return nil, fmt.Errorf("theme: invalid color %q", s)
	}
	return gg.Hex(h).Color(), nil
}

// ParseWeight parses "normal", "bold" or a numeric CSS weight.
func ParseWeight(s string) (surface.Weight, error) {
	switch strings.ToLower(s) {
	case "normal", "regular":
		return surface.WeightRegular, nil
	case "bold":
		return surface.WeightBold, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > 1000 {
		return 0, fmt.Errorf("theme: invalid weight %q", s)
	}
	return surface.Weight(n), nil
}

// HexOf formats c as #rrggbbaa (non-premultiplied).
func HexOf(c color.Color) string {
	if c == nil {
		return ""
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}
