// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package config loads dashboard files: a grid of gauges with their
// current values, rendered by the demo host.
//
// A dashboard is a TOML document:
//
//	dark = true
//	columns = 3
//
//	[theme]
//	gauge-pointer = "#ff6600"
//
//	[[gauges]]
//	kind = "speed_sog"
//	value = 6.4
//
//	[[gauges]]
//	kind = "position"
//	value = [54.2057, -3.5]
package config

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/gogpu/gauge"
	"github.com/gogpu/gauge/engine"
	"github.com/gogpu/gauge/theme"
	"github.com/gogpu/gauge/widget"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("config: invalid dashboard")

// Dashboard is a grid of gauges.
type Dashboard struct {
	Title string `toml:"title"`

	// Dark selects the dark token set.
	Dark bool `toml:"dark"`

	// Ratio is the device pixel ratio of the output image.
	Ratio float64 `toml:"ratio"`

	Columns    int     `toml:"columns"`
	CellWidth  float64 `toml:"cell_width"`
	CellHeight float64 `toml:"cell_height"`

	// Theme overrides style tokens by name, for example
	// "gauge-pointer" = "#ff6600".
	Theme map[string]string `toml:"theme"`

	Gauges []Gauge `toml:"gauges"`
}

// Gauge is one cell of the grid.
type Gauge struct {
	// Kind is a widget registry name such as "speed_sog".
	Kind string `toml:"kind"`

	Caption string `toml:"caption,omitempty"`
	Unit    string `toml:"unit,omitempty"`
	Default string `toml:"default,omitempty"`

	// Value is a number, a numeric string, or a [lat, lon] pair.
	Value any `toml:"value"`

	Lines      []string `toml:"lines,omitempty"`
	Markers    []Marker `toml:"markers,omitempty"`
	Disconnect bool     `toml:"disconnect,omitempty"`
	SecScale   float64  `toml:"sec_scale,omitempty"`

	// Width and Height override the cell size of the dashboard.
	Width  float64 `toml:"width,omitempty"`
	Height float64 `toml:"height,omitempty"`
}

// Marker is a bearing marker on a compass card.
type Marker struct {
	Name    string  `toml:"name"`
	Bearing float64 `toml:"bearing"`
	Color   string  `toml:"color,omitempty"`
}

// Default returns an empty dashboard with the grid defaults.
func Default() Dashboard {
	return Dashboard{
		Ratio:      1,
		Columns:    3,
		CellWidth:  240,
		CellHeight: 180,
	}
}

// Load reads and validates the dashboard at path. Unset grid fields take
// their Default values.
func Load(path string) (*Dashboard, error) {
	d := Default()
	md, err := toml.DecodeFile(path, &d)
	if err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return finish(&d, md)
}

// Read is Load for an open reader.
func Read(r io.Reader) (*Dashboard, error) {
	d := Default()
	md, err := toml.NewDecoder(r).Decode(&d)
	if err != nil {
		return nil, fmt.Errorf("config: parsing: %w", err)
	}
	return finish(&d, md)
}

func finish(d *Dashboard, md toml.MetaData) (*Dashboard, error) {
	for _, k := range md.Undecoded() {
		gauge.Logger().Warn("config: unknown key", "key", k.String())
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

// Validate reports the first problem with d.
func (d *Dashboard) Validate() error {
	if !(d.Ratio > 0) || math.IsInf(d.Ratio, 0) {
		return fmt.Errorf("%w: ratio %v", ErrInvalid, d.Ratio)
	}
	if d.Columns < 1 {
		return fmt.Errorf("%w: columns %d", ErrInvalid, d.Columns)
	}
	if !(d.CellWidth >= 1) || !(d.CellHeight >= 1) {
		return fmt.Errorf("%w: cell size %vx%v", ErrInvalid, d.CellWidth, d.CellHeight)
	}
	for name, v := range d.Theme {
		if !strings.HasPrefix(name, "gauge-") {
			return fmt.Errorf("%w: theme token %q", ErrInvalid, name)
		}
		if v == "" {
			return fmt.Errorf("%w: theme token %q is empty", ErrInvalid, name)
		}
	}
	for i, g := range d.Gauges {
		if err := g.validate(); err != nil {
			return fmt.Errorf("%w: gauge %d: %w", ErrInvalid, i, err)
		}
	}
	return nil
}

func (g Gauge) validate() error {
	if g.Kind == "" {
		return errors.New("missing kind")
	}
	if _, ok := widget.Get(g.Kind); !ok {
		return fmt.Errorf("unknown kind %q", g.Kind)
	}
	if g.Width < 0 || g.Height < 0 {
		return fmt.Errorf("negative size %vx%v", g.Width, g.Height)
	}
	for _, m := range g.Markers {
		if m.Color == "" {
			continue
		}
		if _, err := theme.ParseColor(m.Color); err != nil {
			return fmt.Errorf("marker %q: %w", m.Name, err)
		}
	}
	return nil
}

// Rows returns the number of grid rows.
func (d *Dashboard) Rows() int {
	if d.Columns < 1 || len(d.Gauges) == 0 {
		return 0
	}
	return (len(d.Gauges) + d.Columns - 1) / d.Columns
}

// Cell returns the logical position and size of gauge i.
func (d *Dashboard) Cell(i int) (x, y, w, h float64) {
	col, row := i%d.Columns, i/d.Columns
	w, h = d.CellWidth, d.CellHeight
	if g := d.Gauges[i]; g.Width > 0 || g.Height > 0 {
		w = min(orSize(g.Width, w), d.CellWidth)
		h = min(orSize(g.Height, h), d.CellHeight)
	}
	return float64(col) * d.CellWidth, float64(row) * d.CellHeight, w, h
}

func orSize(v, def float64) float64 {
	if v > 0 {
		return v
	}
	return def
}

// Size returns the logical size of the whole grid.
func (d *Dashboard) Size() (w, h float64) {
	cols := min(d.Columns, len(d.Gauges))
	return float64(max(cols, 1)) * d.CellWidth, float64(max(d.Rows(), 1)) * d.CellHeight
}

// Source returns a theme source with the dashboard mode and overrides.
func (d *Dashboard) Source() *theme.StaticSource {
	return theme.NewStaticSource(d.Dark, d.Theme)
}

// Props converts the cell into engine props. TOML arrays of two numbers
// become a []float64 position.
func (g Gauge) Props() engine.Props {
	p := engine.Props{
		Value:      g.Value,
		Caption:    g.Caption,
		Unit:       g.Unit,
		Default:    g.Default,
		Disconnect: g.Disconnect,
		SecScale:   g.SecScale,
		Lines:      g.Lines,
	}
	if arr, ok := g.Value.([]any); ok {
		p.Value = numbers(arr)
	}
	for _, m := range g.Markers {
		em := engine.Marker{Name: m.Name, Bearing: m.Bearing}
		if c, err := theme.ParseColor(m.Color); err == nil {
			em.Color = c
		}
		p.Markers = append(p.Markers, em)
	}
	return p
}

// numbers returns arr as []float64, or nil if any element is not numeric.
func numbers(arr []any) []float64 {
	out := make([]float64, 0, len(arr))
	for _, v := range arr {
		f, ok := engine.Number(v)
		if !ok {
			return nil
		}
		out = append(out, f)
	}
	return out
}
