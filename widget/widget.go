// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package widget is the host-facing contract of the gauges.
//
// A host creates one [Widget] per displayed instrument, calls Render for
// every frame with the latest props, and calls Finalize when the surface
// goes away. Instrument clusters are modeled as a closed set of [Kind]
// values; [New] maps each kind to a configured engine. Named factories for
// hosts that select widgets by string live in a [Registry].
package widget

import (
	"errors"
	"fmt"

	"github.com/gogpu/gauge/engine"
	"github.com/gogpu/gauge/format"
	"github.com/gogpu/gauge/layer"
	"github.com/gogpu/gauge/surface"
	"github.com/gogpu/gauge/theme"
)

// Widget is one instrument bound to a host.
type Widget interface {
	// Render draws a frame. It never fails; problems are logged.
	Render(s *surface.Surface, p engine.Props)

	// Translate converts host props into engine props: default caption
	// and unit, unit conversion, angle normalization.
	Translate(p engine.Props) engine.Props

	// Finalize releases every cache held for the surface.
	Finalize(id surface.ID)
}

// ErrUnknownKind is returned by New for kinds outside this package.
var ErrUnknownKind = errors.New("widget: unknown kind")

// Deps are the shared collaborators of widgets.
type Deps struct {
	// Fonts measures text. Required.
	Fonts *surface.FontBook

	// Theme resolves style tokens. Required.
	Theme *theme.Resolver

	// Formatter overrides the default number formatting.
	Formatter format.Formatter

	// Layers shares static layer caches between widgets.
	Layers *layer.Registry
}

func (d Deps) engine() engine.Deps {
	ed := engine.Deps{Theme: d.Theme, Formatter: d.Formatter, Layers: d.Layers}
	if d.Fonts != nil {
		ed.Measurer = d.Fonts
	}
	return ed
}

// renderer is the part of an engine a widget drives.
type renderer interface {
	Render(s *surface.Surface, p engine.Props)
	Finalize(id surface.ID)
}

// gauge adapts an engine to Widget.
type gauge struct {
	name      string
	eng       renderer
	caption   string
	unit      string
	translate func(engine.Props) engine.Props
}

func (g *gauge) Render(s *surface.Surface, p engine.Props) {
	g.eng.Render(s, g.Translate(p))
}

func (g *gauge) Translate(p engine.Props) engine.Props {
	if p.Caption == "" {
		p.Caption = g.caption
	}
	if p.Unit == "" {
		p.Unit = g.unit
	}
	if g.translate != nil {
		p = g.translate(p)
	}
	return p
}

func (g *gauge) Finalize(id surface.ID) {
	g.eng.Finalize(id)
}

func (g *gauge) String() string { return g.name }

// New returns the widget for kind k.
func New(k Kind, d Deps) (Widget, error) {
	var (
		w   *gauge
		err error
	)
	switch k := k.(type) {
	case SpeedKind:
		w, err = newSpeed(k, d)
	case DepthKind:
		w, err = newDepth(k, d)
	case TemperatureKind:
		w, err = newTemperature(k, d)
	case VoltageKind:
		w, err = newVoltage(k, d)
	case WindKind:
		w, err = newWind(k, d)
	case CompassKind:
		w, err = newCompass(k, d)
	case PositionKind:
		w, err = newPosition(k, d)
	case NumericKind:
		w, err = newNumeric(k, d)
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnknownKind, k)
	}
	if err != nil {
		return nil, fmt.Errorf("widget: %s: %w", k.Name(), err)
	}
	w.name = k.Name()
	return w, nil
}
