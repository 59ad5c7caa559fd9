// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package widget

import (
	"fmt"

	"github.com/gogpu/gauge/axis"
	"github.com/gogpu/gauge/engine"
	"github.com/gogpu/gauge/format"
	"github.com/gogpu/gauge/sector"
)

// Kind selects an instrument cluster. The set is closed: only the kinds
// of this package implement it.
type Kind interface {
	// Name is the registry name of the kind.
	Name() string

	isKind()
}

// SpeedVariant is the quantity shown by a speed gauge.
type SpeedVariant uint8

const (
	// SpeedOverGround is GPS speed (SOG).
	SpeedOverGround SpeedVariant = iota

	// SpeedThroughWater is log speed (STW).
	SpeedThroughWater

	// VelocityMadeGood is the speed component towards the wind or waypoint (VMG).
	VelocityMadeGood
)

func (v SpeedVariant) String() string {
	switch v {
	case SpeedOverGround:
		return "sog"
	case SpeedThroughWater:
		return "stw"
	case VelocityMadeGood:
		return "vmg"
	default:
		return fmt.Sprintf("SpeedVariant(%d)", uint8(v))
	}
}

func (v SpeedVariant) caption() string {
	switch v {
	case SpeedThroughWater:
		return "STW"
	case VelocityMadeGood:
		return "VMG"
	default:
		return "SOG"
	}
}

// SpeedKind is a semicircle speed dial in knots.
type SpeedKind struct {
	Variant SpeedVariant

	// Max is the full-scale speed; zero means 12.
	Max float64

	// Limits adds overspeed bands.
	Limits sector.Limits

	// MetersPerSecond converts input values from m/s.
	MetersPerSecond bool
}

func (k SpeedKind) Name() string { return "speed_" + k.Variant.String() }
func (SpeedKind) isKind() {}

// DepthKind is a linear depth scale with shallow-water bands.
type DepthKind struct {
	// Max is the full-scale depth in meters; zero means 30.
	Max float64

	// Shallow are the low-end limits; unset means warning at 5 m and
	// alarm at 2 m.
	Shallow sector.Limits
}

func (DepthKind) Name() string { return "depth" }
func (DepthKind) isKind() {}

// KelvinThreshold is the smallest value the Kelvin heuristic treats as
// Kelvin.
const KelvinThreshold = 200.0

// TemperatureKind is a linear temperature scale in °C.
type TemperatureKind struct {
	// Min and Max bound the scale; both zero means -10..50.
	Min, Max float64

	Limits sector.Limits

	// KelvinHeuristic converts values at or above KelvinThreshold from
	// Kelvin. Off by default.
	KelvinHeuristic bool
}

func (TemperatureKind) Name() string { return "temperature" }
func (TemperatureKind) isKind() {}

// VoltageKind is a battery voltage dial with under-voltage bands.
type VoltageKind struct {
	// Nominal is the system voltage; zero means 12.
	Nominal float64
}

func (VoltageKind) Name() string { return "voltage" }
func (VoltageKind) isKind() {}

// WindKind is a fixed-card wind angle dial.
type WindKind struct {
	// True shows true instead of apparent wind.
	True bool
}

func (k WindKind) Name() string {
	if k.True {
		return "wind_true"
	}
	return "wind_apparent"
}
func (WindKind) isKind() {}

// CompassKind is a heading-stabilized rotating compass card.
type CompassKind struct {
	Magnetic bool
}

func (k CompassKind) Name() string {
	if k.Magnetic {
		return "compass_magnetic"
	}
	return "compass"
}
func (CompassKind) isKind() {}

// PositionKind shows latitude and longitude on two lines.
type PositionKind struct{}

func (PositionKind) Name() string { return "position" }
func (PositionKind) isKind() {}

// NumericKind is a plain numeric display.
type NumericKind struct {
	Caption  string
	Unit     string
	Decimals int
}

func (NumericKind) Name() string { return "numeric" }
func (NumericKind) isKind() {}

// Kinds returns one value of every built-in kind.
func Kinds() []Kind {
	return []Kind{
		SpeedKind{Variant: SpeedOverGround},
		SpeedKind{Variant: SpeedThroughWater},
		SpeedKind{Variant: VelocityMadeGood},
		DepthKind{},
		TemperatureKind{},
		VoltageKind{},
		WindKind{},
		WindKind{True: true},
		CompassKind{},
		CompassKind{Magnetic: true},
		PositionKind{},
		NumericKind{Decimals: 1},
	}
}

func newSpeed(k SpeedKind, d Deps) (*gauge, error) {
	cfg := engine.DefaultRadialConfig()
	cfg.Max = or(k.Max, 12)
	cfg.MajorStep, cfg.MinorStep = niceSteps(cfg.Max - cfg.Min)
	cfg.Shape = sector.HighEnd
	cfg.Limits = k.Limits
	eng, err := engine.NewRadial(cfg, d.engine())
	if err != nil {
		return nil, err
	}
	g := &gauge{eng: eng, caption: k.Variant.caption(), unit: "kn"}
	if k.MetersPerSecond {
		g.translate = convert(format.MetersPerSecondToKnots)
	}
	return g, nil
}

func newDepth(k DepthKind, d Deps) (*gauge, error) {
	cfg := engine.DefaultLinearConfig()
	cfg.Max = or(k.Max, 30)
	cfg.MajorStep, cfg.MinorStep = niceSteps(cfg.Max - cfg.Min)
	cfg.Shape = sector.LowEnd
	cfg.Limits = k.Shallow
	if cfg.Limits == (sector.Limits{}) {
		cfg.Limits = sector.Limits{WarningFrom: sector.At(5), AlarmFrom: sector.At(2)}
	}
	eng, err := engine.NewLinear(cfg, d.engine())
	if err != nil {
		return nil, err
	}
	return &gauge{eng: eng, caption: "DPT", unit: "m"}, nil
}

func newTemperature(k TemperatureKind, d Deps) (*gauge, error) {
	cfg := engine.DefaultLinearConfig()
	cfg.Min, cfg.Max = k.Min, k.Max
	if cfg.Min == 0 && cfg.Max == 0 {
		cfg.Min, cfg.Max = -10, 50
	}
	cfg.MajorStep, cfg.MinorStep = niceSteps(cfg.Max - cfg.Min)
	cfg.Shape = sector.HighEnd
	cfg.Limits = k.Limits
	eng, err := engine.NewLinear(cfg, d.engine())
	if err != nil {
		return nil, err
	}
	g := &gauge{eng: eng, caption: "TEMP", unit: "°C"}
	if k.KelvinHeuristic {
		g.translate = func(p engine.Props) engine.Props {
			if v, ok := engine.Number(p.Value); ok && v >= KelvinThreshold {
				p.Value = format.KelvinToCelsius.Apply(v)
			}
			return p
		}
	}
	return g, nil
}

func newVoltage(k VoltageKind, d Deps) (*gauge, error) {
	n := or(k.Nominal, 12)
	f := n / 12
	cfg := engine.DefaultRadialConfig()
	cfg.Min, cfg.Max = 10*f, 15*f
	cfg.MajorStep, cfg.MinorStep = niceSteps(cfg.Max - cfg.Min)
	cfg.LabelStep = f
	cfg.Decimals = 2
	cfg.Shape = sector.LowEnd
	cfg.Limits = sector.Limits{WarningFrom: sector.At(12.2 * f), AlarmFrom: sector.At(11.8 * f)}
	eng, err := engine.NewRadial(cfg, d.engine())
	if err != nil {
		return nil, err
	}
	return &gauge{eng: eng, caption: "BAT", unit: "V"}, nil
}

func newWind(k WindKind, d Deps) (*gauge, error) {
	eng, err := engine.NewCircle(engine.DefaultWindConfig(), d.engine())
	if err != nil {
		return nil, err
	}
	caption := "AWA"
	if k.True {
		caption = "TWA"
	}
	return &gauge{eng: eng, caption: caption, unit: "°", translate: normalize(axis.Norm180)}, nil
}

func newCompass(k CompassKind, d Deps) (*gauge, error) {
	eng, err := engine.NewCircle(engine.DefaultCompassConfig(), d.engine())
	if err != nil {
		return nil, err
	}
	caption := "HDT"
	if k.Magnetic {
		caption = "HDM"
	}
	return &gauge{eng: eng, caption: caption, unit: "°", translate: normalize(axis.Norm360)}, nil
}

func newPosition(_ PositionKind, d Deps) (*gauge, error) {
	eng, err := engine.NewText(engine.DefaultTextConfig(), d.engine())
	if err != nil {
		return nil, err
	}
	return &gauge{eng: eng, caption: "POS", translate: positionLines}, nil
}

func newNumeric(k NumericKind, d Deps) (*gauge, error) {
	cfg := engine.DefaultTextConfig()
	cfg.Decimals = k.Decimals
	cfg.NormalWithoutUnit = true
	eng, err := engine.NewText(cfg, d.engine())
	if err != nil {
		return nil, err
	}
	return &gauge{eng: eng, caption: k.Caption, unit: k.Unit}, nil
}

func or(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}

// niceSteps returns major and minor steps giving five to ten majors.
func niceSteps(span float64) (major, minor float64) {
	if !(span > 0) {
		return 0, 0
	}
	for _, m := range []float64{0.1, 0.2, 0.5, 1, 2, 5, 10, 20, 50, 100, 200, 500, 1000} {
		if span/m <= 10 {
			return m, m / 5
		}
	}
	return span / 10, span / 50
}

func convert(s format.Scaled) func(engine.Props) engine.Props {
	return func(p engine.Props) engine.Props {
		if v, ok := engine.Number(p.Value); ok {
			p.Value = s.Apply(v)
		}
		return p
	}
}

func normalize(norm func(float64) float64) func(engine.Props) engine.Props {
	return func(p engine.Props) engine.Props {
		if v, ok := engine.Number(p.Value); ok {
			p.Value = norm(v)
		}
		return p
	}
}
