// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package axis

import "math"

// MaxTickSteps bounds tick generation so misconfigured steps cannot loop
// forever or allocate without limit.
const MaxTickSteps = 5000

// Default tolerances used to decide whether a minor step lands on a major
// multiple.
const (
	ValueTolerance = 1e-6
	AngleTolerance = 1e-4
)

// Ticks holds major and minor tick positions in walk order.
// Majors always start with the range start and end with the range end.
type Ticks struct {
	Majors []float64
	Minors []float64
}

// Len returns the total number of ticks.
func (t Ticks) Len() int {
	return len(t.Majors) + len(t.Minors)
}

// BuildTickAngles walks from start to end in minorStep increments and
// classifies each step as major when it lies within tol of a multiple of
// majorStep measured from start. Steps are taken as magnitudes; the walk
// direction follows the sign of end-start. Both endpoints are always majors.
func BuildTickAngles(start, end, majorStep, minorStep, tol float64) Ticks {
	return walk(start, end, majorStep, minorStep, tol)
}

// BuildValueTicks is BuildTickAngles in value space with the value
// tolerance default when tol <= 0.
func BuildValueTicks(min, max, majorStep, minorStep, tol float64) Ticks {
	if tol <= 0 {
		tol = ValueTolerance
	}
	return walk(min, max, majorStep, minorStep, tol)
}

// BuildValueTickAngles generates ticks in value space and maps them into
// the range space of s.
func BuildValueTickAngles(s Scale, majorStep, minorStep, tol float64) Ticks {
	return s.MapTicks(BuildValueTicks(s.Min, s.Max, majorStep, minorStep, tol))
}

// MapTicks maps value ticks into range space.
func (s Scale) MapTicks(t Ticks) Ticks {
	out := Ticks{
		Majors: make([]float64, len(t.Majors)),
		Minors: make([]float64, len(t.Minors)),
	}
	for i, v := range t.Majors {
		out.Majors[i] = s.Map(v)
	}
	for i, v := range t.Minors {
		out.Minors[i] = s.Map(v)
	}
	return out
}

func walk(start, end, majorStep, minorStep, tol float64) Ticks {
	if tol <= 0 {
		tol = AngleTolerance
	}
	if !finite(start) || !finite(end) {
		return Ticks{}
	}
	if start == end {
		return Ticks{Majors: []float64{start}}
	}

	major := math.Abs(majorStep)
	minor := math.Abs(minorStep)
	if !finite(major) {
		major = 0
	}
	if !finite(minor) || minor == 0 {
		minor = major
	}
	if minor == 0 {
		return Ticks{Majors: []float64{start, end}}
	}

	dir := 1.0
	if end < start {
		dir = -1
	}
	span := math.Abs(end - start)

	t := Ticks{Majors: []float64{start}}
	for i := 1; i < MaxTickSteps; i++ {
		off := float64(i) * minor
		if off >= span-tol {
			break
		}
		p := start + dir*off
		if major > 0 && onMultiple(off, major, tol) {
			t.Majors = append(t.Majors, p)
		} else {
			t.Minors = append(t.Minors, p)
		}
	}
	t.Majors = append(t.Majors, end)
	return t
}

func onMultiple(off, step, tol float64) bool {
	r := math.Mod(off, step)
	return r <= tol || step-r <= tol
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
