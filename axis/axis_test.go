// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package axis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScaleRoundTrip(t *testing.T) {
	scales := []Scale{
		NewScale(0, 30, -120, 120),
		NewScale(0, 30, 270, 90),
		NewScale(-50, 50, 0, 360),
		NewScale(10, 0, 20, 380),
		NewScale(0, 1, 12.5, 287.5),
	}
	for _, s := range scales {
		for i := 0; i <= 20; i++ {
			v := s.Min + (s.Max-s.Min)*float64(i)/20
			got := AngleToValue(ValueToAngle(v, s), s)
			assert.InDelta(t, v, got, 1e-9, "scale %+v value %v", s, v)
		}
	}
}

func TestScaleEndpoints(t *testing.T) {
	s := NewScale(0, 30, -120, 120)
	assert.Equal(t, -120.0, s.Map(0))
	assert.Equal(t, 120.0, s.Map(30))
	assert.Equal(t, 0.0, s.Map(15))
}

func TestScaleClamp(t *testing.T) {
	s := NewScale(0, 30, -120, 120)
	assert.Equal(t, 160.0, s.Map(35))

	c := s.Clamped()
	assert.Equal(t, 120.0, c.Map(35))
	assert.Equal(t, -120.0, c.Map(-10))
	assert.Equal(t, 30.0, c.Invert(500))
}

func TestScaleDegenerate(t *testing.T) {
	s := NewScale(5, 5, 10, 90)
	assert.True(t, s.Degenerate())
	assert.Equal(t, 10.0, s.Map(5))
	assert.Equal(t, 10.0, s.Map(1000))

	r := NewScale(0, 10, 45, 45)
	assert.Equal(t, 0.0, r.Invert(45))
}

func TestNorm360(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{360, 0},
		{-90, 270},
		{725, 5},
		{-720, 0},
		{359.5, 359.5},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, Norm360(tt.in), 1e-12, "Norm360(%v)", tt.in)
	}
}

func TestNorm180(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{180, -180},
		{-180, -180},
		{190, -170},
		{-190, 170},
		{540, -180},
		{179.9, 179.9},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, Norm180(tt.in), 1e-9, "Norm180(%v)", tt.in)
	}
}

func TestDeltaRotatingCard(t *testing.T) {
	assert.InDelta(t, 20, Delta(10, 350), 1e-12)
	assert.InDelta(t, -20, Delta(350, 10), 1e-12)
	assert.InDelta(t, -180, Delta(180, 0), 1e-12)
}

func TestFrameRadians(t *testing.T) {
	up := DefaultFrame
	assert.InDelta(t, -math.Pi/2, up.Radians(0), 1e-12)
	assert.InDelta(t, 0, up.Radians(90), 1e-12)

	right := Frame{Zero: ZeroRight, Winding: CounterClockwise}
	assert.InDelta(t, -math.Pi/2, right.Radians(90), 1e-12)

	rot := up.Rotated(-90)
	assert.InDelta(t, up.Radians(0), rot.Radians(90), 1e-12)
}

func TestFramePoint(t *testing.T) {
	x, y := DefaultFrame.Point(100, 100, 50, 0)
	assert.InDelta(t, 100, x, 1e-9)
	assert.InDelta(t, 50, y, 1e-9)

	x, y = DefaultFrame.Point(100, 100, 50, 90)
	assert.InDelta(t, 150, x, 1e-9)
	assert.InDelta(t, 100, y, 1e-9)
}

func TestBuildTickAnglesEndpoints(t *testing.T) {
	tests := []struct {
		name                 string
		start, end, maj, min float64
	}{
		{"aligned", 0, 360, 30, 10},
		{"unaligned end", -120, 125, 30, 10},
		{"descending", 270, 90, 45, 15},
		{"minor only", 0, 100, 0, 7},
		{"zero steps", 0, 100, 0, 0},
		{"negative steps", 0, 100, -20, -5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ticks := BuildTickAngles(tt.start, tt.end, tt.maj, tt.min, AngleTolerance)
			require.GreaterOrEqual(t, len(ticks.Majors), 2)
			assert.Equal(t, tt.start, ticks.Majors[0])
			assert.Equal(t, tt.end, ticks.Majors[len(ticks.Majors)-1])
		})
	}
}

func TestBuildTickAnglesClassification(t *testing.T) {
	ticks := BuildTickAngles(0, 90, 30, 10, AngleTolerance)
	assert.Equal(t, []float64{0, 30, 60, 90}, ticks.Majors)
	assert.Equal(t, []float64{10, 20, 40, 50, 70, 80}, ticks.Minors)
}

func TestBuildTickAnglesDescending(t *testing.T) {
	ticks := BuildTickAngles(90, 0, 45, 15, AngleTolerance)
	assert.Equal(t, []float64{90, 45, 0}, ticks.Majors)
	assert.Equal(t, []float64{75, 60, 30, 15}, ticks.Minors)
}

func TestBuildTickAnglesSafetyBound(t *testing.T) {
	ticks := BuildTickAngles(0, 1e9, 1, 1, AngleTolerance)
	assert.LessOrEqual(t, ticks.Len(), MaxTickSteps+1)
	assert.Equal(t, 1e9, ticks.Majors[len(ticks.Majors)-1])
}

func TestBuildValueTicksFloatSteps(t *testing.T) {
	ticks := BuildValueTicks(0, 1, 0.5, 0.1, 0)
	require.Len(t, ticks.Majors, 3)
	assert.InDelta(t, 0.5, ticks.Majors[1], 1e-12)
	assert.Len(t, ticks.Minors, 8)
}

func TestBuildValueTickAngles(t *testing.T) {
	s := NewScale(0, 30, -120, 120)
	ticks := BuildValueTickAngles(s, 10, 5, 0)
	assert.InDeltaSlice(t, []float64{-120, -40, 40, 120}, ticks.Majors, 1e-9)
	assert.Len(t, ticks.Minors, 3)
}

func TestBuildTicksNonFinite(t *testing.T) {
	assert.Zero(t, BuildTickAngles(math.NaN(), 10, 1, 1, 0).Len())
	ticks := BuildTickAngles(5, 5, 1, 1, 0)
	assert.Equal(t, []float64{5}, ticks.Majors)
}
