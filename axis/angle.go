// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package axis

import "math"

// Norm360 normalizes deg into [0, 360).
func Norm360(deg float64) float64 {
	r := math.Mod(deg, 360)
	if r < 0 {
		r += 360
	}
	if r >= 360 {
		r = 0
	}
	return r
}

// Norm180 normalizes deg into [-180, 180). The 180 boundary is
// canonicalized to -180 so that comparisons see a single representation.
func Norm180(deg float64) float64 {
	r := Norm360(deg)
	if r >= 180 {
		r -= 360
	}
	return r
}

// Delta returns the signed shortest rotation from ref to target in
// [-180, 180).
func Delta(target, ref float64) float64 {
	return Norm180(target - ref)
}

// Zero selects which screen direction dial angle 0 points to.
type Zero uint8

const (
	// ZeroUp places 0 degrees at 12 o'clock (compass convention).
	ZeroUp Zero = iota

	// ZeroRight places 0 degrees at 3 o'clock (math convention).
	ZeroRight
)

// Winding is the screen direction of increasing dial angles.
type Winding uint8

const (
	// Clockwise increases angles clockwise on screen.
	Clockwise Winding = iota

	// CounterClockwise increases angles counter-clockwise on screen.
	CounterClockwise
)

// Frame converts dial degrees into canvas radians (y axis down, 0 rad at
// 3 o'clock, increasing clockwise).
type Frame struct {
	Zero    Zero
	Winding Winding

	// Rotation is added to every dial angle before conversion, in degrees.
	Rotation float64
}

// DefaultFrame is 0 at the top with clockwise winding.
var DefaultFrame = Frame{Zero: ZeroUp, Winding: Clockwise}

// Rotated returns a copy of f with deg added to its rotation.
func (f Frame) Rotated(deg float64) Frame {
	f.Rotation += deg
	return f
}

// Radians returns the canvas angle for the dial angle deg.
func (f Frame) Radians(deg float64) float64 {
	d := deg + f.Rotation
	if f.Winding == CounterClockwise {
		d = -d
	}
	if f.Zero == ZeroUp {
		d -= 90
	}
	return d * math.Pi / 180
}

// Point returns the canvas point at radius r from (cx, cy) for dial angle deg.
func (f Frame) Point(cx, cy, r, deg float64) (x, y float64) {
	a := f.Radians(deg)
	return cx + r*math.Cos(a), cy + r*math.Sin(a)
}

// Rad converts degrees to radians.
func Rad(deg float64) float64 { return deg * math.Pi / 180 }

// Deg converts radians to degrees.
func Deg(rad float64) float64 { return rad * 180 / math.Pi }
