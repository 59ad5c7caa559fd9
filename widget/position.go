// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package widget

import (
	"fmt"
	"math"

	"github.com/gogpu/gauge/engine"
)

// LatLon is a position in decimal degrees.
type LatLon struct {
	Lat, Lon float64
}

// Valid reports whether both coordinates are in range.
func (p LatLon) Valid() bool {
	return !math.IsNaN(p.Lat) && !math.IsNaN(p.Lon) &&
		math.Abs(p.Lat) <= 90 && math.Abs(p.Lon) <= 180
}

// FormatLat formats a latitude as degrees and decimal minutes, for
// example 54°12.342'N. Out of range input yields "".
func FormatLat(lat float64) string {
	if math.IsNaN(lat) || math.Abs(lat) > 90 {
		return ""
	}
	hemi := 'N'
	if lat < 0 {
		hemi = 'S'
	}
	deg, min := degMin(lat)
	return fmt.Sprintf("%02d°%06.3f'%c", deg, min, hemi)
}

// FormatLon formats a longitude as degrees and decimal minutes, for
// example 003°30.000'W. Out of range input yields "".
func FormatLon(lon float64) string {
	if math.IsNaN(lon) || math.Abs(lon) > 180 {
		return ""
	}
	hemi := 'E'
	if lon < 0 {
		hemi = 'W'
	}
	deg, min := degMin(lon)
	return fmt.Sprintf("%03d°%06.3f'%c", deg, min, hemi)
}

// degMin splits |v| into whole degrees and minutes rounded to three
// decimals, carrying 60' into the degrees.
func degMin(v float64) (int, float64) {
	v = math.Abs(v)
	deg := math.Floor(v)
	min := math.Round((v-deg)*60*1000) / 1000
	if min >= 60 {
		deg++
		min = 0
	}
	return int(deg), min
}

// positionLines turns a LatLon value into the two display lines.
func positionLines(p engine.Props) engine.Props {
	if len(p.Lines) > 0 {
		return p
	}
	pos := LatLon{Lat: math.NaN(), Lon: math.NaN()}
	switch v := p.Value.(type) {
	case LatLon:
		pos = v
	case *LatLon:
		if v != nil {
			pos = *v
		}
	case [2]float64:
		pos = LatLon{Lat: v[0], Lon: v[1]}
	case []float64:
		if len(v) == 2 {
			pos = LatLon{Lat: v[0], Lon: v[1]}
		}
	}
	p.Value = nil
	if pos.Valid() {
		p.Lines = []string{FormatLat(pos.Lat), FormatLon(pos.Lon)}
	} else {
		p.Lines = []string{"", ""}
	}
	return p
}
