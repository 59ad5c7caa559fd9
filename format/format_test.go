// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package format

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestFixed(t *testing.T) {
	tests := []struct {
		name   string
		f      Fixed
		v      float64
		params []string
		want   string
	}{
		{"one decimal", NewFixed(1), 6.44, nil, "6.4"},
		{"zero decimals", NewFixed(0), 15.5, nil, "16"},
		{"param override", NewFixed(1), 3.14159, []string{"3"}, "3.142"},
		{"empty param", NewFixed(2), 1, []string{""}, "1.00"},
		{"negative zero", NewFixed(1), -0.01, nil, "0.0"},
		{"negative", NewFixed(1), -2.25, nil, "-2.2"},
		{"grouping", Fixed{Decimals: 1, Lang: language.English, Grouping: true}, 12345.6, nil, "12,345.6"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.f.Format(tt.v, tt.params...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFixedErrors(t *testing.T) {
	_, err := NewFixed(1).Format(math.NaN())
	assert.ErrorIs(t, err, ErrNotFinite)
	_, err = NewFixed(1).Format(math.Inf(1))
	assert.ErrorIs(t, err, ErrNotFinite)
	_, err = NewFixed(1).Format(1, "x")
	assert.Error(t, err)
}

func TestScaled(t *testing.T) {
	assert.InDelta(t, 1.94384, MetersPerSecondToKnots.Apply(1), 1e-5)
	assert.InDelta(t, 20, KelvinToCelsius.Apply(293.15), 1e-9)

	got, err := KelvinToCelsius.Format(293.15)
	require.NoError(t, err)
	assert.Equal(t, "20.0", got)

	assert.Equal(t, 5.0, Scaled{}.Apply(5), "zero factor is identity")
}

func TestSafe(t *testing.T) {
	failing := Func(func(float64, ...string) (string, error) { return "", errors.New("boom") })
	panicking := Func(func(float64, ...string) (string, error) { panic("bad") })
	empty := Func(func(float64, ...string) (string, error) { return "", nil })

	for name, f := range map[string]Formatter{"error": failing, "panic": panicking, "empty": empty} {
		t.Run(name, func(t *testing.T) {
			got, err := Safe(f, Fallback).Format(1)
			require.NoError(t, err)
			assert.Equal(t, Fallback, got)
		})
	}

	got, err := Safe(nil, Fallback).Format(math.NaN())
	require.NoError(t, err)
	assert.Equal(t, Fallback, got)

	got, _ = Safe(nil, Fallback).Format(2.5)
	assert.Equal(t, "2.5", got)
}
