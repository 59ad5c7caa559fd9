// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package layer

import (
	"image/color"
	"testing"

	"github.com/gogpu/gauge/surface"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tickKey struct {
	Width     float64 `json:"w"`
	Height    float64 `json:"h"`
	MajorStep float64 `json:"major"`
	MinorStep float64 `json:"minor"`
}

func newSurface(t *testing.T, w, h float64) *surface.Surface {
	t.Helper()
	s := surface.New(w, h, 1, nil)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestEnsureIdempotent(t *testing.T) {
	c, err := New(Back)
	require.NoError(t, err)
	s := newSurface(t, 30, 20)

	calls := 0
	rebuild := func(*surface.Surface, string) { calls++ }
	key := tickKey{Width: 30, Height: 20, MajorStep: 10, MinorStep: 2}

	built, err := c.Ensure(s, key, rebuild)
	require.NoError(t, err)
	assert.True(t, built)

	built, err = c.Ensure(s, key, rebuild)
	require.NoError(t, err)
	assert.False(t, built)
	assert.Equal(t, 1, calls)
}

func TestEnsureSingleFieldChange(t *testing.T) {
	c, err := New(Back)
	require.NoError(t, err)
	s := newSurface(t, 30, 20)

	calls := 0
	rebuild := func(*surface.Surface, string) { calls++ }
	key := tickKey{Width: 30, Height: 20, MajorStep: 10, MinorStep: 2}

	_, _ = c.Ensure(s, key, rebuild)
	key.MajorStep = 5
	_, _ = c.Ensure(s, key, rebuild)
	_, _ = c.Ensure(s, key, rebuild)
	assert.Equal(t, 2, calls)
	assert.Equal(t, 2, c.Rebuilds())
}

func TestEnsureOncePerNamedLayer(t *testing.T) {
	c, err := New(Back, Front)
	require.NoError(t, err)
	s := newSurface(t, 30, 20)

	var names []string
	_, err = c.Ensure(s, "k", func(dst *surface.Surface, name string) {
		names = append(names, name)
		w, h := dst.Size()
		assert.Equal(t, 30.0, w)
		assert.Equal(t, 20.0, h)
		assert.NotEqual(t, s.ID(), dst.ID())
	})
	require.NoError(t, err)
	assert.Equal(t, []string{Back, Front}, names)
}

func TestEnsureRebuildsOnResize(t *testing.T) {
	c, err := New(Back)
	require.NoError(t, err)
	s := newSurface(t, 30, 20)

	calls := 0
	rebuild := func(*surface.Surface, string) { calls++ }
	_, _ = c.Ensure(s, "same", rebuild)
	require.NoError(t, s.Resize(30, 20, 2))
	built, _ := c.Ensure(s, "same", rebuild)
	assert.True(t, built, "pixel size change forces a rebuild")
	assert.Equal(t, 2, calls)
}

func TestInvalidate(t *testing.T) {
	c, err := New(Back)
	require.NoError(t, err)
	s := newSurface(t, 30, 20)

	calls := 0
	rebuild := func(*surface.Surface, string) { calls++ }
	_, _ = c.Ensure(s, 1, rebuild)
	c.Invalidate()
	assert.False(t, c.Valid())
	_, _ = c.Ensure(s, 1, rebuild)
	assert.Equal(t, 2, calls)
}

func TestEnsureUnserializableKey(t *testing.T) {
	c, err := New(Back)
	require.NoError(t, err)
	s := newSurface(t, 10, 10)
	_, err = c.Ensure(s, func() {}, func(*surface.Surface, string) {})
	assert.Error(t, err)
}

func TestBlitPaintsLayers(t *testing.T) {
	c, err := New(Back, Front)
	require.NoError(t, err)
	s := newSurface(t, 20, 20)

	_, err = c.Ensure(s, "k", func(dst *surface.Surface, name string) {
		if name != Back {
			return
		}
		dst.SetColor(color.RGBA{B: 255, A: 255})
		dst.Rect(0, 0, 20, 20)
		_ = dst.Fill()
	})
	require.NoError(t, err)

	c.BlitLayer(s, Front)
	_, _, _, a := s.Image().At(10, 10).RGBA()
	assert.Zero(t, a, "front layer is empty")

	c.Blit(s)
	_, _, b, a := s.Image().At(10, 10).RGBA()
	assert.Equal(t, uint32(0xffff), a)
	assert.Equal(t, uint32(0xffff), b)
}

func TestEnsureOnlySubset(t *testing.T) {
	c, err := New(Back, Front)
	require.NoError(t, err)
	s := newSurface(t, 20, 20)

	var names []string
	rebuild := func(_ *surface.Surface, name string) { names = append(names, name) }
	built, err := c.EnsureOnly(s, "k", []string{Back}, rebuild)
	require.NoError(t, err)
	assert.True(t, built)
	assert.Equal(t, []string{Back}, names)
	assert.True(t, c.Built(Back))
	assert.False(t, c.Built(Front), "layers outside the subset get no buffer")

	built, _ = c.EnsureOnly(s, "k", []string{Back}, rebuild)
	assert.False(t, built)

	built, _ = c.Ensure(s, "k", rebuild)
	assert.True(t, built, "a different subset rebuilds")
	assert.True(t, c.Built(Front))

	_, err = c.EnsureOnly(s, "k", []string{"middle"}, rebuild)
	assert.Error(t, err)
}

func TestNewValidation(t *testing.T) {
	_, err := New()
	assert.ErrorIs(t, err, ErrNoLayers)
	_, err = New(Back, Back)
	assert.Error(t, err)
}

func TestRegistryPerSurface(t *testing.T) {
	r, err := NewRegistry(Back, Front)
	require.NoError(t, err)
	a := newSurface(t, 10, 10)
	b := newSurface(t, 10, 10)

	ca := r.For(a)
	assert.Same(t, ca, r.For(a))
	assert.NotSame(t, ca, r.For(b))
	assert.Equal(t, 2, r.Len())

	_, _ = ca.Ensure(a, "k", func(*surface.Surface, string) {})
	r.Invalidate(a.ID())
	assert.False(t, ca.Valid())

	r.Forget(a.ID())
	assert.Equal(t, 1, r.Len())
	r.Invalidate(a.ID())
}
