// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package layer caches the static parts of a gauge in offscreen surfaces.
//
// Static content (rings, ticks, labels, sectors) changes only when the
// configuration or the container changes, so it is painted once into named
// offscreen layers and blitted onto the visible surface every frame. The
// live pointer can be drawn between two layers ("back" and "front") without
// invalidating either.
package layer

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/gogpu/gauge"
	"github.com/gogpu/gauge/surface"
)

// Conventional layer names.
const (
	Back  = "back"
	Front = "front"
)

// ErrNoLayers is returned by New when no layer names are given.
var ErrNoLayers = errors.New("layer: no layer names")

// RebuildFunc paints one named layer into dst. dst is freshly cleared and
// has the logical size and ratio of the visible surface.
type RebuildFunc func(dst *surface.Surface, name string)

// Cache holds the named offscreen layers of one visible surface.
// Cache is not safe for concurrent use.
type Cache struct {
	names  []string
	layers map[string]*surface.Surface
	key    string
	valid  bool
	pw, ph int

	rebuilds int
}

// New returns a cache with the given layer names, painted and blitted in
// that order.
func New(names ...string) (*Cache, error) {
	if len(names) == 0 {
		return nil, ErrNoLayers
	}
	seen := make(map[string]bool, len(names))
	for _, n := range names {
		if seen[n] {
			return nil, fmt.Errorf("layer: duplicate layer name %q", n)
		}
		seen[n] = true
	}
	return &Cache{
		names:  append([]string(nil), names...),
		layers: make(map[string]*surface.Surface, len(names)),
	}, nil
}

// Names returns the layer names in paint order.
func (c *Cache) Names() []string {
	return append([]string(nil), c.names...)
}

// Ensure rebuilds every layer when key differs from the key of the last
// rebuild, on the first call, when the pixel size of s changed, or after
// Invalidate. key must be JSON serializable. It reports whether a rebuild
// happened.
func (c *Cache) Ensure(s *surface.Surface, key any, rebuild RebuildFunc) (bool, error) {
	return c.EnsureOnly(s, key, c.names, rebuild)
}

// EnsureOnly is Ensure for a subset of the layers. Layers outside names
// are released and skipped by Blit. Changing the subset forces a rebuild.
func (c *Cache) EnsureOnly(s *surface.Surface, key any, names []string, rebuild RebuildFunc) (bool, error) {
	want := make(map[string]bool, len(names))
	for _, n := range names {
		if _, ok := c.index(n); !ok {
			return false, fmt.Errorf("layer: unknown layer %q", n)
		}
		want[n] = true
	}
	raw, err := json.Marshal(struct {
		Layers []string `json:"layers"`
		Key    any      `json:"key"`
	}{names, key})
	if err != nil {
		return false, fmt.Errorf("layer: key is not serializable: %w", err)
	}
	sig := string(raw)
	pw, ph := s.PixelSize()

	if c.valid && sig == c.key && pw == c.pw && ph == c.ph {
		return false, nil
	}

	reason := "key"
	switch {
	case !c.valid:
		reason = "invalid"
	case pw != c.pw || ph != c.ph:
		reason = "resize"
	}

	for _, name := range c.names {
		if old := c.layers[name]; old != nil {
			_ = old.Close()
			delete(c.layers, name)
		}
		if !want[name] {
			continue
		}
		dst := s.NewOffscreen()
		rebuild(dst, name)
		c.layers[name] = dst
	}
	c.key = sig
	c.valid = true
	c.pw, c.ph = pw, ph
	c.rebuilds++

	gauge.Logger().Debug("layer: rebuilt", "surface", s.ID().String(), "reason", reason, "layers", len(names))
	return true, nil
}

func (c *Cache) index(name string) (int, bool) {
	for i, n := range c.names {
		if n == name {
			return i, true
		}
	}
	return -1, false
}

// Built reports whether layer name holds a painted buffer.
func (c *Cache) Built(name string) bool { return c.layers[name] != nil }

// Blit draws every layer onto target in paint order.
func (c *Cache) Blit(target *surface.Surface) {
	for _, name := range c.names {
		c.BlitLayer(target, name)
	}
}

// BlitLayer draws one layer onto target. Unknown or unbuilt layers are
// skipped.
func (c *Cache) BlitLayer(target *surface.Surface, name string) {
	if l := c.layers[name]; l != nil {
		target.Blit(l)
	}
}

// Invalidate forces the next Ensure to rebuild regardless of the key.
func (c *Cache) Invalidate() {
	c.valid = false
}

// Valid reports whether the layers are built and not invalidated.
func (c *Cache) Valid() bool { return c.valid }

// Key returns the serialized key of the last rebuild.
func (c *Cache) Key() string { return c.key }

// Rebuilds returns how many times the layers were rebuilt.
func (c *Cache) Rebuilds() int { return c.rebuilds }

// Release closes every offscreen layer and invalidates the cache.
func (c *Cache) Release() {
	for name, l := range c.layers {
		_ = l.Close()
		delete(c.layers, name)
	}
	c.valid = false
}

// Registry maps visible surfaces to their caches. It is safe for
// concurrent use across surfaces.
type Registry struct {
	names []string

	mu     sync.Mutex
	caches map[surface.ID]*Cache
}

// NewRegistry returns a registry whose caches use the given layer names.
func NewRegistry(names ...string) (*Registry, error) {
	if _, err := New(names...); err != nil {
		return nil, err
	}
	return &Registry{
		names:  append([]string(nil), names...),
		caches: make(map[surface.ID]*Cache),
	}, nil
}

// For returns the cache of s, creating it on first use.
func (r *Registry) For(s *surface.Surface) *Cache {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.caches[s.ID()]
	if !ok {
		c, _ = New(r.names...)
		r.caches[s.ID()] = c
	}
	return c
}

// Invalidate marks the cache of id stale. It is a no-op for unknown ids.
func (r *Registry) Invalidate(id surface.ID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.caches[id]; ok {
		c.Invalidate()
	}
}

// InvalidateAll marks every cache stale.
func (r *Registry) InvalidateAll() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.caches {
		c.Invalidate()
	}
}

// Forget releases and removes the cache of id.
func (r *Registry) Forget(id surface.ID) {
	r.mu.Lock()
	c, ok := r.caches[id]
	delete(r.caches, id)
	r.mu.Unlock()
	if ok {
		c.Release()
	}
}

// Len returns the number of tracked surfaces.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.caches)
}
