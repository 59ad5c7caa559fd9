// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package textfit

import (
	"strconv"
	"strings"

	"github.com/gogpu/gauge/layout"
	"github.com/gogpu/gauge/surface"
)

// Key is everything that affects a text fit.
type Key struct {
	Mode    layout.Mode
	W, H    float64
	Caption string
	Unit    string
	Value   string
	Scale   float64
	Family  string
	Weights [3]surface.Weight

	// Extra carries caller-specific layout inputs, such as extra lines.
	Extra string
}

// String serializes k. Two keys with equal strings produce equal fits.
func (k Key) String() string {
	var b strings.Builder
	b.Grow(64 + len(k.Caption) + len(k.Unit) + len(k.Value) + len(k.Extra))
	const sep = '\x1f'
	b.WriteString(k.Mode.String())
	b.WriteByte(sep)
	b.WriteString(strconv.FormatFloat(k.W, 'g', -1, 64))
	b.WriteByte('x')
	b.WriteString(strconv.FormatFloat(k.H, 'g', -1, 64))
	for _, s := range []string{k.Caption, k.Unit, k.Value} {
		b.WriteByte(sep)
		b.WriteString(s)
	}
	b.WriteByte(sep)
	b.WriteString(strconv.FormatFloat(k.Scale, 'g', -1, 64))
	b.WriteByte(sep)
	b.WriteString(k.Family)
	for _, w := range k.Weights {
		b.WriteByte(sep)
		b.WriteString(strconv.Itoa(int(w)))
	}
	b.WriteByte(sep)
	b.WriteString(k.Extra)
	return b.String()
}

type cacheEntry[T any] struct {
	sig   string
	value T
}

// Cache memoizes one fit per layout mode. A lookup hits only when the
// serialized key matches the stored one exactly. Cache is not safe for
// concurrent use; each engine owns its caches.
type Cache[T any] struct {
	entries map[layout.Mode]cacheEntry[T]
	hits    int
	misses  int
}

// NewCache returns an empty cache.
func NewCache[T any]() *Cache[T] {
	return &Cache[T]{entries: make(map[layout.Mode]cacheEntry[T], len(layout.Modes))}
}

// Get returns the stored fit for k.
func (c *Cache[T]) Get(k Key) (T, bool) {
	e, ok := c.entries[k.Mode]
	if !ok || e.sig != k.String() {
		var zero T
		return zero, false
	}
	return e.value, true
}

// Put stores v for k, replacing the entry of k's mode.
func (c *Cache[T]) Put(k Key, v T) {
	c.entries[k.Mode] = cacheEntry[T]{sig: k.String(), value: v}
}

// Fit returns the cached fit for k or computes and stores it.
func (c *Cache[T]) Fit(k Key, compute func() T) T {
	sig := k.String()
	if e, ok := c.entries[k.Mode]; ok && e.sig == sig {
		c.hits++
		return e.value
	}
	c.misses++
	v := compute()
	c.entries[k.Mode] = cacheEntry[T]{sig: sig, value: v}
	return v
}

// Clear drops every entry.
func (c *Cache[T]) Clear() {
	clear(c.entries)
}

// ClearMode drops the entry of one mode.
func (c *Cache[T]) ClearMode(m layout.Mode) {
	delete(c.entries, m)
}

// Len returns the number of stored entries.
func (c *Cache[T]) Len() int { return len(c.entries) }

// Stats returns hit and miss counts of Fit.
func (c *Cache[T]) Stats() (hits, misses int) { return c.hits, c.misses }
