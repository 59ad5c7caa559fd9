// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"sync"

	"github.com/gogpu/gg/cache"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Built-in font families.
const (
	FamilySans = "sans"
	FamilyMono = "mono"
)

// Weight is a CSS-style font weight.
type Weight int

const (
	WeightRegular Weight = 400
	WeightBold    Weight = 700
)

// DefaultFont is used until SetFont is called.
var DefaultFont = Font{Family: FamilySans, Weight: WeightRegular, Px: 12}

// ErrUnknownFamily is returned when a family has no registered weights.
var ErrUnknownFamily = errors.New("surface: unknown font family")

// Font selects a family, weight and pixel size.
type Font struct {
	Family string
	Weight Weight
	Px     float64
}

// WithPx returns a copy of f at size px.
func (f Font) WithPx(px float64) Font {
	f.Px = px
	return f
}

// faceCacheCapacity is the per-shard face capacity of a FontBook.
const faceCacheCapacity = 64

// FontBook resolves fonts to gg text faces and measures strings.
// It is safe for concurrent use.
type FontBook struct {
	mu       sync.RWMutex
	families map[string]map[Weight]*text.FontSource
	fallback string
	faces    *cache.ShardedCache[string, text.Face]
}

// NewFontBook returns a book preloaded with the Go fonts as "sans" and
// "mono" in regular and bold weights.
func NewFontBook() *FontBook {
	b := &FontBook{
		families: make(map[string]map[Weight]*text.FontSource),
		fallback: FamilySans,
		faces:    cache.NewSharded[string, text.Face](faceCacheCapacity, cache.StringHasher),
	}
	builtin := []struct {
		family string
		weight Weight
		ttf    []byte
	}{
		{FamilySans, WeightRegular, goregular.TTF},
		{FamilySans, WeightBold, gobold.TTF},
		{FamilyMono, WeightRegular, gomono.TTF},
		{FamilyMono, WeightBold, gomonobold.TTF},
	}
	for _, f := range builtin {
		if err := b.Register(f.family, f.weight, f.ttf); err != nil {
			// The embedded Go fonts always parse.
			panic(err)
		}
	}
	return b
}

// Register parses ttf and adds it under family and weight, replacing any
// previous source for that pair.
func (b *FontBook) Register(family string, weight Weight, ttf []byte) error {
	src, err := text.NewFontSource(ttf)
	if err != nil {
		return fmt.Errorf("surface: register %s/%d: %w", family, weight, err)
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.families[family] == nil {
		b.families[family] = make(map[Weight]*text.FontSource)
	}
	b.families[family][weight] = src
	b.faces.Clear()
	return nil
}

// HasFamily reports whether family has at least one registered weight.
func (b *FontBook) HasFamily(family string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.families[family]) > 0
}

// Face returns the face for f. Unknown families fall back to "sans" and a
// missing weight resolves to the nearest registered one.
func (b *FontBook) Face(f Font) text.Face {
	px := math.Max(1, math.Round(f.Px*4)/4)
	key := f.Family + "|" + strconv.Itoa(int(f.Weight)) + "|" + strconv.FormatFloat(px, 'f', 2, 64)
	return b.faces.GetOrCreate(key, func() text.Face {
		src := b.source(f.Family, f.Weight)
		if src == nil {
			return nil
		}
		return src.Face(px)
	})
}

func (b *FontBook) source(family string, weight Weight) *text.FontSource {
	b.mu.RLock()
	defer b.mu.RUnlock()
	weights := b.families[family]
	if len(weights) == 0 {
		weights = b.families[b.fallback]
	}
	if src, ok := weights[weight]; ok {
		return src
	}
	var best *text.FontSource
	bestDist := math.MaxInt
	for w, src := range weights {
		d := int(math.Abs(float64(w - weight)))
		if d < bestDist || (d == bestDist && w > weight) {
			best, bestDist = src, d
		}
	}
	return best
}

// Measure returns the advance width and ascent+descent height of s in f.
func (b *FontBook) Measure(s string, f Font) (width, height float64) {
	face := b.Face(f)
	if face == nil {
		return 0, 0
	}
	m := face.Metrics()
	if s == "" {
		return 0, m.Ascent + m.Descent
	}
	return face.Advance(s), m.Ascent + m.Descent
}
