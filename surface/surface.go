// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

// Errors returned by Surface operations.
var (
	// ErrClosed is returned when drawing into a closed surface.
	ErrClosed = errors.New("surface: closed")

	// ErrInvalidDimensions is returned for non-finite sizes or ratios.
	ErrInvalidDimensions = errors.New("surface: invalid dimensions")
)

// arcStep is the flattening step for arcs, in radians.
const arcStep = math.Pi / 90

// LineCap is the shape of stroke endpoints.
type LineCap uint8

const (
	// CapButt ends a stroke flat at its endpoint.
	CapButt LineCap = iota

	// CapRound ends a stroke with a half circle.
	CapRound

	// CapSquare extends a stroke by half its width.
	CapSquare
)

// Align is the horizontal anchor of FillText.
type Align uint8

const (
	// AlignLeft starts the text at x.
	AlignLeft Align = iota

	// AlignCenter centers the text on x.
	AlignCenter

	// AlignRight ends the text at x.
	AlignRight
)

// Baseline is the vertical anchor of FillText.
type Baseline uint8

const (
	// BaselineAlphabetic places the glyph baseline at y.
	BaselineAlphabetic Baseline = iota

	// BaselineTop places the ascent line at y.
	BaselineTop

	// BaselineMiddle centers ascent+descent on y.
	BaselineMiddle

	// BaselineBottom places the descent line at y.
	BaselineBottom
)

// Surface is a gg backing buffer addressed in logical coordinates.
type Surface struct {
	id     ID
	dc     *gg.Context
	fonts  *FontBook
	width  float64
	height float64
	ratio  float64

	font     Font
	face     text.Face
	hasPoint bool
	closed   bool
}

// New creates a surface of the given logical size. The backing buffer is
// width*ratio by height*ratio pixels, at least 1x1. A non-positive ratio
// is treated as 1.
func New(width, height, ratio float64, fonts *FontBook) *Surface {
	if fonts == nil {
		fonts = NewFontBook()
	}
	width, height, ratio = sanitize(width, height, ratio)
	pw, ph := pixelSize(width, height, ratio)
	return &Surface{
		id:     NewID(),
		dc:     gg.NewContext(pw, ph),
		fonts:  fonts,
		width:  width,
		height: height,
		ratio:  ratio,
		font:   DefaultFont,
	}
}

// ID returns the surface identity.
func (s *Surface) ID() ID { return s.id }

// Size returns the logical width and height.
func (s *Surface) Size() (width, height float64) { return s.width, s.height }

// PixelSize returns the backing buffer dimensions.
func (s *Surface) PixelSize() (width, height int) { return s.dc.Width(), s.dc.Height() }

// Ratio returns the device pixel ratio.
func (s *Surface) Ratio() float64 { return s.ratio }

// Fonts returns the font book shared by this surface.
func (s *Surface) Fonts() *FontBook { return s.fonts }

// Context returns the underlying gg context. Coordinates on it are pixels.
func (s *Surface) Context() *gg.Context { return s.dc }

// Resize changes the logical size and pixel ratio. The backing buffer is
// reallocated when its pixel size changes, which discards its contents.
func (s *Surface) Resize(width, height, ratio float64) error {
	if s.closed {
		return ErrClosed
	}
	if math.IsNaN(width) || math.IsNaN(height) || math.IsNaN(ratio) {
		return fmt.Errorf("%w: width=%v, height=%v, ratio=%v", ErrInvalidDimensions, width, height, ratio)
	}
	width, height, ratio = sanitize(width, height, ratio)
	pw, ph := pixelSize(width, height, ratio)
	if err := s.dc.Resize(pw, ph); err != nil {
		return fmt.Errorf("surface: resize failed: %w", err)
	}
	s.width, s.height, s.ratio = width, height, ratio
	s.face = nil
	s.hasPoint = false
	return nil
}

// NewOffscreen returns a transparent surface with the same logical size,
// ratio and font book. It has its own identity.
func (s *Surface) NewOffscreen() *Surface {
	return New(s.width, s.height, s.ratio, s.fonts)
}

// Clear resets every pixel to transparent.
func (s *Surface) Clear() {
	s.dc.Clear()
	s.hasPoint = false
}

// ClearWithColor fills every pixel with c.
func (s *Surface) ClearWithColor(c color.Color) {
	s.dc.ClearWithColor(gg.FromColor(c))
	s.hasPoint = false
}

// SetColor sets the fill, stroke and text color.
func (s *Surface) SetColor(c color.Color) {
	s.dc.SetColor(c)
}

// SetLineWidth sets the stroke width in logical units.
func (s *Surface) SetLineWidth(w float64) {
	s.dc.SetLineWidth(w * s.ratio)
}

// SetLineCap sets the stroke endpoint shape.
func (s *Surface) SetLineCap(c LineCap) {
	switch c {
	case CapRound:
		s.dc.SetLineCap(gg.LineCapRound)
	case CapSquare:
		s.dc.SetLineCap(gg.LineCapSquare)
	default:
		s.dc.SetLineCap(gg.LineCapButt)
	}
}

// MoveTo starts a new subpath.
func (s *Surface) MoveTo(x, y float64) {
	s.dc.MoveTo(x*s.ratio, y*s.ratio)
	s.hasPoint = true
}

// LineTo adds a line segment, starting a subpath if there is none.
func (s *Surface) LineTo(x, y float64) {
	if !s.hasPoint {
		s.MoveTo(x, y)
		return
	}
	s.dc.LineTo(x*s.ratio, y*s.ratio)
}

// Arc adds a circular arc from angle a0 to a1 (canvas radians, y down).
// The arc runs in whichever direction a1-a0 points, so both clockwise and
// counter-clockwise arcs can be chained into one closed band. It connects
// to the current point with a straight line.
func (s *Surface) Arc(cx, cy, r, a0, a1 float64) {
	if r < 0 {
		r = 0
	}
	sweep := a1 - a0
	n := int(math.Ceil(math.Abs(sweep) / arcStep))
	if n < 1 {
		n = 1
	}
	for i := 0; i <= n; i++ {
		a := a0 + sweep*float64(i)/float64(n)
		s.LineTo(cx+r*math.Cos(a), cy+r*math.Sin(a))
	}
}

// ClosePath closes the current subpath.
func (s *Surface) ClosePath() {
	if s.hasPoint {
		s.dc.ClosePath()
	}
	s.hasPoint = false
}

// Circle adds a full circle as its own subpath.
func (s *Surface) Circle(cx, cy, r float64) {
	s.dc.DrawCircle(cx*s.ratio, cy*s.ratio, math.Max(0, r)*s.ratio)
	s.hasPoint = false
}

// Rect adds an axis-aligned rectangle.
func (s *Surface) Rect(x, y, w, h float64) {
	s.MoveTo(x, y)
	s.LineTo(x+w, y)
	s.LineTo(x+w, y+h)
	s.LineTo(x, y+h)
	s.ClosePath()
}

// RoundedRect adds a rectangle with corner radius r.
func (s *Surface) RoundedRect(x, y, w, h, r float64) {
	r = math.Max(0, math.Min(r, math.Min(w, h)/2))
	if r == 0 {
		s.Rect(x, y, w, h)
		return
	}
	s.MoveTo(x+r, y)
	s.Arc(x+w-r, y+r, r, -math.Pi/2, 0)
	s.Arc(x+w-r, y+h-r, r, 0, math.Pi/2)
	s.Arc(x+r, y+h-r, r, math.Pi/2, math.Pi)
	s.Arc(x+r, y+r, r, math.Pi, 3*math.Pi/2)
	s.ClosePath()
}

// Fill fills and clears the current path.
func (s *Surface) Fill() error {
	if s.closed {
		return ErrClosed
	}
	s.hasPoint = false
	return s.dc.Fill()
}

// Stroke strokes and clears the current path.
func (s *Surface) Stroke() error {
	if s.closed {
		return ErrClosed
	}
	s.hasPoint = false
	return s.dc.Stroke()
}

// SetFont selects the font for MeasureText and FillText.
func (s *Surface) SetFont(f Font) {
	s.font = f
	s.face = nil
}

// Font returns the current font.
func (s *Surface) Font() Font { return s.font }

func (s *Surface) pixelFace() text.Face {
	if s.face == nil {
		f := s.font
		f.Px *= s.ratio
		s.face = s.fonts.Face(f)
	}
	return s.face
}

// MeasureText returns the advance width and the ascent+descent height of
// str in the current font, in logical units.
func (s *Surface) MeasureText(str string) (width, height float64) {
	return s.fonts.Measure(str, s.font)
}

// FillText draws str anchored at (x, y).
func (s *Surface) FillText(str string, x, y float64, align Align, baseline Baseline) {
	if str == "" || s.closed {
		return
	}
	face := s.pixelFace()
	if face == nil {
		return
	}
	m := face.Metrics()
	px, py := x*s.ratio, y*s.ratio

	switch align {
	case AlignCenter:
		px -= face.Advance(str) / 2
	case AlignRight:
		px -= face.Advance(str)
	}
	switch baseline {
	case BaselineTop:
		py += m.Ascent
	case BaselineMiddle:
		py += (m.Ascent - m.Descent) / 2
	case BaselineBottom:
		py -= m.Descent
	}

	s.dc.SetFont(face)
	s.dc.DrawString(str, px, py)
}

// Blit copies src onto s, scaling src's buffer to s's logical size.
func (s *Surface) Blit(src *Surface) {
	if src == nil || s.closed || src.closed {
		return
	}
	pw, ph := s.PixelSize()
	s.dc.DrawImageEx(gg.ImageBufFromImage(src.dc.Image()), gg.DrawImageOptions{
		DstWidth:      float64(pw),
		DstHeight:     float64(ph),
		Interpolation: gg.InterpBilinear,
		Opacity:       1,
		BlendMode:     gg.BlendNormal,
	})
}

// DrawSurface draws src unscaled with its top-left corner at logical
// (x, y). Used to compose rendered cells into a larger sheet.
func (s *Surface) DrawSurface(src *Surface, x, y float64) {
	if src == nil || s.closed || src.closed {
		return
	}
	pw, ph := src.PixelSize()
	s.dc.DrawImageEx(gg.ImageBufFromImage(src.dc.Image()), gg.DrawImageOptions{
		X:             x * s.ratio,
		Y:             y * s.ratio,
		DstWidth:      float64(pw),
		DstHeight:     float64(ph),
		Interpolation: gg.InterpNearest,
		Opacity:       1,
		BlendMode:     gg.BlendNormal,
	})
}

// Image returns the backing buffer.
func (s *Surface) Image() image.Image { return s.dc.Image() }

// EncodePNG writes the backing buffer as PNG.
func (s *Surface) EncodePNG(w io.Writer) error { return s.dc.EncodePNG(w) }

// SavePNG writes the backing buffer to a PNG file.
func (s *Surface) SavePNG(path string) error { return s.dc.SavePNG(path) }

// Close releases the backing buffer. Close is idempotent.
func (s *Surface) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	return s.dc.Close()
}

func sanitize(width, height, ratio float64) (float64, float64, float64) {
	if !(width >= 1) || math.IsInf(width, 0) {
		width = 1
	}
	if !(height >= 1) || math.IsInf(height, 0) {
		height = 1
	}
	if !(ratio > 0) || math.IsInf(ratio, 0) {
		ratio = 1
	}
	return width, height, ratio
}

func pixelSize(width, height, ratio float64) (int, int) {
	pw := int(math.Round(width * ratio))
	ph := int(math.Round(height * ratio))
	return max(pw, 1), max(ph, 1)
}
