// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package drawing

import (
	"image/color"

	"github.com/gogpu/gauge/surface"
	"github.com/gogpu/gauge/textfit"
)

// NoDataText is the overlay message for a disconnected source.
const NoDataText = "NO DATA"

// TextColors colors the roles of a text block.
type TextColors struct {
	Caption color.Color
	Value   color.Color
	Unit    color.Color
}

func (c TextColors) of(r textfit.Role) color.Color {
	switch r {
	case textfit.RoleCaption:
		return c.Caption
	case textfit.RoleUnit:
		return c.Unit
	default:
		return c.Value
	}
}

// Text draws the items of a laid out block.
func Text(s *surface.Surface, b textfit.Block, colors TextColors) {
	for _, it := range b.Items {
		if it.Text == "" {
			continue
		}
		s.SetColor(colors.of(it.Role))
		s.SetFont(it.Font)
		s.FillText(it.Text, it.X, it.Y, it.Align, it.Baseline)
	}
}

// NoData dims the whole surface with overlay and draws NoDataText
// centered, sized to at most half the surface height.
func NoData(s *surface.Surface, font surface.Font, overlay, fg color.Color) error {
	w, h := s.Size()
	s.SetColor(overlay)
	s.Rect(0, 0, w, h)
	if err := s.Fill(); err != nil {
		return err
	}
	box := textfit.Box{W: w * 0.8, H: h * 0.5}
	line := textfit.FitSingleLine(s.Fonts(), NoDataText, box, font, textfit.WithMaxPx(h*0.25))
	s.SetColor(fg)
	s.SetFont(font.WithPx(line.Px))
	s.FillText(NoDataText, w/2, h/2, surface.AlignCenter, surface.BaselineMiddle)
	return nil
}
