// SPDX-License-Identifier: Unlicense OR MIT

package material

import (
	"image/color"

	"gioui.org/layout"
	"gioui.org/unit"

	"github.com/kanti/fillingprogressbar/internal/f32color"
	"github.com/kanti/fillingprogressbar/widget"
)

// Palette contains the minimal set of colors that a filling progress
// bar may need to draw itself.
type Palette struct {
	// Bg is the background color atop which content is currently being
	// drawn.
	Bg color.NRGBA
	// Fg is a color suitable for drawing on top of Bg.
	Fg color.NRGBA
	// ContrastBg is a color used to draw attention to active,
	// important, interactive widgets such as the filling disc.
	ContrastBg color.NRGBA
}

// Theme holds the defaults for new filling progress bars.
type Theme struct {
	Palette
	// Diameter of the disc.
	Diameter unit.Dp
	// StrokeWidth of both rings.
	StrokeWidth unit.Dp
	// Padding around the disc.
	Padding layout.Inset
}

// NewTheme constructs a theme with the default palette and sizes.
func NewTheme() *Theme {
	t := &Theme{
		Palette: Palette{
			Fg:         f32color.RGB(0x000000),
			Bg:         f32color.RGB(0xffffff),
			ContrastBg: f32color.RGB(0x3f51b5),
		},
		Diameter:    unit.Dp(40),
		StrokeWidth: unit.Dp(4),
		Padding:     layout.UniformInset(unit.Dp(4)),
	}
	return t
}

// BackStrokeColor is the default track colour.
func (t *Theme) BackStrokeColor() color.NRGBA {
	return f32color.MulAlpha(t.Fg, 0x88)
}

// Config returns a bar configuration with the theme defaults resolved
// to pixels with m.
func (t *Theme) Config(m unit.Metric, progress float32) widget.Config {
	return widget.Config{
		Diameter:        float32(m.Dp(t.Diameter)),
		StrokeWidth:     float32(m.Dp(t.StrokeWidth)),
		BackStrokeColor: t.BackStrokeColor(),
		FrontFillColor:  t.ContrastBg,
		DisabledColor:   t.Fg,
		Progress:        progress,
	}
}
