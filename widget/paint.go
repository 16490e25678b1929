// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image/color"

	"github.com/kanti/fillingprogressbar/internal/f32color"
)

// Layer identifies one of the three circles of a FillingProgress.
type Layer uint8

const (
	// Fill is the disc beneath both strokes.
	Fill Layer = iota
	// BackStroke is the static track ring.
	BackStroke
	// FrontStroke is the progress tinted ring.
	FrontStroke

	layerCount
)

// PaintStyle tells whether a layer is filled or stroked.
type PaintStyle uint8

const (
	FillStyle PaintStyle = iota
	StrokeStyle
)

// Paint is the resolved drawing style of a layer. Color carries the
// final alpha.
type Paint struct {
	Color color.NRGBA
	Style PaintStyle
	// Width of the stroke. Zero for FillStyle.
	Width float32
}

// Paint returns the current paint of layer l.
func (f *FillingProgress) Paint(l Layer) Paint {
	return f.paints[l]
}

func (f *FillingProgress) updateAll() {
	f.updateFill()
	f.updateBackStroke()
	f.updateFrontStroke()
}

// Every update starts from the nominal colour so that alpha never
// compounds across calls.

func (f *FillingProgress) updateFill() {
	base := f.frontFillColor
	if !f.enabled {
		base = f.disabledColor
	}
	f.paints[Fill].Color = f32color.WithAlpha(base, f.progressAlpha(base.A))
}

func (f *FillingProgress) updateFrontStroke() {
	var base color.NRGBA
	if f.enabled {
		base = f32color.Darken(f.frontFillColor, LightModifier)
	} else {
		base = f.disabledColor
	}
	f.paints[FrontStroke].Color = f32color.WithAlpha(base, f.progressAlpha(base.A))
}

// The back stroke ignores progress: it only fades when disabled.
func (f *FillingProgress) updateBackStroke() {
	var c color.NRGBA
	if f.enabled {
		c = f.backStrokeColor
	} else {
		c = f32color.WithAlpha(f.disabledColor, f32color.ScaleAlpha(f.disabledColor.A, DisabledOpacity))
	}
	f.paints[BackStroke].Color = c
}

func (f *FillingProgress) updateStrokeWidth() {
	f.paints[BackStroke].Width = f.strokeWidth
	f.paints[FrontStroke].Width = f.strokeWidth
}

func (f *FillingProgress) progressAlpha(a uint8) uint8 {
	if f.enabled {
		return f32color.ScaleAlpha(a, f.progress)
	}
	return f32color.ScaleAlpha(a, f.progress, DisabledOpacity)
}

func (l Layer) String() string {
	switch l {
	case Fill:
		return "Fill"
	case BackStroke:
		return "BackStroke"
	case FrontStroke:
		return "FrontStroke"
	default:
		panic("unreachable")
	}
}
