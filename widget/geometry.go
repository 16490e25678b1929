// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image"

	"gioui.org/f32"
	"github.com/chewxy/math32"

	"github.com/kanti/fillingprogressbar/measure"
)

// Padding is the space around the disc, in pixels.
type Padding struct {
	Left, Top, Right, Bottom float32
}

// UniformPadding returns a Padding of v on every side.
func UniformPadding(v float32) Padding {
	return Padding{Left: v, Top: v, Right: v, Bottom: v}
}

// Geometry places the three circles.
type Geometry struct {
	Center f32.Point
	// OuterRadius is the radius of the fill disc.
	OuterRadius float32
	// StrokeRadius is the radius of the stroke centre line, inset so
	// the stroke stays inside the disc. It is never negative.
	StrokeRadius float32
}

// LayoutGeometry computes the circle placement for a disc of the given
// diameter whose bounds start at (paddingLeft, paddingTop).
func LayoutGeometry(diameter, strokeWidth, paddingLeft, paddingTop float32) Geometry {
	r := diameter / 2
	return Geometry{
		Center:       f32.Pt(paddingLeft+r, paddingTop+r),
		OuterRadius:  r,
		StrokeRadius: math32.Max(0, r-strokeWidth/2),
	}
}

// Geometry returns the circle placement for the current configuration.
func (f *FillingProgress) Geometry(p Padding) Geometry {
	return LayoutGeometry(f.diameter, f.strokeWidth, p.Left, p.Top)
}

// Measure returns the size of the widget under the parent's limits. The
// intrinsic size is the diameter plus padding, truncated to whole
// pixels.
func (f *FillingProgress) Measure(p Padding, w, h measure.Spec) image.Point {
	desired := image.Point{
		X: int(p.Left + f.diameter + p.Right),
		Y: int(p.Top + f.diameter + p.Bottom),
	}
	return measure.Measure(desired, w, h)
}
