// SPDX-License-Identifier: Unlicense OR MIT

package material

import (
	"math"

	"gioui.org/f32"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"

	"github.com/kanti/fillingprogressbar/widget"
)

// OpsCanvas draws circles into an operation list.
type OpsCanvas struct {
	Ops *op.Ops
}

// DrawCircle fills or strokes a circle according to p. Strokes of zero
// width draw nothing.
func (c OpsCanvas) DrawCircle(center f32.Point, radius float32, p widget.Paint) {
	path := circle(c.Ops, center, radius)
	switch p.Style {
	case widget.StrokeStyle:
		if p.Width <= 0 {
			return
		}
		paint.FillShape(c.Ops, p.Color, clip.Stroke{Path: path, Width: p.Width}.Op())
	default:
		paint.FillShape(c.Ops, p.Color, clip.Outline{Path: path}.Op())
	}
}

// circle returns the path of a circle approximated by four cubic
// Béziers. The clip.Ellipse shape only accepts integer bounds, which
// would shift the half-pixel centres of odd diameters.
func circle(ops *op.Ops, center f32.Point, r float32) clip.PathSpec {
	var p clip.Path
	p.Begin(ops)

	// https://pomax.github.io/bezierinfo/#circles_cubic.
	const q = 4 * (math.Sqrt2 - 1) / 3

	curve := r * q
	top := f32.Point{X: center.X, Y: center.Y - r}

	p.MoveTo(top)
	p.CubeTo(
		f32.Point{X: center.X + curve, Y: center.Y - r},
		f32.Point{X: center.X + r, Y: center.Y - curve},
		f32.Point{X: center.X + r, Y: center.Y},
	)
	p.CubeTo(
		f32.Point{X: center.X + r, Y: center.Y + curve},
		f32.Point{X: center.X + curve, Y: center.Y + r},
		f32.Point{X: center.X, Y: center.Y + r},
	)
	p.CubeTo(
		f32.Point{X: center.X - curve, Y: center.Y + r},
		f32.Point{X: center.X - r, Y: center.Y + curve},
		f32.Point{X: center.X - r, Y: center.Y},
	)
	p.CubeTo(
		f32.Point{X: center.X - r, Y: center.Y - curve},
		f32.Point{X: center.X - curve, Y: center.Y - r},
		top,
	)
	p.Close()
	return p.End()
}
