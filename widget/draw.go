// SPDX-License-Identifier: Unlicense OR MIT

package widget

import "gioui.org/f32"

// Canvas draws circles.
type Canvas interface {
	DrawCircle(center f32.Point, radius float32, p Paint)
}

// Draw issues the fill, back stroke and front stroke circles to c, in
// that order. The back stroke goes first so the front stroke's edge is
// never covered.
func (f *FillingProgress) Draw(c Canvas, g Geometry) {
	c.DrawCircle(g.Center, g.OuterRadius, f.paints[Fill])
	c.DrawCircle(g.Center, g.StrokeRadius, f.paints[BackStroke])
	c.DrawCircle(g.Center, g.StrokeRadius, f.paints[FrontStroke])
}
