// SPDX-License-Identifier: Unlicense OR MIT

package material

import (
	"image"

	"gioui.org/layout"
	"gioui.org/op/clip"

	"github.com/kanti/fillingprogressbar/measure"
	"github.com/kanti/fillingprogressbar/widget"
)

type FillingProgressBarStyle struct {
	Padding layout.Inset
	Bar     *widget.FillingProgress
}

func FillingProgressBar(th *Theme, bar *widget.FillingProgress) FillingProgressBarStyle {
	return FillingProgressBarStyle{
		Padding: th.Padding,
		Bar:     bar,
	}
}

func (s FillingProgressBarStyle) Layout(gtx layout.Context) layout.Dimensions {
	pad := widget.Padding{
		Left:   float32(gtx.Dp(s.Padding.Left)),
		Top:    float32(gtx.Dp(s.Padding.Top)),
		Right:  float32(gtx.Dp(s.Padding.Right)),
		Bottom: float32(gtx.Dp(s.Padding.Bottom)),
	}
	w, h := measure.FromConstraints(gtx.Constraints)
	sz := gtx.Constraints.Constrain(s.Bar.Measure(pad, w, h))

	defer clip.Rect(image.Rectangle{Max: sz}).Push(gtx.Ops).Pop()
	s.Bar.Draw(OpsCanvas{Ops: gtx.Ops}, s.Bar.Geometry(pad))
	return layout.Dimensions{Size: sz}
}
