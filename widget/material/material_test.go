// SPDX-License-Identifier: Unlicense OR MIT

package material

import (
	"image"
	"testing"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"

	"github.com/kanti/fillingprogressbar/widget"
)

func newBar(t *testing.T, th *Theme, m unit.Metric) *widget.FillingProgress {
	t.Helper()
	bar, err := widget.New(th.Config(m, .5), widget.Callbacks{})
	if err != nil {
		t.Fatal(err)
	}
	return bar
}

func TestFillingProgressBarLayout(t *testing.T) {
	th := NewTheme()
	tests := []struct {
		name string
		cs   layout.Constraints
		want image.Point
	}{
		// 40dp disc plus 4dp padding on both sides.
		{"loose", layout.Constraints{Max: image.Pt(1000, 1000)}, image.Pt(48, 48)},
		{"exact", layout.Exact(image.Pt(300, 300)), image.Pt(300, 300)},
		{"at most", layout.Constraints{Max: image.Pt(20, 1000)}, image.Pt(20, 48)},
		{"min", layout.Constraints{Min: image.Pt(60, 0), Max: image.Pt(100, 100)}, image.Pt(60, 48)},
	}
	for _, tc := range tests {
		gtx := layout.Context{
			Ops:         new(op.Ops),
			Constraints: tc.cs,
		}
		dims := FillingProgressBar(th, newBar(t, th, gtx.Metric)).Layout(gtx)
		if got := dims.Size; got != tc.want {
			t.Errorf("%s: size is %v, expected %v", tc.name, got, tc.want)
		}
	}
}

func TestThemeConfigScales(t *testing.T) {
	th := NewTheme()
	cfg := th.Config(unit.Metric{PxPerDp: 2, PxPerSp: 2}, 1)
	if got, exp := cfg.Diameter, float32(80); got != exp {
		t.Errorf("diameter is %v, expected %v", got, exp)
	}
	if got, exp := cfg.StrokeWidth, float32(8); got != exp {
		t.Errorf("stroke width is %v, expected %v", got, exp)
	}
	if got, exp := cfg.FrontFillColor, th.ContrastBg; got != exp {
		t.Errorf("fill colour is %v, expected %v", got, exp)
	}
	if cfg.Enabled != nil {
		t.Error("theme config forces the enabled state")
	}
}
