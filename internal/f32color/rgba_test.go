// SPDX-License-Identifier: Unlicense OR MIT

package f32color

import (
	"image/color"
	"testing"
)

func TestDarkenTruncates(t *testing.T) {
	tests := []struct {
		in, want color.NRGBA
	}{
		{color.NRGBA{R: 200, G: 200, B: 200, A: 0xff}, color.NRGBA{R: 180, G: 180, B: 180, A: 0xff}},
		// 255*0.9 = 229.5 truncates to 229.
		{color.NRGBA{R: 255, G: 255, B: 255, A: 0xff}, color.NRGBA{R: 229, G: 229, B: 229, A: 0xff}},
		{color.NRGBA{R: 1, G: 10, B: 0, A: 0x40}, color.NRGBA{R: 0, G: 9, B: 0, A: 0x40}},
	}
	for _, tc := range tests {
		if got := Darken(tc.in, .9); got != tc.want {
			t.Errorf("Darken(%v): got %v expected %v", tc.in, got, tc.want)
		}
	}
}

func TestDarkenKeepsAlpha(t *testing.T) {
	for alpha := 0; alpha <= 0xFF; alpha++ {
		in := color.NRGBA{R: 0x80, G: 0x40, B: 0x20, A: uint8(alpha)}
		if got := Darken(in, .5); got.A != uint8(alpha) {
			t.Errorf("%v: got alpha %v expected %v", in, got.A, alpha)
		}
	}
}

func TestScaleAlpha(t *testing.T) {
	tests := []struct {
		a      uint8
		factor float32
		want   uint8
	}{
		{0xff, 1, 0xff},
		{0xff, 0, 0},
		{0xff, .5, 127},
		{0xff, .38, 96},
		{200, .25, 50},
		{0xff, 2, 0xff},
		{0xff, -1, 0},
	}
	for _, tc := range tests {
		if got := ScaleAlpha(tc.a, tc.factor); got != tc.want {
			t.Errorf("ScaleAlpha(%d, %v): got %d expected %d", tc.a, tc.factor, got, tc.want)
		}
	}
}

func TestScaleAlphaChain(t *testing.T) {
	if got, exp := ScaleAlpha(0xff), uint8(0xff); got != exp {
		t.Errorf("no factors: got %d expected %d", got, exp)
	}
	p, o := float32(.5), float32(.38)
	if got, exp := ScaleAlpha(0xff, p, o), uint8(float32(0xff)*p*o); got != exp {
		t.Errorf("got %d expected %d", got, exp)
	}
}

func TestScaleAlphaNeverExceedsInput(t *testing.T) {
	for a := 0; a <= 0xFF; a++ {
		for i := 0; i <= 100; i++ {
			f := float32(i) / 100
			if got := ScaleAlpha(uint8(a), f); got > uint8(a) {
				t.Errorf("ScaleAlpha(%d, %v) = %d exceeds input", a, f, got)
			}
		}
	}
}

func TestARGB(t *testing.T) {
	if got, exp := ARGB(0x80112233), (color.NRGBA{R: 0x11, G: 0x22, B: 0x33, A: 0x80}); got != exp {
		t.Errorf("got %v expected %v", got, exp)
	}
	if got, exp := RGB(0x6200ee), (color.NRGBA{R: 0x62, G: 0x00, B: 0xee, A: 0xff}); got != exp {
		t.Errorf("got %v expected %v", got, exp)
	}
}

var sink color.NRGBA

func BenchmarkDarken(b *testing.B) {
	for i := 0; i < b.N; i++ {
		sink = Darken(color.NRGBA{R: byte(i), G: byte(i >> 8), B: byte(i >> 16), A: 0xFF}, .9)
	}
}
