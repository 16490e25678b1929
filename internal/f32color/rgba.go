// SPDX-License-Identifier: Unlicense OR MIT

// Package f32color holds the 8-bit colour arithmetic used by the
// filling progress widgets.
package f32color

import "image/color"

// Darken multiplies the red, green and blue channels of c by factor,
// truncating each product toward zero. Alpha is left unchanged.
func Darken(c color.NRGBA, factor float32) color.NRGBA {
	factor = clamp1(factor)
	return color.NRGBA{
		R: uint8(float32(c.R) * factor),
		G: uint8(float32(c.G) * factor),
		B: uint8(float32(c.B) * factor),
		A: c.A,
	}
}

// ScaleAlpha multiplies a by each factor in turn, left to right, and
// truncates the product toward zero. Factors are clamped to [0, 1].
func ScaleAlpha(a uint8, factors ...float32) uint8 {
	v := float32(a)
	for _, f := range factors {
		v *= clamp1(f)
	}
	return uint8(v)
}

// MulAlpha applies the alpha scale alpha/255 to c.
func MulAlpha(c color.NRGBA, alpha uint8) color.NRGBA {
	c.A = uint8(uint32(c.A) * uint32(alpha) / 0xFF)
	return c
}

// WithAlpha returns c with its alpha channel replaced by a.
func WithAlpha(c color.NRGBA, a uint8) color.NRGBA {
	c.A = a
	return c
}

// RGB returns an opaque colour from a 0xRRGGBB value.
func RGB(c uint32) color.NRGBA {
	return ARGB(0xff000000 | c)
}

// ARGB returns the colour of a 0xAARRGGBB value.
func ARGB(c uint32) color.NRGBA {
	return color.NRGBA{A: uint8(c >> 24), R: uint8(c >> 16), G: uint8(c >> 8), B: uint8(c)}
}

// clamp1 limits v to range [0..1].
func clamp1(v float32) float32 {
	if v >= 1 {
		return 1
	} else if v <= 0 {
		return 0
	} else {
		return v
	}
}
