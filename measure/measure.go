// SPDX-License-Identifier: Unlicense OR MIT

// Package measure resolves a widget's intrinsic size against the size
// limits imposed by its parent.
//
// A parent describes each axis with a Spec; its Mode tells how the
// widget's intrinsic size is treated on that axis.
package measure

import (
	"fmt"
	"image"

	"gioui.org/layout"
)

// Mode is the kind of limit a parent places on one axis.
type Mode uint8

const (
	// Unspecified lets the widget choose any size.
	Unspecified Mode = iota
	// Exact forces the size in Spec.Size.
	Exact
	// AtMost caps the size at Spec.Size.
	AtMost
)

// Unbounded is the smallest maximum constraint treated as "no limit"
// when converting from layout.Constraints. It matches the maximum
// layout.List passes along its scrolling axis.
const Unbounded = 1e6

// Spec is the limit on a single axis.
type Spec struct {
	Mode Mode
	Size int
}

// Resolve returns the size a widget with intrinsic size desired must
// take under s.
func Resolve(desired int, s Spec) int {
	switch s.Mode {
	case Exact:
		return s.Size
	case AtMost:
		if desired > s.Size {
			return s.Size
		}
		return desired
	default:
		return desired
	}
}

// Measure resolves both axes.
func Measure(desired image.Point, w, h Spec) image.Point {
	return image.Point{
		X: Resolve(desired.X, w),
		Y: Resolve(desired.Y, h),
	}
}

// FromConstraints converts Gio constraints to a Spec per axis.
func FromConstraints(cs layout.Constraints) (w, h Spec) {
	return axis(cs.Min.X, cs.Max.X), axis(cs.Min.Y, cs.Max.Y)
}

func axis(min, max int) Spec {
	switch {
	case max >= Unbounded:
		return Spec{Mode: Unspecified}
	case min == max:
		return Spec{Mode: Exact, Size: max}
	default:
		return Spec{Mode: AtMost, Size: max}
	}
}

// Constraints returns the Gio constraints equivalent to the specs.
func Constraints(w, h Spec) layout.Constraints {
	var cs layout.Constraints
	cs.Min.X, cs.Max.X = w.bounds()
	cs.Min.Y, cs.Max.Y = h.bounds()
	return cs
}

func (s Spec) bounds() (min, max int) {
	switch s.Mode {
	case Exact:
		return s.Size, s.Size
	case AtMost:
		return 0, s.Size
	default:
		return 0, Unbounded
	}
}

func (m Mode) String() string {
	switch m {
	case Unspecified:
		return "Unspecified"
	case Exact:
		return "Exact"
	case AtMost:
		return "AtMost"
	default:
		panic("unreachable")
	}
}

func (s Spec) String() string {
	if s.Mode == Unspecified {
		return s.Mode.String()
	}
	return fmt.Sprintf("%v(%d)", s.Mode, s.Size)
}
