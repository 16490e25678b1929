// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/chewxy/math32"
)

const (
	// LightModifier darkens the fill colour into the front stroke colour.
	LightModifier = 0.9
	// DisabledOpacity scales alpha while the widget is disabled.
	DisabledOpacity = 0.38
)

// ErrInvalidArgument is returned by FillingProgress setters and New
// when a value is out of range. Rejected values are never stored.
var ErrInvalidArgument = errors.New("invalid argument")

// Config is the initial configuration of a FillingProgress. Lengths
// are in pixels.
type Config struct {
	Diameter    float32
	StrokeWidth float32

	BackStrokeColor color.NRGBA
	FrontFillColor  color.NRGBA
	DisabledColor   color.NRGBA

	// Progress is in [0, 1].
	Progress float32
	// Enabled defaults to true when nil.
	Enabled *bool
}

// Callbacks connect a FillingProgress to its host. Nil callbacks are
// ignored. The host may coalesce calls and must not expect them to run
// a frame synchronously.
type Callbacks struct {
	// NeedsRepaint is called after a change that affects drawing.
	NeedsRepaint func()
	// NeedsRelayout is called after a change that affects the size.
	NeedsRelayout func()
}

// FillingProgress is the state of a filling progress bar. It is not
// safe for concurrent use; mutate it from the goroutine that draws it.
type FillingProgress struct {
	diameter    float32
	strokeWidth float32

	backStrokeColor color.NRGBA
	frontFillColor  color.NRGBA
	disabledColor   color.NRGBA

	progress float32
	enabled  bool

	paints [layerCount]Paint
	cb     Callbacks
}

// New validates cfg and returns the widget state for it.
func New(cfg Config, cb Callbacks) (*FillingProgress, error) {
	if err := checkProgress(cfg.Progress); err != nil {
		return nil, err
	}
	if err := checkDimensions(cfg.Diameter, cfg.StrokeWidth); err != nil {
		return nil, err
	}
	enabled := true
	if cfg.Enabled != nil {
		enabled = *cfg.Enabled
	}
	f := &FillingProgress{
		diameter:        cfg.Diameter,
		strokeWidth:     cfg.StrokeWidth,
		backStrokeColor: cfg.BackStrokeColor,
		frontFillColor:  cfg.FrontFillColor,
		disabledColor:   cfg.DisabledColor,
		progress:        cfg.Progress,
		enabled:         enabled,
		cb:              cb,
	}
	f.paints[Fill].Style = FillStyle
	f.paints[BackStroke].Style = StrokeStyle
	f.paints[FrontStroke].Style = StrokeStyle
	f.updateStrokeWidth()
	f.updateAll()
	return f, nil
}

// Config returns a snapshot of the current configuration.
func (f *FillingProgress) Config() Config {
	enabled := f.enabled
	return Config{
		Diameter:        f.diameter,
		StrokeWidth:     f.strokeWidth,
		BackStrokeColor: f.backStrokeColor,
		FrontFillColor:  f.frontFillColor,
		DisabledColor:   f.disabledColor,
		Progress:        f.progress,
		Enabled:         &enabled,
	}
}

// Diameter returns the disc diameter in pixels.
func (f *FillingProgress) Diameter() float32 { return f.diameter }

// SetDiameter changes the diameter. It must be positive and not
// smaller than the stroke width.
func (f *FillingProgress) SetDiameter(d float32) error {
	if err := checkDimensions(d, f.strokeWidth); err != nil {
		return err
	}
	f.diameter = d
	f.repaint()
	f.relayout()
	return nil
}

// StrokeWidth returns the width of both strokes in pixels.
func (f *FillingProgress) StrokeWidth() float32 { return f.strokeWidth }

// SetStrokeWidth changes the width of both strokes. It must be in
// [0, Diameter].
func (f *FillingProgress) SetStrokeWidth(w float32) error {
	if err := checkDimensions(f.diameter, w); err != nil {
		return err
	}
	f.strokeWidth = w
	f.updateStrokeWidth()
	f.repaint()
	return nil
}

// BackStrokeColor returns the configured back stroke colour.
func (f *FillingProgress) BackStrokeColor() color.NRGBA { return f.backStrokeColor }

// SetBackStrokeColor changes the back stroke colour. While disabled the
// change is stored but not shown.
func (f *FillingProgress) SetBackStrokeColor(c color.NRGBA) {
	f.backStrokeColor = c
	if f.enabled {
		f.updateBackStroke()
		f.repaint()
	}
}

// FrontFillColor returns the configured fill colour.
func (f *FillingProgress) FrontFillColor() color.NRGBA { return f.frontFillColor }

// SetFrontFillColor changes the fill colour and with it the front
// stroke colour. While disabled the change is stored but not shown.
func (f *FillingProgress) SetFrontFillColor(c color.NRGBA) {
	f.frontFillColor = c
	if f.enabled {
		f.updateFill()
		f.updateFrontStroke()
		f.repaint()
	}
}

// DisabledColor returns the configured disabled colour.
func (f *FillingProgress) DisabledColor() color.NRGBA { return f.disabledColor }

// SetDisabledColor changes the colour of all layers in the disabled
// state. While enabled the change is stored but not shown.
func (f *FillingProgress) SetDisabledColor(c color.NRGBA) {
	f.disabledColor = c
	if !f.enabled {
		f.updateAll()
		f.repaint()
	}
}

// Progress returns the current progress in [0, 1].
func (f *FillingProgress) Progress() float32 { return f.progress }

// SetProgress changes the progress. Values outside [0, 1] are rejected
// with ErrInvalidArgument.
func (f *FillingProgress) SetProgress(p float32) error {
	if err := checkProgress(p); err != nil {
		return err
	}
	f.progress = p
	f.updateFill()
	f.updateFrontStroke()
	f.repaint()
	return nil
}

// Enabled reports whether the widget is in the enabled state.
func (f *FillingProgress) Enabled() bool { return f.enabled }

// SetEnabled switches between the enabled and disabled state.
func (f *FillingProgress) SetEnabled(enabled bool) {
	if f.enabled == enabled {
		return
	}
	f.enabled = enabled
	f.updateAll()
	f.repaint()
}

func (f *FillingProgress) repaint() {
	if f.cb.NeedsRepaint != nil {
		f.cb.NeedsRepaint()
	}
}

func (f *FillingProgress) relayout() {
	if f.cb.NeedsRelayout != nil {
		f.cb.NeedsRelayout()
	}
}

func checkProgress(p float32) error {
	// The negated form also rejects NaN.
	if !(p >= 0 && p <= 1) {
		return fmt.Errorf("widget: progress cannot be greater than 1 or less than 0, actual = %v: %w", p, ErrInvalidArgument)
	}
	return nil
}

func checkDimensions(diameter, strokeWidth float32) error {
	switch {
	case !(diameter > 0) || math32.IsInf(diameter, 1):
		return fmt.Errorf("widget: diameter must be positive and finite, actual = %v: %w", diameter, ErrInvalidArgument)
	case !(strokeWidth >= 0):
		return fmt.Errorf("widget: stroke width cannot be negative, actual = %v: %w", strokeWidth, ErrInvalidArgument)
	case strokeWidth > diameter:
		return fmt.Errorf("widget: stroke width %v exceeds diameter %v: %w", strokeWidth, diameter, ErrInvalidArgument)
	}
	return nil
}
