// SPDX-License-Identifier: Unlicense OR MIT

// Package attr reads filling progress bar attributes from TOML sheets.
//
// A sheet lists bars; every attribute of a bar is optional and falls
// back to a default configuration, usually the one of a material
// theme:
//
//	[[bar]]
//	name = "download"
//	diameter = 48.0            # dp
//	stroke_width = 4.0         # dp
//	back_stroke_color = "#88000000"
//	front_fill_color = "indigo"
//	disabled_color = "#000"
//	progress = 0.5
//	enabled = false
//
// Colours are #RGB, #RRGGBB, #AARRGGBB or an SVG colour name.
package attr

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"gioui.org/unit"
	"github.com/pelletier/go-toml/v2"

	"github.com/kanti/fillingprogressbar/widget"
)

// Sheet is a decoded attribute file.
type Sheet struct {
	Bars []Bar `toml:"bar"`
}

// Bar holds the attributes of one bar. Nil fields are unset.
type Bar struct {
	Name            string   `toml:"name"`
	Diameter        *unit.Dp `toml:"diameter"`
	StrokeWidth     *unit.Dp `toml:"stroke_width"`
	BackStrokeColor *Color   `toml:"back_stroke_color"`
	FrontFillColor  *Color   `toml:"front_fill_color"`
	DisabledColor   *Color   `toml:"disabled_color"`
	Progress        *float32 `toml:"progress"`
	Enabled         *bool    `toml:"enabled"`
}

// Decode reads a sheet from r. Unknown attributes are errors.
func Decode(r io.Reader) (*Sheet, error) {
	s := new(Sheet)
	if err := toml.NewDecoder(r).DisallowUnknownFields().Decode(s); err != nil {
		return nil, fmt.Errorf("attr: %w", err)
	}
	return s, nil
}

// Open reads the sheet in filename.
func Open(filename string) (*Sheet, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("attr: %w", err)
	}
	defer f.Close()
	return Decode(bufio.NewReader(f))
}

// Resolve returns def overridden by the attributes set in b, with
// lengths converted to pixels by m. The result is validated by
// widget.New, not here.
func (b Bar) Resolve(m unit.Metric, def widget.Config) widget.Config {
	cfg := def
	if b.Diameter != nil {
		cfg.Diameter = float32(m.Dp(*b.Diameter))
	}
	if b.StrokeWidth != nil {
		cfg.StrokeWidth = float32(m.Dp(*b.StrokeWidth))
	}
	if b.BackStrokeColor != nil {
		cfg.BackStrokeColor = b.BackStrokeColor.NRGBA()
	}
	if b.FrontFillColor != nil {
		cfg.FrontFillColor = b.FrontFillColor.NRGBA()
	}
	if b.DisabledColor != nil {
		cfg.DisabledColor = b.DisabledColor.NRGBA()
	}
	if b.Progress != nil {
		cfg.Progress = *b.Progress
	}
	if b.Enabled != nil {
		enabled := *b.Enabled
		cfg.Enabled = &enabled
	}
	return cfg
}

// New resolves every bar of the sheet against def and constructs its
// widget state. Each bar gets its own copy of cb.
func (s *Sheet) New(m unit.Metric, def widget.Config, cb widget.Callbacks) ([]*widget.FillingProgress, error) {
	bars := make([]*widget.FillingProgress, 0, len(s.Bars))
	for i, b := range s.Bars {
		fp, err := widget.New(b.Resolve(m, def), cb)
		if err != nil {
			return nil, fmt.Errorf("attr: bar %d %q: %w", i, b.Name, err)
		}
		bars = append(bars, fp)
	}
	return bars, nil
}
