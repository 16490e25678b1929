// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"log"

	"gioui.org/font/gofont"
	"gioui.org/layout"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"golang.org/x/exp/shiny/materialdesign/icons"

	"github.com/kanti/fillingprogressbar/attr"
	fpb "github.com/kanti/fillingprogressbar/widget"
	fpbmaterial "github.com/kanti/fillingprogressbar/widget/material"
)

type (
	D = layout.Dimensions
	C = layout.Context
)

// progressSteps are the values shown in the static rows.
var progressSteps = []float32{1, .75, .5, .25, 0}

// step is the progress change of the +/- buttons.
const step = .05

// UI is the state of the demo.
type UI struct {
	th    *material.Theme
	fpbTh *fpbmaterial.Theme

	enabledRow  []*fpb.FillingProgress
	disabledRow []*fpb.FillingProgress
	sheetRow    []*fpb.FillingProgress

	live     *fpb.FillingProgress
	enabled  widget.Bool
	progress widget.Float
	inc, dec widget.Clickable
	addIcon  *widget.Icon
	subIcon  *widget.Icon
}

// newUI builds the bars with sizes resolved by m. The invalidate
// function is called whenever a bar needs a new frame and may be nil.
func newUI(m unit.Metric, invalidate func()) (*UI, error) {
	th := material.NewTheme()
	th.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()))
	u := &UI{
		th:    th,
		fpbTh: fpbmaterial.NewTheme(),
	}
	cb := fpb.Callbacks{NeedsRepaint: invalidate, NeedsRelayout: invalidate}

	var err error
	if u.addIcon, err = widget.NewIcon(icons.ContentAdd); err != nil {
		return nil, err
	}
	if u.subIcon, err = widget.NewIcon(icons.ContentRemove); err != nil {
		return nil, err
	}

	for _, enabled := range []bool{true, false} {
		for _, p := range progressSteps {
			cfg := u.fpbTh.Config(m, p)
			cfg.Enabled = &enabled
			bar, err := fpb.New(cfg, cb)
			if err != nil {
				return nil, err
			}
			if enabled {
				u.enabledRow = append(u.enabledRow, bar)
			} else {
				u.disabledRow = append(u.disabledRow, bar)
			}
		}
	}

	if *attrs != "" {
		sheet, err := attr.Open(*attrs)
		if err != nil {
			return nil, err
		}
		if u.sheetRow, err = sheet.New(m, u.fpbTh.Config(m, 0), cb); err != nil {
			return nil, err
		}
		log.Printf("loaded %d bars from %s", len(u.sheetRow), *attrs)
	}

	live := u.fpbTh.Config(m, .5)
	live.Diameter *= 2
	live.StrokeWidth *= 2
	if u.live, err = fpb.New(live, cb); err != nil {
		return nil, err
	}
	u.progress.Value = u.live.Progress()
	u.enabled.Value = true

	if *disable {
		u.enabled.Value = false
		u.live.SetEnabled(false)
		for _, b := range u.enabledRow {
			b.SetEnabled(false)
		}
		for _, b := range u.sheetRow {
			b.SetEnabled(false)
		}
	}
	return u, nil
}

func (u *UI) Layout(gtx C) D {
	u.update(gtx)
	if *disable {
		gtx = gtx.Disabled()
	}
	return layout.UniformInset(unit.Dp(16)).Layout(gtx, func(gtx C) D {
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
			layout.Rigid(material.H6(u.th, "Filling progress bar").Layout),
			layout.Rigid(u.row(u.enabledRow)),
			layout.Rigid(u.row(u.disabledRow)),
			layout.Rigid(u.row(u.sheetRow)),
			layout.Rigid(u.controls),
		)
	})
}

// update applies the control events to the live bar.
func (u *UI) update(gtx C) {
	if u.enabled.Update(gtx) {
		u.live.SetEnabled(u.enabled.Value)
	}
	if u.progress.Update(gtx) {
		u.setProgress(u.progress.Value)
	}
	if u.inc.Clicked(gtx) {
		u.setProgress(u.live.Progress() + step)
	}
	if u.dec.Clicked(gtx) {
		u.setProgress(u.live.Progress() - step)
	}
}

func (u *UI) setProgress(p float32) {
	if p > 1 {
		p = 1
	} else if p < 0 {
		p = 0
	}
	if err := u.live.SetProgress(p); err != nil {
		log.Printf("progress: %v", err)
		return
	}
	u.progress.Value = p
}

func (u *UI) row(bars []*fpb.FillingProgress) layout.Widget {
	return func(gtx C) D {
		children := make([]layout.FlexChild, len(bars))
		for i, b := range bars {
			children[i] = layout.Rigid(func(gtx C) D {
				return fpbmaterial.FillingProgressBar(u.fpbTh, b).Layout(gtx)
			})
		}
		return layout.Flex{Alignment: layout.Middle}.Layout(gtx, children...)
	}
}

func (u *UI) controls(gtx C) D {
	return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
		layout.Rigid(func(gtx C) D {
			return fpbmaterial.FillingProgressBar(u.fpbTh, u.live).Layout(gtx)
		}),
		layout.Rigid(material.IconButton(u.th, &u.dec, u.subIcon, "Decrease").Layout),
		layout.Flexed(1, func(gtx C) D {
			return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
				layout.Rigid(material.CheckBox(u.th, &u.enabled, "Enabled").Layout),
				layout.Rigid(material.Slider(u.th, &u.progress).Layout),
			)
		}),
		layout.Rigid(material.IconButton(u.th, &u.inc, u.addIcon, "Increase").Layout),
	)
}
