// SPDX-License-Identifier: Unlicense OR MIT

package main

// A Gio program that shows filling progress bars in every state.

import (
	"bytes"
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"

	"gioui.org/app"
	"gioui.org/gpu/headless"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"
)

var (
	screenshot = flag.String("screenshot", "", "save a screenshot to a file and exit")
	disable    = flag.Bool("disable", false, "disable all widgets")
	attrs      = flag.String("attrs", "", "add the bars of a TOML attribute sheet")
)

func main() {
	flag.Parse()
	if *screenshot != "" {
		if err := saveScreenshot(*screenshot); err != nil {
			fmt.Fprintf(os.Stderr, "failed to save screenshot: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	go func() {
		w := new(app.Window)
		w.Option(
			app.Title("Filling progress bar"),
			app.Size(unit.Dp(480), unit.Dp(360)),
		)
		if err := loop(w); err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()
	app.Main()
}

func saveScreenshot(f string) error {
	const scale = 1.5
	sz := image.Point{X: 480 * scale, Y: 360 * scale}
	w, err := headless.NewWindow(sz.X, sz.Y)
	if err != nil {
		return err
	}
	defer w.Release()
	gtx := layout.Context{
		Ops: new(op.Ops),
		Metric: unit.Metric{
			PxPerDp: scale,
			PxPerSp: scale,
		},
		Constraints: layout.Exact(sz),
	}
	ui, err := newUI(gtx.Metric, nil)
	if err != nil {
		return err
	}
	ui.Layout(gtx)
	if err := w.Frame(gtx.Ops); err != nil {
		return err
	}
	img := image.NewRGBA(image.Rectangle{Max: sz})
	if err := w.Screenshot(img); err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return err
	}
	return os.WriteFile(f, buf.Bytes(), 0o666)
}

func loop(w *app.Window) error {
	var (
		ops op.Ops
		ui  *UI
	)
	for {
		switch e := w.Event().(type) {
		case app.DestroyEvent:
			return e.Err
		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)
			if ui == nil {
				// Bar sizes are resolved to pixels, so wait for the
				// first frame's metric.
				u, err := newUI(gtx.Metric, w.Invalidate)
				if err != nil {
					return err
				}
				ui = u
			}
			ui.Layout(gtx)
			e.Frame(gtx.Ops)
		}
	}
}
