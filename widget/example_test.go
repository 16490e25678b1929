// SPDX-License-Identifier: Unlicense OR MIT

package widget_test

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/kanti/fillingprogressbar/widget"
)

func ExampleFillingProgress() {
	fp, err := widget.New(widget.Config{
		Diameter:        48,
		StrokeWidth:     4,
		BackStrokeColor: color.NRGBA{R: 0xe0, G: 0xe0, B: 0xe0, A: 0xff},
		FrontFillColor:  color.NRGBA{R: 200, G: 200, B: 200, A: 0xff},
		DisabledColor:   color.NRGBA{A: 0xff},
		Progress:        .5,
	}, widget.Callbacks{
		NeedsRepaint:  func() { fmt.Println("repaint") },
		NeedsRelayout: func() { fmt.Println("relayout") },
	})
	if err != nil {
		panic(err)
	}
	fmt.Println(fp.Paint(widget.Fill).Color.A, fp.Paint(widget.FrontStroke).Color)

	err = fp.SetProgress(1.5)
	fmt.Println(errors.Is(err, widget.ErrInvalidArgument), fp.Progress())

	if err := fp.SetDiameter(64); err != nil {
		panic(err)
	}

	// Output:
	// 127 {180 180 180 127}
	// true 0.5
	// repaint
	// relayout
}
