// SPDX-License-Identifier: Unlicense OR MIT

// Package material draws filling progress bars with Gio in the
// Material style.
//
// The state of a bar lives in widget.FillingProgress; this package
// supplies the theme defaults and the drawing:
//
//	th := material.NewTheme()
//	bar, err := widget.New(th.Config(gtx.Metric, 0.5), widget.Callbacks{
//		NeedsRepaint: w.Invalidate,
//	})
//	...
//	material.FillingProgressBar(th, bar).Layout(gtx)
//
// Customization
//
// Theme-global parameters such as the palette and the default diameter
// are fields of Theme. Per bar, adjust the style before laying it out:
//
//	st := material.FillingProgressBar(th, bar)
//	st.Padding = layout.UniformInset(8)
//	st.Layout(gtx)
package material
