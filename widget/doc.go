// SPDX-License-Identifier: Unlicense OR MIT

// Package widget implements the state of the filling progress bar: a
// disc whose fill opacity follows a progress value, ringed by a static
// back stroke and a darker front stroke. FillingProgress owns the
// configuration, derives the paint for each layer and issues the
// draw calls. Theme packages such as `widget/material` supply the
// Gio canvas and defaults.
package widget
