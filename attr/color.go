// SPDX-License-Identifier: Unlicense OR MIT

package attr

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"

	"github.com/kanti/fillingprogressbar/internal/f32color"
)

// Color is a colour attribute.
type Color color.NRGBA

func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA(c)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(text []byte) error {
	col, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = Color(col)
	return nil
}

// MarshalText implements encoding.TextMarshaler. It always writes the
// #AARRGGBB form.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(fmt.Sprintf("#%02x%02x%02x%02x", c.A, c.R, c.G, c.B)), nil
}

// ParseColor parses #RGB, #RRGGBB, #AARRGGBB or an SVG 1.1 colour name
// such as "indigo".
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		c, ok := colornames.Map[strings.ToLower(s)]
		if !ok {
			return color.NRGBA{}, fmt.Errorf("attr: unknown colour %q", s)
		}
		return color.NRGBA(c), nil
	}
	hex := s[1:]
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("attr: invalid colour %q: %w", s, err)
	}
	switch len(hex) {
	case 3:
		r, g, b := v>>8&0xf, v>>4&0xf, v&0xf
		return f32color.RGB(uint32(r*0x11<<16 | g*0x11<<8 | b*0x11)), nil
	case 6:
		return f32color.RGB(uint32(v)), nil
	case 8:
		return f32color.ARGB(uint32(v)), nil
	default:
		return color.NRGBA{}, fmt.Errorf("attr: invalid colour %q: want #RGB, #RRGGBB or #AARRGGBB", s)
	}
}
