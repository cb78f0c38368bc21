package charts

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is an 8-bit RGBA color. The zero value means "use the palette";
// build colors with RGB or RGBA so that transparent black stays distinct.
type Color struct {
	R, G, B, A uint8

	set bool
}

// IsZero reports whether no color was set.
func (c Color) IsZero() bool {
	return !c.set
}

// String formats the color the way plotly expects it.
func (c Color) String() string {
	if c.A == 255 {
		return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B, strconv.FormatFloat(float64(c.A)/255, 'f', -1, 64))
}

// RGB builds an opaque color.
func RGB(r, g, b uint8) Color {
	return RGBA(r, g, b, 255)
}

// RGBA builds a color with alpha a (0 transparent, 255 opaque).
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a, set: true}
}

// Palette is plotly's default color cycle.
var Palette = []Color{
	RGB(0x1f, 0x77, 0xb4),
	RGB(0xff, 0x7f, 0x0e),
	RGB(0x2c, 0xa0, 0x2c),
	RGB(0xd6, 0x27, 0x28),
	RGB(0x94, 0x67, 0xbd),
	RGB(0x8c, 0x56, 0x4b),
	RGB(0xe3, 0x77, 0xc2),
	RGB(0x7f, 0x7f, 0x7f),
	RGB(0xbc, 0xbd, 0x22),
	RGB(0x17, 0xbe, 0xcf),
}

// PaletteColor returns the i-th palette color, cycling.
func PaletteColor(i int) Color {
	return Palette[i%len(Palette)]
}

// ParseColor accepts "rgb(r, g, b)", "rgba(r, g, b, a)" and "#rrggbb".
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	switch {
	case s == "":
		return Color{}, nil
	case strings.HasPrefix(s, "#"):
		return parseHex(s)
	case strings.HasPrefix(s, "rgba(") && strings.HasSuffix(s, ")"):
		return parseFunc(s, s[len("rgba("):len(s)-1], 4)
	case strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")"):
		return parseFunc(s, s[len("rgb("):len(s)-1], 3)
	default:
		return Color{}, fmt.Errorf("invalid color: %q", s)
	}
}

func parseHex(s string) (Color, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return Color{}, fmt.Errorf("invalid color: %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color: %q", s)
	}
	return RGB(uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

func parseFunc(s, args string, n int) (Color, error) {
	parts := strings.Split(args, ",")
	if len(parts) != n {
		return Color{}, fmt.Errorf("invalid color: %q", s)
	}

	var rgb [3]uint8
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseUint(strings.TrimSpace(parts[i]), 10, 8)
		if err != nil {
			return Color{}, fmt.Errorf("invalid color: %q", s)
		}
		rgb[i] = uint8(v)
	}

	c := RGB(rgb[0], rgb[1], rgb[2])
	if n == 4 {
		a, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil || a < 0 || a > 1 {
			return Color{}, fmt.Errorf("invalid color: %q", s)
		}
		c.A = uint8(a*255 + 0.5)
	}
	return c, nil
}
