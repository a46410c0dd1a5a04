package core

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is a 24-bit foreground color for a screen cell.
// The zero value means "terminal default".
type Color struct {
	R, G, B uint8
	set     bool
}

// RGB builds a color from its components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, set: true}
}

// Predefined colors for HUD and overlays.
var (
	ColorDefault     = Color{}
	ColorGray        = RGB(0x8a, 0x8a, 0x8a)
	ColorBrightWhite = RGB(0xff, 0xff, 0xff)
	ColorYellow      = RGB(0xff, 0xd7, 0x00)
)

// IsDefault reports whether the color is the terminal default.
func (c Color) IsDefault() bool {
	return !c.set
}

// Hex returns the color as "#rrggbb". The default color returns "".
func (c Color) Hex() string {
	if !c.set {
		return ""
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseHex parses "#rrggbb" or "rrggbb".
func ParseHex(s string) (Color, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return Color{}, fmt.Errorf("core: invalid color %q: want #rrggbb", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("core: invalid color %q: %w", s, err)
	}
	return RGB(uint8(v>>16), uint8(v>>8), uint8(v)), nil
}
