package imageutil

import (
	"image/color"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

const Transparent = "transparent"

// Parses "#rgb", "#rrggbb" or "transparent". The boolean is false for unparsable strings.
func ParseColor(s string) (color.Color, bool) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, Transparent) {
		return color.Transparent, true
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return nil, false
	}
	return c.Clamped(), true
}

// Unparsable colors fall back to fallback.
func ParseColorOr(s string, fallback color.Color) color.Color {
	if c, ok := ParseColor(s); ok {
		return c
	}
	return fallback
}

func IsTransparent(s string) bool {
	c, ok := ParseColor(s)
	if !ok {
		return true
	}
	_, _, _, a := c.RGBA()
	return a == 0
}

// Normalized "#rrggbb" form, or false if unparsable.
func NormalizeHex(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, Transparent) {
		return Transparent, true
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return "", false
	}
	return c.Clamped().Hex(), true
}

func RgbaColor(c color.Color) color.RGBA {
	if u, ok := c.(color.RGBA); ok {
		return u
	}
	r, g, b, a := c.RGBA()
	return color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}
