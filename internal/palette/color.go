package palette

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a value type with channels in [0,1]. Two colors are equal when every channel matches exactly.
type Color = colorful.Color

var (
	Black = Color{}
	White = Color{R: 1, G: 1, B: 1}

	// Fallback is returned when a lookup has nothing to choose from.
	Fallback = Color{R: 1}
)

// RGB builds a color from normalized channels.
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Parse reads a "#rrggbb" or "#rgb" hex string.
func Parse(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Black, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return c, nil
}

// Packed returns the color as 0x00RRGGBB, as consumed by ws281x style drivers.
func Packed(c Color) uint32 {
	r, g, b := c.Clamped().RGB255()
	return uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}
