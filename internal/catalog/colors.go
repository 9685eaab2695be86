package catalog

import (
	"strings"

	"github.com/thomasin/tylers-leds/internal/palette"
)

// Colors are the named colors that definitions can refer to.
var Colors = map[string]palette.Color{
	"red":          palette.RGB(1.00, 0.00, 0.00),
	"lime":         palette.RGB(0.00, 1.00, 0.00),
	"blue":         palette.RGB(0.00, 0.00, 1.00),
	"purple":       palette.RGB(0.50, 0.00, 0.50),
	"yellow":       palette.RGB(0.80, 0.80, 0.00),
	"orange":       palette.RGB(1.00, 0.50, 0.00),
	"white":        palette.RGB(1.00, 1.00, 1.00),
	"gold":         palette.RGB(0.89, 0.67, 0.26),
	"spring-green": palette.RGB(0.00, 1.00, 0.20),
	"turquoise":    palette.RGB(0.25, 0.88, 0.82),
	"aqua":         palette.RGB(0.00, 1.00, 1.00),
	"pink":         palette.RGB(1.00, 0.00, 0.80),
	"black":        palette.RGB(0.00, 0.00, 0.00),
}

// ParseColor accepts one of the named Colors or a hex string.
func ParseColor(s string) (palette.Color, error) {
	if c, ok := Colors[strings.ToLower(strings.TrimSpace(s))]; ok {
		return c, nil
	}
	return palette.Parse(s)
}
