package neopixel

import (
	"github.com/thomasin/tylers-leds/internal/palette"
)

// rgbwWhite lights the dedicated white LED of RGBW strips along with the color ones.
const rgbwWhite = 0xffffffff

// Pack encodes a color the way the ws281x driver expects it. On RGBW strips pure white is sent to the white LED.
func Pack(c palette.Color, rgbw bool) uint32 {
	if rgbw && c == palette.White {
		return rgbwWhite
	}
	return palette.Packed(c)
}

// WithBrightness gets the same color, but with a lower or equal brightness, on a scale from 0-255 where 255 is the
// same as the input.
func WithBrightness(color uint32, brightness int) uint32 {
	if brightness >= 255 {
		return color
	}
	if brightness <= 0 {
		return 0
	}

	light := uint32(brightness)
	r, g, b := (color>>16)&0xff, (color>>8)&0xff, color&0xff

	red := r * light / 255
	green := g * light / 255
	blue := b * light / 255

	return (red << 16) | (green << 8) | blue
}
