package strip

import (
	"github.com/thomasin/tylers-leds/internal/palette"
)

const (
	MinBrightness = 0
	MaxBrightness = 255
)

// Strip is the pixel buffer of one physical (or simulated) LED run. The length never changes after New.
//
// A strip is not safe for concurrent use. Only one animation may be consumed against it at a time.
type Strip struct {
	pixels     []palette.Color
	brightness int
}

func New(length int, fill palette.Color, brightness int) *Strip {
	if length < 0 {
		length = 0
	}
	s := &Strip{pixels: make([]palette.Color, length)}
	s.Fill(fill)
	s.SetBrightness(brightness)
	return s
}

func (s *Strip) Len() int {
	return len(s.pixels)
}

// Pixel returns the color at i, or black when i is out of range.
func (s *Strip) Pixel(i int) palette.Color {
	if i < 0 || i >= len(s.pixels) {
		return palette.Black
	}
	return s.pixels[i]
}

// Pixels returns a copy of the buffer.
func (s *Strip) Pixels() []palette.Color {
	out := make([]palette.Color, len(s.pixels))
	copy(out, s.pixels)
	return out
}

func (s *Strip) Brightness() int {
	return s.brightness
}

// SetBrightness clamps b to [MinBrightness, MaxBrightness].
func (s *Strip) SetBrightness(b int) {
	s.brightness = min(max(b, MinBrightness), MaxBrightness)
}

// SetPixel drops writes outside of the buffer. Patterns are allowed to be longer than the strip.
func (s *Strip) SetPixel(i int, c palette.Color) {
	if i < 0 || i >= len(s.pixels) {
		return
	}
	s.pixels[i] = c
}

func (s *Strip) Fill(c palette.Color) {
	for i := range s.pixels {
		s.pixels[i] = c
	}
}

func (s *Strip) Clear() {
	s.Fill(palette.Black)
}
