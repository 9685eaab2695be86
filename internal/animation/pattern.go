package animation

import (
	"fmt"
	"iter"
	"slices"
	"time"

	"github.com/thomasin/tylers-leds/internal/palette"
	"github.com/thomasin/tylers-leds/internal/strip"
)

// RainbowWipe splits the strip into one segment per color and reveals them pixel by pixel.
type RainbowWipe struct {
	colors []palette.Color
}

func NewRainbowWipe(colors []palette.Color) (RainbowWipe, error) {
	if len(colors) == 0 {
		return RainbowWipe{}, fmt.Errorf("a rainbow needs at least one color")
	}
	return RainbowWipe{colors: slices.Clone(colors)}, nil
}

func (r RainbowWipe) Animate(s *strip.Strip) iter.Seq[time.Duration] {
	return s.Wipe(palette.Rainbow(s.Len(), r.colors), LedChangeFast)
}

// RainbowCycle scrolls a rainbow along the strip for two full turns.
type RainbowCycle struct {
	colors []palette.Color
}

func NewRainbowCycle(colors []palette.Color) (RainbowCycle, error) {
	if len(colors) == 0 {
		return RainbowCycle{}, fmt.Errorf("a rainbow needs at least one color")
	}
	return RainbowCycle{colors: slices.Clone(colors)}, nil
}

func (r RainbowCycle) Animate(s *strip.Strip) iter.Seq[time.Duration] {
	return limit(s.Cycle(palette.Rainbow(s.Len(), r.colors), LedChangeFast), 2*s.Len())
}

// GradientCycle scrolls a gradient along the strip for two full turns.
type GradientCycle struct {
	from palette.Color
	to   palette.Color
}

func NewGradientCycle(from, to palette.Color) (GradientCycle, error) {
	return GradientCycle{from: from, to: to}, nil
}

func (g GradientCycle) Animate(s *strip.Strip) iter.Seq[time.Duration] {
	return limit(s.Cycle(palette.Gradient(s.Len(), g.from, g.to), LedChangeFast), 2*s.Len())
}

// ExpandingGradient grows the middle color out from the center of the strip, blending into the end color
// towards both ends. The end stops sit on the first and the last pixel.
type ExpandingGradient struct {
	end    palette.Color
	middle palette.Color
}

func NewExpandingGradient(end, middle palette.Color) (ExpandingGradient, error) {
	return ExpandingGradient{end: end, middle: middle}, nil
}

func (e ExpandingGradient) Animate(s *strip.Strip) iter.Seq[time.Duration] {
	return func(yield func(time.Duration) bool) {
		length := s.Len()
		for idx := 0; idx < (length+1)/2; idx++ {
			for d := range s.Paint(e.Frame(length, idx), LedChangeFast) {
				if !yield(d) {
					return
				}
			}
		}
	}
}

// Frame is the pattern painted at step idx on a strip of the given length.
func (e ExpandingGradient) Frame(length, idx int) []palette.Color {
	scale := palette.NewScale(
		palette.Stop{Color: e.end, Position: 0},
		palette.Stop{Color: e.middle, Position: float64(length/2 - idx)},
		palette.Stop{Color: e.middle, Position: float64(length/2 + idx)},
		palette.Stop{Color: e.end, Position: float64(length - 1)},
	)
	return scale.Between(0, length)
}
