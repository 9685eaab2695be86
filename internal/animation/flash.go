package animation

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"time"

	"github.com/thomasin/tylers-leds/internal/palette"
	"github.com/thomasin/tylers-leds/internal/strip"
)

// Flash flashes a single color once.
type Flash struct {
	color palette.Color
}

func NewFlash(c palette.Color) (Flash, error) {
	return Flash{color: c}, nil
}

func (f Flash) Animate(s *strip.Strip) iter.Seq[time.Duration] {
	return s.Flash(f.color, 1, StripChangeSlow)
}

// FlashThenHold flashes one color a number of times and then holds another.
type FlashThenHold struct {
	from       palette.Color
	count      int
	to         palette.Color
	brightness int
	hold       time.Duration
}

func NewFlashThenHold(from palette.Color, count int, to palette.Color, brightness int, hold time.Duration) (FlashThenHold, error) {
	if count < 0 {
		return FlashThenHold{}, fmt.Errorf("flash count must not be negative, got %d", count)
	}
	if err := errors.Join(checkBrightness("hold", brightness), checkDuration("hold", hold)); err != nil {
		return FlashThenHold{}, err
	}

	return FlashThenHold{from: from, count: count, to: to, brightness: brightness, hold: hold}, nil
}

func (f FlashThenHold) Animate(s *strip.Strip) iter.Seq[time.Duration] {
	return concat(
		s.Flash(f.from, f.count, StripChangeSlow),
		s.Hold(f.to, f.hold, f.brightness),
	)
}

// FlickerThenHold flickers one color at low brightness and then holds another.
type FlickerThenHold struct {
	from       palette.Color
	flicker    time.Duration
	to         palette.Color
	brightness int
	hold       time.Duration
}

func NewFlickerThenHold(from palette.Color, flicker time.Duration, to palette.Color, brightness int, hold time.Duration) (FlickerThenHold, error) {
	err := errors.Join(
		checkDuration("flicker", flicker),
		checkBrightness("hold", brightness),
		checkDuration("hold", hold),
	)
	if err != nil {
		return FlickerThenHold{}, err
	}

	return FlickerThenHold{from: from, flicker: flicker, to: to, brightness: brightness, hold: hold}, nil
}

func (f FlickerThenHold) Animate(s *strip.Strip) iter.Seq[time.Duration] {
	return concat(
		s.Flicker(f.from, f.flicker, LedChangeFast),
		s.Hold(f.to, f.hold, f.brightness),
	)
}

// FlashFor flashes through the colors, one after the other, for the given time.
type FlashFor struct {
	colors []palette.Color
	total  time.Duration
}

func NewFlashFor(colors []palette.Color, total time.Duration) (FlashFor, error) {
	if len(colors) == 0 {
		return FlashFor{}, fmt.Errorf("at least one color is needed to flash")
	}
	if err := checkDuration("flash", total); err != nil {
		return FlashFor{}, err
	}

	return FlashFor{colors: slices.Clone(colors), total: total}, nil
}

func (f FlashFor) Animate(s *strip.Strip) iter.Seq[time.Duration] {
	return s.FlashFor(f.colors, f.total, LedChangeFast)
}
