package animation

import (
	"errors"
	"fmt"
	"iter"
	"time"

	"github.com/thomasin/tylers-leds/internal/palette"
	"github.com/thomasin/tylers-leds/internal/strip"
)

// Hold shows a single color at full brightness.
type Hold struct {
	color palette.Color
	hold  time.Duration
}

func NewHold(c palette.Color, hold time.Duration) (Hold, error) {
	if err := checkDuration("hold", hold); err != nil {
		return Hold{}, err
	}
	return Hold{color: c, hold: hold}, nil
}

func (h Hold) Animate(s *strip.Strip) iter.Seq[time.Duration] {
	return s.Hold(h.color, h.hold, HighBrightness)
}

// ColorSwipe holds a color, wipes another one over it pixel by pixel and finally holds a third.
type ColorSwipe struct {
	start    palette.Color
	startFor time.Duration
	swipe    palette.Color
	speed    time.Duration
	end      palette.Color
	endFor   time.Duration
}

func NewColorSwipe(start palette.Color, startFor time.Duration, swipe palette.Color, speed time.Duration, end palette.Color, endFor time.Duration) (ColorSwipe, error) {
	err := errors.Join(
		checkDuration("start", startFor),
		checkDuration("swipe", speed),
		checkDuration("end", endFor),
	)
	if err != nil {
		return ColorSwipe{}, err
	}

	return ColorSwipe{start: start, startFor: startFor, swipe: swipe, speed: speed, end: end, endFor: endFor}, nil
}

func (c ColorSwipe) Animate(s *strip.Strip) iter.Seq[time.Duration] {
	pixels := make([]palette.Color, s.Len())
	for i := range pixels {
		pixels[i] = c.swipe
	}

	return concat(
		s.Hold(c.start, c.startFor, HighBrightness),
		s.Wipe(pixels, c.speed),
		s.Hold(c.end, c.endFor, HighBrightness),
	)
}

// LowToHighBrightness holds a color dimmed, fades it up and then holds it bright.
type LowToHighBrightness struct {
	color    palette.Color
	start    int
	startFor time.Duration
	end      int
	endFor   time.Duration
}

func NewLowToHighBrightness(c palette.Color, start int, startFor time.Duration, end int, endFor time.Duration) (LowToHighBrightness, error) {
	err := errors.Join(
		checkBrightness("start", start),
		checkDuration("start", startFor),
		checkBrightness("end", end),
		checkDuration("end", endFor),
	)
	if err != nil {
		return LowToHighBrightness{}, err
	}
	if start > end {
		return LowToHighBrightness{}, fmt.Errorf("start brightness %d is above end brightness %d", start, end)
	}

	return LowToHighBrightness{color: c, start: start, startFor: startFor, end: end, endFor: endFor}, nil
}

func (l LowToHighBrightness) Animate(s *strip.Strip) iter.Seq[time.Duration] {
	return concat(
		s.Hold(l.color, l.startFor, l.start),
		s.FadeBrightness(l.start, l.end, LedChangeFast),
		s.Hold(l.color, l.endFor, l.end),
	)
}

// LowToHighFlicker shows a color and makes its brightness flicker between low and high.
type LowToHighFlicker struct {
	color palette.Color
	low   int
	high  int
}

func NewLowToHighFlicker(c palette.Color, low, high int) (LowToHighFlicker, error) {
	if err := errors.Join(checkBrightness("low", low), checkBrightness("high", high)); err != nil {
		return LowToHighFlicker{}, err
	}
	if low > high {
		return LowToHighFlicker{}, fmt.Errorf("low brightness %d is above high brightness %d", low, high)
	}

	return LowToHighFlicker{color: c, low: low, high: high}, nil
}

func (l LowToHighFlicker) Animate(s *strip.Strip) iter.Seq[time.Duration] {
	return concat(
		s.Hold(l.color, 0, l.low),
		s.FlickerBrightness(l.low, l.high, LedChangeFast),
	)
}
