package strip

import (
	"iter"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/thomasin/tylers-leds/internal/palette"
)

const (
	flickerBrightness = 50
	brightnessStep    = 10

	// flickerBrightnessPeriod is how long FlickerBrightness keeps oscillating.
	flickerBrightnessPeriod = 10 * time.Second
)

func empty(yield func(time.Duration) bool) {}

// flash shows c for one wait and then black for one wait.
func (s *Strip) flash(c palette.Color, wait time.Duration, yield func(time.Duration) bool) bool {
	s.Fill(c)
	if !yield(wait) {
		return false
	}
	s.Clear()
	return yield(wait)
}

// Flash turns the brightness all the way up and flashes c count times.
func (s *Strip) Flash(c palette.Color, count int, wait time.Duration) iter.Seq[time.Duration] {
	return func(yield func(time.Duration) bool) {
		s.SetBrightness(MaxBrightness)
		for i := 0; i < count; i++ {
			if !s.flash(c, wait, yield) {
				return
			}
		}
	}
}

// FlashFor flashes the colors round robin until total has elapsed, counted in whole flashes of wait.
func (s *Strip) FlashFor(colors []palette.Color, total, wait time.Duration) iter.Seq[time.Duration] {
	if len(colors) == 0 || wait <= 0 {
		log.Warnf("Not flashing %d colors with a wait of %v", len(colors), wait)
		return empty
	}

	return func(yield func(time.Duration) bool) {
		s.SetBrightness(MaxBrightness)
		n := int(total / wait)
		for i := 0; i < n; i++ {
			if !s.flash(colors[i%len(colors)], wait, yield) {
				return
			}
		}
	}
}

// Hold fills the strip with c at the given brightness and keeps it there for d.
func (s *Strip) Hold(c palette.Color, d time.Duration, brightness int) iter.Seq[time.Duration] {
	return func(yield func(time.Duration) bool) {
		s.SetBrightness(brightness)
		s.Fill(c)
		yield(d)
	}
}

// Flicker flashes c at a low brightness for d.
func (s *Strip) Flicker(c palette.Color, d, wait time.Duration) iter.Seq[time.Duration] {
	if wait <= 0 {
		log.Warnf("Not flickering with a wait of %v", wait)
		return empty
	}

	return func(yield func(time.Duration) bool) {
		s.SetBrightness(flickerBrightness)
		n := int(d / wait)
		for i := 0; i < n; i++ {
			if !s.flash(c, wait, yield) {
				return
			}
		}
	}
}

// Wipe reveals pixels from left to right, one pixel per wait.
func (s *Strip) Wipe(pixels []palette.Color, wait time.Duration) iter.Seq[time.Duration] {
	return func(yield func(time.Duration) bool) {
		for i := 0; i < s.Len() && i < len(pixels); i++ {
			s.SetPixel(i, pixels[i])
			if !yield(wait) {
				return
			}
		}
	}
}

// Paint shows pixels in one go and holds them for one wait.
func (s *Strip) Paint(pixels []palette.Color, wait time.Duration) iter.Seq[time.Duration] {
	return func(yield func(time.Duration) bool) {
		for i := 0; i < s.Len() && i < len(pixels); i++ {
			s.SetPixel(i, pixels[i])
		}
		yield(wait)
	}
}

// FadeBrightness raises the brightness from start in steps of 10 for as long as it stays at or below end.
func (s *Strip) FadeBrightness(start, end int, wait time.Duration) iter.Seq[time.Duration] {
	return func(yield func(time.Duration) bool) {
		for b := start; b <= end; b += brightnessStep {
			s.SetBrightness(b)
			if !yield(wait) {
				return
			}
		}
	}
}

// FlickerBrightness moves the brightness up and down between low and high, in steps of 10, for ten seconds.
func (s *Strip) FlickerBrightness(low, high int, wait time.Duration) iter.Seq[time.Duration] {
	if wait <= 0 {
		log.Warnf("Not flickering brightness with a wait of %v", wait)
		return empty
	}

	return func(yield func(time.Duration) bool) {
		n := int(flickerBrightnessPeriod / wait)
		b, up := low, true
		for i := 0; i < n; i++ {
			if up {
				b += brightnessStep
				if b >= high {
					up = false
				}
			} else {
				b -= brightnessStep
				if b <= low {
					up = true
				}
			}

			s.SetBrightness(b)
			if !yield(wait) {
				return
			}
		}
	}
}

// Cycle repeats pixels along the whole strip and scrolls the pattern one pixel to the left every tick. It never
// ends, so the caller has to stop ranging over it.
func (s *Strip) Cycle(pixels []palette.Color, wait time.Duration) iter.Seq[time.Duration] {
	if len(pixels) == 0 {
		log.Warn("Not cycling an empty pattern")
		return empty
	}

	return func(yield func(time.Duration) bool) {
		for offset := 0; ; offset = (offset + 1) % len(pixels) {
			for i := 0; i < s.Len(); i++ {
				s.SetPixel(i, pixels[(offset+i)%len(pixels)])
			}
			if !yield(wait) {
				return
			}
		}
	}
}
