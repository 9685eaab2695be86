// Package animation composes the strip effects into the parametrized animations that make up a show. Every
// combinator is an immutable value checked once at construction, so a bad parameter fails when the show is put
// together rather than halfway through a sequence.
package animation

import (
	"fmt"
	"iter"
	"slices"
	"time"

	"github.com/thomasin/tylers-leds/internal/strip"
)

const (
	StripChangeSlow = 250 * time.Millisecond
	StripChangeFast = 75 * time.Millisecond
	LedChangeSlow   = 50 * time.Millisecond
	LedChangeFast   = 25 * time.Millisecond

	LowBrightness  = 55
	MidBrightness  = 155
	HighBrightness = 255
)

// Chain runs each animation to the end, one after the other, on the same strip.
type Chain struct {
	animations []strip.Animation
}

func NewChain(animations ...strip.Animation) (Chain, error) {
	if len(animations) == 0 {
		return Chain{}, fmt.Errorf("chain needs at least one animation")
	}
	for i, a := range animations {
		if a == nil {
			return Chain{}, fmt.Errorf("animation %d of chain is nil", i)
		}
	}

	return Chain{animations: slices.Clone(animations)}, nil
}

func (c Chain) Animate(s *strip.Strip) iter.Seq[time.Duration] {
	return func(yield func(time.Duration) bool) {
		for _, a := range c.animations {
			for d := range a.Animate(s) {
				if !yield(d) {
					return
				}
			}
		}
	}
}

// concat is Chain for sequences that are already bound to a strip.
func concat(seqs ...iter.Seq[time.Duration]) iter.Seq[time.Duration] {
	return func(yield func(time.Duration) bool) {
		for _, seq := range seqs {
			for d := range seq {
				if !yield(d) {
					return
				}
			}
		}
	}
}

// limit stops seq after n steps.
func limit(seq iter.Seq[time.Duration], n int) iter.Seq[time.Duration] {
	return func(yield func(time.Duration) bool) {
		if n <= 0 {
			return
		}
		i := 0
		for d := range seq {
			if !yield(d) {
				return
			}
			i++
			if i >= n {
				return
			}
		}
	}
}

func checkBrightness(name string, b int) error {
	if b < strip.MinBrightness || b > strip.MaxBrightness {
		return fmt.Errorf("%s brightness must be within %d-%d, got %d", name, strip.MinBrightness, strip.MaxBrightness, b)
	}
	return nil
}

func checkDuration(name string, d time.Duration) error {
	if d < 0 {
		return fmt.Errorf("%s duration must not be negative, got %v", name, d)
	}
	return nil
}
