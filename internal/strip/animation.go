package strip

import (
	"iter"
	"time"
)

// Animation mutates the strip it is given and reports, step by step, how long the current state should stay on
// display. Every step mutates the strip before its duration is yielded, and ranging again restarts the animation.
type Animation interface {
	Animate(s *Strip) iter.Seq[time.Duration]
}

type AnimationFunc func(s *Strip) iter.Seq[time.Duration]

func (f AnimationFunc) Animate(s *Strip) iter.Seq[time.Duration] {
	return f(s)
}
