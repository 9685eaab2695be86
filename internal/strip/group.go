package strip

import (
	"iter"
	"time"
)

// Group moves several strips through the same animation in lockstep.
type Group struct {
	strips []*Strip
}

func NewGroup(strips ...*Strip) *Group {
	return &Group{strips: strips}
}

func (g *Group) Strips() []*Strip {
	return g.strips
}

// Animate runs a against every strip and advances them all by one step before yielding. The duration reported by
// the first strip is the one yielded. The sequence ends as soon as any strip runs out of steps, leaving the others
// mid animation.
func (g *Group) Animate(a Animation) iter.Seq[time.Duration] {
	return func(yield func(time.Duration) bool) {
		if len(g.strips) == 0 {
			return
		}

		for _, s := range g.strips {
			s.SetBrightness(MaxBrightness)
		}

		steps := make([]func() (time.Duration, bool), 0, len(g.strips))
		for _, s := range g.strips {
			next, stop := iter.Pull(a.Animate(s))
			defer stop()
			steps = append(steps, next)
		}

		for {
			var wait time.Duration
			for i, next := range steps {
				d, ok := next()
				if !ok {
					return
				}
				if i == 0 {
					wait = d
				}
			}

			if !yield(wait) {
				return
			}
		}
	}
}
