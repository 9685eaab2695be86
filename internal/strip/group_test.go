package strip

import (
	"iter"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/thomasin/tylers-leds/internal/palette"
)

func wipeWith(c palette.Color, wait time.Duration) Animation {
	return AnimationFunc(func(s *Strip) iter.Seq[time.Duration] {
		pixels := make([]palette.Color, s.Len())
		for i := range pixels {
			pixels[i] = c
		}
		return s.Wipe(pixels, wait)
	})
}

func TestGroup_Lockstep(t *testing.T) {
	a, b := New(3, black, 10), New(3, black, 10)
	group := NewGroup(a, b)

	step := 0
	for wait := range group.Animate(wipeWith(orange, 0)) {
		step++
		assert.Equal(t, time.Duration(0), wait)
		assert.Equal(t, a.Pixels(), b.Pixels(), "step %d", step)
		for i := 0; i < 3; i++ {
			want := black
			if i < step {
				want = orange
			}
			assert.Equal(t, want, a.Pixel(i), "pixel %d at step %d", i, step)
		}
	}

	assert.Equal(t, 3, step)
	assert.Equal(t, []palette.Color{orange, orange, orange}, a.Pixels())
	assert.Equal(t, []palette.Color{orange, orange, orange}, b.Pixels())
}

func TestGroup_SetsBrightness(t *testing.T) {
	a, b := New(1, black, 10), New(1, black, 20)

	for range NewGroup(a, b).Animate(wipeWith(red, 0)) {
		assert.Equal(t, MaxBrightness, a.Brightness())
		assert.Equal(t, MaxBrightness, b.Brightness())
	}
}

func TestGroup_YieldsFirstStripDuration(t *testing.T) {
	first, second := New(2, black, 0), New(2, black, 0)
	waits := map[*Strip]time.Duration{first: 10 * time.Millisecond, second: 20 * time.Millisecond}

	a := AnimationFunc(func(s *Strip) iter.Seq[time.Duration] {
		return s.Wipe([]palette.Color{red, red}, waits[s])
	})

	var got []time.Duration
	for wait := range NewGroup(first, second).Animate(a) {
		got = append(got, wait)
	}
	assert.Equal(t, []time.Duration{10 * time.Millisecond, 10 * time.Millisecond}, got)
}

func TestGroup_StopsAtShortest(t *testing.T) {
	long, short := New(4, black, 0), New(2, black, 0)

	var steps int
	for range NewGroup(long, short).Animate(wipeWith(blue, 0)) {
		steps++
	}

	assert.Equal(t, 2, steps)
	assert.Equal(t, []palette.Color{blue, blue, blue, black}, long.Pixels(), "the longer strip is left mid animation")
	assert.Equal(t, []palette.Color{blue, blue}, short.Pixels())
}

func TestGroup_StopEarly(t *testing.T) {
	a, b := New(3, black, 0), New(3, black, 0)

	var seen int
	for range NewGroup(a, b).Animate(AnimationFunc(func(s *Strip) iter.Seq[time.Duration] {
		return s.Cycle([]palette.Color{red, green}, time.Millisecond)
	})) {
		seen++
		if seen == 5 {
			break
		}
	}

	assert.Equal(t, 5, seen)
	assert.Equal(t, a.Pixels(), b.Pixels())
}

func TestGroup_Empty(t *testing.T) {
	var steps int
	for range NewGroup().Animate(wipeWith(red, 0)) {
		steps++
	}
	assert.Zero(t, steps)
}
