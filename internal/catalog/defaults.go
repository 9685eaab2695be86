package catalog

import (
	"time"

	"github.com/thomasin/tylers-leds/internal/animation"
)

var (
	basicColors   = []string{"lime", "blue", "red", "purple", "yellow", "orange", "gold", "spring-green", "turquoise", "aqua", "pink"}
	partyColors   = []string{"lime", "red", "blue", "yellow", "purple", "orange", "gold", "spring-green", "turquoise", "aqua", "pink"}
	rainbowColors = []string{"red", "yellow", "purple", "blue", "orange", "lime"}
)

// Default is the show the lights ship with.
func Default() (*Registry, error) {
	return FromDefinitions(DefaultDefinitions())
}

func DefaultDefinitions() []Definition {
	var defs []Definition
	add := func(ids []int, build func(i int) Definition) {
		for i, id := range ids {
			d := build(i)
			d.ID = id
			defs = append(defs, d)
		}
	}

	add(span(1, 11), func(i int) Definition {
		return flashThenHold(basicColors[i], 3, basicColors[i], animation.MidBrightness)
	})
	hold := []string{"lime", "blue", "red", "purple", "yellow", "orange", "white", "gold", "spring-green", "turquoise", "aqua", "pink"}
	add(span(12, 23), func(i int) Definition {
		return Definition{Kind: KindHold, Colors: []string{hold[i]}, Durations: seconds(10)}
	})

	swipes := [][3]string{
		{"red", "blue", "blue"},
		{"blue", "red", "red"},
		{"red", "lime", "spring-green"},
		{"lime", "red", "red"},
		{"yellow", "purple", "purple"},
		{"purple", "orange", "orange"},
		{"orange", "yellow", "yellow"},
		{"purple", "yellow", "yellow"},
	}
	add(span(24, 31), func(i int) Definition {
		return Definition{
			Kind:      KindColorSwipe,
			Colors:    swipes[i][:],
			Durations: []time.Duration{5 * time.Second, animation.LedChangeSlow, 5 * time.Second},
		}
	})

	flicker := []string{"lime", "blue", "red", "purple", "yellow", "orange", "white", "gold", "spring-green", "turquoise", "aqua", "pink"}
	add(append(span(32, 37), span(39, 44)...), func(i int) Definition {
		return Definition{
			Kind:       KindFlickerThenHold,
			Colors:     []string{flicker[i], flicker[i]},
			Brightness: []int{animation.LowBrightness},
			Durations:  seconds(5, 5),
		}
	})

	pairs := [][2]string{
		{"red", "blue"},
		{"blue", "lime"},
		{"lime", "blue"},
		{"blue", "red"},
		{"purple", "yellow"},
		{"yellow", "orange"},
		{"orange", "yellow"},
		{"yellow", "purple"},
	}
	add(span(45, 52), func(i int) Definition {
		return flashThenHold(pairs[i][0], 3, pairs[i][1], animation.HighBrightness)
	})

	flickerUp := []string{"lime", "red", "blue", "yellow", "purple", "orange", "white", "gold", "spring-green", "turquoise", "aqua", "pink"}
	add(span(53, 64), func(i int) Definition {
		return Definition{
			Kind: KindChain,
			Name: "flash and flicker " + flickerUp[i],
			Steps: []Definition{
				{Kind: KindFlash, Colors: []string{flickerUp[i]}},
				{Kind: KindLowToHighFlicker, Colors: []string{flickerUp[i]}, Brightness: []int{animation.LowBrightness, 200}},
			},
		}
	})

	fadeUp := []string{"lime", "red", "blue", "yellow", "purple", "orange", "white", "gold", "spring-green", "turquoise", "aqua", "pink"}
	add(append([]int{65, 38}, span(66, 75)...), func(i int) Definition {
		return Definition{
			Kind:       KindLowToHighBrightness,
			Colors:     []string{fadeUp[i]},
			Brightness: []int{animation.LowBrightness, animation.HighBrightness},
			Durations:  seconds(5, 10),
		}
	})

	add(span(76, 80), func(int) Definition {
		return flashThenHold("white", 2, "white", animation.HighBrightness)
	})
	add(span(81, 90), func(int) Definition {
		return Definition{Kind: KindFlashFor, Colors: partyColors, Durations: seconds(10)}
	})
	add(span(91, 100), func(int) Definition {
		return Definition{Kind: KindRainbowWipe, Colors: rainbowColors}
	})

	fades := []string{"lime", "red", "blue", "yellow", "orange", "white", "gold", "spring-green", "turquoise", "aqua", "pink"}
	add(span(101, 111), func(i int) Definition {
		return Definition{Kind: KindGradientCycle, Colors: []string{fades[i], "black"}}
	})
	add(span(112, 120), func(int) Definition {
		return Definition{Kind: KindRainbowCycle, Colors: rainbowColors}
	})
	add([]int{131}, func(int) Definition {
		return Definition{Kind: KindExpandingGradient, Colors: []string{"red", "yellow"}}
	})

	return defs
}

func flashThenHold(from string, count int, to string, brightness int) Definition {
	return Definition{
		Kind:       KindFlashThenHold,
		Colors:     []string{from, to},
		Count:      count,
		Brightness: []int{brightness},
		Durations:  seconds(10),
	}
}

// span returns the ids from first to last, both included.
func span(first, last int) []int {
	ids := make([]int, 0, last-first+1)
	for id := first; id <= last; id++ {
		ids = append(ids, id)
	}
	return ids
}

func seconds(values ...int) []time.Duration {
	out := make([]time.Duration, len(values))
	for i, v := range values {
		out[i] = time.Duration(v) * time.Second
	}
	return out
}
