package catalog

import (
	"fmt"
	"strings"
	"time"

	"github.com/thomasin/tylers-leds/internal/animation"
	"github.com/thomasin/tylers-leds/internal/palette"
	"github.com/thomasin/tylers-leds/internal/strip"
)

const (
	KindFlash               = "flash"
	KindHold                = "hold"
	KindFlashThenHold       = "flash-then-hold"
	KindColorSwipe          = "color-swipe"
	KindFlickerThenHold     = "flicker-then-hold"
	KindFlashFor            = "flash-for"
	KindLowToHighBrightness = "low-to-high-brightness"
	KindLowToHighFlicker    = "low-to-high-flicker"
	KindRainbowWipe         = "rainbow-wipe"
	KindRainbowCycle        = "rainbow-cycle"
	KindGradientCycle       = "gradient-cycle"
	KindExpandingGradient   = "expanding-gradient"
	KindChain               = "chain"
)

// Definition describes an animation as plain data, so a show can be put together from a config file. Which of the
// colors, brightness values and durations are used, and in which order, depends on the kind:
//
//	flash                   colors: [color]
//	hold                    colors: [color]            durations: [hold]
//	flash-then-hold         colors: [flash, hold]      count, brightness: [hold]      durations: [hold]
//	color-swipe             colors: [start, swipe, end]                               durations: [start, swipe, end]
//	flicker-then-hold       colors: [flicker, hold]    brightness: [hold]             durations: [flicker, hold]
//	flash-for               colors: [color...]                                        durations: [total]
//	low-to-high-brightness  colors: [color]            brightness: [start, end]       durations: [start, end]
//	low-to-high-flicker     colors: [color]            brightness: [low, high]
//	rainbow-wipe            colors: [color...]
//	rainbow-cycle           colors: [color...]
//	gradient-cycle          colors: [from, to]
//	expanding-gradient      colors: [end, middle]
//	chain                   steps: [definition...]
type Definition struct {
	ID         int             `yaml:"id"`
	Name       string          `yaml:"name"`
	Kind       string          `yaml:"kind"`
	Colors     []string        `yaml:"colors"`
	Count      int             `yaml:"count"`
	Brightness []int           `yaml:"brightness"`
	Durations  []time.Duration `yaml:"durations"`
	Steps      []Definition    `yaml:"steps"`
}

// FromDefinitions builds a registry out of definitions. The first broken definition fails the whole registry.
func FromDefinitions(defs []Definition) (*Registry, error) {
	entries := make([]Entry, 0, len(defs))
	for i, d := range defs {
		a, err := d.Build()
		if err != nil {
			return nil, fmt.Errorf("animation %d (entry %d): %w", d.ID, i, err)
		}
		entries = append(entries, Entry{ID: d.ID, Name: d.title(), Animation: a})
	}
	return NewRegistry(entries...)
}

func (d Definition) title() string {
	if d.Name != "" {
		return d.Name
	}
	if len(d.Colors) == 0 {
		return d.Kind
	}
	return fmt.Sprintf("%s %s", d.Kind, strings.Join(d.Colors, "/"))
}

func (d Definition) Build() (strip.Animation, error) {
	switch d.Kind {
	case KindFlash:
		c, err := d.color(0)
		if err != nil {
			return nil, err
		}
		return animation.NewFlash(c)
	case KindHold:
		c, err := d.color(0)
		if err != nil {
			return nil, err
		}
		hold, err := d.duration(0)
		if err != nil {
			return nil, err
		}
		return animation.NewHold(c, hold)
	case KindFlashThenHold:
		colors, err := d.colors(2)
		if err != nil {
			return nil, err
		}
		b, err := d.brightness(0)
		if err != nil {
			return nil, err
		}
		hold, err := d.duration(0)
		if err != nil {
			return nil, err
		}
		return animation.NewFlashThenHold(colors[0], d.Count, colors[1], b, hold)
	case KindColorSwipe:
		colors, err := d.colors(3)
		if err != nil {
			return nil, err
		}
		durations, err := d.durations(3)
		if err != nil {
			return nil, err
		}
		return animation.NewColorSwipe(colors[0], durations[0], colors[1], durations[1], colors[2], durations[2])
	case KindFlickerThenHold:
		colors, err := d.colors(2)
		if err != nil {
			return nil, err
		}
		b, err := d.brightness(0)
		if err != nil {
			return nil, err
		}
		durations, err := d.durations(2)
		if err != nil {
			return nil, err
		}
		return animation.NewFlickerThenHold(colors[0], durations[0], colors[1], b, durations[1])
	case KindFlashFor:
		colors, err := d.colors(len(d.Colors))
		if err != nil {
			return nil, err
		}
		total, err := d.duration(0)
		if err != nil {
			return nil, err
		}
		return animation.NewFlashFor(colors, total)
	case KindLowToHighBrightness:
		c, err := d.color(0)
		if err != nil {
			return nil, err
		}
		start, err := d.brightness(0)
		if err != nil {
			return nil, err
		}
		end, err := d.brightness(1)
		if err != nil {
			return nil, err
		}
		durations, err := d.durations(2)
		if err != nil {
			return nil, err
		}
		return animation.NewLowToHighBrightness(c, start, durations[0], end, durations[1])
	case KindLowToHighFlicker:
		c, err := d.color(0)
		if err != nil {
			return nil, err
		}
		low, err := d.brightness(0)
		if err != nil {
			return nil, err
		}
		high, err := d.brightness(1)
		if err != nil {
			return nil, err
		}
		return animation.NewLowToHighFlicker(c, low, high)
	case KindRainbowWipe:
		colors, err := d.colors(len(d.Colors))
		if err != nil {
			return nil, err
		}
		return animation.NewRainbowWipe(colors)
	case KindRainbowCycle:
		colors, err := d.colors(len(d.Colors))
		if err != nil {
			return nil, err
		}
		return animation.NewRainbowCycle(colors)
	case KindGradientCycle:
		colors, err := d.colors(2)
		if err != nil {
			return nil, err
		}
		return animation.NewGradientCycle(colors[0], colors[1])
	case KindExpandingGradient:
		colors, err := d.colors(2)
		if err != nil {
			return nil, err
		}
		return animation.NewExpandingGradient(colors[0], colors[1])
	case KindChain:
		steps := make([]strip.Animation, 0, len(d.Steps))
		for i, step := range d.Steps {
			a, err := step.Build()
			if err != nil {
				return nil, fmt.Errorf("step %d: %w", i, err)
			}
			steps = append(steps, a)
		}
		return animation.NewChain(steps...)
	}

	return nil, fmt.Errorf("unknown kind of animation %q", d.Kind)
}

func (d Definition) color(i int) (palette.Color, error) {
	if i >= len(d.Colors) {
		return palette.Black, fmt.Errorf("%s needs at least %d colors, got %d", d.Kind, i+1, len(d.Colors))
	}
	c, err := ParseColor(d.Colors[i])
	if err != nil {
		return palette.Black, fmt.Errorf("color %d: %w", i, err)
	}
	return c, nil
}

func (d Definition) colors(n int) ([]palette.Color, error) {
	if n == 0 {
		return nil, fmt.Errorf("%s needs at least one color", d.Kind)
	}
	out := make([]palette.Color, 0, n)
	for i := 0; i < n; i++ {
		c, err := d.color(i)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func (d Definition) brightness(i int) (int, error) {
	if i >= len(d.Brightness) {
		return 0, fmt.Errorf("%s needs at least %d brightness values, got %d", d.Kind, i+1, len(d.Brightness))
	}
	return d.Brightness[i], nil
}

func (d Definition) duration(i int) (time.Duration, error) {
	if i >= len(d.Durations) {
		return 0, fmt.Errorf("%s needs at least %d durations, got %d", d.Kind, i+1, len(d.Durations))
	}
	return d.Durations[i], nil
}

func (d Definition) durations(n int) ([]time.Duration, error) {
	if n > len(d.Durations) {
		return nil, fmt.Errorf("%s needs at least %d durations, got %d", d.Kind, n, len(d.Durations))
	}
	return d.Durations[:n], nil
}
