//go:build !pi

package neopixel

import (
	log "github.com/sirupsen/logrus"
)

type mockEngine struct {
	channels   [][]uint32
	brightness []int
}

func (d *mockEngine) Init() error {
	log.Debugf("neopixel: Init %d channels", len(d.channels))
	return nil
}

func (d *mockEngine) Render() error {
	for i, leds := range d.channels {
		log.Tracef("neopixel: channel %d at %d: %06x", i, d.brightness[i], leds)
	}
	return nil
}

func (d *mockEngine) Wait() error {
	return nil
}

func (d *mockEngine) Fini() {
	log.Debug("neopixel: Fini")
}

func (d *mockEngine) Leds(channel int) []uint32 {
	if channel >= len(d.channels) {
		return nil
	}
	return d.channels[channel]
}

func (d *mockEngine) SetBrightness(channel int, brightness int) {
	if channel < len(d.brightness) {
		d.brightness[channel] = brightness
	}
}

// NewEngine returns an engine that only logs what it is asked to show.
func NewEngine(strips []StripOptions) (Engine, error) {
	e := &mockEngine{
		channels:   make([][]uint32, len(strips)),
		brightness: make([]int, len(strips)),
	}
	for i, s := range strips {
		e.channels[i] = make([]uint32, s.Length)
	}
	return e, e.Init()
}
