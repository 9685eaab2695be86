//go:build pi

package neopixel

import (
	"fmt"

	ws "github.com/rpi-ws281x/rpi-ws281x-go"
	log "github.com/sirupsen/logrus"
)

// maxChannels is the number of PWM channels the driver can run at once.
const maxChannels = 2

// NewEngine sets up one ws281x channel per strip.
func NewEngine(strips []StripOptions) (Engine, error) {
	if len(strips) > maxChannels {
		return nil, fmt.Errorf("at most %d strips are supported, got %d", maxChannels, len(strips))
	}

	opt := ws.DefaultOptions
	opt.Channels = make([]ws.ChannelOption, len(strips))
	for i, s := range strips {
		opt.Channels[i] = ws.DefaultOptions.Channels[0]
		opt.Channels[i].GpioPin = s.GpioPin
		opt.Channels[i].LedCount = s.Length
		opt.Channels[i].Brightness = 255
	}

	dev, err := ws.MakeWS2811(&opt)
	if err != nil {
		return nil, fmt.Errorf("unable to create ws281x device: %w", err)
	}
	if err := dev.Init(); err != nil {
		return nil, fmt.Errorf("unable to initialize ws281x device: %w", err)
	}

	log.Infof("Driving %d strips through ws281x", len(strips))
	return dev, nil
}
