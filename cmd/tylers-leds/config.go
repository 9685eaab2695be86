package main

import (
	"fmt"
	"os"
	"time"

	"github.com/thomasin/tylers-leds/internal/ambient"
	"github.com/thomasin/tylers-leds/internal/catalog"
	"github.com/thomasin/tylers-leds/internal/climate"
	"github.com/thomasin/tylers-leds/internal/lcd"
	"github.com/thomasin/tylers-leds/internal/neopixel"
	"github.com/thomasin/tylers-leds/internal/palette"
	"github.com/thomasin/tylers-leds/internal/strip"
	"gopkg.in/yaml.v3"
)

const (
	defaultStripLength     = 76
	defaultBrightness      = 255
	defaultMotionPin       = "GPIO17"
	defaultPollingInterval = 2 * time.Second
	defaultPause           = 750 * time.Millisecond
)

var defaultStrips = []StripConfig{
	{Pin: 12, Length: defaultStripLength},
	{Pin: 13, Length: defaultStripLength},
}

type StripConfig struct {
	Pin    int `yaml:"pin"`
	Length int `yaml:"length"`
}

type StopConfig struct {
	At    float64 `yaml:"at"`
	Color string  `yaml:"color"`
}

type Config struct {
	Strips     []StripConfig `yaml:"strips"`
	Color      string        `yaml:"color"`
	Brightness int           `yaml:"brightness"`
	RGBW       bool          `yaml:"rgbw"`
	Pause      time.Duration `yaml:"pause"`
	Motion     struct {
		Pin string `yaml:"pin"`
	} `yaml:"motion"`
	Climate struct {
		Device   string        `yaml:"device"`
		Interval time.Duration `yaml:"interval"`
	} `yaml:"climate"`
	Ambient struct {
		Temperature []StopConfig `yaml:"temperature"`
		Humidity    []StopConfig `yaml:"humidity"`
	} `yaml:"ambient"`
	LCD        lcd.Pins             `yaml:"lcd"`
	Animations []catalog.Definition `yaml:"animations"`

	color    palette.Color
	registry *catalog.Registry
	display  ambient.Display
}

// StripOptions is what the engines need to know about the strips.
func (c *Config) StripOptions() []neopixel.StripOptions {
	opts := make([]neopixel.StripOptions, len(c.Strips))
	for i, s := range c.Strips {
		opts[i] = neopixel.StripOptions{GpioPin: s.Pin, Length: s.Length}
	}
	return opts
}

// NewGroup returns fresh strips, filled with the configured color.
func (c *Config) NewGroup() *strip.Group {
	strips := make([]*strip.Strip, len(c.Strips))
	for i, s := range c.Strips {
		strips[i] = strip.New(s.Length, c.color, c.Brightness)
	}
	return strip.NewGroup(strips...)
}

func (c *Config) Registry() *catalog.Registry {
	return c.registry
}

func (c *Config) Display() ambient.Display {
	return c.display
}

func readConfig(file string) (*Config, error) {
	if file == "" {
		return parseConfig(nil)
	}

	content, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("unable to read config: %w", err)
	}
	return parseConfig(content)
}

func parseConfig(content []byte) (*Config, error) {
	c := &Config{}
	err := yaml.Unmarshal(content, c)
	if err != nil {
		return nil, err
	}

	if len(c.Strips) == 0 {
		c.Strips = append([]StripConfig{}, defaultStrips...)
	}
	if len(c.Strips) > 2 {
		return nil, fmt.Errorf("at most 2 strips can be driven, got %d", len(c.Strips))
	}
	for i, s := range c.Strips {
		if s.Pin <= 0 {
			return nil, fmt.Errorf("pin must be specified for strip %d", i)
		}
		if s.Length <= 0 {
			c.Strips[i].Length = defaultStripLength
		}
	}

	if c.Color == "" {
		c.Color = "black"
	}
	if c.color, err = catalog.ParseColor(c.Color); err != nil {
		return nil, fmt.Errorf("invalid color: %w", err)
	}

	if c.Brightness == 0 {
		c.Brightness = defaultBrightness
	}
	if c.Brightness < strip.MinBrightness || c.Brightness > strip.MaxBrightness {
		return nil, fmt.Errorf("brightness must be between %d and %d, got %d", strip.MinBrightness, strip.MaxBrightness, c.Brightness)
	}
	if c.Pause <= 0 {
		c.Pause = defaultPause
	}
	if c.Motion.Pin == "" {
		c.Motion.Pin = defaultMotionPin
	}
	if c.Climate.Device == "" {
		c.Climate.Device = climate.DefaultDevice
	}
	if c.Climate.Interval <= 0 {
		c.Climate.Interval = defaultPollingInterval
	}
	if c.LCD.RegisterSelect == "" {
		c.LCD = lcd.DefaultPins
	}

	temperature := ambient.Temperature()
	if len(c.Ambient.Temperature) > 0 {
		stops, err := parseStops(c.Ambient.Temperature)
		if err != nil {
			return nil, fmt.Errorf("invalid temperature colors: %w", err)
		}
		temperature = ambient.NewRange(ambient.TemperatureLow, ambient.TemperatureHigh, stops...)
	}
	humidity := ambient.Humidity()
	if len(c.Ambient.Humidity) > 0 {
		stops, err := parseStops(c.Ambient.Humidity)
		if err != nil {
			return nil, fmt.Errorf("invalid humidity colors: %w", err)
		}
		humidity = ambient.NewRange(ambient.HumidityLow, ambient.HumidityHigh, stops...)
	}
	c.display = ambient.NewDisplay(temperature, humidity, c.Brightness)

	if len(c.Animations) > 0 {
		c.registry, err = catalog.FromDefinitions(c.Animations)
	} else {
		c.registry, err = catalog.Default()
	}
	if err != nil {
		return nil, fmt.Errorf("invalid animations: %w", err)
	}

	return c, nil
}

func parseStops(stops []StopConfig) ([]palette.Stop, error) {
	parsed := make([]palette.Stop, len(stops))
	for i, s := range stops {
		color, err := catalog.ParseColor(s.Color)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		parsed[i] = palette.Stop{Color: color, Position: s.At}
	}
	return parsed, nil
}
