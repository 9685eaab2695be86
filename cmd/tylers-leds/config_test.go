package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thomasin/tylers-leds/internal/ambient"
	"github.com/thomasin/tylers-leds/internal/climate"
	"github.com/thomasin/tylers-leds/internal/lcd"
	"github.com/thomasin/tylers-leds/internal/neopixel"
	"github.com/thomasin/tylers-leds/internal/palette"
)

func TestParseConfig_Defaults(t *testing.T) {
	c, err := parseConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, []neopixel.StripOptions{{GpioPin: 12, Length: 76}, {GpioPin: 13, Length: 76}}, c.StripOptions())
	assert.Equal(t, 255, c.Brightness)
	assert.False(t, c.RGBW)
	assert.Equal(t, 750*time.Millisecond, c.Pause)
	assert.Equal(t, "GPIO17", c.Motion.Pin)
	assert.Equal(t, climate.DefaultDevice, c.Climate.Device)
	assert.Equal(t, 2*time.Second, c.Climate.Interval)
	assert.Equal(t, lcd.DefaultPins, c.LCD)

	_, ok := c.Registry().Get(131)
	assert.True(t, ok, "the default animations are used")

	g := c.NewGroup()
	require.Len(t, g.Strips(), 2)
	for _, s := range g.Strips() {
		assert.Equal(t, 76, s.Len())
		assert.Equal(t, palette.Black, s.Pixel(0))
	}
}

func TestParseConfig(t *testing.T) {
	content := []byte(`
strips:
  - pin: 18
    length: 10
color: "#ff0000"
brightness: 100
rgbw: true
pause: 2s
motion:
  pin: GPIO5
climate:
  device: /tmp/iio
  interval: 5s
ambient:
  temperature:
    - at: 10
      color: blue
    - at: 20
      color: red
lcd:
  registerSelect: GPIO6
  clockEdge: GPIO7
  data: [GPIO8, GPIO9, GPIO10, GPIO11]
animations:
  - id: 1
    name: just red
    kind: hold
    colors: [red]
    durations: [1s]
`)

	c, err := parseConfig(content)
	require.NoError(t, err)

	assert.Equal(t, []neopixel.StripOptions{{GpioPin: 18, Length: 10}}, c.StripOptions())
	assert.Equal(t, 100, c.Brightness)
	assert.True(t, c.RGBW)
	assert.Equal(t, 2*time.Second, c.Pause)
	assert.Equal(t, "GPIO5", c.Motion.Pin)
	assert.Equal(t, "/tmp/iio", c.Climate.Device)
	assert.Equal(t, 5*time.Second, c.Climate.Interval)
	assert.Equal(t, "GPIO6", c.LCD.RegisterSelect)
	assert.Equal(t, [4]string{"GPIO8", "GPIO9", "GPIO10", "GPIO11"}, c.LCD.Data)

	assert.Equal(t, 1, c.Registry().Len())
	e, ok := c.Registry().Get(1)
	require.True(t, ok)
	assert.Equal(t, "just red", e.Name)

	g := c.NewGroup()
	require.Len(t, g.Strips(), 1)
	assert.Equal(t, palette.RGB(1, 0, 0), g.Strips()[0].Pixel(9))
	assert.Equal(t, 100, g.Strips()[0].Brightness())

	s := g.Strips()[0]
	c.Display().Paint(g.Strips(), climate.Reading{Temperature: 10, Humidity: 70})
	assert.Equal(t, palette.RGB(0, 0, 1), s.Pixel(0), "configured temperature colors are used")
	c.Display().Paint(g.Strips(), climate.Reading{Temperature: 40, Humidity: 70})
	assert.Equal(t, ambient.High, s.Pixel(0))
}

func TestParseConfig_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"broken yaml", "strips: [\n"},
		{"too many strips", "strips: [{pin: 12}, {pin: 13}, {pin: 18}]"},
		{"missing pin", "strips: [{length: 10}]"},
		{"unknown color", "color: not-a-color"},
		{"brightness too high", "brightness: 300"},
		{"brightness negative", "brightness: -1"},
		{"unknown ambient color", "ambient: {humidity: [{at: 60, color: nope}]}"},
		{"broken animation", "animations: [{id: 1, kind: sparkle}]"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := parseConfig([]byte(test.content))
			assert.Error(t, err)
		})
	}
}

func TestParseConfig_StripLengthDefault(t *testing.T) {
	c, err := parseConfig([]byte("strips: [{pin: 12}]"))
	require.NoError(t, err)
	assert.Equal(t, 76, c.Strips[0].Length)
}

func TestReadConfig(t *testing.T) {
	file := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(file, []byte("pause: 1s\n"), 0o644))

	c, err := readConfig(file)
	require.NoError(t, err)
	assert.Equal(t, time.Second, c.Pause)

	c, err = readConfig("")
	require.NoError(t, err)
	assert.Equal(t, 750*time.Millisecond, c.Pause)

	_, err = readConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
