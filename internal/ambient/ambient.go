// Package ambient turns the climate readings into colors for when nobody is around.
package ambient

import (
	"math"

	"github.com/thomasin/tylers-leds/internal/climate"
	"github.com/thomasin/tylers-leds/internal/palette"
	"github.com/thomasin/tylers-leds/internal/strip"
)

var (
	// Low is shown at or below the lower limit of a range, High at or above the upper one.
	Low  = palette.RGB(0.65, 0.16, 0.16)
	High = palette.RGB(1.00, 0.00, 1.00)
)

// Readings at or beyond these limits get Low or High.
const (
	TemperatureLow  = 5
	TemperatureHigh = 35
	HumidityLow     = 50
	HumidityHigh    = 100
)

// Range maps a reading to a color. Readings are rounded down to a whole unit before they are looked up.
type Range struct {
	scale palette.Scale
	low   float64
	high  float64
}

func NewRange(low, high float64, stops ...palette.Stop) Range {
	return Range{scale: palette.NewScale(stops...), low: low, high: high}
}

func Temperature() Range {
	return NewRange(TemperatureLow, TemperatureHigh, temperatureStops...)
}

func Humidity() Range {
	return NewRange(HumidityLow, HumidityHigh, humidityStops...)
}

func (r Range) Color(v float64) palette.Color {
	switch {
	case v <= r.low:
		return Low
	case v >= r.high:
		return High
	}
	return r.scale.Choose(math.Floor(v))
}

// Display shows the temperature on the first strip and the humidity on the second.
type Display struct {
	temperature Range
	humidity    Range
	brightness  int
}

func NewDisplay(temperature, humidity Range, brightness int) Display {
	return Display{temperature: temperature, humidity: humidity, brightness: brightness}
}

// Paint fills the strips for r. Strips beyond the second are left alone.
func (d Display) Paint(strips []*strip.Strip, r climate.Reading) {
	colors := []palette.Color{d.temperature.Color(r.Temperature), d.humidity.Color(r.Humidity)}
	for i, s := range strips {
		if i >= len(colors) {
			break
		}
		s.SetBrightness(d.brightness)
		s.Fill(colors[i])
	}
}
