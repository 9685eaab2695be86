package ambient

import (
	"github.com/thomasin/tylers-leds/internal/palette"
)

// Colors per whole degree celsius and per whole percent of relative humidity.
var temperatureStops = []palette.Stop{
	{Color: palette.RGB(0.86, 0.16, 0.16), Position: 6},
	{Color: palette.RGB(0.93, 0.17, 0.17), Position: 7},
	{Color: palette.RGB(1.00, 0.00, 0.00), Position: 8},
	{Color: palette.RGB(1.00, 0.25, 0.25), Position: 9},
	{Color: palette.RGB(0.99, 0.80, 0.00), Position: 10},
	{Color: palette.RGB(1.00, 0.34, 0.13), Position: 11},
	{Color: palette.RGB(0.97, 0.46, 0.19), Position: 12},
	{Color: palette.RGB(1.00, 0.45, 0.90), Position: 13},
	{Color: palette.RGB(1.00, 0.55, 0.00), Position: 14},
	{Color: palette.RGB(1.00, 0.65, 0.00), Position: 15},
	{Color: palette.RGB(1.00, 0.76, 0.15), Position: 16},
	{Color: palette.RGB(0.99, 0.82, 0.90), Position: 17},
	{Color: palette.RGB(1.00, 0.89, 1.00), Position: 18},
	{Color: palette.RGB(1.00, 0.90, 0.00), Position: 19},
	{Color: palette.RGB(1.00, 1.00, 0.00), Position: 20},
	{Color: palette.RGB(0.78, 0.96, 0.15), Position: 21},
	{Color: palette.RGB(0.75, 1.00, 0.24), Position: 22},
	{Color: palette.RGB(0.46, 0.93, 0.00), Position: 23},
	{Color: palette.RGB(0.00, 1.00, 0.00), Position: 24},
	{Color: palette.RGB(0.00, 1.00, 0.20), Position: 25},
	{Color: palette.RGB(0.25, 0.88, 0.82), Position: 26},
	{Color: palette.RGB(0.00, 1.00, 1.00), Position: 27},
	{Color: palette.RGB(0.20, 0.93, 1.00), Position: 28},
	{Color: palette.RGB(0.00, 0.50, 1.00), Position: 29},
	{Color: palette.RGB(0.00, 0.00, 1.00), Position: 30},
	{Color: palette.RGB(0.50, 0.00, 1.00), Position: 31},
	{Color: palette.RGB(0.60, 0.20, 0.80), Position: 32},
	{Color: palette.RGB(0.58, 0.00, 0.83), Position: 33},
	{Color: palette.RGB(0.80, 0.00, 0.80), Position: 34},
}

var humidityStops = []palette.Stop{
	{Color: palette.RGB(0.86, 0.16, 0.16), Position: 51},
	{Color: palette.RGB(0.93, 0.17, 0.17), Position: 52},
	{Color: palette.RGB(1.00, 0.00, 0.00), Position: 53},
	{Color: palette.RGB(1.00, 0.25, 0.25), Position: 54},
	{Color: palette.RGB(0.99, 0.80, 0.00), Position: 55},
	{Color: palette.RGB(1.00, 0.34, 0.13), Position: 56},
	{Color: palette.RGB(0.97, 0.46, 0.19), Position: 57},
	{Color: palette.RGB(1.00, 0.45, 0.90), Position: 58},
	{Color: palette.RGB(1.00, 0.55, 0.00), Position: 59},
	{Color: palette.RGB(1.00, 0.65, 0.00), Position: 60},
	{Color: palette.RGB(1.00, 0.76, 0.15), Position: 61},
	{Color: palette.RGB(1.00, 0.80, 0.70), Position: 62},
	{Color: palette.RGB(0.99, 0.82, 0.90), Position: 63},
	{Color: palette.RGB(0.99, 0.86, 0.23), Position: 64},
	{Color: palette.RGB(1.00, 0.89, 0.10), Position: 65},
	{Color: palette.RGB(0.98, 0.93, 0.36), Position: 66},
	{Color: palette.RGB(1.00, 0.90, 0.00), Position: 67},
	{Color: palette.RGB(0.93, 0.93, 0.00), Position: 68},
	{Color: palette.RGB(1.00, 1.00, 0.00), Position: 69},
	{Color: palette.RGB(0.78, 0.96, 0.15), Position: 70},
	{Color: palette.RGB(0.67, 0.87, 0.00), Position: 71},
	{Color: palette.RGB(0.61, 0.80, 0.10), Position: 72},
	{Color: palette.RGB(0.75, 1.00, 0.24), Position: 73},
	{Color: palette.RGB(0.68, 1.00, 0.18), Position: 74},
	{Color: palette.RGB(0.46, 0.93, 0.00), Position: 75},
	{Color: palette.RGB(0.49, 0.99, 0.00), Position: 76},
	{Color: palette.RGB(0.00, 1.00, 0.00), Position: 77},
	{Color: palette.RGB(0.20, 1.00, 0.20), Position: 78},
	{Color: palette.RGB(0.00, 1.00, 0.20), Position: 79},
	{Color: palette.RGB(0.00, 1.00, 0.80), Position: 80},
	{Color: palette.RGB(0.25, 0.88, 0.82), Position: 81},
	{Color: palette.RGB(0.22, 0.99, 0.99), Position: 82},
	{Color: palette.RGB(0.00, 1.00, 1.00), Position: 83},
	{Color: palette.RGB(0.00, 0.96, 1.00), Position: 84},
	{Color: palette.RGB(0.20, 0.93, 1.00), Position: 85},
	{Color: palette.RGB(0.40, 0.71, 1.00), Position: 86},
	{Color: palette.RGB(0.00, 0.50, 1.00), Position: 87},
	{Color: palette.RGB(0.00, 0.28, 0.98), Position: 88},
	{Color: palette.RGB(0.00, 0.00, 1.00), Position: 89},
	{Color: palette.RGB(0.20, 0.00, 1.00), Position: 90},
	{Color: palette.RGB(0.50, 0.00, 1.00), Position: 91},
	{Color: palette.RGB(0.61, 0.19, 1.00), Position: 92},
	{Color: palette.RGB(0.60, 0.20, 0.80), Position: 93},
	{Color: palette.RGB(0.67, 0.00, 1.00), Position: 94},
	{Color: palette.RGB(0.58, 0.00, 0.83), Position: 95},
	{Color: palette.RGB(0.80, 0.00, 1.00), Position: 96},
	{Color: palette.RGB(0.86, 0.44, 0.86), Position: 97},
	{Color: palette.RGB(0.80, 0.00, 0.80), Position: 98},
	{Color: palette.RGB(0.93, 0.00, 0.93), Position: 99},
	{Color: palette.RGB(1.00, 0.00, 1.00), Position: 100},
}
