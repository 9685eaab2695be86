package lcd

import (
	"fmt"

	"github.com/thomasin/tylers-leds/internal/climate"
)

type Line byte

func (l Line) String() string {
	switch l {
	case Line1:
		return "L1"
	case Line2:
		return "L2"
	}
	return "N/A"
}

const (
	Line1 Line = 0x80
	Line2 Line = 0xC0

	lineWidth = 16
)

// Pins are the GPIO names the HD44780 is wired to, in 4 bit mode.
type Pins struct {
	RegisterSelect string   `yaml:"registerSelect"`
	ClockEdge      string   `yaml:"clockEdge"`
	Data           [4]string `yaml:"data"`
}

// DefaultPins keeps GPIO17 free for the motion sensor.
var DefaultPins = Pins{
	RegisterSelect: "GPIO4",
	ClockEdge:      "GPIO27",
	Data:           [4]string{"GPIO25", "GPIO22", "GPIO23", "GPIO24"},
}

type Display interface {
	Println(l Line, msg string)
	Clear(l Line)
}

// fit pads or cuts msg to exactly one line.
func fit(msg string) string {
	m := fmt.Sprintf("%-16s", msg)
	return m[:lineWidth]
}

// Status writes what the lights are doing to a display. Lines that did not change are not written again.
type Status struct {
	display Display
	lines   map[Line]string
}

func NewStatus(d Display) *Status {
	return &Status{display: d, lines: make(map[Line]string)}
}

func (s *Status) println(l Line, msg string) {
	msg = fit(msg)
	if last, ok := s.lines[l]; ok && last == msg {
		return
	}
	s.lines[l] = msg
	s.display.Println(l, msg)
}

func (s *Status) Playing(name string, r climate.Reading) {
	s.println(Line1, name)
	s.println(Line2, r.String())
}

func (s *Status) Ambient(r climate.Reading) {
	s.println(Line1, "Ambient")
	s.println(Line2, r.String())
}

func (s *Status) Sleeping() {
	s.println(Line1, "  Sleeping...")
	s.display.Clear(Line2)
	delete(s.lines, Line2)
}
