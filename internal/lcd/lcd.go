//go:build pi

package lcd

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"
)

const (
	character   = gpio.High
	command     = gpio.Low
	signalPulse = 500000 * time.Nanosecond
	signalDelay = 500000 * time.Nanosecond
)

type hd44780 struct {
	registerSelection gpio.PinIO
	clockEdge         gpio.PinIO
	dataPins          [4]gpio.PinIO
}

// New initializes all the LCD pins and resets the display.
func New(pins Pins) (Display, error) {
	log.Infoln("Initializing LCD")
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("unable to initialize periph: %w", err)
	}

	d := &hd44780{}
	var err error
	if d.registerSelection, err = pin(pins.RegisterSelect); err != nil {
		return nil, err
	}
	if d.clockEdge, err = pin(pins.ClockEdge); err != nil {
		return nil, err
	}
	for i, name := range pins.Data {
		if d.dataPins[i], err = pin(name); err != nil {
			return nil, err
		}
	}

	for _, b := range []byte{0x33, 0x32, 0x28, 0x0C, 0x06, 0x01} {
		d.sendByte(b, command)
	}
	return d, nil
}

func pin(name string) (gpio.PinIO, error) {
	p := gpioreg.ByName(name)
	if p == nil {
		return nil, fmt.Errorf("no such pin %q", name)
	}
	return p, nil
}

func (d *hd44780) sendByte(bits byte, mode gpio.Level) {
	d.registerSelection.Out(mode)
	d.pulseByte(bits, 0x10)
	d.pulseByte(bits, 0x01)
}

func (d *hd44780) pulseByte(bits, mask byte) {
	for i, pin := range d.dataPins {
		pin.Out(gpio.Low)
		if bits&(mask<<uint(i)) != 0 {
			pin.Out(gpio.High)
		}
	}
	time.Sleep(signalDelay)
	d.clockEdge.Out(gpio.High)
	time.Sleep(signalPulse)
	d.clockEdge.Out(gpio.Low)
	time.Sleep(signalDelay)
}

func (d *hd44780) Println(l Line, msg string) {
	d.sendByte(byte(l), command)
	for _, c := range []byte(fit(msg)) {
		d.sendByte(c, character)
	}
}

func (d *hd44780) Clear(l Line) {
	d.Println(l, "")
}
