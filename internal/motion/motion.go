//go:build pi

package motion

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"
)

// New starts watching the PIR sensor on the named pin, for example "GPIO17", until ctx is done.
func New(ctx context.Context, pinName string) (*Sensor, error) {
	log.Infoln("Initializing motion sensor on", pinName)
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("unable to initialize periph: %w", err)
	}

	pin := gpioreg.ByName(pinName)
	if pin == nil {
		return nil, fmt.Errorf("no such pin %q", pinName)
	}
	if err := pin.In(gpio.PullDown, gpio.BothEdges); err != nil {
		return nil, fmt.Errorf("unable to set up %s: %w", pinName, err)
	}

	s := &Sensor{}
	s.moving.Store(pin.Read() == gpio.High)
	go s.watch(ctx, pin)
	return s, nil
}

func (s *Sensor) watch(ctx context.Context, pin gpio.PinIO) {
	last := pin.Read()
	for {
		if ctx.Err() != nil {
			return
		}

		// wait for the edge
		if !pin.WaitForEdge(time.Second) {
			continue
		}

		// debounce
		l := pin.Read()
		if l == last {
			continue
		}

		time.Sleep(15 * time.Millisecond)
		if l == pin.Read() {
			last = l
			s.update(Event{Detected: l == gpio.High})
		}
	}
}
