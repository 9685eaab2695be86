//go:build !pi

package motion

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
)

// New simulates the sensor: every SIGHUP is a short burst of motion.
func New(ctx context.Context, pinName string) (*Sensor, error) {
	log.Infof("Simulating motion sensor on %s, send SIGHUP to trigger it", pinName)

	hupChan := make(chan os.Signal, 1)
	signal.Notify(hupChan, syscall.SIGHUP)

	s := &Sensor{}
	go func() {
		defer signal.Stop(hupChan)
		for {
			select {
			case <-ctx.Done():
				return
			case <-hupChan:
				s.update(Event{Detected: true})
				s.update(Event{Detected: false})
			}
		}
	}()
	return s, nil
}
