//go:build !pi

package lcd

import (
	log "github.com/sirupsen/logrus"
)

type logDisplay struct{}

// New returns a display that logs its lines.
func New(_ Pins) (Display, error) {
	log.Debug("Starting the LCD")
	return logDisplay{}, nil
}

func (logDisplay) Println(l Line, msg string) {
	log.Infof("LCD %v: %q", l, fit(msg))
}

func (logDisplay) Clear(l Line) {
	log.Debugf("LCD %v cleared", l)
}
