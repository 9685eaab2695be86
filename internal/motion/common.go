package motion

import (
	"fmt"
	"sync/atomic"

	log "github.com/sirupsen/logrus"
)

type Event struct {
	Detected bool
}

func (e Event) String() string {
	action := "detected"
	if !e.Detected {
		action = "gone"
	}
	return fmt.Sprintf("Motion %v", action)
}

// Sensor follows a PIR motion sensor. Motion that starts and stops between two calls to Moving is not lost.
type Sensor struct {
	moving atomic.Bool
	seen   atomic.Bool
}

// Moving reports whether there is motion right now, or has been any since the last call.
func (s *Sensor) Moving() bool {
	seen := s.seen.Swap(false)
	return s.moving.Load() || seen
}

func (s *Sensor) update(e Event) {
	log.Infof("Event: %v", e)
	s.moving.Store(e.Detected)
	if e.Detected {
		s.seen.Store(true)
	}
}
