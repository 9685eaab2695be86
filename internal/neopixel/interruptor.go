package neopixel

import (
	"sync"

	log "github.com/sirupsen/logrus"
)

// Queue hands the strips from one Play to the next. Queueing marks the queue as interrupted, which tells the
// animation that currently owns the strips to stop at its next chance, and then waits for the strips to be released.
type Queue struct {
	waiting       int
	runLock       sync.Mutex
	interruptLock sync.Mutex
}

type Unlocker func()

// Queue waits for the strips and returns the function that releases them again.
func (q *Queue) Queue() Unlocker {
	q.add(1)
	q.runLock.Lock()
	q.add(-1)

	return func() {
		log.Debug("Releasing the strips")
		q.runLock.Unlock()
	}
}

func (q *Queue) add(n int) {
	q.interruptLock.Lock()
	defer q.interruptLock.Unlock()

	q.waiting += n
	if q.waiting < 0 {
		log.Warn("Number waiting in queue less than zero")
		q.waiting = 0
	}
	log.Debug("Waiting for the strips: ", q.waiting)
}

// IsInterrupted is true while somebody is waiting for the strips.
func (q *Queue) IsInterrupted() bool {
	q.interruptLock.Lock()
	defer q.interruptLock.Unlock()

	return q.waiting != 0
}
