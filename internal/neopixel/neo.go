package neopixel

import (
	"context"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/thomasin/tylers-leds/internal/strip"
)

// ErrInterrupted is returned by Play when another Play took over the strips.
var ErrInterrupted = errors.New("animation was interrupted")

// interruptPoll is how often a running animation checks the queue while it waits.
const interruptPoll = 20 * time.Millisecond

// Engine is the part of the ws281x driver that the controller needs. Every strip is a channel of its own.
type Engine interface {
	Init() error
	Render() error
	Wait() error
	Fini()
	Leds(channel int) []uint32
	SetBrightness(channel int, brightness int)
}

// StripOptions describes one strip connected to the board.
type StripOptions struct {
	GpioPin int
	Length  int
}

// Controller pushes strips to an Engine and plays animations on them in real time.
type Controller struct {
	ws    Engine
	rgbw  bool
	queue Queue
}

func NewController(ws Engine, rgbw bool) *Controller {
	return &Controller{ws: ws, rgbw: rgbw}
}

// Show copies every strip to its channel and renders them all. Strip i goes to channel i.
func (c *Controller) Show(strips []*strip.Strip) error {
	for i, s := range strips {
		leds := c.ws.Leds(i)
		for j := range leds {
			leds[j] = Pack(s.Pixel(j), c.rgbw)
		}
		c.ws.SetBrightness(i, s.Brightness())
	}

	if err := c.ws.Render(); err != nil {
		return fmt.Errorf("unable to render: %w", err)
	}
	return nil
}

// Play runs a on the group, showing every step for as long as the animation asks. A Play that is queued while
// another one runs takes over at the next step, or while the running one waits.
func (c *Controller) Play(ctx context.Context, g *strip.Group, a strip.Animation) error {
	done := c.queue.Queue()
	defer done()

	steps := 0
	for wait := range g.Animate(a) {
		if err := c.Show(g.Strips()); err != nil {
			return err
		}
		steps++

		if err := c.sleep(ctx, wait); err != nil {
			log.Debugf("Stopping after %d steps: %v", steps, err)
			return err
		}
	}

	log.Debugf("Animation done after %d steps", steps)
	return nil
}

func (c *Controller) sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	tick := time.NewTicker(interruptPoll)
	defer tick.Stop()

	for {
		if c.queue.IsInterrupted() {
			return ErrInterrupted
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
			return nil
		case <-tick.C:
		}
	}
}

// Clear turns every strip off.
func (c *Controller) Clear(strips []*strip.Strip) error {
	for _, s := range strips {
		s.Clear()
	}
	return c.Show(strips)
}

func (c *Controller) Close() {
	c.ws.Fini()
}
