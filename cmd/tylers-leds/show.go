package main

import (
	"context"
	"errors"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/thomasin/tylers-leds/internal/ambient"
	"github.com/thomasin/tylers-leds/internal/catalog"
	"github.com/thomasin/tylers-leds/internal/climate"
	"github.com/thomasin/tylers-leds/internal/lcd"
	"github.com/thomasin/tylers-leds/internal/neopixel"
	"github.com/thomasin/tylers-leds/internal/strip"
)

type player interface {
	Show(strips []*strip.Strip) error
	Play(ctx context.Context, g *strip.Group, a strip.Animation) error
}

type mover interface {
	Moving() bool
}

type picker interface {
	Next() (catalog.Entry, bool)
}

type climateSource interface {
	Last() climate.Reading
}

// show plays a random animation whenever there is motion, and shows the climate otherwise.
type show struct {
	lights  player
	group   *strip.Group
	motion  mover
	picker  picker
	climate climateSource
	ambient ambient.Display
	status  *lcd.Status
	pause   time.Duration
}

func (s *show) run(ctx context.Context) error {
	for {
		if err := s.step(ctx); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(s.pause):
		}
	}
}

func (s *show) step(ctx context.Context) error {
	if s.motion.Moving() {
		if e, ok := s.picker.Next(); ok {
			log.Infof("Playing %v", e)
			s.status.Playing(e.Name, s.climate.Last())

			err := s.lights.Play(ctx, s.group, e.Animation)
			if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, neopixel.ErrInterrupted) {
				return err
			}
			return nil
		}
		log.Warn("Motion detected, but there are no animations to play")
	}

	r := s.climate.Last()
	s.ambient.Paint(s.group.Strips(), r)
	s.status.Ambient(r)
	return s.lights.Show(s.group.Strips())
}
