// Package preview shows the strips in a terminal, for running a show without any hardware attached.
package preview

import (
	"context"
	"sync"

	"github.com/gdamore/tcell/v2"
	log "github.com/sirupsen/logrus"
	"github.com/thomasin/tylers-leds/internal/neopixel"
)

const pixel = '●'

// Engine draws every channel as a row of dots. It satisfies neopixel.Engine.
type Engine struct {
	screen tcell.Screen

	mu         sync.Mutex
	channels   [][]uint32
	brightness []int
}

var _ neopixel.Engine = &Engine{}

func New(screen tcell.Screen, strips []neopixel.StripOptions) *Engine {
	e := &Engine{
		screen:     screen,
		channels:   make([][]uint32, len(strips)),
		brightness: make([]int, len(strips)),
	}
	for i, s := range strips {
		e.channels[i] = make([]uint32, s.Length)
		e.brightness[i] = 255
	}
	return e
}

// NewTerminal opens the terminal the process runs in.
func NewTerminal(strips []neopixel.StripOptions) (*Engine, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	e := New(screen, strips)
	return e, e.Init()
}

func (e *Engine) Init() error {
	if err := e.screen.Init(); err != nil {
		return err
	}
	e.screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorReset).Foreground(tcell.ColorReset))
	e.screen.Clear()
	return nil
}

func (e *Engine) Render() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	for row, leds := range e.channels {
		for x, c := range leds {
			dimmed := neopixel.WithBrightness(c&0xffffff, e.brightness[row])
			style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(
				int32(dimmed>>16&0xff),
				int32(dimmed>>8&0xff),
				int32(dimmed&0xff),
			))
			e.screen.SetContent(x, row*2, pixel, nil, style)
		}
	}
	e.screen.Show()
	return nil
}

func (e *Engine) Wait() error {
	return nil
}

func (e *Engine) Fini() {
	e.screen.Clear()
	e.screen.Fini()
}

func (e *Engine) Leds(channel int) []uint32 {
	if channel >= len(e.channels) {
		return nil
	}
	return e.channels[channel]
}

func (e *Engine) SetBrightness(channel int, brightness int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if channel < len(e.brightness) {
		e.brightness[channel] = brightness
	}
}

// WatchKeys calls quit when escape or ctrl-c is pressed, and keeps the screen in shape when the terminal is
// resized. It returns when ctx is done.
func (e *Engine) WatchKeys(ctx context.Context, quit func()) {
	events := make(chan tcell.Event)
	stop := make(chan struct{})
	go e.screen.ChannelEvents(events, stop)
	defer close(stop)

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				e.screen.Sync()
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
					log.Debug("Preview closed from the keyboard")
					quit()
					return
				}
			}
		}
	}
}
