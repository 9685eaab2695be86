package neopixel

import (
	"context"
	"iter"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thomasin/tylers-leds/internal/palette"
	"github.com/thomasin/tylers-leds/internal/strip"
)

type fakeEngine struct {
	mu         sync.Mutex
	channels   [][]uint32
	brightness []int
	renders    int
	closed     bool
}

func newFakeEngine(lengths ...int) *fakeEngine {
	e := &fakeEngine{brightness: make([]int, len(lengths))}
	for _, l := range lengths {
		e.channels = append(e.channels, make([]uint32, l))
	}
	return e
}

func (e *fakeEngine) Init() error { return nil }
func (e *fakeEngine) Wait() error { return nil }

func (e *fakeEngine) Render() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.renders++
	return nil
}

func (e *fakeEngine) Fini() {
	e.closed = true
}

func (e *fakeEngine) Leds(channel int) []uint32 {
	return e.channels[channel]
}

func (e *fakeEngine) SetBrightness(channel int, brightness int) {
	e.brightness[channel] = brightness
}

func (e *fakeEngine) renderCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.renders
}

func TestWithBrightness(t *testing.T) {
	tt := []struct {
		name   string
		input  uint32
		light  int
		output uint32
	}{
		{"full brightness red", 0xff0000, 255, 0xff0000},
		{"full brightness green", 0x00ff00, 255, 0x00ff00},
		{"full brightness blue", 0x0000ff, 255, 0x0000ff},
		{"zero brightness red", 0xff0000, 0, 0x000000},
		{"zero brightness green", 0x00ff00, 0, 0x000000},
		{"zero brightness blue", 0x0000ff, 0, 0x000000},
		{"negative brightness", 0xffffff, -10, 0x000000},
		{"about half", 0xfe8040, 128, 0x7f4020},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.output, WithBrightness(tc.input, tc.light))
		})
	}
}

func TestPack(t *testing.T) {
	assert.Equal(t, uint32(0xff8000), Pack(palette.RGB(1, 0.5, 0), false))
	assert.Equal(t, uint32(0xffffff), Pack(palette.White, false))
	assert.Equal(t, uint32(0xffffffff), Pack(palette.White, true))
	assert.Equal(t, uint32(0x00ff00), Pack(palette.RGB(0, 1, 0), true))
}

func TestController_Show(t *testing.T) {
	e := newFakeEngine(3, 2)
	c := NewController(e, true)

	first := strip.New(3, palette.RGB(1, 0, 0), 155)
	second := strip.New(2, palette.White, 55)
	first.SetPixel(2, palette.RGB(0, 0, 1))

	require.NoError(t, c.Show([]*strip.Strip{first, second}))

	assert.Equal(t, []uint32{0xff0000, 0xff0000, 0x0000ff}, e.channels[0])
	assert.Equal(t, []uint32{0xffffffff, 0xffffffff}, e.channels[1])
	assert.Equal(t, []int{155, 55}, e.brightness)
	assert.Equal(t, 1, e.renders)
}

func TestController_ShowShorterStrip(t *testing.T) {
	e := newFakeEngine(4)
	c := NewController(e, false)

	require.NoError(t, c.Show([]*strip.Strip{strip.New(2, palette.RGB(0, 1, 0), 255)}))
	assert.Equal(t, []uint32{0x00ff00, 0x00ff00, 0, 0}, e.channels[0])
}

func TestController_Play(t *testing.T) {
	e := newFakeEngine(3, 3)
	c := NewController(e, false)
	g := strip.NewGroup(strip.New(3, palette.Black, 0), strip.New(3, palette.Black, 0))

	wipe := strip.AnimationFunc(func(s *strip.Strip) iter.Seq[time.Duration] {
		return s.Wipe([]palette.Color{palette.White, palette.White, palette.White}, time.Millisecond)
	})

	require.NoError(t, c.Play(context.Background(), g, wipe))
	assert.Equal(t, 3, e.renders)
	assert.Equal(t, []uint32{0xffffff, 0xffffff, 0xffffff}, e.channels[1])
	assert.Equal(t, []int{255, 255}, e.brightness)
}

func hold(d time.Duration) strip.Animation {
	return strip.AnimationFunc(func(s *strip.Strip) iter.Seq[time.Duration] {
		return s.Hold(palette.White, d, 255)
	})
}

func TestController_PlayCancelled(t *testing.T) {
	e := newFakeEngine(1)
	c := NewController(e, false)
	g := strip.NewGroup(strip.New(1, palette.Black, 0))

	ctx, cancel := context.WithCancel(context.Background())
	errs := make(chan error, 1)
	go func() {
		errs <- c.Play(ctx, g, hold(time.Hour))
	}()

	assert.Eventually(t, func() bool { return e.renderCount() == 1 }, time.Second, time.Millisecond)
	cancel()

	select {
	case err := <-errs:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("play did not stop when cancelled")
	}
}

func TestController_PlayInterrupted(t *testing.T) {
	e := newFakeEngine(1)
	c := NewController(e, false)
	g := strip.NewGroup(strip.New(1, palette.Black, 0))

	errs := make(chan error, 1)
	go func() {
		errs <- c.Play(context.Background(), g, hold(time.Hour))
	}()
	assert.Eventually(t, func() bool { return e.renderCount() == 1 }, time.Second, time.Millisecond)

	require.NoError(t, c.Play(context.Background(), g, hold(time.Millisecond)))

	select {
	case err := <-errs:
		assert.ErrorIs(t, err, ErrInterrupted)
	case <-time.After(time.Second):
		t.Fatal("first play was never interrupted")
	}
	assert.Equal(t, 2, e.renderCount())
	assert.False(t, c.queue.IsInterrupted())
}

func TestController_Clear(t *testing.T) {
	e := newFakeEngine(2)
	c := NewController(e, false)
	s := strip.New(2, palette.White, 255)

	require.NoError(t, c.Clear([]*strip.Strip{s}))
	assert.Equal(t, []uint32{0, 0}, e.channels[0])

	c.Close()
	assert.True(t, e.closed)
}
