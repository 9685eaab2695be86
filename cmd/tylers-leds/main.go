package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/thomasin/tylers-leds/internal/catalog"
	"github.com/thomasin/tylers-leds/internal/climate"
	"github.com/thomasin/tylers-leds/internal/lcd"
	"github.com/thomasin/tylers-leds/internal/motion"
	"github.com/thomasin/tylers-leds/internal/neopixel"
	"github.com/thomasin/tylers-leds/internal/preview"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	app         = kingpin.New("tylers-leds", "LED strips that follow motion and the weather")
	debug       = app.Flag("debug", "Turn on debug logging.").Bool()
	configFile  = app.Flag("config", "Config file to use instead of the built in defaults.").String()
	previewMode = app.Flag("preview", "Show the strips in the terminal instead of on the hardware.").Bool()
	logFile     = app.Flag("log-file", "Write the log to this file.").String()
	start       = app.Command("start", "Start the light show")
	play        = app.Command("play", "Play a single animation and exit")
	playID      = play.Arg("id", "Id of the animation, see list.").Required().Int()
	list        = app.Command("list", "List the animations")
	version     = app.Command("version", "Show current version.")
)

func main() {
	cmd, err := app.Parse(os.Args[1:])
	if err != nil {
		fmt.Printf("%v: Try --help\n", err.Error())
		os.Exit(1)
	}

	log.SetFormatter(&log.TextFormatter{
		TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if *debug {
		log.Info("Enabling debug output...")
		log.SetLevel(log.DebugLevel)
	}

	if cmd == version.FullCommand() {
		showVersion()
		return
	}

	closeLog, err := setupLogOutput()
	if err != nil {
		log.Fatal(err)
	}
	defer closeLog()

	conf, err := readConfig(*configFile)
	if err != nil {
		log.Fatal(err)
	}

	switch cmd {
	case start.FullCommand():
		err = startShow(conf)
	case play.FullCommand():
		err = playOne(conf, *playID)
	case list.FullCommand():
		listAnimations(conf.Registry())
	default:
		kingpin.FatalUsage("Unrecognized command")
	}
	if err != nil {
		log.Fatal(err)
	}
}

// setupLogOutput keeps the log away from the terminal while the preview draws on it.
func setupLogOutput() (func(), error) {
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("unable to open log file: %w", err)
		}
		log.SetOutput(f)
		return func() { _ = f.Close() }, nil
	}
	if *previewMode {
		log.SetOutput(io.Discard)
	}
	return func() {}, nil
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}

func newController(ctx context.Context, quit func(), conf *Config) (*neopixel.Controller, error) {
	var engine neopixel.Engine
	if *previewMode {
		p, err := preview.NewTerminal(conf.StripOptions())
		if err != nil {
			return nil, fmt.Errorf("unable to open preview: %w", err)
		}
		go p.WatchKeys(ctx, quit)
		engine = p
	} else {
		ws, err := neopixel.NewEngine(conf.StripOptions())
		if err != nil {
			return nil, err
		}
		engine = ws
	}
	return neopixel.NewController(engine, conf.RGBW), nil
}

func startShow(conf *Config) error {
	ctx, cancel := signalContext()
	defer cancel()

	display, err := lcd.New(conf.LCD)
	if err != nil {
		return err
	}
	status := lcd.NewStatus(display)

	lights, err := newController(ctx, cancel, conf)
	if err != nil {
		return err
	}
	defer lights.Close()

	sensor, err := motion.New(ctx, conf.Motion.Pin)
	if err != nil {
		return err
	}

	poller := climate.NewPoller(climate.New(conf.Climate.Device), conf.Climate.Interval)
	go poller.Run(ctx)

	now := uint64(time.Now().UnixNano())
	s := &show{
		lights:  lights,
		group:   conf.NewGroup(),
		motion:  sensor,
		picker:  catalog.NewPicker(conf.Registry(), rand.New(rand.NewPCG(now, now>>32))),
		climate: poller,
		ambient: conf.Display(),
		status:  status,
		pause:   conf.Pause,
	}

	log.Infof("Starting the show with %d animations", conf.Registry().Len())
	err = s.run(ctx)

	status.Sleeping()
	if clearErr := lights.Clear(s.group.Strips()); clearErr != nil {
		log.Warn("Unable to clear the strips: ", clearErr)
	}

	log.Info("Done...")
	return err
}

func playOne(conf *Config, id int) error {
	e, ok := conf.Registry().Get(id)
	if !ok {
		return fmt.Errorf("no animation with id %d", id)
	}

	ctx, cancel := signalContext()
	defer cancel()

	lights, err := newController(ctx, cancel, conf)
	if err != nil {
		return err
	}
	defer lights.Close()

	g := conf.NewGroup()
	log.Infof("Playing %v", e)
	err = lights.Play(ctx, g, e.Animation)
	if errors.Is(err, context.Canceled) {
		err = nil
	}

	if clearErr := lights.Clear(g.Strips()); clearErr != nil {
		log.Warn("Unable to clear the strips: ", clearErr)
	}
	return err
}

func listAnimations(r *catalog.Registry) {
	for _, id := range r.IDs() {
		e, _ := r.Get(id)
		fmt.Println(e)
	}
}
