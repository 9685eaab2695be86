// Package climate reads a DHT22 temperature and humidity sensor through the Linux industrial I/O (IIO) sysfs
// interface of the dht11 kernel driver.
package climate

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

const DefaultDevice = "/sys/bus/iio/devices/iio:device0"

type Reading struct {
	Temperature float64
	Humidity    float64
}

func (r Reading) String() string {
	return fmt.Sprintf("%.1fC %.0f%%", r.Temperature, r.Humidity)
}

// Startup is assumed until the sensor has been read successfully.
var Startup = Reading{Temperature: 25, Humidity: 70}

type Reader interface {
	Read() (Reading, error)
}

// Sensor reads both values from the sysfs directory of the device. The driver reports milli degrees and milli
// percent.
type Sensor struct {
	temperaturePath string
	humidityPath    string
}

func New(device string) Sensor {
	return Sensor{
		temperaturePath: filepath.Join(device, "in_temp_input"),
		humidityPath:    filepath.Join(device, "in_humidityrelative_input"),
	}
}

func (s Sensor) Read() (Reading, error) {
	t, terr := readMilli(s.temperaturePath)
	h, herr := readMilli(s.humidityPath)
	if err := errors.Join(terr, herr); err != nil {
		return Reading{}, err
	}
	return Reading{Temperature: t, Humidity: h}, nil
}

func readMilli(path string) (float64, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("unable to read %s: %w", path, err)
	}
	v, err := strconv.Atoi(strings.TrimSpace(string(content)))
	if err != nil {
		return 0, fmt.Errorf("unexpected content in %s: %w", path, err)
	}
	return float64(v) / 1000, nil
}

// Poller keeps the last good reading around. The DHT22 regularly fails a read, in which case the previous value
// stays.
type Poller struct {
	reader   Reader
	interval time.Duration

	mu   sync.RWMutex
	last Reading
}

func NewPoller(r Reader, interval time.Duration) *Poller {
	return &Poller{reader: r, interval: interval, last: Startup}
}

func (p *Poller) Last() Reading {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.last
}

// Poll reads the sensor once and reports whether the reading was good.
func (p *Poller) Poll() bool {
	r, err := p.reader.Read()
	if err != nil {
		log.Debugf("Keeping %v, sensor read failed: %v", p.Last(), err)
		return false
	}

	p.mu.Lock()
	p.last = r
	p.mu.Unlock()

	log.Debugf("Humidity: %.1f%% & temperature: %.1fC", r.Humidity, r.Temperature)
	return true
}

// Run polls right away and then every interval until ctx is done.
func (p *Poller) Run(ctx context.Context) {
	p.Poll()

	tick := time.NewTicker(p.interval)
	defer tick.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-tick.C:
			p.Poll()
		}
	}
}
