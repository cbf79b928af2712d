//go:build pi

package led

import (
	"fmt"
	"sync"

	log "github.com/sirupsen/logrus"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"
)

func init() {
	if _, err := host.Init(); err != nil {
		log.Fatalln("Unable to initialize periph:", err)
	}
}

type ledPin struct {
	mu  sync.Mutex
	out gpio.PinIO
	on  bool
}

// New configures the given pin as an output and returns it driven low.
func New(pinName string) (LED, error) {
	log.Infoln("Initializing LED on ", pinName)
	pin := gpioreg.ByName(pinName)
	if pin == nil {
		return nil, fmt.Errorf("no such pin: %v", pinName)
	}
	if err := pin.Out(gpio.Low); err != nil {
		return nil, fmt.Errorf("configure %v as output: %w", pinName, err)
	}
	return &ledPin{out: pin}, nil
}

func (l *ledPin) Set(on bool) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	level := gpio.Low
	if on {
		level = gpio.High
	}
	if err := l.out.Out(level); err != nil {
		return fmt.Errorf("drive %v: %w", l.out.Name(), err)
	}
	l.on = on
	return nil
}

func (l *ledPin) Get() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.on
}
