//go:build pi

package button

import (
	"fmt"
	"time"

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

// Watch configures the button pin and fetches a channel of classified presses.
// The button is assumed to be wired against a pull-up, so a low level means
// pressed.
func Watch(pinName string) (<-chan Press, error) {
	log.Infoln("Initializing button handler on ", pinName)
	pin := gpioreg.ByName(pinName)
	if pin == nil {
		return nil, fmt.Errorf("no such pin: %v", pinName)
	}
	if err := pin.In(gpio.PullUp, gpio.BothEdges); err != nil {
		return nil, fmt.Errorf("configure %v as input: %w", pinName, err)
	}

	c := make(chan Press, 5)
	go watch(pin, c)
	return c, nil
}

func watch(b gpio.PinIO, c chan<- Press) {
	var cl Classifier
	last := b.Read()
	for {
		// wait for the edge
		if !b.WaitForEdge(time.Second) {
			continue
		}

		l := b.Read()
		if l == last {
			continue
		}
		last = l

		if p := cl.Edge(l == gpio.Low, time.Now()); p != nil {
			c <- *p
		}
	}
}
