//go:build !pi

package button

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
)

// Watch returns a channel of simulated presses for running off-hardware.
// SIGUSR1 produces a short press, SIGUSR2 a medium one and SIGHUP a long one.
func Watch(pinName string) (<-chan Press, error) {
	log.Infof("Simulating button %v (SIGUSR1=short, SIGUSR2=medium, SIGHUP=long)", pinName)

	c := make(chan Press, 5)
	go simulateButton(c)
	return c, nil
}

func simulateButton(c chan<- Press) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGUSR1, syscall.SIGUSR2, syscall.SIGHUP)
	defer close(sigChan)

	var cl Classifier
	var last time.Time
	for s := range sigChan {
		var held time.Duration
		switch s {
		case syscall.SIGUSR1:
			held = 300 * time.Millisecond
		case syscall.SIGUSR2:
			held = 2 * time.Second
		default:
			held = 5 * time.Second
		}

		// Synthetic release timestamps can lie in the future, so keep the
		// simulated clock monotonic or the next press lands inside the
		// debounce window.
		down := time.Now()
		if earliest := last.Add(DebounceWindow); down.Before(earliest) {
			down = earliest
		}
		up := down.Add(held)
		last = up

		cl.Edge(true, down)
		if p := cl.Edge(false, up); p != nil {
			c <- *p
		}
	}
}
