// Package controller holds the press handling state machine: short presses
// accumulate a count and flash feedback, a medium press starts the periodic
// blink at a period derived from the count, and a long press shuts the whole
// thing down.
package controller

import (
	"context"
	"sync"
	"time"

	"github.com/KoganTheDev/press-blinker/internal/blink"
	"github.com/KoganTheDev/press-blinker/internal/button"
	log "github.com/sirupsen/logrus"
)

type Controller struct {
	sched *blink.Scheduler

	mu    sync.Mutex
	count uint
}

// Status is a consistent snapshot of the controller state.
type Status struct {
	Count    uint
	Blinking bool
	Period   time.Duration
}

func New(sched *blink.Scheduler) *Controller {
	return &Controller{sched: sched}
}

// Run consumes classified presses until the context is cancelled or the press
// channel closes.
func (c *Controller) Run(ctx context.Context, presses <-chan button.Press) {
	for {
		select {
		case <-ctx.Done():
			return
		case p, ok := <-presses:
			if !ok {
				return
			}
			c.Handle(p)
		}
	}
}

// Handle applies a single press to the state machine.
func (c *Controller) Handle(p button.Press) {
	log.Debugf("Event: %v", p)

	switch p.Kind {
	case button.Short:
		if c.sched.Blinking() {
			log.Infof("Ignoring %v while blinking", p)
			return
		}
		c.mu.Lock()
		c.count++
		n := c.count
		c.mu.Unlock()

		log.Infof("Short press number: %d", n)
		c.sched.Flash()

	case button.Medium:
		if c.sched.Blinking() {
			log.Infof("Ignoring %v while blinking", p)
			return
		}
		c.mu.Lock()
		n := c.count
		c.mu.Unlock()
		if n == 0 {
			log.Warn("Medium press without any accumulated short presses. Ignoring.")
			return
		}

		period := blink.PeriodForCount(n)
		log.Infof("Medium press. Starting with: %d", n)
		c.sched.StartBlink(period)

	case button.Long:
		log.Info("Long press. The system is turning off now...")
		c.sched.Stop()
		c.mu.Lock()
		c.count = 0
		c.mu.Unlock()
	}
}

// Status returns the current press count and blink state.
func (c *Controller) Status() Status {
	c.mu.Lock()
	count := c.count
	c.mu.Unlock()

	return Status{
		Count:    count,
		Blinking: c.sched.Blinking(),
		Period:   c.sched.Period(),
	}
}
