// Package blink schedules LED effects: a periodic blink at a configurable
// period and a short one-shot feedback flash. Only one effect runs at a time;
// starting a blink preempts a flash in progress.
package blink

import (
	"sync"
	"time"

	"github.com/KoganTheDev/press-blinker/internal/led"
	log "github.com/sirupsen/logrus"
)

const (
	// Unit is the blink period contributed by each accumulated short press.
	Unit = 500 * time.Millisecond

	// FlashDuration is the length of the feedback pulse on a short press.
	FlashDuration = 200 * time.Millisecond
)

// PeriodForCount derives the blink period from the accumulated press count.
// A zero count is clamped to a single unit.
func PeriodForCount(n uint) time.Duration {
	if n == 0 {
		n = 1
	}
	return time.Duration(n) * Unit
}

// Scheduler owns the LED and runs at most one effect at a time. Each effect
// runs in its own goroutine; replacing an effect waits for the previous one
// to exit, so LED writes of consecutive effects never interleave.
type Scheduler struct {
	led led.LED

	mu       sync.Mutex
	blinking bool
	period   time.Duration
	stop     chan struct{}
	done     chan struct{}
}

func New(l led.LED) *Scheduler {
	return &Scheduler{led: l}
}

// Blinking reports whether a periodic blink is active.
func (s *Scheduler) Blinking() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.blinking
}

// Period returns the active blink period, or zero when not blinking.
func (s *Scheduler) Period() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.period
}

// StartBlink begins toggling the LED every period. Any effect in progress is
// cancelled first, so a pending feedback flash never outlives the blink.
func (s *Scheduler) StartBlink(period time.Duration) {
	stop := make(chan struct{})
	done := make(chan struct{})

	s.mu.Lock()
	prevStop, prevDone := s.stop, s.done
	s.stop, s.done = stop, done
	s.blinking = true
	s.period = period
	s.mu.Unlock()

	cancel(prevStop, prevDone)

	log.Infof("Blinking every %v", period)
	s.set(false)
	go s.blinkLoop(period, stop, done)
}

func (s *Scheduler) blinkLoop(period time.Duration, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	tick := time.NewTicker(period)
	defer tick.Stop()
	for {
		select {
		case <-stop:
			return
		case <-tick.C:
			s.set(!s.led.Get())
		}
	}
}

// Flash pulses the LED for FlashDuration. It is a no-op while a blink is
// active; the periodic pattern must not be disturbed by feedback.
func (s *Scheduler) Flash() {
	stop := make(chan struct{})
	done := make(chan struct{})

	s.mu.Lock()
	if s.blinking {
		s.mu.Unlock()
		log.Debug("Flash suppressed while blinking")
		return
	}
	prevStop, prevDone := s.stop, s.done
	s.stop, s.done = stop, done
	s.mu.Unlock()

	cancel(prevStop, prevDone)

	s.set(true)
	go func() {
		defer close(done)

		select {
		case <-stop:
			// preempted, the next effect owns the LED now
			return
		case <-time.After(FlashDuration):
		}
		s.set(false)
	}()
}

// Stop cancels any running effect and forces the LED off.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	prevStop, prevDone := s.stop, s.done
	s.stop, s.done = nil, nil
	s.blinking = false
	s.period = 0
	s.mu.Unlock()

	cancel(prevStop, prevDone)
	s.set(false)
}

// cancel signals an effect goroutine to stop and waits until it has exited.
// Must not be called with the scheduler lock held.
func cancel(stop chan<- struct{}, done <-chan struct{}) {
	if stop == nil {
		return
	}
	close(stop)
	<-done
}

func (s *Scheduler) set(on bool) {
	if err := s.led.Set(on); err != nil {
		log.Warn("Unable to drive LED: ", err)
	}
}
