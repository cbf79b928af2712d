package led

import (
	"sync"
	"time"
)

// Fake is a test double that records every level change.
type Fake struct {
	mu          sync.Mutex
	on          bool
	transitions []Transition
}

// Transition is a single recorded level change.
type Transition struct {
	On bool
	At time.Time
}

func NewFake() *Fake {
	return &Fake{}
}

func (f *Fake) Set(on bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if on != f.on {
		f.transitions = append(f.transitions, Transition{On: on, At: time.Now()})
	}
	f.on = on
	return nil
}

func (f *Fake) Get() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.on
}

// Transitions returns a copy of the recorded level changes.
func (f *Fake) Transitions() []Transition {
	f.mu.Lock()
	defer f.mu.Unlock()

	t := make([]Transition, len(f.transitions))
	copy(t, f.transitions)
	return t
}

// Toggles returns the number of recorded level changes.
func (f *Fake) Toggles() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.transitions)
}
