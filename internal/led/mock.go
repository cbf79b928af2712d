//go:build !pi

package led

import (
	"sync"

	log "github.com/sirupsen/logrus"
)

type mockPin struct {
	mu sync.Mutex
	on bool
}

// New returns a mock LED that logs level changes instead of driving hardware.
func New(pinName string) (LED, error) {
	log.Infof("Using mock LED in place of pin %v", pinName)
	return &mockPin{}, nil
}

func (m *mockPin) Set(on bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if on != m.on {
		state := "off"
		if on {
			state = "on"
		}
		log.Debug("LED ", state)
	}
	m.on = on
	return nil
}

func (m *mockPin) Get() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.on
}
