package button

import (
	"fmt"
	"time"
)

// Kind classifies a press by how long the button was held.
type Kind uint8

const (
	Short Kind = iota
	Medium
	Long
)

func (k Kind) String() string {
	switch k {
	case Short:
		return "short"
	case Medium:
		return "medium"
	case Long:
		return "long"
	}
	return "unknown"
}

// Press is a single classified button press, produced on release.
type Press struct {
	Start    time.Time
	Duration time.Duration
	Kind     Kind
}

func (p Press) String() string {
	return fmt.Sprintf("%v press (held %v)", p.Kind, p.Duration.Round(time.Millisecond))
}
