package button

import "time"

const (
	// DebounceWindow is the minimum spacing between accepted edges. Anything
	// closer to the previous accepted edge is treated as contact bounce.
	DebounceWindow = 50 * time.Millisecond

	// ShortPressLimit is the first classification boundary. A press held for
	// less than this is short, anything from here up to MediumPressLimit is
	// medium.
	ShortPressLimit = 1500 * time.Millisecond

	// MediumPressLimit is the second boundary. Holding for this long or more
	// makes the press long.
	MediumPressLimit = 4000 * time.Millisecond
)

// Classifier turns raw button edges into classified presses. It is not safe
// for concurrent use; feed it from a single goroutine. Time is passed in
// explicitly so the logic can be driven with synthetic timestamps.
type Classifier struct {
	seenEdge   bool
	lastEdge   time.Time
	pressed    bool
	pressStart time.Time
}

// Edge records a debounced edge transition. It returns a classified press on
// an accepted release edge and nil otherwise. Edges within DebounceWindow of
// the previously accepted edge are discarded. A release without a preceding
// press (e.g. the line settling at startup) is ignored.
func (c *Classifier) Edge(pressed bool, now time.Time) *Press {
	if c.seenEdge && now.Sub(c.lastEdge) < DebounceWindow {
		return nil
	}
	c.seenEdge = true
	c.lastEdge = now

	if pressed {
		c.pressed = true
		c.pressStart = now
		return nil
	}

	if !c.pressed {
		return nil
	}
	c.pressed = false

	d := now.Sub(c.pressStart)
	return &Press{
		Start:    c.pressStart,
		Duration: d,
		Kind:     Classify(d),
	}
}

// Classify maps a hold duration onto a press kind.
func Classify(d time.Duration) Kind {
	switch {
	case d < ShortPressLimit:
		return Short
	case d < MediumPressLimit:
		return Medium
	default:
		return Long
	}
}
