package blink

import (
	"testing"
	"time"

	"github.com/KoganTheDev/press-blinker/internal/led"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPeriodForCount(t *testing.T) {
	tt := []struct {
		name   string
		count  uint
		period time.Duration
	}{
		{
			"zero clamps to one unit",
			0,
			500 * time.Millisecond,
		},
		{
			"single press",
			1,
			500 * time.Millisecond,
		},
		{
			"three presses",
			3,
			1500 * time.Millisecond,
		},
		{
			"ten presses",
			10,
			5 * time.Second,
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.period, PeriodForCount(tc.count))
		})
	}
}

func TestStartBlinkToggles(t *testing.T) {
	f := led.NewFake()
	s := New(f)
	defer s.Stop()

	s.StartBlink(10 * time.Millisecond)
	assert.True(t, s.Blinking())
	assert.Equal(t, 10*time.Millisecond, s.Period())

	require.Eventually(t, func() bool {
		return f.Toggles() >= 6
	}, time.Second, 5*time.Millisecond, "LED should keep toggling at the blink period")
}

func TestStopForcesLedOff(t *testing.T) {
	f := led.NewFake()
	s := New(f)

	s.StartBlink(5 * time.Millisecond)
	require.Eventually(t, func() bool {
		return f.Toggles() >= 2
	}, time.Second, time.Millisecond)

	s.Stop()
	assert.False(t, s.Blinking())
	assert.Zero(t, s.Period())
	assert.False(t, f.Get())

	// no further toggling once stopped
	toggles := f.Toggles()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, toggles, f.Toggles())
}

func TestFlashPulsesAndExpires(t *testing.T) {
	f := led.NewFake()
	s := New(f)

	s.Flash()
	assert.True(t, f.Get(), "flash should drive the LED high immediately")

	require.Eventually(t, func() bool {
		return !f.Get()
	}, time.Second, 5*time.Millisecond, "flash should expire on its own")

	tr := f.Transitions()
	require.Len(t, tr, 2)
	pulse := tr[1].At.Sub(tr[0].At)
	assert.GreaterOrEqual(t, pulse, FlashDuration)
	assert.Less(t, pulse, FlashDuration+150*time.Millisecond)
}

func TestFlashSuppressedWhileBlinking(t *testing.T) {
	f := led.NewFake()
	s := New(f)
	defer s.Stop()

	s.StartBlink(10 * time.Millisecond)
	s.Flash()

	assert.True(t, s.Blinking(), "flash must not cancel an active blink")
	require.Eventually(t, func() bool {
		return f.Toggles() >= 4
	}, time.Second, time.Millisecond, "blink should continue toggling after a suppressed flash")
}

func TestBlinkPreemptsFlash(t *testing.T) {
	f := led.NewFake()
	s := New(f)
	defer s.Stop()

	s.Flash()
	s.StartBlink(10 * time.Millisecond)

	assert.True(t, s.Blinking())
	require.Eventually(t, func() bool {
		return f.Toggles() >= 6
	}, time.Second, time.Millisecond)

	// Once the flash window has long passed the blink must still be running,
	// i.e. the flash's turn-off never fired against the periodic pattern.
	time.Sleep(FlashDuration + 50*time.Millisecond)
	assert.True(t, s.Blinking())
	before := f.Toggles()
	require.Eventually(t, func() bool {
		return f.Toggles() > before
	}, time.Second, time.Millisecond)
}

func TestStopIsIdempotent(t *testing.T) {
	f := led.NewFake()
	s := New(f)

	s.Stop()
	s.Stop()
	assert.False(t, f.Get())
	assert.False(t, s.Blinking())
}
