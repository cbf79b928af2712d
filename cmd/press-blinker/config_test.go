package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig(t *testing.T) {
	content := []byte(`
button:
  pin: GPIO20
led:
  pin: GPIO21
`)

	c, err := parseConfig(content)
	require.NoError(t, err)
	assert.Equal(t, "GPIO20", c.Button.Pin)
	assert.Equal(t, "GPIO21", c.Led.Pin)
}

func TestParseConfigDefaults(t *testing.T) {
	c, err := parseConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, defaultButtonPin, c.Button.Pin)
	assert.Equal(t, defaultLedPin, c.Led.Pin)
}

func TestParseConfigPartial(t *testing.T) {
	c, err := parseConfig([]byte("led:\n  pin: GPIO26\n"))
	require.NoError(t, err)
	assert.Equal(t, defaultButtonPin, c.Button.Pin)
	assert.Equal(t, "GPIO26", c.Led.Pin)
}

func TestParseConfigRejectsSharedPin(t *testing.T) {
	content := []byte(`
button:
  pin: GPIO5
led:
  pin: GPIO5
`)

	_, err := parseConfig(content)
	assert.Error(t, err)
}

func TestParseConfigRejectsGarbage(t *testing.T) {
	_, err := parseConfig([]byte("button: [not, a, mapping"))
	assert.Error(t, err)
}
