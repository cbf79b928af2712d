package led

// LED drives a single digital output.
type LED interface {
	// Set drives the output high (true) or low (false).
	Set(on bool) error
	// Get reports the last level written.
	Get() bool
}
