// ABOUTME: Animation timing configuration for the typing scheduler
// ABOUTME: Defaults match a natural human typing cadence

package typing

import "time"

// Config controls typing animation timing.
type Config struct {
	// EnableAnimations false reveals every line immediately.
	EnableAnimations bool

	// Each character waits a uniformly random delay in [TypingMin, TypingMax].
	TypingMin time.Duration
	TypingMax time.Duration

	// LinePause is waited after a line is fully typed, including the last.
	LinePause time.Duration

	// InitialDelay is waited before the first character.
	InitialDelay time.Duration

	// CursorBlink is the host's cursor blink half-period; the scheduler
	// does not use it.
	CursorBlink time.Duration
}

// DefaultConfig returns the default animation timing.
func DefaultConfig() Config {
	return Config{
		EnableAnimations: true,
		TypingMin:        50 * time.Millisecond,
		TypingMax:        80 * time.Millisecond,
		LinePause:        300 * time.Millisecond,
		InitialDelay:     1000 * time.Millisecond,
		CursorBlink:      500 * time.Millisecond,
	}
}
