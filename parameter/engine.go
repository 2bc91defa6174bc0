package parameter

import "time"

// Simulation Timing
const (
	// DefaultDelay is the pause between generations while running
	DefaultDelay = 100 * time.Millisecond

	// DelayStep is the amount a single speed-up/speed-down command changes the delay
	DelayStep = 10 * time.Millisecond

	// MinDelayRusty is the speed-up floor of the rusty preset
	MinDelayRusty = 10 * time.Millisecond

	// MinDelayTidy is the speed-up floor of the tidy preset
	MinDelayTidy = 50 * time.Millisecond

	// EditInterval is the sleep after each edit frame
	EditInterval = 10 * time.Millisecond

	// PollInterval is the sleep between empty polls while blocked on a byte (splash, paused)
	PollInterval = 10 * time.Millisecond

	// NoticeDuration is how long the terminal-size fallback notice stays on screen
	NoticeDuration = 2 * time.Second
)

// World Sizing
const (
	// FallbackWidth is the world width used when the terminal size is unavailable
	FallbackWidth = 32

	// FallbackHeight is the world height used when the terminal size is unavailable
	FallbackHeight = 32
)
