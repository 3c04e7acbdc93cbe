// Package core contains the leaf types shared between the progression
// engine and the platform shell: runtime configuration, the command feed
// consumed by the engine, and the notification feed it produces.
package core

// RuntimeConfig contains configuration passed to the engine at initialization.
// The engine uses it for deterministic simulation and for converting
// second-based timers to frames.
type RuntimeConfig struct {
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic progression
	ScreenW  int   // Terminal width in characters
	ScreenH  int   // Terminal height in characters
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
		ScreenW:  80,
		ScreenH:  24,
	}
}
