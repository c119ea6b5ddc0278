package core

// RuntimeConfig contains configuration passed to the simulation at start.
// Games use the seed for deterministic behavior; the tick rate is the
// rendered frame rate the table contract is built around.
type RuntimeConfig struct {
	ScreenW  int   // Host screen width in characters
	ScreenH  int   // Host screen height in characters
	TickRate int   // Rendered frames per second (the table contract is 60)
	Seed     int64 // RNG seed; 0 means the platform picks one from the clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}
