// Package config provides YAML-based options loading for the pinball
// platform.
package config

import (
	"fmt"

	"github.com/arcadeworks/tui-pinball/internal/pin"
)

// Config contains all user-tunable platform options.
type Config struct {
	Game    GameConfig    `yaml:"game"`
	Display DisplayConfig `yaml:"display"`
	Audio   AudioConfig   `yaml:"audio"`
	Tilt    TiltConfig    `yaml:"tilt"`
}

// GameConfig defines game-length parameters.
type GameConfig struct {
	Balls int `yaml:"balls"` // 3 or 5
}

// DisplayConfig defines the playfield window quality.
type DisplayConfig struct {
	Resolution string `yaml:"resolution"` // "normal", "high", or "full"
}

// AudioConfig defines sound output options.
type AudioConfig struct {
	Music bool `yaml:"music"`
	Mono  bool `yaml:"mono"`
}

// TiltConfig defines the nudge tolerance thresholds.
type TiltConfig struct {
	Warn  int `yaml:"warn"`
	Limit int `yaml:"limit"`
}

// Options converts the loaded configuration into simulation options.
// Invalid values are reported rather than silently clamped, so a typo in the
// YAML does not quietly change the game.
func (c Config) Options() (pin.Options, error) {
	opts := pin.DefaultOptions()

	switch c.Game.Balls {
	case 3, 5:
		opts.Balls = c.Game.Balls
	default:
		return opts, fmt.Errorf("config: balls must be 3 or 5, got %d", c.Game.Balls)
	}

	switch c.Display.Resolution {
	case "normal":
		opts.Resolution = pin.ResolutionNormal
	case "high":
		opts.Resolution = pin.ResolutionHigh
	case "full":
		opts.Resolution = pin.ResolutionFull
	default:
		return opts, fmt.Errorf("config: unknown resolution %q", c.Display.Resolution)
	}

	opts.NoMusic = !c.Audio.Music
	opts.Mono = c.Audio.Mono

	if c.Tilt.Warn <= 0 || c.Tilt.Limit <= c.Tilt.Warn {
		return opts, fmt.Errorf("config: tilt thresholds must satisfy 0 < warn < limit, got %d/%d",
			c.Tilt.Warn, c.Tilt.Limit)
	}
	opts.TiltWarn = c.Tilt.Warn
	opts.TiltLimit = c.Tilt.Limit

	return opts, nil
}
