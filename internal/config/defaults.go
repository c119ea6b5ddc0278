package config

import (
	_ "embed"
)

//go:embed defaults/options.yaml
var defaultOptionsYAML []byte

// DefaultConfig returns the default platform options.
func DefaultConfig() Config {
	return Config{
		Game: GameConfig{
			Balls: 3,
		},
		Display: DisplayConfig{
			Resolution: "normal",
		},
		Audio: AudioConfig{
			Music: true,
			Mono:  false,
		},
		Tilt: TiltConfig{
			Warn:  60,
			Limit: 120,
		},
	}
}

// GetDefaultYAML returns the embedded default options YAML.
func GetDefaultYAML() []byte {
	return defaultOptionsYAML
}
