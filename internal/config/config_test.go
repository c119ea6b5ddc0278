package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/arcadeworks/tui-pinball/internal/pin"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var cfg Config
	if err := yaml.Unmarshal(GetDefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("embedded defaults drifted from DefaultConfig: %+v", cfg)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "options.yaml")
	data := []byte(`
game:
  balls: 5
display:
  resolution: full
audio:
  music: false
  mono: true
tilt:
  warn: 30
  limit: 90
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	opts, err := cfg.Options()
	if err != nil {
		t.Fatalf("Options: %v", err)
	}
	if opts.Balls != 5 || opts.Resolution != pin.ResolutionFull {
		t.Errorf("custom file not applied: %+v", opts)
	}
	if !opts.NoMusic || !opts.Mono {
		t.Errorf("audio options not applied: %+v", opts)
	}
	if opts.TiltWarn != 30 || opts.TiltLimit != 90 {
		t.Errorf("tilt options not applied: %+v", opts)
	}
}

func TestLoadMissingCustomPathFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("a missing explicit path should be an error")
	}
}

func TestOptionsRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"balls", func(c *Config) { c.Game.Balls = 4 }},
		{"resolution", func(c *Config) { c.Display.Resolution = "huge" }},
		{"tilt order", func(c *Config) { c.Tilt.Warn, c.Tilt.Limit = 100, 50 }},
		{"tilt zero", func(c *Config) { c.Tilt.Warn = 0 }},
	}
	for _, tc := range cases {
		cfg := DefaultConfig()
		tc.mutate(&cfg)
		if _, err := cfg.Options(); err == nil {
			t.Errorf("%s: bad value should be rejected", tc.name)
		}
	}
}

func TestDefaultOptionsRoundTrip(t *testing.T) {
	opts, err := DefaultConfig().Options()
	if err != nil {
		t.Fatalf("Options: %v", err)
	}
	want := pin.DefaultOptions()
	if opts != want {
		t.Errorf("default config should map to default options: %+v vs %+v", opts, want)
	}
}
