package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcadeworks/tui-pinball/internal/audio"
	"github.com/arcadeworks/tui-pinball/internal/config"
	"github.com/arcadeworks/tui-pinball/internal/core"
	"github.com/arcadeworks/tui-pinball/internal/pin"
	"github.com/arcadeworks/tui-pinball/internal/platform/tui"
	"github.com/arcadeworks/tui-pinball/internal/registry"
	"github.com/arcadeworks/tui-pinball/internal/storage"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play <table>",
	Short: "Play a table",
	Long: `Start playing the specified table.

Controls:
  Z/Left       - Left flipper
  //Right      - Right flipper
  Space/Down   - Hold to charge the plunger, release to launch
  N/Up         - Nudge the table (watch the tilt)
  1-8          - Start a game with that many players
  P            - Pause
  M            - Toggle music
  Q/Esc        - Quit (asks for confirmation mid-game)

Examples:
  pinball play party
  pinball play speed --seed 42
  pinball play show --config ./my-options.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom options YAML")
}

func runPlay(cmd *cobra.Command, args []string) {
	tableID := args[0]

	// Check if table exists
	if !registry.Exists(tableID) {
		fmt.Fprintf(os.Stderr, "Error: unknown table %q\n", tableID)
		fmt.Fprintln(os.Stderr, "Run 'pinball list' to see available tables.")
		os.Exit(1)
	}

	def, err := registry.Lookup(tableID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	opts, err := loadOptions(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Open the sound sequencer; play silent if the speaker is unavailable
	var seq pin.Sequencer
	if s, seqErr := audio.New(); seqErr == nil {
		seq = s
		defer s.Close()
	} else {
		fmt.Fprintf(os.Stderr, "Warning: no audio device: %v\n", seqErr)
		seq = audio.NewNull()
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - the table still plays
		store = nil
	}

	// Run the table
	runErr := tui.Run(def, store, seq, cfg, opts)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running table: %v\n", runErr)
		os.Exit(1)
	}
}

// loadOptions reads the options file and validates it into engine options.
func loadOptions(path string) (pin.Options, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return pin.Options{}, err
	}
	return cfg.Options()
}
