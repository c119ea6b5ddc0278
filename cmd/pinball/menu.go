package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcadeworks/tui-pinball/internal/audio"
	"github.com/arcadeworks/tui-pinball/internal/core"
	"github.com/arcadeworks/tui-pinball/internal/pin"
	"github.com/arcadeworks/tui-pinball/internal/platform/tui"
	"github.com/arcadeworks/tui-pinball/internal/registry"
	"github.com/arcadeworks/tui-pinball/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a table picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a table.
After a game ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select table
  Q            - Quit

Examples:
  pinball menu
  pinball menu --db ./scores.db`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom options YAML")
}

func runMenu(_ *cobra.Command, _ []string) {
	opts, err := loadOptions(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}

	// Open the sound sequencer once for the whole session
	var seq pin.Sequencer
	if s, seqErr := audio.New(); seqErr == nil {
		seq = s
		defer s.Close()
	} else {
		fmt.Fprintf(os.Stderr, "Warning: no audio device: %v\n", seqErr)
		seq = audio.NewNull()
	}

	// Get terminal size
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Menu loop
	for {
		selected, menuErr := tui.RunMenu(store)
		if menuErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", menuErr)
			break
		}
		if selected == nil {
			break
		}

		def, lookupErr := registry.Lookup(selected.ID)
		if lookupErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", lookupErr)
			continue
		}

		cfg := core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     time.Now().UnixNano(),
		}

		if runErr := tui.Run(def, store, seq, cfg, opts); runErr != nil {
			fmt.Fprintf(os.Stderr, "Error running table: %v\n", runErr)
		}

		// Loop back to menu
	}

	// Cleanup
	if store != nil {
		store.Close()
	}
}
