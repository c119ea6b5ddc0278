// pinball is a TUI pinball simulator for the terminal.
//
// Usage:
//
//	pinball list              - List available tables
//	pinball play <table>      - Play a table
//	pinball menu              - Start menu to pick tables interactively
//	pinball serve             - Start SSH server for remote play
//	pinball scores            - Show the high-score boards
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible physics
//	--db <path>     - Set database path (default: ~/.pinball/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import tables to register them
	_ "github.com/arcadeworks/tui-pinball/internal/tables/gameshow"
	_ "github.com/arcadeworks/tui-pinball/internal/tables/partyland"
	_ "github.com/arcadeworks/tui-pinball/internal/tables/speeddevils"
	_ "github.com/arcadeworks/tui-pinball/internal/tables/stonesbones"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pinball",
	Short: "TUI Pinball - Play pinball tables in your terminal",
	Long: `TUI Pinball is a terminal pinball simulator with multiple tables,
a dot-matrix display, and shared high-score boards.

Available commands:
  list     - Show all available tables
  play     - Play a specific table directly
  menu     - Interactive table picker menu
  serve    - Start SSH server for remote play
  scores   - View the high-score boards

Examples:
  pinball list
  pinball play party
  pinball menu
  pinball serve --ssh :2222
  pinball scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.pinball/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
