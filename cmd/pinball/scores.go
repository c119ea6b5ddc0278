package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arcadeworks/tui-pinball/internal/platform/tui"
	"github.com/arcadeworks/tui-pinball/internal/registry"
	"github.com/arcadeworks/tui-pinball/internal/storage"
)

var flagScoresClear string

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the high-score boards",
	Long: `Display the high-score boards for all tables.

Use Tab / Shift+Tab to flip between tables.

Examples:
  pinball scores
  pinball scores --clear party`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresClear, "clear", "", "Reset the high-score board for a table ID")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresClear != "" {
		if !registry.Exists(flagScoresClear) {
			fmt.Fprintf(os.Stderr, "Error: unknown table %q\n", flagScoresClear)
			os.Exit(1)
		}
		if clearErr := store.ClearHighScores(flagScoresClear); clearErr != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", clearErr)
			os.Exit(1)
		}
		fmt.Printf("Cleared high scores for %q.\n", flagScoresClear)
		return
	}

	if runErr := tui.RunScoreboard(store); runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}
