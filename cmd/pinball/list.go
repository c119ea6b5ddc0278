package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcadeworks/tui-pinball/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available tables",
	Long:  `Shows a list of all tables registered in the simulator.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	tables := registry.List()

	if len(tables) == 0 {
		fmt.Println("No tables available.")
		return
	}

	fmt.Println("Available tables:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, t := range tables {
		if len(t.ID) > maxIDLen {
			maxIDLen = len(t.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	// Print tables
	for _, t := range tables {
		fmt.Printf("  %-*s  %s\n", maxIDLen, t.ID, t.Title)
	}

	fmt.Println()
	fmt.Println("Run 'pinball play <id>' to play a table.")
}
