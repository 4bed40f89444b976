package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/leob-arcade/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows a list of all games registered in the arcade.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, _ []string) {
	out := cmd.OutOrStdout()
	games := registry.List()

	if len(games) == 0 {
		fmt.Fprintln(out, "No games available.")
		return
	}

	fmt.Fprintln(out, "Available games:")
	fmt.Fprintln(out)

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Fprintf(out, "  %-*s  %-10s  %s\n", maxIDLen, "ID", "Title", "Engine")
	fmt.Fprintf(out, "  %-*s  %-10s  %s\n", maxIDLen, "--", "-----", "------")

	for _, g := range games {
		engine := "no"
		if game, err := registry.Create(g.ID); err == nil {
			if _, ok := game.(registry.EngineGame); ok {
				engine = "yes"
			}
		}
		fmt.Fprintf(out, "  %-*s  %-10s  %s\n", maxIDLen, g.ID, g.Title, engine)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'arcade play <id>' to play a game.")
}
