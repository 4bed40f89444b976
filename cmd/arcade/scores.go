package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/leob-arcade/internal/registry"
	"github.com/vovakirdan/leob-arcade/internal/storage"
)

var flagScoresLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show high scores for a game",
	Long: `Display the top high scores for the specified game.

Examples:
  arcade scores breakton
  arcade scores pong --limit 5`,
	Args: cobra.ExactArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
}

func runScores(cmd *cobra.Command, args []string) error {
	gameID := args[0]
	out := cmd.OutOrStdout()

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'arcade list' to see available games", gameID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("create game: %w", err)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("open scores database: %w", err)
	}
	defer store.Close()

	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieve scores: %w", err)
	}

	fmt.Fprintf(out, "High Scores - %s\n", title)
	fmt.Fprintln(out)

	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Play 'arcade play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-10s  %-16s  %s\n", "Rank", "Score", "Date", "Run")
	fmt.Fprintf(out, "  %-4s  %-10s  %-16s  %s\n", "----", "-----", "----", "---")

	for i, entry := range scores {
		run := entry.RunID
		if len(run) > 8 {
			run = run[:8]
		}
		fmt.Fprintf(out, "  %-4d  %-10d  %-16s  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"), run)
	}

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return fmt.Errorf("retrieve stats: %w", err)
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Best: %d  Games: %d  Runs: %d\n", stats.HighScore, stats.GamesCount, stats.RunsCount)
	return nil
}
