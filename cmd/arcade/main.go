// arcade is a TUI arcade platform for playing retro-style games in the terminal.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play <game>       - Play a game
//	arcade menu              - Start menu to pick games interactively
//	arcade serve             - Start SSH server for remote play
//	arcade scores <game>     - Show high scores for a game
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.arcade/scores.db)
//	--config <path>       - Game config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--cpu                 - Computer-controlled Pong opponent
//	--log-file <path>     - Write logs to a file
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/leob-arcade/internal/config"
	"github.com/vovakirdan/leob-arcade/internal/games/gamekit"

	// Import games to register them
	_ "github.com/vovakirdan/leob-arcade/internal/games/breakton"
	_ "github.com/vovakirdan/leob-arcade/internal/games/pong"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagCPU        bool
	flagLogFile    string
	flagLogLevel   string
)

// logger is set up before any subcommand runs.
var logger = log.New(io.Discard)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "TUI Arcade - Play retro games in your terminal",
	Long: `TUI Arcade is a terminal-based gaming platform that lets you play
classic-style games directly in your terminal.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  arcade list
  arcade play breakton
  arcade play pong --cpu
  arcade menu
  arcade serve --ssh :2222
  arcade scores breakton`,
	PersistentPreRunE: setup,
	SilenceUsage:      true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().BoolVar(&flagCPU, "cpu", false, "Computer plays the right Pong paddle")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (serve logs to stderr by default)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// setup builds the logger and hands CLI settings to the games.
func setup(cmd *cobra.Command, _ []string) error {
	l, err := newLogger(cmd.Name() == serveCmd.Name())
	if err != nil {
		return err
	}
	logger = l

	var preset config.DifficultyPreset
	if flagDifficulty != "" {
		if preset, err = config.ParsePreset(flagDifficulty); err != nil {
			return err
		}
	}

	gamekit.Configure(gamekit.Settings{
		ConfigPath: flagConfig,
		Preset:     preset,
		CPU:        flagCPU,
		Logger:     logger,
	})
	return nil
}

// newLogger logs to --log-file when set. Without one only the server logs,
// to stderr; a game would scribble over its own screen.
func newLogger(toStderr bool) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	var w io.Writer = io.Discard
	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
	case toStderr:
		w = os.Stderr
	}

	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
	}), nil
}
