package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/leob-arcade/internal/core"
	"github.com/vovakirdan/leob-arcade/internal/platform/console"
	"github.com/vovakirdan/leob-arcade/internal/platform/tui"
	"github.com/vovakirdan/leob-arcade/internal/registry"
	"github.com/vovakirdan/leob-arcade/internal/storage"
)

var flagBackend string

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  W/S, Up/Down  - Pong paddles
  A/D, Arrows   - Breakton paddle
  P             - Pause
  R             - Restart (paused or after game over)
  B/Esc         - Back (paused or after game over)
  Q/Ctrl+C      - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Backends:
  tea    - Bubble Tea program (default)
  tcell  - The engine drives a tcell screen directly

Examples:
  arcade play breakton
  arcade play pong --cpu
  arcade play breakton --difficulty hard
  arcade play breakton --backend tcell
  arcade play pong --config ./my-pong.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagBackend, "backend", "tea", "Rendering backend: tea, tcell")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'arcade list' to see available games", gameID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("create game: %w", err)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		// Continue without storage - game still works
		logger.Warn("scores database unavailable", "path", flagDBPath, "err", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()

	switch flagBackend {
	case "tea":
		return tui.Run(game, store, cfg)
	case "tcell":
		eg, ok := game.(registry.EngineGame)
		if !ok {
			return fmt.Errorf("game %q does not run on the frame engine", gameID)
		}
		return runConsole(eg, store, cfg)
	default:
		return fmt.Errorf("unknown backend %q (tea, tcell)", flagBackend)
	}
}

// runtimeConfig reads the terminal size and global flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	cfg.Seed = flagSeed
	return cfg
}

// runConsole hands the frame loop to the engine on a tcell screen.
func runConsole(game registry.EngineGame, store *storage.Store, cfg core.RuntimeConfig) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}

	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	game.Reset(cfg)

	d := console.New(screen, game.World(), cfg.TickRate,
		console.WithOverlay(game.DrawOverlay),
		console.WithLogger(logger.WithPrefix("console")))
	defer d.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = game.Engine().Run(ctx, d)
	if errors.Is(err, context.Canceled) {
		err = nil
	}

	if state := game.State(); store != nil && state.Score > 0 {
		if _, saveErr := store.SaveScore(game.ID(), storage.NewRunID(), state.Score); saveErr != nil {
			logger.Warn("score not saved", "game", game.ID(), "err", saveErr)
		}
	}
	return err
}
