// Package gamekit holds the glue shared by the engine-based games: CLI-level
// settings, the fixed timestep and rendering an engine into a screen.
package gamekit

import (
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/leob-arcade/internal/config"
	"github.com/vovakirdan/leob-arcade/internal/core"
	"github.com/vovakirdan/leob-arcade/internal/engine"
)

// Settings are the knobs set from the command line before games are created.
type Settings struct {
	ConfigPath string                  // explicit YAML path, empty for the search order
	Preset     config.DifficultyPreset // empty keeps the config's own difficulty
	CPU        bool                    // computer-controlled opponent where supported
	Logger     *log.Logger
}

var (
	mu      sync.RWMutex
	current = Settings{}
)

// Configure replaces the global settings.
func Configure(s Settings) {
	mu.Lock()
	defer mu.Unlock()
	current = s
}

// Current returns the global settings.
func Current() Settings {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// Logger returns the configured logger, or one that discards everything.
func Logger() *log.Logger {
	if l := Current().Logger; l != nil {
		return l
	}
	return log.New(io.Discard)
}

// FixedDT returns the simulation step in seconds for the runtime tick rate.
func FixedDT(runtime core.RuntimeConfig) float64 {
	if runtime.TickRate <= 0 {
		return 1.0 / 60
	}
	return 1.0 / float64(runtime.TickRate)
}

// DrawEngine paints an engine frame onto dst, scaling world onto its cells.
func DrawEngine(e *engine.Engine, dst *core.Screen, world core.Vector2) {
	e.Draw(core.NewCanvas(dst, world))
}

// World returns the world size from a config section.
func World(w config.WorldConfig) core.Vector2 {
	return core.Vec2(w.Width, w.Height)
}
