// Package pong implements two-paddle Pong on the frame engine.
// Player 1 (W/S) controls the left paddle; player 2 (arrow keys) or the
// CPU controls the right one.
package pong

import (
	"fmt"
	"math"
	"strconv"

	"github.com/vovakirdan/leob-arcade/internal/config"
	"github.com/vovakirdan/leob-arcade/internal/core"
	"github.com/vovakirdan/leob-arcade/internal/engine"
	"github.com/vovakirdan/leob-arcade/internal/games/gamekit"
	"github.com/vovakirdan/leob-arcade/internal/registry"
)

// Score label positions, measured from the left and right edges
const scoreInset = 200

// Game implements Pong as frame-engine hooks.
type Game struct {
	cfg     config.PongConfig
	runtime core.RuntimeConfig
	eng     *engine.Engine

	playfield core.Rect
	left      *Paddle
	right     *Paddle
	ball      *Ball
	labels    [2]*engine.Label

	score      [2]int
	winner     int // 0 while playing, 1 or 2 once decided
	paused     bool
	serveDelay int
	ticks      int

	maxDeflection float64 // radians
	speedFactor   float64
	difficulty    *config.DifficultyManager
	cpuBase       float64
	baseHeight    float64
}

// New creates a new Pong game that loads its config on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game that uses cfg instead of loading one.
func NewWithConfig(cfg config.PongConfig) *Game {
	g := &Game{}
	g.cfg = cfg
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "pong"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Pong"
}

// Engine returns the engine running the current match.
func (g *Game) Engine() *engine.Engine {
	return g.eng
}

// World returns the playfield size.
func (g *Game) World() core.Vector2 {
	return gamekit.World(g.cfg.World)
}

// Reset builds a fresh engine and match.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	if g.cfg.World.Width == 0 {
		g.cfg = loadConfig()
	}
	if err := g.build(); err != nil {
		// Validated configs cannot fail here; fall back to the defaults.
		gamekit.Logger().Error("pong: bad config, using defaults", "err", err)
		g.cfg = config.DefaultPongConfig()
		if err := g.build(); err != nil {
			panic(fmt.Sprintf("pong: default config rejected: %v", err))
		}
	}
}

func loadConfig() config.PongConfig {
	settings := gamekit.Current()
	cfg, err := config.LoadPong(settings.ConfigPath)
	if err != nil {
		gamekit.Logger().Warn("pong: config not loaded, using defaults", "err", err)
		cfg = config.DefaultPongConfig()
	}
	if settings.Preset != "" {
		config.ApplyPongPreset(&cfg, settings.Preset)
	}
	if settings.CPU {
		cfg.CPU.Enabled = true
	}
	return cfg
}

func (g *Game) build() error {
	cfg := g.cfg
	eng, err := engine.New(g, cfg.CollisionMatrix,
		engine.WithLogger(gamekit.Logger()),
		engine.WithTickRate(g.runtime.TickRate))
	if err != nil {
		return err
	}
	g.eng = eng

	g.playfield = core.NewRect(0, 0, cfg.World.Width, cfg.World.Height)
	g.maxDeflection = cfg.Physics.MaxDeflection * math.Pi / 180
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.speedFactor = 1
	g.baseHeight = cfg.Paddles.Height

	paddleSize := core.Vec2(cfg.Paddles.Width, cfg.Paddles.Height)
	g.left = newPaddle(g,
		core.Rect{Pos: core.Vec2(cfg.Paddles.WallDistance, 0), Size: paddleSize},
		1, []core.Action{core.ActionUp}, []core.Action{core.ActionDown})
	g.right = newPaddle(g,
		core.Rect{Pos: core.Vec2(cfg.World.Width-cfg.Paddles.Width-cfg.Paddles.WallDistance, 0), Size: paddleSize},
		-1, []core.Action{core.ActionAltUp}, []core.Action{core.ActionAltDown})

	if cfg.CPU.Enabled {
		g.cpuBase = cfg.CPU.MinSkill
		g.right.cpu = &cpuPlayer{skill: g.cpuBase}
		// Single player may use either key set
		g.left.up = append(g.left.up, core.ActionAltUp)
		g.left.down = append(g.left.down, core.ActionAltDown)
	}

	ballSize := core.Vec2(cfg.Physics.BallSize, cfg.Physics.BallSize)
	g.ball = newBall(g,
		core.Vec2(cfg.Physics.BallStartX, cfg.Physics.BallStartY), ballSize,
		core.Vec2(cfg.Physics.BallVelocityX, cfg.Physics.BallVelocityY))

	for _, o := range []engine.GameObject{g.left, g.right, g.ball} {
		if err := g.eng.AddGameObject(o); err != nil {
			return err
		}
	}

	g.labels[0] = engine.NewLabel(core.Vec2(scoreInset, 0), "0", core.ColorGray)
	g.labels[1] = engine.NewLabel(core.Vec2(cfg.World.Width-scoreInset, 0), "0", core.ColorGray)
	g.eng.AddDrawable(g.labels[0])
	g.eng.AddDrawable(g.labels[1])

	g.restart()
	return nil
}

// restart resets the match inside the current engine.
func (g *Game) restart() {
	g.score = [2]int{}
	g.winner = 0
	g.paused = false
	g.ticks = 0
	g.speedFactor = 1
	g.serveDelay = g.cfg.Gameplay.ServeDelay
	g.ball.Reset()
	g.left.setHeight(g.baseHeight)
	g.right.setHeight(g.baseHeight)
	g.refreshLabels()
}

// running reports whether the simulation advances this frame.
func (g *Game) running() bool {
	return !g.paused && g.winner == 0
}

// inPlay reports whether the ball is moving.
func (g *Game) inPlay() bool {
	return g.running() && g.serveDelay == 0
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.eng.Update(gamekit.FixedDT(g.runtime), in)
	return core.StepResult{State: g.State()}
}

// EarlyUpdate handles pause and restart requests and difficulty scaling.
func (g *Game) EarlyUpdate(_ float64, in core.InputFrame) {
	if g.winner != 0 {
		if in.Has(core.ActionRestart) {
			g.restart()
		}
		return
	}
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return
	}

	g.ticks++
	if g.serveDelay > 0 {
		g.serveDelay--
	}

	total := g.score[0] + g.score[1]
	g.speedFactor = g.difficulty.Speed(1, total, g.ticks)
	h := g.baseHeight * g.difficulty.PaddleScale(total, g.ticks)
	g.left.setHeight(h)
	g.right.setHeight(h)

	if g.right.cpu != nil {
		level := g.difficulty.Level(total, g.ticks)
		g.right.cpu.skill = g.cpuBase + level*(g.cfg.CPU.MaxSkill-g.cpuBase)
	}
}

// LateUpdate scores a ball that left the field and serves again.
func (g *Game) LateUpdate(float64, core.InputFrame) {
	if !g.running() {
		return
	}
	r := g.ball.Collider()
	switch {
	case r.Left() < g.playfield.Left():
		g.point(1)
	case r.Right() > g.playfield.Right():
		g.point(0)
	}
}

// point awards a point to player index p (0 left, 1 right).
func (g *Game) point(p int) {
	g.score[p]++
	g.refreshLabels()
	gamekit.Logger().Debug("pong: point", "player", p+1, "score", fmt.Sprintf("%d-%d", g.score[0], g.score[1]))

	if win := g.cfg.Gameplay.WinScore; win > 0 && g.score[p] >= win {
		g.winner = p + 1
		return
	}
	g.ball.Reset()
	g.serveDelay = g.cfg.Gameplay.ServeDelay
}

func (g *Game) refreshLabels() {
	g.labels[0].Text = strconv.Itoa(g.score[0])
	g.labels[1].Text = strconv.Itoa(g.score[1])
}

// Draw paints the dashed center net behind the objects.
func (g *Game) Draw(s engine.Surface) {
	const dash, gap, width = 20.0, 20.0, 4.0
	x := g.playfield.HorizontalCenter() - width/2
	for y := g.playfield.Top(); y < g.playfield.Bottom(); y += dash + gap {
		s.DrawRect(core.NewRect(x, y, width, dash), core.ColorGray)
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	gamekit.DrawEngine(g.eng, dst, g.World())
	g.DrawOverlay(dst)
}

// DrawOverlay draws player names and message boxes over an engine frame.
func (g *Game) DrawOverlay(dst *core.Screen) {
	dst.DrawText(1, 0, "P1")
	name := "P2"
	if g.right.cpu != nil {
		name = "CPU"
	}
	dst.DrawText(dst.Width()-len(name)-1, 0, name)

	if g.paused {
		dst.DrawMessageBox("PAUSED", "Press P to resume")
	}
	if g.winner != 0 {
		title := fmt.Sprintf("PLAYER %d WINS!", g.winner)
		if g.winner == 2 && g.right.cpu != nil {
			title = "CPU WINS!"
		}
		dst.DrawMessageBox(title, fmt.Sprintf("%d - %d  |  Press R to restart", g.score[0], g.score[1]))
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score[0], // Report player's score
		GameOver: g.winner != 0,
		Paused:   g.paused,
	}
}

// Scores returns both players' points.
func (g *Game) Scores() (left, right int) {
	return g.score[0], g.score[1]
}

// Register the game with the registry
func init() {
	registry.Register("pong", func() registry.Game {
		return New()
	})
}
