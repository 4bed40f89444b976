// Package breakton implements a brick breaker with multiball tokens on the
// frame engine. Broken bricks may drop a token; catching it with the paddle
// splits the first ball into three.
package breakton

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/vovakirdan/leob-arcade/internal/config"
	"github.com/vovakirdan/leob-arcade/internal/core"
	"github.com/vovakirdan/leob-arcade/internal/engine"
	"github.com/vovakirdan/leob-arcade/internal/games/gamekit"
	"github.com/vovakirdan/leob-arcade/internal/registry"
)

// Brick colors by row (cycling through)
var brickColors = []core.Color{
	core.ColorRed,
	core.ColorOrange,
	core.ColorYellow,
	core.ColorGreen,
	core.ColorCyan,
	core.ColorBlue,
	core.ColorMagenta,
}

// Multiball copies leave at this angle either side of straight down.
const splitAngle = 2 * math.Pi / 3

// Game implements Breakton as frame-engine hooks.
type Game struct {
	cfg     config.BreaktonConfig
	runtime core.RuntimeConfig
	eng     *engine.Engine
	rng     *rand.Rand

	playfield core.Rect
	paddle    *Paddle
	balls     []*Ball
	bricks    []*Brick
	tokens    []*Token

	score      int
	lives      int
	level      int
	bricksLeft int
	gameOver   bool
	paused     bool

	maxDeflection float64 // radians
	speedFactor   float64
	difficulty    *config.DifficultyManager
}

// New creates a new Breakton game that loads its config on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game that uses cfg instead of loading one.
func NewWithConfig(cfg config.BreaktonConfig) *Game {
	return &Game{cfg: cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "breakton"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Breakton"
}

// Engine returns the engine running the current game.
func (g *Game) Engine() *engine.Engine {
	return g.eng
}

// World returns the world size.
func (g *Game) World() core.Vector2 {
	return gamekit.World(g.cfg.World)
}

// Reset builds a fresh engine and game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	if g.cfg.World.Width == 0 {
		g.cfg = loadConfig()
	}
	if err := g.build(); err != nil {
		gamekit.Logger().Error("breakton: bad config, using defaults", "err", err)
		g.cfg = config.DefaultBreaktonConfig()
		if err := g.build(); err != nil {
			panic(fmt.Sprintf("breakton: default config rejected: %v", err))
		}
	}
}

func loadConfig() config.BreaktonConfig {
	settings := gamekit.Current()
	cfg, err := config.LoadBreakton(settings.ConfigPath)
	if err != nil {
		gamekit.Logger().Warn("breakton: config not loaded, using defaults", "err", err)
		cfg = config.DefaultBreaktonConfig()
	}
	if settings.Preset != "" {
		config.ApplyBreaktonPreset(&cfg, settings.Preset)
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
	g.rng = rand.New(rand.NewSource(g.runtime.Seed))
	g.balls, g.tokens, g.bricks = nil, nil, nil

	w, h := cfg.World.Width, cfg.World.Height
	pw, ph := w*0.95, h*0.9
	g.playfield = core.NewRect((w-pw)/2, h-ph, pw, ph)
	g.maxDeflection = cfg.Physics.MaxDeflection * math.Pi / 180
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	// Frame: left, top and right of the playfield
	f := g.playfield
	for _, r := range []core.Rect{
		core.NewRect(0, 0, f.Left(), h),
		core.NewRect(0, 0, w, f.Top()),
		core.NewRect(f.Right(), 0, w-f.Right(), h),
	} {
		g.eng.AddDrawable(engine.NewRectangle(r, core.ColorGray))
	}

	g.paddle = newPaddle(g, core.NewRect(
		f.HorizontalCenter()-cfg.Paddle.Width/2, f.Bottom()-cfg.Paddle.Height,
		cfg.Paddle.Width, cfg.Paddle.Height))
	if err := g.eng.AddGameObject(g.paddle); err != nil {
		return err
	}

	g.eng.Subscribe(g.onMessage)
	g.restart()
	return nil
}

// restart starts a new game inside the current engine.
func (g *Game) restart() {
	g.score = 0
	g.lives = g.cfg.Gameplay.Lives
	g.level = 1
	g.gameOver = false
	g.paused = false
	g.speedFactor = 1

	r := g.paddle.Collider()
	g.paddle.body.SetSize(core.Vec2(g.cfg.Paddle.Width, r.Size.Y))
	g.paddle.body.SetPos(core.Vec2(g.playfield.HorizontalCenter()-g.cfg.Paddle.Width/2, r.Top()))

	g.startLevel()
}

// startLevel clears the field, lays out a fresh brick grid and serves a ball.
func (g *Game) startLevel() {
	for _, b := range g.balls {
		g.eng.RemoveGameObject(b)
	}
	for _, t := range g.tokens {
		g.eng.RemoveGameObject(t)
	}
	for _, b := range g.bricks {
		if !b.broken {
			g.eng.RemoveGameObject(b)
		}
	}
	g.balls, g.tokens, g.bricks = nil, nil, nil

	g.layBricks()
	g.spawnBall(g.playfield.Size.Scale(0.5), core.Vec2(g.cfg.Physics.BallVelocityX, g.cfg.Physics.BallVelocityY))
}

func (g *Game) layBricks() {
	bc := g.cfg.Bricks
	f := g.playfield
	top := f.Top() + f.Size.Y/16 + bc.Spacing/2
	left := f.Left() + bc.Spacing/2
	width := f.Size.X/float64(bc.PerRow) - bc.Spacing

	for row := 0; row < bc.Rows; row++ {
		color := brickColors[row%len(brickColors)]
		for col := 0; col < bc.PerRow; col++ {
			r := core.NewRect(
				left+float64(col)*(width+bc.Spacing),
				top+float64(row)*(bc.Height+bc.Spacing),
				width, bc.Height)
			b := newBrick(g, r, color)
			g.mustAdd(b)
			g.bricks = append(g.bricks, b)
		}
	}
	g.bricksLeft = len(g.bricks)
}

func (g *Game) spawnBall(pos, vel core.Vector2) *Ball {
	size := g.cfg.Physics.BallSize
	b := newBall(g, pos, core.Vec2(size, size), vel)
	g.mustAdd(b)
	g.balls = append(g.balls, b)
	return b
}

// mustAdd registers an object on a layer fixed by this package.
func (g *Game) mustAdd(o engine.GameObject) {
	if err := g.eng.AddGameObject(o); err != nil {
		panic(err)
	}
}

func (g *Game) running() bool {
	return !g.paused && !g.gameOver
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.eng.Update(gamekit.FixedDT(g.runtime), in)
	return core.StepResult{State: g.State()}
}

// EarlyUpdate handles pause and restart requests and difficulty scaling.
func (g *Game) EarlyUpdate(_ float64, in core.InputFrame) {
	if in.Has(core.ActionRestart) && (g.gameOver || g.paused) {
		g.restart()
		return
	}
	if g.gameOver {
		return
	}
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return
	}

	g.speedFactor = g.difficulty.Speed(1, g.score, 0)
	g.paddle.setWidth(g.cfg.Paddle.Width * g.difficulty.PaddleScale(g.score, 0))
}

// LateUpdate moves on to the next level once every brick is gone.
func (g *Game) LateUpdate(float64, core.InputFrame) {
	if !g.running() || g.bricksLeft > 0 {
		return
	}
	g.level++
	gamekit.Logger().Debug("breakton: level cleared", "level", g.level, "score", g.score)
	g.startLevel()
}

// onMessage handles the events objects post during a frame.
func (g *Game) onMessage(msg any) {
	switch m := msg.(type) {
	case BrickHit:
		g.breakBrick(m.Brick)
	case TokenCaught:
		g.multiball(m.Token)
	case BallLost:
		g.loseBall(m.Ball)
	}
}

func (g *Game) breakBrick(b *Brick) {
	// Two balls can hit the same brick in one frame
	if b.broken {
		return
	}
	b.broken = true
	g.eng.RemoveGameObject(b)
	g.bricksLeft--
	g.score += g.cfg.Gameplay.BrickPoints

	if g.rng.Float64() < g.cfg.Gameplay.TokenChance {
		t := newToken(g, b.Collider())
		g.mustAdd(t)
		g.tokens = append(g.tokens, t)
	}
}

// multiball sends the first ball straight down and adds two copies
// angled away from it.
func (g *Game) multiball(t *Token) {
	g.removeToken(t)
	if len(g.balls) == 0 {
		return
	}

	main := g.balls[0]
	mag := main.Velocity.Magnitude()
	main.Velocity = core.FromAngleMagnitude(math.Pi/2, mag)
	for _, a := range []float64{math.Pi/2 + splitAngle, math.Pi/2 - splitAngle} {
		g.spawnBall(main.Pos(), core.FromAngleMagnitude(a, mag))
	}
}

func (g *Game) removeToken(t *Token) {
	for i, tok := range g.tokens {
		if tok == t {
			g.tokens = append(g.tokens[:i], g.tokens[i+1:]...)
			g.eng.RemoveGameObject(t)
			return
		}
	}
}

// loseBall drops a ball; losing the last one costs a life.
func (g *Game) loseBall(b *Ball) {
	for i, ball := range g.balls {
		if ball == b {
			g.balls = append(g.balls[:i], g.balls[i+1:]...)
			g.eng.RemoveGameObject(b)
			break
		}
	}
	if len(g.balls) > 0 {
		return
	}

	g.lives--
	gamekit.Logger().Debug("breakton: life lost", "lives", g.lives)
	if g.lives <= 0 {
		g.gameOver = true
		return
	}
	g.spawnBall(g.playfield.Size.Scale(0.5), core.Vec2(g.cfg.Physics.BallVelocityX, g.cfg.Physics.BallVelocityY))
}

// Draw is unused; every element is a registered drawable.
func (g *Game) Draw(engine.Surface) {}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	gamekit.DrawEngine(g.eng, dst, g.World())
	g.DrawOverlay(dst)
}

// DrawOverlay draws the HUD and message boxes over an engine frame.
func (g *Game) DrawOverlay(dst *core.Screen) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", g.score))
	status := fmt.Sprintf("Level: %d  Lives: %d", g.level, g.lives)
	dst.DrawText(dst.Width()-len(status)-1, 0, status)

	if g.paused {
		dst.DrawMessageBox("PAUSED", "P to resume  |  R to restart")
	}
	if g.gameOver {
		dst.DrawMessageBox("GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Register the game with the registry
func init() {
	registry.Register("breakton", func() registry.Game {
		return New()
	})
}
