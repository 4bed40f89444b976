package pong

import (
	"math"
	"strings"
	"testing"

	"github.com/vovakirdan/leob-arcade/internal/config"
	"github.com/vovakirdan/leob-arcade/internal/core"
	"github.com/vovakirdan/leob-arcade/internal/registry"
)

const eps = 1e-9

func testConfig() config.PongConfig {
	cfg := config.DefaultPongConfig()
	cfg.Difficulty.Enabled = false
	cfg.Gameplay.ServeDelay = 0
	return cfg
}

func newTestGame(t *testing.T, cfg config.PongConfig) *Game {
	t.Helper()
	g := NewWithConfig(cfg)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})
	return g
}

func TestPaddleDeflection(t *testing.T) {
	tests := []struct {
		name      string
		right     bool
		ballY     float64 // ball top; paddle spans 0..100
		expectedA float64
	}{
		{"left center", false, 45, 0},
		{"left top edge", false, -5, -math.Pi / 3},
		{"left bottom edge", false, 95, math.Pi / 3},
		{"right center", true, 45, -math.Pi},
		{"right top edge", true, -5, math.Pi/3 - math.Pi},
		{"beyond edge clamps", false, -40, -math.Pi / 3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(t, testConfig())
			paddle := g.left
			if tc.right {
				paddle = g.right
			}
			g.ball.body.SetPos(core.Vec2(paddle.Collider().Left(), tc.ballY))
			speed := g.ball.Velocity.Magnitude()

			paddle.OnCollision(g.ball)

			v := g.ball.Velocity
			if math.Abs(v.Magnitude()-speed) > 1e-6 {
				t.Errorf("speed changed: %v -> %v", speed, v.Magnitude())
			}
			expected := core.FromAngleMagnitude(tc.expectedA, speed)
			if math.Abs(v.X-expected.X) > 1e-6 || math.Abs(v.Y-expected.Y) > 1e-6 {
				t.Errorf("velocity = %v, expected %v", v, expected)
			}
		})
	}
}

func TestRallyOffLeftPaddle(t *testing.T) {
	cfg := testConfig()
	cfg.Physics.BallStartX, cfg.Physics.BallStartY = 100, 45
	cfg.Physics.BallVelocityX, cfg.Physics.BallVelocityY = -200, 0
	g := newTestGame(t, cfg)

	for i := 0; i < 60 && g.ball.Velocity.X < 0; i++ {
		g.Step(core.NewInputFrame())
	}

	if g.ball.Velocity.X <= 0 {
		t.Fatalf("ball should have bounced off the left paddle, velocity %v", g.ball.Velocity)
	}
	if l, r := g.Scores(); l != 0 || r != 0 {
		t.Errorf("no point expected, got %d-%d", l, r)
	}
}

func TestWallBounce(t *testing.T) {
	cfg := testConfig()
	cfg.Physics.BallStartX, cfg.Physics.BallStartY = 400, 1
	cfg.Physics.BallVelocityX, cfg.Physics.BallVelocityY = 0, -100
	g := newTestGame(t, cfg)

	g.Step(core.NewInputFrame())

	if g.ball.Velocity.Y <= 0 {
		t.Errorf("ball should bounce down off the top wall, vy = %v", g.ball.Velocity.Y)
	}
	if g.ball.Collider().Top() < 0 {
		t.Errorf("ball left the field: top = %v", g.ball.Collider().Top())
	}
}

func TestScoringAndServe(t *testing.T) {
	g := newTestGame(t, testConfig())

	g.ball.body.SetPos(core.Vec2(-20, 300))
	g.Step(core.NewInputFrame())
	if l, r := g.Scores(); l != 0 || r != 1 {
		t.Fatalf("ball out left should score for the right player, got %d-%d", l, r)
	}
	if g.ball.Pos() != core.Vec2(100, 300) {
		t.Errorf("ball should be back at the serve position, got %v", g.ball.Pos())
	}

	g.ball.body.SetPos(core.Vec2(900, 300))
	g.Step(core.NewInputFrame())
	if l, r := g.Scores(); l != 1 || r != 1 {
		t.Errorf("ball out right should score for the left player, got %d-%d", l, r)
	}
	if g.labels[0].Text != "1" || g.labels[1].Text != "1" {
		t.Errorf("labels = %q, %q", g.labels[0].Text, g.labels[1].Text)
	}
}

func TestWinAndRestart(t *testing.T) {
	cfg := testConfig()
	cfg.Gameplay.WinScore = 2
	g := newTestGame(t, cfg)

	for i := 0; i < 2; i++ {
		g.ball.body.SetPos(core.Vec2(900, 300))
		g.Step(core.NewInputFrame())
	}

	if !g.State().GameOver || g.State().Score != 2 {
		t.Fatalf("left player should have won: %+v", g.State())
	}

	// No further points once decided
	g.Step(core.NewInputFrame())
	if l, _ := g.Scores(); l != 2 {
		t.Errorf("score changed after game over: %d", l)
	}

	in := core.NewInputFrame()
	in.Set(core.ActionRestart)
	g.Step(in)
	if g.State().GameOver {
		t.Error("restart should start a new match")
	}
	if l, r := g.Scores(); l != 0 || r != 0 {
		t.Errorf("restart should clear scores, got %d-%d", l, r)
	}
}

func TestPauseFreezesBall(t *testing.T) {
	g := newTestGame(t, testConfig())

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause)
	if !g.State().Paused {
		t.Fatal("game should be paused")
	}

	pos := g.ball.Pos()
	for i := 0; i < 10; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.ball.Pos() != pos {
		t.Errorf("ball moved while paused: %v -> %v", pos, g.ball.Pos())
	}

	g.Step(pause)
	g.Step(core.NewInputFrame())
	if g.ball.Pos() == pos {
		t.Error("ball should move after unpausing")
	}
}

func TestServeDelay(t *testing.T) {
	cfg := testConfig()
	cfg.Gameplay.ServeDelay = 5
	g := newTestGame(t, cfg)

	pos := g.ball.Pos()
	for i := 0; i < 4; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.ball.Pos() != pos {
		t.Error("ball should wait during the serve delay")
	}
	g.Step(core.NewInputFrame())
	g.Step(core.NewInputFrame())
	if g.ball.Pos() == pos {
		t.Error("ball should be served after the delay")
	}
}

func TestPaddleMovementClamped(t *testing.T) {
	g := newTestGame(t, testConfig())

	down := core.NewInputFrame()
	down.Set(core.ActionDown)
	down.Set(core.ActionAltUp)
	for i := 0; i < 600; i++ {
		g.Step(down)
	}

	if math.Abs(g.left.Collider().Bottom()-600) > eps {
		t.Errorf("left paddle bottom = %v, expected clamped at 600", g.left.Collider().Bottom())
	}
	if math.Abs(g.right.Collider().Top()) > eps {
		t.Errorf("right paddle top = %v, expected 0", g.right.Collider().Top())
	}
}

func TestCPUTracksBall(t *testing.T) {
	cfg := testConfig()
	cfg.CPU.Enabled = true
	cfg.Physics.BallStartX, cfg.Physics.BallStartY = 400, 500
	cfg.Physics.BallVelocityX, cfg.Physics.BallVelocityY = 50, 0
	g := newTestGame(t, cfg)

	start := g.right.Collider().VerticalCenter()
	for i := 0; i < 60; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.right.Collider().VerticalCenter() <= start {
		t.Errorf("CPU paddle should move towards the ball: %v -> %v", start, g.right.Collider().VerticalCenter())
	}

	// Arrow keys drive the left paddle in single-player mode
	in := core.NewInputFrame()
	in.Set(core.ActionAltDown)
	before := g.left.Collider().Top()
	g.Step(in)
	if g.left.Collider().Top() <= before {
		t.Error("left paddle should accept arrow keys when the CPU plays right")
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t, testConfig())
	s := core.NewScreen(80, 24)
	g.Render(s)

	out := s.String()
	if !strings.Contains(out, "█") {
		t.Error("paddles and ball should be drawn")
	}
	if !strings.Contains(s.Row(0), "P1") || !strings.Contains(s.Row(0), "P2") {
		t.Errorf("player names missing: %q", s.Row(0))
	}
	// Left paddle: x 30..40 world -> column 3
	if s.Get(3, 1) != '█' {
		t.Errorf("left paddle not at column 3: %q", s.Row(1))
	}
}

func TestRegistered(t *testing.T) {
	if !registry.Exists("pong") {
		t.Fatal("pong should be registered")
	}
	g, err := registry.Create("pong")
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := g.(registry.EngineGame); !ok {
		t.Error("pong should expose its engine")
	}
}
