package pong

import (
	"math"

	"github.com/vovakirdan/leob-arcade/internal/core"
	"github.com/vovakirdan/leob-arcade/internal/engine"
)

// Collision layers
const (
	LayerPaddles = 0
	LayerBall    = 1
)

// Ball bounces between the top and bottom walls.
type Ball struct {
	engine.Object
	body *engine.Rectangle
	game *Game

	Velocity   core.Vector2
	initialPos core.Vector2
	initialVel core.Vector2
}

func newBall(g *Game, pos, size, vel core.Vector2) *Ball {
	body := engine.NewRectangle(core.Rect{Pos: pos, Size: size}, core.ColorBrightWhite)
	return &Ball{
		Object:     engine.NewObject(body, LayerBall),
		body:       body,
		game:       g,
		Velocity:   vel,
		initialPos: pos,
		initialVel: vel,
	}
}

// Update moves the ball and bounces it off the top and bottom of the field.
func (b *Ball) Update(dt float64, _ core.InputFrame) {
	if !b.game.inPlay() {
		return
	}

	b.body.Move(b.Velocity.Scale(dt * b.game.speedFactor))

	r := b.body.Rect()
	field := b.game.playfield
	if r.Top() < field.Top() {
		b.body.SetPos(core.Vec2(r.Left(), field.Top()))
		b.Velocity.Y = math.Abs(b.Velocity.Y)
	}
	if r.Bottom() > field.Bottom() {
		b.body.SetPos(core.Vec2(r.Left(), field.Bottom()-r.Size.Y))
		b.Velocity.Y = -math.Abs(b.Velocity.Y)
	}
}

// Reset puts the ball back at its serve position and velocity.
func (b *Ball) Reset() {
	b.body.SetPos(b.initialPos)
	b.Velocity = b.initialVel
}

// Paddle deflects the ball depending on where it is hit.
type Paddle struct {
	engine.Object
	body *engine.Rectangle
	game *Game

	up, down  []core.Action
	speed     float64
	direction float64 // 1 sends the ball right, -1 left
	cpu       *cpuPlayer
}

func newPaddle(g *Game, r core.Rect, direction float64, up, down []core.Action) *Paddle {
	body := engine.NewRectangle(r, core.ColorBrightWhite)
	return &Paddle{
		Object:    engine.NewObject(body, LayerPaddles),
		body:      body,
		game:      g,
		up:        up,
		down:      down,
		speed:     g.cfg.Physics.PaddleSpeed,
		direction: direction,
	}
}

// Update moves the paddle from input or the CPU and keeps it on the field.
func (p *Paddle) Update(dt float64, in core.InputFrame) {
	if !p.game.running() {
		return
	}

	var move float64
	if p.cpu != nil {
		move = p.cpu.decide(p, p.game.ball)
	} else {
		if anyHeld(in, p.up) {
			move--
		}
		if anyHeld(in, p.down) {
			move++
		}
	}
	p.body.Move(core.Vec2(0, move*p.speed*dt))
	p.clamp()
}

func (p *Paddle) clamp() {
	r := p.body.Rect()
	field := p.game.playfield
	if r.Top() < field.Top() {
		p.body.SetPos(core.Vec2(r.Left(), field.Top()))
	}
	if r.Bottom() > field.Bottom() {
		p.body.SetPos(core.Vec2(r.Left(), field.Bottom()-r.Size.Y))
	}
}

// OnCollision deflects the ball. The further from the paddle center the
// ball hits, the steeper it leaves, up to the configured max deflection.
func (p *Paddle) OnCollision(other engine.GameObject) {
	ball, ok := other.(*Ball)
	if !ok {
		return
	}

	ballRect := ball.Collider()
	paddleRect := p.Collider()
	center := paddleRect.VerticalCenter()

	distance := ballRect.VerticalCenter() - center
	norm := core.ClampF(distance/(center-paddleRect.Top()), -1, 1)

	straight := (p.direction - 1) * 0.5 * math.Pi
	angle := norm*p.game.maxDeflection*p.direction + straight
	ball.Velocity = core.FromAngleMagnitude(angle, ball.Velocity.Magnitude())
}

// setHeight resizes the paddle around its center.
func (p *Paddle) setHeight(h float64) {
	r := p.body.Rect()
	if r.Size.Y == h {
		return
	}
	p.body.SetSize(core.Vec2(r.Size.X, h))
	p.body.SetPos(core.Vec2(r.Left(), r.VerticalCenter()-h/2))
	p.clamp()
}

func anyHeld(in core.InputFrame, actions []core.Action) bool {
	for _, a := range actions {
		if in.Has(a) {
			return true
		}
	}
	return false
}

// cpuPlayer tracks the ball with limited accuracy.
type cpuPlayer struct {
	skill float64 // 0..1, fraction of paddle speed used while tracking
}

// decide returns -1, 0 or 1 scaled by skill.
func (c *cpuPlayer) decide(p *Paddle, ball *Ball) float64 {
	// Only chase while the ball is coming towards this paddle
	if ball.Velocity.X*p.direction > 0 {
		return 0
	}
	diff := ball.Collider().VerticalCenter() - p.Collider().VerticalCenter()
	deadZone := p.Collider().Size.Y / 8
	switch {
	case diff > deadZone:
		return c.skill
	case diff < -deadZone:
		return -c.skill
	default:
		return 0
	}
}
