package breakton

import (
	"math"

	"github.com/vovakirdan/leob-arcade/internal/core"
	"github.com/vovakirdan/leob-arcade/internal/engine"
)

// Collision layers
const (
	LayerBall   = 0
	LayerPaddle = 1
	LayerBrick  = 2
	LayerToken  = 3
)

// Messages posted to the engine outbox.
type (
	// BrickHit is posted when a ball touches a brick.
	BrickHit struct {
		Brick *Brick
		Ball  *Ball
	}
	// TokenCaught is posted when the paddle touches a falling token.
	TokenCaught struct {
		Token *Token
	}
	// BallLost is posted when a ball falls past the bottom of the field.
	BallLost struct {
		Ball *Ball
	}
)

// Brick breaks when a ball hits it.
type Brick struct {
	engine.Object
	game   *Game
	broken bool
}

func newBrick(g *Game, r core.Rect, color core.Color) *Brick {
	return &Brick{
		Object: engine.NewObject(engine.NewRectangle(r, color), LayerBrick),
		game:   g,
	}
}

func (b *Brick) OnCollision(other engine.GameObject) {
	if ball, ok := other.(*Ball); ok {
		b.game.eng.Post(BrickHit{Brick: b, Ball: ball})
	}
}

// Paddle slides along the bottom of the field.
type Paddle struct {
	engine.Object
	body *engine.Rectangle
	game *Game
}

func newPaddle(g *Game, r core.Rect) *Paddle {
	body := engine.NewRectangle(r, core.ColorBrightWhite)
	return &Paddle{
		Object: engine.NewObject(body, LayerPaddle),
		body:   body,
		game:   g,
	}
}

// Update moves the paddle from input and keeps it on the field.
func (p *Paddle) Update(dt float64, in core.InputFrame) {
	if !p.game.running() {
		return
	}

	var move float64
	if in.Has(core.ActionLeft) {
		move--
	}
	if in.Has(core.ActionRight) {
		move++
	}
	p.body.Move(core.Vec2(move*p.game.cfg.Physics.PaddleSpeed*dt, 0))
	p.clamp()
}

func (p *Paddle) clamp() {
	r := p.body.Rect()
	field := p.game.playfield
	if r.Left() < field.Left() {
		p.body.SetPos(core.Vec2(field.Left(), r.Top()))
	}
	if r.Right() > field.Right() {
		p.body.SetPos(core.Vec2(field.Right()-r.Size.X, r.Top()))
	}
}

// setWidth resizes the paddle around its center.
func (p *Paddle) setWidth(w float64) {
	r := p.body.Rect()
	if r.Size.X == w {
		return
	}
	p.body.SetSize(core.Vec2(w, r.Size.Y))
	p.body.SetPos(core.Vec2(r.HorizontalCenter()-w/2, r.Top()))
	p.clamp()
}

// Ball bounces off the walls, the paddle and bricks.
type Ball struct {
	engine.Object
	body *engine.Rectangle
	game *Game

	Velocity core.Vector2
	lastPos  core.Vector2
	lost     bool
}

func newBall(g *Game, pos, size, vel core.Vector2) *Ball {
	body := engine.NewRectangle(core.Rect{Pos: pos, Size: size}, core.ColorBrightWhite)
	return &Ball{
		Object:   engine.NewObject(body, LayerBall),
		body:     body,
		game:     g,
		Velocity: vel,
		lastPos:  pos,
	}
}

// Update moves the ball and bounces it off the side and top walls.
func (b *Ball) Update(dt float64, _ core.InputFrame) {
	if !b.game.running() {
		return
	}

	b.lastPos = b.body.Pos()
	b.body.Move(b.Velocity.Scale(dt * b.game.speedFactor))

	r := b.body.Rect()
	field := b.game.playfield
	if r.Left() < field.Left() {
		b.body.SetPos(core.Vec2(field.Left(), b.body.Pos().Y))
		b.Velocity.X = -b.Velocity.X
	}
	if r.Right() > field.Right() {
		b.body.SetPos(core.Vec2(field.Right()-r.Size.X, b.body.Pos().Y))
		b.Velocity.X = -b.Velocity.X
	}
	if r.Top() < field.Top() {
		b.body.SetPos(core.Vec2(b.body.Pos().X, field.Top()))
		b.Velocity.Y = -b.Velocity.Y
	}
	if r.Bottom() > field.Bottom() && !b.lost {
		b.lost = true
		b.game.eng.Post(BallLost{Ball: b})
	}
}

// OnCollision bounces off bricks using the previous frame's position to
// find the side that was hit, and deflects off the paddle.
func (b *Ball) OnCollision(other engine.GameObject) {
	switch o := other.(type) {
	case *Brick:
		br := o.Collider()
		last := core.Rect{Pos: b.lastPos, Size: b.body.Size()}
		if last.Left() >= br.Right() {
			b.Velocity.X = math.Abs(b.Velocity.X)
		}
		if last.Right() <= br.Left() {
			b.Velocity.X = -math.Abs(b.Velocity.X)
		}
		if last.Top() >= br.Bottom() {
			b.Velocity.Y = math.Abs(b.Velocity.Y)
		}
		if last.Bottom() <= br.Top() {
			b.Velocity.Y = -math.Abs(b.Velocity.Y)
		}
	case *Paddle:
		b.deflect(o)
	}
}

// deflect sends the ball upwards, angled by where it hit the paddle.
func (b *Ball) deflect(p *Paddle) {
	const direction = -1

	ballCenter := b.Collider().HorizontalCenter()
	paddleRect := p.Collider()
	paddleCenter := paddleRect.HorizontalCenter()

	distance := paddleCenter - ballCenter
	norm := core.ClampF(distance/(paddleCenter-paddleRect.Left()), -1, 1)

	straight := (direction-1)*0.5*math.Pi + 0.5*math.Pi
	angle := norm*b.game.maxDeflection*direction + straight
	b.Velocity = core.FromAngleMagnitude(angle, b.Velocity.Magnitude())
}

// tokenArt is the multiball token drawn over the brick it dropped from.
var tokenArt = core.NewImage(core.ColorBrightMagenta, "<M>")

// Token is a falling multiball power-up.
type Token struct {
	engine.Object
	body   *engine.Sprite
	game   *Game
	caught bool
}

func newToken(g *Game, r core.Rect) *Token {
	body := engine.NewSprite(r, tokenArt)
	return &Token{
		Object: engine.NewObject(body, LayerToken),
		body:   body,
		game:   g,
	}
}

// Update makes the token fall and removes it once it leaves the field.
func (t *Token) Update(dt float64, _ core.InputFrame) {
	if !t.game.running() {
		return
	}
	t.body.Move(core.Vec2(0, t.game.cfg.Physics.TokenSpeed*dt))
	if t.body.Rect().Top() > t.game.playfield.Bottom() {
		t.game.removeToken(t)
	}
}

func (t *Token) OnCollision(other engine.GameObject) {
	if _, ok := other.(*Paddle); ok && !t.caught {
		t.caught = true
		t.game.eng.Post(TokenCaught{Token: t})
	}
}
