// Package engine is a small frame-stepped 2D game engine: an entity list, a
// y-sorted drawable list, and layer buckets swept pairwise for collisions.
// Removals are deferred to the end of the frame so callbacks may remove
// anything, including themselves, while the engine is iterating.
package engine

import "github.com/vovakirdan/leob-arcade/internal/core"

// NoLayer marks a game object that never takes part in collision detection.
const NoLayer = -1

// Surface receives draw calls. *core.Canvas satisfies it.
type Surface interface {
	DrawRect(r core.Rect, c core.Color)
	DrawImage(img core.Image, pos core.Vector2)
	DrawText(pos core.Vector2, text string, c core.Color)
}

// Component is anything with an active flag.
// Implementations are registered by identity and must be pointer types.
type Component interface {
	Active() bool
	SetActive(active bool)
}

// Entity is updated once per frame while active.
type Entity interface {
	Component
	Update(dt float64, in core.InputFrame)
}

// Drawable is drawn once per frame while active, in ascending SortKey order.
// Draw must not change engine state.
type Drawable interface {
	Component
	Pos() core.Vector2
	SetPos(p core.Vector2)
	Size() core.Vector2
	SetSize(s core.Vector2)
	Rect() core.Rect
	SortKey() float64
	Draw(s Surface)
}

// GameObject is an entity that owns one drawable and may sit in a collision
// layer. OnCollision is called by the engine only, once per overlap per frame.
type GameObject interface {
	Entity
	Drawable() Drawable
	CollisionLayer() int
	Collider() core.Rect
	OnCollision(other GameObject)
}

// BaseComponent is an embeddable active flag. The zero value is active.
type BaseComponent struct {
	inactive bool
}

// Active reports whether the component takes part in the frame.
func (b *BaseComponent) Active() bool {
	return !b.inactive
}

// SetActive sets the active flag.
func (b *BaseComponent) SetActive(active bool) {
	b.inactive = !active
}

// Body is an embeddable positioned box: the geometry half of a Drawable.
type Body struct {
	BaseComponent
	pos  core.Vector2
	size core.Vector2
}

// NewBody creates a body covering r.
func NewBody(r core.Rect) Body {
	return Body{pos: r.Pos, size: r.Size}
}

func (b *Body) Pos() core.Vector2       { return b.pos }
func (b *Body) SetPos(p core.Vector2)   { b.pos = p }
func (b *Body) Size() core.Vector2      { return b.size }
func (b *Body) SetSize(s core.Vector2)  { b.size = s }
func (b *Body) Rect() core.Rect         { return core.Rect{Pos: b.pos, Size: b.size} }
func (b *Body) SortKey() float64        { return b.pos.Y }
func (b *Body) Move(delta core.Vector2) { b.pos = b.pos.Add(delta) }
