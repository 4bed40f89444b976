package engine

import "github.com/vovakirdan/leob-arcade/internal/core"

// Object is the embeddable core of a GameObject: it owns one drawable and a
// collision layer. Embedders override Update and OnCollision as needed.
//
//	type Ball struct {
//		engine.Object
//		vel core.Vector2
//	}
type Object struct {
	BaseComponent
	drawable Drawable
	layer    int
}

// NewObject creates an object owning d in the given collision layer.
func NewObject(d Drawable, layer int) Object {
	return Object{drawable: d, layer: layer}
}

// Drawable returns the owned drawable.
func (o *Object) Drawable() Drawable {
	return o.drawable
}

// CollisionLayer returns the layer index, or NoLayer.
func (o *Object) CollisionLayer() int {
	return o.layer
}

// Collider returns the owned drawable's rect.
func (o *Object) Collider() core.Rect {
	return o.drawable.Rect()
}

// SetActive sets the active flag on the object and its drawable.
func (o *Object) SetActive(active bool) {
	o.BaseComponent.SetActive(active)
	o.drawable.SetActive(active)
}

// Pos is shorthand for the drawable's position.
func (o *Object) Pos() core.Vector2 {
	return o.drawable.Pos()
}

// SetPos moves the drawable.
func (o *Object) SetPos(p core.Vector2) {
	o.drawable.SetPos(p)
}

// Update does nothing.
func (o *Object) Update(float64, core.InputFrame) {}

// OnCollision does nothing.
func (o *Object) OnCollision(GameObject) {}
