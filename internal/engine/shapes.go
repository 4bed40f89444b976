package engine

import "github.com/vovakirdan/leob-arcade/internal/core"

// Rectangle is a filled axis-aligned box.
type Rectangle struct {
	Body
	Color core.Color
}

// NewRectangle creates a filled rectangle drawable.
func NewRectangle(r core.Rect, color core.Color) *Rectangle {
	return &Rectangle{Body: NewBody(r), Color: color}
}

func (r *Rectangle) Draw(s Surface) {
	s.DrawRect(r.Rect(), r.Color)
}

// Sprite draws rune art at its position. Size is only used for collisions
// and sorting; the art itself is not scaled.
type Sprite struct {
	Body
	Image core.Image
}

// NewSprite creates a sprite covering r.
func NewSprite(r core.Rect, img core.Image) *Sprite {
	return &Sprite{Body: NewBody(r), Image: img}
}

func (s *Sprite) Draw(dst Surface) {
	dst.DrawImage(s.Image, s.Pos())
}

// Label draws a line of text, e.g. a score read-out.
type Label struct {
	Body
	Text  string
	Color core.Color
}

// NewLabel creates a text label at pos.
func NewLabel(pos core.Vector2, text string, color core.Color) *Label {
	return &Label{Body: Body{pos: pos}, Text: text, Color: color}
}

func (l *Label) Draw(s Surface) {
	s.DrawText(l.Pos(), l.Text, l.Color)
}
