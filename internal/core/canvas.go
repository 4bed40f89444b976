package core

import "math"

// Image is a small piece of rune art drawn in a single color.
// Space runes are transparent when blitted.
type Image struct {
	rows  [][]rune
	width int
	Color Color
}

// NewImage builds an image from text lines. Shorter lines are padded
// with transparent cells.
func NewImage(color Color, lines ...string) Image {
	img := Image{Color: color, rows: make([][]rune, len(lines))}
	for i, line := range lines {
		img.rows[i] = []rune(line)
		img.width = Max(img.width, len(img.rows[i]))
	}
	return img
}

// Width returns the widest row length in cells.
func (img Image) Width() int {
	return img.width
}

// Height returns the number of rows.
func (img Image) Height() int {
	return len(img.rows)
}

// At returns the rune at (x, y), or space outside the art.
func (img Image) At(x, y int) rune {
	if y < 0 || y >= len(img.rows) || x < 0 || x >= len(img.rows[y]) {
		return ' '
	}
	return img.rows[y][x]
}

// Canvas is a world-space drawing surface backed by a Screen.
// Games keep their own coordinate system (e.g. an 800x600 playfield) and the
// canvas scales it onto however many cells the terminal has.
type Canvas struct {
	screen *Screen
	world  Vector2
	scaleX float64
	scaleY float64
}

// NewCanvas creates a canvas mapping a world of the given size onto screen.
func NewCanvas(screen *Screen, world Vector2) *Canvas {
	c := &Canvas{screen: screen, world: world}
	c.rescale()
	return c
}

// rescale recomputes the world-to-cell factors from the current screen size.
func (c *Canvas) rescale() {
	c.scaleX, c.scaleY = 1, 1
	if c.world.X > 0 {
		c.scaleX = float64(c.screen.Width()) / c.world.X
	}
	if c.world.Y > 0 {
		c.scaleY = float64(c.screen.Height()) / c.world.Y
	}
}

// Screen returns the underlying cell buffer.
func (c *Canvas) Screen() *Screen {
	return c.screen
}

// World returns the world size mapped onto the screen.
func (c *Canvas) World() Vector2 {
	return c.world
}

// Resize resizes the backing screen and updates the scale.
func (c *Canvas) Resize(width, height int) {
	c.screen.Resize(width, height)
	c.rescale()
}

// WorldToCell converts a world position to the cell that contains it.
func (c *Canvas) WorldToCell(v Vector2) (int, int) {
	return int(math.Floor(v.X * c.scaleX)), int(math.Floor(v.Y * c.scaleY))
}

// Fill paints every cell with the given cell.
func (c *Canvas) Fill(cell Cell) {
	c.screen.FillCell(cell)
}

// DrawRect fills every cell whose center lies inside r. A rect too small to
// cover any cell center still paints the cell under its own center, so small
// objects like the ball never vanish.
func (c *Canvas) DrawRect(r Rect, color Color) {
	x0, x1 := cellSpan(r.Left(), r.Right(), c.scaleX)
	y0, y1 := cellSpan(r.Top(), r.Bottom(), c.scaleY)

	if x1 < x0 {
		x0 = int(math.Floor(r.HorizontalCenter() * c.scaleX))
		x1 = x0
	}
	if y1 < y0 {
		y0 = int(math.Floor(r.VerticalCenter() * c.scaleY))
		y1 = y0
	}

	c.screen.FillCells(x0, y0, x1-x0+1, y1-y0+1, Cell{Rune: '█', Color: color})
}

// cellSpan returns the first and last cell index whose center falls in [lo, hi).
func cellSpan(lo, hi, scale float64) (int, int) {
	first := int(math.Ceil(lo*scale - 0.5))
	last := int(math.Ceil(hi*scale-0.5)) - 1
	return first, last
}

// DrawImage blits img with its top-left corner at the cell containing pos.
// Images are not scaled.
func (c *Canvas) DrawImage(img Image, pos Vector2) {
	x0, y0 := c.WorldToCell(pos)
	for y := 0; y < img.Height(); y++ {
		for x := 0; x < img.Width(); x++ {
			r := img.At(x, y)
			if r == ' ' {
				continue
			}
			c.screen.SetCell(x0+x, y0+y, Cell{Rune: r, Color: img.Color})
		}
	}
}

// DrawText writes text starting at the cell containing pos.
func (c *Canvas) DrawText(pos Vector2, text string, color Color) {
	x, y := c.WorldToCell(pos)
	c.screen.DrawColorText(x, y, text, color)
}
