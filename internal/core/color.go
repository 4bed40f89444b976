package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// ANSI returns the 256-color palette index for c, or -1 for the terminal
// default.
func (c Color) ANSI() int {
	switch {
	case c == ColorDefault:
		return -1
	case c <= ColorWhite:
		return int(c)
	case c <= ColorBrightWhite:
		// Bright variants skip palette index 8 (bright black)
		return int(c) + 1
	case c == ColorOrange:
		return 208
	case c == ColorGray:
		return 245
	}
	return -1
}
