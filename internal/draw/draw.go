// Package draw renders to ANSI terminals: a half-block canvas, shape
// helpers, terminal control sequences and the colour palette.
package draw

import (
	"fmt"
	"io"
)

// Point represents a 2D coordinate in canvas logical space (y down).
type Point struct {
	X, Y float64
}

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockEmpty     = ' '
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// Mouse reporting: any-motion tracking with SGR extended coordinates.
const (
	mouseOn  = "\033[?1003h\033[?1006h"
	mouseOff = "\033[?1006l\033[?1003l"
)

// ClearScreen clears the terminal and moves cursor to top-left.
// The current background colour fills the cleared area.
func ClearScreen(w io.Writer) {
	fmt.Fprint(w, "\033[H\033[2J")
}

// HideCursor hides the terminal cursor.
func HideCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25l")
}

// ShowCursor shows the terminal cursor.
func ShowCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25h")
}

// MoveCursor moves cursor to a specific position (1-based).
func MoveCursor(w io.Writer, x, y int) {
	fmt.Fprintf(w, "\033[%d;%dH", y, x)
}

// EnableMouse turns on pointer motion reporting.
func EnableMouse(w io.Writer) {
	fmt.Fprint(w, mouseOn)
}

// DisableMouse turns off pointer motion reporting.
func DisableMouse(w io.Writer) {
	fmt.Fprint(w, mouseOff)
}

// ResetColors restores the terminal's default colours.
func ResetColors(w io.Writer) {
	fmt.Fprint(w, ColorReset)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
