// Package object holds the drawables a frame is built from and the mapping
// between sketch space and canvas space.
package object

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/tomz197/hearts/internal/draw"
	"github.com/tomz197/hearts/internal/loop/config"
	"github.com/tomz197/hearts/internal/session"
)

// DrawContext provides drawing resources for objects.
type DrawContext struct {
	Canvas     *draw.Canvas       // High-resolution canvas (2x vertical)
	Writer     *draw.ChunkWriter  // Text overlays, positioned in canvas cells
	Renderer   *lipgloss.Renderer // Styles text for the connected terminal
	Foreground draw.Color
	Background draw.Color
}

// Drawable is anything that can put itself on a frame.
type Drawable interface {
	Draw(ctx DrawContext) error
}

// ToView converts a sketch position (origin at the centre, y up) to canvas
// logical coordinates (origin top-left, y down).
func ToView(p session.Point) draw.Point {
	return draw.Point{
		X: p.X + config.WindowWidth/2,
		Y: config.WindowHeight/2 - p.Y,
	}
}

// FromView is the inverse of ToView.
func FromView(x, y float64) session.Point {
	return session.Point{
		X: x - config.WindowWidth/2,
		Y: config.WindowHeight/2 - y,
	}
}
