package object

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/tomz197/hearts/internal/session"
)

// Text is a styled line drawn over the canvas.
type Text struct {
	At       session.Point // Centre of the text in sketch space
	Value    string
	Centered bool // Ignore At and use the middle of the canvas
	Padding  int  // Horizontal padding on each side
}

// Draw writes the text at its position, clamped to the canvas, and marks
// the covered cells dirty so the canvas repaints them next frame.
func (t Text) Draw(ctx DrawContext) error {
	if t.Value == "" {
		return nil
	}

	style := ctx.Renderer.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ctx.Background.Hex)).
		Background(lipgloss.Color(ctx.Foreground.Hex)).
		Padding(0, t.Padding)
	rendered := style.Render(t.Value)
	width := lipgloss.Width(rendered)

	canvasW := ctx.Canvas.TerminalWidth()
	canvasH := ctx.Canvas.TerminalHeight()

	var col, row int
	if t.Centered {
		col = (canvasW-width)/2 + 1
		row = canvasH/2 + 1
	} else {
		v := ToView(t.At)
		col, row = ctx.Canvas.LogicalToTerminal(v.X, v.Y)
		col -= width / 2
	}

	// Clamp to canvas bounds
	col = min(col, canvasW-width+1)
	col = max(col, 1)
	row = min(max(row, 1), canvasH)

	ctx.Writer.WriteAt(col, row, rendered)
	ctx.Canvas.MarkTextDirty(col, row, width)
	return nil
}

var _ Drawable = Text{}
