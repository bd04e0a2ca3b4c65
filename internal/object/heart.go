package object

import (
	"github.com/tomz197/hearts/internal/draw"
	"github.com/tomz197/hearts/internal/session"
)

// Heart is a filled heart drawn on the canvas.
type Heart struct {
	At   session.Point
	Size float64 // Width in sketch units
}

// Draw fills the heart outline on the canvas.
func (h Heart) Draw(ctx DrawContext) error {
	if h.Size <= 0 {
		return nil
	}
	v := ToView(h.At)
	pts := draw.HeartPoints(ctx.Canvas.BorrowPoints(draw.HeartSegments), v.X, v.Y, h.Size)
	ctx.Canvas.DrawPolygon(pts, true)
	return nil
}

var _ Drawable = Heart{}
