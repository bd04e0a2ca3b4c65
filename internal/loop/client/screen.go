package client

import (
	"fmt"
	"time"

	"github.com/tomz197/hearts/internal/draw"
	"github.com/tomz197/hearts/internal/loop/config"
	"github.com/tomz197/hearts/internal/object"
	"github.com/tomz197/hearts/internal/scene"
)

// backgroundColor maps a scene background to the palette.
func backgroundColor(bg scene.Background) draw.Color {
	switch bg {
	case scene.BackgroundWon:
		return draw.Purple
	case scene.BackgroundLost:
		return draw.Gray
	default:
		return draw.Pink
	}
}

// drawFrame draws the current frame.
func (c *Client) drawFrame() error {
	sc := scene.Project(c.session)
	bg := backgroundColor(sc.Background)
	fg := draw.White
	cw := c.chunkWriter

	// Every frame starts from the scene colours; text overlays reset them.
	cw.WriteString(draw.ColorReset)
	cw.WriteString(bg.Background())
	cw.WriteString(fg.Foreground())

	// On background, phase or inactivity transitions, do a full terminal
	// clear so the new background fills the screen and stale UI goes away.
	if c.state.needsClear ||
		sc.Background != c.state.prevBackground ||
		c.state.Phase != c.state.prevPhase ||
		c.state.isInactive != c.state.wasInactive {
		cw.WriteString("\033[H\033[2J")
		c.canvas.ForceRedraw()
		c.canvas.RenderBorder(cw)
		c.state.needsClear = false
		c.state.prevBackground = sc.Background
		c.state.prevPhase = c.state.Phase
		c.state.wasInactive = c.state.isInactive
	}

	c.canvas.Clear()

	ctx := object.DrawContext{
		Canvas:     c.canvas,
		Writer:     cw,
		Renderer:   c.renderer,
		Foreground: fg,
		Background: bg,
	}

	if c.state.Phase == PhaseShutdown {
		c.canvas.Render(cw)
		c.drawShutdownScreen()
		return cw.Flush()
	}

	for _, t := range sc.Targets {
		if err := (object.Heart{At: t.At, Size: t.Size}).Draw(ctx); err != nil {
			return err
		}
	}
	if sc.Marker != nil {
		marker := object.Heart{At: sc.Marker.At, Size: c.state.MarkerSize}
		if err := marker.Draw(ctx); err != nil {
			return err
		}
	}

	c.canvas.Render(cw)

	if sc.Message != nil {
		msg := object.Text{
			At:       sc.Message.At,
			Value:    sc.Message.Text,
			Centered: sc.Message.Centered,
			Padding:  messagePadding(sc.Message.Size),
		}
		if err := msg.Draw(ctx); err != nil {
			return err
		}
	}

	if c.state.isInactive {
		c.drawInactivityScreen()
	}

	return cw.Flush()
}

// messagePadding grows the message box with the marker, standing in for
// the font size a terminal cannot change.
func messagePadding(size int) int {
	return max(size-config.InitialGrowth, 0) / 10
}

// writeCentered writes a line centred on the canvas at row and marks it
// dirty so the canvas repaints the cells once the text is gone.
func (c *Client) writeCentered(row int, s string) {
	col := max((c.canvas.TerminalWidth()-len(s))/2+1, 1)
	c.chunkWriter.WriteAt(col, row, s)
	c.canvas.MarkTextDirty(col, row, len(s))
}

// drawInactivityScreen draws the inactivity warning screen.
func (c *Client) drawInactivityScreen() {
	centerY := c.canvas.TerminalHeight() / 2
	c.writeCentered(centerY-2, "INACTIVITY WARNING")
	c.writeCentered(centerY, fmt.Sprintf(
		"Disconnecting in %d seconds.",
		int(config.InactivityDisconnectUser-time.Since(c.lastInput).Seconds()),
	))
	c.writeCentered(centerY+2, "Move the pointer to continue")
}

// drawShutdownScreen draws the server shutdown notification screen.
func (c *Client) drawShutdownScreen() {
	centerY := c.canvas.TerminalHeight() / 2
	c.writeCentered(centerY-3, "SERVER SHUTTING DOWN")
	c.writeCentered(centerY-1, "The server is restarting for maintenance.")
	c.writeCentered(centerY, "Please reconnect in a moment.")

	remaining := int(c.state.shutdownTimer) + 1
	c.writeCentered(centerY+2, fmt.Sprintf("Disconnecting in %d seconds...", remaining))
	c.writeCentered(centerY+4, "Press Q to disconnect now")
}
