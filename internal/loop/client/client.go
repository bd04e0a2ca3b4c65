package client

import (
	"bufio"
	"io"
	"time"

	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"

	"github.com/tomz197/hearts/internal/draw"
	"github.com/tomz197/hearts/internal/input"
	"github.com/tomz197/hearts/internal/loop/config"
	"github.com/tomz197/hearts/internal/loop/server"
	"github.com/tomz197/hearts/internal/object"
	"github.com/tomz197/hearts/internal/session"
)

// Client runs one sketch for a single connection. All session mutation
// happens on the goroutine that calls Run.
type Client struct {
	registry     server.Registry
	handle       *server.ClientHandle
	state        *ClientState
	session      *session.Session
	canvas       *draw.Canvas
	chunkWriter  *draw.ChunkWriter // Accumulates frame output for chunked writes
	renderer     *lipgloss.Renderer
	writer       io.Writer
	inputStream  *input.Stream
	spring       harmonica.Spring
	started      time.Time
	lastInput    time.Time
	username     string
	termSizeFunc draw.TermSizeFunc
	logger       *log.Logger
	inactivity   bool
}

// ClientOptions configures the client.
type ClientOptions struct {
	TermSizeFunc draw.TermSizeFunc
	Username     string
	Logger       *log.Logger     // Nil discards log output
	Sampler      session.Sampler // Nil seeds a RandSampler from the clock
	// DisconnectInactive enables the inactivity warning and disconnect.
	DisconnectInactive bool
}

// NewClient creates a new client registered with the given registry.
func NewClient(reg server.Registry, r *bufio.Reader, w io.Writer, opts ClientOptions) *Client {
	termSizeFunc := opts.TermSizeFunc
	if termSizeFunc == nil {
		termSizeFunc = draw.DefaultTermSizeFunc
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	sampler := opts.Sampler
	if sampler == nil {
		sampler = session.NewRandSampler(uint64(time.Now().UnixNano()))
	}

	handle := reg.RegisterClient(opts.Username)

	// Create canvas sized to the largest square that fits
	termWidth, termHeight, _ := termSizeFunc()
	renderWidth, renderHeight, offsetCol, offsetRow := draw.FitSquare(termWidth, termHeight, config.MaxTermWidth, config.MaxTermHeight)
	canvas := draw.NewScaledCanvas(renderWidth, renderHeight, config.WindowWidth, config.WindowHeight)
	canvas.SetOffset(offsetCol, offsetRow)
	chunkWriter := draw.NewChunkWriter(w, offsetCol, offsetRow)

	// Colours are always emitted; the peer may not be a detectable TTY.
	renderer := lipgloss.NewRenderer(w)
	renderer.SetColorProfile(termenv.TrueColor)

	now := time.Now()
	return &Client{
		registry:     reg,
		handle:       handle,
		state:        NewClientState(),
		session:      session.NewDefault(sampler),
		canvas:       canvas,
		chunkWriter:  chunkWriter,
		renderer:     renderer,
		writer:       w,
		inputStream:  input.StartStream(r),
		spring:       harmonica.NewSpring(harmonica.FPS(config.ClientTargetFPS), config.MarkerSpringFrequency, config.MarkerSpringDamping),
		started:      now,
		lastInput:    now,
		username:     opts.Username,
		termSizeFunc: termSizeFunc,
		logger:       logger.With("session", handle.SessionID),
		inactivity:   opts.DisconnectInactive,
	}
}

// Run starts the client loop. Blocks until the client quits, the input
// ends, or a server shutdown countdown runs out.
func (c *Client) Run() error {
	draw.HideCursor(c.writer)
	draw.EnableMouse(c.writer)
	defer func() {
		draw.DisableMouse(c.writer)
		draw.ResetColors(c.writer)
		draw.ClearScreen(c.writer)
		draw.ShowCursor(c.writer)
	}()
	defer c.registry.UnregisterClient(c.handle.ID)
	defer c.inputStream.Stop()

	c.started = time.Now()
	c.logger.Info("session started", "user", c.username, "targets", c.session.Remaining())

	lastTime := c.started
	for c.state.Running {
		frameStart := time.Now()
		c.state.delta = frameStart.Sub(lastTime)
		lastTime = frameStart

		// Pointer events first, then the clock, matching event-then-update order
		c.processInput()

		// Check for server events
		c.processServerEvents()

		// Handle screen resize
		c.updateScreen()

		switch c.state.Phase {
		case PhasePlaying:
			c.updatePlayingState(frameStart)
		case PhaseShutdown:
			c.updateShutdownState()
		}

		// Draw frame
		if err := c.drawFrame(); err != nil {
			return err
		}

		// Frame timing
		elapsed := time.Since(frameStart)
		if elapsed < config.ClientTargetFrameTime {
			time.Sleep(config.ClientTargetFrameTime - elapsed)
		}
	}

	return nil
}

// processInput drains input and feeds pointer moves to the session in
// arrival order.
func (c *Client) processInput() {
	events := input.ReadEvents(c.inputStream)
	if c.inputStream.Closed() {
		c.state.Running = false
	}

	if len(events) > 0 {
		c.lastInput = time.Now()
		c.state.isInactive = false
	} else if c.inactivity {
		idle := time.Since(c.lastInput).Seconds()
		if idle > config.InactivityDisconnectUser {
			c.logger.Info("disconnecting inactive client", "user", c.username)
			c.state.Running = false
		} else if idle > config.InactivityWarnUser {
			c.state.isInactive = true
		}
	}

	for _, ev := range events {
		switch ev.Type {
		case input.EventQuit:
			c.state.Running = false
			return
		case input.EventPointer:
			if c.state.Phase != PhasePlaying {
				continue
			}
			if p, ok := c.pointerToSketch(ev.Col, ev.Row); ok {
				c.session.OnPointerMove(p)
			}
		}
	}
}

// pointerToSketch maps a 0-based terminal cell to sketch coordinates.
// Cells outside the render area are rejected.
func (c *Client) pointerToSketch(col, row int) (session.Point, bool) {
	x, y, ok := c.canvas.TerminalToLogical(col, row)
	if !ok {
		return session.Point{}, false
	}
	return object.FromView(x, y), true
}

// processServerEvents handles events from the hub.
func (c *Client) processServerEvents() {
	for {
		select {
		case event, ok := <-c.handle.EventsCh:
			if !ok {
				c.state.Running = false
				return
			}
			switch event.Type {
			case server.EventServerShutdown:
				c.state.Phase = PhaseShutdown
				c.state.shutdownTimer = config.ShutdownDisplaySeconds
			}
		default:
			return
		}
	}
}

// updateScreen handles terminal resize. On actual size changes the next
// frame clears the terminal to remove residual pixels and old borders.
func (c *Client) updateScreen() {
	termWidth, termHeight, err := c.termSizeFunc()
	if err != nil {
		return
	}
	renderWidth, renderHeight, offsetCol, offsetRow := draw.FitSquare(termWidth, termHeight, config.MaxTermWidth, config.MaxTermHeight)

	if renderWidth != c.canvas.TerminalWidth() || renderHeight != c.canvas.TerminalHeight() ||
		offsetCol != c.canvas.OffsetCol() || offsetRow != c.canvas.OffsetRow() {
		c.state.needsClear = true
	}

	c.canvas.Resize(renderWidth, renderHeight)
	c.canvas.SetOffset(offsetCol, offsetRow)
	c.chunkWriter.SetOffset(offsetCol, offsetRow)
}

// updatePlayingState advances the decay clock and the marker animation.
func (c *Client) updatePlayingState(now time.Time) {
	c.session.Tick(now.Sub(c.started).Seconds())

	if o := c.session.Outcome; o != c.state.prevOutcome {
		c.state.prevOutcome = o
		c.logger.Info("session ended",
			"user", c.username,
			"outcome", o,
			"growth", c.session.Growth,
			"remaining", c.session.Remaining(),
			"elapsed", now.Sub(c.started).Round(time.Millisecond),
		)
	}

	c.state.MarkerSize, c.state.markerVel = c.spring.Update(c.state.MarkerSize, c.state.markerVel, float64(c.session.Growth))
}

// updateShutdownState handles the shutdown screen countdown.
func (c *Client) updateShutdownState() {
	c.state.shutdownTimer -= c.state.delta.Seconds()
	if c.state.shutdownTimer <= 0 {
		c.state.Running = false
	}
}
