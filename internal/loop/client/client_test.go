package client

import (
	"bufio"
	"bytes"
	"math"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/tomz197/hearts/internal/draw"
	"github.com/tomz197/hearts/internal/loop/config"
	"github.com/tomz197/hearts/internal/loop/server"
	"github.com/tomz197/hearts/internal/session"
)

type fixedSampler struct{}

func (fixedSampler) Float64Range(lo, hi float64) float64 { return lo }
func (fixedSampler) IntN(n int) int                     { return 0 }

// safeBuffer guards a bytes.Buffer shared with the deferred cleanup writes.
type safeBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *safeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *safeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func fixedSize(w, h int) draw.TermSizeFunc {
	return func() (int, int, error) { return w, h, nil }
}

func newTestClient(hub *server.Hub, in string, out *safeBuffer) *Client {
	return NewClient(hub, bufio.NewReader(strings.NewReader(in)), out, ClientOptions{
		TermSizeFunc: fixedSize(160, 80),
		Username:     "tester",
		Sampler:      fixedSampler{},
	})
}

func TestPointerToSketch(t *testing.T) {
	hub := server.NewHub(nil)
	c := newTestClient(hub, "", &safeBuffer{})

	// Top-left cell of a 160x80 canvas is near (-360, 360).
	p, ok := c.pointerToSketch(0, 0)
	if !ok {
		t.Fatal("top-left cell should be inside")
	}
	if math.Abs(p.X-(-357.75)) > 1e-6 || math.Abs(p.Y-355.5) > 1e-6 {
		t.Fatalf("top-left = %+v, want (-357.75, 355.5)", p)
	}

	if _, ok := c.pointerToSketch(160, 0); ok {
		t.Fatal("cell right of canvas should be rejected")
	}
}

func TestPointerToSketchWithOffset(t *testing.T) {
	hub := server.NewHub(nil)
	c := NewClient(hub, bufio.NewReader(strings.NewReader("")), &safeBuffer{}, ClientOptions{
		TermSizeFunc: fixedSize(200, 50),
		Sampler:      fixedSampler{},
	})

	// 100x50 render area centred with a 50 column offset.
	if _, ok := c.pointerToSketch(49, 25); ok {
		t.Fatal("cell in the left margin should be rejected")
	}
	p, ok := c.pointerToSketch(100, 25)
	if !ok {
		t.Fatal("centre cell should be inside")
	}
	if math.Abs(p.X) > 5 || math.Abs(p.Y) > 8 {
		t.Fatalf("centre cell = %+v, want near origin", p)
	}
}

func TestRunCollectsAndWins(t *testing.T) {
	hub := server.NewHub(nil)
	out := &safeBuffer{}
	// Pointer report at the centre cell (1-based 81;41), then EOF.
	c := newTestClient(hub, "\x1b[<35;81;41M", out)
	c.session.Targets = []session.Point{{X: 0, Y: 0}}

	done := make(chan error, 1)
	go func() { done <- c.Run() }()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run() error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after input ended")
	}

	if c.session.Outcome != session.Won {
		t.Fatalf("outcome = %v, want won", c.session.Outcome)
	}
	if c.session.Growth != 22 {
		t.Fatalf("growth = %d, want 22", c.session.Growth)
	}
	if hub.Count() != 0 {
		t.Fatalf("client still registered after Run")
	}

	got := out.String()
	if !strings.Contains(got, draw.Purple.Background()) {
		t.Error("won frame should switch to the purple background")
	}
	if !strings.Contains(got, config.WonMessage) {
		t.Error("won frame should show the joy message")
	}
	if !strings.Contains(got, "\033[?1003h") || !strings.Contains(got, "\033[?1003l") {
		t.Error("mouse tracking should be enabled and then disabled")
	}
}

func TestQuitStopsBeforeLaterEvents(t *testing.T) {
	hub := server.NewHub(nil)
	c := newTestClient(hub, "q\x1b[<35;81;41M", &safeBuffer{})
	c.session.Targets = []session.Point{{X: 0, Y: 0}}

	deadline := time.Now().Add(5 * time.Second)
	for c.state.Running && time.Now().Before(deadline) {
		c.processInput()
		time.Sleep(time.Millisecond)
	}

	if c.state.Running {
		t.Fatal("quit should stop the client")
	}
	if c.session.Outcome != session.Active {
		t.Fatal("events after quit should not reach the session")
	}
}

func TestShutdownEventSwitchesPhase(t *testing.T) {
	hub := server.NewHub(nil)
	c := newTestClient(hub, "", &safeBuffer{})

	c.handle.EventsCh <- server.ClientEvent{Type: server.EventServerShutdown}
	c.processServerEvents()

	if c.state.Phase != PhaseShutdown {
		t.Fatalf("phase = %v, want shutdown", c.state.Phase)
	}
	if c.state.shutdownTimer != config.ShutdownDisplaySeconds {
		t.Fatalf("shutdown timer = %f", c.state.shutdownTimer)
	}

	c.state.delta = time.Duration(config.ShutdownDisplaySeconds+1) * time.Second
	c.updateShutdownState()
	if c.state.Running {
		t.Fatal("client should stop once the shutdown countdown ends")
	}
}

func TestMarkerSpringsTowardsGrowth(t *testing.T) {
	hub := server.NewHub(nil)
	c := newTestClient(hub, "", &safeBuffer{})
	c.session.Growth = 60

	for i := 0; i < 3*config.ClientTargetFPS; i++ {
		c.updatePlayingState(c.started)
	}

	if math.Abs(c.state.MarkerSize-60) > 0.5 {
		t.Fatalf("marker size = %f, want about 60", c.state.MarkerSize)
	}
}

func TestMessagePadding(t *testing.T) {
	tests := map[int]int{20: 0, 29: 0, 30: 1, 100: 8, 5: 0}
	for size, want := range tests {
		if got := messagePadding(size); got != want {
			t.Errorf("messagePadding(%d) = %d, want %d", size, got, want)
		}
	}
}
