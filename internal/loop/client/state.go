package client

import (
	"time"

	"github.com/tomz197/hearts/internal/loop/config"
	"github.com/tomz197/hearts/internal/scene"
	"github.com/tomz197/hearts/internal/session"
)

// Phase is what the client is currently showing.
type Phase int

const (
	PhasePlaying  Phase = iota // The sketch, in any outcome
	PhaseShutdown              // Server is shutting down
)

// ClientState holds per-connection presentation state. The sketch itself
// lives in the session; nothing here feeds back into it.
type ClientState struct {
	Phase      Phase
	Running    bool    // Client loop running
	MarkerSize float64 // Drawn marker size, springing towards growth

	markerVel     float64       // Spring velocity for MarkerSize
	delta         time.Duration // Frame delta time
	shutdownTimer float64       // Countdown before auto-disconnect on shutdown
	isInactive    bool          // Whether the client is in inactive warning state

	// Previous-frame values used to detect when a full clear is needed.
	needsClear     bool
	prevPhase      Phase
	prevBackground scene.Background
	wasInactive    bool
	prevOutcome    session.Outcome
}

// NewClientState creates a new initialized client state.
func NewClientState() *ClientState {
	return &ClientState{
		Phase:      PhasePlaying,
		Running:    true,
		MarkerSize: config.InitialGrowth,
		needsClear: true,
	}
}
