// Package config centralizes all tunable sketch parameters.
package config

import (
	"time"

	"github.com/tomz197/hearts/internal/session"
)

// Window - the logical drawing area. The origin sits at the centre with
// y pointing up; rendering scales it to fit the terminal.
const (
	WindowWidth  = session.DefaultWidth
	WindowHeight = session.DefaultHeight
)

// Drawn size of every target heart.
const TargetSize = 20

// InitialGrowth is the marker size before anything is collected. The
// growth rules themselves live in the session package.
const InitialGrowth = session.InitialGrowth

// Messages shown on the terminal screens.
const (
	WonMessage  = "a world of joy!"
	LostMessage = "no more"
)

// Marker animation (harmonica spring towards the current growth).
const (
	MarkerSpringFrequency = 8.0
	MarkerSpringDamping   = 1.0 // Critically damped
)

// Max render resolution (terminal cells). The render area keeps a 2:1
// column:row ratio so the square window stays square with half blocks.
const (
	MaxTermWidth  = 160
	MaxTermHeight = 80
)

// Shutdown
const (
	ShutdownDisplaySeconds = 10.0 // Seconds to show shutdown message before auto-disconnect
	ShutdownGracePeriod    = 15 * time.Second
)

// Inactivity
const (
	InactivityWarnUser       = 90  // Seconds
	InactivityDisconnectUser = 120 // Seconds
)

// Client rendering
const (
	ClientTargetFPS       = 60
	ClientTargetFrameTime = time.Second / ClientTargetFPS
)
