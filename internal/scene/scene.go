// Package scene projects a session onto a description of what to draw.
package scene

import (
	"github.com/tomz197/hearts/internal/loop/config"
	"github.com/tomz197/hearts/internal/session"
)

// Background identifies the fill of the whole window.
type Background int

const (
	BackgroundActive Background = iota // Pink, while playing
	BackgroundWon                      // Purple
	BackgroundLost                     // Gray
)

// Sprite is a heart at a position in sketch space.
type Sprite struct {
	At   session.Point
	Size float64
}

// Message is a line of text. Centered messages ignore At and sit in the
// middle of the window.
type Message struct {
	Text     string
	At       session.Point
	Size     int
	Centered bool
}

// Scene is everything needed to draw one frame.
type Scene struct {
	Background Background
	Marker     *Sprite // Pointer marker; nil when hidden
	Targets    []Sprite
	Message    *Message
}

// Project builds the scene for the current state of s. The result does
// not alias s.
func Project(s *session.Session) Scene {
	switch s.Outcome {
	case session.Won:
		return Scene{
			Background: BackgroundWon,
			Message: &Message{
				Text:     config.WonMessage,
				Size:     s.Growth,
				Centered: true,
			},
		}
	case session.Lost:
		return Scene{
			Background: BackgroundLost,
			Marker:     marker(s),
			Message: &Message{
				Text: config.LostMessage,
				At:   s.Pointer,
				Size: s.Growth,
			},
		}
	default:
		targets := make([]Sprite, len(s.Targets))
		for i, t := range s.Targets {
			targets[i] = Sprite{At: t, Size: config.TargetSize}
		}
		return Scene{
			Background: BackgroundActive,
			Marker:     marker(s),
			Targets:    targets,
		}
	}
}

func marker(s *session.Session) *Sprite {
	return &Sprite{At: s.Pointer, Size: float64(s.Growth)}
}
