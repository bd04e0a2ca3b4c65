// Package session holds the state of one sketch and the two rules that
// evolve it: time-driven decay and pointer-driven collection.
//
// A Session is owned by a single goroutine. Tick and OnPointerMove must
// not be called concurrently; each runs to completion before the next.
package session

// Point is a position in sketch space (origin at the window centre, y up).
type Point struct {
	X, Y float64
}

// Outcome is the phase of a session.
type Outcome int

const (
	Active Outcome = iota // Targets remain, both rules apply
	Won                   // Every target was collected
	Lost                  // Every target decayed away
)

// String returns the lowercase name of the outcome.
func (o Outcome) String() string {
	switch o {
	case Active:
		return "active"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal reports whether the outcome is final.
func (o Outcome) Terminal() bool {
	return o == Won || o == Lost
}

// Session is the mutable record shared by the decay and collection rules.
type Session struct {
	Pointer   Point   // Last reported pointer position
	Targets   []Point // Remaining targets; order matters for collection
	Growth    int     // Marker size and collection radius
	LastDecay float64 // Seconds since start of the last decay
	Outcome   Outcome

	sampler Sampler
}

// New creates a session with count targets placed uniformly inside a
// width x height window centred on the origin. For each target x is drawn
// before y.
func New(width, height float64, count int, sampler Sampler) *Session {
	if count < 0 {
		count = 0
	}
	targets := make([]Point, 0, count)
	for range count {
		x := sampler.Float64Range(-0.5*width, 0.5*width)
		y := sampler.Float64Range(-0.5*height, 0.5*height)
		targets = append(targets, Point{X: x, Y: y})
	}
	return &Session{
		Targets: targets,
		Growth:  InitialGrowth,
		Outcome: Active,
		sampler: sampler,
	}
}

// NewDefault creates a session with the standard window and target count.
func NewDefault(sampler Sampler) *Session {
	return New(DefaultWidth, DefaultHeight, DefaultTargets, sampler)
}

// Remaining returns the number of targets left.
func (s *Session) Remaining() int {
	return len(s.Targets)
}

// Done reports whether the session has reached a terminal outcome.
func (s *Session) Done() bool {
	return s.Outcome.Terminal()
}
