package session

import "github.com/tomz197/hearts/internal/physics"

// OnPointerMove records the pointer at p and collects every target closer
// than the current growth radius while growth is still below MaxGrowth.
// Targets are tested in stored order against the live radius, so each
// collection can widen the reach for the targets tested after it. Once
// growth reaches MaxGrowth nothing more is collected. Collecting the last
// target (or moving while none are left) wins the session. Returns the
// number collected.
func (s *Session) OnPointerMove(p Point) int {
	s.Pointer = p
	if s.Outcome != Active {
		return 0
	}

	collected := 0
	far := s.Targets[:0]
	for _, t := range s.Targets {
		if s.Growth < MaxGrowth && physics.WithinRadius(t.X, t.Y, p.X, p.Y, float64(s.Growth)) {
			collected++
			s.Growth += GrowthStep
			continue
		}
		far = append(far, t)
	}
	clear(s.Targets[len(far):])
	s.Targets = far

	if len(s.Targets) == 0 {
		s.Outcome = Won
	}
	return collected
}
