package session

// Tick applies the decay rule at now (seconds since the session started).
// At most one target is removed per DecayPeriod; the victim is chosen
// uniformly over the current targets. Removing the last target loses the
// session. Returns true if a target was removed.
func (s *Session) Tick(now float64) bool {
	if s.Outcome != Active || len(s.Targets) == 0 {
		return false
	}
	if now <= s.LastDecay+DecayPeriod {
		return false
	}

	i := s.sampler.IntN(len(s.Targets))
	s.Targets = append(s.Targets[:i], s.Targets[i+1:]...)
	s.LastDecay = now

	if len(s.Targets) == 0 {
		s.Outcome = Lost
	}
	return true
}
