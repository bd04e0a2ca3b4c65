package session

import "testing"

func TestOnPointerMoveCollectsTargetAtPointer(t *testing.T) {
	s, _ := newWithTargets(Point{0, 0})

	got := s.OnPointerMove(Point{0, 0})

	if got != 1 {
		t.Errorf("collected = %d, want 1", got)
	}
	if s.Growth != 22 {
		t.Errorf("growth = %d, want 22", s.Growth)
	}
	if s.Remaining() != 0 {
		t.Errorf("remaining = %d, want 0", s.Remaining())
	}
	if s.Outcome != Won {
		t.Errorf("outcome = %v, want won", s.Outcome)
	}
}

func TestOnPointerMoveFarTargetStays(t *testing.T) {
	s, _ := newWithTargets(Point{200, 200})

	got := s.OnPointerMove(Point{0, 0})

	if got != 0 {
		t.Errorf("collected = %d, want 0", got)
	}
	if s.Growth != 20 {
		t.Errorf("growth = %d, want 20", s.Growth)
	}
	if s.Outcome != Active {
		t.Errorf("outcome = %v, want active", s.Outcome)
	}
	if s.Remaining() != 1 || s.Targets[0] != (Point{200, 200}) {
		t.Errorf("targets = %+v, want [{200 200}]", s.Targets)
	}
}

func TestOnPointerMoveEmptyWins(t *testing.T) {
	s := New(720, 720, 0, &scriptedSampler{})

	s.OnPointerMove(Point{123, -45})

	if s.Outcome != Won {
		t.Fatalf("outcome = %v, want won", s.Outcome)
	}
	if s.Pointer != (Point{123, -45}) {
		t.Fatalf("pointer = %+v, want {123 -45}", s.Pointer)
	}
}

func TestOnPointerMoveBoundaryIsExclusive(t *testing.T) {
	s, _ := newWithTargets(Point{20, 0})

	s.OnPointerMove(Point{0, 0})

	if s.Remaining() != 1 {
		t.Fatal("target exactly at the growth radius should not be collected")
	}
}

func TestOnPointerMoveUsesLiveRadius(t *testing.T) {
	// The second target is 21 away: outside the starting radius of 20 but
	// inside 22, which the radius becomes after the first collection.
	s, _ := newWithTargets(Point{0, 0}, Point{21, 0}, Point{300, 300})

	got := s.OnPointerMove(Point{0, 0})

	if got != 2 {
		t.Fatalf("collected = %d, want 2", got)
	}
	if s.Growth != 24 {
		t.Fatalf("growth = %d, want 24", s.Growth)
	}
	if s.Remaining() != 1 || s.Targets[0] != (Point{300, 300}) {
		t.Fatalf("targets = %+v, want [{300 300}]", s.Targets)
	}
}

func TestOnPointerMoveIsOrderSensitive(t *testing.T) {
	// Same targets, reversed: the 21-away target is tested first against
	// radius 20 and survives.
	s, _ := newWithTargets(Point{21, 0}, Point{0, 0})

	got := s.OnPointerMove(Point{0, 0})

	if got != 1 {
		t.Fatalf("collected = %d, want 1", got)
	}
	if s.Growth != 22 {
		t.Fatalf("growth = %d, want 22", s.Growth)
	}
	if s.Remaining() != 1 || s.Targets[0] != (Point{21, 0}) {
		t.Fatalf("targets = %+v, want [{21 0}]", s.Targets)
	}
	if s.Outcome != Active {
		t.Fatalf("outcome = %v, want active", s.Outcome)
	}
}

func TestOnPointerMoveGrowthCapped(t *testing.T) {
	s, _ := newWithTargets(Point{0, 0}, Point{1, 0}, Point{90, 0}, Point{500, 0})
	s.Growth = 98

	got := s.OnPointerMove(Point{0, 0})

	// The first target lifts growth to the cap, which ends collection for
	// the rest of the pass even though they are in range.
	if got != 1 {
		t.Fatalf("collected = %d, want 1", got)
	}
	if s.Growth != 100 {
		t.Fatalf("growth = %d, want 100", s.Growth)
	}
	want := []Point{{1, 0}, {90, 0}, {500, 0}}
	if len(s.Targets) != len(want) {
		t.Fatalf("targets = %+v, want %+v", s.Targets, want)
	}
	for i, p := range want {
		if s.Targets[i] != p {
			t.Errorf("target %d = %+v, want %+v", i, s.Targets[i], p)
		}
	}
}

func TestOnPointerMoveAtCapCollectsNothing(t *testing.T) {
	s, _ := newWithTargets(Point{5, 0}, Point{300, 300})
	s.Growth = 100

	got := s.OnPointerMove(Point{0, 0})

	if got != 0 {
		t.Fatalf("collected = %d, want 0", got)
	}
	if s.Remaining() != 2 {
		t.Fatalf("remaining = %d, want 2", s.Remaining())
	}
	if s.Growth != 100 || s.Outcome != Active {
		t.Fatalf("growth = %d outcome = %v, want 100 active", s.Growth, s.Outcome)
	}

	// Only decay can end the session from here.
	s.Tick(1)
	s.Tick(2)
	if s.Outcome != Lost {
		t.Fatalf("outcome = %v, want lost", s.Outcome)
	}
}

func TestOnPointerMovePreservesFarOrder(t *testing.T) {
	s, _ := newWithTargets(Point{300, 0}, Point{5, 5}, Point{-300, 0}, Point{0, 300})

	s.OnPointerMove(Point{0, 0})

	want := []Point{{300, 0}, {-300, 0}, {0, 300}}
	if len(s.Targets) != len(want) {
		t.Fatalf("targets = %+v, want %+v", s.Targets, want)
	}
	for i, p := range want {
		if s.Targets[i] != p {
			t.Errorf("target %d = %+v, want %+v", i, s.Targets[i], p)
		}
	}
}

func TestOnPointerMoveDuplicateTargets(t *testing.T) {
	s, _ := newWithTargets(Point{3, 3}, Point{3, 3}, Point{3, 3})

	got := s.OnPointerMove(Point{0, 0})

	if got != 3 || s.Growth != 26 || s.Outcome != Won {
		t.Fatalf("collected=%d growth=%d outcome=%v, want 3 26 won", got, s.Growth, s.Outcome)
	}
}

func TestOnPointerMoveAfterLossOnlyMovesPointer(t *testing.T) {
	s, _ := newWithTargets(Point{0, 0})
	s.Tick(1)
	if s.Outcome != Lost {
		t.Fatalf("outcome = %v, want lost", s.Outcome)
	}

	s.OnPointerMove(Point{10, 10})

	if s.Outcome != Lost {
		t.Fatalf("outcome flipped to %v after loss", s.Outcome)
	}
	if s.Pointer != (Point{10, 10}) {
		t.Fatalf("pointer = %+v, want {10 10}", s.Pointer)
	}
	if s.Growth != 20 {
		t.Fatalf("growth = %d, want 20", s.Growth)
	}
}

func TestGrowthNeverDecreases(t *testing.T) {
	s := New(720, 720, 50, NewRandSampler(3))
	prev := s.Growth
	now := 0.0

	// Sweep the pointer across the window while decay runs.
	for step := 0; s.Outcome == Active && step < 10000; step++ {
		x := float64(step%72)*10 - 360
		y := float64((step/72)%72)*10 - 360
		s.OnPointerMove(Point{x, y})
		now += 0.05
		s.Tick(now)

		if s.Growth < prev {
			t.Fatalf("growth decreased from %d to %d", prev, s.Growth)
		}
		if s.Growth > 100 {
			t.Fatalf("growth %d exceeds cap", s.Growth)
		}
		prev = s.Growth
	}
	if s.Outcome == Active {
		t.Fatal("session should have ended")
	}
}
