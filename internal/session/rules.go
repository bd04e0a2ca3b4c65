package session

// Sketch rules. Decay and collection read these directly so the session
// does not depend on any rendering or loop settings.
const (
	DefaultWidth   = 720
	DefaultHeight  = 720
	DefaultTargets = 50

	DecayPeriod   = 0.25 // Seconds between random target removals
	InitialGrowth = 20
	MaxGrowth     = 100 // Collection stops once growth reaches this
	GrowthStep    = 2
)
