package session

import "math/rand/v2"

// Sampler supplies the uniform random draws a session needs.
type Sampler interface {
	// Float64Range returns a uniform value in [lo, hi).
	Float64Range(lo, hi float64) float64
	// IntN returns a uniform value in [0, n). n must be positive.
	IntN(n int) int
}

// RandSampler is a Sampler backed by a PCG source.
type RandSampler struct {
	rng *rand.Rand
}

// NewRandSampler creates a sampler seeded with seed.
func NewRandSampler(seed uint64) *RandSampler {
	return &RandSampler{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Float64Range returns a uniform value in [lo, hi).
func (r *RandSampler) Float64Range(lo, hi float64) float64 {
	return lo + r.rng.Float64()*(hi-lo)
}

// IntN returns a uniform value in [0, n).
func (r *RandSampler) IntN(n int) int {
	return r.rng.IntN(n)
}

// Compile-time check that RandSampler implements Sampler.
var _ Sampler = (*RandSampler)(nil)
