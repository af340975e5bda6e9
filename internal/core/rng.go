package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewStreamRNG creates a deterministic RNG for one of several independent
// streams sharing a seed.
func NewStreamRNG(seed int64, stream uint64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), stream))}
}

// Range returns a uniformly distributed value in [lo, hi]. It consumes one
// draw even when the range is empty, in which case it returns lo.
func (r *RNG) Range(lo, hi float64) float64 {
	f := r.r.Float64()
	if hi <= lo {
		return lo
	}
	return lo + f*(hi-lo)
}
