package cegar

import "math/rand"

// RNG draws a uniform random integer in [0, n). Injected rather than
// called globally so a run is reproducible given a seed.
type RNG interface {
	Intn(n int) int
}

// NewRNG returns an RNG backed by math/rand, seeded with seed.
func NewRNG(seed int64) RNG {
	return rand.New(rand.NewSource(seed))
}
