// Package prng produces reproducible pseudo-random draws seeded from a key
// identity. Each call owns its generator, so no state is shared between
// calls or goroutines.
package prng

import "math/rand/v2"

// stream is the fixed second PCG seed word.
const stream uint64 = 0x9e3779b97f4a7c15

// Nth reseeds a generator with seed and returns the n'th value it draws,
// counting from 1. Nth(seed, 0) is treated as Nth(seed, 1).
func Nth(seed int64, n uint) uint64 {
	var g rand.PCG
	g.Seed(uint64(seed), stream)

	var v = g.Uint64()
	for i := uint(1); i < n; i++ {
		v = g.Uint64()
	}
	return v
}
