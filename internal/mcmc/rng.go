// SPDX-License-Identifier: MIT

// Package mcmc - RNG utilities shared by every annealer.
//
// Goals:
//   - Determinism: same seed ⇒ identical trajectories across runs and platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Each algorithm instance owns its own.
package mcmc

import "math/rand"

// DefaultSeed is used when callers pass seed == 0. The value is arbitrary but
// stable so that an unseeded annealer is still reproducible.
const DefaultSeed uint64 = 1

// ResolveSeed applies the seed==0 ⇒ DefaultSeed policy.
func ResolveSeed(seed uint64) uint64 {
	if seed == 0 {
		return DefaultSeed
	}

	return seed
}

// NewRand returns a deterministic *rand.Rand for seed (after ResolveSeed).
// Complexity: O(1).
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(int64(ResolveSeed(seed))))
}
