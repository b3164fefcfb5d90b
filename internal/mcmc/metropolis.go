// SPDX-License-Identifier: MIT

// Package mcmc holds the single-spin Metropolis kernel shared by the classical
// and quantum annealers.
package mcmc

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/qanneal/spin"
)

// DeltaEvaluator is the part of a backend the sweep needs.
type DeltaEvaluator interface {
	DeltaEnergy(s spin.State, i int) (float64, error)
}

// Accept applies the Metropolis rule: accept when delta <= 0, otherwise with
// probability exp(-beta·delta). No random number is drawn when delta <= 0;
// trajectories depend on that.
func Accept(delta, beta float64, rng *rand.Rand) bool {
	return delta <= 0 || rng.Float64() < math.Exp(-beta*delta)
}

// Sweep visits every spin of s once in index order at inverse temperature beta,
// flipping accepted spins in place. energy is the current energy of s; the
// updated energy is returned. onAccept, when non-nil, runs after every accepted
// flip with the new energy (used for best-state tracking).
// Complexity: O(n · cost(DeltaEnergy)).
func Sweep(eval DeltaEvaluator, s spin.State, beta, energy float64, rng *rand.Rand, onAccept func(energy float64)) (float64, error) {
	var (
		i     int
		delta float64
		err   error
	)
	for i = 0; i < len(s); i++ {
		delta, err = eval.DeltaEnergy(s, i)
		if err != nil {
			return energy, err
		}
		if Accept(delta, beta, rng) {
			s[i] = -s[i]
			energy += delta
			if onAccept != nil {
				onAccept(energy)
			}
		}
	}

	return energy, nil
}
