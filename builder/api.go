// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/qanneal/ising"
)

const methodBuild = "Build"

// instance accumulates the spin count and edge list while constructors run.
type instance struct {
	n     int
	edges []ising.Edge
}

// grow ensures the instance spans at least n spins.
func (in *instance) grow(n int) {
	if n > in.n {
		in.n = n
	}
}

// connect appends edge (i, j) with a weight drawn from the coupling function.
func (in *instance) connect(cfg builderConfig, i, j int) {
	in.edges = append(in.edges, ising.Edge{I: i, J: j, W: cfg.couplingFn(cfg.rng)})
}

// Constructor adds spins and edges to the instance under construction.
// Constructors validate their parameters first and leave the instance
// untouched on error. Spins are shared: Ring(8) and Star(8) in one build
// overlay on spins 0..7, and a pair emitted twice sums its weights.
type Constructor func(in *instance, cfg builderConfig) error

// Build resolves opts, applies cons in order and returns the resulting sparse
// model. Fields are drawn after all edges.
//
// Errors: ErrTooFewSpins when no constructor added a spin; constructor errors
// wrapped as "Build: ..."; ising construction errors (e.g. a NaN weight).
func Build(opts []Option, cons ...Constructor) (*ising.Sparse, error) {
	cfg := newBuilderConfig(opts...)
	in := &instance{}

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("%s: nil constructor at index %d: %w", methodBuild, i, ErrConstructFailed)
		}
		if err := fn(in, cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", methodBuild, err)
		}
	}
	if in.n == 0 {
		return nil, fmt.Errorf("%s: no spins: %w", methodBuild, ErrTooFewSpins)
	}

	h := make([]float64, in.n)
	for i := range h {
		h[i] = cfg.fieldFn(cfg.rng)
	}

	return ising.NewSparse(h, in.edges, in.n, cfg.constant)
}
