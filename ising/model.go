// SPDX-License-Identifier: MIT

package ising

import "github.com/katalvlaran/qanneal/spin"

// Kind tags the concrete variant behind a Model.
type Kind int

const (
	// KindDense is a dense-coupling model (*Dense).
	KindDense Kind = iota
	// KindSparse is an edge-list model (*Sparse).
	KindSparse
)

// String returns the lowercase variant name.
func (k Kind) String() string {
	switch k {
	case KindDense:
		return "dense"
	case KindSparse:
		return "sparse"
	default:
		return "unknown"
	}
}

// Model is the energy capability consumed by backends and annealers.
// The set of implementations is closed: new physics kernels are new variants
// in this package, not external types.
type Model interface {
	// Size returns the number of spins n.
	Size() int
	// Kind reports the concrete variant.
	Kind() Kind
	// Energy recomputes E(s) from scratch.
	Energy(s spin.State) (float64, error)
	// DeltaEnergy returns E(flip(s, i)) - E(s) without mutating s.
	DeltaEnergy(s spin.State, i int) (float64, error)

	sealed()
}

// Compile-time conformance.
var (
	_ Model = (*Dense)(nil)
	_ Model = (*Sparse)(nil)
)
