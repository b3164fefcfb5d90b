// SPDX-License-Identifier: MIT

package sqa

import "errors"

var (
	// ErrNilBackend is returned when an annealer is built without a backend.
	ErrNilBackend = errors.New("sqa: backend is nil")

	// ErrEmptySchedule is returned for a quantum schedule with no steps.
	ErrEmptySchedule = errors.New("sqa: schedule must contain betas")

	// ErrNoSlices is returned when the Trotter slice count is <= 0.
	ErrNoSlices = errors.New("sqa: trotter slices must be > 0")

	// ErrNoReplicas is returned when the replica count is <= 0.
	ErrNoReplicas = errors.New("sqa: replicas must be > 0")

	// ErrNoSweeps is returned when sweeps per β is <= 0.
	ErrNoSweeps = errors.New("sqa: sweeps per beta must be > 0")

	// ErrNegativeWorldline is returned when worldline sweeps is < 0.
	ErrNegativeWorldline = errors.New("sqa: worldline sweeps must be >= 0")

	// ErrEmptyLattice is returned when any lattice dimension is <= 0.
	ErrEmptyLattice = errors.New("sqa: lattice dimensions must be > 0")

	// ErrLatticeIndex signals a (replica, slice, spin) coordinate outside the lattice.
	ErrLatticeIndex = errors.New("sqa: lattice index out of range")
)
