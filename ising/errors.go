// SPDX-License-Identifier: MIT

package ising

import "errors"

// NOTE ON STATE ERRORS
// --------------------
// Malformed states passed to Energy/DeltaEnergy are reported with the spin
// package sentinels (spin.ErrSizeMismatch, spin.ErrInvalidSpin,
// spin.ErrIndexOutOfRange), wrapped with the model context.

var (
	// ErrEmptyModel is returned when a model of size n <= 0 is requested.
	ErrEmptyModel = errors.New("ising: model size must be > 0")

	// ErrDimensionMismatch indicates that h, J or Q does not match n.
	ErrDimensionMismatch = errors.New("ising: dimension mismatch")

	// ErrEdgeIndex indicates a sparse edge endpoint outside [0, n).
	ErrEdgeIndex = errors.New("ising: edge index out of range")

	// ErrSelfEdge indicates a sparse edge with i == j.
	ErrSelfEdge = errors.New("ising: self-edge not allowed")

	// ErrNaNInf signals a NaN or ±Inf coefficient.
	ErrNaNInf = errors.New("ising: NaN or Inf coefficient")

	// ErrInvalidBinary signals a QUBO assignment element outside {0, 1}.
	ErrInvalidBinary = errors.New("ising: binary variables must be 0 or 1")
)
