// SPDX-License-Identifier: MIT

// Package spin defines the unit configuration of an Ising search: a fixed-length
// vector of ±1 values.
//
// A State is a plain []int8 so that views into larger buffers (for example one
// Trotter slice of a quantum lattice) are States without copying. Every public
// constructor yields a valid State; code that mutates a State in place must keep
// each element in {-1, +1}.
//
// Observables:
//   - Magnetization: mean spin value, in [-1, 1].
//   - Overlap: normalized inner product of two equal-length states, in [-1, 1].
//
// Errors:
//   - ErrEmptyState       n <= 0 at construction.
//   - ErrInvalidSpin      an element outside {-1, +1}.
//   - ErrSizeMismatch     a state whose length does not match the expected size.
//   - ErrIndexOutOfRange  a flip index outside [0, n).
package spin
