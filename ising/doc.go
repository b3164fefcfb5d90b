// SPDX-License-Identifier: MIT

// Package ising provides the energy models searched by the annealers.
//
// Energy convention:
//
//	E(s) = c + Σ_i h_i·s_i + Σ_{i<j} J_ij·s_i·s_j,   s_i ∈ {-1, +1}
//
// Variants (closed set behind the sealed Model interface):
//   - Dense:  bias vector h and an n×n row-major coupling matrix J (gonum mat.Dense).
//     Only the upper triangle of J is read; the diagonal and lower triangle are ignored.
//   - Sparse: bias vector h and an explicit weighted edge list; an adjacency index is
//     built once so local fields cost O(degree).
//   - QUBO:   not a Model itself; ToIsing maps min xᵀQx, x ∈ {0,1}ⁿ, onto an exactly
//     equivalent Dense model through x = (s+1)/2.
//
// Contract shared by every Model:
//
//	Energy(flip(s, i)) - Energy(s) == DeltaEnergy(s, i)   (up to float rounding)
//
// where DeltaEnergy(s, i) = -2·s_i·(h_i + Σ_j J_ij·s_j).
//
// Determinism & safety:
//   - Models are immutable after construction; sharing one across goroutines is safe.
//   - Constructors copy their inputs and validate every dimension, index and value.
//   - No logging, no panics on user input; failures are sentinel errors (errors.go).
//
// Complexity:
//   - Dense:  Energy O(n²), DeltaEnergy O(n).
//   - Sparse: Energy O(n + |E|), DeltaEnergy O(deg(i)).
package ising
