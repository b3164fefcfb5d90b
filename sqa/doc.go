// SPDX-License-Identifier: MIT

// Package sqa implements path-integral simulated quantum annealing (SQA) over
// an Ising model.
//
// The transverse-field problem is mapped onto P coupled classical copies of the
// system (Trotter slices) arranged on a ring. Each replica of a Lattice owns
// its own ring; replicas never interact.
//
// Per schedule step (β, Γ):
//   - J⊥ = ½·ln(1/tanh(max(βΓ/P, 1e-12))) couples each spin to the same spin in
//     the previous and next slice (cyclic).
//   - Local sweeps visit slices in order and spins in order; a flip costs
//     (β/P)·ΔE_classical + 2·J⊥·s·(s_prev + s_next) and is accepted by the
//     Metropolis rule at unit temperature.
//   - Worldline sweeps propose flipping spin i in every slice at once, with cost
//     (β/P)·Σ_t ΔE_classical(slice t, i). The Trotter term is not included.
//   - The mean classical energy over all (replica, slice) pairs is recorded and
//     the lowest-energy single slice seen so far is kept as the best state.
//
// Determinism:
//   - Same seed, model, schedule, slices, replicas and sweep counts ⇒ identical
//     Result. Seed 0 maps to the fixed default seed.
//
// Concurrency:
//   - An Annealer is single-threaded; do not call Run concurrently on one instance.
package sqa
