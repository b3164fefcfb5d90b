// SPDX-License-Identifier: MIT

// Package anneal implements the classical Monte-Carlo searches over an Ising model:
//
//   - Annealer:  one chain driven through a β schedule with Metropolis sweeps.
//   - Tempering: a ladder of chains at fixed β with adjacent replica exchange
//     (parallel tempering).
//   - Ensemble:  independent, non-interacting chains driven through the same β
//     schedule, with per-replica and ensemble-wide statistics.
//
// A sweep visits every spin once in index order and applies the Metropolis rule:
// accept a flip when ΔE <= 0, or when a uniform draw in [0,1) is below exp(-β·ΔE).
// The running energy is updated incrementally with ΔE, so the model's delta
// invariant is what keeps traces exact.
//
// Determinism:
//   - Each instance owns one *rand.Rand; SetSeed replaces it wholesale.
//   - Seed 0 maps to a fixed default seed, so unseeded runs are reproducible too.
//   - Same seed, model, schedule and sweep counts ⇒ bit-identical results.
//
// Concurrency:
//   - Instances are single-threaded and not safe for concurrent Run calls.
//   - Models and backends may be shared read-only between instances.
//
// Best tracking:
//   - Annealer and Ensemble update their best state only after accepted flips.
//   - Tempering updates the global best after each rung finishes its sweeps.
package anneal
