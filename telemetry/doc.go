// SPDX-License-Identifier: MIT

// Package telemetry provides ready-made observers for the annealers:
//
//   - Recorder and QuantumRecorder keep per-step energy and magnetisation traces
//     in memory.
//   - PrometheusObserver exports the latest step, β, Γ, energy and
//     magnetisation as gauges plus a step counter, labelled by algorithm.
//   - Multi and MultiQuantum fan one callback out to several observers.
//
// Observers run synchronously on the annealer's goroutine; keep them cheap.
package telemetry
