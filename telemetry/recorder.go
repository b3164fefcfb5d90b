// SPDX-License-Identifier: MIT

package telemetry

import (
	"github.com/katalvlaran/qanneal/anneal"
	"github.com/katalvlaran/qanneal/spin"
	"github.com/katalvlaran/qanneal/sqa"
)

var (
	_ anneal.Observer = (*Recorder)(nil)
	_ sqa.Observer    = (*QuantumRecorder)(nil)
)

// Recorder stores the reported energy and the state magnetisation per step.
type Recorder struct {
	EnergyTrace        []float64
	MagnetizationTrace []float64
}

// Observe implements anneal.Observer.
func (r *Recorder) Observe(_ int, _ float64, energy float64, state spin.State) {
	r.EnergyTrace = append(r.EnergyTrace, energy)
	r.MagnetizationTrace = append(r.MagnetizationTrace, spin.Magnetization(state))
}

// Reset drops both traces.
func (r *Recorder) Reset() {
	r.EnergyTrace = r.EnergyTrace[:0]
	r.MagnetizationTrace = r.MagnetizationTrace[:0]
}

// QuantumRecorder stores the mean slice energy and the whole-lattice
// magnetisation per step.
type QuantumRecorder struct {
	EnergyTrace        []float64
	MagnetizationTrace []float64
}

// Observe implements sqa.Observer.
func (r *QuantumRecorder) Observe(_ int, _, _ float64, avgEnergy float64, lattice *sqa.Lattice) {
	r.EnergyTrace = append(r.EnergyTrace, avgEnergy)
	r.MagnetizationTrace = append(r.MagnetizationTrace, lattice.Magnetization())
}

// Reset drops both traces.
func (r *QuantumRecorder) Reset() {
	r.EnergyTrace = r.EnergyTrace[:0]
	r.MagnetizationTrace = r.MagnetizationTrace[:0]
}

// Multi returns an observer that forwards every callback to each non-nil obs in order.
func Multi(obs ...anneal.Observer) anneal.Observer {
	return anneal.ObserverFunc(func(step int, beta, energy float64, state spin.State) {
		for _, o := range obs {
			if o != nil {
				o.Observe(step, beta, energy, state)
			}
		}
	})
}

// MultiQuantum is Multi for sqa observers.
func MultiQuantum(obs ...sqa.Observer) sqa.Observer {
	return sqa.ObserverFunc(func(step int, beta, gamma, avgEnergy float64, lattice *sqa.Lattice) {
		for _, o := range obs {
			if o != nil {
				o.Observe(step, beta, gamma, avgEnergy, lattice)
			}
		}
	})
}
