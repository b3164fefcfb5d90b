// SPDX-License-Identifier: MIT

package sqa

// Observer receives one callback per schedule step with the mean classical
// energy over all (replica, slice) pairs and the live lattice. The lattice must
// not be mutated and is only valid for the duration of the call.
type Observer interface {
	Observe(step int, beta, gamma, avgEnergy float64, lattice *Lattice)
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc func(step int, beta, gamma, avgEnergy float64, lattice *Lattice)

// Observe calls f.
func (f ObserverFunc) Observe(step int, beta, gamma, avgEnergy float64, lattice *Lattice) {
	f(step, beta, gamma, avgEnergy, lattice)
}
