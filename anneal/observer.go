// SPDX-License-Identifier: MIT

package anneal

import "github.com/katalvlaran/qanneal/spin"

// Observer receives one callback per schedule step.
//
// state is the live configuration of the chain being reported; it is valid
// only for the duration of the call and must not be mutated. Clone it to keep it.
type Observer interface {
	Observe(step int, beta, energy float64, state spin.State)
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc func(step int, beta, energy float64, state spin.State)

// Observe calls f.
func (f ObserverFunc) Observe(step int, beta, energy float64, state spin.State) {
	f(step, beta, energy, state)
}
