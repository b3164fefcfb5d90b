// SPDX-License-Identifier: MIT

// Package schedule holds annealing schedules.
//
//   - Classical: an ordered list of inverse temperatures β, one per annealing step.
//   - Quantum:   paired (β, Γ) lists for simulated quantum annealing, where Γ is the
//     transverse-field strength.
//
// Schedules are immutable values. Monotonicity is not enforced; an increasing β
// ramp (cooling) and a decreasing Γ ramp are the conventional usage.
package schedule

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrEmpty is returned for a schedule with no steps.
	ErrEmpty = errors.New("schedule: must contain at least one step")

	// ErrLengthMismatch is returned when β and Γ lists differ in length.
	ErrLengthMismatch = errors.New("schedule: betas/gammas length mismatch")

	// ErrNaNInf signals a NaN or ±Inf entry.
	ErrNaNInf = errors.New("schedule: NaN or Inf value")

	// ErrNonPositive is returned by Geometric for endpoints <= 0.
	ErrNonPositive = errors.New("schedule: geometric endpoints must be > 0")
)

// Classical is an ordered sequence of inverse temperatures.
type Classical struct {
	betas []float64
}

// FromBetas copies an explicit β list.
func FromBetas(betas []float64) (Classical, error) {
	if len(betas) == 0 {
		return Classical{}, ErrEmpty
	}
	if err := checkFinite("betas", betas); err != nil {
		return Classical{}, err
	}

	return Classical{betas: append([]float64(nil), betas...)}, nil
}

// Linear ramps β from start to end in steps evenly spaced points.
// A single step yields [end].
func Linear(start, end float64, steps int) (Classical, error) {
	if steps <= 0 {
		return Classical{}, ErrEmpty
	}

	return FromBetas(linspace(start, end, steps))
}

// Geometric ramps β from start to end with a constant ratio between steps.
// Both endpoints must be > 0. A single step yields [end].
func Geometric(start, end float64, steps int) (Classical, error) {
	if steps <= 0 {
		return Classical{}, ErrEmpty
	}
	if start <= 0 || end <= 0 {
		return Classical{}, ErrNonPositive
	}
	betas := make([]float64, steps)
	if steps == 1 {
		betas[0] = end
		return FromBetas(betas)
	}
	var (
		i    int
		frac float64
	)
	for i = 0; i < steps; i++ {
		frac = float64(i) / float64(steps-1)
		betas[i] = start * math.Pow(end/start, frac)
	}

	return FromBetas(betas)
}

// Len returns the number of steps.
func (c Classical) Len() int { return len(c.betas) }

// Beta returns β at step i. It panics if i is out of range, like a slice index.
func (c Classical) Beta(i int) float64 { return c.betas[i] }

// Betas returns a copy of the β list.
func (c Classical) Betas() []float64 { return append([]float64(nil), c.betas...) }

// Quantum pairs an inverse temperature with a transverse field at every step.
type Quantum struct {
	betas  []float64
	gammas []float64
}

// NewQuantum copies explicit β and Γ lists of equal, non-zero length.
func NewQuantum(betas, gammas []float64) (Quantum, error) {
	if len(betas) == 0 {
		return Quantum{}, ErrEmpty
	}
	if len(betas) != len(gammas) {
		return Quantum{}, fmt.Errorf("NewQuantum: %d betas, %d gammas: %w", len(betas), len(gammas), ErrLengthMismatch)
	}
	if err := checkFinite("betas", betas); err != nil {
		return Quantum{}, err
	}
	if err := checkFinite("gammas", gammas); err != nil {
		return Quantum{}, err
	}

	return Quantum{
		betas:  append([]float64(nil), betas...),
		gammas: append([]float64(nil), gammas...),
	}, nil
}

// LinearQuantum ramps β and Γ linearly and independently over steps points.
func LinearQuantum(betaStart, betaEnd, gammaStart, gammaEnd float64, steps int) (Quantum, error) {
	if steps <= 0 {
		return Quantum{}, ErrEmpty
	}

	return NewQuantum(linspace(betaStart, betaEnd, steps), linspace(gammaStart, gammaEnd, steps))
}

// Len returns the number of steps.
func (q Quantum) Len() int { return len(q.betas) }

// Beta returns β at step i.
func (q Quantum) Beta(i int) float64 { return q.betas[i] }

// Gamma returns Γ at step i.
func (q Quantum) Gamma(i int) float64 { return q.gammas[i] }

// Betas returns a copy of the β list.
func (q Quantum) Betas() []float64 { return append([]float64(nil), q.betas...) }

// Gammas returns a copy of the Γ list.
func (q Quantum) Gammas() []float64 { return append([]float64(nil), q.gammas...) }

// linspace returns steps points from start to end inclusive; steps == 1 gives [end].
func linspace(start, end float64, steps int) []float64 {
	out := make([]float64, steps)
	if steps == 1 {
		out[0] = end
		return out
	}
	var (
		i    int
		step = (end - start) / float64(steps-1)
	)
	for i = 0; i < steps; i++ {
		out[i] = start + step*float64(i)
	}

	return out
}

func checkFinite(tag string, v []float64) error {
	var (
		i int
		x float64
	)
	for i, x = range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return fmt.Errorf("%s[%d]: %w", tag, i, ErrNaNInf)
		}
	}

	return nil
}
