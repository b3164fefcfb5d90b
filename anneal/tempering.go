// SPDX-License-Identifier: MIT

package anneal

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/qanneal/backend"
	"github.com/katalvlaran/qanneal/internal/mcmc"
	"github.com/katalvlaran/qanneal/ising"
	"github.com/katalvlaran/qanneal/schedule"
	"github.com/katalvlaran/qanneal/spin"
)

// TemperingResult is the outcome of a parallel-tempering run.
type TemperingResult struct {
	// FinalStates and FinalEnergies hold the configuration on each rung at the end.
	FinalStates   []spin.State
	FinalEnergies []float64

	// BestState/BestEnergy: lowest energy seen on any rung at the end of any rung's sweeps.
	BestState  spin.State
	BestEnergy float64

	// Per-step traces.
	AverageEnergyTrace  []float64 // mean energy across rungs
	SwapAcceptanceTrace []float64 // accepted/attempted, 0 on steps without exchange
	SwapAttemptTrace    []int
	SwapAcceptTrace     []int
}

// Tempering is parallel tempering (replica exchange) over a fixed β ladder.
type Tempering struct {
	backend backend.Backend
	betas   []float64
	rng     *rand.Rand
}

// NewTempering builds a ladder over m on the CPU backend; betas[r] is rung r.
func NewTempering(m ising.Model, betas []float64, opts ...Option) (*Tempering, error) {
	b, err := backend.New(backend.CPU, m)
	if err != nil {
		return nil, err
	}

	return NewTemperingWithBackend(b, betas, opts...)
}

// NewTemperingWithBackend builds a ladder over a pre-built backend.
// Errors: ErrNilBackend, ErrTooFewRungs, schedule.ErrNaNInf.
func NewTemperingWithBackend(b backend.Backend, betas []float64, opts ...Option) (*Tempering, error) {
	if b == nil {
		return nil, ErrNilBackend
	}
	if len(betas) < 2 {
		return nil, fmt.Errorf("NewTempering: %d betas: %w", len(betas), ErrTooFewRungs)
	}
	ladder, err := schedule.FromBetas(betas)
	if err != nil {
		return nil, err
	}

	return &Tempering{backend: b, betas: ladder.Betas(), rng: gatherOptions(opts)}, nil
}

// SetSeed replaces the generator with a fresh one seeded by seed.
func (pt *Tempering) SetSeed(seed uint64) {
	pt.rng = mcmc.NewRand(seed)
}

// Betas returns a copy of the ladder.
func (pt *Tempering) Betas() []float64 { return append([]float64(nil), pt.betas...) }

// Run performs steps outer steps. In each, every rung runs sweepsPerStep sweeps
// at its own β; every swapInterval steps adjacent rungs (r, r+1) attempt an
// exchange in ladder order, accepted with probability
// min(1, exp(-(β_r - β_{r+1})·(E_{r+1} - E_r))).
//
// obs (may be nil) is called once per step with the lowest-energy rung.
//
// Errors: ErrNoSweeps, ErrNoSteps, ErrNoSwapInterval.
func (pt *Tempering) Run(sweepsPerStep, steps, swapInterval int, obs Observer) (TemperingResult, error) {
	if sweepsPerStep <= 0 {
		return TemperingResult{}, fmt.Errorf("Tempering.Run sweeps=%d: %w", sweepsPerStep, ErrNoSweeps)
	}
	if steps <= 0 {
		return TemperingResult{}, fmt.Errorf("Tempering.Run steps=%d: %w", steps, ErrNoSteps)
	}
	if swapInterval <= 0 {
		return TemperingResult{}, fmt.Errorf("Tempering.Run swapInterval=%d: %w", swapInterval, ErrNoSwapInterval)
	}

	var (
		n        = pt.backend.Size()
		rungs    = len(pt.betas)
		states   = make([]spin.State, rungs)
		energies = make([]float64, rungs)
		r        int
		err      error
	)
	for r = 0; r < rungs; r++ {
		if states[r], err = spin.Random(n, pt.rng); err != nil {
			return TemperingResult{}, err
		}
		if energies[r], err = pt.backend.Energy(states[r]); err != nil {
			return TemperingResult{}, err
		}
	}

	res := TemperingResult{
		BestEnergy:          math.Inf(1),
		AverageEnergyTrace:  make([]float64, 0, steps),
		SwapAcceptanceTrace: make([]float64, 0, steps),
		SwapAttemptTrace:    make([]int, 0, steps),
		SwapAcceptTrace:     make([]int, 0, steps),
	}

	var (
		step, sweep int
		energy, sum float64
		attempted   int
		accepted    int
		lowest      int
	)
	for step = 0; step < steps; step++ {
		// Stage 1: independent Metropolis sweeps per rung.
		for r = 0; r < rungs; r++ {
			energy = energies[r]
			for sweep = 0; sweep < sweepsPerStep; sweep++ {
				energy, err = mcmc.Sweep(pt.backend, states[r], pt.betas[r], energy, pt.rng, nil)
				if err != nil {
					return TemperingResult{}, err
				}
			}
			energies[r] = energy
			if energy < res.BestEnergy {
				res.BestEnergy = energy
				res.BestState = states[r].Clone()
			}
		}

		// Stage 2: adjacent replica exchange.
		attempted, accepted = 0, 0
		if (step+1)%swapInterval == 0 {
			for r = 0; r+1 < rungs; r++ {
				attempted++
				if exchangeAccepted(pt.betas[r], pt.betas[r+1], energies[r], energies[r+1], pt.rng) {
					states[r], states[r+1] = states[r+1], states[r]
					energies[r], energies[r+1] = energies[r+1], energies[r]
					accepted++
				}
			}
		}

		// Stage 3: traces.
		sum, lowest = 0, 0
		for r = 0; r < rungs; r++ {
			sum += energies[r]
			if energies[r] < energies[lowest] {
				lowest = r
			}
		}
		res.AverageEnergyTrace = append(res.AverageEnergyTrace, sum/float64(rungs))
		res.SwapAttemptTrace = append(res.SwapAttemptTrace, attempted)
		res.SwapAcceptTrace = append(res.SwapAcceptTrace, accepted)
		if attempted > 0 {
			res.SwapAcceptanceTrace = append(res.SwapAcceptanceTrace, float64(accepted)/float64(attempted))
		} else {
			res.SwapAcceptanceTrace = append(res.SwapAcceptanceTrace, 0)
		}

		if obs != nil {
			obs.Observe(step, pt.betas[lowest], energies[lowest], states[lowest])
		}
	}

	res.FinalStates = make([]spin.State, rungs)
	for r = 0; r < rungs; r++ {
		res.FinalStates[r] = states[r].Clone()
	}
	res.FinalEnergies = append([]float64(nil), energies...)

	return res, nil
}

// exchangeAccepted applies the replica-exchange criterion to rungs (β_a, E_a)
// and (β_b, E_b): Δ = (β_a−β_b)(E_b−E_a), accepted with probability
// min(1, exp(−Δ)). No random number is drawn when Δ <= 0.
func exchangeAccepted(betaA, betaB, energyA, energyB float64, rng *rand.Rand) bool {
	return mcmc.Accept((betaA-betaB)*(energyB-energyA), 1, rng)
}
