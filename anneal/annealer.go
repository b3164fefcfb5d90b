// SPDX-License-Identifier: MIT

package anneal

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/qanneal/backend"
	"github.com/katalvlaran/qanneal/internal/mcmc"
	"github.com/katalvlaran/qanneal/ising"
	"github.com/katalvlaran/qanneal/schedule"
	"github.com/katalvlaran/qanneal/spin"
)

// Result is the outcome of a single-chain run.
type Result struct {
	// BestState is the lowest-energy configuration seen (after accepted flips).
	BestState spin.State
	// BestEnergy is the energy of BestState.
	BestEnergy float64
	// EnergyTrace holds the chain energy at the end of every schedule step.
	EnergyTrace []float64
}

// Annealer is single-chain simulated annealing.
type Annealer struct {
	backend backend.Backend
	sched   schedule.Classical
	rng     *rand.Rand
}

// New builds an Annealer over m on the CPU backend.
func New(m ising.Model, sched schedule.Classical, opts ...Option) (*Annealer, error) {
	b, err := backend.New(backend.CPU, m)
	if err != nil {
		return nil, err
	}

	return NewWithBackend(b, sched, opts...)
}

// NewWithBackend builds an Annealer over a pre-built backend.
// Errors: ErrNilBackend, ErrEmptySchedule.
func NewWithBackend(b backend.Backend, sched schedule.Classical, opts ...Option) (*Annealer, error) {
	if b == nil {
		return nil, ErrNilBackend
	}
	if sched.Len() == 0 {
		return nil, ErrEmptySchedule
	}

	return &Annealer{backend: b, sched: sched, rng: gatherOptions(opts)}, nil
}

// SetSeed replaces the generator with a fresh one seeded by seed.
func (a *Annealer) SetSeed(seed uint64) {
	a.rng = mcmc.NewRand(seed)
}

// Run anneals a uniformly random initial state through the schedule with
// sweepsPerBeta sweeps per β. obs may be nil.
//
// Errors: ErrNoSweeps; backend errors are returned as-is.
// Complexity: O(steps · sweepsPerBeta · n · cost(DeltaEnergy)).
func (a *Annealer) Run(sweepsPerBeta int, obs Observer) (Result, error) {
	if sweepsPerBeta <= 0 {
		return Result{}, fmt.Errorf("Annealer.Run(%d): %w", sweepsPerBeta, ErrNoSweeps)
	}

	state, err := spin.Random(a.backend.Size(), a.rng)
	if err != nil {
		return Result{}, err
	}
	energy, err := a.backend.Energy(state)
	if err != nil {
		return Result{}, err
	}

	res := Result{
		BestState:   state.Clone(),
		BestEnergy:  energy,
		EnergyTrace: make([]float64, 0, a.sched.Len()),
	}
	track := func(e float64) {
		if e < res.BestEnergy {
			res.BestEnergy = e
			copy(res.BestState, state)
		}
	}

	var (
		step, sweep int
		beta        float64
	)
	for step = 0; step < a.sched.Len(); step++ {
		beta = a.sched.Beta(step)
		for sweep = 0; sweep < sweepsPerBeta; sweep++ {
			energy, err = mcmc.Sweep(a.backend, state, beta, energy, a.rng, track)
			if err != nil {
				return Result{}, err
			}
		}
		res.EnergyTrace = append(res.EnergyTrace, energy)
		if obs != nil {
			obs.Observe(step, beta, energy, state)
		}
	}

	return res, nil
}
