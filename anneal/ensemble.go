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

// ReplicaResult is the per-chain part of an ensemble run.
type ReplicaResult struct {
	BestState          spin.State
	BestEnergy         float64
	EnergyTrace        []float64
	MagnetizationTrace []float64
}

// EnsembleResult is the outcome of an ensemble run.
type EnsembleResult struct {
	Replicas []ReplicaResult

	// GlobalBestState/GlobalBestEnergy: best over all replicas and all steps,
	// initial random states included.
	GlobalBestState  spin.State
	GlobalBestEnergy float64

	AverageEnergyTrace        []float64
	AverageMagnetizationTrace []float64
}

// Ensemble runs independent, non-interacting chains through one schedule.
// Chains share the instance's generator and are swept in replica order, so a
// seed determines the whole ensemble.
type Ensemble struct {
	backend  backend.Backend
	sched    schedule.Classical
	replicas int
	rng      *rand.Rand
}

// NewEnsemble builds an ensemble of replicas chains over m on the CPU backend.
func NewEnsemble(m ising.Model, sched schedule.Classical, replicas int, opts ...Option) (*Ensemble, error) {
	b, err := backend.New(backend.CPU, m)
	if err != nil {
		return nil, err
	}

	return NewEnsembleWithBackend(b, sched, replicas, opts...)
}

// NewEnsembleWithBackend builds an ensemble over a pre-built backend.
// Errors: ErrNilBackend, ErrEmptySchedule, ErrNoReplicas.
func NewEnsembleWithBackend(b backend.Backend, sched schedule.Classical, replicas int, opts ...Option) (*Ensemble, error) {
	if b == nil {
		return nil, ErrNilBackend
	}
	if sched.Len() == 0 {
		return nil, ErrEmptySchedule
	}
	if replicas <= 0 {
		return nil, fmt.Errorf("NewEnsemble replicas=%d: %w", replicas, ErrNoReplicas)
	}

	return &Ensemble{backend: b, sched: sched, replicas: replicas, rng: gatherOptions(opts)}, nil
}

// SetSeed replaces the generator with a fresh one seeded by seed.
func (en *Ensemble) SetSeed(seed uint64) {
	en.rng = mcmc.NewRand(seed)
}

// Replicas returns the number of chains.
func (en *Ensemble) Replicas() int { return en.replicas }

// Run drives every chain through the schedule with sweepsPerBeta sweeps per β.
// obs (may be nil) is called once per step with the average energy and the
// state of the lowest-energy replica at that step.
//
// Errors: ErrNoSweeps; backend errors as-is.
func (en *Ensemble) Run(sweepsPerBeta int, obs Observer) (EnsembleResult, error) {
	if sweepsPerBeta <= 0 {
		return EnsembleResult{}, fmt.Errorf("Ensemble.Run(%d): %w", sweepsPerBeta, ErrNoSweeps)
	}

	var (
		n        = en.backend.Size()
		steps    = en.sched.Len()
		states   = make([]spin.State, en.replicas)
		energies = make([]float64, en.replicas)
		r        int
		err      error
	)
	// All initial states are drawn before any energy is evaluated.
	for r = 0; r < en.replicas; r++ {
		if states[r], err = spin.Random(n, en.rng); err != nil {
			return EnsembleResult{}, err
		}
	}
	for r = 0; r < en.replicas; r++ {
		if energies[r], err = en.backend.Energy(states[r]); err != nil {
			return EnsembleResult{}, err
		}
	}

	res := EnsembleResult{
		Replicas:                  make([]ReplicaResult, en.replicas),
		GlobalBestEnergy:          math.Inf(1),
		AverageEnergyTrace:        make([]float64, 0, steps),
		AverageMagnetizationTrace: make([]float64, 0, steps),
	}
	for r = 0; r < en.replicas; r++ {
		res.Replicas[r] = ReplicaResult{
			BestState:          states[r].Clone(),
			BestEnergy:         energies[r],
			EnergyTrace:        make([]float64, 0, steps),
			MagnetizationTrace: make([]float64, 0, steps),
		}
		if energies[r] < res.GlobalBestEnergy {
			res.GlobalBestEnergy = energies[r]
			res.GlobalBestState = states[r].Clone()
		}
	}

	var (
		step, sweep     int
		beta, energy    float64
		sumE, sumM, mag float64
		lowest          int
		current         int // replica being swept, read by track
		track           func(e float64)
	)
	track = func(e float64) {
		rep := &res.Replicas[current]
		if e < rep.BestEnergy {
			rep.BestEnergy = e
			copy(rep.BestState, states[current])
		}
		if e < res.GlobalBestEnergy {
			res.GlobalBestEnergy = e
			res.GlobalBestState = states[current].Clone()
		}
	}

	for step = 0; step < steps; step++ {
		beta = en.sched.Beta(step)

		for r = 0; r < en.replicas; r++ {
			current = r
			energy = energies[r]
			for sweep = 0; sweep < sweepsPerBeta; sweep++ {
				energy, err = mcmc.Sweep(en.backend, states[r], beta, energy, en.rng, track)
				if err != nil {
					return EnsembleResult{}, err
				}
			}
			energies[r] = energy
		}

		sumE, sumM, lowest = 0, 0, 0
		for r = 0; r < en.replicas; r++ {
			mag = spin.Magnetization(states[r])
			res.Replicas[r].EnergyTrace = append(res.Replicas[r].EnergyTrace, energies[r])
			res.Replicas[r].MagnetizationTrace = append(res.Replicas[r].MagnetizationTrace, mag)
			sumE += energies[r]
			sumM += mag
			if energies[r] < energies[lowest] {
				lowest = r
			}
		}
		res.AverageEnergyTrace = append(res.AverageEnergyTrace, sumE/float64(en.replicas))
		res.AverageMagnetizationTrace = append(res.AverageMagnetizationTrace, sumM/float64(en.replicas))

		if obs != nil {
			obs.Observe(step, beta, sumE/float64(en.replicas), states[lowest])
		}
	}

	return res, nil
}
