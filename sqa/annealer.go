// SPDX-License-Identifier: MIT

package sqa

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

// minTrotterArg bounds βΓ/P away from zero so that J⊥ stays finite.
const minTrotterArg = 1e-12

// Result is the outcome of an SQA run.
type Result struct {
	// BestState is the lowest-energy single slice observed at the end of any step.
	BestState  spin.State
	BestEnergy float64
	// EnergyTrace holds the mean classical energy over all (replica, slice)
	// pairs, one entry per schedule step.
	EnergyTrace []float64
}

// Annealer is simulated quantum annealing on a replicas × slices lattice.
type Annealer struct {
	backend  backend.Backend
	sched    schedule.Quantum
	slices   int
	replicas int
	rng      *rand.Rand
}

// New builds an Annealer over m on the CPU backend.
func New(m ising.Model, sched schedule.Quantum, slices, replicas int, opts ...Option) (*Annealer, error) {
	b, err := backend.New(backend.CPU, m)
	if err != nil {
		return nil, err
	}

	return NewWithBackend(b, sched, slices, replicas, opts...)
}

// NewWithBackend builds an Annealer over a pre-built backend.
// Errors: ErrNilBackend, ErrEmptySchedule, ErrNoSlices, ErrNoReplicas.
func NewWithBackend(b backend.Backend, sched schedule.Quantum, slices, replicas int, opts ...Option) (*Annealer, error) {
	if b == nil {
		return nil, ErrNilBackend
	}
	if sched.Len() == 0 {
		return nil, ErrEmptySchedule
	}
	if slices <= 0 {
		return nil, fmt.Errorf("sqa.New slices=%d: %w", slices, ErrNoSlices)
	}
	if replicas <= 0 {
		return nil, fmt.Errorf("sqa.New replicas=%d: %w", replicas, ErrNoReplicas)
	}

	return &Annealer{
		backend:  b,
		sched:    sched,
		slices:   slices,
		replicas: replicas,
		rng:      gatherOptions(opts),
	}, nil
}

// SetSeed replaces the generator with a fresh one seeded by seed.
func (a *Annealer) SetSeed(seed uint64) {
	a.rng = mcmc.NewRand(seed)
}

// Slices returns the Trotter slice count P.
func (a *Annealer) Slices() int { return a.slices }

// Replicas returns the number of independent rings.
func (a *Annealer) Replicas() int { return a.replicas }

// TrotterCoupling returns J⊥ = ½·ln(1/tanh(max(βΓ/P, 1e-12))).
func TrotterCoupling(beta, gamma float64, slices int) float64 {
	x := math.Max(beta*gamma/float64(slices), minTrotterArg)

	return 0.5 * math.Log(1/math.Tanh(x))
}

// Run anneals a random lattice through the schedule. Each step runs, per
// replica, sweepsPerBeta local sweeps followed by worldlineSweeps worldline
// sweeps. obs may be nil.
//
// Errors: ErrNoSweeps, ErrNegativeWorldline; backend errors as-is.
// Complexity: O(steps · replicas · (sweeps + worldline) · P · n · cost(DeltaEnergy)).
func (a *Annealer) Run(sweepsPerBeta, worldlineSweeps int, obs Observer) (Result, error) {
	if sweepsPerBeta <= 0 {
		return Result{}, fmt.Errorf("sqa.Run sweeps=%d: %w", sweepsPerBeta, ErrNoSweeps)
	}
	if worldlineSweeps < 0 {
		return Result{}, fmt.Errorf("sqa.Run worldline=%d: %w", worldlineSweeps, ErrNegativeWorldline)
	}

	n := a.backend.Size()
	lattice, err := RandomLattice(a.replicas, a.slices, n, a.rng)
	if err != nil {
		return Result{}, err
	}

	res := Result{
		BestEnergy:  math.Inf(1),
		EnergyTrace: make([]float64, 0, a.sched.Len()),
	}

	var (
		step, r, t   int
		beta, gamma  float64
		jPerp, scale float64
		energy, sum  float64
		total        = float64(a.replicas * a.slices)
		slice        spin.State
	)
	for step = 0; step < a.sched.Len(); step++ {
		beta, gamma = a.sched.Beta(step), a.sched.Gamma(step)
		jPerp = TrotterCoupling(beta, gamma, a.slices)
		scale = beta / float64(a.slices)

		for r = 0; r < a.replicas; r++ {
			if err = a.localSweeps(lattice, r, sweepsPerBeta, scale, jPerp); err != nil {
				return Result{}, err
			}
			if err = a.worldlineMoves(lattice, r, worldlineSweeps, scale); err != nil {
				return Result{}, err
			}
		}

		sum = 0
		for r = 0; r < a.replicas; r++ {
			for t = 0; t < a.slices; t++ {
				slice = lattice.view(r, t)
				if energy, err = a.backend.Energy(slice); err != nil {
					return Result{}, err
				}
				sum += energy
				if energy < res.BestEnergy {
					res.BestEnergy = energy
					res.BestState = slice.Clone()
				}
			}
		}
		res.EnergyTrace = append(res.EnergyTrace, sum/total)

		if obs != nil {
			obs.Observe(step, beta, gamma, sum/total, lattice)
		}
	}

	return res, nil
}

// localSweeps runs single-spin Metropolis sweeps over every slice of replica r.
func (a *Annealer) localSweeps(l *Lattice, r, sweeps int, scale, jPerp float64) error {
	var (
		sweep, t, i int
		prev, next  spin.State
		cur         spin.State
		dc, delta   float64
		err         error
	)
	for sweep = 0; sweep < sweeps; sweep++ {
		for t = 0; t < a.slices; t++ {
			cur = l.view(r, t)
			prev = l.view(r, (t+a.slices-1)%a.slices)
			next = l.view(r, (t+1)%a.slices)
			for i = 0; i < len(cur); i++ {
				if dc, err = a.backend.DeltaEnergy(cur, i); err != nil {
					return err
				}
				delta = scale*dc + 2*jPerp*float64(cur[i])*float64(prev[i]+next[i])
				if mcmc.Accept(delta, 1, a.rng) {
					cur[i] = -cur[i]
				}
			}
		}
	}

	return nil
}

// worldlineMoves proposes flipping each spin across all slices of replica r at once.
func (a *Annealer) worldlineMoves(l *Lattice, r, sweeps int, scale float64) error {
	var (
		sweep, t, i int
		dc, total   float64
		err         error
	)
	for sweep = 0; sweep < sweeps; sweep++ {
		for i = 0; i < l.spins; i++ {
			total = 0
			for t = 0; t < a.slices; t++ {
				if dc, err = a.backend.DeltaEnergy(l.view(r, t), i); err != nil {
					return err
				}
				total += dc
			}
			if mcmc.Accept(scale*total, 1, a.rng) {
				for t = 0; t < a.slices; t++ {
					l.data[l.offset(r, t)+i] *= -1
				}
			}
		}
	}

	return nil
}
