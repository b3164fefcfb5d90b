// Package qanneal is a Monte-Carlo optimisation toolkit for Ising spin models:
// give it an energy over ±1 variables and it searches for low-energy
// configurations with stochastic local search at a sequence of temperatures.
//
// What is inside?
//
//	• Models: dense and sparse Ising energies, plus exact QUBO → Ising conversion
//	• Classical search: simulated annealing, parallel tempering, replica ensembles
//	• Quantum-inspired search: path-integral simulated quantum annealing
//	• Scale-out: a distributed ensemble that agrees on one global best
//	• Telemetry: in-memory recorders and Prometheus observers
//
// Why qanneal?
//
//   - Deterministic: every algorithm owns its seeded generator; same seed, same trace
//   - Exact bookkeeping: energies are updated with ΔE, checked against full recomputation
//   - Plain Go: sequential algorithms, goroutines only between independent workers
//
// Packages:
//
//	spin/          spin configurations and observables
//	ising/         Dense, Sparse and QUBO models
//	backend/       compute backends (CPU; CUDA is a named, unavailable variant)
//	schedule/      β and (β, Γ) schedules
//	anneal/        Annealer, Tempering, Ensemble
//	sqa/           Trotter lattice and quantum annealer
//	distributed/   communicator, in-process worker group, reduction
//	telemetry/     observers
//	builder/       benchmark instances on standard topologies
//	config/        YAML run files
//	cmd/qanneal    command-line driver
//
// Quick start:
//
//	m, _ := ising.NewDense([]float64{1, -1}, []float64{0, 0.5, 0.5, 0}, 2, 0)
//	sched, _ := schedule.Linear(0.1, 5, 20)
//	a, _ := anneal.New(m, sched, anneal.WithSeed(42))
//	res, _ := a.Run(4, nil)
//	fmt.Println(res.BestState, res.BestEnergy) // [-1 1] -2.5
//
// See the individual package docs for invariants, error sentinels and complexity.
package qanneal
