// SPDX-License-Identifier: MIT

// Package builder generates Ising benchmark instances on standard interaction
// graphs: open chains, rings, 2-D grids, complete graphs (Sherrington–Kirkpatrick
// style), stars, Erdős–Rényi graphs and random d-regular graphs.
//
// A build composes one or more Constructors over a shared spin index space and
// returns an *ising.Sparse model:
//
//	m, err := builder.Build(
//		[]builder.Option{builder.WithSeed(7), builder.WithCouplingFn(builder.PlusMinusFn(1))},
//		builder.Grid(4, 4, true),
//	)
//
// Couplings are drawn once per emitted edge, in emission order; fields are drawn
// once per spin after all constructors ran. Equal options, seed and constructor
// order give identical models.
//
// Constructors never panic; they return the sentinels in errors.go wrapped with
// their method name. Option constructors (WithX) panic on meaningless values.
package builder
