// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"math"

	"github.com/katalvlaran/qanneal/backend"
	"github.com/katalvlaran/qanneal/builder"
	"github.com/katalvlaran/qanneal/ising"
	"github.com/katalvlaran/qanneal/schedule"
)

// Model builds the Ising model described by the model section. A qubo model is
// converted to its Ising form; constant is added on top of the conversion's
// own offset. A missing h means zero fields.
func (c *Config) Model() (ising.Model, error) {
	var (
		m = c.ModelSpec
		h = m.H
	)
	if m.Kind == ModelGenerated {
		return m.generate()
	}
	if h == nil {
		h = make([]float64, m.N)
	}

	switch m.Kind {
	case ModelDense:
		j, err := flatten("model.j", m.J, m.N)
		if err != nil {
			return nil, err
		}

		return ising.NewDense(h, j, m.N, m.Constant)

	case ModelSparse:
		edges := make([]ising.Edge, len(m.Edges))
		for i, e := range m.Edges {
			edges[i] = ising.Edge{I: e.I, J: e.J, W: e.W}
		}

		return ising.NewSparse(h, edges, m.N, m.Constant)

	case ModelQUBO:
		q, err := flatten("model.q", m.Q, m.N)
		if err != nil {
			return nil, err
		}
		qubo, err := ising.NewQUBO(q, m.N)
		if err != nil {
			return nil, err
		}
		d, err := qubo.ToIsing()
		if err != nil {
			return nil, err
		}
		if m.Constant == 0 {
			return d, nil
		}

		return ising.NewDense(d.Bias(), d.Couplings().RawMatrix().Data, m.N, d.Constant()+m.Constant)
	}

	return nil, fmt.Errorf("model.kind %q: %w", m.Kind, ErrInvalidConfig)
}

// generate builds the generator section through package builder.
func (m Model) generate() (ising.Model, error) {
	g := m.Generator
	var con builder.Constructor
	switch g.Shape {
	case "chain":
		con = builder.Chain(g.Size)
	case "ring":
		con = builder.Ring(g.Size)
	case "grid":
		con = builder.Grid(g.Rows, g.Cols, g.Periodic)
	case "complete":
		con = builder.Complete(g.Size)
	case "star":
		con = builder.Star(g.Size)
	case "random":
		con = builder.RandomSparse(g.Size, g.P)
	case "regular":
		con = builder.RandomRegular(g.Size, g.Degree)
	default:
		return nil, fmt.Errorf("model.generator.shape %q: %w", g.Shape, ErrInvalidConfig)
	}

	opts := []builder.Option{builder.WithSeed(g.Seed), builder.WithConstant(m.Constant)}
	if fn := g.Coupling.weightFn(); fn != nil {
		opts = append(opts, builder.WithCouplingFn(fn))
	}
	if fn := g.Field.weightFn(); fn != nil {
		opts = append(opts, builder.WithFieldFn(fn))
	}

	sm, err := builder.Build(opts, con)
	if err != nil {
		return nil, err
	}

	return sm, nil
}

// weightFn maps the distribution to a builder.WeightFn; nil keeps the default.
// Ranges were validated at parse time, so the builder panics cannot fire.
func (d Distribution) weightFn() builder.WeightFn {
	switch d.Dist {
	case "constant":
		return builder.ConstantFn(d.Value)
	case "uniform":
		return builder.UniformFn(d.Min, d.Max)
	case "normal":
		return builder.NormalFn(d.Mean, d.StdDev)
	case "pm":
		return builder.PlusMinusFn(math.Abs(d.Value))
	}

	return nil
}

// flatten turns an n×n row list into a row-major slice.
func flatten(field string, rows [][]float64, n int) ([]float64, error) {
	if len(rows) != n {
		return nil, fmt.Errorf("%s has %d rows, n=%d: %w", field, len(rows), n, ising.ErrDimensionMismatch)
	}
	out := make([]float64, 0, n*n)
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("%s row %d has %d entries, n=%d: %w", field, i, len(row), n, ising.ErrDimensionMismatch)
		}
		out = append(out, row...)
	}

	return out, nil
}

// Backend opens the configured backend over m.
func (c *Config) Backend(m ising.Model) (backend.Backend, error) {
	return backend.Open(c.BackendName, m)
}

// Classical returns the β schedule: the explicit betas when given, otherwise a
// linear or geometric ramp of schedule.steps points.
func (c *Config) Classical() (schedule.Classical, error) {
	s := c.Schedule
	if len(s.Betas) > 0 {
		return schedule.FromBetas(s.Betas)
	}
	if s.Geometric {
		return schedule.Geometric(s.BetaStart, s.BetaEnd, s.Steps)
	}

	return schedule.Linear(s.BetaStart, s.BetaEnd, s.Steps)
}

// Quantum returns the paired (β, Γ) schedule: explicit lists when betas are
// given, otherwise linear ramps of schedule.steps points.
func (c *Config) Quantum() (schedule.Quantum, error) {
	s := c.Schedule
	if len(s.Betas) > 0 {
		return schedule.NewQuantum(s.Betas, s.Gammas)
	}

	return schedule.LinearQuantum(s.BetaStart, s.BetaEnd, s.GammaStart, s.GammaEnd, s.Steps)
}
