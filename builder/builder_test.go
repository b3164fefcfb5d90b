package builder_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/qanneal/anneal"
	"github.com/katalvlaran/qanneal/builder"
	"github.com/katalvlaran/qanneal/ising"
	"github.com/katalvlaran/qanneal/schedule"
	"github.com/katalvlaran/qanneal/spin"
	"github.com/stretchr/testify/require"
)

func aligned(n int) spin.State {
	s, _ := spin.New(n)
	return s
}

func degrees(m *ising.Sparse) []int {
	out := make([]int, m.Size())
	for i := range out {
		out[i] = m.Degree(i)
	}
	return out
}

func TestTopologyEdgeCounts(t *testing.T) {
	cases := map[string]struct {
		con    builder.Constructor
		spins  int
		edges  int
		degree []int
	}{
		"chain":          {builder.Chain(4), 4, 3, []int{1, 2, 2, 1}},
		"ring":           {builder.Ring(5), 5, 5, []int{2, 2, 2, 2, 2}},
		"open grid":      {builder.Grid(2, 3, false), 6, 7, []int{2, 3, 2, 2, 3, 2}},
		"torus":          {builder.Grid(3, 3, true), 9, 18, []int{4, 4, 4, 4, 4, 4, 4, 4, 4}},
		"short periodic": {builder.Grid(2, 2, true), 4, 4, []int{2, 2, 2, 2}},
		"line grid":      {builder.Grid(1, 4, false), 4, 3, []int{1, 2, 2, 1}},
		"complete":       {builder.Complete(5), 5, 10, []int{4, 4, 4, 4, 4}},
		"star":           {builder.Star(4), 4, 3, []int{3, 1, 1, 1}},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			m, err := builder.Build(nil, tc.con)
			require.NoError(t, err)
			require.Equal(t, tc.spins, m.Size())
			require.Len(t, m.Edges(), tc.edges)
			require.Equal(t, tc.degree, degrees(m))

			// Default couplings are ferromagnetic -1, so the aligned state
			// sits at -|E|.
			e, err := m.Energy(aligned(m.Size()))
			require.NoError(t, err)
			require.InDelta(t, -float64(tc.edges), e, 1e-12)
		})
	}
}

func TestRingClosesLast(t *testing.T) {
	m, err := builder.Build(nil, builder.Ring(4))
	require.NoError(t, err)
	edges := m.Edges()
	require.Equal(t, ising.Edge{I: 3, J: 0, W: -1}, edges[len(edges)-1])
}

func TestFieldsAndConstant(t *testing.T) {
	m, err := builder.Build([]builder.Option{
		builder.WithCouplingFn(builder.ConstantFn(0.5)),
		builder.WithFieldFn(builder.ConstantFn(-0.25)),
		builder.WithConstant(2),
	}, builder.Chain(3))
	require.NoError(t, err)
	require.Equal(t, []float64{-0.25, -0.25, -0.25}, m.Bias())
	require.Equal(t, 2.0, m.Constant())

	e, err := m.Energy(aligned(3))
	require.NoError(t, err)
	require.InDelta(t, 2-0.75+1, e, 1e-12)
}

func TestComposedConstructorsShareSpins(t *testing.T) {
	m, err := builder.Build(nil, builder.Ring(4), builder.Star(6))
	require.NoError(t, err)
	require.Equal(t, 6, m.Size())
	require.Len(t, m.Edges(), 4+5)
	// Pair (0,1) is emitted by both and its weights add up.
	e, err := m.Energy(aligned(6))
	require.NoError(t, err)
	require.InDelta(t, -9, e, 1e-12)
}

func TestRandomSparseExtremes(t *testing.T) {
	empty, err := builder.Build(nil, builder.RandomSparse(5, 0))
	require.NoError(t, err)
	require.Empty(t, empty.Edges())

	full, err := builder.Build(nil, builder.RandomSparse(5, 1))
	require.NoError(t, err)
	require.Len(t, full.Edges(), 10)
}

func TestRandomRegularDegrees(t *testing.T) {
	m, err := builder.Build([]builder.Option{builder.WithSeed(11)}, builder.RandomRegular(10, 3))
	require.NoError(t, err)
	require.Len(t, m.Edges(), 15)
	for i := 0; i < 10; i++ {
		require.Equal(t, 3, m.Degree(i), "spin %d", i)
	}

	seen := map[[2]int]bool{}
	for _, e := range m.Edges() {
		require.NotEqual(t, e.I, e.J)
		key := [2]int{min(e.I, e.J), max(e.I, e.J)}
		require.False(t, seen[key], "repeated pair %v", key)
		seen[key] = true
	}

	isolated, err := builder.Build(nil, builder.RandomRegular(3, 0))
	require.NoError(t, err)
	require.Equal(t, 3, isolated.Size())
	require.Empty(t, isolated.Edges())
}

func TestDeterminism(t *testing.T) {
	opts := func(seed uint64) []builder.Option {
		return []builder.Option{
			builder.WithSeed(seed),
			builder.WithCouplingFn(builder.PlusMinusFn(1)),
			builder.WithFieldFn(builder.NormalFn(0, 0.1)),
		}
	}
	a, err := builder.Build(opts(5), builder.RandomSparse(12, 0.3))
	require.NoError(t, err)
	b, err := builder.Build(opts(5), builder.RandomSparse(12, 0.3))
	require.NoError(t, err)
	require.Equal(t, a.Edges(), b.Edges())
	require.Equal(t, a.Bias(), b.Bias())

	for _, e := range a.Edges() {
		require.Contains(t, []float64{-1, 1}, e.W)
	}

	// Seed 0 is the default seed.
	z, err := builder.Build(opts(0), builder.RandomSparse(12, 0.3))
	require.NoError(t, err)
	one, err := builder.Build(opts(1), builder.RandomSparse(12, 0.3))
	require.NoError(t, err)
	require.Equal(t, z.Edges(), one.Edges())

	// WithRand over a fresh source equals WithSeed with the same value.
	r, err := builder.Build([]builder.Option{
		builder.WithRand(rand.New(rand.NewSource(5))),
		builder.WithCouplingFn(builder.PlusMinusFn(1)),
		builder.WithFieldFn(builder.NormalFn(0, 0.1)),
	}, builder.RandomSparse(12, 0.3))
	require.NoError(t, err)
	require.Equal(t, a.Edges(), r.Edges())
}

func TestUniformFnRange(t *testing.T) {
	m, err := builder.Build([]builder.Option{
		builder.WithSeed(3),
		builder.WithCouplingFn(builder.UniformFn(-2, -1)),
	}, builder.Complete(6))
	require.NoError(t, err)
	for _, e := range m.Edges() {
		require.GreaterOrEqual(t, e.W, -2.0)
		require.Less(t, e.W, -1.0)
	}
}

func TestBuildErrors(t *testing.T) {
	cases := map[string]struct {
		cons []builder.Constructor
		want error
	}{
		"nothing":        {nil, builder.ErrTooFewSpins},
		"short chain":    {[]builder.Constructor{builder.Chain(1)}, builder.ErrTooFewSpins},
		"short ring":     {[]builder.Constructor{builder.Ring(2)}, builder.ErrTooFewSpins},
		"empty grid":     {[]builder.Constructor{builder.Grid(0, 3, false)}, builder.ErrTooFewSpins},
		"single clique":  {[]builder.Constructor{builder.Complete(1)}, builder.ErrTooFewSpins},
		"lonely star":    {[]builder.Constructor{builder.Star(1)}, builder.ErrTooFewSpins},
		"bad p":          {[]builder.Constructor{builder.RandomSparse(4, 1.5)}, builder.ErrInvalidProbability},
		"degree too big": {[]builder.Constructor{builder.RandomRegular(4, 4)}, builder.ErrTooFewSpins},
		"odd stubs":      {[]builder.Constructor{builder.RandomRegular(5, 3)}, builder.ErrTooFewSpins},
		"nil":            {[]builder.Constructor{nil}, builder.ErrConstructFailed},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := builder.Build(nil, tc.cons...)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestOptionPanics(t *testing.T) {
	require.Panics(t, func() { builder.WithRand(nil) })
	require.Panics(t, func() { builder.WithCouplingFn(nil) })
	require.Panics(t, func() { builder.WithFieldFn(nil) })
	require.Panics(t, func() { builder.UniformFn(1, 0) })
	require.Panics(t, func() { builder.NormalFn(0, -1) })
	require.Panics(t, func() { builder.PlusMinusFn(-1) })
}

// TestAnnealFerromagnet: SA finds the aligned ground state of a
// ferromagnetic clique.
func TestAnnealFerromagnet(t *testing.T) {
	m, err := builder.Build(nil, builder.Complete(4))
	require.NoError(t, err)
	sched, err := schedule.Linear(0.1, 4, 30)
	require.NoError(t, err)
	a, err := anneal.New(m, sched, anneal.WithSeed(9))
	require.NoError(t, err)

	res, err := a.Run(5, nil)
	require.NoError(t, err)
	require.InDelta(t, -6, res.BestEnergy, 1e-12)
	require.InDelta(t, 1, abs(spin.Magnetization(res.BestState)), 1e-12)
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
