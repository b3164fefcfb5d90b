package anneal_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/qanneal/anneal"
	"github.com/katalvlaran/qanneal/backend"
	"github.com/katalvlaran/qanneal/ising"
	"github.com/katalvlaran/qanneal/schedule"
	"github.com/katalvlaran/qanneal/spin"
	"github.com/stretchr/testify/require"
)

const tol = 1e-9

// twoSpin: h=[1,-1], J01=0.5; ground state (-1,+1) at E=-2.5.
func twoSpin(t *testing.T) ising.Model {
	t.Helper()
	m, err := ising.NewDense([]float64{1, -1}, []float64{0, 0.5, 0.5, 0}, 2, 0)
	require.NoError(t, err)
	return m
}

// ring builds a sparse frustrated ring of n spins with random fields.
func ring(t *testing.T, n int, seed int64) ising.Model {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	h := make([]float64, n)
	edges := make([]ising.Edge, 0, n)
	for i := 0; i < n; i++ {
		h[i] = rng.Float64() - 0.5
		edges = append(edges, ising.Edge{I: i, J: (i + 1) % n, W: 2*rng.Float64() - 1})
	}
	m, err := ising.NewSparse(h, edges, n, 0.25)
	require.NoError(t, err)
	return m
}

func ramp(t *testing.T, steps int) schedule.Classical {
	t.Helper()
	s, err := schedule.Linear(0.1, 3.0, steps)
	require.NoError(t, err)
	return s
}

func requireEnergy(t *testing.T, m ising.Model, s spin.State, want float64) {
	t.Helper()
	got, err := m.Energy(s)
	require.NoError(t, err)
	require.InDelta(t, want, got, tol)
}

func TestAnnealerFindsTwoSpinGround(t *testing.T) {
	m := twoSpin(t)
	a, err := anneal.New(m, ramp(t, 20), anneal.WithSeed(7))
	require.NoError(t, err)

	res, err := a.Run(5, nil)
	require.NoError(t, err)
	require.InDelta(t, -2.5, res.BestEnergy, tol)
	require.Equal(t, spin.State{-1, 1}, res.BestState)
}

// TestAnnealerTraceAndBest: one trace entry per β; best is consistent with the model.
func TestAnnealerTraceAndBest(t *testing.T) {
	m := ring(t, 16, 3)
	sched := ramp(t, 25)
	a, err := anneal.New(m, sched, anneal.WithSeed(11))
	require.NoError(t, err)

	var (
		calls []int
		betas []float64
	)
	obs := anneal.ObserverFunc(func(step int, beta, energy float64, s spin.State) {
		calls = append(calls, step)
		betas = append(betas, beta)
		requireEnergy(t, m, s, energy)
	})

	res, err := a.Run(3, obs)
	require.NoError(t, err)
	require.Len(t, res.EnergyTrace, sched.Len())
	require.Len(t, calls, sched.Len())
	require.Equal(t, sched.Betas(), betas)
	requireEnergy(t, m, res.BestState, res.BestEnergy)

	// Every trace point was reached by accepted flips, so none beats the best.
	for _, e := range res.EnergyTrace {
		require.GreaterOrEqual(t, e, res.BestEnergy-tol)
	}
}

func TestAnnealerDeterminism(t *testing.T) {
	m := ring(t, 12, 5)
	sched := ramp(t, 10)

	a, err := anneal.New(m, sched, anneal.WithSeed(99))
	require.NoError(t, err)
	first, err := a.Run(2, nil)
	require.NoError(t, err)

	b, err := anneal.New(m, sched)
	require.NoError(t, err)
	b.SetSeed(99)
	second, err := b.Run(2, nil)
	require.NoError(t, err)
	require.Equal(t, first, second)

	// Seed 0 behaves like the default seed 1.
	c, err := anneal.New(m, sched, anneal.WithSeed(0))
	require.NoError(t, err)
	d, err := anneal.New(m, sched, anneal.WithSeed(1))
	require.NoError(t, err)
	rc, err := c.Run(2, nil)
	require.NoError(t, err)
	rd, err := d.Run(2, nil)
	require.NoError(t, err)
	require.Equal(t, rc, rd)
}

func TestAnnealerErrors(t *testing.T) {
	m := twoSpin(t)

	_, err := anneal.New(m, schedule.Classical{})
	require.ErrorIs(t, err, anneal.ErrEmptySchedule)

	_, err = anneal.NewWithBackend(nil, ramp(t, 2))
	require.ErrorIs(t, err, anneal.ErrNilBackend)

	_, err = anneal.New(nil, ramp(t, 2))
	require.ErrorIs(t, err, backend.ErrNilModel)

	a, err := anneal.New(m, ramp(t, 2))
	require.NoError(t, err)
	_, err = a.Run(0, nil)
	require.ErrorIs(t, err, anneal.ErrNoSweeps)
}

func TestTemperingTraces(t *testing.T) {
	m := ring(t, 14, 8)
	pt, err := anneal.NewTempering(m, []float64{0.2, 0.6, 1.2, 2.5}, anneal.WithSeed(4))
	require.NoError(t, err)

	const steps = 30
	res, err := pt.Run(2, steps, 1, nil)
	require.NoError(t, err)

	require.Len(t, res.AverageEnergyTrace, steps)
	require.Len(t, res.SwapAcceptanceTrace, steps)
	require.Len(t, res.SwapAttemptTrace, steps)
	require.Len(t, res.SwapAcceptTrace, steps)
	for i, rate := range res.SwapAcceptanceTrace {
		require.GreaterOrEqual(t, rate, 0.0)
		require.LessOrEqual(t, rate, 1.0)
		require.Equal(t, 3, res.SwapAttemptTrace[i])
		require.LessOrEqual(t, res.SwapAcceptTrace[i], res.SwapAttemptTrace[i])
	}

	require.Len(t, res.FinalStates, 4)
	require.Len(t, res.FinalEnergies, 4)
	for r := range res.FinalStates {
		requireEnergy(t, m, res.FinalStates[r], res.FinalEnergies[r])
		require.GreaterOrEqual(t, res.FinalEnergies[r], res.BestEnergy-tol)
	}
	requireEnergy(t, m, res.BestState, res.BestEnergy)
}

// TestTemperingTwoRungs: exactly one exchange attempt per step with interval 1.
func TestTemperingTwoRungs(t *testing.T) {
	pt, err := anneal.NewTempering(twoSpin(t), []float64{0.5, 2.0}, anneal.WithSeed(1))
	require.NoError(t, err)

	res, err := pt.Run(1, 10, 1, nil)
	require.NoError(t, err)
	for i := range res.SwapAttemptTrace {
		require.Equal(t, 1, res.SwapAttemptTrace[i])
		rate := res.SwapAcceptanceTrace[i]
		require.True(t, rate == 0 || rate == 1, "rate %v", rate)
	}
}

// TestTemperingSwapInterval: exchanges only on steps where (step+1)%interval==0.
func TestTemperingSwapInterval(t *testing.T) {
	pt, err := anneal.NewTempering(ring(t, 8, 2), []float64{0.5, 1, 2}, anneal.WithSeed(6))
	require.NoError(t, err)

	var lowest []float64
	obs := anneal.ObserverFunc(func(_ int, beta, _ float64, _ spin.State) {
		lowest = append(lowest, beta)
	})
	res, err := pt.Run(1, 9, 3, obs)
	require.NoError(t, err)
	require.Equal(t, []int{0, 0, 2, 0, 0, 2, 0, 0, 2}, res.SwapAttemptTrace)
	require.Len(t, lowest, 9)
	for i, a := range res.SwapAttemptTrace {
		if a == 0 {
			require.Zero(t, res.SwapAcceptanceTrace[i])
		}
	}
}

func TestTemperingDeterminism(t *testing.T) {
	m := ring(t, 10, 9)
	betas := []float64{0.3, 1, 3}

	a, err := anneal.NewTempering(m, betas, anneal.WithSeed(21))
	require.NoError(t, err)
	b, err := anneal.NewTempering(m, betas, anneal.WithSeed(21))
	require.NoError(t, err)

	ra, err := a.Run(2, 15, 2, nil)
	require.NoError(t, err)
	rb, err := b.Run(2, 15, 2, nil)
	require.NoError(t, err)
	require.Equal(t, ra, rb)
}

func TestTemperingErrors(t *testing.T) {
	m := twoSpin(t)

	_, err := anneal.NewTempering(m, []float64{1})
	require.ErrorIs(t, err, anneal.ErrTooFewRungs)

	_, err = anneal.NewTempering(m, []float64{1, math.NaN()})
	require.ErrorIs(t, err, schedule.ErrNaNInf)

	_, err = anneal.NewTemperingWithBackend(nil, []float64{1, 2})
	require.ErrorIs(t, err, anneal.ErrNilBackend)

	pt, err := anneal.NewTempering(m, []float64{1, 2})
	require.NoError(t, err)
	_, err = pt.Run(0, 1, 1, nil)
	require.ErrorIs(t, err, anneal.ErrNoSweeps)
	_, err = pt.Run(1, 0, 1, nil)
	require.ErrorIs(t, err, anneal.ErrNoSteps)
	_, err = pt.Run(1, 1, 0, nil)
	require.ErrorIs(t, err, anneal.ErrNoSwapInterval)
}

func TestEnsembleStatistics(t *testing.T) {
	m := ring(t, 12, 13)
	sched := ramp(t, 15)
	en, err := anneal.NewEnsemble(m, sched, 5, anneal.WithSeed(17))
	require.NoError(t, err)
	require.Equal(t, 5, en.Replicas())

	calls := 0
	res, err := en.Run(2, anneal.ObserverFunc(func(_ int, _, _ float64, _ spin.State) { calls++ }))
	require.NoError(t, err)
	require.Equal(t, sched.Len(), calls)

	require.Len(t, res.Replicas, 5)
	require.Len(t, res.AverageEnergyTrace, sched.Len())
	require.Len(t, res.AverageMagnetizationTrace, sched.Len())

	lowest := math.Inf(1)
	for _, rep := range res.Replicas {
		require.Len(t, rep.EnergyTrace, sched.Len())
		require.Len(t, rep.MagnetizationTrace, sched.Len())
		requireEnergy(t, m, rep.BestState, rep.BestEnergy)
		lowest = math.Min(lowest, rep.BestEnergy)
		for _, mag := range rep.MagnetizationTrace {
			require.LessOrEqual(t, math.Abs(mag), 1.0)
		}
	}
	require.Equal(t, lowest, res.GlobalBestEnergy)
	requireEnergy(t, m, res.GlobalBestState, res.GlobalBestEnergy)

	for step := range res.AverageEnergyTrace {
		sum := 0.0
		for _, rep := range res.Replicas {
			sum += rep.EnergyTrace[step]
		}
		require.InDelta(t, sum/5, res.AverageEnergyTrace[step], tol)
	}
}

func TestEnsembleDeterminism(t *testing.T) {
	m := ring(t, 9, 1)
	sched := ramp(t, 8)

	a, err := anneal.NewEnsemble(m, sched, 3, anneal.WithSeed(5))
	require.NoError(t, err)
	b, err := anneal.NewEnsemble(m, sched, 3)
	require.NoError(t, err)
	b.SetSeed(5)

	ra, err := a.Run(1, nil)
	require.NoError(t, err)
	rb, err := b.Run(1, nil)
	require.NoError(t, err)
	require.Equal(t, ra, rb)
}

func TestEnsembleErrors(t *testing.T) {
	m := twoSpin(t)

	_, err := anneal.NewEnsemble(m, ramp(t, 3), 0)
	require.ErrorIs(t, err, anneal.ErrNoReplicas)

	_, err = anneal.NewEnsemble(m, schedule.Classical{}, 2)
	require.ErrorIs(t, err, anneal.ErrEmptySchedule)

	en, err := anneal.NewEnsemble(m, ramp(t, 3), 2)
	require.NoError(t, err)
	_, err = en.Run(-1, nil)
	require.ErrorIs(t, err, anneal.ErrNoSweeps)
}
