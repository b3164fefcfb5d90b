package mcmc

import (
	"testing"

	"github.com/katalvlaran/qanneal/ising"
	"github.com/katalvlaran/qanneal/spin"
	"github.com/stretchr/testify/require"
)

func TestResolveSeed(t *testing.T) {
	require.Equal(t, DefaultSeed, ResolveSeed(0))
	require.Equal(t, uint64(9), ResolveSeed(9))

	a, b := NewRand(0), NewRand(DefaultSeed)
	require.Equal(t, a.Int63(), b.Int63())
}

// TestAcceptDownhillDrawsNothing: a non-positive delta is accepted without
// consuming the generator.
func TestAcceptDownhillDrawsNothing(t *testing.T) {
	rng, ref := NewRand(5), NewRand(5)

	require.True(t, Accept(-1, 10, rng))
	require.True(t, Accept(0, 10, rng))
	require.Equal(t, ref.Float64(), rng.Float64())
}

// TestAcceptUphillFrozen: a huge β rejects every uphill move.
func TestAcceptUphillFrozen(t *testing.T) {
	rng := NewRand(7)
	for i := 0; i < 100; i++ {
		require.False(t, Accept(1, 1e6, rng))
	}
}

// TestSweepTracksEnergy: the running energy returned by Sweep matches a full
// recomputation, and onAccept sees every accepted energy.
func TestSweepTracksEnergy(t *testing.T) {
	m, err := ising.NewDense([]float64{0.1, -0.1, 0.2}, []float64{
		0, 0.4, 0,
		0.4, 0, -0.2,
		0, -0.2, 0,
	}, 3, 0)
	require.NoError(t, err)

	rng := NewRand(3)
	s, err := spin.Random(3, rng)
	require.NoError(t, err)
	e, err := m.Energy(s)
	require.NoError(t, err)

	var seen []float64
	for k := 0; k < 20; k++ {
		e, err = Sweep(m, s, 0.5, e, rng, func(x float64) { seen = append(seen, x) })
		require.NoError(t, err)
	}
	full, err := m.Energy(s)
	require.NoError(t, err)
	require.InDelta(t, full, e, 1e-12)
	require.NotEmpty(t, seen)
	require.Equal(t, e, seen[len(seen)-1])
}
