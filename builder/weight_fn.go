// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math/rand"
)

// WeightFn draws one coefficient (a coupling J_ij or a field h_i) from rng.
// It must be deterministic for a given RNG state.
type WeightFn func(rng *rand.Rand) float64

// DefaultCoupling is the ferromagnetic default: E contains -1·s_i·s_j per edge.
const DefaultCoupling float64 = -1

// ConstantFn always yields value.
func ConstantFn(value float64) WeightFn {
	return func(*rand.Rand) float64 { return value }
}

// UniformFn samples uniformly in [min, max). Panics if max < min.
func UniformFn(min, max float64) WeightFn {
	if max < min {
		panic(fmt.Sprintf("builder: UniformFn requires min <= max, got min=%g max=%g", min, max))
	}
	span := max - min

	return func(rng *rand.Rand) float64 {
		if span == 0 {
			return min
		}

		return min + rng.Float64()*span
	}
}

// NormalFn samples from N(mean, stddev²). Panics if stddev < 0.
func NormalFn(mean, stddev float64) WeightFn {
	if stddev < 0 {
		panic(fmt.Sprintf("builder: NormalFn requires stddev >= 0, got %g", stddev))
	}

	return func(rng *rand.Rand) float64 {
		return mean + rng.NormFloat64()*stddev
	}
}

// PlusMinusFn yields +magnitude or -magnitude with equal probability
// (the ±J spin glass). Panics if magnitude < 0.
func PlusMinusFn(magnitude float64) WeightFn {
	if magnitude < 0 {
		panic(fmt.Sprintf("builder: PlusMinusFn requires magnitude >= 0, got %g", magnitude))
	}

	return func(rng *rand.Rand) float64 {
		if rng.Intn(2) == 0 {
			return -magnitude
		}

		return magnitude
	}
}
