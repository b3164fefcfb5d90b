// SPDX-License-Identifier: MIT

// Package ising - shared validation helpers.
//
// Each helper returns a sentinel wrapped with a short tag so messages read
// "NewDense h[3]: ising: NaN or Inf coefficient" while errors.Is still matches.

package ising

import (
	"fmt"
	"math"

	"github.com/katalvlaran/qanneal/spin"
)

// validatorErrorf wraps err with a uniform tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validateFinite rejects NaN/±Inf entries of v.
// Complexity: O(len(v)).
func validateFinite(tag string, v []float64) error {
	var (
		i int
		x float64
	)
	for i, x = range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return validatorErrorf(fmt.Sprintf("%s[%d]", tag, i), ErrNaNInf)
		}
	}

	return nil
}

// validateScalar rejects a NaN/±Inf scalar.
func validateScalar(tag string, x float64) error {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return validatorErrorf(tag, ErrNaNInf)
	}

	return nil
}

// validateState checks length and spin values; used by Energy.
// Complexity: O(n).
func validateState(tag string, s spin.State, n int) error {
	if len(s) != n {
		return validatorErrorf(fmt.Sprintf("%s: got %d spins, want %d", tag, len(s), n), spin.ErrSizeMismatch)
	}
	if err := spin.Validate(s); err != nil {
		return validatorErrorf(tag, err)
	}

	return nil
}

// validateFlip checks length, flip index and the flipped spin's value; used
// by DeltaEnergy. Neighbour values are not rescanned, which keeps DeltaEnergy
// O(n) / O(deg); Energy still validates the whole state.
func validateFlip(tag string, s spin.State, n, flip int) error {
	if len(s) != n {
		return validatorErrorf(fmt.Sprintf("%s: got %d spins, want %d", tag, len(s), n), spin.ErrSizeMismatch)
	}
	if flip < 0 || flip >= n {
		return validatorErrorf(fmt.Sprintf("%s: flip %d of %d", tag, flip, n), spin.ErrIndexOutOfRange)
	}
	if v := s[flip]; v != 1 && v != -1 {
		return validatorErrorf(fmt.Sprintf("%s: spin[%d]=%d", tag, flip, v), spin.ErrInvalidSpin)
	}

	return nil
}
