// SPDX-License-Identifier: MIT

package spin

import (
	"fmt"
	"math/rand"
)

// State is an ordered configuration of n spins, each exactly -1 or +1.
type State []int8

// New returns an all-up state of length n.
// Complexity: O(n).
func New(n int) (State, error) {
	if n <= 0 {
		return nil, ErrEmptyState
	}
	s := make(State, n)
	var i int
	for i = range s {
		s[i] = 1
	}

	return s, nil
}

// Random draws a state uniformly over {-1, +1}^n using rng.
// One rng.Intn(2) draw is consumed per spin, in index order, so a seeded rng
// always yields the same state.
// Complexity: O(n).
func Random(n int, rng *rand.Rand) (State, error) {
	if n <= 0 {
		return nil, ErrEmptyState
	}
	s := make(State, n)
	Randomize(s, rng)

	return s, nil
}

// Randomize overwrites every element of s with a uniform ±1 draw from rng.
func Randomize(s State, rng *rand.Rand) {
	var i int
	for i = range s {
		if rng.Intn(2) == 1 {
			s[i] = 1
		} else {
			s[i] = -1
		}
	}
}

// FromInts converts v into a State, rejecting any element outside {-1, +1}.
func FromInts(v []int) (State, error) {
	if len(v) == 0 {
		return nil, ErrEmptyState
	}
	s := make(State, len(v))
	var (
		i int
		x int
	)
	for i, x = range v {
		if x != -1 && x != 1 {
			return nil, fmt.Errorf("FromInts[%d]=%d: %w", i, x, ErrInvalidSpin)
		}
		s[i] = int8(x)
	}

	return s, nil
}

// Validate reports ErrInvalidSpin for the first element outside {-1, +1}.
// Complexity: O(n).
func Validate(s State) error {
	var (
		i int
		v int8
	)
	for i, v = range s {
		if v != -1 && v != 1 {
			return fmt.Errorf("spin[%d]=%d: %w", i, v, ErrInvalidSpin)
		}
	}

	return nil
}

// Len returns the number of spins.
func (s State) Len() int { return len(s) }

// Clone returns an independent copy of s. A nil state clones to nil.
func (s State) Clone() State {
	if s == nil {
		return nil
	}
	out := make(State, len(s))
	copy(out, s)

	return out
}

// Flip negates spin i in place.
func (s State) Flip(i int) error {
	if i < 0 || i >= len(s) {
		return fmt.Errorf("Flip(%d) of %d spins: %w", i, len(s), ErrIndexOutOfRange)
	}
	s[i] = -s[i]

	return nil
}

// Ints returns the spins as a []int, convenient for printing and encoding.
func (s State) Ints() []int {
	out := make([]int, len(s))
	var (
		i int
		v int8
	)
	for i, v = range s {
		out[i] = int(v)
	}

	return out
}
