// SPDX-License-Identifier: MIT

package sqa

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/qanneal/spin"
)

// Lattice is a replicas × slices × spins block of ±1 values stored flat in
// (replica, slice, spin) order.
type Lattice struct {
	replicas int
	slices   int
	spins    int
	data     []int8
}

// NewLattice returns an all-up lattice.
// Errors: ErrEmptyLattice.
func NewLattice(replicas, slices, spins int) (*Lattice, error) {
	if replicas <= 0 || slices <= 0 || spins <= 0 {
		return nil, fmt.Errorf("NewLattice(%d, %d, %d): %w", replicas, slices, spins, ErrEmptyLattice)
	}
	l := &Lattice{
		replicas: replicas,
		slices:   slices,
		spins:    spins,
		data:     make([]int8, replicas*slices*spins),
	}
	for i := range l.data {
		l.data[i] = 1
	}

	return l, nil
}

// RandomLattice returns a lattice filled uniformly at random, one draw per
// element in storage order.
func RandomLattice(replicas, slices, spins int, rng *rand.Rand) (*Lattice, error) {
	l, err := NewLattice(replicas, slices, spins)
	if err != nil {
		return nil, err
	}
	spin.Randomize(l.data, rng)

	return l, nil
}

// Replicas returns the number of independent rings.
func (l *Lattice) Replicas() int { return l.replicas }

// Slices returns the number of Trotter slices per replica.
func (l *Lattice) Slices() int { return l.slices }

// Spins returns the number of spins per slice.
func (l *Lattice) Spins() int { return l.spins }

func (l *Lattice) check(replica, slice int) error {
	if replica < 0 || replica >= l.replicas || slice < 0 || slice >= l.slices {
		return fmt.Errorf("replica %d slice %d of %dx%d: %w", replica, slice, l.replicas, l.slices, ErrLatticeIndex)
	}

	return nil
}

func (l *Lattice) offset(replica, slice int) int {
	return (replica*l.slices + slice) * l.spins
}

// view returns the slice without bounds checks; callers guarantee the indices.
func (l *Lattice) view(replica, slice int) spin.State {
	off := l.offset(replica, slice)

	return spin.State(l.data[off : off+l.spins : off+l.spins])
}

// At returns one element.
func (l *Lattice) At(replica, slice, i int) (int8, error) {
	if err := l.check(replica, slice); err != nil {
		return 0, err
	}
	if i < 0 || i >= l.spins {
		return 0, fmt.Errorf("spin %d of %d: %w", i, l.spins, ErrLatticeIndex)
	}

	return l.data[l.offset(replica, slice)+i], nil
}

// Set writes one element; v must be -1 or +1.
func (l *Lattice) Set(replica, slice, i int, v int8) error {
	if err := l.check(replica, slice); err != nil {
		return err
	}
	if i < 0 || i >= l.spins {
		return fmt.Errorf("spin %d of %d: %w", i, l.spins, ErrLatticeIndex)
	}
	if v != -1 && v != 1 {
		return fmt.Errorf("Set value %d: %w", v, spin.ErrInvalidSpin)
	}
	l.data[l.offset(replica, slice)+i] = v

	return nil
}

// Slice returns a view of one slice that shares storage with the lattice.
func (l *Lattice) Slice(replica, slice int) (spin.State, error) {
	if err := l.check(replica, slice); err != nil {
		return nil, err
	}

	return l.view(replica, slice), nil
}

// SliceState returns an independent copy of one slice.
func (l *Lattice) SliceState(replica, slice int) (spin.State, error) {
	if err := l.check(replica, slice); err != nil {
		return nil, err
	}

	return l.view(replica, slice).Clone(), nil
}

// SetSlice overwrites one slice with s.
// Errors: ErrLatticeIndex, spin.ErrSizeMismatch, spin.ErrInvalidSpin.
func (l *Lattice) SetSlice(replica, slice int, s spin.State) error {
	if err := l.check(replica, slice); err != nil {
		return err
	}
	if len(s) != l.spins {
		return fmt.Errorf("SetSlice len=%d want %d: %w", len(s), l.spins, spin.ErrSizeMismatch)
	}
	if err := spin.Validate(s); err != nil {
		return err
	}
	copy(l.view(replica, slice), s)

	return nil
}

// Magnetization returns the mean spin over the whole lattice.
func (l *Lattice) Magnetization() float64 {
	return spin.Magnetization(l.data)
}

// Clone returns an independent copy.
func (l *Lattice) Clone() *Lattice {
	out := *l
	out.data = append([]int8(nil), l.data...)

	return &out
}
