// SPDX-License-Identifier: MIT

// Package ising - Dense model.
//
// Storage:
//   - J lives in a gonum mat.Dense (row-major, offset i*stride + j).
//   - Hot paths read the raw backing slice captured at construction.
//   - Only J[i][j] with i < j contributes; the pair (i, j) is always read as
//     J[min(i,j)][max(i,j)], both in Energy and in the local field, so the
//     delta invariant holds even when the lower triangle disagrees.

package ising

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/qanneal/spin"
)

// ---------- error context tags ----------

const (
	ctxNewDense    = "NewDense"
	ctxDenseEnergy = "Dense.Energy"
	ctxDenseDelta  = "Dense.DeltaEnergy"
)

// Dense is an Ising model with a full n×n coupling matrix.
type Dense struct {
	n      int
	h      []float64
	j      *mat.Dense
	raw    []float64 // j's backing store
	stride int
	c      float64
}

// NewDense builds a dense model from bias h (len n), row-major couplings j
// (len n*n) and constant c. Inputs are copied.
//
// Errors: ErrEmptyModel, ErrDimensionMismatch, ErrNaNInf.
// Complexity: O(n²).
func NewDense(h, j []float64, n int, c float64) (*Dense, error) {
	// Stage 1: shape.
	if n <= 0 {
		return nil, ErrEmptyModel
	}
	if len(h) != n {
		return nil, validatorErrorf(fmt.Sprintf("%s: len(h)=%d, n=%d", ctxNewDense, len(h), n), ErrDimensionMismatch)
	}
	if len(j) != n*n {
		return nil, validatorErrorf(fmt.Sprintf("%s: len(J)=%d, n*n=%d", ctxNewDense, len(j), n*n), ErrDimensionMismatch)
	}

	// Stage 2: numeric policy.
	if err := validateFinite(ctxNewDense+" h", h); err != nil {
		return nil, err
	}
	if err := validateFinite(ctxNewDense+" J", j); err != nil {
		return nil, err
	}
	if err := validateScalar(ctxNewDense+" c", c); err != nil {
		return nil, err
	}

	// Stage 3: private copies.
	hc := make([]float64, n)
	copy(hc, h)
	jc := make([]float64, n*n)
	copy(jc, j)
	jm := mat.NewDense(n, n, jc)
	raw := jm.RawMatrix()

	return &Dense{n: n, h: hc, j: jm, raw: raw.Data, stride: raw.Stride, c: c}, nil
}

func (*Dense) sealed() {}

// Size returns n.
func (d *Dense) Size() int { return d.n }

// Kind returns KindDense.
func (d *Dense) Kind() Kind { return KindDense }

// Constant returns c.
func (d *Dense) Constant() float64 { return d.c }

// Bias returns a copy of h.
func (d *Dense) Bias() []float64 {
	out := make([]float64, d.n)
	copy(out, d.h)

	return out
}

// Couplings returns a copy of the stored J matrix, including the ignored
// diagonal and lower triangle exactly as supplied.
func (d *Dense) Couplings() *mat.Dense {
	return mat.DenseCopyOf(d.j)
}

// Coupling returns the effective pair coupling for i != j (read from the
// upper triangle) and 0 for i == j or out-of-range indices.
func (d *Dense) Coupling(i, j int) float64 {
	if i == j || i < 0 || j < 0 || i >= d.n || j >= d.n {
		return 0
	}
	if i > j {
		i, j = j, i
	}

	return d.raw[i*d.stride+j]
}

// Energy computes E(s) in full.
// Errors: spin.ErrSizeMismatch, spin.ErrInvalidSpin.
// Complexity: O(n²).
func (d *Dense) Energy(s spin.State) (float64, error) {
	if err := validateState(ctxDenseEnergy, s, d.n); err != nil {
		return 0, err
	}

	var (
		e    = d.c
		i, j int
		row  int
		si   float64
	)
	for i = 0; i < d.n; i++ {
		e += d.h[i] * float64(s[i])
	}
	for i = 0; i < d.n; i++ {
		row = i * d.stride
		si = float64(s[i])
		for j = i + 1; j < d.n; j++ {
			e += d.raw[row+j] * si * float64(s[j])
		}
	}

	return e, nil
}

// DeltaEnergy returns the exact energy change of flipping spin i.
// Errors: spin.ErrSizeMismatch, spin.ErrIndexOutOfRange.
// Complexity: O(n).
func (d *Dense) DeltaEnergy(s spin.State, i int) (float64, error) {
	if err := validateFlip(ctxDenseDelta, s, d.n, i); err != nil {
		return 0, err
	}

	var (
		local = d.h[i]
		j     int
		row   = i * d.stride
	)
	// Column i of the upper triangle (pairs j < i).
	for j = 0; j < i; j++ {
		local += d.raw[j*d.stride+i] * float64(s[j])
	}
	// Row i of the upper triangle (pairs j > i).
	for j = i + 1; j < d.n; j++ {
		local += d.raw[row+j] * float64(s[j])
	}

	return -2.0 * float64(s[i]) * local, nil
}
