// SPDX-License-Identifier: MIT

// Package ising - QUBO to Ising conversion.
//
// With x = (s+1)/2 and W = (Q+Qᵀ)/2 (xᵀQx == xᵀWx for every x):
//
//	xᵀWx = ¼·sᵀWs + ½·Σ_i s_i·Σ_j W_ij + ¼·Σ_ij W_ij
//	¼·sᵀWs = ¼·Σ_i W_ii + ½·Σ_{i<j} W_ij·s_i·s_j        (s_i² = 1)
//
// so the equivalent model has
//
//	h_i  = ½·Σ_j W_ij
//	J_ij = ¼·W_ij + ¼·W_ji = ½·W_ij                       (i < j, folded onto the upper triangle)
//	c    = ¼·Σ_ij W_ij + ¼·Σ_i W_ii
//
// and E_ising(2x-1) == xᵀQx for all x, for symmetric and asymmetric Q alike.

package ising

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

const (
	ctxNewQUBO    = "NewQUBO"
	ctxQUBOObject = "QUBO.Objective"
)

// QUBO is a quadratic objective xᵀQx over binary variables x ∈ {0,1}ⁿ.
type QUBO struct {
	n int
	q *mat.Dense
}

// NewQUBO builds a QUBO from a row-major n×n matrix (copied).
// Errors: ErrEmptyModel, ErrDimensionMismatch, ErrNaNInf.
func NewQUBO(q []float64, n int) (*QUBO, error) {
	if n <= 0 {
		return nil, ErrEmptyModel
	}
	if len(q) != n*n {
		return nil, validatorErrorf(fmt.Sprintf("%s: len(Q)=%d, n*n=%d", ctxNewQUBO, len(q), n*n), ErrDimensionMismatch)
	}
	if err := validateFinite(ctxNewQUBO+" Q", q); err != nil {
		return nil, err
	}

	return &QUBO{n: n, q: mat.NewDense(n, n, append([]float64(nil), q...))}, nil
}

// Size returns n.
func (q *QUBO) Size() int { return q.n }

// Matrix returns a row-major copy of Q.
func (q *QUBO) Matrix() []float64 {
	out := make([]float64, q.n*q.n)
	var i, j int
	for i = 0; i < q.n; i++ {
		for j = 0; j < q.n; j++ {
			out[i*q.n+j] = q.q.At(i, j)
		}
	}

	return out
}

// Objective evaluates xᵀQx.
// Errors: ErrDimensionMismatch, ErrInvalidBinary.
// Complexity: O(n²).
func (q *QUBO) Objective(x []int8) (float64, error) {
	if len(x) != q.n {
		return 0, validatorErrorf(fmt.Sprintf("%s: len(x)=%d, n=%d", ctxQUBOObject, len(x), q.n), ErrDimensionMismatch)
	}
	xv := mat.NewVecDense(q.n, nil)
	var (
		i int
		v int8
	)
	for i, v = range x {
		if v != 0 && v != 1 {
			return 0, validatorErrorf(fmt.Sprintf("%s: x[%d]=%d", ctxQUBOObject, i, v), ErrInvalidBinary)
		}
		xv.SetVec(i, float64(v))
	}

	return mat.Inner(xv, q.q, xv), nil
}

// ToIsing returns the Dense model equivalent to q (see the file header).
// Complexity: O(n²).
func (q *QUBO) ToIsing() (*Dense, error) {
	n := q.n

	// Symmetrize: W = (Q + Qᵀ) / 2.
	var w mat.Dense
	w.Add(q.q, q.q.T())
	w.Scale(0.5, &w)

	h := make([]float64, n)
	jv := make([]float64, n*n)
	var (
		i, j int
		v    float64
	)
	for i = 0; i < n; i++ {
		h[i] = 0.5 * mat.Sum(w.RowView(i))
		for j = i + 1; j < n; j++ {
			v = 0.5 * w.At(i, j)
			jv[i*n+j] = v
			jv[j*n+i] = v
		}
	}
	c := 0.25*mat.Sum(&w) + 0.25*mat.Trace(&w)

	return NewDense(h, jv, n, c)
}
