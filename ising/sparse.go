// SPDX-License-Identifier: MIT

package ising

import (
	"fmt"

	"github.com/katalvlaran/qanneal/spin"
)

const (
	ctxNewSparse    = "NewSparse"
	ctxSparseEnergy = "Sparse.Energy"
	ctxSparseDelta  = "Sparse.DeltaEnergy"
)

// Edge is one weighted coupling W·s_I·s_J. Edges are undirected; listing the
// same pair twice adds the weights.
type Edge struct {
	I int
	J int
	W float64
}

// neighbor is one adjacency entry: the other endpoint and the edge weight.
type neighbor struct {
	idx int
	w   float64
}

// Sparse is an Ising model given by an explicit edge list.
type Sparse struct {
	n     int
	h     []float64
	edges []Edge
	adj   [][]neighbor
	c     float64
}

// NewSparse builds a sparse model from bias h (len n), an edge list and
// constant c. The adjacency index is built once here.
//
// Errors: ErrEmptyModel, ErrDimensionMismatch, ErrEdgeIndex, ErrSelfEdge, ErrNaNInf.
// Complexity: O(n + |E|).
func NewSparse(h []float64, edges []Edge, n int, c float64) (*Sparse, error) {
	if n <= 0 {
		return nil, ErrEmptyModel
	}
	if len(h) != n {
		return nil, validatorErrorf(fmt.Sprintf("%s: len(h)=%d, n=%d", ctxNewSparse, len(h), n), ErrDimensionMismatch)
	}
	if err := validateFinite(ctxNewSparse+" h", h); err != nil {
		return nil, err
	}
	if err := validateScalar(ctxNewSparse+" c", c); err != nil {
		return nil, err
	}

	var (
		k int
		e Edge
	)
	for k, e = range edges {
		if e.I < 0 || e.J < 0 || e.I >= n || e.J >= n {
			return nil, validatorErrorf(fmt.Sprintf("%s: edge %d (%d,%d)", ctxNewSparse, k, e.I, e.J), ErrEdgeIndex)
		}
		if e.I == e.J {
			return nil, validatorErrorf(fmt.Sprintf("%s: edge %d (%d,%d)", ctxNewSparse, k, e.I, e.J), ErrSelfEdge)
		}
		if err := validateScalar(fmt.Sprintf("%s: edge %d weight", ctxNewSparse, k), e.W); err != nil {
			return nil, err
		}
	}

	m := &Sparse{
		n:     n,
		h:     append([]float64(nil), h...),
		edges: append([]Edge(nil), edges...),
		c:     c,
	}
	m.buildAdjacency()

	return m, nil
}

// buildAdjacency mirrors every edge into both endpoint lists, in edge order.
func (m *Sparse) buildAdjacency() {
	m.adj = make([][]neighbor, m.n)
	var e Edge
	for _, e = range m.edges {
		m.adj[e.I] = append(m.adj[e.I], neighbor{idx: e.J, w: e.W})
		m.adj[e.J] = append(m.adj[e.J], neighbor{idx: e.I, w: e.W})
	}
}

func (*Sparse) sealed() {}

// Size returns n.
func (m *Sparse) Size() int { return m.n }

// Kind returns KindSparse.
func (m *Sparse) Kind() Kind { return KindSparse }

// Constant returns c.
func (m *Sparse) Constant() float64 { return m.c }

// Bias returns a copy of h.
func (m *Sparse) Bias() []float64 { return append([]float64(nil), m.h...) }

// Edges returns a copy of the edge list in construction order.
func (m *Sparse) Edges() []Edge { return append([]Edge(nil), m.edges...) }

// Degree returns the number of adjacency entries of spin i (0 when out of range).
func (m *Sparse) Degree(i int) int {
	if i < 0 || i >= m.n {
		return 0
	}

	return len(m.adj[i])
}

// Energy computes E(s) in full.
// Complexity: O(n + |E|).
func (m *Sparse) Energy(s spin.State) (float64, error) {
	if err := validateState(ctxSparseEnergy, s, m.n); err != nil {
		return 0, err
	}

	var (
		e = m.c
		i int
		x Edge
	)
	for i = 0; i < m.n; i++ {
		e += m.h[i] * float64(s[i])
	}
	for _, x = range m.edges {
		e += x.W * float64(s[x.I]) * float64(s[x.J])
	}

	return e, nil
}

// DeltaEnergy returns the exact energy change of flipping spin i.
// Complexity: O(deg(i)).
func (m *Sparse) DeltaEnergy(s spin.State, i int) (float64, error) {
	if err := validateFlip(ctxSparseDelta, s, m.n, i); err != nil {
		return 0, err
	}

	var (
		local = m.h[i]
		nb    neighbor
	)
	for _, nb = range m.adj[i] {
		local += nb.w * float64(s[nb.idx])
	}

	return -2.0 * float64(s[i]) * local, nil
}
