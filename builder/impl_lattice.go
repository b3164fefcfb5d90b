// SPDX-License-Identifier: MIT

package builder

import "fmt"

const (
	methodChain   = "Chain"
	methodRing    = "Ring"
	methodGrid    = "Grid"
	minChainSpins = 2
	minRingSpins  = 3
	minGridDim    = 1
	minWrapDim    = 3
)

// Chain returns a Constructor for an open 1-D chain 0-1-…-(n-1).
// Requires n >= 2.
func Chain(n int) Constructor {
	return func(in *instance, cfg builderConfig) error {
		if n < minChainSpins {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodChain, n, minChainSpins, ErrTooFewSpins)
		}
		in.grow(n)
		for i := 0; i+1 < n; i++ {
			in.connect(cfg, i, i+1)
		}

		return nil
	}
}

// Ring returns a Constructor for a periodic chain with the closing edge
// (n-1, 0) emitted last. Requires n >= 3.
func Ring(n int) Constructor {
	return func(in *instance, cfg builderConfig) error {
		if n < minRingSpins {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRing, n, minRingSpins, ErrTooFewSpins)
		}
		in.grow(n)
		for i := 0; i < n; i++ {
			in.connect(cfg, i, (i+1)%n)
		}

		return nil
	}
}

// Grid returns a Constructor for a rows×cols square lattice with spin
// r*cols+c at row r, column c. Each site emits its right then its down edge.
// With periodic set, a dimension of at least 3 also wraps around; shorter
// dimensions stay open so that no pair is emitted twice.
func Grid(rows, cols int, periodic bool) Constructor {
	return func(in *instance, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d cols=%d, want >= %d: %w", methodGrid, rows, cols, minGridDim, ErrTooFewSpins)
		}
		var (
			wrapCols = periodic && cols >= minWrapDim
			wrapRows = periodic && rows >= minWrapDim
			idx      = func(r, c int) int { return r*cols + c }
		)
		in.grow(rows * cols)

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				switch {
				case c+1 < cols:
					in.connect(cfg, idx(r, c), idx(r, c+1))
				case wrapCols:
					in.connect(cfg, idx(r, c), idx(r, 0))
				}
				switch {
				case r+1 < rows:
					in.connect(cfg, idx(r, c), idx(r+1, c))
				case wrapRows:
					in.connect(cfg, idx(r, c), idx(0, c))
				}
			}
		}

		return nil
	}
}
