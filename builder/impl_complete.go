// SPDX-License-Identifier: MIT

package builder

import "fmt"

const (
	methodComplete   = "Complete"
	methodStar       = "Star"
	minCompleteSpins = 2
	minStarSpins     = 2
)

// Complete returns a Constructor for the complete graph K_n, pairs emitted in
// (i asc, j asc, j > i) order. With NormalFn(0, 1/sqrt(n)) couplings this is
// the Sherrington–Kirkpatrick model. Requires n >= 2.
func Complete(n int) Constructor {
	return func(in *instance, cfg builderConfig) error {
		if n < minCompleteSpins {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteSpins, ErrTooFewSpins)
		}
		in.grow(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				in.connect(cfg, i, j)
			}
		}

		return nil
	}
}

// Star returns a Constructor joining hub spin 0 to spins 1..n-1.
// Requires n >= 2.
func Star(n int) Constructor {
	return func(in *instance, cfg builderConfig) error {
		if n < minStarSpins {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarSpins, ErrTooFewSpins)
		}
		in.grow(n)
		for i := 1; i < n; i++ {
			in.connect(cfg, 0, i)
		}

		return nil
	}
}
