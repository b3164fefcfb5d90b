// SPDX-License-Identifier: MIT

package builder

import "fmt"

const (
	methodRandomSparse      = "RandomSparse"
	methodRandomRegular     = "RandomRegular"
	minRandomSpins          = 1
	maxStubMatchingAttempts = 256
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor for an Erdős–Rényi graph G(n, p): each
// pair i<j is included independently with probability p, trials in
// (i asc, j asc) order. A coupling is drawn right after each included pair.
// Requires n >= 1 and 0 <= p <= 1.
func RandomSparse(n int, p float64) Constructor {
	return func(in *instance, cfg builderConfig) error {
		if n < minRandomSpins {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomSparse, n, minRandomSpins, ErrTooFewSpins)
		}
		if !(p >= probMin && p <= probMax) {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w", methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		in.grow(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if cfg.rng.Float64() < p {
					in.connect(cfg, i, j)
				}
			}
		}

		return nil
	}
}

// RandomRegular returns a Constructor for a simple random d-regular graph by
// stub matching: n·d stubs are shuffled and paired, and the shuffle is redone
// while a pairing has a self-pair or a repeated pair. Edges are emitted in
// pairing order. Requires n >= 1, 0 <= d < n and n·d even.
//
// Errors: ErrTooFewSpins, ErrConstructFailed after the attempt limit.
func RandomRegular(n, d int) Constructor {
	return func(in *instance, cfg builderConfig) error {
		if n < minRandomSpins {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomRegular, n, minRandomSpins, ErrTooFewSpins)
		}
		if d < 0 || d >= n {
			return fmt.Errorf("%s: degree must be in [0,%d), got %d: %w", methodRandomRegular, n, d, ErrTooFewSpins)
		}
		if (n*d)%2 != 0 {
			return fmt.Errorf("%s: n*d must be even (n=%d, d=%d): %w", methodRandomRegular, n, d, ErrTooFewSpins)
		}

		stubs := make([]int, 0, n*d)
		for i := 0; i < n; i++ {
			for k := 0; k < d; k++ {
				stubs = append(stubs, i)
			}
		}

		for attempt := 0; attempt < maxStubMatchingAttempts; attempt++ {
			cfg.rng.Shuffle(len(stubs), func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })
			if !simplePairing(stubs) {
				continue
			}
			in.grow(n)
			for k := 0; k < len(stubs); k += 2 {
				in.connect(cfg, stubs[k], stubs[k+1])
			}

			return nil
		}

		return fmt.Errorf("%s: no simple pairing after %d attempts: %w", methodRandomRegular, maxStubMatchingAttempts, ErrConstructFailed)
	}
}

// simplePairing reports whether consecutive stub pairs form a simple graph.
func simplePairing(stubs []int) bool {
	seen := make(map[[2]int]struct{}, len(stubs)/2)
	for k := 0; k < len(stubs); k += 2 {
		u, v := stubs[k], stubs[k+1]
		if u == v {
			return false
		}
		if u > v {
			u, v = v, u
		}
		key := [2]int{u, v}
		if _, dup := seen[key]; dup {
			return false
		}
		seen[key] = struct{}{}
	}

	return true
}
