// SPDX-License-Identifier: MIT

package builder

import "errors"

// ErrTooFewSpins indicates that a size parameter (n, rows, cols, degree) is
// below the minimum of the requested constructor, or that a build produced
// no spins at all.
var ErrTooFewSpins = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0, 1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrConstructFailed indicates that a randomised constructor exhausted its
// attempts without producing a valid topology. Retry with another seed.
var ErrConstructFailed = errors.New("builder: construction failed")
