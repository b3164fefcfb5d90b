// SPDX-License-Identifier: MIT

package spin

import "errors"

// Sentinel errors. Callers match with errors.Is; producers may wrap them with
// fmt.Errorf("ctx: %w", ErrX) to add the offending index or length.
var (
	// ErrEmptyState is returned when a state of length <= 0 is requested.
	ErrEmptyState = errors.New("spin: state size must be > 0")

	// ErrInvalidSpin signals an element that is neither -1 nor +1.
	ErrInvalidSpin = errors.New("spin: spins must be -1 or +1")

	// ErrSizeMismatch signals a state whose length differs from the expected size.
	ErrSizeMismatch = errors.New("spin: state size mismatch")

	// ErrIndexOutOfRange signals a spin index outside [0, n).
	ErrIndexOutOfRange = errors.New("spin: index out of range")
)
