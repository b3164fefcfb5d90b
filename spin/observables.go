// SPDX-License-Identifier: MIT

package spin

// Magnetization returns the mean spin value of s; an empty state yields 0.
// Complexity: O(n).
func Magnetization(s State) float64 {
	if len(s) == 0 {
		return 0
	}
	var (
		sum float64
		v   int8
	)
	for _, v = range s {
		sum += float64(v)
	}

	return sum / float64(len(s))
}

// Overlap returns (1/n)·Σ a_i·b_i, the normalized agreement between two states.
// Identical states give 1, globally flipped states give -1.
func Overlap(a, b State) (float64, error) {
	if len(a) != len(b) {
		return 0, ErrSizeMismatch
	}
	if len(a) == 0 {
		return 0, nil
	}
	var (
		sum float64
		i   int
	)
	for i = range a {
		sum += float64(a[i]) * float64(b[i])
	}

	return sum / float64(len(a)), nil
}
