// Package numint holds tiny generic numeric helpers shared by the batch and
// exhaustive engines, grounded on the pack's use of golang.org/x/exp/constraints
// for generic numeric type parameters (Zubayear-ryushin/treemap,
// Zubayear-ryushin/priorityqueue).
package numint

import (
	"math"

	"golang.org/x/exp/constraints"
)

// SumInto adds src element-wise into dst. Used to reduce per-worker
// histograms in the exhaustive engine; commutative and associative, so
// callers may reduce partial results in any order.
func SumInto[T constraints.Integer](dst, src []T) {
	for i, v := range src {
		dst[i] += v
	}
}

// Total returns the sum of all elements of v.
func Total[T constraints.Integer](v []T) T {
	var total T
	for _, x := range v {
		total += x
	}
	return total
}

// Log2Scaled centralises the phrase_count*log2(n) reporting convention used
// by the suffix-tree LZ76 and direct LZ76/LZ78 measures (the symmetric and
// conditional variants work on unscaled phrase counts):
// float64(count)*log2(n) for n>1, float64(count) for n<=1, 0.0 for n==0.
// Keeping this in one place means every package reports zero/one-symbol
// inputs the same way without repeating the edge cases.
func Log2Scaled(count, n int) float64 {
	if n == 0 {
		return 0.0
	}
	if n <= 1 {
		return float64(count)
	}
	return float64(count) * math.Log2(float64(n))
}
