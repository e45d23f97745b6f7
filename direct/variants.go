package direct

import "math"

// ComplexityFunc is a base complexity measure (LZ76, LZ78, or any other
// phrase-counting function) over which Symmetric and Conditional are
// generalized, per spec §4.4.
type ComplexityFunc func([]byte) int

func reversed(s []byte) []byte {
	out := make([]byte, len(s))
	for i, c := range s {
		out[len(s)-1-i] = c
	}
	return out
}

// Symmetric returns (complexity(s) + complexity(reverse(s))) / 2.
func Symmetric(complexity ComplexityFunc, s []byte) float64 {
	return float64(complexity(s)+complexity(reversed(s))) / 2.0
}

// Conditional returns complexity(x·y) - complexity(x), with
// Conditional(complexity, "", y) == complexity(y) and
// Conditional(complexity, x, "") == 0 (spec §4.4).
func Conditional(complexity ComplexityFunc, x, y []byte) float64 {
	if len(x) == 0 {
		return float64(complexity(y))
	}
	if len(y) == 0 {
		return 0.0
	}
	xy := make([]byte, 0, len(x)+len(y))
	xy = append(xy, x...)
	xy = append(xy, y...)
	return float64(complexity(xy) - complexity(x))
}

// MutualLZ78 returns the LZ78-based mutual information of x and y,
// (K(x)+K(y)-K(xy)) / (2*K(xy)) * ln(|x|+|y|). Supplemented from
// lz_inefficient.py:mutual_LZ78, dropped by the distillation but not
// excluded by any Non-goal.
func MutualLZ78(x, y []byte) float64 {
	kx, ky := LZ78(x), LZ78(y)
	xy := make([]byte, 0, len(x)+len(y))
	xy = append(xy, x...)
	xy = append(xy, y...)
	kxy := LZ78(xy)
	if kxy == 0 {
		return 0.0
	}
	return float64(kx+ky-kxy) / (2.0 * float64(kxy)) * math.Log(float64(len(x)+len(y)))
}
