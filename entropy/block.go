package entropy

import (
	"math"

	"github.com/Zubayear/ryushin/treemap"
)

// BlockEntropy returns H_d(s) = -Σ_b p(b)*log2(p(b)) over all distinct
// length-d windows b of s, with p(b) = count(b) / (|s|-d+1). Returns 0
// when d <= 0 or d > |s| (spec §4.5).
func BlockEntropy(s []byte, d int) float64 {
	if d <= 0 || d > len(s) {
		return 0.0
	}
	counts := treemap.NewTreeMap[string, int]()
	numWindows := len(s) - d + 1
	for i := 0; i < numWindows; i++ {
		window := string(s[i : i+d])
		n, _ := counts.Get(window)
		counts.Put(window, n+1)
	}

	var h float64
	for _, key := range counts.Keys() {
		n, _ := counts.Get(key)
		p := float64(n) / float64(numWindows)
		h -= p * math.Log2(p)
	}
	tracer().Debugf("block_entropy(d=%d, windows=%d) = %v", d, numWindows, h)
	return h
}

// Symmetric returns the average of BlockEntropy(s, d) and
// BlockEntropy(reverse(s), d) (spec §4.5).
func Symmetric(s []byte, d int) float64 {
	return (BlockEntropy(s, d) + BlockEntropy(reversed(s), d)) / 2.0
}

func reversed(s []byte) []byte {
	out := make([]byte, len(s))
	for i, c := range s {
		out[len(s)-1-i] = c
	}
	return out
}
