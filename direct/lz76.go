package direct

import (
	"bytes"

	"github.com/hadi41/hadi-LZ-package/internal/numint"
)

// LZ76 computes the phrase count of s with a plain sliding-window scan:
// no dictionary tree, just repeated substring search over the prefix
// already consumed. Quadratic in |s|; intended for short strings (spec
// §4.4), not as a replacement for lz76.Count.
func LZ76(s []byte) int {
	if len(s) == 0 {
		return 0
	}
	var parsed, word []byte
	count := 0
	for _, c := range s {
		word = append(word, c)
		l := len(word)
		// haystack = parsed + word[:len(word)-1], i.e. P·W before c was appended.
		haystack := make([]byte, 0, len(parsed)+l-1)
		haystack = append(haystack, parsed...)
		haystack = append(haystack, word[:l-1]...)

		included := false
		for i := 0; i < len(parsed); i++ {
			if bytes.Equal(haystack[i:i+l], word) {
				included = true
				break
			}
		}
		if !included {
			count++
			parsed = append(parsed, word...)
			word = word[:0]
		}
	}
	if len(word) > 0 {
		count++
	}
	return count
}

// LZ76Scaled reports LZ76(s) * log2(|s|) for |s| > 1, matching the
// lz76.Scaled convention (spec §6).
func LZ76Scaled(s []byte) float64 {
	return numint.Log2Scaled(LZ76(s), len(s))
}
