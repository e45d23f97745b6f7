package direct

import (
	"testing"

	"github.com/hadi41/hadi-LZ-package/lz76"
)

func TestLZ76EmptyAndSingle(t *testing.T) {
	if got := LZ76(nil); got != 0 {
		t.Errorf("LZ76(nil) = %d, want 0", got)
	}
	if got := LZ76([]byte("a")); got != 1 {
		t.Errorf("LZ76(\"a\") = %d, want 1", got)
	}
}

func TestLZ76ScenarioS1(t *testing.T) {
	if got := LZ76([]byte("0101010101")); got != 5 {
		t.Errorf("LZ76(\"0101010101\") = %d, want 5", got)
	}
}

// TestLZ76AgreesWithSuffixTreePath covers §8 property 6 (cross-path
// consistency): the direct and suffix-tree LZ76 parsers must agree on
// phrase count for every input.
func TestLZ76AgreesWithSuffixTreePath(t *testing.T) {
	inputs := []string{
		"", "a", "aaaa", "0101010101", "abcabcabcabc", "mississippi", "00000", "11111", "0000011111",
	}
	for _, s := range inputs {
		want := lz76.Count([]byte(s))
		if got := LZ76([]byte(s)); got != want {
			t.Errorf("LZ76(%q) = %d, want %d (lz76.Count)", s, got, want)
		}
	}
}
