package batch

import (
	"testing"

	"github.com/hadi41/hadi-LZ-package/internal/numint"
	"github.com/hadi41/hadi-LZ-package/lz76"
)

// TestRunOrderMatchesIndex covers §8 property 7: batch output index
// equals input index, regardless of how work was partitioned across
// workers.
func TestRunOrderMatchesIndex(t *testing.T) {
	inputs := [][]byte{[]byte("0101010101"), []byte(""), []byte("a"), []byte("banana"), []byte("mississippi"), []byte("abcabcabc")}
	res := LZ76(inputs, Options{Threads: 3})
	for i, in := range inputs {
		want := numint.Log2Scaled(lz76.Count(in), len(in))
		if res.Values[i] != want {
			t.Errorf("Values[%d] = %v, want %v (single Count of %q)", i, res.Values[i], want, in)
		}
	}
	if res.Errors != 0 || res.FailedIndices.Size() != 0 {
		t.Errorf("expected no failures, got Errors=%d FailedIndices.Size=%d", res.Errors, res.FailedIndices.Size())
	}
}

func TestRunEmptyInputs(t *testing.T) {
	res := LZ76(nil, Options{})
	if len(res.Values) != 0 {
		t.Errorf("Values = %v, want empty", res.Values)
	}
}

func TestRunSingleThreadMatchesMultiThread(t *testing.T) {
	inputs := make([][]byte, 0, 20)
	for i := 0; i < 20; i++ {
		inputs = append(inputs, []byte("abcabcabcabc"[:1+i%12]))
	}
	single := LZ76(inputs, Options{Threads: 1})
	multi := LZ76(inputs, Options{Threads: 8})
	for i := range inputs {
		if single.Values[i] != multi.Values[i] {
			t.Errorf("index %d: single-thread=%v, multi-thread=%v", i, single.Values[i], multi.Values[i])
		}
	}
}
