package batch

import (
	"testing"

	"github.com/hadi41/hadi-LZ-package/direct"
	"github.com/hadi41/hadi-LZ-package/entropy"
)

func TestLZ76SuffixBatch(t *testing.T) {
	inputs := [][]byte{[]byte("0101010101"), []byte(""), []byte("banana")}
	res := LZ76Suffix(inputs, Options{})
	if res.Values[0] != 5 {
		t.Errorf("LZ76Suffix(%q) = %d, want 5", inputs[0], res.Values[0])
	}
	if res.Values[1] != 0 {
		t.Errorf("LZ76Suffix(\"\") = %d, want 0", res.Values[1])
	}
}

func TestLZ78BatchMatchesDirect(t *testing.T) {
	inputs := [][]byte{[]byte("0100101011"), []byte("aaaa"), []byte("")}
	res := LZ78(inputs, Options{Threads: 2})
	for i, in := range inputs {
		want := direct.LZ78Scaled(in)
		if res.Values[i] != want {
			t.Errorf("LZ78 batch[%d] = %v, want %v", i, res.Values[i], want)
		}
	}
}

func TestBlockEntropyBatch(t *testing.T) {
	inputs := [][]byte{[]byte("aaaaa"), []byte("01")}
	res := BlockEntropy(inputs, 2, Options{})
	if res.Values[0] != entropy.BlockEntropy([]byte("aaaaa"), 2) {
		t.Errorf("entropy batch[0] = %v, want %v", res.Values[0], entropy.BlockEntropy([]byte("aaaaa"), 2))
	}
	if res.Errors != 0 || res.FailedIndices.Size() != 0 {
		t.Errorf("expected no failures for items at least as long as d, got Errors=%d", res.Errors)
	}
}

// TestBlockEntropyBatchPerItemPrecondition covers spec §4.6's per-item
// precondition failure: d fits some items and not others, and the
// driver keeps going on the rest (spec §7's BatchItemError).
func TestBlockEntropyBatchPerItemPrecondition(t *testing.T) {
	inputs := [][]byte{[]byte("a"), []byte("aaaaa"), []byte("bb")}
	res := BlockEntropy(inputs, 3, Options{Threads: 2})
	if res.Errors != 2 {
		t.Fatalf("Errors = %d, want 2 (items 0 and 2 are shorter than d=3)", res.Errors)
	}
	if !res.FailedIndices.Contains(0) || !res.FailedIndices.Contains(2) {
		t.Errorf("FailedIndices = %v, want {0, 2}", res.FailedIndices.Values())
	}
	if res.FailedIndices.Contains(1) {
		t.Errorf("item 1 (len 5 >= d=3) should not have failed")
	}
	want := entropy.BlockEntropy([]byte("aaaaa"), 3)
	if res.Values[1] != want {
		t.Errorf("surviving item 1 = %v, want %v", res.Values[1], want)
	}
	if res.Values[0] != 0.0 || res.Values[2] != 0.0 {
		t.Errorf("failed items should keep their zero value, got Values[0]=%v Values[2]=%v", res.Values[0], res.Values[2])
	}
}

func TestConditionalLZ76Batch(t *testing.T) {
	pairs := [][2][]byte{{[]byte("00000"), []byte("11111")}}
	res := ConditionalLZ76(pairs, Options{})
	if res.Values[0] != 1.0 {
		t.Errorf("ConditionalLZ76 batch[0] = %v, want 1.0", res.Values[0])
	}
}
