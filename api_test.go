package lzcomplex

import (
	"errors"
	"testing"
)

func TestLZ76ScaledScenarioS1(t *testing.T) {
	// log2(10)*5, per spec.md §8 scenario S1.
	got := LZ76Scaled([]byte("0101010101"))
	want := 5.0 * 3.321928094887362 // log2(10)
	if diff := got - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("LZ76Scaled(\"0101010101\") = %v, want ~%v", got, want)
	}
}

func TestSymmetricVariantIdempotence(t *testing.T) {
	inputs := []string{"", "a", "banana", "0100101011"}
	for _, op := range []Op{OpLZ76, OpLZ78} {
		for _, s := range inputs {
			got := SymmetricVariant(op, []byte(s))
			wantInputReversed := make([]byte, len(s))
			for i := 0; i < len(s); i++ {
				wantInputReversed[len(s)-1-i] = s[i]
			}
			want := SymmetricVariant(op, wantInputReversed)
			if got != want {
				t.Errorf("op=%v: SymmetricVariant(%q)=%v, SymmetricVariant(reverse)=%v", op, s, got, want)
			}
		}
	}
}

// TestConditionalScenarioS6 covers spec.md §8 scenario S6. See
// direct.TestConditionalScenarioS6 and DESIGN.md for why the value is 1.0,
// not the table's literal 3 - 1 = 2.
func TestConditionalScenarioS6(t *testing.T) {
	got := Conditional(OpLZ76, []byte("00000"), []byte("11111"))
	if got != 1.0 {
		t.Errorf("Conditional(OpLZ76, \"00000\", \"11111\") = %v, want 1.0", got)
	}
}

func TestBlockEntropyScenarios(t *testing.T) {
	if got := BlockEntropy([]byte("aaaaa"), 2); got != 0.0 {
		t.Errorf("BlockEntropy(\"aaaaa\", 2) = %v, want 0.0", got)
	}
	if got := BlockEntropy([]byte("01"), 1); got != 1.0 {
		t.Errorf("BlockEntropy(\"01\", 1) = %v, want 1.0", got)
	}
}

func TestLZ76BatchMatchesScaled(t *testing.T) {
	inputs := [][]byte{[]byte("0101010101"), []byte(""), []byte("banana")}
	got, err := LZ76Batch(inputs, 2)
	if err != nil {
		t.Fatalf("LZ76Batch: %v", err)
	}
	for i, in := range inputs {
		if want := LZ76Scaled(in); got[i] != want {
			t.Errorf("LZ76Batch[%d] = %v, want %v", i, got[i], want)
		}
	}
}

func TestLZ76SuffixBatch(t *testing.T) {
	got, err := LZ76SuffixBatch([][]byte{[]byte("0101010101")})
	if err != nil {
		t.Fatalf("LZ76SuffixBatch: %v", err)
	}
	if got[0] != 5 {
		t.Errorf("LZ76SuffixBatch[0] = %d, want 5", got[0])
	}
}

// TestBlockEntropyBatchItemError covers spec §4.6/§7's BatchItemError: a
// block size that fits some items and not others leaves the oversized
// item's slot at 0 and reports its index, without losing the other
// item's result.
func TestBlockEntropyBatchItemError(t *testing.T) {
	inputs := [][]byte{[]byte("a"), []byte("aaaaa")}
	got, err := BlockEntropyBatch(inputs, 3, 2)
	var lzErr *Error
	if !errors.As(err, &lzErr) {
		t.Fatalf("error is not *lzcomplex.Error: %v", err)
	}
	if lzErr.Kind != BatchItemError {
		t.Errorf("Kind = %v, want BatchItemError", lzErr.Kind)
	}
	if lzErr.Index != 0 {
		t.Errorf("Index = %d, want 0 (the only oversized item)", lzErr.Index)
	}
	if want := BlockEntropy(inputs[1], 3); got[1] != want {
		t.Errorf("surviving item got[1] = %v, want %v", got[1], want)
	}
}

func TestEnumerateCountsErrorKind(t *testing.T) {
	_, err := LZ76EnumerateCounts(0)
	if err == nil {
		t.Fatal("expected error for L=0")
	}
	var lzErr *Error
	if !errors.As(err, &lzErr) {
		t.Fatalf("error is not *lzcomplex.Error: %v", err)
	}
	if lzErr.Kind != InvalidArgument {
		t.Errorf("Kind = %v, want InvalidArgument", lzErr.Kind)
	}
}

func TestEnumerateCountsResourceLimitKind(t *testing.T) {
	_, err := LZ76EnumerateCounts(29)
	var lzErr *Error
	if !errors.As(err, &lzErr) {
		t.Fatalf("error is not *lzcomplex.Error: %v", err)
	}
	if lzErr.Kind != ResourceLimit {
		t.Errorf("Kind = %v, want ResourceLimit", lzErr.Kind)
	}
}

func TestScenarioS7(t *testing.T) {
	hist, err := LZ76EnumerateDistribution(3, 16, 2)
	if err != nil {
		t.Fatalf("LZ76EnumerateDistribution: %v", err)
	}
	var total int64
	for _, c := range hist {
		total += c
	}
	if total != 8 {
		t.Errorf("sum of histogram = %d, want 8", total)
	}
}
