// api.go is the public facade: thin wrappers over the subpackages,
// translating their errors into the Kind-tagged Error type (errors.go).
package lzcomplex

import (
	"errors"
	"fmt"

	"github.com/emirpasic/gods/sets/treeset"

	"github.com/hadi41/hadi-LZ-package/batch"
	"github.com/hadi41/hadi-LZ-package/direct"
	"github.com/hadi41/hadi-LZ-package/entropy"
	"github.com/hadi41/hadi-LZ-package/exhaustive"
	"github.com/hadi41/hadi-LZ-package/lz76"
)

// LZ76Scaled returns the suffix-tree LZ76 phrase count of s, scaled by
// log2(|s|) for |s| > 1 (spec §4.3, §6).
func LZ76Scaled(s []byte) float64 {
	return lz76.Scaled(s)
}

// LZ78Scaled returns the LZ78 phrase count of s, scaled by log2(|s|) for
// |s| > 1 (spec §4.4, §6).
func LZ78Scaled(s []byte) float64 {
	return direct.LZ78Scaled(s)
}

// SymmetricVariant returns (op(s) + op(reverse(s))) / 2 (spec §4.4, §6).
func SymmetricVariant(op Op, s []byte) float64 {
	return direct.Symmetric(op.complexityFunc(), s)
}

// BlockEntropy returns H_d(s), the windowed Shannon entropy of s at block
// size d (spec §4.5, §6).
func BlockEntropy(s []byte, d int) float64 {
	return entropy.BlockEntropy(s, d)
}

// Conditional returns op(x·y) - op(x), with Conditional(op, "", y) ==
// op(y) and Conditional(op, x, "") == 0 (spec §4.4, §6).
func Conditional(op Op, x, y []byte) float64 {
	return direct.Conditional(op.complexityFunc(), x, y)
}

// LZ76Batch computes the scaled LZ76 complexity of each string in
// strings, distributed across threads worker goroutines (threads <= 0
// means logical core count). Output index matches input index (spec §4.6,
// §6).
func LZ76Batch(strings [][]byte, threads int) ([]float64, error) {
	res := batch.LZ76(strings, batch.Options{Threads: threads})
	return res.Values, itemBatchError(res.Errors, res.FailedIndices)
}

// LZ76SuffixBatch computes the raw suffix-tree LZ76 phrase count of each
// string in strings (lz76_suffix_batch, spec §4.3, §4.6, §6).
func LZ76SuffixBatch(strings [][]byte) ([]int, error) {
	res := batch.LZ76Suffix(strings, batch.Options{})
	return res.Values, itemBatchError(res.Errors, res.FailedIndices)
}

// BlockEntropyBatch computes H_d(s) for each string in strings at a fixed
// block size d. An item shorter than d is a per-item precondition
// violation (batch.ErrBlockSizeExceedsInput): its slot is left at 0 and
// the failure is aggregated rather than aborting the other items (spec
// §4.6, §7's BatchItemError).
func BlockEntropyBatch(strings [][]byte, d, threads int) ([]float64, error) {
	if d <= 0 {
		return nil, NewError(InvalidArgument, fmt.Sprintf("block size must be positive, got %d", d))
	}
	res := batch.BlockEntropy(strings, d, batch.Options{Threads: threads})
	return res.Values, itemBatchError(res.Errors, res.FailedIndices)
}

// itemBatchError reports the lowest-indexed batch failure as a
// BatchItemError, noting the total failure count in its message.
// FailedIndices is sorted ascending (emirpasic/gods/sets/treeset with
// utils.IntComparator), so Values()[0] is the first offending index.
func itemBatchError(errCount int, failed *treeset.Set) error {
	if errCount == 0 {
		return nil
	}
	idx := failed.Values()[0].(int)
	return NewItemError(idx, fmt.Sprintf("%d batch item(s) failed", errCount))
}

// LZ76EnumerateCounts returns v[0..2^L-1], v[i] the LZ76 phrase count of
// the length-L binary string whose integer encoding is i (spec §4.7, §6).
func LZ76EnumerateCounts(L int) ([]int, error) {
	v, err := exhaustive.EnumerateCounts(L)
	if err != nil {
		return nil, wrapExhaustiveErr(err)
	}
	return v, nil
}

// LZ76EnumerateDistribution returns the LZ76 phrase-count histogram over
// all length-L binary strings, tracked up to maxTrack and computed across
// threads worker goroutines (spec §4.7, §6).
func LZ76EnumerateDistribution(L, maxTrack, threads int) ([]int64, error) {
	if maxTrack <= 0 {
		return nil, NewError(InvalidArgument, fmt.Sprintf("max_track must be positive, got %d", maxTrack))
	}
	h, err := exhaustive.EnumerateDistribution(L, maxTrack, threads)
	if err != nil {
		return nil, wrapExhaustiveErr(err)
	}
	return h, nil
}

func wrapExhaustiveErr(err error) error {
	if errors.Is(err, exhaustive.ErrResourceLimit) {
		return NewError(ResourceLimit, err.Error())
	}
	return NewError(InvalidArgument, err.Error())
}
