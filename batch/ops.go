package batch

import (
	"errors"
	"fmt"

	"github.com/hadi41/hadi-LZ-package/direct"
	"github.com/hadi41/hadi-LZ-package/entropy"
	"github.com/hadi41/hadi-LZ-package/internal/numint"
	"github.com/hadi41/hadi-LZ-package/lz76"
)

// ErrBlockSizeExceedsInput is the per-item precondition violation for
// BlockEntropy (spec §4.6's "input violating a precondition" / §7's
// BatchItemError): a fixed block size that is too large for one
// particular item in the batch, while others may still be valid. d <= 0
// is rejected once for the whole call by the caller (spec §7's
// InvalidArgument row), since it can never be satisfied by any item.
var ErrBlockSizeExceedsInput = errors.New("batch: block size exceeds item length")

// LZ76 batch-computes the scaled LZ76 complexity of each string over the
// suffix-tree path, reusing one lz76.Parser per worker.
func LZ76(strings [][]byte, opts Options) *Result[float64] {
	return Run(len(strings), opts,
		func() any { return lz76.New() },
		func(state any, idx int) (float64, error) {
			p := state.(*lz76.Parser)
			s := strings[idx]
			p.Reset()
			for _, c := range s {
				p.AddSymbol(c)
			}
			return numint.Log2Scaled(p.PhraseCount(), len(s)), nil
		})
}

// LZ76Suffix batch-computes the raw suffix-tree phrase count per string
// (lz76_suffix_batch, spec §4.3/§4.6).
func LZ76Suffix(strings [][]byte, opts Options) *Result[int] {
	return Run(len(strings), opts,
		func() any { return lz76.New() },
		func(state any, idx int) (int, error) {
			p := state.(*lz76.Parser)
			p.Reset()
			for _, c := range strings[idx] {
				p.AddSymbol(c)
			}
			return p.PhraseCount(), nil
		})
}

// LZ78 batch-computes the scaled LZ78 complexity of each string via the
// direct trie parser.
func LZ78(strings [][]byte, opts Options) *Result[float64] {
	return Run(len(strings), opts,
		func() any { return struct{}{} },
		func(_ any, idx int) (float64, error) {
			return direct.LZ78Scaled(strings[idx]), nil
		})
}

// SymmetricLZ76 batch-computes the symmetric LZ76 variant per string.
func SymmetricLZ76(strings [][]byte, opts Options) *Result[float64] {
	return Run(len(strings), opts,
		func() any { return struct{}{} },
		func(_ any, idx int) (float64, error) {
			return direct.Symmetric(direct.LZ76, strings[idx]), nil
		})
}

// SymmetricLZ78 batch-computes the symmetric LZ78 variant per string.
func SymmetricLZ78(strings [][]byte, opts Options) *Result[float64] {
	return Run(len(strings), opts,
		func() any { return struct{}{} },
		func(_ any, idx int) (float64, error) {
			return direct.Symmetric(direct.LZ78, strings[idx]), nil
		})
}

// BlockEntropy batch-computes H_d(s) for each string at a fixed block
// size d. A single d may fit some items and not others (their lengths
// vary independently), so unlike d <= 0 this precondition is checked per
// item: an item shorter than d fails with ErrBlockSizeExceedsInput, its
// slot keeps the value 0 and its index is recorded in FailedIndices,
// instead of aborting the rest of the batch.
func BlockEntropy(strings [][]byte, d int, opts Options) *Result[float64] {
	return Run(len(strings), opts,
		func() any { return struct{}{} },
		func(_ any, idx int) (float64, error) {
			s := strings[idx]
			if d > len(s) {
				return 0.0, fmt.Errorf("%w: d=%d, len=%d", ErrBlockSizeExceedsInput, d, len(s))
			}
			return entropy.BlockEntropy(s, d), nil
		})
}

// ConditionalLZ76 batch-computes conditional_lz76(x,y) for each pair.
func ConditionalLZ76(pairs [][2][]byte, opts Options) *Result[float64] {
	return runConditional(pairs, direct.LZ76, opts)
}

// ConditionalLZ78 batch-computes conditional_lz78(x,y) for each pair.
func ConditionalLZ78(pairs [][2][]byte, opts Options) *Result[float64] {
	return runConditional(pairs, direct.LZ78, opts)
}

func runConditional(pairs [][2][]byte, complexity direct.ComplexityFunc, opts Options) *Result[float64] {
	return Run(len(pairs), opts,
		func() any { return struct{}{} },
		func(_ any, idx int) (float64, error) {
			pair := pairs[idx]
			return direct.Conditional(complexity, pair[0], pair[1]), nil
		})
}
