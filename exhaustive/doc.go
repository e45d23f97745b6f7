// Package exhaustive enumerates every binary string of a given length by
// integer index and aggregates their LZ76 complexity, either as a
// per-index vector or as a phrase-count histogram.
//
// Grounded on spec.md §4.7 and on
// original_source/hadi_LZ_package/lz_exhaustive_wrapper.py for the
// run-summary logging behavior (supplemented here as ambient-stack
// logging, not a new feature).
package exhaustive

import (
	"github.com/npillmayer/schuko/tracing"

	"github.com/hadi41/hadi-LZ-package/internal/diag"
)

func tracer() tracing.Trace {
	return diag.Tracer("lzcomplex.exhaustive")
}
