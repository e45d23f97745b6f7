// Package direct implements the non-suffix-tree LZ76/LZ78 parsers plus the
// symmetric, conditional, and mutual-information variants built on top of
// them.
//
// LZ76 here is a plain left-to-right sliding-window scan (no dictionary
// tree); LZ78 maintains its own byte-keyed trie. Both are intended for the
// short strings where suffixtree construction overhead dominates, and for
// LZ78, which has no suffix-tree formulation in this module at all.
//
// Grounded on original_source/hadi_LZ_package/python_backend/lz_inefficient.py
// (LZ76, LZ78, symmetric_LZ78, mutual_LZ78, conditional_LZ76, conditional_LZ78).
package direct

import (
	"github.com/npillmayer/schuko/tracing"

	"github.com/hadi41/hadi-LZ-package/internal/diag"
)

func tracer() tracing.Trace {
	return diag.Tracer("lzcomplex.direct")
}
