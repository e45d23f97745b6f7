// Package entropy computes Shannon block entropy over sliding windows of a
// byte sequence.
//
// Grounded on original_source/hadi_LZ_package/python_backend/lz_inefficient.py
// (block_entropy). Window counts are kept in a
// github.com/Zubayear/ryushin/treemap.TreeMap so the Shannon sum always
// walks windows in the same lexicographic order, making the floating-point
// result reproducible across runs regardless of map iteration order.
package entropy

import (
	"github.com/npillmayer/schuko/tracing"

	"github.com/hadi41/hadi-LZ-package/internal/diag"
)

func tracer() tracing.Trace {
	return diag.Tracer("lzcomplex.entropy")
}
