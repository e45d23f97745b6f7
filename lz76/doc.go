// Package lz76 implements the incremental LZ76 parser: it maintains the
// current, in-progress phrase and a "match point" inside a suffixtree.Tree
// built from every symbol fed so far except the latest one.
//
// The tree is kept one symbol behind the parser (see Parser.AddSymbol):
// when a character arrives, the *previous* character is flushed into the
// tree first, and only then is the new character matched against it. This
// lets each call run in amortized O(1) instead of rescanning the text.
//
// Grounded on original_source/hadi_LZ_package/python_backend/lz_suffix.py
// (LZSuffixTree.add_character / is_current_word_in_tree).
package lz76

import (
	"github.com/npillmayer/schuko/tracing"

	"github.com/hadi41/hadi-LZ-package/internal/diag"
)

func tracer() tracing.Trace {
	return diag.Tracer("lzcomplex.lz76")
}
