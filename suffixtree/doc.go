// Package suffixtree implements an online suffix tree over a byte alphabet,
// built incrementally via Ukkonen's algorithm (Tree.AddSymbol), together
// with the arena that owns its nodes and edges.
//
// The tree is always an implicit suffix tree of the text accumulated so
// far: every suffix of the text is spelled out by some root-to-point path.
// Nodes and edges are addressed by stable integer identifiers (NodeID) in
// a dense arena rather than individually owned heap objects, which keeps
// suffix links — non-tree edges, possibly forming cycles via the root — as
// plain identifiers instead of ownership pointers.
//
// Child lookup is the hot path of the whole engine (amortized O(1) per
// AddSymbol call). For the binary alphabet that dominates the intended
// workload, each node keeps up to two children inline; a node that ever
// sees a third distinct outgoing symbol spills into an overflow map.
package suffixtree

import (
	"github.com/npillmayer/schuko/tracing"

	"github.com/hadi41/hadi-LZ-package/internal/diag"
)

// tracer traces with key "lzcomplex.suffixtree".
func tracer() tracing.Trace {
	return diag.Tracer("lzcomplex.suffixtree")
}
