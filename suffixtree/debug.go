package suffixtree

import (
	"fmt"
	"strings"

	"github.com/Zubayear/ryushin/stack"
)

// Dump renders the tree's edges as an indented, iterative preorder walk,
// for debugging and tests only — never called from
// AddSymbol's hot path. Uses a github.com/Zubayear/ryushin/stack.Stack for
// the explicit DFS frontier instead of recursion, since the arena has no
// bound on nesting depth for pathological inputs.
func (t *Tree) Dump() string {
	var b strings.Builder
	type frame struct {
		node  NodeID
		depth int
	}
	frames := stack.NewStack[frame]()
	frames.Push(frame{node: Root, depth: 0})
	for !frames.IsEmpty() {
		f, err := frames.Pop()
		if err != nil {
			break
		}
		n := &t.nodes[f.node]
		for i := 0; i < n.numInline; i++ {
			t.dumpEdge(&b, f.depth, n.inlineSyms[i], n.inlineEdges[i])
			frames.Push(frame{node: n.inlineEdges[i].dest, depth: f.depth + 1})
		}
		for sym, e := range n.overflow {
			t.dumpEdge(&b, f.depth, sym, e)
			frames.Push(frame{node: e.dest, depth: f.depth + 1})
		}
	}
	return b.String()
}

func (t *Tree) dumpEdge(b *strings.Builder, depth int, sym byte, e edge) {
	length := t.edgeLength(e)
	start := e.start
	fmt.Fprintf(b, "%s%q -> node %d [%q]\n",
		strings.Repeat("  ", depth), sym, e.dest, t.text[start:start+length])
}
