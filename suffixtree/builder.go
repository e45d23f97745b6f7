package suffixtree

// AddSymbol runs one phase of Ukkonen's algorithm, appending c to the
// tree's text and extending every pending suffix. Amortized O(1); see
// spec §4.2 for the per-call protocol this implements.
//
// Grounded on original_source/hadi_LZ_package/python_backend/online_suffix.py
// (OnlineSuffixTree.add_char), translated symbol-for-symbol: active_edge is
// tracked here as the edge's keying symbol rather than a text index, per
// spec §3's "active_edge_symbol".
func (t *Tree) AddSymbol(c byte) {
	t.text = append(t.text, c)
	t.globalEnd++
	t.remainder++

	var lastNewInternal NodeID = noNode

	for t.remainder > 0 {
		if t.activeLength == 0 {
			t.activeEdgeSym = c
		}
		e, ok := t.child(t.activeNode, t.activeEdgeSym)
		if !ok {
			leaf := t.newNode()
			t.addEdge(t.activeNode, t.activeEdgeSym, edge{start: t.globalEnd, end: OpenEnd, dest: leaf})
			if lastNewInternal != noNode {
				t.nodes[lastNewInternal].suffixLink = t.activeNode
				lastNewInternal = noNode
			}
		} else {
			length := t.edgeLength(e)
			if t.activeLength >= length {
				t.activeNode = e.dest
				t.activeLength -= length
				t.activeEdgeSym = t.text[t.globalEnd-t.activeLength]
				continue
			}
			if t.text[e.start+t.activeLength] == c {
				// Rule 3: the suffix is already present; stop the phase.
				t.activeLength++
				if lastNewInternal != noNode {
					t.nodes[lastNewInternal].suffixLink = t.activeNode
				}
				break
			}
			u := t.splitEdge(t.activeNode, t.activeEdgeSym, t.activeLength)
			leaf := t.newNode()
			t.addEdge(u, c, edge{start: t.globalEnd, end: OpenEnd, dest: leaf})
			if lastNewInternal != noNode {
				t.nodes[lastNewInternal].suffixLink = u
			}
			lastNewInternal = u
		}

		t.remainder--
		if t.activeNode == Root && t.activeLength > 0 {
			t.activeLength--
			t.activeEdgeSym = t.text[t.globalEnd-t.remainder+1]
		} else if t.activeNode != Root {
			if sl := t.nodes[t.activeNode].suffixLink; sl != noNode {
				t.activeNode = sl
			} else {
				t.activeNode = Root
			}
		}
	}
	tracer().Debugf("add_symbol(%q): global_end=%d remainder=%d active=(%d,%q,%d)",
		c, t.globalEnd, t.remainder, t.activeNode, t.activeEdgeSym, t.activeLength)
}
