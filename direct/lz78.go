package direct

import "github.com/hadi41/hadi-LZ-package/internal/numint"

// trieNode mirrors tncardoso-ptstemmer's suffix_tree.go node{children
// map[rune]*node} shape and Zubayear-ryushin/trie's Node{children
// map[rune]*Node; isEnd bool}, narrowed to byte keys and with the mutex
// dropped: each LZ78 call below builds its own trie, used by a single
// goroutine, per spec §5.
type trieNode struct {
	children map[byte]*trieNode
}

func newTrieNode() *trieNode {
	return &trieNode{children: make(map[byte]*trieNode)}
}

// Every non-root trieNode is created at the exact moment its path is
// emitted as a phrase, so "does this path exist in the trie" and "was
// this exact string previously emitted as a phrase" are the same
// question — the textbook membership rule resolving Open Question 2,
// rather than the distillation's prefix-of-any-dictionary-entry check.
type trie struct {
	root *trieNode
}

func newTrie() *trie {
	return &trie{root: newTrieNode()}
}

// LZ78 computes the LZ78 phrase count of s via a byte-keyed trie of
// previously emitted phrases. Phrase count is the number of trie
// insertions, plus one if a partial match remains unterminated at the
// end of input.
func LZ78(s []byte) int {
	if len(s) == 0 {
		return 0
	}
	t := newTrie()
	node := t.root
	inWord := false
	count := 0
	for _, c := range s {
		child, ok := node.children[c]
		if !ok {
			node.children[c] = newTrieNode()
			count++
			node = t.root
			inWord = false
			continue
		}
		node = child
		inWord = true
	}
	if inWord {
		count++
	}
	return count
}

// LZ78Scaled reports LZ78(s) * log2(|s|) for |s| > 1 (spec §6).
func LZ78Scaled(s []byte) float64 {
	return numint.Log2Scaled(LZ78(s), len(s))
}
