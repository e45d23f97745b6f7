package lz76

import (
	"github.com/emirpasic/gods/lists/arraylist"

	"github.com/hadi41/hadi-LZ-package/internal/numint"
	"github.com/hadi41/hadi-LZ-package/suffixtree"
)

// Parser computes the LZ76 phrase count of a byte sequence fed one symbol
// at a time, via an incremental match point inside a suffixtree.Tree. Not
// safe for concurrent use; see spec §5.
type Parser struct {
	tree *suffixtree.Tree

	lastChar    byte
	hasLastChar bool

	matchNode    suffixtree.NodeID
	matchEdgeSym byte
	matchLength  int // 0 means "at matchNode", >0 means "matchLength into the edge keyed by matchEdgeSym"

	dictionarySize int
	currentWord    []byte
	totalSymbols   int

	dict *arraylist.List // completed phrases, for Dictionary()
}

// New returns a Parser ready to receive symbols via AddSymbol.
func New() *Parser {
	p := &Parser{tree: suffixtree.New()}
	p.matchNode = suffixtree.Root
	p.dict = arraylist.New()
	return p
}

// Reset returns the parser to its initial empty state, reusing the
// underlying tree's arena. Used by batch workers to recycle one Parser
// across many input strings (spec §4.3, §4.6).
func (p *Parser) Reset() {
	p.tree.Reset()
	p.hasLastChar = false
	p.lastChar = 0
	p.matchNode = suffixtree.Root
	p.matchEdgeSym = 0
	p.matchLength = 0
	p.dictionarySize = 0
	p.currentWord = p.currentWord[:0]
	p.totalSymbols = 0
	p.dict = arraylist.New()
}

// AddSymbol feeds one symbol to the parser. It returns true iff this
// symbol completed a phrase (i.e. the current word could not be extended
// and a new dictionary entry was recorded).
func (p *Parser) AddSymbol(c byte) bool {
	prev, hadPrev := p.lastChar, p.hasLastChar
	p.lastChar, p.hasLastChar = c, true
	p.totalSymbols++

	if hadPrev {
		p.tree.AddSymbol(prev)
	}

	p.currentWord = append(p.currentWord, c)

	if p.extendMatch(c) {
		return false
	}

	p.dictionarySize++
	p.dict.Add(string(p.currentWord))
	tracer().Debugf("phrase complete: %q (dictionary_size=%d)", p.currentWord, p.dictionarySize)
	p.currentWord = p.currentWord[:0]
	p.matchNode = suffixtree.Root
	p.matchEdgeSym = 0
	p.matchLength = 0
	return true
}

// extendMatch attempts to extend the LZ match point by c, mirroring
// LZSuffixTree.is_current_word_in_tree. Always re-fetches the current edge
// from the tree rather than caching it, since the tree may have split the
// very edge the match point sits on during the AddSymbol(prev) call above.
func (p *Parser) extendMatch(c byte) bool {
	if p.matchLength > 0 {
		e, ok := p.tree.Child(p.matchNode, p.matchEdgeSym)
		if !ok {
			// The edge the match point was tracking is gone. Given the
			// one-symbol lag this should not happen; fail safe by
			// re-tracing the whole current word (which already ends in c)
			// from the root (spec §4.3).
			tracer().Errorf("match edge %q vanished from node %d; re-tracing from root", p.matchEdgeSym, p.matchNode)
			p.matchNode, p.matchEdgeSym, p.matchLength = suffixtree.Root, 0, 0
			for _, sym := range p.currentWord {
				if !p.extendMatch(sym) {
					return false
				}
			}
			return true
		} else {
			length := p.tree.EdgeLength(e)
			if p.matchLength < length {
				if p.tree.SymbolAt(e.Start+p.matchLength) == c {
					p.matchLength++
					return true
				}
				return false
			}
			p.matchNode = e.Dest
			p.matchEdgeSym = 0
			p.matchLength = 0
		}
	}
	if _, ok := p.tree.Child(p.matchNode, c); ok {
		p.matchEdgeSym = c
		p.matchLength = 1
		return true
	}
	return false
}

// PhraseCount returns dictionary_size + 1 if a phrase is still in
// progress, else dictionary_size (spec §4.3).
func (p *Parser) PhraseCount() int {
	if len(p.currentWord) > 0 {
		return p.dictionarySize + 1
	}
	return p.dictionarySize
}

// Dictionary returns the completed phrases, plus the in-progress one (if
// any) as its last element. Supplements the distillation per
// original_source's return_dictionary.
func (p *Parser) Dictionary() []string {
	values := p.dict.Values()
	out := make([]string, 0, len(values)+1)
	for _, v := range values {
		out = append(out, v.(string))
	}
	if len(p.currentWord) > 0 {
		out = append(out, string(p.currentWord))
	}
	return out
}

// Count runs a fresh Parser over s and returns its LZ76 phrase count.
func Count(s []byte) int {
	p := New()
	for _, c := range s {
		p.AddSymbol(c)
	}
	return p.PhraseCount()
}

// Scaled returns phrase_count(s) * log2(|s|) for |s| > 1, float64(phrase_count(s))
// for |s| <= 1, and 0.0 for the empty string (spec §6).
func Scaled(s []byte) float64 {
	return numint.Log2Scaled(Count(s), len(s))
}

// SuffixBatch returns the raw suffix-tree phrase count for each input
// string, reusing one Parser across the batch (lz76_suffix_batch, spec §6).
func SuffixBatch(strings [][]byte) []int {
	p := New()
	counts := make([]int, len(strings))
	for i, s := range strings {
		p.Reset()
		for _, c := range s {
			p.AddSymbol(c)
		}
		counts[i] = p.PhraseCount()
	}
	return counts
}
