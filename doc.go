/*
Package lzcomplex computes Lempel–Ziv complexity measures over batches of
byte-symbol strings.

It provides four closely related quantities: LZ76 phrase counts (via an
online Ukkonen suffix tree, package suffixtree, driven by an incremental
parser, package lz76), LZ78 phrase counts and a direct non-suffix-tree LZ76
parser (package direct), block entropy (package entropy), a parallel batch
driver over many input strings (package batch), and exhaustive enumeration
of LZ76 complexity over the full space of binary strings of a given length
(package exhaustive).

■ suffixtree: online Ukkonen suffix tree, the substring oracle for lz76.

■ lz76: incremental LZ76 parser maintaining a match point inside a suffixtree.Tree.

■ direct: sliding-window LZ76 and trie-based LZ78, plus symmetric/conditional/mutual variants.

■ entropy: window-histogram block entropy.

■ batch: parallel fan-out over a vector of inputs.

■ exhaustive: enumeration of LZ76 counts and their distribution over all binary strings of length L.

The functions declared directly in this package are a thin facade mirroring
the engine's external, language-agnostic interface; see the subpackages for
the actual implementations.
*/
package lzcomplex
