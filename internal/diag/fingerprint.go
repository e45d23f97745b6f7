package diag

import "github.com/cnf/structhash"

// Fingerprint computes a stable hash of v, used to log a reproducibility
// checksum for exhaustive runs. Mirrors the teacher's
// use of structhash.Hash in lr/earley/earley.go to fingerprint Earley
// items.
func Fingerprint(v any) string {
	hash, err := structhash.Hash(v, 1)
	if err != nil {
		// structhash.Hash only errors on unhashable reflect kinds (channels,
		// funcs); none of our result types are those.
		panic(err)
	}
	return hash
}
