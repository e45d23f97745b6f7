// Package batch fans a slice of inputs out across a worker pool and
// collects one result per input, in input order.
//
// Grounded on gaissmai-bart's sync.WaitGroup + goroutine idiom
// (example_fast_concurrent_test.go), generalized from that example's fixed
// pair of goroutines to a configurable pool size. Work assignment goes
// through a shared github.com/Zubayear/ryushin/queue.Queue[int] of input
// indices; each worker owns private, reusable per-op state and writes
// results into disjoint slots of the output slice, so no locking is needed
// there.
package batch

import (
	"github.com/npillmayer/schuko/tracing"

	"github.com/hadi41/hadi-LZ-package/internal/diag"
)

func tracer() tracing.Trace {
	return diag.Tracer("lzcomplex.batch")
}
