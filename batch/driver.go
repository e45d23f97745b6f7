package batch

import (
	"runtime"
	"sync"

	"github.com/Zubayear/ryushin/queue"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

// Options configures a batch run. Threads <= 0 means runtime.NumCPU()
// (spec §4.6: "default: logical core count").
type Options struct {
	Threads int
}

func (o Options) threadCount() int {
	if o.Threads > 0 {
		return o.Threads
	}
	return runtime.NumCPU()
}

// Result is the outcome of a Run call. Values holds one entry per input
// (the zero value at any index in FailedIndices). FailedIndices, backed by
// emirpasic/gods/sets/treeset (mirroring lr/tables.go's
// treeset.NewWith(stateComparator)), gives callers a stable sorted view of
// which inputs hit a per-item error, without them having to sort it.
type Result[T any] struct {
	Values        []T
	Errors        int
	FailedIndices *treeset.Set
}

// Run partitions [0,n) across opts.Threads worker goroutines. newState is
// called once per worker to build its private, reusable op state (a
// lz76.Parser for the LZ76 ops; an empty struct for ops that keep no
// state between items); fn computes the result
// for one index using that state. A non-nil error from fn marks that
// index failed (spec §4.6's per-item error handling: failing items do not
// abort the run) and leaves Values[idx] at its zero value.
func Run[T any](n int, opts Options, newState func() any, fn func(state any, index int) (T, error)) *Result[T] {
	res := &Result[T]{
		Values:        make([]T, n),
		FailedIndices: treeset.NewWith(utils.IntComparator),
	}
	if n == 0 {
		return res
	}

	tasks := queue.NewQueue[int]()
	for i := 0; i < n; i++ {
		tasks.Enqueue(i)
	}

	threads := opts.threadCount()
	if threads > n {
		threads = n
	}
	if threads < 1 {
		threads = 1
	}

	var mu sync.Mutex
	var wg sync.WaitGroup
	for w := 0; w < threads; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			state := newState()
			for {
				idx, err := tasks.Dequeue()
				if err != nil {
					return
				}
				v, ferr := fn(state, idx)
				if ferr != nil {
					tracer().Errorf("batch item %d failed: %v", idx, ferr)
					mu.Lock()
					res.FailedIndices.Add(idx)
					res.Errors++
					mu.Unlock()
					continue
				}
				res.Values[idx] = v
			}
		}()
	}
	wg.Wait()
	tracer().Infof("batch run: %d items, %d workers, %d errors", n, threads, res.Errors)
	return res
}
