package exhaustive

import (
	"errors"
	"fmt"
	"runtime"
	"sync"

	"github.com/hadi41/hadi-LZ-package/internal/diag"
	"github.com/hadi41/hadi-LZ-package/internal/numint"
	"github.com/hadi41/hadi-LZ-package/lz76"
)

// Sentinel errors distinguishing the two refusal reasons in checkL, so
// callers (notably the root facade) can classify a failure into the
// right error Kind without parsing message text.
var (
	ErrInvalidL      = errors.New("exhaustive: L must be positive")
	ErrResourceLimit = errors.New("exhaustive: L exceeds hard cap")
)

// Safety rails from spec §4.7.
const (
	maxVectorL       = 28
	maxDistributionL = 35
	warnThresholdL   = 22

	defaultMaxTrack = 64
)

// Options configures an Engine run. Threads <= 0 means runtime.NumCPU();
// MaxTrack <= 0 means defaultMaxTrack.
type Options struct {
	Threads  int
	MaxTrack int
}

func (o Options) threadCount() int {
	if o.Threads > 0 {
		return o.Threads
	}
	return runtime.NumCPU()
}

func (o Options) maxTrack() int {
	if o.MaxTrack > 0 {
		return o.MaxTrack
	}
	return defaultMaxTrack
}

// Engine enumerates binary strings of a fixed length and aggregates their
// LZ76 complexity.
type Engine struct {
	Options Options
}

// New returns an Engine configured with opts.
func New(opts Options) *Engine {
	return &Engine{Options: opts}
}

func checkL(L, hardCap int) error {
	if L <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidL, L)
	}
	if L > warnThresholdL {
		diag.Warn("exhaustive: L=%d enumerates %d strings, this may take a while", L, int64(1)<<uint(L))
	}
	if L > hardCap {
		return fmt.Errorf("%w: L=%d, cap=%d", ErrResourceLimit, L, hardCap)
	}
	return nil
}

func decodeInto(buf []byte, i, l int) {
	for b := 0; b < l; b++ {
		if (i>>(uint(l-1-b)))&1 == 1 {
			buf[b] = '1'
		} else {
			buf[b] = '0'
		}
	}
}

// partition splits [0,n) into Options.Threads contiguous chunks and runs
// work over each chunk in its own goroutine, waiting for all to finish.
func (e *Engine) partition(n int, work func(lo, hi int)) {
	threads := e.Options.threadCount()
	if threads > n {
		threads = n
	}
	if threads < 1 {
		threads = 1
	}
	chunk := (n + threads - 1) / threads

	var wg sync.WaitGroup
	for t := 0; t < threads; t++ {
		lo := t * chunk
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		if lo >= hi {
			continue
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			work(lo, hi)
		}(lo, hi)
	}
	wg.Wait()
}

// EnumerateCounts returns v[0..2^L-1], v[i] the LZ76 phrase count of the
// length-L binary string whose integer encoding is i (MSB-first). Refuses
// L <= 0 and L > 28 (memory; spec §4.7).
func (e *Engine) EnumerateCounts(L int) ([]int, error) {
	if err := checkL(L, maxVectorL); err != nil {
		return nil, err
	}
	n := 1 << uint(L)
	out := make([]int, n)
	e.partition(n, func(lo, hi int) {
		buf := make([]byte, L)
		p := lz76.New()
		for i := lo; i < hi; i++ {
			decodeInto(buf, i, L)
			p.Reset()
			for _, c := range buf {
				p.AddSymbol(c)
			}
			out[i] = p.PhraseCount()
		}
	})
	return out, nil
}

// EnumerateDistribution returns h[0..maxTrack-1], h[c] the number of
// length-L binary strings with phrase count c; h[maxTrack-1] is an
// overflow bin for counts >= maxTrack-1. Refuses L <= 0 and L > 35 (time;
// spec §4.7). Per-worker histograms are reduced by element-wise summation
// (commutative and associative, per spec §5(c)).
func (e *Engine) EnumerateDistribution(L int) ([]int64, error) {
	if err := checkL(L, maxDistributionL); err != nil {
		return nil, err
	}
	maxTrack := e.Options.maxTrack()
	n := 1 << uint(L)
	hist := make([]int64, maxTrack)

	var mu sync.Mutex
	e.partition(n, func(lo, hi int) {
		buf := make([]byte, L)
		p := lz76.New()
		local := make([]int64, maxTrack)
		for i := lo; i < hi; i++ {
			decodeInto(buf, i, L)
			p.Reset()
			for _, c := range buf {
				p.AddSymbol(c)
			}
			c := p.PhraseCount()
			if c >= maxTrack {
				c = maxTrack - 1
			}
			local[c]++
		}
		mu.Lock()
		numint.SumInto(hist, local)
		mu.Unlock()
	})

	if total := numint.Total(hist); total != int64(n) {
		tracer().Errorf("exhaustive distribution: histogram total %d != enumerated space %d", total, n)
		panic("exhaustive: contract violation: histogram does not partition the enumerated space")
	}

	tracer().Infof("exhaustive distribution: L=%d maxTrack=%d total=%d fingerprint=%s",
		L, maxTrack, n, diag.Fingerprint(hist))
	return hist, nil
}

// EnumerateCounts is the package-level convenience entry point, using
// default Options.
func EnumerateCounts(L int) ([]int, error) {
	return New(Options{}).EnumerateCounts(L)
}

// EnumerateDistribution is the package-level convenience entry point.
func EnumerateDistribution(L, maxTrack, threads int) ([]int64, error) {
	return New(Options{Threads: threads, MaxTrack: maxTrack}).EnumerateDistribution(L)
}
