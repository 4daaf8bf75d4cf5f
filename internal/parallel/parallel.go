// Package parallel partitions a seed_range search across worker
// goroutines, each running an independent search.SearchRange call over
// its own sub-interval. Coordination (global match cap, cancellation,
// aggregate progress) happens at this layer; the kernel itself stays
// single-threaded per spec.
package parallel

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/MJE43/stardew-seed-oracle/internal/search"
	"github.com/MJE43/stardew-seed-oracle/internal/version"
)

// Request is a seed_range search to run across workers workers.
type Request struct {
	Filter     *search.Node
	SeedLo     int32
	SeedHi     int32
	MaxResults int
	Version    version.Version
	Workers    int

	// OnMatch is invoked from a worker goroutine for every matching seed
	// found anywhere in the range. It must be safe for concurrent use.
	OnMatch func(seed int32)

	// OnProgress is invoked periodically with cumulative counters summed
	// across every worker. Returning false stops every worker at its next
	// match or progress callback.
	OnProgress func(checked, found uint64) bool
}

// Result aggregates every worker's outcome.
type Result struct {
	Checked      uint64
	Found        uint64
	LimitReached bool
}

// SearchRange splits [SeedLo, SeedHi] into up to Workers contiguous
// sub-intervals and runs one search.SearchRange per interval
// concurrently, stopping every worker as soon as the global MaxResults
// is reached.
func SearchRange(ctx context.Context, req Request) Result {
	workers := req.Workers
	if workers < 1 {
		workers = 1
	}
	total := int64(req.SeedHi) - int64(req.SeedLo) + 1
	if total < int64(workers) {
		workers = int(total)
	}
	if workers < 1 {
		workers = 1
	}
	span := total / int64(workers)
	remainder := total % int64(workers)

	var totalChecked, totalFound uint64
	var limitReached int32
	var cancelled int32

	g, gctx := errgroup.WithContext(ctx)

	lo := int64(req.SeedLo)
	for i := 0; i < workers; i++ {
		size := span
		if int64(i) < remainder {
			size++
		}
		if size <= 0 {
			continue
		}
		hi := lo + size - 1
		workerLo, workerHi := int32(lo), int32(hi)
		lo = hi + 1

		g.Go(func() error {
			var lastChecked uint64

			result := search.SearchRange(search.Request{
				Filter:     req.Filter,
				SeedLo:     workerLo,
				SeedHi:     workerHi,
				MaxResults: req.MaxResults,
				Version:    req.Version,
				OnMatch: func(seed int32) bool {
					if atomic.LoadInt32(&limitReached) != 0 || atomic.LoadInt32(&cancelled) != 0 {
						return false
					}
					newFound := atomic.AddUint64(&totalFound, 1)
					if req.OnMatch != nil {
						req.OnMatch(seed)
					}
					if req.MaxResults > 0 && int(newFound) >= req.MaxResults {
						atomic.StoreInt32(&limitReached, 1)
						return false
					}
					return gctx.Err() == nil
				},
				OnProgress: func(workerChecked, _ uint64) bool {
					atomic.AddUint64(&totalChecked, workerChecked-lastChecked)
					lastChecked = workerChecked
					if req.OnProgress != nil && !req.OnProgress(atomic.LoadUint64(&totalChecked), atomic.LoadUint64(&totalFound)) {
						atomic.StoreInt32(&cancelled, 1)
						return false
					}
					return gctx.Err() == nil && atomic.LoadInt32(&limitReached) == 0 && atomic.LoadInt32(&cancelled) == 0
				},
			})
			atomic.AddUint64(&totalChecked, result.Checked-lastChecked)
			return nil
		})
	}

	_ = g.Wait()

	return Result{
		Checked:      atomic.LoadUint64(&totalChecked),
		Found:        atomic.LoadUint64(&totalFound),
		LimitReached: atomic.LoadInt32(&limitReached) != 0,
	}
}
