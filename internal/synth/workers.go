package synth

import (
	"context"
	"sync"
)

// forEachTrace runs fn once per trace index on a pool of workers and waits
// for all of them, so returning doubles as the completion barrier between
// pipeline stages. Cancellation is cooperative: the context is checked once
// per trace, never mid-trace. Workers only ever write disjoint grid
// columns, so the only shared state here is the first-error slot.
func forEachTrace(ctx context.Context, nx, workers int, fn func(ix int) error) error {
	if workers <= 0 {
		workers = 1
	}
	if workers > nx {
		workers = nx
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		mu       sync.Mutex
		firstErr error
	)
	// record keeps the first failure and stops the feed so remaining
	// workers drain instead of starting new traces.
	record := func(err error) {
		mu.Lock()
		if firstErr == nil {
			firstErr = err
		}
		mu.Unlock()
		cancel()
	}

	indexes := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for ix := range indexes {
				if err := ctx.Err(); err != nil {
					return
				}
				if err := fn(ix); err != nil {
					record(err)
					return
				}
			}
		}()
	}

feed:
	for ix := 0; ix < nx; ix++ {
		select {
		case indexes <- ix:
		case <-ctx.Done():
			break feed
		}
	}
	close(indexes)
	wg.Wait()

	if firstErr != nil {
		return firstErr
	}
	return ctx.Err()
}
