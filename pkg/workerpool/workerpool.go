// Package workerpool provides bounded concurrent fan-out over a slice of work items.
package workerpool

import (
	"context"
	"sync"
)

// Map runs fn over items with at most workerCount goroutines and returns the results in the
// order of items. The first error cancels the remaining work and is returned.
func Map[T, R any](
	ctx context.Context,
	workerCount int,
	items []T,
	fn func(context.Context, T) (R, error),
) ([]R, error) {
	if workerCount <= 0 {
		workerCount = 1
	}
	if workerCount > len(items) {
		workerCount = len(items)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	results := make([]R, len(items))
	tasks := make(chan int)

	var (
		once     sync.Once
		firstErr error
		wg       sync.WaitGroup
	)
	fail := func(err error) {
		once.Do(func() {
			firstErr = err
			cancel()
		})
	}

	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range tasks {
				res, err := fn(ctx, items[idx])
				if err != nil {
					fail(err)
					continue
				}
				results[idx] = res
			}
		}()
	}

dispatch:
	for idx := range items {
		select {
		case <-ctx.Done():
			break dispatch
		case tasks <- idx:
		}
	}
	close(tasks)
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
