// Package workerpool provides simple concurrent processing utilities.
package workerpool

import (
	"context"
	"sync"
)

// Process runs a worker pool over the provided work items, invoking process for each.
// The first error cancels the remaining work and is returned; onCancel, when set,
// is called once per failing worker before the pool stops.
func Process[T any](
	ctx context.Context,
	workerCount int,
	items []T,
	process func(context.Context, T) error,
	onCancel func(),
) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		once     sync.Once
		firstErr error
	)
	run(ctx, workerCount, items, func(ctx context.Context, _ int, item T) {
		if err := process(ctx, item); err != nil {
			once.Do(func() { firstErr = err })
			if onCancel != nil {
				onCancel()
			}
			cancel()
		}
	})

	if firstErr != nil {
		return firstErr
	}
	return ctx.Err()
}

// Each runs process for every item regardless of individual failures and returns
// the per-item errors indexed like items. Only context cancellation stops the pool early;
// items that were never started report the context error.
func Each[T any](
	ctx context.Context,
	workerCount int,
	items []T,
	process func(context.Context, T) error,
) []error {
	errs := make([]error, len(items))
	started := make([]bool, len(items))
	run(ctx, workerCount, items, func(ctx context.Context, i int, item T) {
		started[i] = true
		errs[i] = process(ctx, item)
	})
	if err := ctx.Err(); err != nil {
		for i := range errs {
			if !started[i] {
				errs[i] = err
			}
		}
	}
	return errs
}

func run[T any](ctx context.Context, workerCount int, items []T, fn func(context.Context, int, T)) {
	if workerCount < 1 {
		workerCount = 1
	}

	tasks := make(chan int, workerCount)
	wg := sync.WaitGroup{}
	for w := 0; w < workerCount; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case i, ok := <-tasks:
					if !ok {
						return
					}
					fn(ctx, i, items[i])
				}
			}
		}()
	}

	go func() {
		defer close(tasks)
		for i := range items {
			select {
			case <-ctx.Done():
				return
			case tasks <- i:
			}
		}
	}()

	wg.Wait()
}
