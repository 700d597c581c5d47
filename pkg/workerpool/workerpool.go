// Package workerpool runs independent work items on a bounded set of goroutines.
package workerpool

import (
	"context"
	"sync"
)

type job[T any] struct {
	index int
	item  T
}

// Map applies fn to every item using workerCount goroutines and returns the results in
// item order. The first error cancels the remaining work and is returned.
func Map[T, R any](
	ctx context.Context,
	workerCount int,
	items []T,
	fn func(ctx context.Context, index int, item T) (R, error),
) ([]R, error) {
	if workerCount < 1 {
		workerCount = 1
	}
	if workerCount > len(items) {
		workerCount = len(items)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	results := make([]R, len(items))
	jobs := make(chan job[T], workerCount)
	errs := make(chan error, 1)
	wg := sync.WaitGroup{}
	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case j, ok := <-jobs:
					if !ok {
						return
					}
					res, err := fn(ctx, j.index, j.item)
					if err != nil {
						select {
						case errs <- err:
						default:
						}
						cancel()
						return
					}
					// each index is written by exactly one worker
					results[j.index] = res
				}
			}
		}()
	}

	go func() {
		defer close(jobs)
		for i, item := range items {
			select {
			case <-ctx.Done():
				return
			case jobs <- job[T]{index: i, item: item}:
			}
		}
	}()

	wg.Wait()
	close(errs)

	if err := <-errs; err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// Process runs fn for every item using workerCount goroutines. The first error cancels
// the remaining work and is returned.
func Process[T any](
	ctx context.Context,
	workerCount int,
	items []T,
	fn func(ctx context.Context, index int, item T) error,
) error {
	_, err := Map(ctx, workerCount, items, func(ctx context.Context, index int, item T) (struct{}, error) {
		return struct{}{}, fn(ctx, index, item)
	})
	return err
}
