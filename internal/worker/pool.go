// Package worker provides a bounded fan-out helper for running the same
// operation against many targets concurrently.
package worker

import (
	"context"
	"sync"
)

// Map runs fn against every input on at most size goroutines and returns the
// results in input order. A cancelled ctx stops new work; entries whose fn
// never ran hold the zero value of R. fn is responsible for mapping its own
// errors into R.
func Map[T, R any](ctx context.Context, size int, inputs []T, fn func(context.Context, T) R) []R {
	if size < 1 {
		size = 1
	}

	results := make([]R, len(inputs))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < size; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = fn(ctx, inputs[i])
			}
		}()
	}

	for i := range inputs {
		select {
		case <-ctx.Done():
			close(jobs)
			wg.Wait()
			return results
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	return results
}
