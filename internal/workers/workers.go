package workers

import (
	"context"
	"errors"
	"sync"
)

type Workers struct {
	workers []Worker
}

func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Run starts every worker in its own goroutine and waits for all of them.
// The errors of failed workers are joined.
func (w *Workers) Run(ctx context.Context) error {
	var wg sync.WaitGroup
	errs := make([]error, len(w.workers))

	for i, worker := range w.workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs[i] = worker.Run(ctx)
		}()
	}

	wg.Wait()
	return errors.Join(errs...)
}
