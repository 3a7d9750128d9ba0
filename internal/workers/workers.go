// Package workers runs the engine's long-lived background loops (event
// splicing, the sync job's drain trigger) as a single supervised group.
package workers

import (
	"context"
	"sync"
)

// Worker is a long-running background loop. Run is expected to block until
// ctx is cancelled.
type Worker interface {
	Run(ctx context.Context)
}

// WorkerFunc adapts a plain function to the Worker interface.
type WorkerFunc func(ctx context.Context)

func (f WorkerFunc) Run(ctx context.Context) {
	f(ctx)
}

// Workers runs a set of workers concurrently and waits for all of them to
// exit on shutdown.
type Workers struct {
	workers []Worker

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New constructs a worker group. Workers can be added until Run is called.
func New(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Add registers another worker. Must not be called after Run.
func (w *Workers) Add(worker Worker) {
	w.workers = append(w.workers, worker)
}

// Run launches every worker in its own goroutine. The workers share a
// context derived from ctx; cancelling it, or calling Stop, shuts the whole
// group down.
func (w *Workers) Run(ctx context.Context) {
	w.mu.Lock()
	groupCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.mu.Unlock()

	for _, worker := range w.workers {
		w.wg.Add(1)
		go func(worker Worker) {
			defer w.wg.Done()
			worker.Run(groupCtx)
		}(worker)
	}
}

// Stop cancels the group and blocks until every worker has returned. Safe to
// call when the group was never started.
func (w *Workers) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}
