package service

import (
	"context"
	"sync"
	"time"

	"github.com/mlukashe/go-photo-keeper/internal/connectivity"
	"github.com/mlukashe/go-photo-keeper/internal/logger"
)

type syncJob struct {
	engine  SyncQueueService
	monitor connectivity.Monitor
	logger  *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSyncJob creates the background drain trigger. The job is idle until
// Start is called.
func NewSyncJob(engine SyncQueueService, monitor connectivity.Monitor, log *logger.Logger) SyncJob {
	return &syncJob{engine: engine, monitor: monitor, logger: log}
}

// Start stops any previously running job, then launches a goroutine that
// fires a drain pass (a) immediately at launch, (b) on every offline-to-online
// edge of the connectivity stream, and (c) on a periodic retry tick so FAILED
// operations are reattempted without user action. If retryInterval is zero or
// negative it defaults to 5 minutes. The goroutine exits when ctx is
// cancelled or Stop is called.
func (j *syncJob) Start(ctx context.Context, retryInterval time.Duration) {
	if retryInterval <= 0 {
		retryInterval = 5 * time.Minute
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	changes := j.monitor.Changes()

	go func() {
		defer j.wg.Done()

		j.drain(jobCtx)

		t := time.NewTicker(retryInterval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case online := <-changes:
				// the stream is distinct-until-changed, so true here is
				// always a rising edge
				if online {
					j.drain(jobCtx)
				}
			case <-t.C:
				j.drain(jobCtx)
			}
		}
	}()
}

// Stop cancels the background goroutine and blocks until it has exited.
// Safe to call when the job is not running.
func (j *syncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

func (j *syncJob) drain(ctx context.Context) {
	if err := j.engine.ProcessQueue(ctx); err != nil {
		j.logger.Err(err).Str("func", "syncJob.drain").Msg("drain pass failed")
	}
}
