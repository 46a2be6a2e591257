package messaging

import (
	"context"
	"runtime/debug"

	"openpay-gateway/pkg/logger"

	"golang.org/x/sync/errgroup"
)

// Runner supervises the callback consumers. Each worker gets its own
// goroutine; a panicking worker is logged with its stack instead of
// taking the process down, and the first worker error stops the group.
type Runner struct {
	logger  *logger.Logger
	handler MessageHandler
	workers []Worker
}

func NewRunner(l *logger.Logger, handler MessageHandler, workers ...Worker) *Runner {
	return &Runner{logger: l, handler: handler, workers: workers}
}

// Start blocks until the context is cancelled or a worker fails. Every
// worker is closed on the way out regardless of how it stopped.
func (r *Runner) Start(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for i, w := range r.workers {
		g.Go(func() error {
			return r.supervise(ctx, i, w)
		})
	}
	return g.Wait()
}

func (r *Runner) supervise(ctx context.Context, idx int, w Worker) error {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("Worker panic recovered: worker_idx=%d panic=%v stack=%s",
				idx, rec, string(debug.Stack()))
		}
		if err := w.Close(); err != nil {
			r.logger.Error("Failed to close worker: worker_idx=%d error=%v", idx, err)
		}
	}()
	return w.Start(ctx, r.handler)
}
