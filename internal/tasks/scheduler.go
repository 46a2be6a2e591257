package tasks

import (
	"context"
	"time"

	"openpay-gateway/pkg/logger"
	"openpay-gateway/pkg/metrics"
)

// Task is a unit of scheduled reconciliation work.
type Task interface {
	Name() string
	Run(ctx context.Context) error
}

// Scheduler runs every registered task once at startup and then on a fixed
// interval until the context is cancelled. One failing task never stops the
// others.
type Scheduler struct {
	logger   *logger.Logger
	interval time.Duration
	tasks    []Task
}

func NewScheduler(l *logger.Logger, interval time.Duration, tasks ...Task) *Scheduler {
	return &Scheduler{
		logger:   l,
		interval: interval,
		tasks:    tasks,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	s.logger.Info("Task scheduler started: interval=%s tasks=%d", s.interval, len(s.tasks))
	s.runAll(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Task scheduler stopped")
			return
		case <-ticker.C:
			s.runAll(ctx)
		}
	}
}

func (s *Scheduler) runAll(ctx context.Context) {
	for _, task := range s.tasks {
		if ctx.Err() != nil {
			return
		}

		started := time.Now()
		err := task.Run(ctx)
		metrics.ObserveTaskRun(task.Name(), err, time.Since(started))
		if err != nil {
			s.logger.Error("Task failed: task=%s error=%v", task.Name(), err)
			continue
		}
		s.logger.Info("Task completed: task=%s duration=%s", task.Name(), time.Since(started))
	}
}
