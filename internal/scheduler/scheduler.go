package scheduler

import (
	"context"
	"log/slog"
	"time"

	"newsdigest/internal/domain"
)

// Gatherer runs one gathering pass over a source selection.
type Gatherer interface {
	Gather(ctx context.Context, selector string, days int) ([]domain.GatherStats, error)
}

// Scheduler drives periodic gathering runs in daemon mode.
type Scheduler struct {
	gatherer Gatherer
	selector string
	days     int
	interval time.Duration
	logger   *slog.Logger
}

func NewScheduler(gatherer Gatherer, selector string, days int, interval time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		gatherer: gatherer,
		selector: selector,
		days:     days,
		interval: interval,
		logger:   logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "interval", s.interval, "selector", s.selector)

	s.runGather(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runGather(ctx)
		}
	}
}

func (s *Scheduler) runGather(ctx context.Context) {
	runCtx, cancel := context.WithTimeout(ctx, 30*time.Minute)
	defer cancel()

	if _, err := s.gatherer.Gather(runCtx, s.selector, s.days); err != nil {
		s.logger.Error("gathering run failed", "error", err)
	}
}
