package workers

import (
	"context"
	"time"

	"github.com/project/ticket-service/internal/logger"
)

// defaultInterval is used when a periodic worker gets a non-positive
// interval.
const defaultInterval = time.Minute

// PeriodicWorker calls a job function on a ticker until its context is
// cancelled. A failing job is logged and retried on the next tick.
type PeriodicWorker struct {
	name     string
	interval time.Duration
	job      func(ctx context.Context) error
	logger   *logger.Logger
}

// NewPeriodicWorker creates a worker that runs job every interval.
func NewPeriodicWorker(name string, interval time.Duration, job func(ctx context.Context) error, logger *logger.Logger) *PeriodicWorker {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &PeriodicWorker{
		name:     name,
		interval: interval,
		job:      job,
		logger:   logger,
	}
}

// Run implements [Worker]. It returns nil once ctx is done.
func (p *PeriodicWorker) Run(ctx context.Context) error {
	t := time.NewTicker(p.interval)
	defer t.Stop()

	p.logger.Debug().
		Str("worker", p.name).
		Dur("interval", p.interval).
		Msg("worker started")

	for {
		select {
		case <-ctx.Done():
			p.logger.Debug().Str("worker", p.name).Msg("worker stopped")
			return nil
		case <-t.C:
			if err := p.job(ctx); err != nil {
				p.logger.Err(err).Str("worker", p.name).Msg("worker job failed")
			}
		}
	}
}
