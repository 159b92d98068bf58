// Package sweeper runs the periodic removal of expired sessions in-process.
package sweeper

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// SessionSweeper removes expired sessions and reports how many went
type SessionSweeper interface {
	SweepExpiredSessions(ctx context.Context) int
}

// Scheduler triggers a SessionSweeper on a fixed interval
type Scheduler struct {
	cron     *cron.Cron
	target   SessionSweeper
	interval time.Duration
	logger   *zap.Logger
}

// New creates a scheduler that sweeps every interval
func New(target SessionSweeper, interval time.Duration, logger *zap.Logger) (*Scheduler, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("sweep interval must be positive, got %s", interval)
	}

	s := &Scheduler{
		cron:     cron.New(),
		target:   target,
		interval: interval,
		logger:   logger,
	}

	if _, err := s.cron.AddFunc(fmt.Sprintf("@every %s", interval), s.run); err != nil {
		return nil, fmt.Errorf("failed to schedule session sweep: %w", err)
	}
	return s, nil
}

// Start begins scheduling in the background
func (s *Scheduler) Start() {
	s.logger.Info("session sweeper started", zap.Duration("interval", s.interval))
	s.cron.Start()
}

// Stop halts scheduling and waits for a running sweep to finish or ctx to end
func (s *Scheduler) Stop(ctx context.Context) {
	done := s.cron.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
		s.logger.Warn("session sweep still running at shutdown")
	}
}

func (s *Scheduler) run() {
	removed := s.target.SweepExpiredSessions(context.Background())
	s.logger.Debug("session sweep finished", zap.Int("removed", removed))
}
