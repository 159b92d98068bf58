package activities

import (
	"context"

	"go.temporal.io/sdk/activity"
)

// SessionSweeper removes expired sessions and reports how many went
type SessionSweeper interface {
	SweepExpiredSessions(ctx context.Context) int
}

// SweepResult is the output of SweepExpiredSessions
type SweepResult struct {
	Removed int `json:"removed"`
}

// Activities holds the dependencies of the session maintenance activities
type Activities struct {
	sweeper SessionSweeper
}

// NewActivities creates activities operating on sweeper
func NewActivities(sweeper SessionSweeper) *Activities {
	return &Activities{sweeper: sweeper}
}

// SweepExpiredSessions removes every expired session from the store
func (a *Activities) SweepExpiredSessions(ctx context.Context) (*SweepResult, error) {
	logger := activity.GetLogger(ctx)

	removed := a.sweeper.SweepExpiredSessions(ctx)
	logger.Info("Expired sessions swept", "removed", removed)

	return &SweepResult{Removed: removed}, nil
}
