package workflows

import (
	"time"

	"github.com/cx-tal-miterani/flight-search-system/internal/activities"
	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"
)

const (
	// TaskQueue is the queue the session maintenance worker polls
	TaskQueue = "session-maintenance-queue"
	// SessionSweepWorkflowID is the fixed id of the single sweep loop
	SessionSweepWorkflowID = "session-sweep"
	// DefaultSweepsPerRun bounds history growth before continuing as new
	DefaultSweepsPerRun = 24
)

// SessionSweepInput is the input for the session sweep workflow
type SessionSweepInput struct {
	Interval     time.Duration `json:"interval"`
	SweepsPerRun int           `json:"sweepsPerRun"`
}

// SessionSweepWorkflow waits Interval between sweeps of expired sessions.
// After SweepsPerRun sweeps it continues as new with the same input.
func SessionSweepWorkflow(ctx workflow.Context, input SessionSweepInput) error {
	logger := workflow.GetLogger(ctx)

	if input.Interval <= 0 {
		return temporal.NewNonRetryableApplicationError("sweep interval must be positive", "InvalidInput", nil)
	}
	runs := input.SweepsPerRun
	if runs <= 0 {
		runs = DefaultSweepsPerRun
	}

	ctx = workflow.WithActivityOptions(ctx, workflow.ActivityOptions{
		StartToCloseTimeout: 30 * time.Second,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    time.Minute,
			MaximumAttempts:    3,
		},
	})

	logger.Info("Session sweep workflow started", "interval", input.Interval, "sweeps", runs)

	for i := 0; i < runs; i++ {
		if err := workflow.Sleep(ctx, input.Interval); err != nil {
			return err
		}

		var result activities.SweepResult
		err := workflow.ExecuteActivity(ctx, "SweepExpiredSessions").Get(ctx, &result)
		if err != nil {
			// the next tick retries; a missed sweep only delays cleanup
			logger.Error("Session sweep failed", "error", err)
			continue
		}
		logger.Info("Session sweep completed", "removed", result.Removed)
	}

	return workflow.NewContinueAsNewError(ctx, SessionSweepWorkflow, input)
}
