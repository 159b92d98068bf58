// Package worker hosts the Temporal worker that drives the session sweep
// when a Temporal frontend is configured.
package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/cx-tal-miterani/flight-search-system/internal/activities"
	"github.com/cx-tal-miterani/flight-search-system/internal/workflows"
	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/worker"
	"go.uber.org/zap"
)

// Options configures the embedded worker
type Options struct {
	HostPort      string
	Namespace     string
	SweepInterval time.Duration
}

// Runner owns the Temporal client and worker
type Runner struct {
	client client.Client
	worker worker.Worker
	logger *zap.Logger
}

// Start connects to Temporal, starts polling the maintenance queue and makes
// sure the sweep workflow is running
func Start(ctx context.Context, opts Options, sweeper activities.SessionSweeper, logger *zap.Logger) (*Runner, error) {
	logger.Info("Connecting to Temporal", zap.String("host", opts.HostPort), zap.String("namespace", opts.Namespace))
	c, err := client.Dial(client.Options{
		HostPort:  opts.HostPort,
		Namespace: opts.Namespace,
		Logger:    NewLogger(logger),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Temporal: %w", err)
	}

	w := worker.New(c, workflows.TaskQueue, worker.Options{})
	Register(w, activities.NewActivities(sweeper))

	if err := w.Start(); err != nil {
		c.Close()
		return nil, fmt.Errorf("failed to start worker: %w", err)
	}

	run, err := c.ExecuteWorkflow(ctx, client.StartWorkflowOptions{
		ID:        workflows.SessionSweepWorkflowID,
		TaskQueue: workflows.TaskQueue,
	}, workflows.SessionSweepWorkflow, workflows.SessionSweepInput{
		Interval:     opts.SweepInterval,
		SweepsPerRun: workflows.DefaultSweepsPerRun,
	})
	if err != nil {
		w.Stop()
		c.Close()
		return nil, fmt.Errorf("failed to start session sweep workflow: %w", err)
	}

	logger.Info("Session sweep workflow running",
		zap.String("workflowId", run.GetID()),
		zap.String("runId", run.GetRunID()),
	)
	return &Runner{client: c, worker: w, logger: logger}, nil
}

// registry is the part of worker.Worker used for registration, also
// satisfied by the SDK test environment
type registry interface {
	RegisterWorkflow(w interface{})
	RegisterActivityWithOptions(a interface{}, options activity.RegisterOptions)
}

// Register adds the session maintenance workflow and activities to w
func Register(w registry, acts *activities.Activities) {
	w.RegisterWorkflow(workflows.SessionSweepWorkflow)
	w.RegisterActivityWithOptions(acts.SweepExpiredSessions, activity.RegisterOptions{Name: "SweepExpiredSessions"})
}

// Stop stops polling and closes the client. The workflow keeps running on
// the server and is picked up by the next worker.
func (r *Runner) Stop() {
	r.worker.Stop()
	r.client.Close()
	r.logger.Info("Temporal worker stopped")
}
