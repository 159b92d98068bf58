package worker

import (
	"context"
	"testing"
	"time"

	"github.com/cx-tal-miterani/flight-search-system/internal/activities"
	"github.com/cx-tal-miterani/flight-search-system/internal/workflows"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/testsuite"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type noopSweeper struct{}

func (noopSweeper) SweepExpiredSessions(context.Context) int { return 0 }

func TestNewLogger_ForwardsKeyValues(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewLogger(zap.New(core))

	l.Info("Session sweep completed", "removed", 3)
	l.Error("Session sweep failed", "error", "boom")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "Session sweep completed", entries[0].Message)
	assert.Equal(t, int64(3), entries[0].ContextMap()["removed"])
	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
}

func TestRegister_WorkflowRunsWithRegisteredActivity(t *testing.T) {
	var ts testsuite.WorkflowTestSuite
	env := ts.NewTestWorkflowEnvironment()

	Register(env, activities.NewActivities(noopSweeper{}))

	env.ExecuteWorkflow(workflows.SessionSweepWorkflow, workflows.SessionSweepInput{
		Interval:     time.Minute,
		SweepsPerRun: 1,
	})
	assert.True(t, env.IsWorkflowCompleted())
}
