package workflows

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cx-tal-miterani/flight-search-system/internal/activities"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/testsuite"
	"go.temporal.io/sdk/workflow"
)

type fakeSweeper struct {
	calls atomic.Int32
}

func (f *fakeSweeper) SweepExpiredSessions(context.Context) int {
	f.calls.Add(1)
	return 2
}

type SessionSweepWorkflowTestSuite struct {
	suite.Suite
	testsuite.WorkflowTestSuite
	env     *testsuite.TestWorkflowEnvironment
	sweeper *fakeSweeper
}

func (s *SessionSweepWorkflowTestSuite) SetupTest() {
	s.env = s.NewTestWorkflowEnvironment()
	s.sweeper = &fakeSweeper{}

	acts := activities.NewActivities(s.sweeper)
	s.env.RegisterActivityWithOptions(acts.SweepExpiredSessions, activity.RegisterOptions{Name: "SweepExpiredSessions"})
}

func (s *SessionSweepWorkflowTestSuite) AfterTest(suiteName, testName string) {
	s.env.AssertExpectations(s.T())
}

func TestSessionSweepWorkflowTestSuite(t *testing.T) {
	suite.Run(t, new(SessionSweepWorkflowTestSuite))
}

func (s *SessionSweepWorkflowTestSuite) TestWorkflow_Constants() {
	s.Equal(24, DefaultSweepsPerRun)
	s.Equal("session-sweep", SessionSweepWorkflowID)
}

func (s *SessionSweepWorkflowTestSuite) TestWorkflow_SweepsThenContinuesAsNew() {
	s.env.ExecuteWorkflow(SessionSweepWorkflow, SessionSweepInput{
		Interval:     time.Hour,
		SweepsPerRun: 3,
	})

	s.True(s.env.IsWorkflowCompleted())

	var continueErr *workflow.ContinueAsNewError
	s.True(errors.As(s.env.GetWorkflowError(), &continueErr))
	s.Equal(int32(3), s.sweeper.calls.Load())
}

func (s *SessionSweepWorkflowTestSuite) TestWorkflow_WaitsIntervalBeforeSweeping() {
	s.env.RegisterDelayedCallback(func() {
		s.Zero(s.sweeper.calls.Load())
	}, 59*time.Minute)

	s.env.RegisterDelayedCallback(func() {
		s.Equal(int32(1), s.sweeper.calls.Load())
		s.env.CancelWorkflow()
	}, 90*time.Minute)

	s.env.ExecuteWorkflow(SessionSweepWorkflow, SessionSweepInput{Interval: time.Hour})

	s.True(s.env.IsWorkflowCompleted())
	s.Error(s.env.GetWorkflowError())
	s.Equal(int32(1), s.sweeper.calls.Load())
}

func (s *SessionSweepWorkflowTestSuite) TestWorkflow_ActivityFailureDoesNotStopLoop() {
	env := s.NewTestWorkflowEnvironment()
	env.RegisterActivityWithOptions(activities.NewActivities(s.sweeper).SweepExpiredSessions,
		activity.RegisterOptions{Name: "SweepExpiredSessions"})
	env.OnActivity("SweepExpiredSessions", mock.Anything).Return(nil, errors.New("store unavailable")).Times(3)
	env.OnActivity("SweepExpiredSessions", mock.Anything).Return(&activities.SweepResult{Removed: 1}, nil)

	env.ExecuteWorkflow(SessionSweepWorkflow, SessionSweepInput{Interval: time.Minute, SweepsPerRun: 2})

	s.True(env.IsWorkflowCompleted())
	var continueErr *workflow.ContinueAsNewError
	s.True(errors.As(env.GetWorkflowError(), &continueErr))
}

func (s *SessionSweepWorkflowTestSuite) TestWorkflow_RejectsNonPositiveInterval() {
	s.env.ExecuteWorkflow(SessionSweepWorkflow, SessionSweepInput{})

	s.True(s.env.IsWorkflowCompleted())
	s.Error(s.env.GetWorkflowError())
	s.Zero(s.sweeper.calls.Load())
}
