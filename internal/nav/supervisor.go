// File: internal/nav/supervisor.go
package nav

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/openrover/btnav/api/schemas"
	"github.com/openrover/btnav/internal/bt"
	"github.com/openrover/btnav/internal/tf"
)

// ActionClient is the navigation dispatch collaborator boundary. Terminal
// outcomes arrive asynchronously on Results; the supervisor only observes
// them, it never polls the action itself.
type ActionClient interface {
	WaitReady(ctx context.Context, timeout time.Duration) bool
	Submit(ctx context.Context, goal schemas.NavigationGoal) error
	Results() <-chan schemas.GoalResult
}

// Recorder persists dispatched goals and their terminal outcomes. A nil
// recorder disables journaling; recording failures never affect the node's
// reported status.
type Recorder interface {
	RecordDispatch(ctx context.Context, goal schemas.NavigationGoal) error
	RecordOutcome(ctx context.Context, result schemas.GoalResult) error
}

// State is the supervisor's position in the dispatch lifecycle.
type State int

const (
	StateIdle State = iota
	// StateDispatching covers every deferred situation: service not yet
	// reachable, transform not yet available, submission failed. The next
	// tick retries from scratch.
	StateDispatching
	StateActive
	StateSucceeded
	StateAborted
	StateCancelled
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDispatching:
		return "dispatching"
	case StateActive:
		return "active"
	case StateSucceeded:
		return "succeeded"
	case StateAborted:
		return "aborted"
	case StateCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// SupervisorConfig carries the supervisor's tunables.
type SupervisorConfig struct {
	// ServiceWaitTimeout bounds the per-tick wait for the navigation service.
	ServiceWaitTimeout time.Duration
}

// GoalSupervisor owns the dispatch state machine for one NavigateTo node.
// It is driven solely by Tick; the host engine guarantees non-reentrant
// ticking, so no internal locking is needed.
type GoalSupervisor struct {
	client   ActionClient
	goals    GoalSource
	recorder Recorder
	cfg      SupervisorConfig
	logger   *zap.Logger

	state    State
	lastGoal schemas.NavigationGoal
	// lastWillFinish is the will_finish flag captured when lastGoal was
	// dispatched. The outcome decision belongs to the goal that completed,
	// not to whatever leg is staged on the blackboard by then.
	lastWillFinish bool
	rearming       bool
	onNewGoal      func(schemas.NavigationGoal)
}

// NewGoalSupervisor creates a supervisor in the idle state. recorder may be
// nil.
func NewGoalSupervisor(client ActionClient, goals GoalSource, recorder Recorder, cfg SupervisorConfig, logger *zap.Logger) *GoalSupervisor {
	if cfg.ServiceWaitTimeout <= 0 {
		cfg.ServiceWaitTimeout = time.Second
	}
	return &GoalSupervisor{
		client:   client,
		goals:    goals,
		recorder: recorder,
		cfg:      cfg,
		logger:   logger.Named("supervisor"),
	}
}

// OnNewGoal registers the hook notified each time a follow-up goal is
// submitted after a terminal outcome on a non-final leg.
func (s *GoalSupervisor) OnNewGoal(fn func(schemas.NavigationGoal)) {
	s.onNewGoal = fn
}

// State returns the current lifecycle state.
func (s *GoalSupervisor) State() State { return s.state }

// LastGoal returns the most recently submitted goal.
func (s *GoalSupervisor) LastGoal() schemas.NavigationGoal { return s.lastGoal }

// Tick advances the state machine by one scheduler cycle. Within a tick,
// terminal-outcome handling runs before any new dispatch, and goal
// construction strictly precedes submission.
func (s *GoalSupervisor) Tick(ctx context.Context, p GoalParams) bt.Status {
	select {
	case res, ok := <-s.client.Results():
		if ok {
			if res.GoalID == s.lastGoal.ID {
				return s.handleOutcome(ctx, res, p)
			}
			// A result for a superseded goal carries no information about
			// the current leg.
			s.logger.Debug("ignoring stale goal result",
				zap.String("goal_id", res.GoalID.String()))
		}
	default:
	}

	if s.state == StateActive {
		return bt.StatusRunning
	}
	return s.dispatch(ctx, p)
}

// dispatch builds and submits a goal for the current leg. Every failure mode
// is transient: the supervisor parks in StateDispatching and reports RUNNING
// so the host re-ticks it.
func (s *GoalSupervisor) dispatch(ctx context.Context, p GoalParams) bt.Status {
	if !s.client.WaitReady(ctx, s.cfg.ServiceWaitTimeout) {
		s.logger.Warn("waiting for navigation service to be up")
		s.state = StateDispatching
		return bt.StatusRunning
	}

	goal, err := s.goals.Build(p)
	if err != nil {
		if errors.Is(err, tf.ErrTransformUnavailable) {
			s.logger.Warn("goal deferred, transform not yet available", zap.Error(err))
		} else {
			s.logger.Warn("goal construction failed, retrying next tick", zap.Error(err))
		}
		s.state = StateDispatching
		return bt.StatusRunning
	}

	if err := s.client.Submit(ctx, goal); err != nil {
		s.logger.Warn("goal submission failed, retrying next tick", zap.Error(err))
		s.state = StateDispatching
		return bt.StatusRunning
	}

	s.lastGoal = goal
	s.lastWillFinish = p.WillFinish
	s.state = StateActive
	s.record(ctx, goal)

	if s.rearming {
		s.rearming = false
		if s.onNewGoal != nil {
			s.onNewGoal(goal)
		}
	}

	s.logger.Info("dispatched navigation goal",
		zap.String("goal_id", goal.ID.String()),
		zap.Bool("will_finish", p.WillFinish))
	return bt.StatusRunning
}

// handleOutcome applies the retry-unless-final-leg policy to a terminal
// outcome of the active goal.
func (s *GoalSupervisor) handleOutcome(ctx context.Context, res schemas.GoalResult, p GoalParams) bt.Status {
	if s.recorder != nil {
		if err := s.recorder.RecordOutcome(ctx, res); err != nil {
			s.logger.Warn("failed to record goal outcome", zap.Error(err))
		}
	}

	switch res.Outcome {
	case schemas.OutcomeSucceeded:
		s.state = StateSucceeded
		s.logger.Info("navigation succeeded", zap.String("goal_id", res.GoalID.String()))
		if s.lastWillFinish {
			return bt.StatusSuccess
		}
		return s.rearm(ctx, p)

	case schemas.OutcomeAborted:
		s.state = StateAborted
		s.logger.Warn("navigation aborted", zap.String("goal_id", res.GoalID.String()))
		if s.lastWillFinish {
			return bt.StatusFailure
		}
		return s.rearm(ctx, p)

	case schemas.OutcomeCancelled:
		s.state = StateCancelled
		s.logger.Info("navigation cancelled", zap.String("goal_id", res.GoalID.String()))
		if s.lastWillFinish {
			// A cancellation on the final leg is a clean stop.
			return bt.StatusSuccess
		}
		return s.rearm(ctx, p)

	default:
		s.logger.Error("unknown goal outcome", zap.Stringer("outcome", res.Outcome))
		s.state = StateDispatching
		return bt.StatusRunning
	}
}

// rearm recomputes and submits the next leg's goal after a terminal outcome.
// If the dispatch defers (transform or service unavailable) the supervisor
// stays in StateDispatching and the next tick retries; no goal built from
// stale data is ever submitted.
func (s *GoalSupervisor) rearm(ctx context.Context, p GoalParams) bt.Status {
	s.rearming = true
	return s.dispatch(ctx, p)
}

func (s *GoalSupervisor) record(ctx context.Context, goal schemas.NavigationGoal) {
	if s.recorder == nil {
		return
	}
	if err := s.recorder.RecordDispatch(ctx, goal); err != nil {
		s.logger.Warn("failed to record goal dispatch", zap.Error(err))
	}
}
