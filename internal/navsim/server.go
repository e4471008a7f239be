// File: internal/navsim/server.go

// Package navsim provides an in-process stand-in for the navigation action
// server. It accepts goals, simulates travel time from the robot's current
// position, and reports terminal outcomes asynchronously, which is exactly
// the surface the goal supervisor supervises in production.
package navsim

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/openrover/btnav/api/schemas"
)

// Config tunes the simulation.
type Config struct {
	// SpeedMPS is the simulated travel speed in meters per second.
	SpeedMPS float64
	// ResultLatency is added to every goal's travel time, modeling planner
	// and controller overhead.
	ResultLatency time.Duration
	// ReadyAfter delays service availability from server creation, to
	// exercise the supervisor's bounded readiness wait.
	ReadyAfter time.Duration
}

// Server is the simulated action server. Safe for concurrent use.
type Server struct {
	cfg     Config
	logger  *zap.Logger
	readyAt time.Time

	results chan schemas.GoalResult
	done    chan struct{}
	wg      sync.WaitGroup

	mu        sync.Mutex
	position  schemas.Vec3
	overrides []schemas.GoalOutcome
	closed    bool
}

// NewServer creates a simulator positioned at the origin.
func NewServer(cfg Config, logger *zap.Logger) *Server {
	if cfg.SpeedMPS <= 0 {
		cfg.SpeedMPS = 1.0
	}
	return &Server{
		cfg:     cfg,
		logger:  logger.Named("navsim"),
		readyAt: time.Now().Add(cfg.ReadyAfter),
		results: make(chan schemas.GoalResult, 16),
		done:    make(chan struct{}),
	}
}

// WaitReady blocks until the simulated service is reachable, the timeout
// lapses, or the context ends.
func (s *Server) WaitReady(ctx context.Context, timeout time.Duration) bool {
	remaining := time.Until(s.readyAt)
	if remaining <= 0 {
		return true
	}
	if remaining > timeout {
		remaining = timeout
	}

	timer := time.NewTimer(remaining)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return time.Now().After(s.readyAt)
	}
}

// Submit accepts a goal and completes it on a worker goroutine after the
// simulated travel time.
func (s *Server) Submit(ctx context.Context, goal schemas.NavigationGoal) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return fmt.Errorf("navsim server is closed")
	}
	travel := s.travelTimeLocked(goal.Pose.Pose.Position)
	s.wg.Add(1)
	s.mu.Unlock()

	s.logger.Debug("goal accepted",
		zap.String("goal_id", goal.ID.String()),
		zap.Duration("travel", travel))

	go s.complete(goal, travel)
	return nil
}

// Results implements the asynchronous terminal-outcome channel.
func (s *Server) Results() <-chan schemas.GoalResult {
	return s.results
}

// InjectOutcome scripts the outcome of the next completed goal. Outcomes are
// consumed in FIFO order; with no script, goals succeed.
func (s *Server) InjectOutcome(outcome schemas.GoalOutcome) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.overrides = append(s.overrides, outcome)
}

// Position returns the robot's current simulated position.
func (s *Server) Position() schemas.Vec3 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.position
}

// Close stops the simulator and waits for in-flight goal workers to finish.
func (s *Server) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.mu.Unlock()

	close(s.done)
	s.wg.Wait()
}

func (s *Server) travelTimeLocked(target schemas.Vec3) time.Duration {
	dx := target.X - s.position.X
	dy := target.Y - s.position.Y
	seconds := math.Hypot(dx, dy) / s.cfg.SpeedMPS
	return time.Duration(seconds*float64(time.Second)) + s.cfg.ResultLatency
}

func (s *Server) complete(goal schemas.NavigationGoal, travel time.Duration) {
	defer s.wg.Done()

	timer := time.NewTimer(travel)
	defer timer.Stop()
	select {
	case <-s.done:
		return
	case <-timer.C:
	}

	outcome := s.nextOutcome()
	if outcome == schemas.OutcomeSucceeded {
		s.mu.Lock()
		s.position = goal.Pose.Pose.Position
		s.mu.Unlock()
	}

	s.logger.Info("goal completed",
		zap.String("goal_id", goal.ID.String()),
		zap.Stringer("outcome", outcome))

	select {
	case s.results <- schemas.GoalResult{GoalID: goal.ID, Outcome: outcome}:
	case <-s.done:
	}
}

func (s *Server) nextOutcome() schemas.GoalOutcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.overrides) == 0 {
		return schemas.OutcomeSucceeded
	}
	outcome := s.overrides[0]
	s.overrides = s.overrides[1:]
	return outcome
}
