// File: internal/journal/journal.go

// Package journal persists dispatched goals and their terminal outcomes to
// Postgres for fleet diagnostics. It is strictly an observer: the supervisor
// keeps working when journaling is disabled or failing.
package journal

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/openrover/btnav/api/schemas"
)

// DB abstracts the pgx pool surface the journal needs, allowing pgxmock in
// tests.
type DB interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Journal is the Postgres-backed goal recorder.
type Journal struct {
	db     DB
	logger *zap.Logger
}

// New creates a journal and verifies connectivity.
func New(ctx context.Context, db DB, logger *zap.Logger) (*Journal, error) {
	if err := db.Ping(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping journal database: %w", err)
	}
	return &Journal{db: db, logger: logger.Named("journal")}, nil
}

// EnsureSchema creates the journal tables when missing.
func (j *Journal) EnsureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS nav_goals (
    goal_id       UUID PRIMARY KEY,
    frame_id      TEXT NOT NULL,
    x             DOUBLE PRECISION NOT NULL,
    y             DOUBLE PRECISION NOT NULL,
    behavior_tree TEXT NOT NULL DEFAULT '',
    dispatched_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE TABLE IF NOT EXISTS nav_outcomes (
    goal_id     UUID NOT NULL REFERENCES nav_goals (goal_id),
    outcome     TEXT NOT NULL,
    recorded_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`
	if _, err := j.db.Exec(ctx, ddl); err != nil {
		return fmt.Errorf("failed to ensure journal schema: %w", err)
	}
	return nil
}

// RecordDispatch implements the supervisor's Recorder boundary.
func (j *Journal) RecordDispatch(ctx context.Context, goal schemas.NavigationGoal) error {
	const stmt = `
INSERT INTO nav_goals (goal_id, frame_id, x, y, behavior_tree)
VALUES ($1, $2, $3, $4, $5)`
	_, err := j.db.Exec(ctx, stmt,
		goal.ID,
		goal.Pose.FrameID,
		goal.Pose.Pose.Position.X,
		goal.Pose.Pose.Position.Y,
		goal.BehaviorTree,
	)
	if err != nil {
		return fmt.Errorf("failed to record goal dispatch: %w", err)
	}
	j.logger.Debug("recorded goal dispatch", zap.String("goal_id", goal.ID.String()))
	return nil
}

// RecordOutcome implements the supervisor's Recorder boundary.
func (j *Journal) RecordOutcome(ctx context.Context, result schemas.GoalResult) error {
	const stmt = `INSERT INTO nav_outcomes (goal_id, outcome) VALUES ($1, $2)`
	_, err := j.db.Exec(ctx, stmt, result.GoalID, result.Outcome.String())
	if err != nil {
		return fmt.Errorf("failed to record goal outcome: %w", err)
	}
	j.logger.Debug("recorded goal outcome",
		zap.String("goal_id", result.GoalID.String()),
		zap.Stringer("outcome", result.Outcome))
	return nil
}
