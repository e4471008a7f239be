// File: internal/nav/builder.go
package nav

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/openrover/btnav/api/schemas"
)

// DocumentGenerator materializes a route-override document for a distance
// tolerance and returns its path.
type DocumentGenerator interface {
	Generate(distanceTolerance float64) (string, error)
}

// GoalSource produces a ready-to-dispatch goal from leg parameters. The
// supervisor depends on this boundary so goal construction can be replaced
// in tests.
type GoalSource interface {
	Build(p GoalParams) (schemas.NavigationGoal, error)
}

// GoalBuilder assembles navigation goals: resolved pose plus, for truncated
// legs, an attached route-override document.
type GoalBuilder struct {
	resolver *CoordinateResolver
	docs     DocumentGenerator
	logger   *zap.Logger
}

// NewGoalBuilder wires a builder from its collaborators.
func NewGoalBuilder(resolver *CoordinateResolver, docs DocumentGenerator, logger *zap.Logger) *GoalBuilder {
	return &GoalBuilder{
		resolver: resolver,
		docs:     docs,
		logger:   logger.Named("builder"),
	}
}

// Build produces a fresh goal for the leg. Errors from pose resolution pass
// through unchanged so callers can classify transform unavailability.
func (b *GoalBuilder) Build(p GoalParams) (schemas.NavigationGoal, error) {
	pose, err := b.resolver.Resolve(p)
	if err != nil {
		return schemas.NavigationGoal{}, err
	}

	goal := schemas.NavigationGoal{
		ID:   uuid.New(),
		Pose: pose,
	}

	if p.Truncated {
		path, err := b.docs.Generate(p.DistanceTolerance)
		if err != nil {
			return schemas.NavigationGoal{}, fmt.Errorf("attaching route override: %w", err)
		}
		goal.BehaviorTree = path
	}

	b.logger.Info("built navigation goal",
		zap.String("goal_id", goal.ID.String()),
		zap.Float64("x", goal.Pose.Pose.Position.X),
		zap.Float64("y", goal.Pose.Pose.Position.Y),
		zap.String("frame", goal.Pose.FrameID),
		zap.Bool("truncated", p.Truncated))
	return goal, nil
}
