// File: internal/nav/navigate_to.go
package nav

import (
	"context"

	"go.uber.org/zap"

	"github.com/openrover/btnav/internal/bt"
)

// NavigateTo is the behavior-tree action node wrapping the goal supervisor.
// Leg parameters are re-read from the blackboard on every tick, so a mission
// runner can swap legs between ticks without touching the node.
type NavigateTo struct {
	bb     *bt.Blackboard
	sup    *GoalSupervisor
	logger *zap.Logger
}

// NewNavigateTo creates the node around an existing supervisor.
func NewNavigateTo(bb *bt.Blackboard, sup *GoalSupervisor, logger *zap.Logger) *NavigateTo {
	return &NavigateTo{
		bb:     bb,
		sup:    sup,
		logger: logger.Named("navigate_to"),
	}
}

// Name implements bt.Node.
func (n *NavigateTo) Name() string { return "NavigateTo" }

// Tick implements bt.Node.
func (n *NavigateTo) Tick(ctx context.Context) bt.Status {
	n.logger.Debug("NavigateTo ticked")
	return n.sup.Tick(ctx, ReadGoalParams(n.bb))
}
