package schemas

import "github.com/google/uuid"

// -- Navigation Schemas --

// NavigationGoal is the request handed to the navigation action collaborator.
// A goal is built fresh for each dispatch and is immutable once submitted.
type NavigationGoal struct {
	ID   uuid.UUID   `json:"id"`
	Pose PoseStamped `json:"pose"`
	// BehaviorTree optionally points at a route-override document that makes
	// the navigation stack stop short of the literal goal. Empty means the
	// default route behavior.
	BehaviorTree string `json:"behavior_tree,omitempty"`
}

// GoalOutcome is the terminal result the navigation collaborator reports for
// a dispatched goal.
type GoalOutcome int

const (
	OutcomeSucceeded GoalOutcome = iota + 1
	OutcomeAborted
	OutcomeCancelled
)

func (o GoalOutcome) String() string {
	switch o {
	case OutcomeSucceeded:
		return "succeeded"
	case OutcomeAborted:
		return "aborted"
	case OutcomeCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// GoalResult pairs a terminal outcome with the goal it belongs to.
type GoalResult struct {
	GoalID  uuid.UUID   `json:"goal_id"`
	Outcome GoalOutcome `json:"outcome"`
}
