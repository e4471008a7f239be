// File: internal/nav/params.go
package nav

import "github.com/openrover/btnav/internal/bt"

// Blackboard port keys read by the NavigateTo node.
const (
	PortTFFrame           = "tf_frame"
	PortX                 = "x"
	PortY                 = "y"
	PortWillFinish        = "will_finish"
	PortIsTruncated       = "is_truncated"
	PortDistanceTolerance = "distance_tolerance"
)

// GoalParams is the per-tick node configuration for one navigation leg.
// When ReferenceFrame is non-empty the literal coordinates are ignored;
// otherwise they are authoritative.
type GoalParams struct {
	ReferenceFrame    string
	X                 float64
	Y                 float64
	WillFinish        bool
	Truncated         bool
	DistanceTolerance float64
}

// ReadGoalParams pulls the leg configuration off the blackboard. Unset ports
// read as their zero values, matching a tree that wires only the ports it
// uses.
func ReadGoalParams(bb *bt.Blackboard) GoalParams {
	var p GoalParams
	p.ReferenceFrame, _ = bb.GetString(PortTFFrame)
	p.X, _ = bb.GetFloat64(PortX)
	p.Y, _ = bb.GetFloat64(PortY)
	p.WillFinish, _ = bb.GetBool(PortWillFinish)
	p.Truncated, _ = bb.GetBool(PortIsTruncated)
	p.DistanceTolerance, _ = bb.GetFloat64(PortDistanceTolerance)
	return p
}
