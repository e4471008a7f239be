// File: internal/bt/status.go
package bt

// Status is the tri-state result a behavior-tree node reports for one tick.
type Status int

const (
	// StatusRunning asks the host scheduler to tick the node again.
	StatusRunning Status = iota + 1
	// StatusSuccess marks the node's condition or action as complete.
	StatusSuccess
	// StatusFailure marks the node as failed; recovery belongs to the tree,
	// not the node.
	StatusFailure
)

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "RUNNING"
	case StatusSuccess:
		return "SUCCESS"
	case StatusFailure:
		return "FAILURE"
	default:
		return "INVALID"
	}
}

// Terminal reports whether the status ends the node's lifecycle for the
// current activation.
func (s Status) Terminal() bool {
	return s == StatusSuccess || s == StatusFailure
}
