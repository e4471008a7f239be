// File: internal/percept/source.go

// Package percept holds the perception-filter side of the node pair: picking
// the best-matching detection from the perception collaborator and deciding
// whether it sits angularly in front of the robot.
package percept

import "github.com/openrover/btnav/api/schemas"

// Source is the perception query collaborator boundary. Implementations must
// provide an atomic latest-detections snapshot; the returned ordering is the
// collaborator's own ranking and is authoritative.
type Source interface {
	// Activate selects which detector pipeline feeds the source.
	Activate(class schemas.DetectionClass)
	// ByFeatures returns current detections matching the descriptor at or
	// above minConfidence, best match first. May be empty.
	ByFeatures(descriptor string, minConfidence float64) []schemas.Detection
}

// ConfirmationPublisher is the side-effecting half of the perception surface:
// it tags a confirmed detection with a stable entity identifier so downstream
// consumers can reference it by frame name.
type ConfirmationPublisher interface {
	PublishConfirmation(det schemas.Detection, entityID string)
}
