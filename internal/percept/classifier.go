// File: internal/percept/classifier.go
package percept

import (
	"math"

	"go.uber.org/zap"

	"github.com/openrover/btnav/api/schemas"
)

// DefaultAngularToleranceDeg is the boundary between "in front" and a turn
// hint when no tolerance is configured.
const DefaultAngularToleranceDeg = 5.0

// Direction is the classifier's verdict for one tick.
type Direction int

const (
	// DirectionNoTarget means no detection was available; the default turn
	// hint is right so a scanning behavior has a deterministic direction.
	DirectionNoTarget Direction = iota
	DirectionInFront
	DirectionLeft
	DirectionRight
)

func (d Direction) String() string {
	switch d {
	case DirectionInFront:
		return "in_front"
	case DirectionLeft:
		return "turn_left"
	case DirectionRight:
		return "turn_right"
	default:
		return "no_target"
	}
}

// Code is the integer form exposed on the blackboard: 0 in front, 1 turn
// left, -1 turn right or no target.
func (d Direction) Code() int {
	switch d {
	case DirectionInFront:
		return 0
	case DirectionLeft:
		return 1
	default:
		return -1
	}
}

// Classifier decides whether a detection is angularly in front of the robot
// and publishes the confirmation transform when it is.
type Classifier struct {
	publisher    ConfirmationPublisher
	toleranceDeg float64
	entityID     string
	logger       *zap.Logger
}

// NewClassifier creates a classifier. toleranceDeg <= 0 falls back to the
// default 5 degrees.
func NewClassifier(publisher ConfirmationPublisher, toleranceDeg float64, entityID string, logger *zap.Logger) *Classifier {
	if toleranceDeg <= 0 {
		toleranceDeg = DefaultAngularToleranceDeg
	}
	return &Classifier{
		publisher:    publisher,
		toleranceDeg: toleranceDeg,
		entityID:     entityID,
		logger:       logger.Named("classifier"),
	}
}

// Bearing returns the horizontal angular offset of the detection relative to
// the robot's forward axis, in degrees. Positive is left.
func Bearing(det schemas.Detection) float64 {
	return math.Atan2(det.Center3D.Y, det.Center3D.X) * 180.0 / math.Pi
}

// Classify computes the turn direction for the detection. A bearing of
// exactly the tolerance counts as in front. In-front detections are
// published under the configured entity identifier as a side effect.
func (c *Classifier) Classify(det schemas.Detection) Direction {
	bearing := Bearing(det)

	if math.Abs(bearing) > c.toleranceDeg {
		c.logger.Debug("detection outside tolerance",
			zap.Float64("bearing_deg", bearing),
			zap.Float64("tolerance_deg", c.toleranceDeg))
		if bearing > 0 {
			return DirectionLeft
		}
		return DirectionRight
	}

	c.publisher.PublishConfirmation(det, c.entityID)
	c.logger.Debug("detection confirmed in front",
		zap.Float64("bearing_deg", bearing),
		zap.String("entity", c.entityID))
	return DirectionInFront
}
