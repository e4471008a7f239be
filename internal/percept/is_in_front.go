// File: internal/percept/is_in_front.go
package percept

import (
	"context"

	"go.uber.org/zap"

	"github.com/openrover/btnav/api/schemas"
	"github.com/openrover/btnav/internal/bt"
)

// PortDirection is the blackboard key the node writes its turn hint to.
const PortDirection = "direction"

// IsInFrontConfig is the node's construction-time configuration. It is fixed
// for the node's lifetime; only the perception snapshot varies per tick.
type IsInFrontConfig struct {
	// Target is the descriptor matched against detections.
	Target string
	// Confidence is the minimum confidence for a match.
	Confidence float64
	// What selects the detector pipeline ("person" or "object"); anything
	// else degrades to "object".
	What string
	// EntityID names the confirmation transform for an in-front detection.
	EntityID string
	// AngularToleranceDeg widens or narrows the in-front band; zero means
	// the default 5 degrees.
	AngularToleranceDeg float64
}

// IsInFront is the behavior-tree condition node deciding whether the best
// matching detection sits in front of the robot. It is stateless per tick.
type IsInFront struct {
	bb         *bt.Blackboard
	selector   *Selector
	classifier *Classifier
	logger     *zap.Logger
}

// NewIsInFront builds the node and activates the requested detector
// pipeline. An unrecognized category degrades to the object pipeline with a
// warning; construction never fails.
func NewIsInFront(bb *bt.Blackboard, source Source, publisher ConfirmationPublisher, cfg IsInFrontConfig, logger *zap.Logger) *IsInFront {
	logger = logger.Named("is_in_front")

	class, known := schemas.ParseDetectionClass(cfg.What)
	if !known {
		logger.Warn("unknown detection category, activating generic object detection",
			zap.String("what", cfg.What))
	}
	source.Activate(class)

	return &IsInFront{
		bb:         bb,
		selector:   NewSelector(source, cfg.Target, cfg.Confidence, logger),
		classifier: NewClassifier(publisher, cfg.AngularToleranceDeg, cfg.EntityID, logger),
		logger:     logger,
	}
}

// Name implements bt.Node.
func (n *IsInFront) Name() string { return "IsInFront" }

// Tick implements bt.Node. It writes the integer direction output every
// tick and succeeds only when the selected detection is in front.
func (n *IsInFront) Tick(ctx context.Context) bt.Status {
	n.logger.Debug("IsInFront ticked")

	det, ok := n.selector.Select()
	if !ok {
		// No detections: default the scan hint to turning right.
		n.logger.Error("no detections found")
		n.bb.Set(PortDirection, DirectionNoTarget.Code())
		return bt.StatusFailure
	}

	dir := n.classifier.Classify(det)
	n.bb.Set(PortDirection, dir.Code())

	if dir == DirectionInFront {
		return bt.StatusSuccess
	}
	return bt.StatusFailure
}
