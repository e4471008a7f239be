// File: internal/nav/resolver.go
package nav

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/openrover/btnav/api/schemas"
	"github.com/openrover/btnav/internal/tf"
)

// CoordinateResolver turns leg parameters into a goal pose in the global
// frame. A named reference frame takes precedence over literal coordinates.
type CoordinateResolver struct {
	lookup      tf.Lookuper
	globalFrame string
	logger      *zap.Logger
}

// NewCoordinateResolver creates a resolver using the given transform
// collaborator. globalFrame defaults to the map frame when empty.
func NewCoordinateResolver(lookup tf.Lookuper, globalFrame string, logger *zap.Logger) *CoordinateResolver {
	if globalFrame == "" {
		globalFrame = schemas.GlobalFrame
	}
	return &CoordinateResolver{
		lookup:      lookup,
		globalFrame: globalFrame,
		logger:      logger.Named("resolver"),
	}
}

// Resolve produces the target pose for the leg. When the transform for a
// named reference frame is not available yet, the error wraps
// tf.ErrTransformUnavailable and no pose is fabricated; the caller defers
// the dispatch and retries on a later tick.
func (r *CoordinateResolver) Resolve(p GoalParams) (schemas.PoseStamped, error) {
	if p.ReferenceFrame != "" {
		r.logger.Debug("transforming reference frame",
			zap.String("target", r.globalFrame),
			zap.String("source", p.ReferenceFrame))

		ts, err := r.lookup.Lookup(r.globalFrame, p.ReferenceFrame)
		if err != nil {
			return schemas.PoseStamped{}, fmt.Errorf("resolving frame %q: %w", p.ReferenceFrame, err)
		}

		pose := schemas.PoseFromTransform(ts)
		pose.FrameID = r.globalFrame
		return pose, nil
	}

	r.logger.Debug("using literal coordinates",
		zap.Float64("x", p.X),
		zap.Float64("y", p.Y))

	return schemas.PoseStamped{
		FrameID: r.globalFrame,
		Pose: schemas.Pose{
			Position:    schemas.Vec3{X: p.X, Y: p.Y},
			Orientation: schemas.IdentityQuaternion(),
		},
	}, nil
}
