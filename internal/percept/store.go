// File: internal/percept/store.go
package percept

import (
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/openrover/btnav/api/schemas"
	"github.com/openrover/btnav/internal/tf"
)

// BaseFrame is the robot body frame confirmation transforms are parented to.
const BaseFrame = "base_link"

// Store is the in-process perception collaborator. Detector feeds replace
// the snapshot wholesale; readers always observe a consistent slice. It also
// implements ConfirmationPublisher by broadcasting an entity transform into
// the transform tree.
type Store struct {
	mu     sync.RWMutex
	latest []schemas.Detection
	active schemas.DetectionClass

	broadcaster tf.Broadcaster
	logger      *zap.Logger
}

// NewStore creates an empty store publishing confirmations through the given
// broadcaster.
func NewStore(broadcaster tf.Broadcaster, logger *zap.Logger) *Store {
	return &Store{
		broadcaster: broadcaster,
		logger:      logger.Named("percept_store"),
	}
}

// Activate implements Source.
func (s *Store) Activate(class schemas.DetectionClass) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = class
	s.logger.Info("detection pipeline activated", zap.String("class", string(class)))
}

// SetDetections atomically replaces the current snapshot. Ordering is kept
// as supplied; the feed is expected to rank best-first.
func (s *Store) SetDetections(detections []schemas.Detection) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.latest = detections
}

// ByFeatures implements Source. Matching is by activated class and by label,
// case-insensitively; an empty descriptor matches any label.
func (s *Store) ByFeatures(descriptor string, minConfidence float64) []schemas.Detection {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []schemas.Detection
	for _, det := range s.latest {
		if s.active != "" && det.Class != s.active {
			continue
		}
		if det.Confidence < minConfidence {
			continue
		}
		if descriptor != "" && !strings.EqualFold(det.Label, descriptor) {
			continue
		}
		out = append(out, det)
	}
	return out
}

// PublishConfirmation implements ConfirmationPublisher. The entity transform
// is parented to the robot body frame with the detection's center as
// translation.
func (s *Store) PublishConfirmation(det schemas.Detection, entityID string) {
	s.broadcaster.Set(schemas.TransformStamped{
		ParentFrame: BaseFrame,
		ChildFrame:  entityID,
		Stamp:       det.At,
		Transform: schemas.Transform{
			Translation: det.Center3D,
			Rotation:    schemas.IdentityQuaternion(),
		},
	})
	s.logger.Debug("published confirmation transform",
		zap.String("entity", entityID),
		zap.String("detection", det.ID))
}
