// File: internal/percept/selector.go
package percept

import (
	"go.uber.org/zap"

	"github.com/openrover/btnav/api/schemas"
)

// Selector picks the detection the rest of the node reasons about. The
// collaborator's ranking is trusted as-is; the selector never re-sorts.
type Selector struct {
	source        Source
	descriptor    string
	minConfidence float64
	logger        *zap.Logger
}

// NewSelector creates a selector for a fixed target descriptor and
// confidence threshold.
func NewSelector(source Source, descriptor string, minConfidence float64, logger *zap.Logger) *Selector {
	return &Selector{
		source:        source,
		descriptor:    descriptor,
		minConfidence: minConfidence,
		logger:        logger.Named("selector"),
	}
}

// Select returns the highest-priority matching detection, or ok=false when
// the perception collaborator currently reports no match.
func (s *Selector) Select() (schemas.Detection, bool) {
	detections := s.source.ByFeatures(s.descriptor, s.minConfidence)
	if len(detections) == 0 {
		return schemas.Detection{}, false
	}
	return detections[0], true
}
