package percept

import (
	"github.com/stretchr/testify/mock"

	"github.com/openrover/btnav/api/schemas"
)

// -- Source Mock --

// MockSource mocks the perception collaborator.
type MockSource struct {
	mock.Mock
}

func (m *MockSource) Activate(class schemas.DetectionClass) {
	m.Called(class)
}

func (m *MockSource) ByFeatures(descriptor string, minConfidence float64) []schemas.Detection {
	args := m.Called(descriptor, minConfidence)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]schemas.Detection)
}

// -- Confirmation Publisher Mock --

// MockPublisher mocks the confirmation-transform publisher.
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishConfirmation(det schemas.Detection, entityID string) {
	m.Called(det, entityID)
}
