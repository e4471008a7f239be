package percept

import (
	"context"
	"testing"

	fuzz "github.com/AdaLogics/go-fuzz-headers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap/zaptest"

	"github.com/openrover/btnav/api/schemas"
	"github.com/openrover/btnav/internal/bt"
)

func newInFrontNode(t *testing.T, source *MockSource, publisher *MockPublisher, cfg IsInFrontConfig) (*IsInFront, *bt.Blackboard) {
	t.Helper()
	bb := bt.NewBlackboard()
	return NewIsInFront(bb, source, publisher, cfg, zaptest.NewLogger(t)), bb
}

func TestIsInFront_ActivatesRequestedPipeline(t *testing.T) {
	source := &MockSource{}
	source.On("Activate", schemas.ClassPerson).Once()

	newInFrontNode(t, source, &MockPublisher{}, IsInFrontConfig{What: "person"})
	source.AssertExpectations(t)
}

func TestIsInFront_UnknownCategoryDegradesToObject(t *testing.T) {
	source := &MockSource{}
	source.On("Activate", schemas.ClassObject).Once()

	newInFrontNode(t, source, &MockPublisher{}, IsInFrontConfig{What: "poltergeist"})
	source.AssertExpectations(t)
}

func TestIsInFront_NoDetections(t *testing.T) {
	source := &MockSource{}
	source.On("Activate", mock.Anything)
	source.On("ByFeatures", "chair", 0.6).Return(nil)
	publisher := &MockPublisher{}

	node, bb := newInFrontNode(t, source, publisher, IsInFrontConfig{
		Target:     "chair",
		Confidence: 0.6,
		What:       "object",
	})

	status := node.Tick(context.Background())

	assert.Equal(t, bt.StatusFailure, status)
	code, ok := bb.GetInt(PortDirection)
	assert.True(t, ok, "direction is written even with nothing detected")
	assert.Equal(t, -1, code, "an empty scene defaults the scan hint to the right")
	publisher.AssertNotCalled(t, "PublishConfirmation", mock.Anything, mock.Anything)
}

func TestIsInFront_TargetAhead(t *testing.T) {
	det := detectionAtBearing(2)
	source := &MockSource{}
	source.On("Activate", mock.Anything)
	source.On("ByFeatures", "backpack", 0.6).Return([]schemas.Detection{det})
	publisher := &MockPublisher{}
	publisher.On("PublishConfirmation", det, "target_entity").Once()

	node, bb := newInFrontNode(t, source, publisher, IsInFrontConfig{
		Target:     "backpack",
		Confidence: 0.6,
		What:       "object",
		EntityID:   "target_entity",
	})

	status := node.Tick(context.Background())

	assert.Equal(t, bt.StatusSuccess, status)
	code, _ := bb.GetInt(PortDirection)
	assert.Equal(t, 0, code)
	publisher.AssertExpectations(t)
}

func TestIsInFront_TargetOffAxis(t *testing.T) {
	cases := []struct {
		name       string
		bearingDeg float64
		wantCode   int
	}{
		{"target to the left", 30, 1},
		{"target to the right", -30, -1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			det := detectionAtBearing(tc.bearingDeg)
			source := &MockSource{}
			source.On("Activate", mock.Anything)
			source.On("ByFeatures", mock.Anything, mock.Anything).Return([]schemas.Detection{det})
			publisher := &MockPublisher{}

			node, bb := newInFrontNode(t, source, publisher, IsInFrontConfig{What: "object"})

			status := node.Tick(context.Background())

			assert.Equal(t, bt.StatusFailure, status)
			code, _ := bb.GetInt(PortDirection)
			assert.Equal(t, tc.wantCode, code)
			publisher.AssertNotCalled(t, "PublishConfirmation", mock.Anything, mock.Anything)
		})
	}
}

// FuzzIsInFront_Tick checks the status/direction contract over arbitrary
// detections: SUCCESS if and only if the direction code is 0, and the code is
// always one of {-1, 0, 1}.
func FuzzIsInFront_Tick(f *testing.F) {
	f.Fuzz(func(t *testing.T, data []byte) {
		fuzzConsumer := fuzz.NewConsumer(data)
		det := schemas.Detection{}
		if err := fuzzConsumer.GenerateStruct(&det); err != nil {
			return // Ignore inputs that can't be mapped to the struct.
		}

		source := &MockSource{}
		source.On("Activate", mock.Anything)
		source.On("ByFeatures", mock.Anything, mock.Anything).Return([]schemas.Detection{det})
		publisher := &MockPublisher{}
		publisher.On("PublishConfirmation", mock.Anything, mock.Anything).Maybe()

		bb := bt.NewBlackboard()
		node := NewIsInFront(bb, source, publisher, IsInFrontConfig{What: "object"}, zaptest.NewLogger(t))

		status := node.Tick(context.Background())

		code, ok := bb.GetInt(PortDirection)
		if !ok {
			t.Fatal("direction port not written")
		}
		if code < -1 || code > 1 {
			t.Fatalf("direction code out of range: %d", code)
		}
		if (status == bt.StatusSuccess) != (code == 0) {
			t.Fatalf("status %v inconsistent with direction code %d", status, code)
		}
	})
}
