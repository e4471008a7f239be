package nav

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/openrover/btnav/api/schemas"
)

// -- Action Client Mock --

// MockActionClient mocks the navigation dispatch collaborator.
type MockActionClient struct {
	mock.Mock
	results chan schemas.GoalResult
}

func NewMockActionClient() *MockActionClient {
	return &MockActionClient{results: make(chan schemas.GoalResult, 4)}
}

func (m *MockActionClient) WaitReady(ctx context.Context, timeout time.Duration) bool {
	args := m.Called(ctx, timeout)
	return args.Bool(0)
}

func (m *MockActionClient) Submit(ctx context.Context, goal schemas.NavigationGoal) error {
	args := m.Called(ctx, goal)
	return args.Error(0)
}

func (m *MockActionClient) Results() <-chan schemas.GoalResult {
	return m.results
}

// Deliver queues a terminal outcome as if the action server reported it.
func (m *MockActionClient) Deliver(res schemas.GoalResult) {
	m.results <- res
}

// -- Goal Source Mock --

// MockGoalSource mocks goal construction.
type MockGoalSource struct {
	mock.Mock
}

func (m *MockGoalSource) Build(p GoalParams) (schemas.NavigationGoal, error) {
	args := m.Called(p)
	if args.Get(0) == nil {
		return schemas.NavigationGoal{}, args.Error(1)
	}
	return args.Get(0).(schemas.NavigationGoal), args.Error(1)
}

// -- Recorder Mock --

// MockRecorder mocks the goal journal.
type MockRecorder struct {
	mock.Mock
}

func (m *MockRecorder) RecordDispatch(ctx context.Context, goal schemas.NavigationGoal) error {
	args := m.Called(ctx, goal)
	return args.Error(0)
}

func (m *MockRecorder) RecordOutcome(ctx context.Context, result schemas.GoalResult) error {
	args := m.Called(ctx, result)
	return args.Error(0)
}

// -- Transform Lookup Mock --

// MockLookuper mocks the transform collaborator.
type MockLookuper struct {
	mock.Mock
}

func (m *MockLookuper) Lookup(target, source string) (schemas.TransformStamped, error) {
	args := m.Called(target, source)
	if args.Get(0) == nil {
		return schemas.TransformStamped{}, args.Error(1)
	}
	return args.Get(0).(schemas.TransformStamped), args.Error(1)
}

// -- Document Generator Mock --

// MockDocumentGenerator mocks the route-override generator.
type MockDocumentGenerator struct {
	mock.Mock
}

func (m *MockDocumentGenerator) Generate(distanceTolerance float64) (string, error) {
	args := m.Called(distanceTolerance)
	return args.String(0), args.Error(1)
}
