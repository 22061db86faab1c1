// Package testutil provides testing utilities and helpers for backend tests.
package testutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/GriffinCanCode/expdata/internal/types"
)

// MockServiceProvider is a mock implementation of service.Provider for testing.
type MockServiceProvider struct {
	mock.Mock
}

// Definition mocks the Definition method.
func (m *MockServiceProvider) Definition() types.Service {
	args := m.Called()
	return args.Get(0).(types.Service)
}

// Execute mocks the Execute method.
func (m *MockServiceProvider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	args := m.Called(ctx, toolID, params, appCtx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Result), args.Error(1)
}

// NewMockServiceProvider creates a new mock service provider with default behaviors.
func NewMockServiceProvider(t *testing.T, serviceID string) *MockServiceProvider {
	t.Helper()
	m := new(MockServiceProvider)

	m.On("Definition").Return(CreateTestService(t, serviceID, types.CategoryStatistics)).Maybe()

	return m
}

// CreateTestService creates a test service definition.
func CreateTestService(t *testing.T, id string, category types.Category) types.Service {
	t.Helper()

	return types.Service{
		ID:           id,
		Name:         "Test Service",
		Description:  "A test service for unit testing",
		Category:     category,
		Capabilities: []string{"test"},
		Tools: []types.Tool{
			{
				ID:          id + ".test",
				Name:        "test",
				Description: "Test tool",
				Parameters:  []types.Parameter{},
				Returns:     "object",
			},
		},
	}
}

// Q builds a quantity parameter object.
func Q(mean, uncertainty float64) map[string]interface{} {
	return map[string]interface{}{"mean": mean, "uncertainty": uncertainty}
}

// AssertSuccess is a helper to assert a successful result.
func AssertSuccess(t *testing.T, result *types.Result) {
	t.Helper()
	if result == nil {
		t.Fatal("Result is nil")
	}
	if !result.Success {
		msg := "<nil>"
		if result.Error != nil {
			msg = *result.Error
		}
		t.Fatalf("Expected success, got error: %s", msg)
	}
}

// AssertError is a helper to assert an error result.
func AssertError(t *testing.T, result *types.Result) {
	t.Helper()
	if result == nil {
		t.Fatal("Result is nil")
	}
	if result.Success {
		t.Fatal("Expected error, got success")
	}
	if result.Error == nil {
		t.Fatal("Expected error message, got nil")
	}
}

// AssertKind asserts a failed result carrying the given error kind.
func AssertKind(t *testing.T, result *types.Result, kind string) {
	t.Helper()
	AssertError(t, result)
	if got, _ := result.Data["kind"].(string); got != kind {
		t.Fatalf("Expected kind %q, got %q (error: %s)", kind, got, *result.Error)
	}
}

// AssertFloatField asserts a numeric data field within delta.
func AssertFloatField(t *testing.T, result *types.Result, field string, expected, delta float64) {
	t.Helper()
	AssertSuccess(t, result)

	actual, ok := result.Data[field].(float64)
	if !ok {
		t.Fatalf("Field %s not found or not a float in result data: %v", field, result.Data[field])
	}
	if diff := actual - expected; diff > delta || diff < -delta {
		t.Fatalf("Field %s: expected %v ± %v, got %v", field, expected, delta, actual)
	}
}
