package service

import (
	"context"
	"testing"

	"github.com/GriffinCanCode/expdata/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockProvider struct {
	id       string
	category types.Category
	lastTool string
}

func (m *mockProvider) Definition() types.Service {
	category := m.category
	if category == "" {
		category = types.CategoryMeasurement
	}
	return types.Service{
		ID:           m.id,
		Name:         "Mock Service",
		Description:  "A mock service for propagation tests",
		Category:     category,
		Capabilities: []string{"combined_uncertainty"},
		Tools: []types.Tool{
			{
				ID:          m.id + ".test",
				Name:        "Test Tool",
				Description: "A test tool",
				Returns:     "string",
			},
		},
	}
}

func (m *mockProvider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	m.lastTool = toolID
	return &types.Result{
		Success: true,
		Data:    map[string]interface{}{"result": "success"},
	}, nil
}

func TestRegister(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(&mockProvider{id: "test"}))

	_, ok := r.Get("test")
	assert.True(t, ok, "service should be registered")

	assert.Error(t, r.Register(&mockProvider{id: ""}))
	assert.Error(t, r.Register(&mockProvider{id: "a.b"}))

	r.Unregister("test")
	_, ok = r.Get("test")
	assert.False(t, ok)
}

func TestList(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(&mockProvider{id: "test2"}))
	require.NoError(t, r.Register(&mockProvider{id: "test1"}))
	require.NoError(t, r.Register(&mockProvider{id: "stats", category: types.CategoryStatistics}))

	services := r.List(nil)
	require.Len(t, services, 3)
	assert.Equal(t, "stats", services[0].ID)
	assert.Equal(t, "test1", services[1].ID)

	cat := types.CategoryMeasurement
	assert.Len(t, r.List(&cat), 2)
}

func TestDiscover(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(&mockProvider{id: "propagate"}))
	require.NoError(t, r.Register(&mockProvider{id: "other", category: types.CategoryStatistics}))

	results := r.Discover("propagate combined uncertainty", 5)
	require.NotEmpty(t, results)
	assert.Equal(t, "propagate", results[0].ID)

	assert.Len(t, r.Discover("propagation tests", 1), 1)
	assert.Empty(t, r.Discover("zzz", 5))
}

func TestExecute(t *testing.T) {
	r := NewRegistry()
	p := &mockProvider{id: "test"}
	require.NoError(t, r.Register(p))
	ctx := context.Background()

	result, err := r.Execute(ctx, "test.test", map[string]interface{}{}, nil)
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "test.test", p.lastTool)

	result, err = r.Execute(ctx, "missing.tool", nil, nil)
	assert.ErrorIs(t, err, ErrServiceNotFound)
	assert.False(t, result.Success)

	_, err = r.Execute(ctx, "notool", nil, nil)
	assert.ErrorIs(t, err, ErrInvalidToolID)
}

func TestStats(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(&mockProvider{id: "test1"}))
	require.NoError(t, r.Register(&mockProvider{id: "test2"}))

	stats := r.Stats()
	assert.Equal(t, 2, stats["total_services"])
	assert.Equal(t, 2, stats["total_tools"])
	assert.Equal(t, map[string]int{"measurement": 2}, stats["categories"])
}
