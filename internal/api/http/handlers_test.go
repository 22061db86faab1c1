package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/expdata/internal/api/middleware"
	"github.com/GriffinCanCode/expdata/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/expdata/internal/providers/uncertainty"
	"github.com/GriffinCanCode/expdata/internal/service"
	"github.com/GriffinCanCode/expdata/internal/types"
)

func setupRouter(t *testing.T) (*gin.Engine, *monitoring.Metrics) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	registry := service.NewRegistry()
	require.NoError(t, registry.Register(uncertainty.NewProvider(0)))
	metrics := monitoring.NewMetrics()
	h := NewHandlers(registry, metrics, nil)

	router := gin.New()
	router.Use(middleware.RequestID())
	router.GET("/health", h.Health)
	router.GET("/services", h.ListServices)
	router.GET("/services/:id", h.GetService)
	router.POST("/services/discover", h.DiscoverServices)
	router.POST("/services/execute", h.ExecuteService)
	router.GET("/metrics/json", h.Metrics)
	return router, metrics
}

func postJSON(t *testing.T, router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestHealth(t *testing.T) {
	router, _ := setupRouter(t)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "healthy", body["status"])
}

func TestListServices(t *testing.T) {
	router, _ := setupRouter(t)

	t.Run("all", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/services", nil))
		require.Equal(t, http.StatusOK, w.Code)
		services := decode(t, w)["services"].([]interface{})
		assert.Len(t, services, 1)
	})

	t.Run("filtered empty", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/services?category=statistics", nil))
		require.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, decode(t, w)["services"])
	})

	t.Run("unknown category", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/services?category=bogus", nil))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetService(t *testing.T) {
	router, _ := setupRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/services/uncertainty", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "uncertainty", decode(t, w)["id"])

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/services/missing", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDiscoverServices(t *testing.T) {
	router, _ := setupRouter(t)

	w := postJSON(t, router, "/services/discover", map[string]interface{}{"query": "propagate uncertainty of a measurement"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, decode(t, w)["services"])

	w = postJSON(t, router, "/services/discover", map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExecuteService(t *testing.T) {
	router, metrics := setupRouter(t)

	t.Run("add", func(t *testing.T) {
		w := postJSON(t, router, "/services/execute", map[string]interface{}{
			"tool_id": "uncertainty.add",
			"params": map[string]interface{}{
				"a": map[string]interface{}{"mean": 10.0, "uncertainty": 0.3},
				"b": map[string]interface{}{"mean": 5.0, "uncertainty": 0.4},
			},
		})
		require.Equal(t, http.StatusOK, w.Code)
		body := decode(t, w)
		assert.Equal(t, true, body["success"])
		data := body["data"].(map[string]interface{})
		assert.InDelta(t, 15.0, data["mean"], 1e-12)
		assert.InDelta(t, 0.5, data["uncertainty"], 1e-12)
		assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
	})

	t.Run("division by zero is a domain failure", func(t *testing.T) {
		w := postJSON(t, router, "/services/execute", map[string]interface{}{
			"tool_id": "uncertainty.divide",
			"params": map[string]interface{}{
				"a": map[string]interface{}{"mean": 1.0, "uncertainty": 0.1},
				"b": map[string]interface{}{"mean": 0.0, "uncertainty": 0.1},
			},
		})
		require.Equal(t, http.StatusOK, w.Code)
		body := decode(t, w)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "division_by_zero", body["data"].(map[string]interface{})["kind"])
	})

	t.Run("unknown service", func(t *testing.T) {
		w := postJSON(t, router, "/services/execute", map[string]interface{}{
			"tool_id": "nope.add",
			"params":  map[string]interface{}{},
		})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("malformed tool id", func(t *testing.T) {
		w := postJSON(t, router, "/services/execute", map[string]interface{}{
			"tool_id": "noservice",
			"params":  map[string]interface{}{},
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing body fields", func(t *testing.T) {
		w := postJSON(t, router, "/services/execute", map[string]interface{}{})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	snap := metrics.Snapshot()
	assert.Equal(t, int64(4), snap.ToolCalls)
	assert.Equal(t, int64(3), snap.ToolFailures)
}

func TestMetricsJSON(t *testing.T) {
	router, _ := setupRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics/json", nil))
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Contains(t, body, "backend")
	assert.Contains(t, body, "registry")
	assert.Contains(t, body, "summary")
}

func TestResultStatus(t *testing.T) {
	msg := "boom"
	assert.Equal(t, "ok", resultStatus(&types.Result{Success: true}))
	assert.Equal(t, "failed", resultStatus(&types.Result{Error: &msg}))
	assert.Equal(t, "undefined", resultStatus(&types.Result{Data: map[string]interface{}{"kind": "undefined"}}))
}
