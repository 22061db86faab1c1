package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/expdata/internal/infrastructure/config"
	"github.com/GriffinCanCode/expdata/internal/infrastructure/logging"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	cfg := config.Default()
	cfg.Logging.Development = true
	srv, err := NewServer(cfg, logging.NewNop())
	require.NoError(t, err)
	return srv
}

func TestNewServerRejectsInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Estimator.ConfidenceDivisor = 0
	_, err := NewServer(cfg, logging.NewNop())
	assert.Error(t, err)
}

func TestRoutes(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		path string
		want int
	}{
		{"/health", http.StatusOK},
		{"/services", http.StatusOK},
		{"/services/uncertainty", http.StatusOK},
		{"/metrics/json", http.StatusOK},
		{"/nope", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			srv.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))
			assert.Equal(t, tt.want, w.Code)
			assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
		})
	}
}

func TestPrometheusEndpoint(t *testing.T) {
	srv := newTestServer(t)

	body := `{"tool_id":"uncertainty.mean","params":{"samples":[1,2,3]}}`
	req := httptest.NewRequest(http.MethodPost, "/services/execute", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	srv.Router().ServeHTTP(httptest.NewRecorder(), req)

	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "expdata_tool_calls_total")
	assert.Contains(t, w.Body.String(), `tool="uncertainty.mean"`)
}

func TestShutdownBeforeRun(t *testing.T) {
	srv := newTestServer(t)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, srv.Shutdown(ctx))
}

func TestRateLimitModes(t *testing.T) {
	serve := func(srv *Server, addr string) int {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.RemoteAddr = addr
		w := httptest.NewRecorder()
		srv.Router().ServeHTTP(w, req)
		return w.Code
	}

	tests := []struct {
		name   string
		global bool
		want   []int
	}{
		{"per client", false, []int{http.StatusOK, http.StatusOK}},
		{"global", true, []int{http.StatusOK, http.StatusTooManyRequests}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			cfg.RateLimit.RequestsPerSecond = 1
			cfg.RateLimit.Burst = 1
			cfg.RateLimit.Global = tt.global
			srv, err := NewServer(cfg, logging.NewNop())
			require.NoError(t, err)

			got := []int{serve(srv, "10.0.0.1:1"), serve(srv, "10.0.0.2:1")}
			assert.Equal(t, tt.want, got)
		})
	}
}
