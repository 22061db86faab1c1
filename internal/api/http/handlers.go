package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/expdata/internal/api/middleware"
	"github.com/GriffinCanCode/expdata/internal/infrastructure/logging"
	"github.com/GriffinCanCode/expdata/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/expdata/internal/service"
	"github.com/GriffinCanCode/expdata/internal/types"
)

const (
	discoverLimit   = 5
	maxToolIDLength = 128
)

// Handlers serves the calculation API
type Handlers struct {
	registry *service.Registry
	metrics  *monitoring.Metrics
	logger   *logging.Logger
}

// NewHandlers creates the HTTP handlers
func NewHandlers(registry *service.Registry, metrics *monitoring.Metrics, logger *logging.Logger) *Handlers {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Handlers{
		registry: registry,
		metrics:  metrics,
		logger:   logger.Component("http"),
	}
}

// Health reports liveness and registry stats
func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":           "healthy",
		"service_registry": h.registry.Stats(),
	})
}

// ListServices lists registered services, optionally filtered by category
func (h *Handlers) ListServices(c *gin.Context) {
	var category *types.Category
	if raw := c.Query("category"); raw != "" {
		cat := types.Category(raw)
		if !cat.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown category: " + raw})
			return
		}
		category = &cat
	}

	c.JSON(http.StatusOK, gin.H{
		"services": h.registry.List(category),
		"stats":    h.registry.Stats(),
	})
}

// GetService returns one service definition
func (h *Handlers) GetService(c *gin.Context) {
	provider, ok := h.registry.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "service not found"})
		return
	}
	c.JSON(http.StatusOK, provider.Definition())
}

// DiscoverServices ranks services against a free-text query
func (h *Handlers) DiscoverServices(c *gin.Context) {
	var req types.DiscoverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"query":    req.Query,
		"services": h.registry.Discover(req.Query, discoverLimit),
	})
}

// ExecuteService executes a service tool
func (h *Handlers) ExecuteService(c *gin.Context) {
	var req types.ExecuteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(req.ToolID) > maxToolIDLength || strings.TrimSpace(req.ToolID) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid tool_id"})
		return
	}

	rid := middleware.GetRequestID(c)
	clientIP := c.ClientIP()
	appCtx := &types.Context{RequestID: &rid, ClientIP: &clientIP}

	timer := monitoring.NewTimer(h.metrics, req.ToolID)
	result, err := h.registry.Execute(c.Request.Context(), req.ToolID, req.Params, appCtx)
	if err != nil {
		timer.Stop("unknown_tool")
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, service.ErrServiceNotFound):
			status = http.StatusNotFound
		case errors.Is(err, service.ErrInvalidToolID):
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	status := resultStatus(result)
	timer.Stop(status)
	if result.Success {
		if rel, ok := result.Data["relativeUncertainty"].(float64); ok {
			h.metrics.ObserveRelativeUncertainty(req.ToolID, rel)
		}
	} else {
		h.logger.Debug("Tool call failed",
			zap.String("request_id", rid),
			zap.String("tool", req.ToolID),
			zap.String("kind", status),
			zap.Stringp("error", result.Error),
		)
	}

	c.JSON(http.StatusOK, result)
}

// Metrics returns the JSON metrics snapshot alongside registry stats
func (h *Handlers) Metrics(c *gin.Context) {
	snap := h.metrics.Snapshot()

	var avgLatencyMs, errorRate float64
	if snap.TotalRequests > 0 {
		avgLatencyMs = snap.TotalDuration / float64(snap.TotalRequests) * 1000
		errorRate = float64(snap.TotalErrors) / float64(snap.TotalRequests)
	}

	c.JSON(http.StatusOK, gin.H{
		"backend":  snap,
		"registry": h.registry.Stats(),
		"summary": gin.H{
			"average_latency_ms": avgLatencyMs,
			"error_rate":         errorRate,
			"uptime_seconds":     snap.UptimeSeconds,
		},
	})
}

// resultStatus labels a tool result with "ok" or the failure kind
func resultStatus(result *types.Result) string {
	if result.Success {
		return "ok"
	}
	if kind, ok := result.Data["kind"].(string); ok && kind != "" {
		return kind
	}
	return "failed"
}
