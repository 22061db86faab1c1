// Package main is the entry point for the expdata calculation server.
//
// The server exposes the uncertainty toolkit as a JSON API:
//   - GET  /health, /services, /services/:id
//   - POST /services/discover, /services/execute
//   - GET  /metrics (Prometheus), /metrics/json
//
// Configuration:
//   - Environment variables (PORT, HOST, LOG_LEVEL, LOG_DEV, RATE_LIMIT_*,
//     ESTIMATOR_CONFIDENCE_DIVISOR)
//   - CLI flags (override env vars)
//
// Usage:
//
//	./server -port 8000 -divisor 1.05
//	./server -dev
//
// Signals:
//   - SIGINT, SIGTERM: Graceful shutdown
package main
