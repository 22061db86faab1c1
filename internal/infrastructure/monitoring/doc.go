/*
Package monitoring provides Prometheus metrics for the expdata backend.

# Overview

Metrics live on a private prometheus.Registry so several servers (and tests)
can coexist in one process. They cover HTTP traffic, tool calls by outcome,
and the spread of relative uncertainty in returned quantities.

# Usage

	metrics := monitoring.NewMetrics()
	router.Use(monitoring.Middleware(metrics))

	timer := monitoring.NewTimer(metrics, "uncertainty.multiply")
	// ... execute tool ...
	timer.Stop("ok")

# Metrics Endpoint

	router.GET("/metrics", gin.WrapH(metrics.Handler()))
*/
package monitoring
