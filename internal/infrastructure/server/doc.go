// Package server assembles the registry, middleware and routes into an
// HTTP server with graceful shutdown.
package server
