// Package service provides the registry that routes tool calls to providers.
//
// Tool IDs have the form "<service>.<tool>"; the registry looks up the
// provider by the part before the first dot and hands it the full ID.
//
// Example Usage:
//
//	registry := service.NewRegistry()
//	registry.Register(uncertainty.NewProvider(0))
//	result, err := registry.Execute(ctx, "uncertainty.add", params, appCtx)
package service
