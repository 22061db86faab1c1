// Package types provides shared data structures for the expdata backend.
//
// Core Types:
//   - Service: Service provider definition
//   - Tool: Service tool definition
//   - Context: Execution context for operations
//   - Result: Standard operation result
//
// Request Types:
//   - ExecuteRequest: Service tool execution
//   - DiscoverRequest: Service discovery query
package types
