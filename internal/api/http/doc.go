// Package http exposes the service registry over a JSON API.
//
// Domain failures of a tool (bad input, division by zero) are reported with
// status 200 and success=false, the same shape every provider returns.
// Transport problems such as malformed JSON or unknown services use 4xx.
package http
