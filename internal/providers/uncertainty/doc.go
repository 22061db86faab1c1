// Package uncertainty exposes measurement reduction as a registry service.
//
// This package is organized into specialized modules:
//   - statistics: mean, sample standard deviation, critical values, combined uncertainty
//   - operations: quantity construction and propagation (+ - * / ^, sum, product)
//   - estimator: the numeric core behind the statistics tools
//   - quantity: the value-with-uncertainty type behind the operation tools
//
// Quantities travel as {"mean": m, "uncertainty": u} objects. Domain errors
// come back as failed results carrying a "kind" field (invalid_input,
// table_range, division_by_zero, undefined), never as Go errors.
//
// Example Usage:
//
//	p := uncertainty.NewProvider(0)
//	result, err := p.Execute(ctx, "uncertainty.fromSamples", map[string]interface{}{
//	    "samples":   []interface{}{9.8, 9.9, 10.0, 10.1, 10.2},
//	    "tolerance": 0.1,
//	}, nil)
package uncertainty
