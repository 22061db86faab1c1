// Package quantity implements values with uncertainty and the first-order
// propagation rules for + - * / and ^.
//
// Construction goes through FromSummary and its wrappers FromSamples and
// FromSingleReading, or through Constant for exact values. Operands are
// assumed independent; no covariance is tracked.
//
// Example Usage:
//
//	g, err := quantity.FromSamples([]float64{9.8, 9.9, 10.0, 10.1, 10.2}, 0.1, 0)
//	twice, err := quantity.Multiply(quantity.Constant(2), g)
package quantity
