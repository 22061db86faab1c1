// Package estimator turns repeated measurements into a best estimate and a
// combined uncertainty.
//
// The statistical component is the sample standard deviation scaled by the
// 95% Student's-t critical value over sqrt(n). The instrumental component is
// the stated tolerance divided by a confidence divisor (1.05 by default). The
// two are independent and combined as sqrt(a^2 + b^2).
//
// Sample counts are limited to the critical-value table, 1 through 20, and
// the statistical component needs at least two samples.
package estimator
