// Package common holds the pieces shared by the uncertainty service modules.
//
// It defines the error kinds used across the estimator and quantity packages:
//   - ErrInvalidInput: missing or insufficient construction arguments
//   - ErrTableRange: sample count outside the critical-value table
//   - ErrDivisionByZero: divisor with a zero mean
//   - ErrUndefined: results with no defined value
//
// and the parameter helpers tool handlers use to read loosely typed JSON
// params (GetNumber, GetNumbers, GetObject) and build types.Result values.
package common
