package common

import "errors"

// Error kinds reported by the estimator and quantity packages. Call sites wrap
// them with context, so compare with errors.Is.
var (
	// ErrInvalidInput reports missing, insufficient or malformed arguments.
	ErrInvalidInput = errors.New("invalid input")

	// ErrTableRange reports a sample count with no critical-value entry.
	ErrTableRange = errors.New("sample count outside critical-value table")

	// ErrDivisionByZero reports a zero divisor mean.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrUndefined reports a result with no defined value, such as the
	// relative uncertainty of a zero mean.
	ErrUndefined = errors.New("undefined result")
)

// Kind names the error kind of err for results and metric labels.
func Kind(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrInvalidInput):
		return "invalid_input"
	case errors.Is(err, ErrTableRange):
		return "table_range"
	case errors.Is(err, ErrDivisionByZero):
		return "division_by_zero"
	case errors.Is(err, ErrUndefined):
		return "undefined"
	default:
		return "internal"
	}
}
