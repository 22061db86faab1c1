package estimator

import (
	"fmt"

	"github.com/GriffinCanCode/expdata/internal/providers/uncertainty/common"
	"gonum.org/v1/gonum/stat/distuv"
)

const (
	// MinSamples and MaxSamples bound the critical-value table.
	MinSamples = 1
	MaxSamples = 20
)

// tCritical95 maps sample count n to the two-sided 95% Student's-t critical
// value for n-1 degrees of freedom. Index 0 is a sentinel; index 1 has zero
// degrees of freedom and no finite value.
var tCritical95 = [MaxSamples + 1]float64{
	0,
	0,
	12.706, // n=2
	4.303,
	3.182,
	2.776, // n=5
	2.571,
	2.447,
	2.365,
	2.306,
	2.262, // n=10
	2.228,
	2.201,
	2.179,
	2.160,
	2.145, // n=15
	2.131,
	2.120,
	2.110,
	2.101,
	2.093, // n=20
}

// CriticalValue returns the tabulated 95% critical value for n samples.
func CriticalValue(n int) (float64, error) {
	if n < MinSamples || n > MaxSamples {
		return 0, fmt.Errorf("%w: n=%d not in [%d,%d]", common.ErrTableRange, n, MinSamples, MaxSamples)
	}
	if n < 2 {
		return 0, fmt.Errorf("%w: statistical component needs at least 2 samples, got %d", common.ErrInvalidInput, n)
	}
	return tCritical95[n], nil
}

// CriticalValueExact computes the 95% two-sided critical value for n samples
// from the Student's-t quantile function. It is not limited to the table and
// is meant for diagnostics; the construction paths always use CriticalValue.
func CriticalValueExact(n int) (float64, error) {
	if n < 2 {
		return 0, fmt.Errorf("%w: statistical component needs at least 2 samples, got %d", common.ErrInvalidInput, n)
	}
	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(n - 1)}
	return dist.Quantile(0.975), nil
}
