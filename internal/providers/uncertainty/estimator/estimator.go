package estimator

import (
	"fmt"
	"math"

	"github.com/GriffinCanCode/expdata/internal/providers/uncertainty/common"
	"gonum.org/v1/gonum/stat"
)

// DefaultConfidenceDivisor converts an instrument tolerance into a
// one-standard-deviation equivalent.
const DefaultConfidenceDivisor = 1.05

// Summary holds the descriptive statistics of a sample set.
type Summary struct {
	N      int     `json:"n"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"stdDev"`
}

// Components breaks a combined uncertainty into its independent sources.
type Components struct {
	Statistical  float64 `json:"statistical"`
	Instrumental float64 `json:"instrumental"`
	Combined     float64 `json:"combined"`
}

// Mean returns the arithmetic mean of samples.
func Mean(samples []float64) (float64, error) {
	if len(samples) == 0 {
		return 0, fmt.Errorf("%w: mean of empty sample set", common.ErrInvalidInput)
	}
	if err := common.ValidateNumbers(samples, "samples"); err != nil {
		return 0, err
	}
	return stat.Mean(samples, nil), nil
}

// SampleStdDev returns the Bessel-corrected sample standard deviation.
func SampleStdDev(samples []float64) (float64, error) {
	if len(samples) < 2 {
		return 0, fmt.Errorf("%w: standard deviation needs at least 2 samples, got %d", common.ErrInvalidInput, len(samples))
	}
	if err := common.ValidateNumbers(samples, "samples"); err != nil {
		return 0, err
	}
	return stat.StdDev(samples, nil), nil
}

// Summarize computes count, mean and sample standard deviation in one pass
// over the validated samples.
func Summarize(samples []float64) (Summary, error) {
	if len(samples) < 2 {
		return Summary{}, fmt.Errorf("%w: summary needs at least 2 samples, got %d", common.ErrInvalidInput, len(samples))
	}
	if err := common.ValidateNumbers(samples, "samples"); err != nil {
		return Summary{}, err
	}
	mean, std := stat.MeanStdDev(samples, nil)
	return Summary{N: len(samples), Mean: mean, StdDev: std}, nil
}

// Instrumental converts a stated tolerance d into an uncertainty using the
// confidence divisor c.
func Instrumental(d, c float64) (float64, error) {
	if err := common.ValidateNumber(d, "instrument tolerance"); err != nil {
		return 0, err
	}
	if d < 0 {
		return 0, fmt.Errorf("%w: instrument tolerance must be >= 0, got %g", common.ErrInvalidInput, d)
	}
	if err := common.ValidateNumber(c, "confidence divisor"); err != nil {
		return 0, err
	}
	if c <= 0 {
		return 0, fmt.Errorf("%w: confidence divisor must be > 0, got %g", common.ErrInvalidInput, c)
	}
	return d / c, nil
}

// CombinedUncertainty combines the statistical spread of samples with the
// instrument tolerance d in quadrature.
func CombinedUncertainty(samples []float64, d, c float64) (float64, error) {
	n := len(samples)
	if n > MaxSamples {
		return 0, fmt.Errorf("%w: n=%d not in [%d,%d]", common.ErrTableRange, n, MinSamples, MaxSamples)
	}
	sigma, err := SampleStdDev(samples)
	if err != nil {
		return 0, err
	}
	return CombinedUncertaintyFromSummary(n, sigma, d, c)
}

// CombinedUncertaintyFromSummary is CombinedUncertainty for callers that only
// have the sample count and standard deviation.
func CombinedUncertaintyFromSummary(n int, sigma, d, c float64) (float64, error) {
	parts, err := CombinedComponents(n, sigma, d, c)
	if err != nil {
		return 0, err
	}
	return parts.Combined, nil
}

// CombinedComponents returns the statistical, instrumental and combined
// uncertainty for n samples with standard deviation sigma.
func CombinedComponents(n int, sigma, d, c float64) (Components, error) {
	tc, err := CriticalValue(n)
	if err != nil {
		return Components{}, err
	}
	if err := common.ValidateNumber(sigma, "sigma"); err != nil {
		return Components{}, err
	}
	if sigma < 0 {
		return Components{}, fmt.Errorf("%w: sigma must be >= 0, got %g", common.ErrInvalidInput, sigma)
	}
	deltaB, err := Instrumental(d, c)
	if err != nil {
		return Components{}, err
	}

	deltaA := sigma * tc / math.Sqrt(float64(n))
	return Components{
		Statistical:  deltaA,
		Instrumental: deltaB,
		Combined:     math.Sqrt(deltaA*deltaA + deltaB*deltaB),
	}, nil
}
