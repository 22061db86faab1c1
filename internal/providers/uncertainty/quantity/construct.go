package quantity

import (
	"fmt"

	"github.com/GriffinCanCode/expdata/internal/providers/uncertainty/common"
	"github.com/GriffinCanCode/expdata/internal/providers/uncertainty/estimator"
)

// Options describes what a caller knows about a measurement. Any
// self-consistent subset works: {Samples}, {Mean, N, Sigma} or
// {Mean, Uncertainty}. Nil fields are unknown. InstrumentTolerance is
// always required.
type Options struct {
	Mean        *float64
	Samples     []float64
	N           *int
	Sigma       *float64
	Uncertainty *float64

	InstrumentTolerance *float64
	// ConfidenceDivisor of 0 selects estimator.DefaultConfidenceDivisor.
	ConfidenceDivisor float64
}

// Float returns a pointer to v for Options fields.
func Float(v float64) *float64 { return &v }

// Int returns a pointer to v for Options fields.
func Int(v int) *int { return &v }

func (o Options) divisor() float64 {
	if o.ConfidenceDivisor == 0 {
		return estimator.DefaultConfidenceDivisor
	}
	return o.ConfidenceDivisor
}

// FromSummary resolves opts into a Quantity. The mean comes from Mean or, if
// absent, from Samples. The uncertainty comes from Uncertainty, else from
// Samples, else from {N, Sigma}.
func FromSummary(opts Options) (Quantity, error) {
	if opts.InstrumentTolerance == nil {
		return Quantity{}, fmt.Errorf("%w: instrument tolerance required", common.ErrInvalidInput)
	}
	d := *opts.InstrumentTolerance
	if err := common.ValidateNumber(d, "instrument tolerance"); err != nil {
		return Quantity{}, err
	}
	if d < 0 {
		return Quantity{}, fmt.Errorf("%w: instrument tolerance must be >= 0, got %g", common.ErrInvalidInput, d)
	}

	var mean float64
	switch {
	case opts.Mean != nil:
		mean = *opts.Mean
	case opts.Samples != nil:
		m, err := estimator.Mean(opts.Samples)
		if err != nil {
			return Quantity{}, err
		}
		mean = m
	default:
		return Quantity{}, fmt.Errorf("%w: not enough arguments: need mean or samples", common.ErrInvalidInput)
	}

	if opts.Uncertainty != nil {
		return New(mean, *opts.Uncertainty)
	}

	c := opts.divisor()
	switch {
	case opts.Samples != nil:
		u, err := estimator.CombinedUncertainty(opts.Samples, d, c)
		if err != nil {
			return Quantity{}, err
		}
		return New(mean, u)
	case opts.Sigma != nil && opts.N != nil:
		u, err := estimator.CombinedUncertaintyFromSummary(*opts.N, *opts.Sigma, d, c)
		if err != nil {
			return Quantity{}, err
		}
		return New(mean, u)
	case opts.Sigma == nil:
		return Quantity{}, fmt.Errorf("%w: not enough arguments: need uncertainty, samples or sigma", common.ErrInvalidInput)
	default:
		return Quantity{}, fmt.Errorf("%w: not enough arguments: sigma needs n", common.ErrInvalidInput)
	}
}

// FromSamples builds a Quantity from repeated measurements taken with an
// instrument of tolerance d. A c of 0 selects the default divisor.
func FromSamples(samples []float64, d, c float64) (Quantity, error) {
	if samples == nil {
		samples = []float64{}
	}
	return FromSummary(Options{Samples: samples, InstrumentTolerance: &d, ConfidenceDivisor: c})
}

// FromSingleReading builds a Quantity from one reading x. Only the
// instrumental component d/c applies.
func FromSingleReading(x, d, c float64) (Quantity, error) {
	if c == 0 {
		c = estimator.DefaultConfidenceDivisor
	}
	u, err := estimator.Instrumental(d, c)
	if err != nil {
		return Quantity{}, err
	}
	return FromSummary(Options{Mean: &x, Uncertainty: &u, InstrumentTolerance: &d})
}
