package statistics

import (
	"context"
	"fmt"

	"github.com/GriffinCanCode/expdata/internal/providers/uncertainty/common"
	"github.com/GriffinCanCode/expdata/internal/providers/uncertainty/estimator"
	"github.com/GriffinCanCode/expdata/internal/types"
)

// StatsOps exposes the estimator as service tools
type StatsOps struct {
	*common.UncertaintyOps
}

// GetTools returns stats tool definitions
func (s *StatsOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "uncertainty.mean",
			Name:        "Mean",
			Description: "Arithmetic mean of repeated measurements",
			Parameters: []types.Parameter{
				{Name: "samples", Type: "array", Description: "Measured values", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "uncertainty.stdev",
			Name:        "Sample Standard Deviation",
			Description: "Bessel-corrected sample standard deviation",
			Parameters: []types.Parameter{
				{Name: "samples", Type: "array", Description: "Measured values (at least 2)", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "uncertainty.critical",
			Name:        "Critical Value",
			Description: "Two-sided 95% Student's-t critical value for n samples",
			Parameters: []types.Parameter{
				{Name: "n", Type: "number", Description: "Sample count (2-20)", Required: true},
				{Name: "exact", Type: "boolean", Description: "Compute from the t distribution instead of the table", Required: false},
			},
			Returns: "number",
		},
		{
			ID:          "uncertainty.combined",
			Name:        "Combined Uncertainty",
			Description: "Statistical and instrumental uncertainty combined in quadrature",
			Parameters: []types.Parameter{
				{Name: "samples", Type: "array", Description: "Measured values (2-20)", Required: true},
				{Name: "tolerance", Type: "number", Description: "Instrument tolerance", Required: true},
				{Name: "divisor", Type: "number", Description: "Confidence divisor (default: 1.05)", Required: false},
			},
			Returns: "object",
		},
		{
			ID:          "uncertainty.combinedSummary",
			Name:        "Combined Uncertainty From Summary",
			Description: "Combined uncertainty from sample count and standard deviation",
			Parameters: []types.Parameter{
				{Name: "n", Type: "number", Description: "Sample count (2-20)", Required: true},
				{Name: "sigma", Type: "number", Description: "Sample standard deviation", Required: true},
				{Name: "tolerance", Type: "number", Description: "Instrument tolerance", Required: true},
				{Name: "divisor", Type: "number", Description: "Confidence divisor (default: 1.05)", Required: false},
			},
			Returns: "object",
		},
	}
}

// Mean calculates the arithmetic mean
func (s *StatsOps) Mean(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	samples, ok := common.GetNumbers(params, "samples")
	if !ok {
		return common.Failure("samples array required")
	}

	mean, err := estimator.Mean(samples)
	if err != nil {
		return common.FailureFromError(err)
	}
	return common.Success(map[string]interface{}{"result": mean})
}

// Stdev calculates the sample standard deviation
func (s *StatsOps) Stdev(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	samples, ok := common.GetNumbers(params, "samples")
	if !ok {
		return common.Failure("samples array required")
	}

	summary, err := estimator.Summarize(samples)
	if err != nil {
		return common.FailureFromError(err)
	}
	return common.Success(map[string]interface{}{
		"result": summary.StdDev,
		"mean":   summary.Mean,
		"n":      summary.N,
	})
}

// Critical returns the tabulated or exact critical value
func (s *StatsOps) Critical(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	n, ok := common.GetInt(params, "n")
	if !ok {
		return common.Failure("integer n required")
	}

	lookup := estimator.CriticalValue
	if exact, _ := params["exact"].(bool); exact {
		lookup = estimator.CriticalValueExact
	}

	value, err := lookup(n)
	if err != nil {
		return common.FailureFromError(err)
	}
	return common.Success(map[string]interface{}{"result": value, "n": n})
}

// Combined calculates the combined uncertainty of raw samples
func (s *StatsOps) Combined(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	samples, ok := common.GetNumbers(params, "samples")
	if !ok {
		return common.Failure("samples array required")
	}
	d, ok := common.GetNumber(params, "tolerance")
	if !ok {
		return common.Failure("tolerance required")
	}

	sigma, err := estimator.SampleStdDev(samples)
	if err != nil {
		return common.FailureFromError(err)
	}
	c, err := s.Divisor(params)
	if err != nil {
		return common.FailureFromError(err)
	}
	return s.components(len(samples), sigma, d, c)
}

// CombinedSummary calculates the combined uncertainty from summary statistics
func (s *StatsOps) CombinedSummary(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	n, ok := common.GetInt(params, "n")
	if !ok {
		return common.Failure("integer n required")
	}
	sigma, ok := common.GetNumber(params, "sigma")
	if !ok {
		return common.Failure("sigma required")
	}
	d, ok := common.GetNumber(params, "tolerance")
	if !ok {
		return common.Failure("tolerance required")
	}

	c, err := s.Divisor(params)
	if err != nil {
		return common.FailureFromError(err)
	}
	return s.components(n, sigma, d, c)
}

func (s *StatsOps) components(n int, sigma, d, c float64) (*types.Result, error) {
	parts, err := estimator.CombinedComponents(n, sigma, d, c)
	if err != nil {
		return common.FailureFromError(fmt.Errorf("combined uncertainty: %w", err))
	}
	return common.Success(map[string]interface{}{
		"result":       parts.Combined,
		"statistical":  parts.Statistical,
		"instrumental": parts.Instrumental,
		"sigma":        sigma,
		"n":            n,
	})
}
