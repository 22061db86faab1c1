package operations

import (
	"context"
	"fmt"

	"github.com/GriffinCanCode/expdata/internal/providers/uncertainty/common"
	"github.com/GriffinCanCode/expdata/internal/providers/uncertainty/quantity"
	"github.com/GriffinCanCode/expdata/internal/types"
)

// ConstructOps builds quantities from measurements
type ConstructOps struct {
	*common.UncertaintyOps
}

// GetTools returns construction tool definitions
func (o *ConstructOps) GetTools() []types.Tool {
	divisor := types.Parameter{Name: "divisor", Type: "number", Description: "Confidence divisor (default: 1.05)", Required: false}
	return []types.Tool{
		{
			ID:          "uncertainty.fromSamples",
			Name:        "Quantity From Samples",
			Description: "Mean and combined uncertainty of repeated measurements",
			Parameters: []types.Parameter{
				{Name: "samples", Type: "array", Description: "Measured values (2-20)", Required: true},
				{Name: "tolerance", Type: "number", Description: "Instrument tolerance", Required: true},
				divisor,
			},
			Returns: "object",
		},
		{
			ID:          "uncertainty.fromSummary",
			Name:        "Quantity From Summary",
			Description: "Quantity from any consistent subset of samples, mean, n, sigma, uncertainty",
			Parameters: []types.Parameter{
				{Name: "mean", Type: "number", Description: "Best estimate", Required: false},
				{Name: "samples", Type: "array", Description: "Measured values", Required: false},
				{Name: "n", Type: "number", Description: "Sample count", Required: false},
				{Name: "sigma", Type: "number", Description: "Sample standard deviation", Required: false},
				{Name: "uncertainty", Type: "number", Description: "Absolute uncertainty", Required: false},
				{Name: "tolerance", Type: "number", Description: "Instrument tolerance", Required: true},
				divisor,
			},
			Returns: "object",
		},
		{
			ID:          "uncertainty.single",
			Name:        "Single Reading",
			Description: "Quantity from one reading with instrumental uncertainty only",
			Parameters: []types.Parameter{
				{Name: "x", Type: "number", Description: "Reading", Required: true},
				{Name: "tolerance", Type: "number", Description: "Instrument tolerance", Required: true},
				divisor,
			},
			Returns: "object",
		},
		{
			ID:          "uncertainty.constant",
			Name:        "Constant",
			Description: "Exact value with zero uncertainty",
			Parameters: []types.Parameter{
				{Name: "x", Type: "number", Description: "Value", Required: true},
			},
			Returns: "object",
		},
	}
}

// FromSamples builds a quantity from raw samples
func (o *ConstructOps) FromSamples(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	samples, ok := common.GetNumbers(params, "samples")
	if !ok {
		return common.Failure("samples array required")
	}
	d, ok := common.GetNumber(params, "tolerance")
	if !ok {
		return common.Failure("tolerance required")
	}
	c, err := o.Divisor(params)
	if err != nil {
		return common.FailureFromError(err)
	}
	return quantityResult(quantity.FromSamples(samples, d, c))
}

// FromSummary builds a quantity from whatever the caller knows
func (o *ConstructOps) FromSummary(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	c, err := o.Divisor(params)
	if err != nil {
		return common.FailureFromError(err)
	}
	opts := quantity.Options{ConfidenceDivisor: c}

	if v, ok := common.GetNumber(params, "mean"); ok {
		opts.Mean = &v
	}
	if _, present := params["samples"]; present {
		samples, ok := common.GetNumbers(params, "samples")
		if !ok {
			return common.Failure("samples must be an array of numbers")
		}
		opts.Samples = samples
	}
	if _, present := params["n"]; present {
		n, ok := common.GetInt(params, "n")
		if !ok {
			return common.Failure("n must be an integer")
		}
		opts.N = &n
	}
	if v, ok := common.GetNumber(params, "sigma"); ok {
		opts.Sigma = &v
	}
	if v, ok := common.GetNumber(params, "uncertainty"); ok {
		opts.Uncertainty = &v
	}
	d, ok := common.GetNumber(params, "tolerance")
	if !ok {
		return common.FailureFromError(fmt.Errorf("%w: tolerance required", common.ErrInvalidInput))
	}
	opts.InstrumentTolerance = &d

	return quantityResult(quantity.FromSummary(opts))
}

// Single builds a quantity from one reading
func (o *ConstructOps) Single(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	x, ok := common.GetNumber(params, "x")
	if !ok {
		return common.Failure("x required")
	}
	d, ok := common.GetNumber(params, "tolerance")
	if !ok {
		return common.Failure("tolerance required")
	}
	c, err := o.Divisor(params)
	if err != nil {
		return common.FailureFromError(err)
	}
	return quantityResult(quantity.FromSingleReading(x, d, c))
}

// Constant builds an exact quantity
func (o *ConstructOps) Constant(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	x, ok := common.GetNumber(params, "x")
	if !ok {
		return common.Failure("x required")
	}
	return quantityResult(quantity.New(x, 0))
}
