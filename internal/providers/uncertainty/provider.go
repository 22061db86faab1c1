package uncertainty

import (
	"context"
	"fmt"

	"github.com/GriffinCanCode/expdata/internal/providers/uncertainty/common"
	"github.com/GriffinCanCode/expdata/internal/providers/uncertainty/estimator"
	"github.com/GriffinCanCode/expdata/internal/providers/uncertainty/operations"
	"github.com/GriffinCanCode/expdata/internal/providers/uncertainty/statistics"
	"github.com/GriffinCanCode/expdata/internal/types"
)

// ServiceID is the registry key and tool ID prefix of the provider.
const ServiceID = "uncertainty"

// Provider implements measurement uncertainty operations
type Provider struct {
	stats     *statistics.StatsOps
	construct *operations.ConstructOps
	algebra   *operations.AlgebraOps
}

// NewProvider creates an uncertainty provider. A divisor of 0 selects
// estimator.DefaultConfidenceDivisor.
func NewProvider(divisor float64) *Provider {
	if divisor == 0 {
		divisor = estimator.DefaultConfidenceDivisor
	}
	ops := &common.UncertaintyOps{ConfidenceDivisor: divisor}

	return &Provider{
		stats:     &statistics.StatsOps{UncertaintyOps: ops},
		construct: &operations.ConstructOps{UncertaintyOps: ops},
		algebra:   &operations.AlgebraOps{UncertaintyOps: ops},
	}
}

// Definition returns service metadata with all module tools
func (p *Provider) Definition() types.Service {
	tools := []types.Tool{}
	tools = append(tools, p.stats.GetTools()...)
	tools = append(tools, p.construct.GetTools()...)
	tools = append(tools, p.algebra.GetTools()...)

	return types.Service{
		ID:          ServiceID,
		Name:        "Uncertainty Service",
		Description: "Measurement statistics and uncertainty propagation for experimental data reduction",
		Category:    types.CategoryMeasurement,
		Capabilities: []string{
			"statistics",
			"combined_uncertainty",
			"construction",
			"propagation",
		},
		Tools: tools,
		DataModels: []types.DataModel{
			{
				Name: "Quantity",
				Fields: map[string]string{
					"mean":                "number",
					"uncertainty":         "number",
					"relativeUncertainty": "number",
				},
			},
		},
	}
}

// Execute routes to appropriate module
func (p *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	if params == nil {
		params = map[string]interface{}{}
	}

	switch toolID {
	// Statistics
	case "uncertainty.mean":
		return p.stats.Mean(ctx, params, appCtx)
	case "uncertainty.stdev":
		return p.stats.Stdev(ctx, params, appCtx)
	case "uncertainty.critical":
		return p.stats.Critical(ctx, params, appCtx)
	case "uncertainty.combined":
		return p.stats.Combined(ctx, params, appCtx)
	case "uncertainty.combinedSummary":
		return p.stats.CombinedSummary(ctx, params, appCtx)

	// Construction
	case "uncertainty.fromSamples":
		return p.construct.FromSamples(ctx, params, appCtx)
	case "uncertainty.fromSummary":
		return p.construct.FromSummary(ctx, params, appCtx)
	case "uncertainty.single":
		return p.construct.Single(ctx, params, appCtx)
	case "uncertainty.constant":
		return p.construct.Constant(ctx, params, appCtx)

	// Algebra
	case "uncertainty.add":
		return p.algebra.Add(ctx, params, appCtx)
	case "uncertainty.subtract":
		return p.algebra.Subtract(ctx, params, appCtx)
	case "uncertainty.multiply":
		return p.algebra.Multiply(ctx, params, appCtx)
	case "uncertainty.divide":
		return p.algebra.Divide(ctx, params, appCtx)
	case "uncertainty.power":
		return p.algebra.Power(ctx, params, appCtx)
	case "uncertainty.sum":
		return p.algebra.Sum(ctx, params, appCtx)
	case "uncertainty.product":
		return p.algebra.Product(ctx, params, appCtx)

	default:
		return common.Failure(fmt.Sprintf("unknown tool: %s", toolID))
	}
}
