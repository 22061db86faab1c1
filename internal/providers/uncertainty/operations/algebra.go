package operations

import (
	"context"

	"github.com/GriffinCanCode/expdata/internal/providers/uncertainty/common"
	"github.com/GriffinCanCode/expdata/internal/providers/uncertainty/quantity"
	"github.com/GriffinCanCode/expdata/internal/types"
)

// AlgebraOps propagates uncertainty through arithmetic
type AlgebraOps struct {
	*common.UncertaintyOps
}

type binaryOp func(a, b quantity.Quantity) (quantity.Quantity, error)

// GetTools returns algebra tool definitions
func (o *AlgebraOps) GetTools() []types.Tool {
	pair := func(id, name, desc string) types.Tool {
		return types.Tool{
			ID:          id,
			Name:        name,
			Description: desc,
			Parameters: []types.Parameter{
				{Name: "a", Type: "object", Description: "Left operand {mean, uncertainty}", Required: true},
				{Name: "b", Type: "object", Description: "Right operand {mean, uncertainty}", Required: true},
			},
			Returns: "object",
		}
	}
	fold := func(id, name, desc string) types.Tool {
		return types.Tool{
			ID:          id,
			Name:        name,
			Description: desc,
			Parameters: []types.Parameter{
				{Name: "operands", Type: "array", Description: "Quantities {mean, uncertainty}", Required: true},
			},
			Returns: "object",
		}
	}

	return []types.Tool{
		pair("uncertainty.add", "Add", "a + b, absolute uncertainties in quadrature"),
		pair("uncertainty.subtract", "Subtract", "a - b, absolute uncertainties in quadrature"),
		pair("uncertainty.multiply", "Multiply", "a * b, relative uncertainties in quadrature"),
		pair("uncertainty.divide", "Divide", "a / b, relative uncertainties in quadrature"),
		{
			ID:          "uncertainty.power",
			Name:        "Power",
			Description: "a ^ exponent, relative uncertainty scaled by |exponent|",
			Parameters: []types.Parameter{
				{Name: "a", Type: "object", Description: "Base {mean, uncertainty}", Required: true},
				{Name: "exponent", Type: "number", Description: "Exact exponent", Required: true},
			},
			Returns: "object",
		},
		fold("uncertainty.sum", "Sum", "Sum of quantities"),
		fold("uncertainty.product", "Product", "Product of quantities"),
	}
}

// Add adds two quantities
func (o *AlgebraOps) Add(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return binary(params, quantity.Add)
}

// Subtract subtracts b from a
func (o *AlgebraOps) Subtract(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return binary(params, quantity.Subtract)
}

// Multiply multiplies two quantities
func (o *AlgebraOps) Multiply(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return binary(params, quantity.Multiply)
}

// Divide divides a by b
func (o *AlgebraOps) Divide(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return binary(params, quantity.Divide)
}

// Power raises a to an exact exponent
func (o *AlgebraOps) Power(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	a, err := GetQuantity(params, "a")
	if err != nil {
		return common.FailureFromError(err)
	}
	exponent, ok := common.GetNumber(params, "exponent")
	if !ok {
		return common.Failure("exponent required")
	}
	return quantityResult(quantity.Power(a, exponent))
}

// Sum adds any number of quantities
func (o *AlgebraOps) Sum(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	qs, err := GetQuantities(params, "operands")
	if err != nil {
		return common.FailureFromError(err)
	}
	return quantityResult(quantity.Sum(qs...))
}

// Product multiplies any number of quantities
func (o *AlgebraOps) Product(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	qs, err := GetQuantities(params, "operands")
	if err != nil {
		return common.FailureFromError(err)
	}
	return quantityResult(quantity.Product(qs...))
}

func binary(params map[string]interface{}, op binaryOp) (*types.Result, error) {
	a, err := GetQuantity(params, "a")
	if err != nil {
		return common.FailureFromError(err)
	}
	b, err := GetQuantity(params, "b")
	if err != nil {
		return common.FailureFromError(err)
	}
	return quantityResult(op(a, b))
}
