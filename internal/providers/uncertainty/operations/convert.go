package operations

import (
	"fmt"

	"github.com/GriffinCanCode/expdata/internal/providers/uncertainty/common"
	"github.com/GriffinCanCode/expdata/internal/providers/uncertainty/quantity"
	"github.com/GriffinCanCode/expdata/internal/types"
)

// GetQuantity reads a {"mean", "uncertainty"} object from params
func GetQuantity(params map[string]interface{}, key string) (quantity.Quantity, error) {
	obj, ok := common.GetObject(params, key)
	if !ok {
		return quantity.Quantity{}, fmt.Errorf("%w: %s must be an object with mean and uncertainty", common.ErrInvalidInput, key)
	}
	return parseQuantity(obj, key)
}

// GetQuantities reads an array of quantity objects from params
func GetQuantities(params map[string]interface{}, key string) ([]quantity.Quantity, error) {
	objs, ok := common.GetObjects(params, key)
	if !ok {
		return nil, fmt.Errorf("%w: %s must be an array of quantity objects", common.ErrInvalidInput, key)
	}
	qs := make([]quantity.Quantity, 0, len(objs))
	for i, obj := range objs {
		q, err := parseQuantity(obj, fmt.Sprintf("%s[%d]", key, i))
		if err != nil {
			return nil, err
		}
		qs = append(qs, q)
	}
	return qs, nil
}

func parseQuantity(obj map[string]interface{}, name string) (quantity.Quantity, error) {
	mean, ok := common.GetNumber(obj, "mean")
	if !ok {
		return quantity.Quantity{}, fmt.Errorf("%w: %s.mean required", common.ErrInvalidInput, name)
	}
	u, ok := common.GetNumber(obj, "uncertainty")
	if !ok {
		u = 0
	}
	q, err := quantity.New(mean, u)
	if err != nil {
		return quantity.Quantity{}, fmt.Errorf("%s: %w", name, err)
	}
	return q, nil
}

// QuantityData renders q as result data
func QuantityData(q quantity.Quantity) map[string]interface{} {
	data := map[string]interface{}{
		"mean":        q.Mean(),
		"uncertainty": q.Uncertainty(),
		"display":     q.String(),
	}
	if rel, err := q.RelativeUncertainty(); err == nil {
		data["relativeUncertainty"] = rel
	}
	return data
}

func quantityResult(q quantity.Quantity, err error) (*types.Result, error) {
	if err != nil {
		return common.FailureFromError(err)
	}
	return common.Success(QuantityData(q))
}
