package common

import (
	"fmt"
	"math"

	"github.com/GriffinCanCode/expdata/internal/types"
)

// UncertaintyOps provides common helpers shared by tool modules
type UncertaintyOps struct {
	// ConfidenceDivisor is used when a request does not supply "divisor".
	ConfidenceDivisor float64
}

// Divisor returns the request's confidence divisor or the configured default.
// A "divisor" that is present must be a finite number > 0.
func (u *UncertaintyOps) Divisor(params map[string]interface{}) (float64, error) {
	raw, present := params["divisor"]
	if !present {
		return u.ConfidenceDivisor, nil
	}
	c, ok := toFloat(raw)
	if !ok {
		return 0, fmt.Errorf("%w: divisor must be a number", ErrInvalidInput)
	}
	if err := ValidateNumber(c, "divisor"); err != nil {
		return 0, err
	}
	if c <= 0 {
		return 0, fmt.Errorf("%w: confidence divisor must be > 0, got %g", ErrInvalidInput, c)
	}
	return c, nil
}

// Success creates a successful result
func Success(data map[string]interface{}) (*types.Result, error) {
	return &types.Result{Success: true, Data: data}, nil
}

// Failure creates a failed result
func Failure(message string) (*types.Result, error) {
	msg := message
	return &types.Result{Success: false, Error: &msg}, nil
}

// FailureFromError creates a failed result tagged with the error kind
func FailureFromError(err error) (*types.Result, error) {
	msg := err.Error()
	return &types.Result{
		Success: false,
		Data:    map[string]interface{}{"kind": Kind(err)},
		Error:   &msg,
	}, nil
}

// GetNumber extracts float64 from params with type coercion
func GetNumber(params map[string]interface{}, key string) (float64, bool) {
	return toFloat(params[key])
}

// GetInt extracts an integer, rejecting fractional numbers
func GetInt(params map[string]interface{}, key string) (int, bool) {
	f, ok := GetNumber(params, key)
	if !ok || f != math.Trunc(f) {
		return 0, false
	}
	return int(f), true
}

// GetNumbers extracts array of numbers with type coercion
func GetNumbers(params map[string]interface{}, key string) ([]float64, bool) {
	switch arr := params[key].(type) {
	case []float64:
		return arr, true
	case []interface{}:
		numbers := make([]float64, 0, len(arr))
		for _, v := range arr {
			num, ok := toFloat(v)
			if !ok {
				return nil, false
			}
			numbers = append(numbers, num)
		}
		return numbers, true
	default:
		return nil, false
	}
}

// GetObject extracts a nested object
func GetObject(params map[string]interface{}, key string) (map[string]interface{}, bool) {
	obj, ok := params[key].(map[string]interface{})
	return obj, ok
}

// GetObjects extracts an array of nested objects
func GetObjects(params map[string]interface{}, key string) ([]map[string]interface{}, bool) {
	arr, ok := params[key].([]interface{})
	if !ok {
		return nil, false
	}
	objs := make([]map[string]interface{}, 0, len(arr))
	for _, v := range arr {
		obj, ok := v.(map[string]interface{})
		if !ok {
			return nil, false
		}
		objs = append(objs, obj)
	}
	return objs, true
}

func toFloat(val interface{}) (float64, bool) {
	switch v := val.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case int32:
		return float64(v), true
	default:
		return 0, false
	}
}

// ValidateNumber checks if a number is finite
func ValidateNumber(x float64, name string) error {
	if math.IsNaN(x) {
		return fmt.Errorf("%w: %s is NaN", ErrInvalidInput, name)
	}
	if math.IsInf(x, 0) {
		return fmt.Errorf("%w: %s is infinite", ErrInvalidInput, name)
	}
	return nil
}

// ValidateNumbers validates an array of numbers
func ValidateNumbers(nums []float64, name string) error {
	for i, x := range nums {
		if err := ValidateNumber(x, fmt.Sprintf("%s[%d]", name, i)); err != nil {
			return err
		}
	}
	return nil
}
