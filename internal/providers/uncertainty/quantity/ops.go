package quantity

import (
	"fmt"
	"math"

	"github.com/GriffinCanCode/expdata/internal/providers/uncertainty/common"
)

// Add returns q + other. Absolute uncertainties combine in quadrature.
func (q Quantity) Add(other Quantity) (Quantity, error) {
	return result(q.mean+other.mean, math.Hypot(q.uncertainty, other.uncertainty))
}

// Sub returns q - other. Uncertainties do not cancel.
func (q Quantity) Sub(other Quantity) (Quantity, error) {
	return result(q.mean-other.mean, math.Hypot(q.uncertainty, other.uncertainty))
}

// Mul returns q * other. Relative uncertainties combine in quadrature.
func (q Quantity) Mul(other Quantity) (Quantity, error) {
	r, err := quadrature(q, other)
	if err != nil {
		return Quantity{}, err
	}
	mean := q.mean * other.mean
	return result(mean, r*math.Abs(mean))
}

// Div returns q / other. A zero divisor mean is ErrDivisionByZero.
func (q Quantity) Div(other Quantity) (Quantity, error) {
	if other.mean == 0 {
		return Quantity{}, fmt.Errorf("%w: divisor mean is 0", common.ErrDivisionByZero)
	}
	r, err := quadrature(q, other)
	if err != nil {
		return Quantity{}, err
	}
	mean := q.mean / other.mean
	return result(mean, r*math.Abs(mean))
}

// Pow returns q raised to exponent. The relative uncertainty scales by
// |exponent|.
func (q Quantity) Pow(exponent float64) (Quantity, error) {
	if err := common.ValidateNumber(exponent, "exponent"); err != nil {
		return Quantity{}, err
	}
	if exponent == 0 {
		return Constant(1), nil
	}

	mean := math.Pow(q.mean, exponent)
	switch {
	case math.IsNaN(mean):
		return Quantity{}, fmt.Errorf("%w: %g ^ %g", common.ErrUndefined, q.mean, exponent)
	case math.IsInf(mean, 0) && q.mean == 0:
		return Quantity{}, fmt.Errorf("%w: 0 ^ %g", common.ErrDivisionByZero, exponent)
	}

	rel, err := q.RelativeUncertainty()
	if err != nil {
		return Quantity{}, err
	}
	return result(mean, math.Abs(exponent*rel)*math.Abs(mean))
}

// Add returns a + b.
func Add(a, b Quantity) (Quantity, error) { return a.Add(b) }

// Subtract returns a - b.
func Subtract(a, b Quantity) (Quantity, error) { return a.Sub(b) }

// Multiply returns a * b.
func Multiply(a, b Quantity) (Quantity, error) { return a.Mul(b) }

// Divide returns a / b.
func Divide(a, b Quantity) (Quantity, error) { return a.Div(b) }

// Power returns a ^ exponent.
func Power(a Quantity, exponent float64) (Quantity, error) { return a.Pow(exponent) }

// Sum adds qs left to right.
func Sum(qs ...Quantity) (Quantity, error) {
	return fold(qs, Quantity.Add)
}

// Product multiplies qs left to right.
func Product(qs ...Quantity) (Quantity, error) {
	return fold(qs, Quantity.Mul)
}

func fold(qs []Quantity, op func(Quantity, Quantity) (Quantity, error)) (Quantity, error) {
	if len(qs) == 0 {
		return Quantity{}, fmt.Errorf("%w: no operands", common.ErrInvalidInput)
	}
	acc := qs[0]
	for i, q := range qs[1:] {
		next, err := op(acc, q)
		if err != nil {
			return Quantity{}, fmt.Errorf("operand %d: %w", i+1, err)
		}
		acc = next
	}
	return acc, nil
}

// quadrature combines the relative uncertainties of a and b.
func quadrature(a, b Quantity) (float64, error) {
	ra, err := a.RelativeUncertainty()
	if err != nil {
		return 0, err
	}
	rb, err := b.RelativeUncertainty()
	if err != nil {
		return 0, err
	}
	return math.Hypot(ra, rb), nil
}

func result(mean, uncertainty float64) (Quantity, error) {
	if math.IsInf(mean, 0) || math.IsNaN(mean) || math.IsInf(uncertainty, 0) || math.IsNaN(uncertainty) {
		return Quantity{}, fmt.Errorf("%w: result overflows (mean %g, uncertainty %g)", common.ErrUndefined, mean, uncertainty)
	}
	return Quantity{mean: mean, uncertainty: uncertainty}, nil
}
