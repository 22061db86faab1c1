package quantity

import (
	"fmt"
	"math"

	"github.com/GriffinCanCode/expdata/internal/providers/uncertainty/common"
)

// Quantity is a best estimate with its absolute uncertainty. The zero value is
// the exact constant 0. Quantities are immutable; every operation returns a
// new value.
type Quantity struct {
	mean        float64
	uncertainty float64
}

// New builds a Quantity from an already known mean and uncertainty.
func New(mean, uncertainty float64) (Quantity, error) {
	if err := common.ValidateNumber(mean, "mean"); err != nil {
		return Quantity{}, err
	}
	if err := common.ValidateNumber(uncertainty, "uncertainty"); err != nil {
		return Quantity{}, err
	}
	if uncertainty < 0 {
		return Quantity{}, fmt.Errorf("%w: uncertainty must be >= 0, got %g", common.ErrInvalidInput, uncertainty)
	}
	return Quantity{mean: mean, uncertainty: uncertainty}, nil
}

// Constant returns an exact value with zero uncertainty.
func Constant(x float64) Quantity {
	return Quantity{mean: x}
}

// Mean returns the best estimate.
func (q Quantity) Mean() float64 { return q.mean }

// Uncertainty returns the absolute uncertainty.
func (q Quantity) Uncertainty() float64 { return q.uncertainty }

// IsExact reports whether q carries no uncertainty.
func (q Quantity) IsExact() bool { return q.uncertainty == 0 }

// RelativeUncertainty returns uncertainty / mean. An exact quantity has
// relative uncertainty 0 whatever its mean; otherwise a zero mean is
// ErrUndefined.
func (q Quantity) RelativeUncertainty() (float64, error) {
	if q.uncertainty == 0 {
		return 0, nil
	}
	if q.mean == 0 {
		return 0, fmt.Errorf("%w: relative uncertainty of zero mean", common.ErrUndefined)
	}
	return q.uncertainty / q.mean, nil
}

// Equal reports whether mean and uncertainty both agree within tol.
func (q Quantity) Equal(other Quantity, tol float64) bool {
	return math.Abs(q.mean-other.mean) <= tol &&
		math.Abs(q.uncertainty-other.uncertainty) <= tol
}

// String renders q for diagnostics. It is not a persisted format.
func (q Quantity) String() string {
	rel := "undefined"
	if r, err := q.RelativeUncertainty(); err == nil {
		rel = fmt.Sprint(r)
	}
	return fmt.Sprintf("mean: %v, uncertainty: %v, relativeUncertainty: %s", q.mean, q.uncertainty, rel)
}
