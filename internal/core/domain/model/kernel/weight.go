package kernel

import (
	"fmt"

	"shipping/internal/pkg/errs"
)

// Weight is a value object representing a shipment's weight in kilograms.
// The value must be strictly positive; the zero value is invalid.
type Weight struct {
	kilograms float64
}

// NewWeight creates a Weight from a raw kilogram figure.
// Returns an error if the value is not strictly positive.
func NewWeight(kilograms float64) (Weight, error) {
	if kilograms <= 0 {
		return Weight{}, errs.NewValueIsInvalidErrorWithCause("weight",
			fmt.Errorf("%v is not greater than 0", kilograms))
	}
	return Weight{kilograms: kilograms}, nil
}

// Kilograms returns the raw weight figure.
func (w Weight) Kilograms() float64 {
	return w.kilograms
}

// Exceeds reports whether the weight is greater than the given capacity figure.
func (w Weight) Exceeds(capacity float64) bool {
	return w.kilograms > capacity
}

// Validate checks that the weight was constructed with a positive value.
func (w Weight) Validate() error {
	if w.kilograms <= 0 {
		return errs.NewValueIsRequiredError("weight")
	}
	return nil
}
