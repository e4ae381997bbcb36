package kernel

import (
	"errors"
	"fmt"

	"shipping/internal/pkg/errs"
)

// Dimensions is a value object holding the three package dimensions in
// centimeters: length, width, and height. All three must be strictly
// positive. Volume is derived from them exactly once, at construction,
// and is never recomputed elsewhere.
//
// Example usage:
//
//	dims, err := kernel.NewDimensions(30, 20, 15)
//	if err != nil {
//	    // handle invalid dimensions
//	}
//	fmt.Println(dims.Volume()) // 9000
type Dimensions struct {
	length float64
	width  float64
	height float64
	volume float64
}

// NewDimensions creates Dimensions from raw centimeter figures and computes
// the derived volume as length×width×height. Each dimension must be strictly
// positive; all violations are reported together.
func NewDimensions(length, width, height float64) (Dimensions, error) {
	if err := errors.Join(
		requirePositive("length", length),
		requirePositive("width", width),
		requirePositive("height", height),
	); err != nil {
		return Dimensions{}, err
	}

	return Dimensions{
		length: length,
		width:  width,
		height: height,
		volume: length * width * height,
	}, nil
}

func requirePositive(name string, value float64) error {
	if value <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(name,
			fmt.Errorf("%v is not greater than 0", value))
	}
	return nil
}

// Length returns the package length in centimeters.
func (d Dimensions) Length() float64 {
	return d.length
}

// Width returns the package width in centimeters.
func (d Dimensions) Width() float64 {
	return d.width
}

// Height returns the package height in centimeters.
func (d Dimensions) Height() float64 {
	return d.height
}

// Volume returns the volume computed at construction time.
func (d Dimensions) Volume() float64 {
	return d.volume
}

// Validate checks that the dimensions were constructed with positive values.
func (d Dimensions) Validate() error {
	if d.length <= 0 || d.width <= 0 || d.height <= 0 {
		return errs.NewValueIsRequiredError("dimensions")
	}
	return nil
}
