package bmi

import (
	"errors"
	"fmt"
	"math"
)

// ErrNonPositiveHeight is matched by errors.Is against a *DomainError raised for height <= 0.
var ErrNonPositiveHeight = errors.New("height must be positive")

// DomainError reports a measurement that the BMI formula is undefined for.
type DomainError struct {
	Field string
	Value float64
	Err   error
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("invalid %s %g: %v", e.Field, e.Value, e.Err)
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// ComputeBMI returns weight / height(m)^2 rounded to one decimal place.
func ComputeBMI(weightKg, heightCm float64) (float64, error) {
	if heightCm <= 0 {
		return 0, &DomainError{Field: "heightCm", Value: heightCm, Err: ErrNonPositiveHeight}
	}

	h := heightCm / 100.0
	return Round1(weightKg / (h * h)), nil
}

// Round1 rounds to one decimal place, halves away from zero.
func Round1(x float64) float64 {
	return math.Round(x*10) / 10
}
