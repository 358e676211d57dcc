package utils

import (
	"errors"
	"fmt"
	"math"
	"regexp"

	"bmiguide.healthguide.org/internal/bmi"
)

// Accepted input ranges, matching the calculator form.
const (
	MinWeightKg  = 20.0
	MaxWeightKg  = 300.0
	MinHeightCm  = 100.0
	MaxHeightCm  = 250.0
	MinWeightLbs = 44.0
	MaxWeightLbs = 660.0
	MinFeet      = 3
	MaxFeet      = 8
	MinInches    = 0
	MaxInches    = 11
)

var validSlugPattern = regexp.MustCompile(`^[a-z]+$`)

// ValidateSlug checks a category identifier taken from the URL path.
func ValidateSlug(slug string) error {
	if slug == "" {
		return errors.New("id cannot be empty")
	}

	if len(slug) > 32 {
		return errors.New("id too long (max 32 characters)")
	}

	if !validSlugPattern.MatchString(slug) {
		return errors.New("id contains invalid characters")
	}

	return nil
}

// ValidateRange reports a value outside [min, max]. NaN and infinities are rejected.
func ValidateRange(field string, value, min, max float64, unit string) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return fmt.Errorf("%s must be a finite number", field)
	}
	if value < min || value > max {
		return fmt.Errorf("%s must be between %g and %g %s", field, min, max, unit)
	}
	return nil
}

// ValidateHeight checks the height fields for the input's unit system.
func ValidateHeight(in bmi.Input) map[string][]string {
	fieldErrors := make(map[string][]string)

	if in.UnitSystem == bmi.Imperial {
		if err := ValidateRange("feet", float64(in.Feet), MinFeet, MaxFeet, "ft"); err != nil {
			fieldErrors["feet"] = append(fieldErrors["feet"], err.Error())
		}
		if err := ValidateRange("inches", float64(in.Inches), MinInches, MaxInches, "in"); err != nil {
			fieldErrors["inches"] = append(fieldErrors["inches"], err.Error())
		}
		return fieldErrors
	}

	if err := ValidateRange("height", in.Height, MinHeightCm, MaxHeightCm, "cm"); err != nil {
		fieldErrors["height"] = append(fieldErrors["height"], err.Error())
	}
	return fieldErrors
}

// ValidateInput checks a complete form against the bounds of its unit system.
func ValidateInput(in bmi.Input) map[string][]string {
	fieldErrors := ValidateHeight(in)

	var err error
	if in.UnitSystem == bmi.Imperial {
		err = ValidateRange("weight", in.Weight, MinWeightLbs, MaxWeightLbs, "lbs")
	} else {
		err = ValidateRange("weight", in.Weight, MinWeightKg, MaxWeightKg, "kg")
	}
	if err != nil {
		fieldErrors["weight"] = append(fieldErrors["weight"], err.Error())
	}

	return fieldErrors
}
