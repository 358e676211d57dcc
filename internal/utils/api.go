package utils

import (
	"fmt"
	"net/url"
	"strconv"

	"bmiguide.healthguide.org/internal/bmi"
)

func invalidFieldMessage(key string) string {
	return fmt.Sprintf("Invalid field value for field %q.", key)
}

func missingFieldMessage(key string) string {
	return fmt.Sprintf("Missing required field %q.", key)
}

// ParseFloatParam retrieves a float64 value from the provided URL query parameters.
// If the key is not present or the value is invalid, it returns 0 and updates the fieldErrors map.
func ParseFloatParam(params url.Values, key string, fieldErrors map[string][]string) (float64, map[string][]string) {
	if fieldErrors == nil {
		fieldErrors = make(map[string][]string)
	}

	val := params.Get(key)
	if val == "" {
		return 0, fieldErrors
	}

	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		fieldErrors[key] = append(fieldErrors[key], invalidFieldMessage(key))
		return 0, fieldErrors
	}
	return f, fieldErrors
}

// ParseIntParam is the integer counterpart of ParseFloatParam.
func ParseIntParam(params url.Values, key string, fieldErrors map[string][]string) (int, map[string][]string) {
	if fieldErrors == nil {
		fieldErrors = make(map[string][]string)
	}

	val := params.Get(key)
	if val == "" {
		return 0, fieldErrors
	}

	i, err := strconv.Atoi(val)
	if err != nil {
		fieldErrors[key] = append(fieldErrors[key], invalidFieldMessage(key))
		return 0, fieldErrors
	}
	return i, fieldErrors
}

func requireParam(params url.Values, key string, fieldErrors map[string][]string) {
	if params.Get(key) == "" {
		fieldErrors[key] = append(fieldErrors[key], missingFieldMessage(key))
	}
}

// ParseUnitSystemParam reads "unitSystem", defaulting to metric when absent.
func ParseUnitSystemParam(params url.Values, fieldErrors map[string][]string) (bmi.UnitSystem, map[string][]string) {
	if fieldErrors == nil {
		fieldErrors = make(map[string][]string)
	}

	raw := params.Get("unitSystem")
	if raw == "" {
		return bmi.Metric, fieldErrors
	}

	unitSystem, err := bmi.ParseUnitSystem(raw)
	if err != nil {
		fieldErrors["unitSystem"] = append(fieldErrors["unitSystem"], "unitSystem must be metric or imperial")
	}
	return unitSystem, fieldErrors
}

// ParseHeightParams reads the unit system and the height fields it requires.
func ParseHeightParams(params url.Values) (bmi.Input, map[string][]string) {
	fieldErrors := make(map[string][]string)

	var in bmi.Input
	in.UnitSystem, fieldErrors = ParseUnitSystemParam(params, fieldErrors)
	if len(fieldErrors) > 0 {
		return in, fieldErrors
	}

	if in.UnitSystem == bmi.Imperial {
		requireParam(params, "feet", fieldErrors)
		in.Feet, fieldErrors = ParseIntParam(params, "feet", fieldErrors)
		in.Inches, fieldErrors = ParseIntParam(params, "inches", fieldErrors)
	} else {
		requireParam(params, "height", fieldErrors)
		in.Height, fieldErrors = ParseFloatParam(params, "height", fieldErrors)
	}
	return in, fieldErrors
}

// ParseInputParams reads a full calculator form from query parameters.
// Parsing errors are returned first; range checks only run on well-formed input.
func ParseInputParams(params url.Values) (bmi.Input, map[string][]string) {
	in, fieldErrors := ParseHeightParams(params)
	if _, bad := fieldErrors["unitSystem"]; bad {
		return in, fieldErrors
	}

	requireParam(params, "weight", fieldErrors)
	in.Weight, fieldErrors = ParseFloatParam(params, "weight", fieldErrors)
	if len(fieldErrors) > 0 {
		return in, fieldErrors
	}

	return in, ValidateInput(in)
}
