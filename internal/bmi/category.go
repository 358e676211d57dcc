package bmi

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Category is one of the four BMI bands, ordered from lowest to highest BMI.
type Category int

const (
	Underweight Category = iota
	Normal
	Overweight
	Obese
)

// Lower bounds of Normal, Overweight and Obese.
const (
	NormalMin     = 18.5
	OverweightMin = 25.0
	ObeseMin      = 30.0
)

var thresholds = [3]float64{NormalMin, OverweightMin, ObeseMin}

// Thresholds returns a copy of the category boundaries in ascending order.
func Thresholds() [3]float64 {
	return thresholds
}

// Categories lists every category in ascending BMI order.
var Categories = [...]Category{Underweight, Normal, Overweight, Obese}

var categoryLabels = [...]string{
	Underweight: "Underweight",
	Normal:      "Normal weight",
	Overweight:  "Overweight",
	Obese:       "Obese",
}

var categorySlugs = [...]string{
	Underweight: "underweight",
	Normal:      "normal",
	Overweight:  "overweight",
	Obese:       "obese",
}

// Severity is the banner style a client uses when showing the BMI value.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

var categorySeverities = [...]Severity{
	Underweight: SeverityWarning,
	Normal:      SeveritySuccess,
	Overweight:  SeverityWarning,
	Obese:       SeverityInfo,
}

// Classify maps a BMI value to its category. Each boundary value belongs to
// the higher category.
func Classify(bmi float64) Category {
	switch {
	case bmi < NormalMin:
		return Underweight
	case bmi < OverweightMin:
		return Normal
	case bmi < ObeseMin:
		return Overweight
	default:
		return Obese
	}
}

func (c Category) Valid() bool {
	return c >= Underweight && c <= Obese
}

// String returns the display label, e.g. "Normal weight".
func (c Category) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return categoryLabels[c]
}

// Slug returns the lower-case identifier used in URLs.
func (c Category) Slug() string {
	if !c.Valid() {
		return ""
	}
	return categorySlugs[c]
}

func (c Category) Severity() Severity {
	if !c.Valid() {
		return SeverityInfo
	}
	return categorySeverities[c]
}

// Bounds returns the half-open BMI interval [lower, upper) of the category.
// hasLower is false for Underweight and hasUpper is false for Obese.
func (c Category) Bounds() (lower float64, hasLower bool, upper float64, hasUpper bool) {
	if c > Underweight && c.Valid() {
		lower, hasLower = thresholds[c-1], true
	}
	if c < Obese && c.Valid() {
		upper, hasUpper = thresholds[c], true
	}
	return lower, hasLower, upper, hasUpper
}

// ParseCategory accepts a slug or a display label, case-insensitively.
func ParseCategory(s string) (Category, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, c := range Categories {
		if s == categorySlugs[c] || s == strings.ToLower(categoryLabels[c]) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown category %q", s)
}

func (c Category) MarshalJSON() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("cannot marshal %s", c)
	}
	return json.Marshal(c.String())
}

func (c *Category) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseCategory(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
