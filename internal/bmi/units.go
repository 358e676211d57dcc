package bmi

import (
	"fmt"
	"strings"
)

// UnitSystem selects how raw weight and height fields are interpreted.
type UnitSystem int

const (
	Metric UnitSystem = iota
	Imperial
)

const (
	kgPerPound = 0.453592
	cmPerInch  = 2.54
)

func (u UnitSystem) String() string {
	switch u {
	case Metric:
		return "metric"
	case Imperial:
		return "imperial"
	default:
		return fmt.Sprintf("UnitSystem(%d)", int(u))
	}
}

// ParseUnitSystem accepts "metric" and "imperial" in any case, as well as the
// radio labels shown by the calculator form ("Metric (kg/cm)", "Imperial (lbs/ft-in)").
func ParseUnitSystem(s string) (UnitSystem, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "metric", "metric (kg/cm)":
		return Metric, nil
	case "imperial", "imperial (lbs/ft-in)":
		return Imperial, nil
	default:
		return 0, fmt.Errorf("unknown unit system %q", s)
	}
}

func (u UnitSystem) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

func (u *UnitSystem) UnmarshalText(text []byte) error {
	parsed, err := ParseUnitSystem(string(text))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

// Input is the raw form submitted by a caller.
// Metric uses Weight (kg) and Height (cm); Imperial uses Weight (lbs), Feet and Inches.
type Input struct {
	UnitSystem UnitSystem `json:"unitSystem"`
	Weight     float64    `json:"weight"`
	Height     float64    `json:"height,omitempty"`
	Feet       int        `json:"feet,omitempty"`
	Inches     int        `json:"inches,omitempty"`
}

// Measurement is a body measurement in canonical metric units.
type Measurement struct {
	WeightKg float64 `json:"weightKg"`
	HeightCm float64 `json:"heightCm"`
}

// ToMeasurement converts the input to kilograms and centimetres.
// Bounds are checked by the caller before conversion.
func ToMeasurement(in Input) Measurement {
	if in.UnitSystem == Imperial {
		return Measurement{
			WeightKg: PoundsToKg(in.Weight),
			HeightCm: FeetInchesToCm(in.Feet, in.Inches),
		}
	}
	return Measurement{WeightKg: in.Weight, HeightCm: in.Height}
}

func PoundsToKg(lbs float64) float64 {
	return lbs * kgPerPound
}

func FeetInchesToCm(feet, inches int) float64 {
	return float64(feet*12+inches) * cmPerInch
}
