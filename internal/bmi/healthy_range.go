package bmi

// Normal-weight BMI limits used for the healthy range.
const (
	HealthyBMIMin = 18.5
	HealthyBMIMax = 24.9
)

// HealthyRange is the weight interval that keeps BMI within [18.5, 24.9] for a height.
type HealthyRange struct {
	MinKg float64 `json:"minKg"`
	MaxKg float64 `json:"maxKg"`
}

// HealthyRangeFor depends on height only; both ends are rounded to one decimal.
func HealthyRangeFor(heightCm float64) HealthyRange {
	h := heightCm / 100.0
	sq := h * h
	return HealthyRange{
		MinKg: Round1(HealthyBMIMin * sq),
		MaxKg: Round1(HealthyBMIMax * sq),
	}
}

// Contains reports whether weightKg lies inside the range, inclusive.
func (r HealthyRange) Contains(weightKg float64) bool {
	return weightKg >= r.MinKg && weightKg <= r.MaxKg
}
