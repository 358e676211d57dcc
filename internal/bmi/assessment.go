package bmi

// Result is everything a client needs to present one calculation.
type Result struct {
	Measurement   Measurement `json:"measurement"`
	BMI           float64     `json:"bmi"`
	Category      Category    `json:"category"`
	Severity      Severity    `json:"severity"`
	Goal          string      `json:"goal"`
	Tips          []string    `json:"tips"`
	Encouragement string      `json:"encouragement"`
	HealthyMin    float64     `json:"healthyMin"`
	HealthyMax    float64     `json:"healthyMax"`
	Delta         Delta       `json:"delta"`
}

// Assess runs the full pipeline: convert units, compute and classify the BMI,
// derive the healthy range and pick the guidance. The only error is a
// *DomainError for a non-positive height.
func Assess(in Input) (Result, error) {
	m := ToMeasurement(in)

	value, err := ComputeBMI(m.WeightKg, m.HeightCm)
	if err != nil {
		return Result{}, err
	}

	category := Classify(value)
	healthy := HealthyRangeFor(m.HeightCm)
	recs := Recommend(category, m.WeightKg, healthy.MinKg, healthy.MaxKg)

	return Result{
		Measurement:   m,
		BMI:           value,
		Category:      category,
		Severity:      category.Severity(),
		Goal:          recs.Goal,
		Tips:          recs.TipStrings(),
		Encouragement: Encourage(category, value),
		HealthyMin:    healthy.MinKg,
		HealthyMax:    healthy.MaxKg,
		Delta:         WeightDelta(category, m.WeightKg, healthy.MinKg, healthy.MaxKg),
	}, nil
}
