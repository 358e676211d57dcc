package models

import "bmiguide.healthguide.org/internal/bmi"

// DeltaModel is the gain or loss target shown beside the current weight.
type DeltaModel struct {
	Label   string  `json:"label"`
	ValueKg float64 `json:"valueKg"`
	Display string  `json:"display"`
}

// Assessment is the entry returned for one BMI calculation.
type Assessment struct {
	UnitSystem    string       `json:"unitSystem"`
	WeightKg      float64      `json:"weightKg"`
	HeightCm      float64      `json:"heightCm"`
	BMI           float64      `json:"bmi"`
	Category      string       `json:"category"`
	CategoryID    string       `json:"categoryId"`
	Severity      bmi.Severity `json:"severity"`
	Goal          string       `json:"goal"`
	Tips          []string     `json:"tips"`
	Encouragement string       `json:"encouragement"`
	HealthyMin    float64      `json:"healthyMin"`
	HealthyMax    float64      `json:"healthyMax"`
	Delta         DeltaModel   `json:"delta"`
}

// NewAssessment flattens a result for the API. Canonical weight and height are rounded to one decimal.
func NewAssessment(unitSystem bmi.UnitSystem, res bmi.Result) Assessment {
	return Assessment{
		UnitSystem:    unitSystem.String(),
		WeightKg:      bmi.Round1(res.Measurement.WeightKg),
		HeightCm:      bmi.Round1(res.Measurement.HeightCm),
		BMI:           res.BMI,
		Category:      res.Category.String(),
		CategoryID:    res.Category.Slug(),
		Severity:      res.Severity,
		Goal:          res.Goal,
		Tips:          res.Tips,
		Encouragement: res.Encouragement,
		HealthyMin:    res.HealthyMin,
		HealthyMax:    res.HealthyMax,
		Delta: DeltaModel{
			Label:   res.Delta.Label,
			ValueKg: res.Delta.ValueKg,
			Display: res.Delta.Display(),
		},
	}
}

// HealthyRangeEntry is the healthy weight interval for a height.
type HealthyRangeEntry struct {
	HeightCm float64 `json:"heightCm"`
	MinKg    float64 `json:"minKg"`
	MaxKg    float64 `json:"maxKg"`
	MinBMI   float64 `json:"minBmi"`
	MaxBMI   float64 `json:"maxBmi"`
}

func NewHealthyRangeEntry(heightCm float64) HealthyRangeEntry {
	r := bmi.HealthyRangeFor(heightCm)
	return HealthyRangeEntry{
		HeightCm: bmi.Round1(heightCm),
		MinKg:    r.MinKg,
		MaxKg:    r.MaxKg,
		MinBMI:   bmi.HealthyBMIMin,
		MaxBMI:   bmi.HealthyBMIMax,
	}
}
