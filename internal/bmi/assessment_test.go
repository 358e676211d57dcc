package bmi

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssessScenarios(t *testing.T) {
	tests := []struct {
		name     string
		in       Input
		bmi      float64
		category Category
		delta    Delta
	}{
		{
			name:     "metric normal",
			in:       Input{UnitSystem: Metric, Weight: 70, Height: 170},
			bmi:      24.2,
			category: Normal,
			delta:    Delta{Label: DeltaMaintain},
		},
		{
			name:     "metric underweight",
			in:       Input{UnitSystem: Metric, Weight: 50, Height: 170},
			bmi:      17.3,
			category: Underweight,
			delta:    Delta{Label: DeltaGain, ValueKg: 3.5},
		},
		{
			name:     "metric obese",
			in:       Input{UnitSystem: Metric, Weight: 90, Height: 170},
			bmi:      31.1,
			category: Obese,
			delta:    Delta{Label: DeltaLose, ValueKg: 18.0},
		},
		{
			name:     "imperial normal",
			in:       Input{UnitSystem: Imperial, Weight: 154, Feet: 5, Inches: 7},
			bmi:      24.1,
			category: Normal,
			delta:    Delta{Label: DeltaMaintain},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Assess(tt.in)
			require.NoError(t, err)

			assert.Equal(t, tt.bmi, res.BMI)
			assert.Equal(t, tt.category, res.Category)
			assert.Equal(t, tt.category.Severity(), res.Severity)
			assert.Equal(t, tt.delta, res.Delta)
			assert.Len(t, res.Tips, 6)
			assert.Contains(t, res.Encouragement, "Your BMI is")
			assert.Less(t, res.HealthyMin, res.HealthyMax)
		})
	}
}

func TestAssessHealthyRange(t *testing.T) {
	res, err := Assess(Input{UnitSystem: Metric, Weight: 70, Height: 170})
	require.NoError(t, err)
	assert.Equal(t, 53.5, res.HealthyMin)
	assert.Equal(t, 72.0, res.HealthyMax)
	assert.Equal(t, Measurement{WeightKg: 70, HeightCm: 170}, res.Measurement)
}

func TestAssessDomainError(t *testing.T) {
	_, err := Assess(Input{UnitSystem: Metric, Weight: 70, Height: 0})
	require.Error(t, err)

	var domainErr *DomainError
	assert.True(t, errors.As(err, &domainErr))

	_, err = Assess(Input{UnitSystem: Imperial, Weight: 150})
	assert.True(t, errors.Is(err, ErrNonPositiveHeight))
}

func TestResultJSON(t *testing.T) {
	res, err := Assess(Input{UnitSystem: Metric, Weight: 90, Height: 170})
	require.NoError(t, err)

	b, err := json.Marshal(res)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(b, &decoded))
	assert.Equal(t, 31.1, decoded["bmi"])
	assert.Equal(t, "Obese", decoded["category"])
	assert.Equal(t, "info", decoded["severity"])
	assert.Equal(t, 53.5, decoded["healthyMin"])
	assert.Equal(t, 72.0, decoded["healthyMax"])

	delta, ok := decoded["delta"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "lose", delta["label"])
	assert.Equal(t, 18.0, delta["valueKg"])
}
