package bmi

// ScaleBand is one coloured segment of the BMI scale chart.
type ScaleBand struct {
	Category Category `json:"category"`
	From     float64  `json:"from"`
	To       float64  `json:"to"`
	Color    string   `json:"color"`
	Label    string   `json:"label"`
}

// Scale describes the BMI chart: the bands and the visible window.
type Scale struct {
	Bands   []ScaleBand `json:"bands"`
	ViewMin float64     `json:"viewMin"`
	ViewMax float64     `json:"viewMax"`
}

// scaleTop closes the open Obese band for drawing purposes.
const scaleTop = 40

var scaleColors = [...]string{
	Underweight: "lightblue",
	Normal:      "lightgreen",
	Overweight:  "orange",
	Obese:       "lightcoral",
}

var scaleLabels = [...]string{
	Underweight: "Underweight (<18.5)",
	Normal:      "Normal (18.5-24.9)",
	Overweight:  "Overweight (25-29.9)",
	Obese:       "Obese (≥30)",
}

// BMIScale builds the chart description from the category thresholds.
func BMIScale() Scale {
	bands := make([]ScaleBand, 0, len(Categories))
	for _, c := range Categories {
		lower, _, upper, hasUpper := c.Bounds()
		if !hasUpper {
			upper = scaleTop
		}
		bands = append(bands, ScaleBand{
			Category: c,
			From:     lower,
			To:       upper,
			Color:    scaleColors[c],
			Label:    scaleLabels[c],
		})
	}
	return Scale{Bands: bands, ViewMin: 15, ViewMax: 35}
}

// Guide holds the advice shown to everyone regardless of category.
type Guide struct {
	Nutrition  []string `json:"nutrition"`
	Lifestyle  []string `json:"lifestyle"`
	Disclaimer string   `json:"disclaimer"`
	Closing    string   `json:"closing"`
}

var universalGuide = Guide{
	Nutrition: []string{
		"Eat the rainbow - colorful fruits and vegetables",
		"Choose whole grains over refined ones",
		"Include lean proteins in every meal",
		"Limit processed foods and added sugars",
		"Practice mindful eating",
	},
	Lifestyle: []string{
		"Move your body daily - find activities you enjoy",
		"Prioritize 7-9 hours of quality sleep",
		"Manage stress through relaxation techniques",
		"Stay hydrated throughout the day",
		"Build a supportive community",
	},
	Disclaimer: "This BMI calculator is for educational purposes only. BMI doesn't account for muscle mass, bone density, or overall body composition. Always consult with healthcare professionals for personalized medical advice and before making significant changes to your diet or exercise routine.",
	Closing:    "Remember: Your worth isn't defined by a number. You're taking positive steps towards better health, and that's what truly matters! 💙",
}

// UniversalGuide returns a copy of the general advice.
func UniversalGuide() Guide {
	g := universalGuide
	g.Nutrition = append([]string(nil), universalGuide.Nutrition...)
	g.Lifestyle = append([]string(nil), universalGuide.Lifestyle...)
	return g
}
