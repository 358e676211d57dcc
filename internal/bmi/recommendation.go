package bmi

import (
	"fmt"
	"strconv"
)

// Tip is a single piece of category guidance.
type Tip struct {
	Icon  string `json:"icon"`
	Title string `json:"title"`
	Text  string `json:"text"`
}

// String renders the tip the way the calculator page shows it, with the title in bold markdown.
func (t Tip) String() string {
	return fmt.Sprintf("%s **%s**: %s", t.Icon, t.Title, t.Text)
}

// RecommendationSet is the goal statement and ordered tips for one category.
type RecommendationSet struct {
	Goal string `json:"goal"`
	Tips []Tip  `json:"tips"`
}

// TipStrings returns the rendered tips in order.
func (s RecommendationSet) TipStrings() []string {
	out := make([]string, len(s.Tips))
	for i, t := range s.Tips {
		out[i] = t.String()
	}
	return out
}

type guidance struct {
	// goal is a format string taking min and max kg; it has no verbs for Normal.
	goal          string
	encouragement string
	tips          [6]Tip
}

var guidanceTable = [...]guidance{
	Underweight: {
		goal:          "Aim to gradually gain weight to reach %s-%s kg",
		encouragement: "Your BMI is %s. Every body is unique and beautiful! If you'd like to gain some healthy weight, we have some great tips for you. Remember, small consistent steps lead to amazing results! 🌟",
		tips: [6]Tip{
			{"🥜", "Nutrient-dense calories", "Add healthy fats like nuts, avocados, and olive oil to your meals"},
			{"🍽️", "Frequent meals", "Eat 5-6 smaller meals throughout the day instead of 3 large ones"},
			{"💪", "Strength training", "Build muscle mass with resistance exercises 2-3 times per week"},
			{"🥛", "Protein power", "Include protein-rich foods like eggs, fish, dairy, and legumes"},
			{"🍌", "Healthy snacks", "Try smoothies, nuts, dried fruits, and whole grain crackers"},
			{"💧", "Stay hydrated", "Drink plenty of water, but avoid filling up on liquids before meals"},
		},
	},
	Normal: {
		goal:          "Maintain your current healthy weight range",
		encouragement: "Fantastic! Your BMI is %s, which falls in the healthy range. You're doing great at maintaining your health. Keep up the wonderful work! 🎉",
		tips: [6]Tip{
			{"🏃", "Stay active", "Continue regular physical activity - aim for 150 minutes of moderate exercise weekly"},
			{"🥗", "Balanced diet", "Keep eating a variety of fruits, vegetables, whole grains, and lean proteins"},
			{"⚖️", "Regular monitoring", "Check your weight monthly to maintain your healthy range"},
			{"😴", "Quality sleep", "Maintain 7-9 hours of good sleep for optimal health"},
			{"🧘", "Stress management", "Practice stress-reduction techniques like meditation or yoga"},
			{"🎯", "Consistency", "Keep up your healthy habits - you're doing amazingly well!"},
		},
	},
	Overweight: {
		goal:          "Gradually work towards %s-%s kg through sustainable lifestyle changes",
		encouragement: "Your BMI is %s. You're on a journey to better health, and that's something to be proud of! With some positive changes, you can reach your goals. Every small step counts! 💪",
		tips: [6]Tip{
			{"🚶", "Start moving", "Begin with 30 minutes of walking daily - it's free and effective!"},
			{"🍎", "Portion awareness", "Use smaller plates and listen to your hunger cues"},
			{"🥦", "Veggie power", "Fill half your plate with colorful vegetables at each meal"},
			{"💧", "Hydrate smart", "Drink water before meals and replace sugary drinks with water"},
			{"📱", "Track progress", "Keep a food diary or use an app to monitor your eating patterns"},
			{"🎯", "Small goals", "Aim to lose 1-2 pounds per week through sustainable changes"},
		},
	},
	Obese: {
		goal:          "Work towards %s-%s kg with support from healthcare professionals",
		encouragement: "Your BMI is %s. Thank you for taking this important step towards better health! You have the power to make positive changes. Let's explore some encouraging strategies together! 🌈",
		tips: [6]Tip{
			{"👩‍⚕️", "Professional support", "Consider consulting with a doctor, nutritionist, or dietitian"},
			{"🐢", "Slow and steady", "Focus on gradual, sustainable changes rather than quick fixes"},
			{"🏊", "Low-impact exercise", "Try swimming, walking, or cycling to protect your joints"},
			{"🍽️", "Meal planning", "Prepare healthy meals in advance to avoid impulsive food choices"},
			{"👥", "Support network", "Join a support group or find an accountability partner"},
			{"🎉", "Celebrate wins", "Acknowledge every positive change, no matter how small!"},
		},
	},
}

// formatKg prints a one-decimal value the way the results page does ("72.0", not "72").
func formatKg(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

// Recommend returns the goal and tips for a category. currentWeightKg does not
// change the text; it is accepted so callers can pass a full assessment.
func Recommend(c Category, currentWeightKg, minKg, maxKg float64) RecommendationSet {
	g := guidanceFor(c)

	goal := g.goal
	if c != Normal {
		goal = fmt.Sprintf(g.goal, formatKg(minKg), formatKg(maxKg))
	}

	tips := make([]Tip, len(g.tips))
	copy(tips, g.tips[:])

	return RecommendationSet{Goal: goal, Tips: tips}
}

// Encourage returns the category's encouragement message with the BMI filled in.
func Encourage(c Category, bmi float64) string {
	return fmt.Sprintf(guidanceFor(c).encouragement, formatKg(bmi))
}

// GoalTemplate and EncouragementTemplate expose the raw per-category text.
func GoalTemplate(c Category) string {
	return guidanceFor(c).goal
}

func EncouragementTemplate(c Category) string {
	return guidanceFor(c).encouragement
}

// guidanceFor falls back to Obese for out-of-range values, matching Classify's open top band.
func guidanceFor(c Category) guidance {
	if !c.Valid() {
		c = Obese
	}
	return guidanceTable[c]
}

// Delta labels.
const (
	DeltaMaintain = "maintain"
	DeltaGain     = "gain"
	DeltaLose     = "lose"
)

// Delta is the weight change that would bring the current weight to the edge of the healthy range.
type Delta struct {
	Label   string  `json:"label"`
	ValueKg float64 `json:"valueKg"`
}

// Display renders the delta as shown beside the current weight: "Maintain", "+3.2" or "-5.0".
func (d Delta) Display() string {
	switch d.Label {
	case DeltaGain:
		return "+" + formatKg(d.ValueKg)
	case DeltaLose:
		return "-" + formatKg(d.ValueKg)
	default:
		return "Maintain"
	}
}

// WeightDelta computes the gain or loss target for a category.
// Normal carries no value; the others are rounded to one decimal.
func WeightDelta(c Category, currentWeightKg, minKg, maxKg float64) Delta {
	switch c {
	case Normal:
		return Delta{Label: DeltaMaintain}
	case Underweight:
		return Delta{Label: DeltaGain, ValueKg: Round1(minKg - currentWeightKg)}
	default:
		return Delta{Label: DeltaLose, ValueKg: Round1(currentWeightKg - maxKg)}
	}
}
