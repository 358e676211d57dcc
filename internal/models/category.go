package models

import "bmiguide.healthguide.org/internal/bmi"

// CategoryReference describes one BMI category. MinBMI is inclusive and
// MaxBMI exclusive; either is nil when the band is open on that side.
type CategoryReference struct {
	ID                    string       `json:"id"`
	Name                  string       `json:"name"`
	MinBMI                *float64     `json:"minBmi"`
	MaxBMI                *float64     `json:"maxBmi"`
	Severity              bmi.Severity `json:"severity"`
	GoalTemplate          string       `json:"goalTemplate"`
	EncouragementTemplate string       `json:"encouragementTemplate"`
	Tips                  []bmi.Tip    `json:"tips"`
}

func NewCategoryReference(c bmi.Category) CategoryReference {
	ref := CategoryReference{
		ID:                    c.Slug(),
		Name:                  c.String(),
		Severity:              c.Severity(),
		GoalTemplate:          bmi.GoalTemplate(c),
		EncouragementTemplate: bmi.EncouragementTemplate(c),
		Tips:                  bmi.Recommend(c, 0, 0, 0).Tips,
	}

	lower, hasLower, upper, hasUpper := c.Bounds()
	if hasLower {
		ref.MinBMI = &lower
	}
	if hasUpper {
		ref.MaxBMI = &upper
	}
	return ref
}

// AllCategoryReferences lists every category in ascending BMI order.
func AllCategoryReferences() []CategoryReference {
	refs := make([]CategoryReference, 0, len(bmi.Categories))
	for _, c := range bmi.Categories {
		refs = append(refs, NewCategoryReference(c))
	}
	return refs
}
