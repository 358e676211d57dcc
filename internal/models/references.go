package models

import "bmiguide.healthguide.org/internal/bmi"

// ReferencesModel carries the category definitions an entry refers to.
type ReferencesModel struct {
	Categories []CategoryReference `json:"categories"`
}

// NewEmptyReferences creates a new empty References model with initialized empty slices
func NewEmptyReferences() ReferencesModel {
	return ReferencesModel{
		Categories: []CategoryReference{},
	}
}

// NewCategoryReferences references the given categories in order.
func NewCategoryReferences(categories ...bmi.Category) ReferencesModel {
	refs := NewEmptyReferences()
	for _, c := range categories {
		refs.Categories = append(refs.Categories, NewCategoryReference(c))
	}
	return refs
}
