package profiles

import (
	"math"
	"reflect"
)

const (
	CategoryIdentity  = "IDENTITY"
	CategoryContact   = "CONTACT"
	CategoryDocuments = "DOCUMENTS"
)

type Category struct {
	Name   string
	Fields []string
}

// Schema is the ordered list of categories a profile is scored against.
type Schema []Category

func (s Schema) TotalFields() int {
	total := 0
	for _, category := range s {
		total += len(category.Fields)
	}
	return total
}

func DefaultSchema() Schema {
	return Schema{
		{Name: CategoryIdentity, Fields: []string{
			"name",
			"age",
			"educationLevel",
			"fieldOfStudy",
			"graduationYear",
			"occupationStatus",
			"roleLevel",
			"yearsOfExperience",
			"province",
			"city",
		}},
		{Name: CategoryContact, Fields: []string{
			"email",
			"phone",
			"languages",
			"preferredContact",
		}},
		{Name: CategoryDocuments, Fields: []string{
			"organizationType",
			"industry",
			"department",
			"hobbies",
			"researchConsent",
		}},
	}
}

// Record exposes profile values to the scorer. A missing value is nil.
type Record interface {
	Value(category, field string) any
}

// FlatRecord ignores the category and looks fields up by name.
type FlatRecord map[string]any

func (r FlatRecord) Value(_, field string) any {
	return r[field]
}

// SectionedRecord keeps one section per category.
type SectionedRecord map[string]map[string]any

func (r SectionedRecord) Value(category, field string) any {
	return r[category][field]
}

type CompletionResult struct {
	Percentage           int      `json:"percentage"`
	IncompleteCategories []string `json:"incomplete_categories"`
}

// IsFilled reports false for nil, nil pointers, maps, slices and interfaces,
// and for empty slices or arrays. Empty strings and zero numbers count as filled.
func IsFilled(value any) bool {
	if value == nil {
		return false
	}

	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Interface:
		return !v.IsNil()
	case reflect.Slice:
		return !v.IsNil() && v.Len() > 0
	case reflect.Array:
		return v.Len() > 0
	}
	return true
}

// Score counts filled fields over the whole schema. The percentage is
// rounded and a category is incomplete as soon as one of its fields is unfilled.
func Score(schema Schema, record Record) CompletionResult {
	result := CompletionResult{IncompleteCategories: []string{}}

	total := schema.TotalFields()
	if total == 0 {
		return result
	}

	filled := 0
	for _, category := range schema {
		complete := true
		for _, field := range category.Fields {
			var value any
			if record != nil {
				value = record.Value(category.Name, field)
			}
			if IsFilled(value) {
				filled++
			} else {
				complete = false
			}
		}
		if !complete {
			result.IncompleteCategories = append(result.IncompleteCategories, category.Name)
		}
	}

	result.Percentage = int(math.Round(100 * float64(filled) / float64(total)))
	return result
}
