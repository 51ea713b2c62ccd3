package questionnaires

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

type FieldKind int

const (
	KindSingleChoice FieldKind = iota + 1
	KindMultiChoice
	KindFreeText
	KindNumericText
)

func (k FieldKind) String() string {
	switch k {
	case KindSingleChoice:
		return "single_choice"
	case KindMultiChoice:
		return "multi_choice"
	case KindFreeText:
		return "free_text"
	case KindNumericText:
		return "numeric_text"
	default:
		return "unknown"
	}
}

func (k FieldKind) isChoice() bool {
	return k == KindSingleChoice || k == KindMultiChoice
}

// LookupLevel marks a free-text field that must match the geographic dataset.
type LookupLevel int

const (
	LookupNone LookupLevel = iota
	LookupCountry
	LookupState
	LookupCity
)

func (l LookupLevel) String() string {
	switch l {
	case LookupCountry:
		return "country"
	case LookupState:
		return "state"
	case LookupCity:
		return "city"
	default:
		return ""
	}
}

type FieldDefinition struct {
	Name string
	// PayloadKey is the submission key; Name is used when empty.
	PayloadKey      string
	Label           string
	Kind            FieldKind
	Options         []string
	AllowOther      bool
	Required        bool
	RequiredMessage string
	Lookup          LookupLevel
	InvalidMessage  string
	// Hint is shown to the user only and never validated.
	Hint string
}

func (f FieldDefinition) Key() string {
	if f.PayloadKey != "" {
		return f.PayloadKey
	}
	return f.Name
}

func (f FieldDefinition) hasOption(value string) bool {
	return slices.Contains(f.Options, value)
}

type Step struct {
	Key    string
	Title  string
	Fields []FieldDefinition
}

type fieldRef struct {
	step  int
	index int
}

// Definition is an immutable, validated list of steps.
type Definition struct {
	steps  []Step
	fields map[string]fieldRef
	lookup map[LookupLevel]string
}

var ErrInvalidDefinition = errors.New("invalid questionnaire definition")

func NewDefinition(steps ...Step) (*Definition, error) {
	if len(steps) == 0 {
		return nil, fmt.Errorf("%w: no steps", ErrInvalidDefinition)
	}

	d := &Definition{
		steps:  make([]Step, len(steps)),
		fields: make(map[string]fieldRef),
		lookup: make(map[LookupLevel]string),
	}
	payloadKeys := make(map[string]bool)

	for i, step := range steps {
		if len(step.Fields) == 0 {
			return nil, fmt.Errorf("%w: step %q has no fields", ErrInvalidDefinition, step.Key)
		}
		copied := Step{Key: step.Key, Title: step.Title, Fields: make([]FieldDefinition, len(step.Fields))}
		for j, field := range step.Fields {
			if err := d.checkField(field, payloadKeys); err != nil {
				return nil, err
			}
			field.Options = slices.Clone(field.Options)
			if field.Required && field.RequiredMessage == "" {
				field.RequiredMessage = fmt.Sprintf("Please complete %s.", labelOf(field))
			}
			if field.Lookup != LookupNone && field.InvalidMessage == "" {
				field.InvalidMessage = fmt.Sprintf("Please select a valid %s from the list.", field.Lookup)
			}
			copied.Fields[j] = field
			d.fields[field.Name] = fieldRef{step: i, index: j}
			payloadKeys[field.Key()] = true
			if field.Lookup != LookupNone {
				d.lookup[field.Lookup] = field.Name
			}
		}
		d.steps[i] = copied
	}

	if _, ok := d.lookup[LookupState]; ok {
		if _, ok := d.lookup[LookupCountry]; !ok {
			return nil, fmt.Errorf("%w: state lookup without a country field", ErrInvalidDefinition)
		}
	}
	if _, ok := d.lookup[LookupCity]; ok {
		if _, ok := d.lookup[LookupState]; !ok {
			return nil, fmt.Errorf("%w: city lookup without a state field", ErrInvalidDefinition)
		}
	}
	return d, nil
}

func (d *Definition) checkField(field FieldDefinition, payloadKeys map[string]bool) error {
	switch {
	case strings.TrimSpace(field.Name) == "":
		return fmt.Errorf("%w: field without a name", ErrInvalidDefinition)
	case d.hasField(field.Name):
		return fmt.Errorf("%w: duplicate field %q", ErrInvalidDefinition, field.Name)
	case payloadKeys[field.Key()]:
		return fmt.Errorf("%w: duplicate payload key %q", ErrInvalidDefinition, field.Key())
	case field.Kind < KindSingleChoice || field.Kind > KindNumericText:
		return fmt.Errorf("%w: field %q has no kind", ErrInvalidDefinition, field.Name)
	case field.Kind.isChoice() && len(field.Options) == 0:
		return fmt.Errorf("%w: choice field %q has no options", ErrInvalidDefinition, field.Name)
	case field.AllowOther && !field.hasOption(OtherOption):
		return fmt.Errorf("%w: field %q allows Other but does not list it", ErrInvalidDefinition, field.Name)
	case field.Lookup != LookupNone && field.Kind != KindFreeText:
		return fmt.Errorf("%w: lookup field %q must be free text", ErrInvalidDefinition, field.Name)
	case field.Lookup != LookupNone && d.lookup[field.Lookup] != "":
		return fmt.Errorf("%w: more than one %s lookup field", ErrInvalidDefinition, field.Lookup)
	}
	return nil
}

func (d *Definition) hasField(name string) bool {
	_, ok := d.fields[name]
	return ok
}

func labelOf(field FieldDefinition) string {
	if field.Label != "" {
		return strings.ToLower(field.Label)
	}
	return field.Name
}

func (d *Definition) StepCount() int {
	return len(d.steps)
}

// Steps returns a copy of the step list.
func (d *Definition) Steps() []Step {
	steps := make([]Step, len(d.steps))
	for i, step := range d.steps {
		fields := slices.Clone(step.Fields)
		for j := range fields {
			fields[j].Options = slices.Clone(fields[j].Options)
		}
		steps[i] = Step{Key: step.Key, Title: step.Title, Fields: fields}
	}
	return steps
}

func (d *Definition) Field(name string) (FieldDefinition, bool) {
	ref, ok := d.fields[name]
	if !ok {
		return FieldDefinition{}, false
	}
	return d.steps[ref.step].Fields[ref.index], true
}

// StepOf reports the index of the step that owns the field.
func (d *Definition) StepOf(name string) (int, bool) {
	ref, ok := d.fields[name]
	return ref.step, ok
}

func (d *Definition) lookupField(level LookupLevel) string {
	return d.lookup[level]
}
