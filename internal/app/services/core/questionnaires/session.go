package questionnaires

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"
	"unicode"

	"panel-service/internal/app/services/core/geography"
)

var (
	ErrUnknownField   = errors.New("unknown questionnaire field")
	ErrFieldKind      = errors.New("operation does not match the field kind")
	ErrInvalidOption  = errors.New("value is not one of the field options")
	ErrInvalidNumber  = errors.New("value must contain digits only")
	ErrOtherNotUsed   = errors.New("field does not accept an Other answer")
	ErrSessionClosed  = errors.New("questionnaire session no longer accepts changes")
	ErrDuplicateValue = errors.New("value selected more than once")
)

// DefaultFailureMessage is shown when the submission gateway rejects a payload.
const DefaultFailureMessage = "We could not save your answers. Please try again."

// FieldAnswer holds the raw answer for one field. Other is the free text
// that replaces the Other option when the answer is resolved.
type FieldAnswer struct {
	Value  string   `json:"value,omitempty"`
	Values []string `json:"values,omitempty"`
	Other  string   `json:"other,omitempty"`
}

func (a FieldAnswer) clone() FieldAnswer {
	a.Values = slices.Clone(a.Values)
	return a
}

type SubmitOutcome int

const (
	// SubmitRejected means nothing was sent: wrong step, invalid answers or a closed session.
	SubmitRejected SubmitOutcome = iota
	SubmitFailed
	SubmitAccepted
)

// SubmissionGateway persists a finished questionnaire.
type SubmissionGateway interface {
	Create(ctx context.Context, submission *Submission) error
}

type SubmissionGatewayFunc func(ctx context.Context, submission *Submission) error

func (f SubmissionGatewayFunc) Create(ctx context.Context, submission *Submission) error {
	return f(ctx, submission)
}

type SessionState struct {
	Step         int                    `json:"step"`
	StepKey      string                 `json:"step_key"`
	StepTitle    string                 `json:"step_title"`
	StepCount    int                    `json:"step_count"`
	IsLastStep   bool                   `json:"is_last_step"`
	Submitting   bool                   `json:"submitting"`
	Submitted    bool                   `json:"submitted"`
	ErrorMessage string                 `json:"error_message,omitempty"`
	Answers      map[string]FieldAnswer `json:"answers"`
}

type SessionOption func(*Session)

// WithStepChangedHook registers a callback fired after every step change.
func WithStepChangedHook(hook func(from, to int)) SessionOption {
	return func(s *Session) {
		s.onStepChanged = hook
	}
}

func WithClock(now func() time.Time) SessionOption {
	return func(s *Session) {
		s.now = now
	}
}

func WithFailureMessage(message string) SessionOption {
	return func(s *Session) {
		s.failureMessage = message
	}
}

// Session walks one respondent through a Definition. It is owned by a
// single caller and is not safe for concurrent use.
type Session struct {
	def    *Definition
	lookup *geography.Lookup

	answers      map[string]*FieldAnswer
	step         int
	submitting   bool
	submitted    bool
	errorMessage string
	submission   *Submission

	onStepChanged  func(from, to int)
	now            func() time.Time
	failureMessage string
}

func NewSession(def *Definition, lookup *geography.Lookup, opts ...SessionOption) *Session {
	s := &Session{
		def:            def,
		lookup:         lookup,
		answers:        make(map[string]*FieldAnswer, len(def.fields)),
		now:            time.Now,
		failureMessage: DefaultFailureMessage,
	}
	for name := range def.fields {
		s.answers[name] = &FieldAnswer{}
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Session) Definition() *Definition {
	return s.def
}

func (s *Session) State() SessionState {
	step := s.def.steps[s.step]
	answers := make(map[string]FieldAnswer, len(s.answers))
	for name, answer := range s.answers {
		answers[name] = answer.clone()
	}
	return SessionState{
		Step:         s.step,
		StepKey:      step.Key,
		StepTitle:    step.Title,
		StepCount:    len(s.def.steps),
		IsLastStep:   s.isLastStep(),
		Submitting:   s.submitting,
		Submitted:    s.submitted,
		ErrorMessage: s.errorMessage,
		Answers:      answers,
	}
}

// Submission is set once Submit has been accepted.
func (s *Session) Submission() *Submission {
	return s.submission
}

func (s *Session) isLastStep() bool {
	return s.step == len(s.def.steps)-1
}

func (s *Session) closed() bool {
	return s.submitted || s.submitting
}

func (s *Session) field(name string) (FieldDefinition, *FieldAnswer, error) {
	field, ok := s.def.Field(name)
	if !ok {
		return FieldDefinition{}, nil, fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	if s.closed() {
		return FieldDefinition{}, nil, ErrSessionClosed
	}
	return field, s.answers[name], nil
}

// SetValue answers a single-choice, free-text or numeric field. An empty
// value clears the answer. Changing the country clears state and city;
// changing the state clears city.
func (s *Session) SetValue(name, value string) error {
	field, answer, err := s.field(name)
	if err != nil {
		return err
	}

	switch field.Kind {
	case KindMultiChoice:
		return fmt.Errorf("%w: %q is multi-choice", ErrFieldKind, name)
	case KindSingleChoice:
		if value != "" && !field.hasOption(value) {
			return fmt.Errorf("%w: %q for %q", ErrInvalidOption, value, name)
		}
	case KindNumericText:
		value = strings.TrimSpace(value)
		if strings.IndexFunc(value, func(r rune) bool { return !unicode.IsDigit(r) }) >= 0 {
			return fmt.Errorf("%w: %q", ErrInvalidNumber, name)
		}
	}

	changed := normalize(answer.Value) != normalize(value)
	answer.Value = value

	if changed {
		switch field.Lookup {
		case LookupCountry:
			s.clear(s.def.lookupField(LookupState))
			s.clear(s.def.lookupField(LookupCity))
		case LookupState:
			s.clear(s.def.lookupField(LookupCity))
		}
	}
	return nil
}

func (s *Session) clear(name string) {
	if answer, ok := s.answers[name]; ok {
		answer.Value = ""
	}
}

// SetValues replaces the selection of a multi-choice field.
func (s *Session) SetValues(name string, values []string) error {
	field, answer, err := s.field(name)
	if err != nil {
		return err
	}
	if field.Kind != KindMultiChoice {
		return fmt.Errorf("%w: %q is not multi-choice", ErrFieldKind, name)
	}

	seen := make(map[string]bool, len(values))
	for _, value := range values {
		if !field.hasOption(value) {
			return fmt.Errorf("%w: %q for %q", ErrInvalidOption, value, name)
		}
		if seen[value] {
			return fmt.Errorf("%w: %q for %q", ErrDuplicateValue, value, name)
		}
		seen[value] = true
	}
	answer.Values = slices.Clone(values)
	return nil
}

// Toggle adds value to a multi-choice selection or removes it if present.
func (s *Session) Toggle(name, value string) error {
	field, answer, err := s.field(name)
	if err != nil {
		return err
	}
	if field.Kind != KindMultiChoice {
		return fmt.Errorf("%w: %q is not multi-choice", ErrFieldKind, name)
	}
	if !field.hasOption(value) {
		return fmt.Errorf("%w: %q for %q", ErrInvalidOption, value, name)
	}

	if i := slices.Index(answer.Values, value); i >= 0 {
		answer.Values = slices.Delete(answer.Values, i, i+1)
		return nil
	}
	answer.Values = append(answer.Values, value)
	return nil
}

// SetOther stores the free text used in place of the Other option.
func (s *Session) SetOther(name, text string) error {
	field, answer, err := s.field(name)
	if err != nil {
		return err
	}
	if !field.AllowOther {
		return fmt.Errorf("%w: %q", ErrOtherNotUsed, name)
	}
	answer.Other = strings.TrimSpace(text)
	return nil
}

// Validate returns the message of the first failing rule of step i, or ""
// when the step is valid. Steps out of range have no rules.
func (s *Session) Validate(i int) string {
	if i < 0 || i >= len(s.def.steps) {
		return ""
	}

	var selection geography.Selection
	for _, field := range s.def.steps[i].Fields {
		answer := s.answers[field.Name]

		switch field.Kind {
		case KindMultiChoice:
			if field.Required && len(answer.Values) == 0 {
				return field.RequiredMessage
			}
		case KindSingleChoice:
			if field.Required && answer.Value == "" {
				return field.RequiredMessage
			}
		default:
			if field.Required && strings.TrimSpace(answer.Value) == "" {
				return field.RequiredMessage
			}
		}

		if field.Lookup == LookupNone || strings.TrimSpace(answer.Value) == "" {
			continue
		}
		if !s.resolveLocation(field.Lookup, &selection) {
			return field.InvalidMessage
		}
	}
	return ""
}

// resolveLocation fills selection up to level and reports whether that level matched.
func (s *Session) resolveLocation(level LookupLevel, selection *geography.Selection) bool {
	if s.lookup == nil {
		return false
	}
	*selection = s.lookup.Resolve(
		s.answerValue(s.def.lookupField(LookupCountry)),
		s.answerValue(s.def.lookupField(LookupState)),
		s.answerValue(s.def.lookupField(LookupCity)),
	)
	switch level {
	case LookupCountry:
		return selection.Country != nil
	case LookupState:
		return selection.State != nil
	case LookupCity:
		return selection.City != nil
	}
	return false
}

func (s *Session) answerValue(name string) string {
	if answer, ok := s.answers[name]; ok {
		return answer.Value
	}
	return ""
}

// Advance moves to the next step when the current one validates. It never
// moves past the last step; Submit is the only way forward from there.
func (s *Session) Advance() bool {
	if s.closed() || s.isLastStep() {
		return false
	}
	if message := s.Validate(s.step); message != "" {
		s.errorMessage = message
		return false
	}
	s.moveTo(s.step + 1)
	return true
}

// Retreat moves one step back without validating.
func (s *Session) Retreat() bool {
	if s.closed() || s.step == 0 {
		return false
	}
	s.moveTo(s.step - 1)
	return true
}

// JumpTo only goes back to an already visited step.
func (s *Session) JumpTo(i int) bool {
	if s.closed() || i < 0 || i >= s.step {
		return false
	}
	s.moveTo(i)
	return true
}

func (s *Session) moveTo(step int) {
	from := s.step
	s.step = step
	s.errorMessage = ""
	if s.onStepChanged != nil {
		s.onStepChanged(from, step)
	}
}

// Submit validates the last step, assembles the payload and hands it to gw.
// A gateway failure keeps the session on the last step so it can be retried.
func (s *Session) Submit(ctx context.Context, owner string, gw SubmissionGateway) SubmitOutcome {
	if s.closed() || !s.isLastStep() {
		return SubmitRejected
	}
	if message := s.Validate(s.step); message != "" {
		s.errorMessage = message
		return SubmitRejected
	}

	submission, err := s.Payload(owner)
	if err != nil {
		s.errorMessage = s.failureMessage
		return SubmitFailed
	}

	s.submitting = true
	s.errorMessage = ""
	err = gw.Create(ctx, submission)
	s.submitting = false

	if err != nil {
		s.errorMessage = s.failureMessage
		return SubmitFailed
	}

	s.submitted = true
	s.submission = submission
	return SubmitAccepted
}

// Payload resolves every answer into the submission shape. Multi-choice
// answers are encoded as JSON arrays, location answers use the dataset
// spelling and empty optional answers are left out.
func (s *Session) Payload(owner string) (*Submission, error) {
	fields := make(map[string]string)
	var selection geography.Selection
	if s.lookup != nil {
		selection = s.lookup.Resolve(
			s.answerValue(s.def.lookupField(LookupCountry)),
			s.answerValue(s.def.lookupField(LookupState)),
			s.answerValue(s.def.lookupField(LookupCity)),
		)
	}

	for _, step := range s.def.steps {
		for _, field := range step.Fields {
			answer := s.answers[field.Name]

			if field.Kind == KindMultiChoice {
				encoded, err := encodeValues(ResolveMulti(answer.Values, answer.Other))
				if err != nil {
					return nil, err
				}
				fields[field.Key()] = encoded
				continue
			}

			var value string
			switch field.Kind {
			case KindSingleChoice:
				value = ResolveSingle(answer.Value, answer.Other)
			default:
				value = strings.TrimSpace(answer.Value)
				if canonical := canonicalName(field.Lookup, selection); canonical != "" {
					value = canonical
				}
			}

			if value == "" && !field.Required {
				continue
			}
			fields[field.Key()] = value
		}
	}

	return &Submission{
		Owner:       owner,
		Fields:      fields,
		CompletedAt: s.now().UTC(),
	}, nil
}

func canonicalName(level LookupLevel, selection geography.Selection) string {
	switch {
	case level == LookupCountry && selection.Country != nil:
		return selection.Country.Name
	case level == LookupState && selection.State != nil:
		return selection.State.Name
	case level == LookupCity && selection.City != nil:
		return selection.City.Name
	}
	return ""
}

func normalize(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}
