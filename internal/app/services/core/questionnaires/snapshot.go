package questionnaires

import (
	"errors"
	"fmt"

	"panel-service/internal/app/services/core/geography"
)

var ErrInvalidSnapshot = errors.New("questionnaire snapshot does not match the definition")

// Snapshot is the serialisable state of an open session. The submitting
// flag is transient and not kept.
type Snapshot struct {
	Step         int                    `json:"step"`
	Submitted    bool                   `json:"submitted"`
	ErrorMessage string                 `json:"error_message,omitempty"`
	Answers      map[string]FieldAnswer `json:"answers"`
}

func (s *Session) Snapshot() Snapshot {
	answers := make(map[string]FieldAnswer, len(s.answers))
	for name, answer := range s.answers {
		answers[name] = answer.clone()
	}
	return Snapshot{
		Step:         s.step,
		Submitted:    s.submitted,
		ErrorMessage: s.errorMessage,
		Answers:      answers,
	}
}

// RestoreSession rebuilds a session from a snapshot taken against def.
// Answers for fields def no longer knows are dropped.
func RestoreSession(def *Definition, lookup *geography.Lookup, snap Snapshot, opts ...SessionOption) (*Session, error) {
	if snap.Step < 0 || snap.Step >= def.StepCount() {
		return nil, fmt.Errorf("%w: step %d out of range", ErrInvalidSnapshot, snap.Step)
	}

	s := NewSession(def, lookup, opts...)
	for name, answer := range snap.Answers {
		if _, ok := s.answers[name]; !ok {
			continue
		}
		restored := answer.clone()
		s.answers[name] = &restored
	}
	s.step = snap.Step
	s.submitted = snap.Submitted
	s.errorMessage = snap.ErrorMessage
	return s, nil
}
