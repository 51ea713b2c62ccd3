package responses

import "time"

type QuestionnaireField struct {
	Name       string   `json:"name"`
	PayloadKey string   `json:"payload_key"`
	Label      string   `json:"label"`
	Kind       string   `json:"kind"`
	Options    []string `json:"options,omitempty"`
	AllowOther bool     `json:"allow_other"`
	Required   bool     `json:"required"`
	Lookup     string   `json:"lookup,omitempty"`
	Hint       string   `json:"hint,omitempty"`
}

type QuestionnaireStep struct {
	Index  int                  `json:"index"`
	Key    string               `json:"key"`
	Title  string               `json:"title"`
	Fields []QuestionnaireField `json:"fields"`
}

type QuestionnaireDefinition struct {
	Steps []QuestionnaireStep `json:"steps"`
}

type QuestionnaireStatus struct {
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

type QuestionnaireAnswer struct {
	Value  string   `json:"value,omitempty"`
	Values []string `json:"values,omitempty"`
	Other  string   `json:"other,omitempty"`
}

// QuestionnaireLocationOptions feeds the cascading location pickers.
type QuestionnaireLocationOptions struct {
	Countries []string `json:"countries"`
	States    []string `json:"states"`
	Cities    []string `json:"cities"`
}

type QuestionnaireSession struct {
	Step         int                            `json:"step"`
	StepKey      string                         `json:"step_key"`
	StepTitle    string                         `json:"step_title"`
	StepCount    int                            `json:"step_count"`
	IsLastStep   bool                           `json:"is_last_step"`
	Submitted    bool                           `json:"submitted"`
	ErrorMessage string                         `json:"error_message,omitempty"`
	Answers      map[string]QuestionnaireAnswer `json:"answers"`
	Location     QuestionnaireLocationOptions   `json:"location"`
}

// QuestionnaireResponse values are strings or, for multi-choice fields, string lists.
type QuestionnaireResponse struct {
	ID          string                 `json:"id"`
	Owner       string                 `json:"owner"`
	Fields      map[string]interface{} `json:"fields"`
	CompletedAt time.Time              `json:"completed_at"`
}
