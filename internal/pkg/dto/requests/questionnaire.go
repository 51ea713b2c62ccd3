package requests

// QuestionnaireAnswer carries exactly one mutation: value, values, toggle or other.
type QuestionnaireAnswer struct {
	Field  string   `json:"field" validate:"required"`
	Value  *string  `json:"value"`
	Values []string `json:"values"`
	Toggle *string  `json:"toggle"`
	Other  *string  `json:"other" validate:"omitempty,max=200"`
}

type QuestionnaireJump struct {
	Step *int `json:"step" validate:"required,gte=0"`
}
