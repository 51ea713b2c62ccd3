package models

import "time"

// QuestionnaireResponse is one finished onboarding questionnaire. Fields
// holds the resolved answers keyed by payload key; multi-choice answers are
// JSON arrays.
type QuestionnaireResponse struct {
	ID          string            `json:"id" bson:"_id,omitempty"`
	Owner       string            `json:"owner" bson:"owner"`
	Fields      map[string]string `json:"fields" bson:"fields"`
	CompletedAt time.Time         `json:"completedAt" bson:"completedAt"`
	TimeModel   `bson:",inline"`
}
