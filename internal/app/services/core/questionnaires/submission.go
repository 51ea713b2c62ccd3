package questionnaires

import (
	"time"

	"github.com/goccy/go-json"
)

// Submission is the flat payload written once a questionnaire is finished.
// Every value is a string; multi-choice answers hold a JSON array.
type Submission struct {
	Owner       string            `json:"owner"`
	Fields      map[string]string `json:"fields"`
	CompletedAt time.Time         `json:"completed_at"`
}

func encodeValues(values []string) (string, error) {
	if values == nil {
		values = []string{}
	}
	encoded, err := json.Marshal(values)
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

// DecodeValues reads back a multi-choice payload value. An empty string
// decodes to an empty selection.
func DecodeValues(encoded string) ([]string, error) {
	values := []string{}
	if encoded == "" {
		return values, nil
	}
	if err := json.Unmarshal([]byte(encoded), &values); err != nil {
		return nil, err
	}
	return values, nil
}
