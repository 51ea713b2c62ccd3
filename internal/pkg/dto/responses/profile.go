package responses

import "time"

type ProfileCompletion struct {
	Percentage           int      `json:"percentage"`
	IncompleteCategories []string `json:"incomplete_categories"`
}

type UserProfile struct {
	Owner      string                 `json:"owner"`
	Identity   map[string]interface{} `json:"identity"`
	Contact    map[string]interface{} `json:"contact"`
	Documents  map[string]interface{} `json:"documents"`
	Completion ProfileCompletion      `json:"completion"`
	UpdatedAt  *time.Time             `json:"updated_at,omitempty"`
}

type Avatar struct {
	ObjectName string    `json:"object_name"`
	URL        string    `json:"url"`
	ExpiresAt  time.Time `json:"expires_at"`
}
