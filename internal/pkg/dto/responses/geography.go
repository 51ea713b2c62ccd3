package responses

type Countries struct {
	Countries []string `json:"countries"`
}

type States struct {
	Country string   `json:"country"`
	States  []string `json:"states"`
}

type Cities struct {
	Country string   `json:"country"`
	State   string   `json:"state"`
	Cities  []string `json:"cities"`
}
