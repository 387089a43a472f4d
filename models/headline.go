package models

import "time"

type Headline struct {
	Title     string    `json:"title"`
	URL       string    `json:"url"`
	Source    string    `json:"source"`
	Summary   string    `json:"summary"`
	Published time.Time `json:"published"`
}
