package models

import (
	"time"

	"github.com/google/uuid"
)

// Project is a team's submission. One project per team; re-submitting
// overwrites the previous one.
type Project struct {
	ID          uuid.UUID `json:"id"`
	TeamLabel   string    `json:"team"`
	CategoryID  int       `json:"category_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	RepoURL     string    `json:"repo_url"`
	DemoURL     string    `json:"demo_url,omitempty"`
	ImageURLs   []string  `json:"images,omitempty"`
	VideoURL    string    `json:"video_url,omitempty"`
	SubmittedAt time.Time `json:"submitted_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
