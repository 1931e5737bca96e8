package models

import (
	"time"

	"github.com/google/uuid"
)

// Reference data shown on the marketing site and admin console. Each entity
// carries an Ord integer used for client-side ordering.

// Event is a hackathon edition.
type Event struct {
	ID                 uuid.UUID `json:"id"`
	Title              string    `json:"title"`
	Description        string    `json:"description"`
	Location           string    `json:"location"`
	StartsAt           time.Time `json:"starts_at"`
	EndsAt             time.Time `json:"ends_at"`
	SubmissionDeadline time.Time `json:"submission_deadline"`
	Status             string    `json:"status"` // draft, published, active, completed
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// Category is a competition track teams rank in their preferences.
type Category struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Icon        string    `json:"icon,omitempty"`
	Ord         int       `json:"order"`
	CreatedAt   time.Time `json:"created_at"`
}

// Sponsor is a sponsor logo entry.
type Sponsor struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	LogoURL   string    `json:"logo"`
	Website   string    `json:"website,omitempty"`
	Tier      string    `json:"tier"` // platinum, gold, silver, bronze
	Ord       int       `json:"order"`
	CreatedAt time.Time `json:"created_at"`
}

// Speaker is a mentor/speaker profile entry.
type Speaker struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Title     string    `json:"title"`
	Company   string    `json:"company,omitempty"`
	Bio       string    `json:"bio,omitempty"`
	AvatarURL string    `json:"avatar,omitempty"`
	LinkedIn  string    `json:"linkedin,omitempty"`
	Twitter   string    `json:"twitter,omitempty"`
	Ord       int       `json:"order"`
	CreatedAt time.Time `json:"created_at"`
}

// ScoringCriterion is a judging rubric line.
type ScoringCriterion struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	MaxScore    int       `json:"max_score"`
	Ord         int       `json:"order"`
	CreatedAt   time.Time `json:"created_at"`
}
