package models

import (
	"time"

	"github.com/google/uuid"
)

// TeamStatus is the lifecycle state of a team.
type TeamStatus string

const (
	TeamStatusRegistered TeamStatus = "registered"
	TeamStatusSubmitted  TeamStatus = "submitted"
	TeamStatusFinalist   TeamStatus = "finalist"
	TeamStatusEliminated TeamStatus = "eliminated"
)

// ValidTeamStatus reports whether s is a known status value.
func ValidTeamStatus(s string) bool {
	switch TeamStatus(s) {
	case TeamStatusRegistered, TeamStatusSubmitted, TeamStatusFinalist, TeamStatusEliminated:
		return true
	}
	return false
}

// Team is keyed by its label, the slug derived from the display name.
// The admin is fixed at creation (the creating user).
type Team struct {
	Label      string     `json:"id"`
	Name       string     `json:"name"`
	Motivation string     `json:"tell_why"`
	Category1  int        `json:"category_1"`
	Category2  int        `json:"category_2"`
	Category3  int        `json:"category_3"`
	AdminID    uuid.UUID  `json:"admin_id"`
	Finalist   bool       `json:"is_finalist"`
	LinkDeploy string     `json:"link_deploy,omitempty"`
	LinkGitHub string     `json:"link_github,omitempty"`
	Status     TeamStatus `json:"status"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}
