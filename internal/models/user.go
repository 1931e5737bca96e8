package models

import (
	"time"

	"github.com/google/uuid"
)

// Role represents a user's role in the platform.
type Role string

const (
	RoleAdmin       Role = "admin"
	RoleJudge       Role = "judge"
	RoleMentor      Role = "mentor"
	RoleParticipant Role = "participant"
)

// IsStaff reports whether the role uses the professional registration branch.
func (r Role) IsStaff() bool {
	return r == RoleJudge || r == RoleMentor || r == RoleAdmin
}

// OnboardingComplete is the final onboarding step; user records start at 0.
const OnboardingComplete = 3

// User represents a platform user. The event-specific fields stay empty until
// the user completes event registration.
type User struct {
	ID             uuid.UUID `json:"id"`
	Email          string    `json:"email"`
	Password       string    `json:"-"`
	Name           string    `json:"name"`
	Surname        string    `json:"surname"`
	Role           Role      `json:"role"`
	OnboardingStep int       `json:"onboarding_step"`

	// Profile
	Bio       string `json:"bio,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
	GitHub    string `json:"github,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	CVLink    string `json:"cv_link,omitempty"`

	// Participant event fields
	DNI        string `json:"dni,omitempty"`
	University string `json:"university,omitempty"`
	Career     string `json:"career,omitempty"`
	Age        *int   `json:"age,omitempty"`
	Category1  *int   `json:"category_1,omitempty"`
	Category2  *int   `json:"category_2,omitempty"`
	Category3  *int   `json:"category_3,omitempty"`

	// Judge/mentor event fields
	Company        string `json:"company,omitempty"`
	Position       string `json:"position,omitempty"`
	FoodPreference string `json:"food_preference,omitempty"`
	PhotoURL       string `json:"photo_url,omitempty"`

	TeamLabel *string   `json:"team,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserPublic is User without sensitive fields for API responses.
type UserPublic struct {
	ID             uuid.UUID `json:"id"`
	Email          string    `json:"email"`
	Name           string    `json:"name"`
	Surname        string    `json:"surname"`
	Role           Role      `json:"role"`
	OnboardingStep int       `json:"onboarding_step"`
	TeamLabel      *string   `json:"team,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// ToPublic converts User to UserPublic.
func (u *User) ToPublic() UserPublic {
	return UserPublic{
		ID:             u.ID,
		Email:          u.Email,
		Name:           u.Name,
		Surname:        u.Surname,
		Role:           u.Role,
		OnboardingStep: u.OnboardingStep,
		TeamLabel:      u.TeamLabel,
		CreatedAt:      u.CreatedAt,
	}
}

// Collaborator is a staff allow-list entry. The role is resolved from this
// table once at signup and stored on the user record.
type Collaborator struct {
	Email string `json:"email"`
	Role  Role   `json:"role"`
}
