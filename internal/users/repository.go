package users

import (
	"context"

	"github.com/google/uuid"

	"github.com/hackarena/backend/internal/models"
)

// Repository is the storage port for user records. Implementations: postgres
// (this package) and the in-memory store used for local runs and tests.
// Lookups return (nil, nil) when the record is absent.
type Repository interface {
	Create(ctx context.Context, u *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context) ([]models.UserPublic, error)
	ListByTeam(ctx context.Context, label string) ([]models.UserPublic, error)
	UpdateEventProfile(ctx context.Context, id uuid.UUID, upd EventProfileUpdate) error
	SetOnboardingStep(ctx context.Context, id uuid.UUID, step int) error
	ClearTeam(ctx context.Context, id uuid.UUID) error
}

// CollaboratorRepository is the staff allow-list consulted once at signup.
type CollaboratorRepository interface {
	// GetRoleByEmail returns the assigned role, or "" when the email is not listed.
	GetRoleByEmail(ctx context.Context, email string) (models.Role, error)
	Add(ctx context.Context, email string, role models.Role) error
}

// EventProfileUpdate is a partial merge: nil fields are left untouched.
type EventProfileUpdate struct {
	DNI            *string
	University     *string
	Career         *string
	Age            *int
	Category1      *int
	Category2      *int
	Category3      *int
	Company        *string
	Position       *string
	FoodPreference *string
	PhotoURL       *string
	GitHub         *string
	LinkedIn       *string
	Instagram      *string
	Twitter        *string
	CVLink         *string
	TeamLabel      *string
}
