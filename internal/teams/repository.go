package teams

import (
	"context"

	"github.com/hackarena/backend/internal/models"
	"github.com/hackarena/backend/pkg/apperr"
)

// Typed failures of the conditional team create. The store decides which one
// applies inside the transaction, so concurrent creates cannot both pass.
var (
	ErrExists       = apperr.E(apperr.Conflict, "team already exists")
	ErrUserHasTeam  = apperr.E(apperr.Conflict, "user already belongs to a team")
	ErrUserNotFound = apperr.E(apperr.NotFound, "user not found")
)

// Repository is the storage port for team records. GetByLabel returns
// (nil, nil) when absent.
type Repository interface {
	// CreateWithAdmin inserts the team and assigns the admin user to it in a
	// single transaction: the insert only happens if the label is free, and
	// the user assignment only if the user exists with no team. Returns
	// ErrExists, ErrUserHasTeam, or ErrUserNotFound on the failing condition.
	CreateWithAdmin(ctx context.Context, team *models.Team) error
	GetByLabel(ctx context.Context, label string) (*models.Team, error)
	List(ctx context.Context) ([]models.Team, error)
	Update(ctx context.Context, label string, upd Update) (*models.Team, error)
	Exists(ctx context.Context, label string) (bool, error)
}

// Update is a partial patch: nil fields keep their stored value.
type Update struct {
	Name       *string
	Motivation *string
	Category1  *int
	Category2  *int
	Category3  *int
	Status     *string
	LinkDeploy *string
	LinkGitHub *string
	Finalist   *bool
}
