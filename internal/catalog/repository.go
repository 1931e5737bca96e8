package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/hackarena/backend/internal/models"
)

// Repository is the storage port for the reference data behind the marketing
// site and admin console. Lists are ordered by the ord column; updates are
// full-record PUTs (data entry, no partial semantics needed).
type Repository interface {
	ListEvents(ctx context.Context) ([]models.Event, error)
	CreateEvent(ctx context.Context, e *models.Event) error
	UpdateEvent(ctx context.Context, e *models.Event) error
	DeleteEvent(ctx context.Context, id uuid.UUID) error

	ListCategories(ctx context.Context) ([]models.Category, error)
	CreateCategory(ctx context.Context, cat *models.Category) error
	UpdateCategory(ctx context.Context, cat *models.Category) error
	DeleteCategory(ctx context.Context, id uuid.UUID) error

	ListSponsors(ctx context.Context) ([]models.Sponsor, error)
	CreateSponsor(ctx context.Context, sp *models.Sponsor) error
	UpdateSponsor(ctx context.Context, sp *models.Sponsor) error
	DeleteSponsor(ctx context.Context, id uuid.UUID) error

	ListSpeakers(ctx context.Context) ([]models.Speaker, error)
	CreateSpeaker(ctx context.Context, sp *models.Speaker) error
	UpdateSpeaker(ctx context.Context, sp *models.Speaker) error
	DeleteSpeaker(ctx context.Context, id uuid.UUID) error

	ListCriteria(ctx context.Context) ([]models.ScoringCriterion, error)
	CreateCriterion(ctx context.Context, cr *models.ScoringCriterion) error
	UpdateCriterion(ctx context.Context, cr *models.ScoringCriterion) error
	DeleteCriterion(ctx context.Context, id uuid.UUID) error
}
