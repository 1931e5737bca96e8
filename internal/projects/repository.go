package projects

import (
	"context"

	"github.com/hackarena/backend/internal/models"
)

// Repository is the storage port for project submissions. One project per
// team; Upsert overwrites an existing submission. GetByTeam returns
// (nil, nil) when absent.
type Repository interface {
	Upsert(ctx context.Context, p *models.Project) error
	GetByTeam(ctx context.Context, label string) (*models.Project, error)
	List(ctx context.Context) ([]models.Project, error)
}
