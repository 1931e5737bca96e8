package projects

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hackarena/backend/internal/models"
	"github.com/hackarena/backend/pkg/apperr"
)

const projectColumns = `id, team_label, category_id, title, description, repo_url,
	COALESCE(demo_url,''), image_urls, COALESCE(video_url,''), submitted_at, updated_at`

// Postgres implements Repository over a pgx pool.
type Postgres struct {
	pool *pgxpool.Pool
}

// NewPostgres creates the postgres-backed project repository.
func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{pool: pool}
}

func scanProject(row pgx.Row) (*models.Project, error) {
	var p models.Project
	err := row.Scan(&p.ID, &p.TeamLabel, &p.CategoryID, &p.Title, &p.Description, &p.RepoURL,
		&p.DemoURL, &p.ImageURLs, &p.VideoURL, &p.SubmittedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Upsert inserts the submission or overwrites the team's existing one.
func (r *Postgres) Upsert(ctx context.Context, p *models.Project) error {
	const q = `INSERT INTO projects
		(team_label, category_id, title, description, repo_url, demo_url, image_urls, video_url)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6,''), $7, NULLIF($8,''))
		ON CONFLICT (team_label) DO UPDATE SET
			category_id = EXCLUDED.category_id,
			title       = EXCLUDED.title,
			description = EXCLUDED.description,
			repo_url    = EXCLUDED.repo_url,
			demo_url    = EXCLUDED.demo_url,
			image_urls  = EXCLUDED.image_urls,
			video_url   = EXCLUDED.video_url,
			updated_at  = NOW()
		RETURNING id, submitted_at, updated_at`
	err := r.pool.QueryRow(ctx, q,
		p.TeamLabel, p.CategoryID, p.Title, p.Description, p.RepoURL,
		p.DemoURL, p.ImageURLs, p.VideoURL).
		Scan(&p.ID, &p.SubmittedAt, &p.UpdatedAt)
	return apperr.Wrap(apperr.Upstream, "upsert project", err)
}

// GetByTeam returns the team's submission, or (nil, nil) when absent.
func (r *Postgres) GetByTeam(ctx context.Context, label string) (*models.Project, error) {
	p, err := scanProject(r.pool.QueryRow(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE team_label = $1`, label))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.Upstream, "query project", err)
	}
	return p, nil
}

// List returns all submissions for the judging views.
func (r *Postgres) List(ctx context.Context) ([]models.Project, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+projectColumns+` FROM projects ORDER BY submitted_at`)
	if err != nil {
		return nil, apperr.Wrap(apperr.Upstream, "query projects", err)
	}
	defer rows.Close()
	var list []models.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, apperr.Wrap(apperr.Upstream, "scan project", err)
		}
		list = append(list, *p)
	}
	return list, apperr.Wrap(apperr.Upstream, "iterate projects", rows.Err())
}
