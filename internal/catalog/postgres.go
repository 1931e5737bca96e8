package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hackarena/backend/internal/models"
	"github.com/hackarena/backend/pkg/apperr"
)

// Postgres implements Repository over a pgx pool.
type Postgres struct {
	pool *pgxpool.Pool
}

// NewPostgres creates the postgres-backed catalog repository.
func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{pool: pool}
}

// Events

func (r *Postgres) ListEvents(ctx context.Context) ([]models.Event, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, title, description, location,
		starts_at, ends_at, submission_deadline, status, created_at, updated_at
		FROM events ORDER BY starts_at`)
	if err != nil {
		return nil, apperr.Wrap(apperr.Upstream, "query events", err)
	}
	defer rows.Close()
	var list []models.Event
	for rows.Next() {
		var e models.Event
		if err := rows.Scan(&e.ID, &e.Title, &e.Description, &e.Location,
			&e.StartsAt, &e.EndsAt, &e.SubmissionDeadline, &e.Status, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, apperr.Wrap(apperr.Upstream, "scan event", err)
		}
		list = append(list, e)
	}
	return list, apperr.Wrap(apperr.Upstream, "iterate events", rows.Err())
}

func (r *Postgres) CreateEvent(ctx context.Context, e *models.Event) error {
	err := r.pool.QueryRow(ctx, `INSERT INTO events
		(title, description, location, starts_at, ends_at, submission_deadline, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at`,
		e.Title, e.Description, e.Location, e.StartsAt, e.EndsAt, e.SubmissionDeadline, e.Status).
		Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
	return apperr.Wrap(apperr.Upstream, "insert event", err)
}

func (r *Postgres) UpdateEvent(ctx context.Context, e *models.Event) error {
	ct, err := r.pool.Exec(ctx, `UPDATE events SET title = $2, description = $3,
		location = $4, starts_at = $5, ends_at = $6, submission_deadline = $7,
		status = $8, updated_at = NOW() WHERE id = $1`,
		e.ID, e.Title, e.Description, e.Location, e.StartsAt, e.EndsAt, e.SubmissionDeadline, e.Status)
	if err != nil {
		return apperr.Wrap(apperr.Upstream, "update event", err)
	}
	if ct.RowsAffected() == 0 {
		return apperr.E(apperr.NotFound, "event not found")
	}
	return nil
}

func (r *Postgres) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	return r.deleteByID(ctx, "events", "event not found", id)
}

// Categories

func (r *Postgres) ListCategories(ctx context.Context) ([]models.Category, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, description, COALESCE(icon,''), ord, created_at
		FROM categories ORDER BY ord, name`)
	if err != nil {
		return nil, apperr.Wrap(apperr.Upstream, "query categories", err)
	}
	defer rows.Close()
	var list []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.Icon, &c.Ord, &c.CreatedAt); err != nil {
			return nil, apperr.Wrap(apperr.Upstream, "scan category", err)
		}
		list = append(list, c)
	}
	return list, apperr.Wrap(apperr.Upstream, "iterate categories", rows.Err())
}

func (r *Postgres) CreateCategory(ctx context.Context, cat *models.Category) error {
	err := r.pool.QueryRow(ctx, `INSERT INTO categories (name, description, icon, ord)
		VALUES ($1, $2, NULLIF($3,''), $4) RETURNING id, created_at`,
		cat.Name, cat.Description, cat.Icon, cat.Ord).
		Scan(&cat.ID, &cat.CreatedAt)
	return apperr.Wrap(apperr.Upstream, "insert category", err)
}

func (r *Postgres) UpdateCategory(ctx context.Context, cat *models.Category) error {
	ct, err := r.pool.Exec(ctx, `UPDATE categories SET name = $2, description = $3,
		icon = NULLIF($4,''), ord = $5 WHERE id = $1`,
		cat.ID, cat.Name, cat.Description, cat.Icon, cat.Ord)
	if err != nil {
		return apperr.Wrap(apperr.Upstream, "update category", err)
	}
	if ct.RowsAffected() == 0 {
		return apperr.E(apperr.NotFound, "category not found")
	}
	return nil
}

func (r *Postgres) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	return r.deleteByID(ctx, "categories", "category not found", id)
}

// Sponsors

func (r *Postgres) ListSponsors(ctx context.Context) ([]models.Sponsor, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, logo_url, COALESCE(website,''), tier, ord, created_at
		FROM sponsors ORDER BY ord, name`)
	if err != nil {
		return nil, apperr.Wrap(apperr.Upstream, "query sponsors", err)
	}
	defer rows.Close()
	var list []models.Sponsor
	for rows.Next() {
		var s models.Sponsor
		if err := rows.Scan(&s.ID, &s.Name, &s.LogoURL, &s.Website, &s.Tier, &s.Ord, &s.CreatedAt); err != nil {
			return nil, apperr.Wrap(apperr.Upstream, "scan sponsor", err)
		}
		list = append(list, s)
	}
	return list, apperr.Wrap(apperr.Upstream, "iterate sponsors", rows.Err())
}

func (r *Postgres) CreateSponsor(ctx context.Context, sp *models.Sponsor) error {
	err := r.pool.QueryRow(ctx, `INSERT INTO sponsors (name, logo_url, website, tier, ord)
		VALUES ($1, $2, NULLIF($3,''), $4, $5) RETURNING id, created_at`,
		sp.Name, sp.LogoURL, sp.Website, sp.Tier, sp.Ord).
		Scan(&sp.ID, &sp.CreatedAt)
	return apperr.Wrap(apperr.Upstream, "insert sponsor", err)
}

func (r *Postgres) UpdateSponsor(ctx context.Context, sp *models.Sponsor) error {
	ct, err := r.pool.Exec(ctx, `UPDATE sponsors SET name = $2, logo_url = $3,
		website = NULLIF($4,''), tier = $5, ord = $6 WHERE id = $1`,
		sp.ID, sp.Name, sp.LogoURL, sp.Website, sp.Tier, sp.Ord)
	if err != nil {
		return apperr.Wrap(apperr.Upstream, "update sponsor", err)
	}
	if ct.RowsAffected() == 0 {
		return apperr.E(apperr.NotFound, "sponsor not found")
	}
	return nil
}

func (r *Postgres) DeleteSponsor(ctx context.Context, id uuid.UUID) error {
	return r.deleteByID(ctx, "sponsors", "sponsor not found", id)
}

// Speakers

func (r *Postgres) ListSpeakers(ctx context.Context) ([]models.Speaker, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, title, COALESCE(company,''), COALESCE(bio,''),
		COALESCE(avatar_url,''), COALESCE(linkedin,''), COALESCE(twitter,''), ord, created_at
		FROM speakers ORDER BY ord, name`)
	if err != nil {
		return nil, apperr.Wrap(apperr.Upstream, "query speakers", err)
	}
	defer rows.Close()
	var list []models.Speaker
	for rows.Next() {
		var s models.Speaker
		if err := rows.Scan(&s.ID, &s.Name, &s.Title, &s.Company, &s.Bio,
			&s.AvatarURL, &s.LinkedIn, &s.Twitter, &s.Ord, &s.CreatedAt); err != nil {
			return nil, apperr.Wrap(apperr.Upstream, "scan speaker", err)
		}
		list = append(list, s)
	}
	return list, apperr.Wrap(apperr.Upstream, "iterate speakers", rows.Err())
}

func (r *Postgres) CreateSpeaker(ctx context.Context, sp *models.Speaker) error {
	err := r.pool.QueryRow(ctx, `INSERT INTO speakers (name, title, company, bio, avatar_url, linkedin, twitter, ord)
		VALUES ($1, $2, NULLIF($3,''), NULLIF($4,''), NULLIF($5,''), NULLIF($6,''), NULLIF($7,''), $8)
		RETURNING id, created_at`,
		sp.Name, sp.Title, sp.Company, sp.Bio, sp.AvatarURL, sp.LinkedIn, sp.Twitter, sp.Ord).
		Scan(&sp.ID, &sp.CreatedAt)
	return apperr.Wrap(apperr.Upstream, "insert speaker", err)
}

func (r *Postgres) UpdateSpeaker(ctx context.Context, sp *models.Speaker) error {
	ct, err := r.pool.Exec(ctx, `UPDATE speakers SET name = $2, title = $3,
		company = NULLIF($4,''), bio = NULLIF($5,''), avatar_url = NULLIF($6,''),
		linkedin = NULLIF($7,''), twitter = NULLIF($8,''), ord = $9 WHERE id = $1`,
		sp.ID, sp.Name, sp.Title, sp.Company, sp.Bio, sp.AvatarURL, sp.LinkedIn, sp.Twitter, sp.Ord)
	if err != nil {
		return apperr.Wrap(apperr.Upstream, "update speaker", err)
	}
	if ct.RowsAffected() == 0 {
		return apperr.E(apperr.NotFound, "speaker not found")
	}
	return nil
}

func (r *Postgres) DeleteSpeaker(ctx context.Context, id uuid.UUID) error {
	return r.deleteByID(ctx, "speakers", "speaker not found", id)
}

// Scoring criteria

func (r *Postgres) ListCriteria(ctx context.Context) ([]models.ScoringCriterion, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, description, max_score, ord, created_at
		FROM scoring_criteria ORDER BY ord, name`)
	if err != nil {
		return nil, apperr.Wrap(apperr.Upstream, "query criteria", err)
	}
	defer rows.Close()
	var list []models.ScoringCriterion
	for rows.Next() {
		var cr models.ScoringCriterion
		if err := rows.Scan(&cr.ID, &cr.Name, &cr.Description, &cr.MaxScore, &cr.Ord, &cr.CreatedAt); err != nil {
			return nil, apperr.Wrap(apperr.Upstream, "scan criterion", err)
		}
		list = append(list, cr)
	}
	return list, apperr.Wrap(apperr.Upstream, "iterate criteria", rows.Err())
}

func (r *Postgres) CreateCriterion(ctx context.Context, cr *models.ScoringCriterion) error {
	err := r.pool.QueryRow(ctx, `INSERT INTO scoring_criteria (name, description, max_score, ord)
		VALUES ($1, $2, $3, $4) RETURNING id, created_at`,
		cr.Name, cr.Description, cr.MaxScore, cr.Ord).
		Scan(&cr.ID, &cr.CreatedAt)
	return apperr.Wrap(apperr.Upstream, "insert criterion", err)
}

func (r *Postgres) UpdateCriterion(ctx context.Context, cr *models.ScoringCriterion) error {
	ct, err := r.pool.Exec(ctx, `UPDATE scoring_criteria SET name = $2, description = $3,
		max_score = $4, ord = $5 WHERE id = $1`,
		cr.ID, cr.Name, cr.Description, cr.MaxScore, cr.Ord)
	if err != nil {
		return apperr.Wrap(apperr.Upstream, "update criterion", err)
	}
	if ct.RowsAffected() == 0 {
		return apperr.E(apperr.NotFound, "criterion not found")
	}
	return nil
}

func (r *Postgres) DeleteCriterion(ctx context.Context, id uuid.UUID) error {
	return r.deleteByID(ctx, "scoring_criteria", "criterion not found", id)
}

func (r *Postgres) deleteByID(ctx context.Context, table, notFoundMsg string, id uuid.UUID) error {
	ct, err := r.pool.Exec(ctx, `DELETE FROM `+table+` WHERE id = $1`, id)
	if err != nil {
		return apperr.Wrap(apperr.Upstream, "delete from "+table, err)
	}
	if ct.RowsAffected() == 0 {
		return apperr.E(apperr.NotFound, notFoundMsg)
	}
	return nil
}
