package teams

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hackarena/backend/internal/models"
	"github.com/hackarena/backend/pkg/apperr"
)

const teamColumns = `label, name, motivation, category_1, category_2, category_3,
	admin_id, is_finalist, COALESCE(link_deploy,''), COALESCE(link_github,''), status,
	created_at, updated_at`

// Postgres implements Repository over a pgx pool.
type Postgres struct {
	pool *pgxpool.Pool
}

// NewPostgres creates the postgres-backed team repository.
func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{pool: pool}
}

func scanTeam(row pgx.Row) (*models.Team, error) {
	var t models.Team
	err := row.Scan(&t.Label, &t.Name, &t.Motivation, &t.Category1, &t.Category2, &t.Category3,
		&t.AdminID, &t.Finalist, &t.LinkDeploy, &t.LinkGitHub, &t.Status,
		&t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// CreateWithAdmin inserts the team and the creator's team assignment in one
// transaction. The conditional insert and the guarded user update close the
// check-then-act races of separate exists/create calls.
func (r *Postgres) CreateWithAdmin(ctx context.Context, team *models.Team) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return apperr.Wrap(apperr.Upstream, "begin transaction", err)
	}
	defer tx.Rollback(ctx)

	const insert = `INSERT INTO teams
		(label, name, motivation, category_1, category_2, category_3, admin_id, is_finalist, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, FALSE, $8)
		ON CONFLICT (label) DO NOTHING
		RETURNING created_at, updated_at`
	err = tx.QueryRow(ctx, insert,
		team.Label, team.Name, team.Motivation,
		team.Category1, team.Category2, team.Category3,
		team.AdminID, string(team.Status)).
		Scan(&team.CreatedAt, &team.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrExists
	}
	if err != nil {
		return apperr.Wrap(apperr.Upstream, "insert team", err)
	}

	ct, err := tx.Exec(ctx,
		`UPDATE users SET team_label = $1, updated_at = NOW()
		WHERE id = $2 AND team_label IS NULL`,
		team.Label, team.AdminID)
	if err != nil {
		return apperr.Wrap(apperr.Upstream, "assign team admin", err)
	}
	if ct.RowsAffected() == 0 {
		var userExists bool
		if err := tx.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`, team.AdminID).
			Scan(&userExists); err != nil {
			return apperr.Wrap(apperr.Upstream, "check user", err)
		}
		if !userExists {
			return ErrUserNotFound
		}
		return ErrUserHasTeam
	}

	return apperr.Wrap(apperr.Upstream, "commit team create", tx.Commit(ctx))
}

// GetByLabel returns a team by label, or (nil, nil) when absent.
func (r *Postgres) GetByLabel(ctx context.Context, label string) (*models.Team, error) {
	t, err := scanTeam(r.pool.QueryRow(ctx,
		`SELECT `+teamColumns+` FROM teams WHERE label = $1`, label))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.Upstream, "query team", err)
	}
	return t, nil
}

// List returns all teams.
func (r *Postgres) List(ctx context.Context) ([]models.Team, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+teamColumns+` FROM teams ORDER BY created_at`)
	if err != nil {
		return nil, apperr.Wrap(apperr.Upstream, "query teams", err)
	}
	defer rows.Close()
	var list []models.Team
	for rows.Next() {
		t, err := scanTeam(rows)
		if err != nil {
			return nil, apperr.Wrap(apperr.Upstream, "scan team", err)
		}
		list = append(list, *t)
	}
	return list, apperr.Wrap(apperr.Upstream, "iterate teams", rows.Err())
}

// Update applies a partial patch and returns the updated team, or (nil, nil)
// when the label is absent.
func (r *Postgres) Update(ctx context.Context, label string, upd Update) (*models.Team, error) {
	const q = `UPDATE teams SET
		name        = COALESCE($2, name),
		motivation  = COALESCE($3, motivation),
		category_1  = COALESCE($4, category_1),
		category_2  = COALESCE($5, category_2),
		category_3  = COALESCE($6, category_3),
		status      = COALESCE($7, status),
		link_deploy = COALESCE($8, link_deploy),
		link_github = COALESCE($9, link_github),
		is_finalist = COALESCE($10, is_finalist),
		updated_at  = NOW()
		WHERE label = $1
		RETURNING ` + teamColumns
	t, err := scanTeam(r.pool.QueryRow(ctx, q, label,
		upd.Name, upd.Motivation, upd.Category1, upd.Category2, upd.Category3,
		upd.Status, upd.LinkDeploy, upd.LinkGitHub, upd.Finalist))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.Upstream, "update team", err)
	}
	return t, nil
}

// Exists reports whether a team label is taken.
func (r *Postgres) Exists(ctx context.Context, label string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM teams WHERE label = $1)`, label).Scan(&exists)
	if err != nil {
		return false, apperr.Wrap(apperr.Upstream, "check team", err)
	}
	return exists, nil
}
