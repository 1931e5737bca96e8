package users

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hackarena/backend/internal/models"
	"github.com/hackarena/backend/pkg/apperr"
)

const userColumns = `id, email, password_hash, name, surname, role, onboarding_step,
	COALESCE(bio,''), COALESCE(avatar_url,''), COALESCE(github,''), COALESCE(linkedin,''),
	COALESCE(instagram,''), COALESCE(twitter,''), COALESCE(cv_link,''),
	COALESCE(dni,''), COALESCE(university,''), COALESCE(career,''), age,
	category_1, category_2, category_3,
	COALESCE(company,''), COALESCE(position,''), COALESCE(food_preference,''), COALESCE(photo_url,''),
	team_label, created_at, updated_at`

// Postgres implements Repository over a pgx pool.
type Postgres struct {
	pool *pgxpool.Pool
}

// NewPostgres creates the postgres-backed user repository.
func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{pool: pool}
}

func scanUser(row pgx.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Email, &u.Password, &u.Name, &u.Surname, &u.Role, &u.OnboardingStep,
		&u.Bio, &u.AvatarURL, &u.GitHub, &u.LinkedIn,
		&u.Instagram, &u.Twitter, &u.CVLink,
		&u.DNI, &u.University, &u.Career, &u.Age,
		&u.Category1, &u.Category2, &u.Category3,
		&u.Company, &u.Position, &u.FoodPreference, &u.PhotoURL,
		&u.TeamLabel, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Create inserts a new user and fills its ID and timestamps.
func (r *Postgres) Create(ctx context.Context, u *models.User) error {
	const q = `INSERT INTO users (email, password_hash, name, surname, role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, onboarding_step, created_at, updated_at`
	err := r.pool.QueryRow(ctx, q, u.Email, u.Password, u.Name, u.Surname, string(u.Role)).
		Scan(&u.ID, &u.OnboardingStep, &u.CreatedAt, &u.UpdatedAt)
	return apperr.Wrap(apperr.Upstream, "insert user", err)
}

// GetByID returns a user by ID, or (nil, nil) when absent.
func (r *Postgres) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	u, err := scanUser(r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.Upstream, "query user", err)
	}
	return u, nil
}

// GetByEmail returns a user by email, or (nil, nil) when absent.
func (r *Postgres) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	u, err := scanUser(r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.Upstream, "query user", err)
	}
	return u, nil
}

// List returns all users for the admin console.
func (r *Postgres) List(ctx context.Context) ([]models.UserPublic, error) {
	return r.listPublic(ctx,
		`SELECT id, email, name, surname, role, onboarding_step, team_label, created_at
		FROM users ORDER BY name, surname, email`)
}

// ListByTeam returns the members of a team.
func (r *Postgres) ListByTeam(ctx context.Context, label string) ([]models.UserPublic, error) {
	return r.listPublic(ctx,
		`SELECT id, email, name, surname, role, onboarding_step, team_label, created_at
		FROM users WHERE team_label = $1 ORDER BY name, surname`, label)
}

func (r *Postgres) listPublic(ctx context.Context, q string, args ...interface{}) ([]models.UserPublic, error) {
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, apperr.Wrap(apperr.Upstream, "query users", err)
	}
	defer rows.Close()
	var list []models.UserPublic
	for rows.Next() {
		var u models.UserPublic
		if err := rows.Scan(&u.ID, &u.Email, &u.Name, &u.Surname, &u.Role,
			&u.OnboardingStep, &u.TeamLabel, &u.CreatedAt); err != nil {
			return nil, apperr.Wrap(apperr.Upstream, "scan user", err)
		}
		list = append(list, u)
	}
	return list, apperr.Wrap(apperr.Upstream, "iterate users", rows.Err())
}

// UpdateEventProfile merges the supplied fields into the user record. Nil
// fields keep their stored value (COALESCE against NULL parameters).
func (r *Postgres) UpdateEventProfile(ctx context.Context, id uuid.UUID, upd EventProfileUpdate) error {
	const q = `UPDATE users SET
		dni             = COALESCE($2,  dni),
		university      = COALESCE($3,  university),
		career          = COALESCE($4,  career),
		age             = COALESCE($5,  age),
		category_1      = COALESCE($6,  category_1),
		category_2      = COALESCE($7,  category_2),
		category_3      = COALESCE($8,  category_3),
		company         = COALESCE($9,  company),
		position        = COALESCE($10, position),
		food_preference = COALESCE($11, food_preference),
		photo_url       = COALESCE($12, photo_url),
		github          = COALESCE($13, github),
		linkedin        = COALESCE($14, linkedin),
		instagram       = COALESCE($15, instagram),
		twitter         = COALESCE($16, twitter),
		cv_link         = COALESCE($17, cv_link),
		team_label      = COALESCE($18, team_label),
		updated_at      = NOW()
		WHERE id = $1`
	ct, err := r.pool.Exec(ctx, q, id,
		upd.DNI, upd.University, upd.Career, upd.Age,
		upd.Category1, upd.Category2, upd.Category3,
		upd.Company, upd.Position, upd.FoodPreference, upd.PhotoURL,
		upd.GitHub, upd.LinkedIn, upd.Instagram, upd.Twitter, upd.CVLink,
		upd.TeamLabel)
	if err != nil {
		return apperr.Wrap(apperr.Upstream, "update user profile", err)
	}
	if ct.RowsAffected() == 0 {
		return apperr.E(apperr.NotFound, "user not found")
	}
	return nil
}

// SetOnboardingStep updates the onboarding progress marker.
func (r *Postgres) SetOnboardingStep(ctx context.Context, id uuid.UUID, step int) error {
	ct, err := r.pool.Exec(ctx,
		`UPDATE users SET onboarding_step = $2, updated_at = NOW() WHERE id = $1`, id, step)
	if err != nil {
		return apperr.Wrap(apperr.Upstream, "update onboarding step", err)
	}
	if ct.RowsAffected() == 0 {
		return apperr.E(apperr.NotFound, "user not found")
	}
	return nil
}

// ClearTeam removes the user's team reference.
func (r *Postgres) ClearTeam(ctx context.Context, id uuid.UUID) error {
	ct, err := r.pool.Exec(ctx,
		`UPDATE users SET team_label = NULL, updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return apperr.Wrap(apperr.Upstream, "clear user team", err)
	}
	if ct.RowsAffected() == 0 {
		return apperr.E(apperr.NotFound, "user not found")
	}
	return nil
}

// CollaboratorPostgres implements CollaboratorRepository.
type CollaboratorPostgres struct {
	pool *pgxpool.Pool
}

// NewCollaboratorPostgres creates the postgres-backed collaborator repository.
func NewCollaboratorPostgres(pool *pgxpool.Pool) *CollaboratorPostgres {
	return &CollaboratorPostgres{pool: pool}
}

// GetRoleByEmail returns the allow-listed role for an email, or "" when absent.
func (r *CollaboratorPostgres) GetRoleByEmail(ctx context.Context, email string) (models.Role, error) {
	var role string
	err := r.pool.QueryRow(ctx,
		`SELECT role FROM collaborators WHERE email = $1`, email).Scan(&role)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", apperr.Wrap(apperr.Upstream, "query collaborator", err)
	}
	return models.Role(role), nil
}

// Add upserts an allow-list entry.
func (r *CollaboratorPostgres) Add(ctx context.Context, email string, role models.Role) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO collaborators (email, role) VALUES ($1, $2)
		ON CONFLICT (email) DO UPDATE SET role = EXCLUDED.role`, email, string(role))
	return apperr.Wrap(apperr.Upstream, "upsert collaborator", err)
}
