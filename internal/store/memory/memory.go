// Package memory is the in-process store used for local runs and tests. One
// Store holds all state behind a single mutex; per-domain views share it, so
// the cross-domain operations get the same all-or-nothing behavior the
// postgres transactions provide.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hackarena/backend/internal/models"
	"github.com/hackarena/backend/internal/teams"
	"github.com/hackarena/backend/internal/users"
	"github.com/hackarena/backend/pkg/apperr"
)

// Store holds all application state in maps keyed the same way the postgres
// schema keys its tables.
type Store struct {
	mu sync.Mutex

	users    map[uuid.UUID]*models.User
	byEmail  map[string]uuid.UUID
	colabs   map[string]models.Role
	teams    map[string]*models.Team
	projects map[string]*models.Project

	events   []*models.Event
	cats     []*models.Category
	sponsors []*models.Sponsor
	speakers []*models.Speaker
	criteria []*models.ScoringCriterion
}

// New creates an empty store.
func New() *Store {
	return &Store{
		users:    make(map[uuid.UUID]*models.User),
		byEmail:  make(map[string]uuid.UUID),
		colabs:   make(map[string]models.Role),
		teams:    make(map[string]*models.Team),
		projects: make(map[string]*models.Project),
	}
}

// Users returns the users.Repository view.
func (s *Store) Users() *Users { return &Users{s: s} }

// Collaborators returns the users.CollaboratorRepository view.
func (s *Store) Collaborators() *Collaborators { return &Collaborators{s: s} }

// Teams returns the teams.Repository view.
func (s *Store) Teams() *Teams { return &Teams{s: s} }

// Projects returns the projects.Repository view.
func (s *Store) Projects() *Projects { return &Projects{s: s} }

// Catalog returns the catalog.Repository view.
func (s *Store) Catalog() *Catalog { return &Catalog{s: s} }

// Users implements the users storage port.
type Users struct{ s *Store }

func (v *Users) Create(_ context.Context, u *models.User) error {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()

	email := strings.ToLower(u.Email)
	if _, ok := v.s.byEmail[email]; ok {
		return apperr.E(apperr.Conflict, "email already registered")
	}
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	now := time.Now()
	u.CreatedAt = now
	u.UpdatedAt = now

	cp := *u
	v.s.users[u.ID] = &cp
	v.s.byEmail[email] = u.ID
	return nil
}

func (v *Users) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()

	u, ok := v.s.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (v *Users) GetByEmail(_ context.Context, email string) (*models.User, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()

	id, ok := v.s.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, nil
	}
	cp := *v.s.users[id]
	return &cp, nil
}

func (v *Users) List(_ context.Context) ([]models.UserPublic, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()

	list := make([]models.UserPublic, 0, len(v.s.users))
	for _, u := range v.s.users {
		list = append(list, u.ToPublic())
	}
	sortUsers(list)
	return list, nil
}

func (v *Users) ListByTeam(_ context.Context, label string) ([]models.UserPublic, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()

	var list []models.UserPublic
	for _, u := range v.s.users {
		if u.TeamLabel != nil && *u.TeamLabel == label {
			list = append(list, u.ToPublic())
		}
	}
	sortUsers(list)
	return list, nil
}

func (v *Users) UpdateEventProfile(_ context.Context, id uuid.UUID, upd users.EventProfileUpdate) error {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()

	u, ok := v.s.users[id]
	if !ok {
		return apperr.E(apperr.NotFound, "user not found")
	}
	applyStr(&u.DNI, upd.DNI)
	applyStr(&u.University, upd.University)
	applyStr(&u.Career, upd.Career)
	applyIntPtr(&u.Age, upd.Age)
	applyIntPtr(&u.Category1, upd.Category1)
	applyIntPtr(&u.Category2, upd.Category2)
	applyIntPtr(&u.Category3, upd.Category3)
	applyStr(&u.Company, upd.Company)
	applyStr(&u.Position, upd.Position)
	applyStr(&u.FoodPreference, upd.FoodPreference)
	applyStr(&u.PhotoURL, upd.PhotoURL)
	applyStr(&u.GitHub, upd.GitHub)
	applyStr(&u.LinkedIn, upd.LinkedIn)
	applyStr(&u.Instagram, upd.Instagram)
	applyStr(&u.Twitter, upd.Twitter)
	applyStr(&u.CVLink, upd.CVLink)
	if upd.TeamLabel != nil {
		label := *upd.TeamLabel
		u.TeamLabel = &label
	}
	u.UpdatedAt = time.Now()
	return nil
}

func (v *Users) SetOnboardingStep(_ context.Context, id uuid.UUID, step int) error {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()

	u, ok := v.s.users[id]
	if !ok {
		return apperr.E(apperr.NotFound, "user not found")
	}
	u.OnboardingStep = step
	u.UpdatedAt = time.Now()
	return nil
}

func (v *Users) ClearTeam(_ context.Context, id uuid.UUID) error {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()

	u, ok := v.s.users[id]
	if !ok {
		return apperr.E(apperr.NotFound, "user not found")
	}
	u.TeamLabel = nil
	u.UpdatedAt = time.Now()
	return nil
}

// Collaborators implements the staff allow-list port.
type Collaborators struct{ s *Store }

func (v *Collaborators) GetRoleByEmail(_ context.Context, email string) (models.Role, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	return v.s.colabs[strings.ToLower(email)], nil
}

func (v *Collaborators) Add(_ context.Context, email string, role models.Role) error {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	v.s.colabs[strings.ToLower(email)] = role
	return nil
}

// Teams implements the teams storage port.
type Teams struct{ s *Store }

func (v *Teams) CreateWithAdmin(_ context.Context, team *models.Team) error {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()

	if _, ok := v.s.teams[team.Label]; ok {
		return teams.ErrExists
	}
	admin, ok := v.s.users[team.AdminID]
	if !ok {
		return teams.ErrUserNotFound
	}
	if admin.TeamLabel != nil {
		return teams.ErrUserHasTeam
	}

	now := time.Now()
	team.CreatedAt = now
	team.UpdatedAt = now

	cp := *team
	v.s.teams[team.Label] = &cp
	label := team.Label
	admin.TeamLabel = &label
	admin.UpdatedAt = now
	return nil
}

func (v *Teams) GetByLabel(_ context.Context, label string) (*models.Team, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()

	t, ok := v.s.teams[label]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (v *Teams) List(_ context.Context) ([]models.Team, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()

	list := make([]models.Team, 0, len(v.s.teams))
	for _, t := range v.s.teams {
		list = append(list, *t)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.Before(list[j].CreatedAt) })
	return list, nil
}

func (v *Teams) Update(_ context.Context, label string, upd teams.Update) (*models.Team, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()

	t, ok := v.s.teams[label]
	if !ok {
		return nil, apperr.E(apperr.NotFound, "team not found")
	}
	applyStr(&t.Name, upd.Name)
	applyStr(&t.Motivation, upd.Motivation)
	applyInt(&t.Category1, upd.Category1)
	applyInt(&t.Category2, upd.Category2)
	applyInt(&t.Category3, upd.Category3)
	if upd.Status != nil {
		t.Status = models.TeamStatus(*upd.Status)
	}
	applyStr(&t.LinkDeploy, upd.LinkDeploy)
	applyStr(&t.LinkGitHub, upd.LinkGitHub)
	if upd.Finalist != nil {
		t.Finalist = *upd.Finalist
	}
	t.UpdatedAt = time.Now()
	cp := *t
	return &cp, nil
}

func (v *Teams) Exists(_ context.Context, label string) (bool, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	_, ok := v.s.teams[label]
	return ok, nil
}

// Projects implements the project submissions port.
type Projects struct{ s *Store }

func (v *Projects) Upsert(_ context.Context, p *models.Project) error {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()

	now := time.Now()
	if prev, ok := v.s.projects[p.TeamLabel]; ok {
		p.ID = prev.ID
		p.SubmittedAt = prev.SubmittedAt
	} else {
		p.ID = uuid.New()
		p.SubmittedAt = now
	}
	p.UpdatedAt = now
	cp := *p
	v.s.projects[p.TeamLabel] = &cp
	return nil
}

func (v *Projects) GetByTeam(_ context.Context, label string) (*models.Project, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()

	p, ok := v.s.projects[label]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (v *Projects) List(_ context.Context) ([]models.Project, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()

	list := make([]models.Project, 0, len(v.s.projects))
	for _, p := range v.s.projects {
		list = append(list, *p)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].SubmittedAt.Before(list[j].SubmittedAt) })
	return list, nil
}

func sortUsers(list []models.UserPublic) {
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.Before(list[j].CreatedAt) })
}

func applyStr(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func applyInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}

func applyIntPtr(dst **int, src *int) {
	if src != nil {
		v := *src
		*dst = &v
	}
}
