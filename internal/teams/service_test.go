package teams_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hackarena/backend/internal/models"
	"github.com/hackarena/backend/internal/store/memory"
	"github.com/hackarena/backend/internal/teams"
	"github.com/hackarena/backend/internal/users"
)

func newService(t *testing.T) (*teams.Service, *memory.Store) {
	t.Helper()
	store := memory.New()
	return teams.NewService(store.Teams(), store.Users(), nil, nil), store
}

func seedUser(t *testing.T, store *memory.Store, email string) *models.User {
	t.Helper()
	u := &models.User{Email: email, Name: "Ana", Role: models.RoleParticipant}
	require.NoError(t, store.Users().Create(context.Background(), u))
	return u
}

func validInput(name string) teams.CreateInput {
	return teams.CreateInput{
		Name:       name,
		Motivation: "we want to build something great together",
		Category1:  1,
		Category2:  2,
		Category3:  3,
	}
}

func TestCreateDerivesLabel(t *testing.T) {
	svc, store := newService(t)
	ctx := context.Background()
	u := seedUser(t, store, "ana@test.dev")

	team, err := svc.Create(ctx, u.ID, validInput("Código Fácil"))
	require.NoError(t, err)
	assert.Equal(t, "codigo-facil", team.Label)
	assert.Equal(t, "Código Fácil", team.Name)
	assert.Equal(t, u.ID, team.AdminID)
	assert.Equal(t, models.TeamStatusRegistered, team.Status)

	got, err := store.Users().GetByID(ctx, u.ID)
	require.NoError(t, err)
	require.NotNil(t, got.TeamLabel)
	assert.Equal(t, "codigo-facil", *got.TeamLabel)
}

func TestCreateRejectsShortFields(t *testing.T) {
	svc, store := newService(t)
	ctx := context.Background()
	u := seedUser(t, store, "ana@test.dev")

	in := validInput("ab")
	_, err := svc.Create(ctx, u.ID, in)
	assert.Error(t, err)

	in = validInput("Los Hackers")
	in.Motivation = "too short"
	_, err = svc.Create(ctx, u.ID, in)
	assert.Error(t, err)

	// nothing was persisted
	exists, err := store.Teams().Exists(ctx, "los-hackers")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestCreateCollidingNamesConflict(t *testing.T) {
	svc, store := newService(t)
	ctx := context.Background()
	a := seedUser(t, store, "a@test.dev")
	b := seedUser(t, store, "b@test.dev")

	_, err := svc.Create(ctx, a.ID, validInput("Los Hackers"))
	require.NoError(t, err)

	// different display name, same derived label
	_, err = svc.Create(ctx, b.ID, validInput("Los Hackers!!"))
	assert.ErrorIs(t, err, teams.ErrExists)
}

func TestCreateRejectsUserWithTeam(t *testing.T) {
	svc, store := newService(t)
	ctx := context.Background()
	u := seedUser(t, store, "ana@test.dev")

	_, err := svc.Create(ctx, u.ID, validInput("First Team"))
	require.NoError(t, err)

	_, err = svc.Create(ctx, u.ID, validInput("Second Team"))
	assert.ErrorIs(t, err, teams.ErrUserHasTeam)

	// the user keeps the original assignment
	got, err := store.Users().GetByID(ctx, u.ID)
	require.NoError(t, err)
	require.NotNil(t, got.TeamLabel)
	assert.Equal(t, "first-team", *got.TeamLabel)
}

func TestCreateUnknownUser(t *testing.T) {
	svc, _ := newService(t)
	_, err := svc.Create(context.Background(), uuid.New(), validInput("Ghost Team"))
	assert.ErrorIs(t, err, teams.ErrUserNotFound)
}

func TestUpdateAdminOnly(t *testing.T) {
	svc, store := newService(t)
	ctx := context.Background()
	admin := seedUser(t, store, "admin@test.dev")
	other := seedUser(t, store, "other@test.dev")

	team, err := svc.Create(ctx, admin.ID, validInput("Los Hackers"))
	require.NoError(t, err)

	newName := "Renamed Team"
	_, err = svc.Update(ctx, team.Label, other.ID, teams.Update{Name: &newName})
	assert.Error(t, err)

	// unchanged after the rejected update
	got, err := store.Teams().GetByLabel(ctx, team.Label)
	require.NoError(t, err)
	assert.Equal(t, "Los Hackers", got.Name)

	updated, err := svc.Update(ctx, team.Label, admin.ID, teams.Update{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, "Renamed Team", updated.Name)
	// label never changes after creation
	assert.Equal(t, "los-hackers", updated.Label)
}

func TestUpdateValidatesStatus(t *testing.T) {
	svc, store := newService(t)
	ctx := context.Background()
	admin := seedUser(t, store, "admin@test.dev")
	team, err := svc.Create(ctx, admin.ID, validInput("Los Hackers"))
	require.NoError(t, err)

	bad := "vanished"
	_, err = svc.Update(ctx, team.Label, admin.ID, teams.Update{Status: &bad})
	assert.Error(t, err)

	ok := string(models.TeamStatusFinalist)
	updated, err := svc.Update(ctx, team.Label, admin.ID, teams.Update{Status: &ok})
	require.NoError(t, err)
	assert.Equal(t, models.TeamStatusFinalist, updated.Status)
}

func TestMembersAndRemove(t *testing.T) {
	svc, store := newService(t)
	ctx := context.Background()
	admin := seedUser(t, store, "admin@test.dev")
	member := seedUser(t, store, "member@test.dev")

	team, err := svc.Create(ctx, admin.ID, validInput("Los Hackers"))
	require.NoError(t, err)

	label := team.Label
	require.NoError(t, store.Users().UpdateEventProfile(ctx, member.ID, usersTeamPatch(label)))

	_, members, err := svc.Members(ctx, label)
	require.NoError(t, err)
	assert.Len(t, members, 2)

	// non-admin may not remove
	err = svc.RemoveMember(ctx, label, member.ID, admin.ID)
	assert.Error(t, err)

	require.NoError(t, svc.RemoveMember(ctx, label, admin.ID, member.ID))

	_, members, err = svc.Members(ctx, label)
	require.NoError(t, err)
	assert.Len(t, members, 1)

	// removing someone not on the team is a not-found
	err = svc.RemoveMember(ctx, label, admin.ID, member.ID)
	assert.Error(t, err)
}

func usersTeamPatch(label string) users.EventProfileUpdate {
	return users.EventProfileUpdate{TeamLabel: &label}
}
