package users_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hackarena/backend/internal/models"
	"github.com/hackarena/backend/internal/store/memory"
	"github.com/hackarena/backend/internal/users"
)

func newService(t *testing.T) (*users.Service, *memory.Store) {
	t.Helper()
	store := memory.New()
	return users.NewService(store.Users(), store.Teams(), nil, nil), store
}

func seedUser(t *testing.T, store *memory.Store, email string, role models.Role) *models.User {
	t.Helper()
	u := &models.User{Email: email, Name: "Ana", Surname: "García", Role: role}
	require.NoError(t, store.Users().Create(context.Background(), u))
	return u
}

func intPtr(v int) *int { return &v }

func participantInput() users.EventRegistrationInput {
	return users.EventRegistrationInput{
		DNI:        "12345678",
		University: "UTEC",
		Career:     "Computer Science",
		Age:        intPtr(21),
		Category1:  intPtr(1),
		Category2:  intPtr(2),
		Category3:  intPtr(3),
	}
}

func staffInput() users.EventRegistrationInput {
	return users.EventRegistrationInput{
		DNI:            "87654321",
		Company:        "Acme",
		Position:       "CTO",
		FoodPreference: "vegetarian",
		PhotoURL:       "https://cdn.test/photo.jpg",
	}
}

func TestRegisterParticipant(t *testing.T) {
	svc, store := newService(t)
	ctx := context.Background()
	u := seedUser(t, store, "ana@test.dev", models.RoleParticipant)

	got, err := svc.RegisterForEvent(ctx, u.ID, participantInput())
	require.NoError(t, err)
	assert.Equal(t, "UTEC", got.University)
	require.NotNil(t, got.Age)
	assert.Equal(t, 21, *got.Age)
	assert.Equal(t, models.OnboardingComplete, got.OnboardingStep)
}

func TestRegisterParticipantValidation(t *testing.T) {
	svc, store := newService(t)
	ctx := context.Background()
	u := seedUser(t, store, "ana@test.dev", models.RoleParticipant)

	cases := []struct {
		name   string
		mutate func(*users.EventRegistrationInput)
	}{
		{"missing dni", func(in *users.EventRegistrationInput) { in.DNI = "" }},
		{"non-numeric dni", func(in *users.EventRegistrationInput) { in.DNI = "12A45" }},
		{"missing university", func(in *users.EventRegistrationInput) { in.University = "" }},
		{"missing career", func(in *users.EventRegistrationInput) { in.Career = "" }},
		{"missing age", func(in *users.EventRegistrationInput) { in.Age = nil }},
		{"underage", func(in *users.EventRegistrationInput) { in.Age = intPtr(17) }},
		{"missing categories", func(in *users.EventRegistrationInput) { in.Category2 = nil }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := participantInput()
			tc.mutate(&in)
			_, err := svc.RegisterForEvent(ctx, u.ID, in)
			assert.Error(t, err)
		})
	}

	// nothing was merged by the rejected attempts
	got, err := store.Users().GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Empty(t, got.University)
	assert.Equal(t, 0, got.OnboardingStep)
}

func TestRegisterAgeBoundary(t *testing.T) {
	svc, store := newService(t)
	ctx := context.Background()
	u := seedUser(t, store, "ana@test.dev", models.RoleParticipant)

	in := participantInput()
	in.Age = intPtr(18)
	_, err := svc.RegisterForEvent(ctx, u.ID, in)
	assert.NoError(t, err)
}

func TestRegisterStaffBranch(t *testing.T) {
	svc, store := newService(t)
	ctx := context.Background()
	u := seedUser(t, store, "judge@test.dev", models.RoleJudge)

	// participant fields are not enough for a judge
	_, err := svc.RegisterForEvent(ctx, u.ID, participantInput())
	assert.Error(t, err)

	got, err := svc.RegisterForEvent(ctx, u.ID, staffInput())
	require.NoError(t, err)
	assert.Equal(t, "Acme", got.Company)
	assert.Equal(t, "https://cdn.test/photo.jpg", got.PhotoURL)
	assert.Empty(t, got.University)
}

func TestRegisterStaffMissingPhoto(t *testing.T) {
	svc, store := newService(t)
	u := seedUser(t, store, "judge@test.dev", models.RoleJudge)

	in := staffInput()
	in.PhotoURL = ""
	_, err := svc.RegisterForEvent(context.Background(), u.ID, in)
	assert.Error(t, err)
}

func TestRegisterTeamReference(t *testing.T) {
	svc, store := newService(t)
	ctx := context.Background()
	u := seedUser(t, store, "ana@test.dev", models.RoleParticipant)

	missing := "no-such-team"
	in := participantInput()
	in.Team = &missing
	_, err := svc.RegisterForEvent(ctx, u.ID, in)
	assert.Error(t, err)

	admin := seedUser(t, store, "admin@test.dev", models.RoleParticipant)
	require.NoError(t, store.Teams().CreateWithAdmin(ctx, &models.Team{
		Label:   "los-hackers",
		Name:    "Los Hackers",
		AdminID: admin.ID,
		Status:  models.TeamStatusRegistered,
	}))

	label := "los-hackers"
	in = participantInput()
	in.Team = &label
	got, err := svc.RegisterForEvent(ctx, u.ID, in)
	require.NoError(t, err)
	require.NotNil(t, got.TeamLabel)
	assert.Equal(t, "los-hackers", *got.TeamLabel)
}

func TestReRegisterOverwritesFieldByField(t *testing.T) {
	svc, store := newService(t)
	ctx := context.Background()
	u := seedUser(t, store, "ana@test.dev", models.RoleParticipant)

	gh := "https://github.com/ana"
	in := participantInput()
	in.GitHub = &gh
	_, err := svc.RegisterForEvent(ctx, u.ID, in)
	require.NoError(t, err)

	// second registration without the github field keeps the stored value
	in2 := participantInput()
	in2.University = "PUCP"
	got, err := svc.RegisterForEvent(ctx, u.ID, in2)
	require.NoError(t, err)
	assert.Equal(t, "PUCP", got.University)
	assert.Equal(t, gh, got.GitHub)
}

func TestUpdateOnboardingStepBounds(t *testing.T) {
	svc, store := newService(t)
	ctx := context.Background()
	u := seedUser(t, store, "ana@test.dev", models.RoleParticipant)

	assert.Error(t, svc.UpdateOnboardingStep(ctx, u.ID, -1))
	assert.Error(t, svc.UpdateOnboardingStep(ctx, u.ID, 4))
	require.NoError(t, svc.UpdateOnboardingStep(ctx, u.ID, 2))

	got, err := store.Users().GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.OnboardingStep)
}

func TestRegisterUnknownUser(t *testing.T) {
	svc, _ := newService(t)
	_, err := svc.RegisterForEvent(context.Background(), uuid.New(), participantInput())
	assert.Error(t, err)
}
