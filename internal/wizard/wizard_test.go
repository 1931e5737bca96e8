package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hackarena/backend/internal/models"
)

func validParticipant() State {
	s := New(models.RoleParticipant)
	s.Form.DNI = "12345678"
	s.Form.University = "UTEC"
	s.Form.Career = "Computer Science"
	s.Form.Age = "21"
	s.Form.Priorities = []int{1, 2, 3}
	return s
}

func TestTotalStepsByRole(t *testing.T) {
	assert.Equal(t, 3, New(models.RoleParticipant).TotalSteps())
	assert.Equal(t, 2, New(models.RoleMentor).TotalSteps())
	assert.Equal(t, 2, New(models.RoleJudge).TotalSteps())
}

func TestNextAdvancesOnValidProfile(t *testing.T) {
	s := validParticipant()
	next, err := s.Next()
	require.NoError(t, err)
	assert.Equal(t, StepSocial, next.Step)
	// the original value is untouched
	assert.Equal(t, StepProfile, s.Step)
}

func TestNextBlocksOnInvalidProfile(t *testing.T) {
	s := validParticipant()
	s.Form.DNI = "12A45"
	next, err := s.Next()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "numeric")
	assert.Equal(t, StepProfile, next.Step)
}

func TestParticipantAgeBoundary(t *testing.T) {
	s := validParticipant()
	s.Form.Age = "17"
	_, err := s.Next()
	require.Error(t, err)

	s.Form.Age = "18"
	_, err = s.Next()
	require.NoError(t, err)
}

func TestStaffProfileRequirements(t *testing.T) {
	s := New(models.RoleJudge)
	s.Form.DNI = "87654321"
	s.Form.Company = "Acme"
	s.Form.Position = "CTO"
	s.Form.FoodPreference = "vegetarian"

	_, err := s.Next()
	require.Error(t, err, "photo is required for staff")

	s.Form.PhotoPath = "/tmp/photo.jpg"
	next, err := s.Next()
	require.NoError(t, err)
	assert.Equal(t, StepSocial, next.Step)
	assert.True(t, next.LastStep())
}

func TestSocialLinksOptionalButChecked(t *testing.T) {
	s := validParticipant()
	s.Step = StepSocial

	next, err := s.Next()
	require.NoError(t, err, "empty links are fine")
	assert.Equal(t, StepTeam, next.Step)

	s.Form.GitHub = "not a url"
	_, err = s.Next()
	require.Error(t, err)
}

func TestTeamStepBranches(t *testing.T) {
	s := validParticipant()
	s.Step = StepTeam

	s.Form.Choice = ChoiceSolo
	_, err := s.Next()
	assert.NoError(t, err)

	s.Form.Choice = ChoiceHasTeam
	_, err = s.Next()
	assert.Error(t, err, "team code required")
	s.Form.TeamCode = "los-hackers"
	_, err = s.Next()
	assert.NoError(t, err)

	s.Form.Choice = ChoiceCreate
	s.Form.TeamName = "ab"
	s.Form.TeamMotivation = "we want to win this hackathon together"
	_, err = s.Next()
	assert.Error(t, err, "name too short")

	s.Form.TeamName = "Los Hackers"
	s.Form.TeamMotivation = "too short"
	_, err = s.Next()
	assert.Error(t, err, "motivation too short")

	s.Form.TeamMotivation = "we want to win this hackathon together"
	_, err = s.Next()
	assert.NoError(t, err)
}

func TestBackNeverValidates(t *testing.T) {
	s := New(models.RoleParticipant)
	s.Step = StepTeam
	s = s.Back()
	assert.Equal(t, StepSocial, s.Step)
	s = s.Back()
	assert.Equal(t, StepProfile, s.Step)
	s = s.Back()
	assert.Equal(t, StepProfile, s.Step)
}

func TestMovePreference(t *testing.T) {
	assert.Equal(t, []string{"b", "c", "a"}, MovePreference([]string{"a", "b", "c"}, 0, 2))
	assert.Equal(t, []string{"c", "a", "b"}, MovePreference([]string{"a", "b", "c"}, 2, 0))
	assert.Equal(t, []int{1, 3, 2}, MovePreference([]int{1, 2, 3}, 1, 2))

	// out of range leaves the list as-is
	assert.Equal(t, []int{1, 2, 3}, MovePreference([]int{1, 2, 3}, 5, 0))
	assert.Equal(t, []int{1, 2, 3}, MovePreference([]int{1, 2, 3}, 0, -1))
}
