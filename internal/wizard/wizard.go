// Package wizard is the multi-step event registration form behind cmd/wizard.
// The state machine is a value: Next validates the current step and returns
// the advanced state, or the same state with a field error. Invalid input
// never commits.
package wizard

import (
	"strconv"
	"strings"

	"github.com/hackarena/backend/internal/models"
	"github.com/hackarena/backend/internal/teams"
	"github.com/hackarena/backend/internal/users"
	"github.com/hackarena/backend/pkg/apperr"
)

// Step identifies a wizard screen.
type Step int

const (
	// StepProfile collects the role-dependent event fields.
	StepProfile Step = iota
	// StepSocial collects optional social links.
	StepSocial
	// StepTeam collects the team choice (participants only).
	StepTeam
)

// TeamChoice is the participant's team branch on the final step.
type TeamChoice string

const (
	// ChoiceHasTeam joins an existing team by its code (label).
	ChoiceHasTeam TeamChoice = "has_team"
	// ChoiceSolo registers without a team.
	ChoiceSolo TeamChoice = "solo"
	// ChoiceCreate routes into team creation after submission.
	ChoiceCreate TeamChoice = "create"
)

// Form holds everything the wizard collects. String fields keep raw input;
// parsing happens in validation so a bad value can be reported per field.
type Form struct {
	// Profile step
	DNI        string
	University string
	Career     string
	Age        string
	Priorities []int // ranked category ids, drag-to-reorder

	Company        string
	Position       string
	FoodPreference string
	PhotoPath      string // local file, uploaded on submit

	// Social step
	GitHub    string
	LinkedIn  string
	Instagram string
	Twitter   string
	CVLink    string

	// Team step
	Choice         TeamChoice
	TeamCode       string
	TeamName       string
	TeamMotivation string
}

// State is the wizard position. Pass it by value; Next and Back return the
// successor state and never mutate the receiver.
type State struct {
	Role models.Role
	Step Step
	Form Form
}

// New creates a wizard for the given role, starting at the profile step.
func New(role models.Role) State {
	return State{Role: role, Step: StepProfile, Form: Form{Choice: ChoiceSolo}}
}

// TotalSteps is 2 for staff roles and 3 for participants (team step).
func (s State) TotalSteps() int {
	if s.Role.IsStaff() {
		return 2
	}
	return 3
}

// LastStep reports whether the wizard is on its final screen.
func (s State) LastStep() bool {
	return int(s.Step) == s.TotalSteps()-1
}

// Next validates the current step. On success it returns the advanced state;
// on failure it returns the state unchanged plus a validation error naming
// the offending field.
func (s State) Next() (State, error) {
	var err error
	switch s.Step {
	case StepProfile:
		err = s.validateProfile()
	case StepSocial:
		err = s.validateSocial()
	case StepTeam:
		err = s.validateTeam()
	}
	if err != nil {
		return s, err
	}
	if !s.LastStep() {
		s.Step++
	}
	return s, nil
}

// Back moves to the previous step without validation.
func (s State) Back() State {
	if s.Step > StepProfile {
		s.Step--
	}
	return s
}

func (s State) validateProfile() error {
	f := s.Form
	if strings.TrimSpace(f.DNI) == "" {
		return apperr.E(apperr.Validation, "dni is required")
	}
	if !isNumeric(strings.TrimSpace(f.DNI)) {
		return apperr.E(apperr.Validation, "dni must be numeric")
	}
	if s.Role.IsStaff() {
		if strings.TrimSpace(f.Company) == "" {
			return apperr.E(apperr.Validation, "company is required")
		}
		if strings.TrimSpace(f.Position) == "" {
			return apperr.E(apperr.Validation, "position is required")
		}
		if strings.TrimSpace(f.FoodPreference) == "" {
			return apperr.E(apperr.Validation, "food preference is required")
		}
		if strings.TrimSpace(f.PhotoPath) == "" {
			return apperr.E(apperr.Validation, "photo is required")
		}
		return nil
	}
	if strings.TrimSpace(f.University) == "" {
		return apperr.E(apperr.Validation, "university is required")
	}
	if strings.TrimSpace(f.Career) == "" {
		return apperr.E(apperr.Validation, "career is required")
	}
	age, err := strconv.Atoi(strings.TrimSpace(f.Age))
	if err != nil {
		return apperr.E(apperr.Validation, "age must be a number")
	}
	if age < users.MinParticipantAge {
		return apperr.Ef(apperr.Validation, "you must be at least %d", users.MinParticipantAge)
	}
	if len(f.Priorities) < 3 {
		return apperr.E(apperr.Validation, "rank three category preferences")
	}
	return nil
}

// Social links are optional; provided ones must look like URLs or handles.
func (s State) validateSocial() error {
	for _, link := range []string{s.Form.GitHub, s.Form.LinkedIn, s.Form.CVLink} {
		link = strings.TrimSpace(link)
		if link != "" && !strings.HasPrefix(link, "http://") && !strings.HasPrefix(link, "https://") {
			return apperr.E(apperr.Validation, "links must start with http:// or https://")
		}
	}
	return nil
}

func (s State) validateTeam() error {
	f := s.Form
	switch f.Choice {
	case ChoiceSolo:
		return nil
	case ChoiceHasTeam:
		if strings.TrimSpace(f.TeamCode) == "" {
			return apperr.E(apperr.Validation, "team code is required")
		}
		return nil
	case ChoiceCreate:
		if len(strings.TrimSpace(f.TeamName)) < teams.MinNameLen {
			return apperr.Ef(apperr.Validation, "team name must be at least %d characters", teams.MinNameLen)
		}
		if len(strings.TrimSpace(f.TeamMotivation)) < teams.MinMotivationLen {
			return apperr.Ef(apperr.Validation, "motivation must be at least %d characters", teams.MinMotivationLen)
		}
		return nil
	}
	return apperr.E(apperr.Validation, "choose a team option")
}

// MovePreference moves list[from] to position to, preserving the relative
// order of the other items. Out-of-range indexes return the list unchanged.
func MovePreference[T any](list []T, from, to int) []T {
	if from < 0 || from >= len(list) || to < 0 || to >= len(list) || from == to {
		return list
	}
	out := make([]T, 0, len(list))
	out = append(out, list[:from]...)
	out = append(out, list[from+1:]...)
	out = append(out[:to], append([]T{list[from]}, out[to:]...)...)
	return out
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
