package users

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hackarena/backend/internal/models"
	"github.com/hackarena/backend/pkg/apperr"
	"github.com/hackarena/backend/pkg/metrics"
	"github.com/hackarena/backend/pkg/queue"
)

// MinParticipantAge is the lower bound for participant registration.
const MinParticipantAge = 18

// TeamChecker reports whether a team label exists. Satisfied by the teams
// repository; kept as a local interface to avoid coupling the packages.
type TeamChecker interface {
	Exists(ctx context.Context, label string) (bool, error)
}

// Service implements event registration: role-dependent validation and a
// field-by-field merge into the user record.
type Service struct {
	repo   Repository
	teams  TeamChecker
	queue  *queue.Queue
	logger *zap.Logger
}

// NewService creates the event registration service. queue may be nil when no
// notification delivery is configured.
func NewService(repo Repository, teams TeamChecker, q *queue.Queue, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{repo: repo, teams: teams, queue: q, logger: logger}
}

// EventRegistrationInput carries the role-branched registration payload.
// Nil optional fields are left untouched on re-registration.
type EventRegistrationInput struct {
	DNI        string
	University string
	Career     string
	Age        *int
	Category1  *int
	Category2  *int
	Category3  *int

	Company        string
	Position       string
	FoodPreference string
	PhotoURL       string

	GitHub    *string
	LinkedIn  *string
	Instagram *string
	Twitter   *string
	CVLink    *string

	Team *string
}

// RegisterForEvent validates the payload against the user's stored role and
// merges it into the user record. Re-registering overwrites field by field;
// no history is kept.
func (s *Service) RegisterForEvent(ctx context.Context, userID uuid.UUID, in EventRegistrationInput) (*models.User, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.E(apperr.NotFound, "user not found")
	}

	if err := validateEventInput(user.Role, in); err != nil {
		return nil, err
	}

	if in.Team != nil && *in.Team != "" {
		ok, err := s.teams.Exists(ctx, *in.Team)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, apperr.E(apperr.NotFound, "team not found")
		}
	}

	upd := EventProfileUpdate{
		DNI:       strPtr(in.DNI),
		Age:       in.Age,
		Category1: in.Category1,
		Category2: in.Category2,
		Category3: in.Category3,
		GitHub:    in.GitHub,
		LinkedIn:  in.LinkedIn,
		Instagram: in.Instagram,
		Twitter:   in.Twitter,
		CVLink:    in.CVLink,
		TeamLabel: in.Team,
	}
	if user.Role.IsStaff() {
		upd.Company = strPtr(in.Company)
		upd.Position = strPtr(in.Position)
		upd.FoodPreference = strPtr(in.FoodPreference)
		upd.PhotoURL = strPtr(in.PhotoURL)
	} else {
		upd.University = strPtr(in.University)
		upd.Career = strPtr(in.Career)
		if in.FoodPreference != "" {
			upd.FoodPreference = &in.FoodPreference
		}
	}

	if err := s.repo.UpdateEventProfile(ctx, userID, upd); err != nil {
		return nil, err
	}
	if err := s.repo.SetOnboardingStep(ctx, userID, models.OnboardingComplete); err != nil {
		return nil, err
	}

	metrics.RegistrationsTotal.WithLabelValues(string(user.Role)).Inc()
	s.notify(ctx, queue.EmailPayload{
		EmailType:      queue.EmailTypeEventRegister,
		RecipientEmail: user.Email,
		RecipientName:  user.Name,
	})

	return s.repo.GetByID(ctx, userID)
}

// UpdateOnboardingStep sets the progress marker, bounds-checked to 0..3.
func (s *Service) UpdateOnboardingStep(ctx context.Context, userID uuid.UUID, step int) error {
	if step < 0 || step > models.OnboardingComplete {
		return apperr.E(apperr.Validation, "onboarding step out of range")
	}
	return s.repo.SetOnboardingStep(ctx, userID, step)
}

func validateEventInput(role models.Role, in EventRegistrationInput) error {
	dni := strings.TrimSpace(in.DNI)
	if dni == "" {
		return apperr.E(apperr.Validation, "dni is required")
	}
	if !isNumeric(dni) {
		return apperr.E(apperr.Validation, "dni must be numeric")
	}

	if role.IsStaff() {
		switch {
		case strings.TrimSpace(in.Company) == "":
			return apperr.E(apperr.Validation, "company is required")
		case strings.TrimSpace(in.Position) == "":
			return apperr.E(apperr.Validation, "position is required")
		case strings.TrimSpace(in.FoodPreference) == "":
			return apperr.E(apperr.Validation, "food preference is required")
		case strings.TrimSpace(in.PhotoURL) == "":
			return apperr.E(apperr.Validation, "photo is required")
		}
		return nil
	}

	switch {
	case strings.TrimSpace(in.University) == "":
		return apperr.E(apperr.Validation, "university is required")
	case strings.TrimSpace(in.Career) == "":
		return apperr.E(apperr.Validation, "career is required")
	case in.Age == nil:
		return apperr.E(apperr.Validation, "age is required")
	case *in.Age < MinParticipantAge:
		return apperr.E(apperr.Validation, "you must be at least 18 years old")
	case in.Category1 == nil || in.Category2 == nil || in.Category3 == nil:
		return apperr.E(apperr.Validation, "three ranked category preferences are required")
	}
	return nil
}

func (s *Service) notify(ctx context.Context, payload queue.EmailPayload) {
	if s.queue == nil {
		return
	}
	if err := s.queue.EnqueueEmail(ctx, payload); err != nil {
		s.logger.Warn("enqueue email failed",
			zap.Error(err), zap.String("recipient", payload.RecipientEmail))
	}
}

func isNumeric(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
