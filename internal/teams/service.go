package teams

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hackarena/backend/internal/models"
	"github.com/hackarena/backend/pkg/apperr"
	"github.com/hackarena/backend/pkg/metrics"
	"github.com/hackarena/backend/pkg/queue"
	"github.com/hackarena/backend/pkg/slug"
)

const (
	// MinNameLen is the minimum trimmed team name length.
	MinNameLen = 3
	// MinMotivationLen is the minimum trimmed motivation length.
	MinMotivationLen = 20
)

// UserStore is the slice of the users port the team service needs.
type UserStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	ListByTeam(ctx context.Context, label string) ([]models.UserPublic, error)
	ClearTeam(ctx context.Context, id uuid.UUID) error
}

// Service implements team registration and membership rules.
type Service struct {
	repo   Repository
	users  UserStore
	queue  *queue.Queue
	logger *zap.Logger
}

// NewService creates the team service. q may be nil.
func NewService(repo Repository, users UserStore, q *queue.Queue, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{repo: repo, users: users, queue: q, logger: logger}
}

// CreateInput is the team creation payload.
type CreateInput struct {
	Name       string
	Motivation string
	Category1  int
	Category2  int
	Category3  int
}

// Create validates the payload, derives the label, and performs the atomic
// conditional create. The requesting user becomes the team admin; a user
// already on a team is never silently reassigned.
func (s *Service) Create(ctx context.Context, userID uuid.UUID, in CreateInput) (*models.Team, error) {
	name := strings.TrimSpace(in.Name)
	motivation := strings.TrimSpace(in.Motivation)
	if len(name) < MinNameLen {
		return nil, apperr.E(apperr.Validation, "team name must be at least 3 characters")
	}
	if len(motivation) < MinMotivationLen {
		return nil, apperr.E(apperr.Validation, "motivation must be at least 20 characters")
	}

	label := slug.Make(name)
	if label == "" {
		return nil, apperr.E(apperr.Validation, "team name must contain letters or digits")
	}

	// friendly pre-checks; the store transaction is what actually closes the races
	if exists, err := s.repo.Exists(ctx, label); err != nil {
		return nil, err
	} else if exists {
		return nil, ErrExists
	}
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if user.TeamLabel != nil {
		return nil, ErrUserHasTeam
	}

	team := &models.Team{
		Label:      label,
		Name:       name,
		Motivation: motivation,
		Category1:  in.Category1,
		Category2:  in.Category2,
		Category3:  in.Category3,
		AdminID:    userID,
		Status:     models.TeamStatusRegistered,
	}
	if err := s.repo.CreateWithAdmin(ctx, team); err != nil {
		return nil, err
	}

	metrics.TeamsCreatedTotal.Inc()
	if s.queue != nil {
		if err := s.queue.EnqueueEmail(ctx, queue.EmailPayload{
			EmailType:      queue.EmailTypeTeamCreated,
			RecipientEmail: user.Email,
			RecipientName:  user.Name,
			TeamLabel:      label,
		}); err != nil {
			s.logger.Warn("enqueue team email failed", zap.Error(err), zap.String("team", label))
		}
	}

	s.logger.Info("team created", zap.String("team", label), zap.String("admin", userID.String()))
	return team, nil
}

// Update applies a partial patch. Only the team admin may update.
func (s *Service) Update(ctx context.Context, label string, requesterID uuid.UUID, upd Update) (*models.Team, error) {
	team, err := s.repo.GetByLabel(ctx, label)
	if err != nil {
		return nil, err
	}
	if team == nil {
		return nil, apperr.E(apperr.NotFound, "team not found")
	}
	if team.AdminID != requesterID {
		return nil, apperr.E(apperr.Permission, "only the team admin may update the team")
	}
	if upd.Status != nil && !models.ValidTeamStatus(*upd.Status) {
		return nil, apperr.E(apperr.Validation, "invalid team status")
	}
	if upd.Name != nil {
		trimmed := strings.TrimSpace(*upd.Name)
		if len(trimmed) < MinNameLen {
			return nil, apperr.E(apperr.Validation, "team name must be at least 3 characters")
		}
		upd.Name = &trimmed
	}
	if upd.Motivation != nil {
		trimmed := strings.TrimSpace(*upd.Motivation)
		if len(trimmed) < MinMotivationLen {
			return nil, apperr.E(apperr.Validation, "motivation must be at least 20 characters")
		}
		upd.Motivation = &trimmed
	}

	updated, err := s.repo.Update(ctx, label, upd)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, apperr.E(apperr.NotFound, "team not found")
	}
	return updated, nil
}

// Members returns the team and its member list.
func (s *Service) Members(ctx context.Context, label string) (*models.Team, []models.UserPublic, error) {
	team, err := s.repo.GetByLabel(ctx, label)
	if err != nil {
		return nil, nil, err
	}
	if team == nil {
		return nil, nil, apperr.E(apperr.NotFound, "team not found")
	}
	members, err := s.users.ListByTeam(ctx, label)
	if err != nil {
		return nil, nil, err
	}
	return team, members, nil
}

// RemoveMember clears the target user's team reference. Only the team admin
// may remove members.
func (s *Service) RemoveMember(ctx context.Context, label string, requesterID, memberID uuid.UUID) error {
	team, err := s.repo.GetByLabel(ctx, label)
	if err != nil {
		return err
	}
	if team == nil {
		return apperr.E(apperr.NotFound, "team not found")
	}
	if team.AdminID != requesterID {
		return apperr.E(apperr.Permission, "only the team admin may remove members")
	}

	member, err := s.users.GetByID(ctx, memberID)
	if err != nil {
		return err
	}
	if member == nil || member.TeamLabel == nil || *member.TeamLabel != label {
		return apperr.E(apperr.NotFound, "member not found in team")
	}

	if err := s.users.ClearTeam(ctx, memberID); err != nil {
		return err
	}
	s.logger.Info("member removed", zap.String("team", label), zap.String("member", memberID.String()))
	return nil
}
