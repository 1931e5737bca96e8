package users

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hackarena/backend/internal/models"
	"github.com/hackarena/backend/pkg/response"
)

// RegisterEventRequest is the body for POST /users/register-event. Which
// fields are required depends on the caller's stored role.
type RegisterEventRequest struct {
	DNI        string `json:"dni"`
	University string `json:"university"`
	Career     string `json:"career"`
	Age        *int   `json:"age"`
	Category1  *int   `json:"category_1"`
	Category2  *int   `json:"category_2"`
	Category3  *int   `json:"category_3"`

	Company        string `json:"company"`
	Position       string `json:"position"`
	FoodPreference string `json:"food_preference"`
	PhotoURL       string `json:"photo_url"`

	GitHub    *string `json:"github"`
	LinkedIn  *string `json:"linkedin"`
	Instagram *string `json:"instagram"`
	Twitter   *string `json:"twitter"`
	CVLink    *string `json:"cv_link"`

	Team *string `json:"team"`
}

// OnboardingRequest is the body for PATCH /users/:id/onboarding.
type OnboardingRequest struct {
	Step int `json:"step"`
}

// CollaboratorRequest is the body for POST /collaborators.
type CollaboratorRequest struct {
	Email string `json:"email" binding:"required,email"`
	Role  string `json:"role" binding:"required"`
}

// Handler handles user HTTP endpoints.
type Handler struct {
	repo    Repository
	colabs  CollaboratorRepository
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a users handler.
func NewHandler(repo Repository, colabs CollaboratorRepository, service *Service, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{repo: repo, colabs: colabs, service: service, logger: logger}
}

// RegisterEvent handles POST /users/register-event.
func (h *Handler) RegisterEvent(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)

	var req RegisterEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	user, err := h.service.RegisterForEvent(c.Request.Context(), userID, EventRegistrationInput{
		DNI:            req.DNI,
		University:     req.University,
		Career:         req.Career,
		Age:            req.Age,
		Category1:      req.Category1,
		Category2:      req.Category2,
		Category3:      req.Category3,
		Company:        req.Company,
		Position:       req.Position,
		FoodPreference: req.FoodPreference,
		PhotoURL:       req.PhotoURL,
		GitHub:         req.GitHub,
		LinkedIn:       req.LinkedIn,
		Instagram:      req.Instagram,
		Twitter:        req.Twitter,
		CVLink:         req.CVLink,
		Team:           req.Team,
	})
	if err != nil {
		h.logError("event registration failed", err)
		response.Error(c, err)
		return
	}

	response.OK(c, user)
}

// List handles GET /users (admin only).
func (h *Handler) List(c *gin.Context) {
	list, err := h.repo.List(c.Request.Context())
	if err != nil {
		h.logError("list users failed", err)
		response.Error(c, err)
		return
	}
	response.OK(c, list)
}

// GetByID handles GET /users/:id.
func (h *Handler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid user id")
		return
	}
	user, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		h.logError("get user failed", err)
		response.Error(c, err)
		return
	}
	if user == nil {
		response.NotFound(c, "user not found")
		return
	}

	// full record for self and admins, public projection otherwise
	callerID := c.MustGet("user_id").(uuid.UUID)
	callerRole, _ := c.MustGet("user_role").(string)
	if callerID == id || callerRole == string(models.RoleAdmin) {
		response.OK(c, user)
		return
	}
	response.OK(c, user.ToPublic())
}

// UpdateOnboarding handles PATCH /users/:id/onboarding (self or admin).
func (h *Handler) UpdateOnboarding(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid user id")
		return
	}
	callerID := c.MustGet("user_id").(uuid.UUID)
	callerRole, _ := c.MustGet("user_role").(string)
	if callerID != id && callerRole != string(models.RoleAdmin) {
		response.Forbidden(c, "cannot update another user's onboarding")
		return
	}

	var req OnboardingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "step is required")
		return
	}
	if err := h.service.UpdateOnboardingStep(c.Request.Context(), id, req.Step); err != nil {
		h.logError("update onboarding failed", err)
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"step": req.Step})
}

// AddCollaborator handles POST /collaborators (admin only). Entries added
// here assign judge/mentor/admin roles to future signups with that email.
func (h *Handler) AddCollaborator(c *gin.Context) {
	var req CollaboratorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "email and role are required")
		return
	}
	role := models.Role(req.Role)
	if !role.IsStaff() {
		response.BadRequest(c, "role must be judge, mentor, or admin")
		return
	}
	if err := h.colabs.Add(c.Request.Context(), req.Email, role); err != nil {
		h.logError("add collaborator failed", err)
		response.Error(c, err)
		return
	}
	response.Created(c, models.Collaborator{Email: req.Email, Role: role})
}

func (h *Handler) logError(msg string, err error) {
	h.logger.Error(msg, zap.Error(err))
}
