package teams

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hackarena/backend/internal/middleware"
	"github.com/hackarena/backend/pkg/response"
)

// CreateRequest is the body for POST /teams. Field names match the original
// registration form.
type CreateRequest struct {
	Name       string `json:"name" binding:"required"`
	Motivation string `json:"tell_why" binding:"required"`
	Category1  int    `json:"category_1"`
	Category2  int    `json:"category_2"`
	Category3  int    `json:"category_3"`
}

// UpdateRequest is the body for PATCH /teams/:label.
type UpdateRequest struct {
	Name       *string `json:"name"`
	Motivation *string `json:"tell_why"`
	Category1  *int    `json:"category_1"`
	Category2  *int    `json:"category_2"`
	Category3  *int    `json:"category_3"`
	Status     *string `json:"status"`
	LinkDeploy *string `json:"link_deploy"`
	LinkGitHub *string `json:"link_github"`
	Finalist   *bool   `json:"is_finalist"`
}

// Handler handles team HTTP endpoints.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a teams handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{service: service, logger: logger}
}

// Create handles POST /teams.
func (h *Handler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uuid.UUID)

	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "name and tell_why are required")
		return
	}

	team, err := h.service.Create(c.Request.Context(), userID, CreateInput{
		Name:       req.Name,
		Motivation: req.Motivation,
		Category1:  req.Category1,
		Category2:  req.Category2,
		Category3:  req.Category3,
	})
	if err != nil {
		h.logger.Error("create team failed", zap.Error(err), zap.String("user", userID.String()))
		response.Error(c, err)
		return
	}

	response.Created(c, team)
}

// GetByLabel handles GET /teams/:label.
func (h *Handler) GetByLabel(c *gin.Context) {
	team, err := h.service.repo.GetByLabel(c.Request.Context(), c.Param("label"))
	if err != nil {
		h.logger.Error("get team failed", zap.Error(err))
		response.Error(c, err)
		return
	}
	if team == nil {
		response.NotFound(c, "team not found")
		return
	}
	response.OK(c, team)
}

// List handles GET /teams.
func (h *Handler) List(c *gin.Context) {
	teams, err := h.service.repo.List(c.Request.Context())
	if err != nil {
		h.logger.Error("list teams failed", zap.Error(err))
		response.Error(c, err)
		return
	}
	response.OK(c, teams)
}

// Update handles PATCH /teams/:label (team admin only).
func (h *Handler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uuid.UUID)

	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	team, err := h.service.Update(c.Request.Context(), c.Param("label"), userID, Update{
		Name:       req.Name,
		Motivation: req.Motivation,
		Category1:  req.Category1,
		Category2:  req.Category2,
		Category3:  req.Category3,
		Status:     req.Status,
		LinkDeploy: req.LinkDeploy,
		LinkGitHub: req.LinkGitHub,
		Finalist:   req.Finalist,
	})
	if err != nil {
		h.logger.Error("update team failed", zap.Error(err), zap.String("label", c.Param("label")))
		response.Error(c, err)
		return
	}

	response.OK(c, team)
}

// Members handles GET /teams/:label/members.
func (h *Handler) Members(c *gin.Context) {
	team, members, err := h.service.Members(c.Request.Context(), c.Param("label"))
	if err != nil {
		h.logger.Error("list members failed", zap.Error(err))
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"team": team, "members": members})
}

// RemoveMember handles DELETE /teams/:label/members/:userId (team admin only).
func (h *Handler) RemoveMember(c *gin.Context) {
	requesterID := c.MustGet(middleware.ContextUserID).(uuid.UUID)
	memberID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		response.BadRequest(c, "invalid user id")
		return
	}

	if err := h.service.RemoveMember(c.Request.Context(), c.Param("label"), requesterID, memberID); err != nil {
		h.logger.Error("remove member failed", zap.Error(err), zap.String("label", c.Param("label")))
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"message": "member removed from team"})
}
