package projects

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hackarena/backend/internal/middleware"
	"github.com/hackarena/backend/internal/models"
	"github.com/hackarena/backend/pkg/response"
)

// UserStore is the slice of the users port needed for the membership guard.
type UserStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// SubmitRequest is the body for PUT /teams/:label/project.
type SubmitRequest struct {
	CategoryID  int      `json:"category_id"`
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description" binding:"required"`
	RepoURL     string   `json:"repo_url" binding:"required"`
	DemoURL     string   `json:"demo_url"`
	ImageURLs   []string `json:"images"`
	VideoURL    string   `json:"video_url"`
}

// Handler handles project submission endpoints.
type Handler struct {
	repo   Repository
	users  UserStore
	logger *zap.Logger
}

// NewHandler creates a projects handler.
func NewHandler(repo Repository, users UserStore, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{repo: repo, users: users, logger: logger}
}

// Submit handles PUT /teams/:label/project. Only members of the team may
// submit; re-submitting overwrites the previous project.
func (h *Handler) Submit(c *gin.Context) {
	label := c.Param("label")
	userID := c.MustGet(middleware.ContextUserID).(uuid.UUID)

	user, err := h.users.GetByID(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("get user failed", zap.Error(err))
		response.Error(c, err)
		return
	}
	if user == nil || user.TeamLabel == nil || *user.TeamLabel != label {
		response.Forbidden(c, "only team members may submit a project")
		return
	}

	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "title, description and repo_url are required")
		return
	}

	p := &models.Project{
		TeamLabel:   label,
		CategoryID:  req.CategoryID,
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		RepoURL:     strings.TrimSpace(req.RepoURL),
		DemoURL:     req.DemoURL,
		ImageURLs:   req.ImageURLs,
		VideoURL:    req.VideoURL,
	}
	if err := h.repo.Upsert(c.Request.Context(), p); err != nil {
		h.logger.Error("submit project failed", zap.Error(err), zap.String("team", label))
		response.Error(c, err)
		return
	}

	response.OK(c, p)
}

// GetByTeam handles GET /teams/:label/project.
func (h *Handler) GetByTeam(c *gin.Context) {
	p, err := h.repo.GetByTeam(c.Request.Context(), c.Param("label"))
	if err != nil {
		h.logger.Error("get project failed", zap.Error(err))
		response.Error(c, err)
		return
	}
	if p == nil {
		response.NotFound(c, "project not found")
		return
	}
	response.OK(c, p)
}

// List handles GET /projects (judge/admin only).
func (h *Handler) List(c *gin.Context) {
	list, err := h.repo.List(c.Request.Context())
	if err != nil {
		h.logger.Error("list projects failed", zap.Error(err))
		response.Error(c, err)
		return
	}
	response.OK(c, list)
}
