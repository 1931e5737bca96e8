package catalog

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hackarena/backend/internal/models"
	"github.com/hackarena/backend/pkg/response"
)

// Handler serves the public reference-data lists and the admin mutations
// behind the marketing site content.
type Handler struct {
	repo   Repository
	logger *zap.Logger
}

// NewHandler creates a catalog handler.
func NewHandler(repo Repository, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{repo: repo, logger: logger}
}

func (h *Handler) list(c *gin.Context, what string, load func() (interface{}, error)) {
	data, err := load()
	if err != nil {
		h.logger.Error("list "+what+" failed", zap.Error(err))
		response.Error(c, err)
		return
	}
	response.OK(c, data)
}

func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid id")
		return uuid.Nil, false
	}
	return id, true
}

// Events

// ListEvents handles GET /events.
func (h *Handler) ListEvents(c *gin.Context) {
	h.list(c, "events", func() (interface{}, error) {
		return h.repo.ListEvents(c.Request.Context())
	})
}

// CreateEvent handles POST /events (admin only).
func (h *Handler) CreateEvent(c *gin.Context) {
	var e models.Event
	if err := c.ShouldBindJSON(&e); err != nil {
		response.BadRequest(c, "invalid event payload")
		return
	}
	if e.Title == "" {
		response.BadRequest(c, "title is required")
		return
	}
	if e.Status == "" {
		e.Status = "draft"
	}
	if err := h.repo.CreateEvent(c.Request.Context(), &e); err != nil {
		h.logger.Error("create event failed", zap.Error(err))
		response.Error(c, err)
		return
	}
	response.Created(c, e)
}

// UpdateEvent handles PUT /events/:id (admin only).
func (h *Handler) UpdateEvent(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var e models.Event
	if err := c.ShouldBindJSON(&e); err != nil {
		response.BadRequest(c, "invalid event payload")
		return
	}
	e.ID = id
	if err := h.repo.UpdateEvent(c.Request.Context(), &e); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, e)
}

// DeleteEvent handles DELETE /events/:id (admin only).
func (h *Handler) DeleteEvent(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.repo.DeleteEvent(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"deleted": id})
}

// Categories

// ListCategories handles GET /categories.
func (h *Handler) ListCategories(c *gin.Context) {
	h.list(c, "categories", func() (interface{}, error) {
		return h.repo.ListCategories(c.Request.Context())
	})
}

// CreateCategory handles POST /categories (admin only).
func (h *Handler) CreateCategory(c *gin.Context) {
	var cat models.Category
	if err := c.ShouldBindJSON(&cat); err != nil {
		response.BadRequest(c, "invalid category payload")
		return
	}
	if cat.Name == "" {
		response.BadRequest(c, "name is required")
		return
	}
	if err := h.repo.CreateCategory(c.Request.Context(), &cat); err != nil {
		h.logger.Error("create category failed", zap.Error(err))
		response.Error(c, err)
		return
	}
	response.Created(c, cat)
}

// UpdateCategory handles PUT /categories/:id (admin only).
func (h *Handler) UpdateCategory(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var cat models.Category
	if err := c.ShouldBindJSON(&cat); err != nil {
		response.BadRequest(c, "invalid category payload")
		return
	}
	cat.ID = id
	if err := h.repo.UpdateCategory(c.Request.Context(), &cat); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, cat)
}

// DeleteCategory handles DELETE /categories/:id (admin only).
func (h *Handler) DeleteCategory(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.repo.DeleteCategory(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"deleted": id})
}

// Sponsors

// ListSponsors handles GET /sponsors.
func (h *Handler) ListSponsors(c *gin.Context) {
	h.list(c, "sponsors", func() (interface{}, error) {
		return h.repo.ListSponsors(c.Request.Context())
	})
}

// CreateSponsor handles POST /sponsors (admin only).
func (h *Handler) CreateSponsor(c *gin.Context) {
	var sp models.Sponsor
	if err := c.ShouldBindJSON(&sp); err != nil {
		response.BadRequest(c, "invalid sponsor payload")
		return
	}
	if sp.Name == "" || sp.LogoURL == "" {
		response.BadRequest(c, "name and logo are required")
		return
	}
	if err := h.repo.CreateSponsor(c.Request.Context(), &sp); err != nil {
		h.logger.Error("create sponsor failed", zap.Error(err))
		response.Error(c, err)
		return
	}
	response.Created(c, sp)
}

// UpdateSponsor handles PUT /sponsors/:id (admin only).
func (h *Handler) UpdateSponsor(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var sp models.Sponsor
	if err := c.ShouldBindJSON(&sp); err != nil {
		response.BadRequest(c, "invalid sponsor payload")
		return
	}
	sp.ID = id
	if err := h.repo.UpdateSponsor(c.Request.Context(), &sp); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, sp)
}

// DeleteSponsor handles DELETE /sponsors/:id (admin only).
func (h *Handler) DeleteSponsor(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.repo.DeleteSponsor(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"deleted": id})
}

// Speakers

// ListSpeakers handles GET /speakers.
func (h *Handler) ListSpeakers(c *gin.Context) {
	h.list(c, "speakers", func() (interface{}, error) {
		return h.repo.ListSpeakers(c.Request.Context())
	})
}

// CreateSpeaker handles POST /speakers (admin only).
func (h *Handler) CreateSpeaker(c *gin.Context) {
	var sp models.Speaker
	if err := c.ShouldBindJSON(&sp); err != nil {
		response.BadRequest(c, "invalid speaker payload")
		return
	}
	if sp.Name == "" {
		response.BadRequest(c, "name is required")
		return
	}
	if err := h.repo.CreateSpeaker(c.Request.Context(), &sp); err != nil {
		h.logger.Error("create speaker failed", zap.Error(err))
		response.Error(c, err)
		return
	}
	response.Created(c, sp)
}

// UpdateSpeaker handles PUT /speakers/:id (admin only).
func (h *Handler) UpdateSpeaker(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var sp models.Speaker
	if err := c.ShouldBindJSON(&sp); err != nil {
		response.BadRequest(c, "invalid speaker payload")
		return
	}
	sp.ID = id
	if err := h.repo.UpdateSpeaker(c.Request.Context(), &sp); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, sp)
}

// DeleteSpeaker handles DELETE /speakers/:id (admin only).
func (h *Handler) DeleteSpeaker(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.repo.DeleteSpeaker(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"deleted": id})
}

// Scoring criteria

// ListCriteria handles GET /scoring-criteria.
func (h *Handler) ListCriteria(c *gin.Context) {
	h.list(c, "criteria", func() (interface{}, error) {
		return h.repo.ListCriteria(c.Request.Context())
	})
}

// CreateCriterion handles POST /scoring-criteria (admin only).
func (h *Handler) CreateCriterion(c *gin.Context) {
	var cr models.ScoringCriterion
	if err := c.ShouldBindJSON(&cr); err != nil {
		response.BadRequest(c, "invalid criterion payload")
		return
	}
	if cr.Name == "" || cr.MaxScore <= 0 {
		response.BadRequest(c, "name and a positive max_score are required")
		return
	}
	if err := h.repo.CreateCriterion(c.Request.Context(), &cr); err != nil {
		h.logger.Error("create criterion failed", zap.Error(err))
		response.Error(c, err)
		return
	}
	response.Created(c, cr)
}

// UpdateCriterion handles PUT /scoring-criteria/:id (admin only).
func (h *Handler) UpdateCriterion(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var cr models.ScoringCriterion
	if err := c.ShouldBindJSON(&cr); err != nil {
		response.BadRequest(c, "invalid criterion payload")
		return
	}
	cr.ID = id
	if err := h.repo.UpdateCriterion(c.Request.Context(), &cr); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, cr)
}

// DeleteCriterion handles DELETE /scoring-criteria/:id (admin only).
func (h *Handler) DeleteCriterion(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.repo.DeleteCriterion(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"deleted": id})
}
