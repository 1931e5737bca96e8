package auth

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hackarena/backend/internal/models"
	"github.com/hackarena/backend/internal/users"
	"github.com/hackarena/backend/pkg/queue"
	"github.com/hackarena/backend/pkg/response"
	"github.com/hackarena/backend/pkg/utils"
)

// RegisterRequest is the body for POST /users/register.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"required"`
	Surname  string `json:"surname"`
}

// LoginRequest is the body for POST /users/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterResponse is the signup response.
type RegisterResponse struct {
	UID   string `json:"uid"`
	Email string `json:"email"`
	Token string `json:"token"`
}

// TokenResponse is the login response.
type TokenResponse struct {
	Token string            `json:"token"`
	User  models.UserPublic `json:"user"`
}

// Handler handles account signup and login.
type Handler struct {
	repo   users.Repository
	colabs users.CollaboratorRepository
	jwt    *JWTService
	queue  *queue.Queue
	logger *zap.Logger
}

// NewHandler creates an auth handler. q may be nil.
func NewHandler(repo users.Repository, colabs users.CollaboratorRepository, jwt *JWTService, q *queue.Queue, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{repo: repo, colabs: colabs, jwt: jwt, queue: q, logger: logger}
}

// Register handles POST /users/register. The role is resolved once here from
// the collaborator allow-list and stored on the record; participant otherwise.
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "email, password and name are required")
		return
	}

	existing, err := h.repo.GetByEmail(c.Request.Context(), req.Email)
	if err != nil {
		h.logger.Error("lookup email failed", zap.Error(err))
		response.Error(c, err)
		return
	}
	if existing != nil {
		response.BadRequest(c, "email already registered")
		return
	}

	role := models.RoleParticipant
	if assigned, err := h.colabs.GetRoleByEmail(c.Request.Context(), req.Email); err != nil {
		h.logger.Error("collaborator lookup failed", zap.Error(err))
		response.Error(c, err)
		return
	} else if assigned != "" {
		role = assigned
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		response.Internal(c, "failed to hash password")
		return
	}

	user := &models.User{
		Email:    req.Email,
		Password: hash,
		Name:     req.Name,
		Surname:  req.Surname,
		Role:     role,
	}
	if err := h.repo.Create(c.Request.Context(), user); err != nil {
		h.logger.Error("create user failed", zap.Error(err))
		response.Error(c, err)
		return
	}

	token, err := h.jwt.Generate(user.ID, user.Email, string(user.Role))
	if err != nil {
		response.Internal(c, "failed to generate token")
		return
	}

	if h.queue != nil {
		if err := h.queue.EnqueueEmail(c.Request.Context(), queue.EmailPayload{
			EmailType:      queue.EmailTypeWelcome,
			RecipientEmail: user.Email,
			RecipientName:  user.Name,
		}); err != nil {
			h.logger.Warn("enqueue welcome email failed", zap.Error(err))
		}
	}

	response.Created(c, RegisterResponse{
		UID:   user.ID.String(),
		Email: user.Email,
		Token: token,
	})
}

// Login handles POST /users/login.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "email and password are required")
		return
	}

	user, err := h.repo.GetByEmail(c.Request.Context(), req.Email)
	if err != nil {
		h.logger.Error("lookup email failed", zap.Error(err))
		response.Error(c, err)
		return
	}
	if user == nil || !utils.CheckPassword(req.Password, user.Password) {
		response.Unauthorized(c, "invalid email or password")
		return
	}

	token, err := h.jwt.Generate(user.ID, user.Email, string(user.Role))
	if err != nil {
		response.Internal(c, "failed to generate token")
		return
	}

	response.OK(c, TokenResponse{Token: token, User: user.ToPublic()})
}
