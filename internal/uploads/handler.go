// Package uploads serves profile photo and CV uploads. Files land in S3 under
// the caller's user ID; registration stores the returned public URL.
package uploads

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hackarena/backend/internal/middleware"
	"github.com/hackarena/backend/pkg/response"
	"github.com/hackarena/backend/pkg/storage"
)

// Handler handles upload endpoints.
type Handler struct {
	s3      *storage.S3
	timeout time.Duration
	logger  *zap.Logger
}

// NewHandler creates an uploads handler. uploadTimeoutSec bounds how long a
// single S3 put may take.
func NewHandler(s3 *storage.S3, uploadTimeoutSec int, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	timeout := time.Duration(uploadTimeoutSec) * time.Second
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Handler{s3: s3, timeout: timeout, logger: logger}
}

// Upload handles POST /uploads. Accepts a single multipart "file" field,
// validates type and size, and returns the public object URL.
func (h *Handler) Upload(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uuid.UUID)

	header, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "file field is required")
		return
	}
	if header.Size > storage.MaxUploadSize {
		response.BadRequest(c, "file exceeds the 10MB limit")
		return
	}
	contentType := header.Header.Get("Content-Type")
	if !storage.ValidateUploadType(contentType, header.Filename) {
		response.BadRequest(c, "only jpeg, png, webp, and pdf uploads are allowed")
		return
	}
	if contentType == "" {
		contentType = storage.ContentTypeForFilename(header.Filename)
	}

	file, err := header.Open()
	if err != nil {
		h.logger.Error("open multipart file failed", zap.Error(err))
		response.Internal(c, "could not read upload")
		return
	}
	defer file.Close()

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	key := storage.ProfileKey(userID.String(), header.Filename)
	url, err := h.s3.Upload(ctx, key, contentType, file, header.Size, true)
	if err != nil {
		h.logger.Error("s3 upload failed", zap.Error(err), zap.String("key", key))
		response.Internal(c, "upload failed")
		return
	}

	h.logger.Info("file uploaded", zap.String("key", key), zap.Int64("size", header.Size))
	response.Created(c, gin.H{"url": url, "key": key})
}

// PresignRequest is the body for POST /uploads/presign.
type PresignRequest struct {
	Filename    string `json:"filename" binding:"required"`
	ContentType string `json:"content_type"`
}

// Presign handles POST /uploads/presign: returns a pre-signed PUT URL so the
// browser can upload directly to S3.
func (h *Handler) Presign(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uuid.UUID)

	var req PresignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "filename is required")
		return
	}
	if !storage.ValidateUploadType(req.ContentType, req.Filename) {
		response.BadRequest(c, "only jpeg, png, webp, and pdf uploads are allowed")
		return
	}
	contentType := req.ContentType
	if contentType == "" {
		contentType = storage.ContentTypeForFilename(req.Filename)
	}

	key := storage.ProfileKey(userID.String(), req.Filename)
	url, err := h.s3.PresignUpload(c.Request.Context(), key, contentType)
	if err != nil {
		h.logger.Error("presign failed", zap.Error(err), zap.String("key", key))
		response.Internal(c, "could not presign upload")
		return
	}

	response.OK(c, gin.H{
		"upload_url": url,
		"key":        key,
		"public_url": h.s3.PublicObjectURL(key),
		"expires_in": int(h.s3.PresignExpire().Seconds()),
	})
}
