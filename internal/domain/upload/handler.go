package upload

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"modelo/internal/pkg/response"
)

// Handler handles HTTP requests for file uploads.
// Any authenticated user can upload. Ownership is tracked by user_id.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Upload accepts a multipart file and returns its ID and public URL.
func (h *Handler) Upload(c *gin.Context) {
	userID := c.GetInt64("user_id")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidationFailed, "no file provided")
		return
	}

	u, err := h.service.Upload(c.Request.Context(), userID, fileHeader)
	if err != nil {
		handleUploadError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, u)
}

// GetByID returns upload metadata.
func (h *Handler) GetByID(c *gin.Context) {
	u, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleUploadError(c, err)
		return
	}
	response.Success(c, http.StatusOK, u)
}

// Delete removes the file and its record.
func (h *Handler) Delete(c *gin.Context) {
	userID := c.GetInt64("user_id")

	if err := h.service.Delete(c.Request.Context(), c.Param("id"), userID); err != nil {
		handleUploadError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"status": "deleted"})
}

// ListMy returns the caller's uploads.
func (h *Handler) ListMy(c *gin.Context) {
	userID := c.GetInt64("user_id")

	uploads, err := h.service.ListByUser(c.Request.Context(), userID)
	if err != nil {
		handleUploadError(c, err)
		return
	}
	response.Success(c, http.StatusOK, uploads)
}

func handleUploadError(c *gin.Context, err error) {
	switch err {
	case ErrUploadNotFound:
		response.Error(c, http.StatusNotFound, response.CodeNotFound, err.Error())
	case ErrNotOwner:
		response.Error(c, http.StatusForbidden, response.CodeForbidden, err.Error())
	case ErrEmptyFile, ErrInvalidMimeType:
		response.Error(c, http.StatusBadRequest, response.CodeValidationFailed, err.Error())
	case ErrFileTooLarge:
		response.Error(c, http.StatusRequestEntityTooLarge, response.CodeValidationFailed, err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, response.CodeInternal, "internal error")
	}
}
