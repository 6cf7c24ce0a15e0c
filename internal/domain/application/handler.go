package application

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"modelo/internal/domain/listing"
	"modelo/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type applyRequest struct {
	ListingID int64  `json:"listing_id" binding:"required"`
	Message   string `json:"message"`
}

type transitionRequest struct {
	Status          string `json:"status" binding:"required"`
	ResponseMessage string `json:"response_message"`
}

// Apply submits a bid on a listing (model only).
func (h *Handler) Apply(c *gin.Context) {
	modelID := c.GetInt64("user_id")
	var req applyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidationFailed, err.Error())
		return
	}

	app, err := h.service.Apply(c.Request.Context(), modelID, req.ListingID, req.Message)
	if err != nil {
		handleApplicationError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, app)
}

// Transition moves an application to a new status.
func (h *Handler) Transition(c *gin.Context) {
	actorID := c.GetInt64("user_id")
	id, ok := applicationID(c)
	if !ok {
		return
	}
	var req transitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidationFailed, err.Error())
		return
	}

	app, err := h.service.Transition(c.Request.Context(), actorID, id, Status(req.Status), req.ResponseMessage)
	if err != nil {
		handleApplicationError(c, err)
		return
	}
	response.Success(c, http.StatusOK, app)
}

// GetByID returns one application (participant only).
func (h *Handler) GetByID(c *gin.Context) {
	actorID := c.GetInt64("user_id")
	id, ok := applicationID(c)
	if !ok {
		return
	}
	app, err := h.service.GetByID(c.Request.Context(), actorID, id)
	if err != nil {
		handleApplicationError(c, err)
		return
	}
	response.Success(c, http.StatusOK, app)
}

// ListMine returns the caller's applications (model side).
func (h *Handler) ListMine(c *gin.Context) {
	modelID := c.GetInt64("user_id")
	apps, err := h.service.ListByModel(c.Request.Context(), modelID)
	if err != nil {
		handleApplicationError(c, err)
		return
	}
	response.Success(c, http.StatusOK, apps)
}

// ListByListing returns applications on a listing (owner only).
func (h *Handler) ListByListing(c *gin.Context) {
	actorID := c.GetInt64("user_id")
	listingID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidationFailed, "invalid listing id")
		return
	}
	apps, err := h.service.ListByListing(c.Request.Context(), actorID, listingID)
	if err != nil {
		handleApplicationError(c, err)
		return
	}
	response.Success(c, http.StatusOK, apps)
}

func applicationID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidationFailed, "invalid application id")
		return 0, false
	}
	return id, true
}

func handleApplicationError(c *gin.Context, err error) {
	switch err {
	case ErrApplicationNotFound, listing.ErrListingNotFound:
		response.Error(c, http.StatusNotFound, response.CodeNotFound, err.Error())
	case ErrForbidden, ErrResponseNotAllowed, ErrOwnListing:
		response.Error(c, http.StatusForbidden, response.CodeForbidden, err.Error())
	case ErrInvalidTransition:
		response.Error(c, http.StatusBadRequest, response.CodeValidationFailed, err.Error())
	case ErrAlreadyApplied:
		response.Error(c, http.StatusConflict, response.CodeConflict, err.Error())
	case ErrListingNotOpen:
		response.Error(c, http.StatusConflict, response.CodeConflict, err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, response.CodeInternal, "internal error")
	}
}
