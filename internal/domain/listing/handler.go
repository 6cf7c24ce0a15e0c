package listing

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"modelo/internal/domain/profile"
	"modelo/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type listingRequest struct {
	Title              string    `json:"title" binding:"required"`
	Description        string    `json:"description"`
	Category           string    `json:"category" binding:"required"`
	Status             string    `json:"status"`
	ScheduledAt        time.Time `json:"scheduled_at" binding:"required"`
	DurationMinutes    int       `json:"duration_minutes" binding:"required"`
	Latitude           float64   `json:"latitude"`
	Longitude          float64   `json:"longitude"`
	Address            string    `json:"address"`
	City               string    `json:"city"`
	CompensationType   string    `json:"compensation_type" binding:"required"`
	CompensationAmount *float64  `json:"compensation_amount"`
	RequiredGender     *string   `json:"required_gender"`
	RequiredHeightMin  *int      `json:"required_height_min"`
	RequiredHeightMax  *int      `json:"required_height_max"`
	RequiredHairColor  *string   `json:"required_hair_color"`
	RequiredHairLength *string   `json:"required_hair_length"`
	RequiredExperience *string   `json:"required_experience"`
	ImageIDs           []string  `json:"image_ids"`
}

func (req *listingRequest) toListing() *Listing {
	l := &Listing{
		Title:              req.Title,
		Description:        req.Description,
		Category:           Category(req.Category),
		Status:             Status(req.Status),
		ScheduledAt:        req.ScheduledAt,
		DurationMinutes:    req.DurationMinutes,
		Latitude:           req.Latitude,
		Longitude:          req.Longitude,
		Address:            req.Address,
		City:               req.City,
		CompensationType:   CompensationType(req.CompensationType),
		CompensationAmount: req.CompensationAmount,
		RequiredHeightMin:  req.RequiredHeightMin,
		RequiredHeightMax:  req.RequiredHeightMax,
		RequiredHairColor:  req.RequiredHairColor,
		RequiredHairLength: req.RequiredHairLength,
	}
	if req.RequiredGender != nil {
		g := profile.Gender(*req.RequiredGender)
		l.RequiredGender = &g
	}
	if req.RequiredExperience != nil {
		e := profile.ExperienceLevel(*req.RequiredExperience)
		l.RequiredExperience = &e
	}
	if len(req.ImageIDs) > 0 {
		if b, err := json.Marshal(req.ImageIDs); err == nil {
			l.ImageIDs = datatypes.JSON(b)
		}
	}
	return l
}

// Create posts a new prestation (professional only).
func (h *Handler) Create(c *gin.Context) {
	professionalID := c.GetInt64("user_id")
	var req listingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidationFailed, err.Error())
		return
	}

	l, err := h.service.Create(c.Request.Context(), professionalID, req.toListing())
	if err != nil {
		handleListingError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, l)
}

// Update replaces the mutable fields of a listing (owner only).
func (h *Handler) Update(c *gin.Context) {
	professionalID := c.GetInt64("user_id")
	id, ok := listingID(c)
	if !ok {
		return
	}
	var req listingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidationFailed, err.Error())
		return
	}

	in := req.toListing()
	l, err := h.service.Update(c.Request.Context(), professionalID, id, func(l *Listing) {
		status := l.Status // status changes go through dedicated endpoints
		images := l.ImageIDs
		if len(in.ImageIDs) > 0 {
			images = in.ImageIDs
		}
		*l = *in
		l.ID = id
		l.ProfessionalID = professionalID
		l.Status = status
		l.ImageIDs = images
	})
	if err != nil {
		handleListingError(c, err)
		return
	}
	response.Success(c, http.StatusOK, l)
}

// Publish, Complete and Cancel are thin wrappers over the status changes.
func (h *Handler) Publish(c *gin.Context)  { h.setStatus(c, h.service.Publish) }
func (h *Handler) Complete(c *gin.Context) { h.setStatus(c, h.service.Complete) }
func (h *Handler) Cancel(c *gin.Context)   { h.setStatus(c, h.service.Cancel) }

func (h *Handler) setStatus(c *gin.Context, op func(ctx context.Context, professionalID, id int64) (*Listing, error)) {
	professionalID := c.GetInt64("user_id")
	id, ok := listingID(c)
	if !ok {
		return
	}
	l, err := op(c.Request.Context(), professionalID, id)
	if err != nil {
		handleListingError(c, err)
		return
	}
	response.Success(c, http.StatusOK, l)
}

// Delete hard-deletes a listing (owner only).
func (h *Handler) Delete(c *gin.Context) {
	professionalID := c.GetInt64("user_id")
	id, ok := listingID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), professionalID, id); err != nil {
		handleListingError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

// GetByID returns one listing.
func (h *Handler) GetByID(c *gin.Context) {
	id, ok := listingID(c)
	if !ok {
		return
	}
	l, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		handleListingError(c, err)
		return
	}
	response.Success(c, http.StatusOK, l)
}

// List returns the public feed with filters.
func (h *Handler) List(c *gin.Context) {
	f := ListFilters{
		Category: Category(c.Query("category")),
		City:     c.Query("city"),
	}
	if v, err := strconv.Atoi(c.Query("limit")); err == nil {
		f.Limit = v
	}
	if v, err := strconv.Atoi(c.Query("offset")); err == nil {
		f.Offset = v
	}
	if v, err := time.Parse(time.RFC3339, c.Query("date_from")); err == nil {
		f.DateFrom = v
	}
	if v, err := time.Parse(time.RFC3339, c.Query("date_to")); err == nil {
		f.DateTo = v
	}

	listings, err := h.service.List(c.Request.Context(), f)
	if err != nil {
		handleListingError(c, err)
		return
	}
	response.Success(c, http.StatusOK, listings)
}

// ListMine returns the caller's own listings, drafts included.
func (h *Handler) ListMine(c *gin.Context) {
	professionalID := c.GetInt64("user_id")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	listings, err := h.service.ListMine(c.Request.Context(), professionalID, limit, offset)
	if err != nil {
		handleListingError(c, err)
		return
	}
	response.Success(c, http.StatusOK, listings)
}

func listingID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidationFailed, "invalid listing id")
		return 0, false
	}
	return id, true
}

func handleListingError(c *gin.Context, err error) {
	switch err {
	case ErrListingNotFound:
		response.Error(c, http.StatusNotFound, response.CodeNotFound, err.Error())
	case ErrNotOwner:
		response.Error(c, http.StatusForbidden, response.CodeForbidden, err.Error())
	case ErrValidation:
		response.Error(c, http.StatusBadRequest, response.CodeValidationFailed, err.Error())
	case ErrListingFinalized:
		response.Error(c, http.StatusConflict, response.CodeConflict, err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, response.CodeInternal, "internal error")
	}
}
