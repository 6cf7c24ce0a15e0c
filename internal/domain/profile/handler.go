package profile

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"modelo/internal/domain/auth"
	"modelo/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type modelProfileRequest struct {
	Gender     string `json:"gender"`
	BirthYear  int    `json:"birth_year"`
	HeightCm   int    `json:"height_cm"`
	WeightKg   int    `json:"weight_kg"`
	HairColor  string `json:"hair_color"`
	HairLength string `json:"hair_length"`
	EyeColor   string `json:"eye_color"`
	Experience string `json:"experience"`
	Bio        string `json:"bio"`
	City       string `json:"city"`
}

type professionalProfileRequest struct {
	Profession   string   `json:"profession" binding:"required"`
	Specialties  []string `json:"specialties"`
	BusinessName string   `json:"business_name"`
	Bio          string   `json:"bio"`
	City         string   `json:"city"`
}

// GetMe returns the caller's public profile.
func (h *Handler) GetMe(c *gin.Context) {
	userID := c.GetInt64("user_id")
	p, err := h.service.GetPublicProfile(c.Request.Context(), userID)
	if err != nil {
		handleProfileError(c, err)
		return
	}
	response.Success(c, http.StatusOK, p)
}

// UpsertModelProfile creates or updates the caller's model profile.
func (h *Handler) UpsertModelProfile(c *gin.Context) {
	userID := c.GetInt64("user_id")
	var req modelProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidationFailed, err.Error())
		return
	}

	p, err := h.service.UpsertModelProfile(c.Request.Context(), userID, &ModelProfile{
		Gender:     Gender(req.Gender),
		BirthYear:  req.BirthYear,
		HeightCm:   req.HeightCm,
		WeightKg:   req.WeightKg,
		HairColor:  req.HairColor,
		HairLength: req.HairLength,
		EyeColor:   req.EyeColor,
		Experience: ExperienceLevel(req.Experience),
		Bio:        req.Bio,
		City:       req.City,
	})
	if err != nil {
		handleProfileError(c, err)
		return
	}
	response.Success(c, http.StatusOK, p)
}

// UpsertProfessionalProfile creates or updates the caller's professional profile.
func (h *Handler) UpsertProfessionalProfile(c *gin.Context) {
	userID := c.GetInt64("user_id")
	var req professionalProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidationFailed, err.Error())
		return
	}

	specialties, err := specialtiesJSON(req.Specialties)
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidationFailed, "invalid specialties")
		return
	}

	p, err := h.service.UpsertProfessionalProfile(c.Request.Context(), userID, &ProfessionalProfile{
		Profession:   Profession(req.Profession),
		Specialties:  specialties,
		BusinessName: req.BusinessName,
		Bio:          req.Bio,
		City:         req.City,
	})
	if err != nil {
		handleProfileError(c, err)
		return
	}
	response.Success(c, http.StatusOK, p)
}

// GetPublicProfile returns any user's public card.
func (h *Handler) GetPublicProfile(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidationFailed, "invalid user id")
		return
	}
	p, err := h.service.GetPublicProfile(c.Request.Context(), userID)
	if err != nil {
		handleProfileError(c, err)
		return
	}
	response.Success(c, http.StatusOK, p)
}

func specialtiesJSON(items []string) (datatypes.JSON, error) {
	if len(items) == 0 {
		return nil, nil
	}
	b, err := json.Marshal(items)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(b), nil
}

func handleProfileError(c *gin.Context, err error) {
	switch err {
	case ErrProfileNotFound, auth.ErrUserNotFound:
		response.Error(c, http.StatusNotFound, response.CodeNotFound, err.Error())
	case ErrWrongRole:
		response.Error(c, http.StatusForbidden, response.CodeForbidden, err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, response.CodeInternal, "internal error")
	}
}
