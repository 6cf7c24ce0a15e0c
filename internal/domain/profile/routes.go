package profile

import "github.com/gin-gonic/gin"

// RegisterRoutes registers profile routes under the protected group.
func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	p := r.Group("/profiles")
	{
		p.GET("/me", h.GetMe)
		p.PUT("/me/model", h.UpsertModelProfile)
		p.PUT("/me/professional", h.UpsertProfessionalProfile)
		p.GET("/:id", h.GetPublicProfile)
	}
}
