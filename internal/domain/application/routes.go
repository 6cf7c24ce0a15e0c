package application

import (
	"github.com/gin-gonic/gin"

	"modelo/internal/domain/auth"
	"modelo/internal/middleware"
)

// RegisterRoutes registers application routes under the protected group.
func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	apps := r.Group("/applications")
	{
		apps.POST("", middleware.RequireRole(string(auth.RoleModel)), h.Apply)
		apps.GET("/mine", h.ListMine)
		apps.GET("/:id", h.GetByID)
		apps.POST("/:id/transition", h.Transition)
	}
	r.GET("/listings/:id/applications", h.ListByListing)
}
