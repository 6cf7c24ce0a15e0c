package listing

import (
	"github.com/gin-gonic/gin"

	"modelo/internal/domain/auth"
	"modelo/internal/middleware"
)

// RegisterRoutes registers the public feed and the professional-only
// mutation routes.
func RegisterRoutes(public *gin.RouterGroup, protected *gin.RouterGroup, h *Handler) {
	public.GET("/listings", h.List)
	public.GET("/listings/:id", h.GetByID)

	pro := protected.Group("/listings")
	pro.Use(middleware.RequireRole(string(auth.RoleProfessional)))
	{
		pro.POST("", h.Create)
		pro.GET("/mine", h.ListMine)
		pro.PUT("/:id", h.Update)
		pro.POST("/:id/publish", h.Publish)
		pro.POST("/:id/complete", h.Complete)
		pro.POST("/:id/cancel", h.Cancel)
		pro.DELETE("/:id", h.Delete)
	}
}
