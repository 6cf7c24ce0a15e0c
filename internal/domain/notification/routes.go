package notification

import "github.com/gin-gonic/gin"

// RegisterRoutes registers all notification routes under the protected group
func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	notifs := r.Group("/notifications")
	{
		notifs.GET("", h.List)
		notifs.POST("/:id/read", h.MarkAsRead)
		notifs.POST("/read-all", h.MarkAllAsRead)
	}
}
