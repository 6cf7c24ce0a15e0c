package chat

import "github.com/gin-gonic/gin"

// RegisterRoutes registers all chat routes under the protected group
func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	convs := r.Group("/conversations")
	{
		convs.POST("", h.OpenConversation)
		convs.GET("", h.ListConversations)
		convs.GET("/unread", h.UnreadTotal)

		// WebSocket
		convs.GET("/ws", h.WebSocket)

		// Per-thread operations
		convs.GET("/:id", h.GetConversation)
		convs.GET("/:id/messages", h.GetMessages)
		convs.POST("/:id/messages", h.SendMessage)
		convs.POST("/:id/read", h.MarkAllRead)
	}
}
