package auth

import "github.com/gin-gonic/gin"

// RegisterRoutes registers public auth routes and the protected /me route.
func RegisterRoutes(public *gin.RouterGroup, protected *gin.RouterGroup, h *Handler) {
	a := public.Group("/auth")
	{
		a.POST("/register", h.Register)
		a.POST("/login", h.Login)
	}
	protected.GET("/auth/me", h.Me)
}
