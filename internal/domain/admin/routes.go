package admin

import "github.com/gin-gonic/gin"

// RegisterLoginRoute registers the open login endpoint
func RegisterLoginRoute(r *gin.RouterGroup, handler *Handler) {
	r.POST("/login", handler.Login)
}

// RegisterRoutes registers routes behind AdminJWTAuth
func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	r.GET("/dashboard", handler.Dashboard)
}
