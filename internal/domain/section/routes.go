package section

import "github.com/gin-gonic/gin"

// RegisterPublicRoutes registers public section routes
func RegisterPublicRoutes(r *gin.RouterGroup, handler *Handler) {
	r.GET("/sections", handler.ListSections)
}

// RegisterAdminRoutes registers admin section routes
func RegisterAdminRoutes(r *gin.RouterGroup, handler *Handler) {
	sections := r.Group("/sections")
	{
		sections.GET("", handler.ListSections)
		sections.POST("", handler.CreateSection)
		sections.GET("/:id", handler.GetSection)
		sections.PUT("/:id", handler.UpdateSection)
		sections.DELETE("/:id", handler.DeleteSection)
	}
}
