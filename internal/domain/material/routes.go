package material

import "github.com/gin-gonic/gin"

// RegisterPublicRoutes registers public material routes
func RegisterPublicRoutes(r *gin.RouterGroup, handler *Handler) {
	r.GET("/sections/:slug", handler.SectionPage)
	r.GET("/materials/:id", handler.GetMaterial)
}

// RegisterAdminRoutes registers admin material routes
func RegisterAdminRoutes(r *gin.RouterGroup, handler *Handler) {
	materials := r.Group("/materials")
	{
		materials.GET("", handler.ListMaterials)
		materials.POST("", handler.CreateMaterial)
		materials.GET("/:id", handler.GetMaterial)
		materials.PUT("/:id", handler.UpdateMaterial)
		materials.DELETE("/:id", handler.DeleteMaterial)
	}
}
