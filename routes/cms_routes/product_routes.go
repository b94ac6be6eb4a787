package cms_routes

import (
	"github.com/Emdad-Export/emdad-cms-backend/controllers/cms/product_controller"
	"github.com/Emdad-Export/emdad-cms-backend/middleware"
	"github.com/gin-gonic/gin"
)

func SetupProductRoutes(rg *gin.RouterGroup) {
	product := rg.Group("/products")
	product.Use(middleware.AdminAuthMiddleware())
	product.Use(middleware.ActivityLoggingMiddleware())
	{
		// Read
		product.GET("", product_controller.GetProducts)
		product.GET("/stats", product_controller.GetProductStats)
		product.GET("/:id", product_controller.GetProductByID)
		product.GET("/:id/seasonality", product_controller.GetProductSeasonality)

		// Create
		product.POST("", product_controller.CreateProduct)
		product.POST("/images", product_controller.UploadProductImages)

		// Update
		product.PATCH("/:id", product_controller.UpdateProduct)
		product.PUT("/:id/seasonality", product_controller.UpdateProductSeasonality)

		// Delete
		product.DELETE("/:id", product_controller.DeleteProduct)

		// Utility (cleanup - still needs auth)
		product.POST("/cleanup-folder", product_controller.CleanupOrphanedFolder)
	}
}
