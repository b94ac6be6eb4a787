package cms_routes

import (
	"github.com/Emdad-Export/emdad-cms-backend/controllers/cms/category_controller"
	"github.com/Emdad-Export/emdad-cms-backend/middleware"
	"github.com/gin-gonic/gin"
)

func SetupCategoryRoutes(rg *gin.RouterGroup) {
	category := rg.Group("/categories")
	category.Use(middleware.AdminAuthMiddleware())
	category.Use(middleware.ActivityLoggingMiddleware())
	{
		// Read
		category.GET("", category_controller.GetCategories)
		category.GET("/stats", category_controller.GetCategoryStats)
		category.GET("/:id", category_controller.GetCategoryByID)

		// Create
		category.POST("", category_controller.CreateCategory)

		// Update
		category.PATCH("/:id", category_controller.UpdateCategory)
		category.PATCH("/:id/status", category_controller.UpdateCategoryStatus)

		// Delete
		category.DELETE("/:id", category_controller.DeleteCategory)
		category.POST("/:id/delete-with-options", category_controller.DeleteCategoryWithOptions)
	}
}
