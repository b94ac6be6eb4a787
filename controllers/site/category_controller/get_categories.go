package category_controller

import (
	"log"
	"net/http"

	"github.com/Emdad-Export/emdad-cms-backend/config"
	"github.com/Emdad-Export/emdad-cms-backend/middleware"
	"github.com/Emdad-Export/emdad-cms-backend/models"
	"github.com/Emdad-Export/emdad-cms-backend/services"
	"github.com/gin-gonic/gin"
)

// GetCategories godoc
// @Summary List categories
// @Description Active categories in display order with their active product counts
// @Tags Site
// @Produce json
// @Param lang query string false "en or ar"
// @Success 200 {object} models.ApiResponse{data=[]models.CategoryView}
// @Failure 500 {object} models.ApiResponse
// @Router /site/categories [get]
func GetCategories(c *gin.Context) {
	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	views, err := services.CategoryViews(ctx, middleware.RequestLang(c))
	if err != nil {
		log.Printf("[site.categories] ❌ %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch categories"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Categories fetched", views))
}
