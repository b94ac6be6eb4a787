package category_controller

import (
	"net/http"

	"github.com/Emdad-Export/emdad-cms-backend/config"
	"github.com/Emdad-Export/emdad-cms-backend/models"
	"github.com/gin-gonic/gin"
)

// CategoryStats summarizes categories for the dashboard.
type CategoryStats struct {
	TotalCategories    int64   `json:"total_categories"`
	ActiveCategories   int64   `json:"active_categories"`
	InactiveCategories int64   `json:"inactive_categories"`
	HomepageCategories int64   `json:"homepage_categories"`
	EmptyCategories    int64   `json:"empty_categories"`
	ActivePercentage   float64 `json:"active_percentage"`
}

// GetCategoryStats godoc
// @Summary Get category statistics
// @Description Totals by status, homepage eligibility and empty categories
// @Tags CMS - Categories
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/categories/stats [get]
func GetCategoryStats(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	var stats CategoryStats
	db := config.CmsGorm.WithContext(ctx)

	if err := db.Model(&models.Category{}).Count(&stats.TotalCategories).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch category stats"))
		return
	}
	if err := db.Model(&models.Category{}).
		Where("status = ?", models.CategoryStatusActive).
		Count(&stats.ActiveCategories).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch category stats"))
		return
	}
	if err := db.Model(&models.Category{}).
		Where("show_on_homepage = ?", true).
		Count(&stats.HomepageCategories).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch category stats"))
		return
	}
	if err := db.Model(&models.Category{}).
		Where("NOT EXISTS (SELECT 1 FROM products WHERE products.category_id = categories.id)").
		Count(&stats.EmptyCategories).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch category stats"))
		return
	}

	stats.InactiveCategories = stats.TotalCategories - stats.ActiveCategories
	if stats.TotalCategories > 0 {
		stats.ActivePercentage = float64(stats.ActiveCategories) / float64(stats.TotalCategories) * 100
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Category stats fetched successfully", stats))
}
