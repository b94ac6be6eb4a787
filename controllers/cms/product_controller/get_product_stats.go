package product_controller

import (
	"net/http"

	"github.com/Emdad-Export/emdad-cms-backend/config"
	"github.com/Emdad-Export/emdad-cms-backend/models"
	"github.com/gin-gonic/gin"
)

// ProductStats summarizes the catalog for the back office dashboard.
type ProductStats struct {
	TotalProducts       int64 `json:"total_products"`
	ActiveProducts      int64 `json:"active_products"`
	DraftProducts       int64 `json:"draft_products"`
	HomepageProducts    int64 `json:"homepage_products"`
	WithoutSeasonality  int64 `json:"without_seasonality"`
	CategoriesWithItems int64 `json:"categories_with_items"`
}

// GetProductStats godoc
// @Summary Get product statistics
// @Description Counts by status, homepage flag and missing seasonality
// @Tags CMS - Products
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/products/stats [get]
func GetProductStats(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	var stats ProductStats
	counts := []struct {
		dest  *int64
		where string
		args  []any
	}{
		{&stats.TotalProducts, "", nil},
		{&stats.ActiveProducts, "status = ?", []any{models.ProductStatusActive}},
		{&stats.DraftProducts, "status = ?", []any{models.ProductStatusDraft}},
		{&stats.HomepageProducts, "is_homepage = ?", []any{true}},
		{&stats.WithoutSeasonality, "seasonality IS NULL OR seasonality = ''", nil},
	}
	for _, q := range counts {
		query := config.CmsGorm.WithContext(ctx).Model(&models.Product{})
		if q.where != "" {
			query = query.Where(q.where, q.args...)
		}
		if err := query.Count(q.dest).Error; err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to compute product stats"))
			return
		}
	}

	if err := config.CmsGorm.WithContext(ctx).
		Model(&models.Product{}).
		Distinct("category_id").
		Count(&stats.CategoriesWithItems).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to compute product stats"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product stats fetched successfully", stats))
}
