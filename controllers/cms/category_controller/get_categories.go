package category_controller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/Emdad-Export/emdad-cms-backend/config"
	"github.com/Emdad-Export/emdad-cms-backend/models"
	"github.com/gin-gonic/gin"
)

// GetCategories godoc
// @Summary Get categories
// @Description Paginated categories in display order with their product counts
// @Tags CMS - Categories
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Param status query string false "Filter by status" Enums(Active, Inactive)
// @Param q query string false "Search key or name"
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/categories [get]
func GetCategories(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	query := config.CmsGorm.WithContext(ctx).Model(&models.Category{})
	if status := c.Query("status"); status == models.CategoryStatusActive || status == models.CategoryStatusInactive {
		query = query.Where("status = ?", status)
	}
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		like := "%" + strings.ToLower(q) + "%"
		query = query.Where("LOWER(slug) LIKE ? OR LOWER(name_en) LIKE ? OR name_ar LIKE ?", like, like, "%"+q+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to count categories"))
		return
	}

	categories := make([]models.Category, 0)
	if err := query.
		Order("sort_order ASC, slug ASC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&categories).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch categories"))
		return
	}

	counts, err := productCounts(c, categories)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to count products"))
		return
	}

	result := make([]models.CategoryWithProducts, 0, len(categories))
	for _, category := range categories {
		result = append(result, models.CategoryWithProducts{Category: category, Products: counts[category.ID.String()]})
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Categories fetched successfully", result, models.NewPagination(page, limit, total)))
}

func productCounts(c *gin.Context, categories []models.Category) (map[string]int, error) {
	counts := make(map[string]int, len(categories))
	if len(categories) == 0 {
		return counts, nil
	}

	ids := make([]string, 0, len(categories))
	for _, category := range categories {
		ids = append(ids, category.ID.String())
	}

	var rows []struct {
		CategoryID string
		Total      int
	}
	if err := config.CmsGorm.WithContext(c.Request.Context()).
		Model(&models.Product{}).
		Select("category_id, COUNT(*) AS total").
		Where("category_id IN ?", ids).
		Group("category_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	for _, r := range rows {
		counts[r.CategoryID] = r.Total
	}
	return counts, nil
}
