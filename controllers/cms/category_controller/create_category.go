package category_controller

import (
	"log"
	"net/http"
	"regexp"

	catalog_cache "github.com/Emdad-Export/emdad-cms-backend/cache"
	"github.com/Emdad-Export/emdad-cms-backend/config"
	"github.com/Emdad-Export/emdad-cms-backend/middleware"
	"github.com/Emdad-Export/emdad-cms-backend/models"
	"github.com/gin-gonic/gin"
)

var keyPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// CreateCategory godoc
// @Summary Create a category
// @Description Create a product category. The key is the calendar filter identifier.
// @Tags CMS - Categories
// @Accept json
// @Produce json
// @Param category body models.CategoryRequest true "Category details"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse
// @Router /admin/categories [post]
func CreateCategory(c *gin.Context) {
	var req models.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}
	if !keyPattern.MatchString(req.Key) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Key must be lower-case words joined by hyphens"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var count int64
	if err := config.CmsGorm.WithContext(ctx).
		Model(&models.Category{}).
		Where("slug = ?", req.Key).
		Count(&count).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}
	if count > 0 {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "A category with this key already exists"))
		return
	}

	status := req.Status
	if status == "" {
		status = models.CategoryStatusActive
	}
	category := models.Category{
		Key:            req.Key,
		NameEn:         req.NameEn,
		NameAr:         req.NameAr,
		DescriptionEn:  req.DescriptionEn,
		DescriptionAr:  req.DescriptionAr,
		SortOrder:      req.SortOrder,
		Status:         status,
		ShowOnHomepage: req.ShowOnHomepage,
	}
	if err := config.CmsGorm.WithContext(ctx).Create(&category).Error; err != nil {
		log.Printf("[category.create] ❌ %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create category"))
		return
	}
	catalog_cache.Invalidate()

	c.Set(middleware.CreatedResourceIDKey, category.ID.String())
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Category created successfully", category))
}
