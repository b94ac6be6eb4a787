package category_controller

import (
	"errors"
	"net/http"

	catalog_cache "github.com/Emdad-Export/emdad-cms-backend/cache"
	"github.com/Emdad-Export/emdad-cms-backend/config"
	"github.com/Emdad-Export/emdad-cms-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UpdateCategory godoc
// @Summary Update a category
// @Description Partially update names, descriptions, order, key and homepage eligibility
// @Tags CMS - Categories
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Param category body models.UpdateCategoryRequest true "Update category"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse
// @Router /admin/categories/{id} [patch]
func UpdateCategory(c *gin.Context) {
	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid category ID"))
		return
	}

	var input models.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var existing models.Category
	if err := config.CmsGorm.WithContext(ctx).First(&existing, "id = ?", categoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Category not found"))
		} else {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		}
		return
	}

	updates := buildUpdates(input, existing)
	if len(updates) == 0 {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "No changes detected", existing))
		return
	}

	if key, ok := updates["slug"].(string); ok {
		if !keyPattern.MatchString(key) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Key must be lower-case words joined by hyphens"))
			return
		}
		var count int64
		if err := config.CmsGorm.WithContext(ctx).
			Model(&models.Category{}).
			Where("slug = ? AND id <> ?", key, categoryID).
			Count(&count).Error; err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
			return
		}
		if count > 0 {
			c.JSON(http.StatusConflict, models.ErrorResponse(c, "A category with this key already exists"))
			return
		}
	}

	if err := config.CmsGorm.WithContext(ctx).Model(&existing).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update category"))
		return
	}
	catalog_cache.Invalidate()

	if err := config.CmsGorm.WithContext(ctx).First(&existing, "id = ?", categoryID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to reload category"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Category updated successfully", existing))
}

// buildUpdates keeps only the fields that actually change.
func buildUpdates(input models.UpdateCategoryRequest, existing models.Category) map[string]any {
	updates := make(map[string]any)
	if input.Key != nil && *input.Key != existing.Key {
		updates["slug"] = *input.Key
	}
	if input.NameEn != nil && *input.NameEn != existing.NameEn {
		updates["name_en"] = *input.NameEn
	}
	if input.NameAr != nil && *input.NameAr != existing.NameAr {
		updates["name_ar"] = *input.NameAr
	}
	if input.DescriptionEn != nil && *input.DescriptionEn != existing.DescriptionEn {
		updates["description_en"] = *input.DescriptionEn
	}
	if input.DescriptionAr != nil && *input.DescriptionAr != existing.DescriptionAr {
		updates["description_ar"] = *input.DescriptionAr
	}
	if input.SortOrder != nil && *input.SortOrder != existing.SortOrder {
		updates["sort_order"] = *input.SortOrder
	}
	if input.Status != nil && *input.Status != existing.Status {
		updates["status"] = *input.Status
	}
	if input.ShowOnHomepage != nil && *input.ShowOnHomepage != existing.ShowOnHomepage {
		updates["show_on_homepage"] = *input.ShowOnHomepage
	}
	return updates
}
