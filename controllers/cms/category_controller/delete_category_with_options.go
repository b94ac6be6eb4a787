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

var errInvalidTarget = errors.New("invalid target category")

// DeleteCategoryWithOptions godoc
// @Summary Delete a category with options
// @Description Delete a category and either cascade delete its products or move them to another category
// @Tags CMS - Categories
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Param body body models.DeleteCategoryOptions true "Delete options"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/categories/{id}/delete-with-options [post]
func DeleteCategoryWithOptions(c *gin.Context) {
	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid category ID"))
		return
	}

	var input models.DeleteCategoryOptions
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var category models.Category
	if err := config.CmsGorm.WithContext(ctx).First(&category, "id = ?", categoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Category not found"))
		} else {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		}
		return
	}

	var affected int64
	err = config.CmsGorm.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		switch input.Mode {
		case "cascade":
			result := tx.Where("category_id = ?", categoryID).Delete(&models.Product{})
			if result.Error != nil {
				return result.Error
			}
			affected = result.RowsAffected

		case "reassign":
			if input.TargetCategory == nil || *input.TargetCategory == categoryID {
				return errInvalidTarget
			}
			var target models.Category
			if err := tx.Select("id").First(&target, "id = ?", *input.TargetCategory).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return errInvalidTarget
				}
				return err
			}
			result := tx.Model(&models.Product{}).
				Where("category_id = ?", categoryID).
				Update("category_id", target.ID)
			if result.Error != nil {
				return result.Error
			}
			affected = result.RowsAffected
		}

		return tx.Delete(&category).Error
	})
	if errors.Is(err, errInvalidTarget) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "A different, existing target_category_id is required"))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete category"))
		return
	}
	catalog_cache.Invalidate()

	message := "Category and its products deleted successfully"
	if input.Mode == "reassign" {
		message = "Category deleted and products reassigned successfully"
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, message, gin.H{
		"id":                categoryID,
		"products_affected": affected,
	}))
}
