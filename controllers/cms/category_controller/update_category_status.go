package category_controller

import (
	"errors"
	"log"
	"net/http"

	catalog_cache "github.com/Emdad-Export/emdad-cms-backend/cache"
	"github.com/Emdad-Export/emdad-cms-backend/config"
	"github.com/Emdad-Export/emdad-cms-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UpdateCategoryStatus godoc
// @Summary Update category status
// @Description Hide (Inactive) or show (Active) a category. Products of an inactive category leave the calendar and listings.
// @Tags CMS - Categories
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Param status body models.UpdateCategoryStatusRequest true "New status"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /admin/categories/{id}/status [patch]
func UpdateCategoryStatus(c *gin.Context) {
	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid category ID"))
		return
	}

	var input models.UpdateCategoryStatusRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
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

	if err := config.CmsGorm.WithContext(ctx).Model(&category).Update("status", input.Status).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update category status"))
		return
	}
	catalog_cache.Invalidate()

	log.Printf("[category.status] %s → %s", category.Key, input.Status)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Category status updated successfully", category))
}
