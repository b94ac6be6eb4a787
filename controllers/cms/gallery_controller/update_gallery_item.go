package gallery_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/Emdad-Export/emdad-cms-backend/config"
	"github.com/Emdad-Export/emdad-cms-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UpdateGalleryItem godoc
// @Summary Update gallery captions or order
// @Tags Admin - Gallery
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Gallery item ID"
// @Param request body models.UpdateGalleryItemRequest true "Fields to change"
// @Success 200 {object} models.ApiResponse{data=models.GalleryItem}
// @Failure 404 {object} models.ApiResponse "Gallery item not found"
// @Router /admin/gallery/{id} [patch]
func UpdateGalleryItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid gallery item ID"))
		return
	}

	var req models.UpdateGalleryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	updates := map[string]any{}
	if req.TitleEn != nil {
		updates["title_en"] = *req.TitleEn
	}
	if req.TitleAr != nil {
		updates["title_ar"] = *req.TitleAr
	}
	if req.SortOrder != nil {
		updates["sort_order"] = *req.SortOrder
	}
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "No fields to update"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var item models.GalleryItem
	if err := config.CmsGorm.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Gallery item not found"))
			return
		}
		log.Printf("[gallery.update] ❌ %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update gallery item"))
		return
	}

	if err := config.CmsGorm.WithContext(ctx).Model(&item).Updates(updates).Error; err != nil {
		log.Printf("[gallery.update] ❌ %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update gallery item"))
		return
	}

	if err := config.CmsGorm.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		log.Printf("[gallery.update] ❌ reload: %v", err)
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Gallery item updated", item))
}
