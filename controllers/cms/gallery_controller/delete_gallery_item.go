package gallery_controller

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/Emdad-Export/emdad-cms-backend/config"
	"github.com/Emdad-Export/emdad-cms-backend/models"
	"github.com/Emdad-Export/emdad-cms-backend/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DeleteGalleryItem godoc
// @Summary Delete gallery item
// @Description Removes the item and its file from media storage
// @Tags Admin - Gallery
// @Produce json
// @Security BearerAuth
// @Param id path string true "Gallery item ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse "Gallery item not found"
// @Router /admin/gallery/{id} [delete]
func DeleteGalleryItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid gallery item ID"))
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
		log.Printf("[gallery.delete] ❌ %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete gallery item"))
		return
	}

	if err := config.CmsGorm.WithContext(ctx).Delete(&item).Error; err != nil {
		log.Printf("[gallery.delete] ❌ %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete gallery item"))
		return
	}

	if cld, err := services.GetCloudinaryService(); err == nil {
		go func(publicID, resourceType string) {
			cleanupCtx, cancel := config.WithCustomTimeout(30 * time.Second)
			defer cancel()
			if err := cld.DeleteAsset(cleanupCtx, publicID, resourceType); err != nil {
				log.Printf("[gallery.delete] ⚠️ failed to remove %s: %v", publicID, err)
			}
		}(item.PublicID, item.Kind)
	}

	log.Printf("[gallery.delete] ✅ %s", id)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Gallery item deleted", nil))
}
