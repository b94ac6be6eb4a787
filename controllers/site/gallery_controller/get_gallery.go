package gallery_controller

import (
	"log"
	"net/http"

	"github.com/Emdad-Export/emdad-cms-backend/config"
	"github.com/Emdad-Export/emdad-cms-backend/middleware"
	"github.com/Emdad-Export/emdad-cms-backend/models"
	"github.com/gin-gonic/gin"
)

// GetGallery godoc
// @Summary Media gallery
// @Tags Site
// @Produce json
// @Param kind query string false "image or video"
// @Param lang query string false "en or ar"
// @Success 200 {object} models.ApiResponse{data=[]models.GalleryItemView}
// @Router /site/gallery [get]
func GetGallery(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	query := config.CmsGorm.WithContext(ctx).Order("sort_order ASC, created_at DESC")
	if kind := c.Query("kind"); kind == models.GalleryKindImage || kind == models.GalleryKindVideo {
		query = query.Where("kind = ?", kind)
	}

	var items []models.GalleryItem
	if err := query.Find(&items).Error; err != nil {
		log.Printf("[site.gallery] ❌ %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch gallery"))
		return
	}

	lang := middleware.RequestLang(c)
	views := make([]models.GalleryItemView, 0, len(items))
	for i := range items {
		views = append(views, items[i].Localize(lang))
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Gallery fetched", views))
}
