package gallery_controller

import (
	"log"
	"net/http"
	"strconv"

	"github.com/Emdad-Export/emdad-cms-backend/config"
	"github.com/Emdad-Export/emdad-cms-backend/models"
	"github.com/gin-gonic/gin"
)

// GetGalleryItems godoc
// @Summary List gallery items
// @Tags Admin - Gallery
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Items per page (default: 50, max: 100)"
// @Param kind query string false "image or video"
// @Success 200 {object} models.ApiResponse{data=[]models.GalleryItem}
// @Router /admin/gallery [get]
func GetGalleryItems(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 50
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	query := config.CmsGorm.WithContext(ctx).Model(&models.GalleryItem{})
	if kind := c.Query("kind"); kind != "" {
		query = query.Where("kind = ?", kind)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		log.Printf("[gallery.list] ❌ count: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch gallery"))
		return
	}

	var items []models.GalleryItem
	if err := query.
		Order("sort_order ASC, created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&items).Error; err != nil {
		log.Printf("[gallery.list] ❌ %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch gallery"))
		return
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Gallery fetched", items, models.NewPagination(page, limit, total)))
}
