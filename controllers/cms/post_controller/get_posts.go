package post_controller

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/Emdad-Export/emdad-cms-backend/config"
	"github.com/Emdad-Export/emdad-cms-backend/models"
	"github.com/gin-gonic/gin"
)

// GetPosts godoc
// @Summary List news posts
// @Tags Admin - News
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Items per page (default: 20, max: 100)"
// @Param status query string false "Published or Draft"
// @Param q query string false "Search title or slug"
// @Success 200 {object} models.ApiResponse{data=[]models.Post}
// @Router /admin/posts [get]
func GetPosts(c *gin.Context) {
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

	query := config.CmsGorm.WithContext(ctx).Model(&models.Post{})
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		like := "%" + strings.ToLower(q) + "%"
		query = query.Where("LOWER(title_en) LIKE ? OR title_ar LIKE ? OR slug LIKE ?", like, "%"+q+"%", like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		log.Printf("[post.list] ❌ count: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch posts"))
		return
	}

	var posts []models.Post
	if err := query.
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&posts).Error; err != nil {
		log.Printf("[post.list] ❌ %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch posts"))
		return
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Posts fetched", posts, models.NewPagination(page, limit, total)))
}
