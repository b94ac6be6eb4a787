package news_controller

import (
	"log"
	"net/http"
	"strconv"

	"github.com/Emdad-Export/emdad-cms-backend/config"
	"github.com/Emdad-Export/emdad-cms-backend/middleware"
	"github.com/Emdad-Export/emdad-cms-backend/models"
	"github.com/gin-gonic/gin"
)

// GetNews godoc
// @Summary List news
// @Description Published articles, newest first
// @Tags Site
// @Produce json
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Items per page (default: 10, max: 50)"
// @Param lang query string false "en or ar"
// @Success 200 {object} models.ApiResponse{data=[]models.PostView}
// @Router /site/news [get]
func GetNews(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 10
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	published := config.CmsGorm.WithContext(ctx).
		Model(&models.Post{}).
		Where("status = ?", models.PostStatusPublished)

	var total int64
	if err := published.Count(&total).Error; err != nil {
		log.Printf("[site.news] ❌ count: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch news"))
		return
	}

	var posts []models.Post
	if err := config.CmsGorm.WithContext(ctx).
		Where("status = ?", models.PostStatusPublished).
		Order("published_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&posts).Error; err != nil {
		log.Printf("[site.news] ❌ %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch news"))
		return
	}

	lang := middleware.RequestLang(c)
	views := make([]models.PostView, 0, len(posts))
	for i := range posts {
		views = append(views, posts[i].Localize(lang, false))
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "News fetched", views, models.NewPagination(page, limit, total)))
}
