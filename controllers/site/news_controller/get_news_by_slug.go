package news_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/Emdad-Export/emdad-cms-backend/config"
	"github.com/Emdad-Export/emdad-cms-backend/middleware"
	"github.com/Emdad-Export/emdad-cms-backend/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetNewsBySlug godoc
// @Summary News article
// @Tags Site
// @Produce json
// @Param slug path string true "Article slug"
// @Param lang query string false "en or ar"
// @Success 200 {object} models.ApiResponse{data=models.PostView}
// @Failure 404 {object} models.ApiResponse
// @Router /site/news/{slug} [get]
func GetNewsBySlug(c *gin.Context) {
	lang := middleware.RequestLang(c)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var post models.Post
	err := config.CmsGorm.WithContext(ctx).
		Where("slug = ? AND status = ?", c.Param("slug"), models.PostStatusPublished).
		First(&post).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, lang.T("post_not_found")))
		return
	}
	if err != nil {
		log.Printf("[site.news] ❌ %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch article"))
		return
	}

	view := post.Localize(lang, true)
	c.JSON(http.StatusOK, models.SuccessResponse(c, view.Title, view))
}
