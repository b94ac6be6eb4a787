package post_controller

import (
	"context"
	"log"
	"net/http"
	"regexp"
	"strings"

	"github.com/Emdad-Export/emdad-cms-backend/config"
	"github.com/Emdad-Export/emdad-cms-backend/middleware"
	"github.com/Emdad-Export/emdad-cms-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// CreatePost godoc
// @Summary Create news post
// @Description Create a bilingual news article. Publishing stamps published_at once.
// @Tags Admin - News
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param post body models.PostRequest true "Post"
// @Success 201 {object} models.ApiResponse{data=models.Post}
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Failure 409 {object} models.ApiResponse "Slug already used"
// @Router /admin/posts [post]
func CreatePost(c *gin.Context) {
	var req models.PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	req.Slug = strings.TrimSpace(req.Slug)
	if !slugPattern.MatchString(req.Slug) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Slug must be lowercase letters, digits and dashes"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	taken, err := slugTaken(ctx, req.Slug, uuid.Nil)
	if err != nil {
		log.Printf("[post.create] ❌ slug check: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create post"))
		return
	}
	if taken {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "A post with this slug already exists"))
		return
	}

	post := models.Post{
		Slug:       req.Slug,
		TitleEn:    req.TitleEn,
		TitleAr:    req.TitleAr,
		ExcerptEn:  req.ExcerptEn,
		ExcerptAr:  req.ExcerptAr,
		BodyEn:     req.BodyEn,
		BodyAr:     req.BodyAr,
		CoverImage: req.CoverImage,
		Status:     req.Status,
	}
	if err := config.CmsGorm.WithContext(ctx).Create(&post).Error; err != nil {
		log.Printf("[post.create] ❌ %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create post"))
		return
	}

	log.Printf("[post.create] ✅ %s (%s)", post.Slug, post.Status)
	c.Set(middleware.CreatedResourceIDKey, post.ID.String())
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Post created", post))
}

func slugTaken(ctx context.Context, slug string, exceptID uuid.UUID) (bool, error) {
	query := config.CmsGorm.WithContext(ctx).Model(&models.Post{}).Where("slug = ?", slug)
	if exceptID != uuid.Nil {
		query = query.Where("id <> ?", exceptID)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
