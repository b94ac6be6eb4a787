package post_controller

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/Emdad-Export/emdad-cms-backend/config"
	"github.com/Emdad-Export/emdad-cms-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UpdatePost godoc
// @Summary Update news post
// @Description Partial update; only provided fields change
// @Tags Admin - News
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post ID"
// @Param post body models.UpdatePostRequest true "Fields to change"
// @Success 200 {object} models.ApiResponse{data=models.Post}
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Failure 404 {object} models.ApiResponse "Post not found"
// @Failure 409 {object} models.ApiResponse "Slug already used"
// @Router /admin/posts/{id} [patch]
func UpdatePost(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid post ID"))
		return
	}

	var req models.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	post, ok := findPost(ctx, c, id, "[post.update]")
	if !ok {
		return
	}

	updates := map[string]any{}
	if req.Slug != nil {
		slug := strings.TrimSpace(*req.Slug)
		if !slugPattern.MatchString(slug) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Slug must be lowercase letters, digits and dashes"))
			return
		}
		taken, err := slugTaken(ctx, slug, id)
		if err != nil {
			log.Printf("[post.update] ❌ slug check: %v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update post"))
			return
		}
		if taken {
			c.JSON(http.StatusConflict, models.ErrorResponse(c, "A post with this slug already exists"))
			return
		}
		updates["slug"] = slug
	}
	setIf(updates, "title_en", req.TitleEn)
	setIf(updates, "title_ar", req.TitleAr)
	setIf(updates, "excerpt_en", req.ExcerptEn)
	setIf(updates, "excerpt_ar", req.ExcerptAr)
	setIf(updates, "body_en", req.BodyEn)
	setIf(updates, "body_ar", req.BodyAr)
	setIf(updates, "cover_image", req.CoverImage)
	if req.Status != nil {
		updates["status"] = *req.Status
		if *req.Status == models.PostStatusPublished && post.PublishedAt == nil {
			updates["published_at"] = time.Now()
		}
	}

	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "No fields to update"))
		return
	}

	if err := config.CmsGorm.WithContext(ctx).Model(post).Updates(updates).Error; err != nil {
		log.Printf("[post.update] ❌ %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update post"))
		return
	}

	post, ok = findPost(ctx, c, id, "[post.update]")
	if !ok {
		return
	}
	log.Printf("[post.update] ✅ %s", post.Slug)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Post updated", post))
}

func setIf(updates map[string]any, column string, value *string) {
	if value != nil {
		updates[column] = *value
	}
}
