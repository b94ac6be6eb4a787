package post_controller

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/Emdad-Export/emdad-cms-backend/config"
	"github.com/Emdad-Export/emdad-cms-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPostByID godoc
// @Summary Get news post
// @Tags Admin - News
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post ID"
// @Success 200 {object} models.ApiResponse{data=models.Post}
// @Failure 404 {object} models.ApiResponse "Post not found"
// @Router /admin/posts/{id} [get]
func GetPostByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid post ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	post, ok := findPost(ctx, c, id, "[post.get]")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Post fetched", post))
}

// findPost loads a post and writes the error response when it cannot.
func findPost(ctx context.Context, c *gin.Context, id uuid.UUID, tag string) (*models.Post, bool) {
	var post models.Post
	err := config.CmsGorm.WithContext(ctx).First(&post, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Post not found"))
		return nil, false
	}
	if err != nil {
		log.Printf("%s ❌ %v", tag, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch post"))
		return nil, false
	}
	return &post, true
}
