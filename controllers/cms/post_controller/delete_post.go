package post_controller

import (
	"log"
	"net/http"

	"github.com/Emdad-Export/emdad-cms-backend/config"
	"github.com/Emdad-Export/emdad-cms-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DeletePost godoc
// @Summary Delete news post
// @Tags Admin - News
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse "Post not found"
// @Router /admin/posts/{id} [delete]
func DeletePost(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid post ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	result := config.CmsGorm.WithContext(ctx).Delete(&models.Post{}, "id = ?", id)
	if result.Error != nil {
		log.Printf("[post.delete] ❌ %v", result.Error)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete post"))
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Post not found"))
		return
	}

	log.Printf("[post.delete] ✅ %s", id)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Post deleted", nil))
}
