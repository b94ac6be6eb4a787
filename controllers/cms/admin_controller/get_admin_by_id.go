package admin_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/Emdad-Export/emdad-cms-backend/config"
	"github.com/Emdad-Export/emdad-cms-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAdmin godoc
// @Summary Get admin details
// @Description Get details of a specific admin
// @Tags Admin - Management
// @Produce json
// @Security BearerAuth
// @Param id path string true "Admin ID"
// @Success 200 {object} models.ApiResponse{data=models.AdminResponse}
// @Failure 404 {object} models.ApiResponse "Admin not found"
// @Router /admin/admins/{id} [get]
func GetAdmin(c *gin.Context) {
	adminID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid admin ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	admin, err := findAdmin(ctx, adminID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Admin not found"))
		} else {
			log.Printf("[admin.get] database error: %v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		}
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Admin retrieved", admin.ToResponse()))
}
