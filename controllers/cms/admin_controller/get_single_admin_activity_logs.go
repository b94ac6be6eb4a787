package admin_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/Emdad-Export/emdad-cms-backend/config"
	"github.com/Emdad-Export/emdad-cms-backend/models"
	"github.com/Emdad-Export/emdad-cms-backend/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetSingleAdminActivityLogs godoc
// @Summary Get admin activity logs
// @Description Get activity logs for a specific admin with pagination
// @Tags Admin - Management
// @Produce json
// @Security BearerAuth
// @Param id path string true "Admin ID"
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Items per page (default: 20, max: 100)"
// @Success 200 {object} models.ApiResponse{data=[]models.ActivityLogResponse}
// @Failure 404 {object} models.ApiResponse "Admin not found"
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Router /admin/admins/{id}/activity [get]
func GetSingleAdminActivityLogs(c *gin.Context) {
	adminID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid admin ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if _, err := findAdmin(ctx, adminID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Admin not found"))
		} else {
			log.Printf("[admin.activity] database error: %v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		}
		return
	}

	page, limit := pageParams(c)
	respondWithActivity(c, "[admin.activity]", services.ActivityLogFilter{
		AdminID: &adminID,
		Page:    page,
		Limit:   limit,
	})
}
