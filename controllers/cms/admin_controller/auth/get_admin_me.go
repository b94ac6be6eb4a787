package admin_auth_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/Emdad-Export/emdad-cms-backend/config"
	"github.com/Emdad-Export/emdad-cms-backend/models"
	"github.com/Emdad-Export/emdad-cms-backend/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetAdminMe godoc
// @Summary Get current admin profile
// @Description Returns the signed-in admin. The back office calls it on page load to check the session.
// @Tags Admin - Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=models.AdminResponse}
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 403 {object} models.ApiResponse "Account suspended"
// @Router /admin/me [get]
func GetAdminMe(c *gin.Context) {
	adminID, err := uuid.Parse(c.GetString("adminID"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	admin, err := services.GetAdminAuthService().ActiveAdmin(ctx, adminID)
	switch {
	case errors.Is(err, services.ErrAdminNotFound):
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Admin not found"))
	case errors.Is(err, services.ErrAdminSuspended):
		c.JSON(http.StatusForbidden, models.ErrorResponse(c, "Admin account is suspended"))
	case err != nil:
		log.Printf("[admin.me] ❌ %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load admin"))
	default:
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Admin profile retrieved", admin.ToResponse()))
	}
}
