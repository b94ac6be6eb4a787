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

// UpdateAdminProfile godoc
// @Summary Update admin profile
// @Description Update the current admin's name or password. Changing the password requires the current one.
// @Tags Admin - Management
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param updateRequest body models.UpdateAdminProfileRequest true "Profile update"
// @Success 200 {object} models.ApiResponse{data=models.AdminResponse}
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Router /admin/profile [put]
func UpdateAdminProfile(c *gin.Context) {
	adminID, err := uuid.Parse(c.GetString("adminID"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	var req models.UpdateAdminProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	admin, err := findAdmin(ctx, adminID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Admin not found"))
		} else {
			log.Printf("[admin.update-profile] database error: %v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		}
		return
	}

	authService := services.GetAdminAuthService()
	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.NewPassword != nil {
		if !authService.VerifyPassword(admin.PasswordHash, req.CurrentPassword) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Current password is incorrect"))
			return
		}
		hash, err := authService.HashPassword(*req.NewPassword)
		if err != nil {
			log.Printf("[admin.update-profile] failed to hash password: %v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
			return
		}
		updates["password_hash"] = hash
	}

	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "No fields to update"))
		return
	}

	if err := config.CmsGorm.WithContext(ctx).
		Model(admin).
		Updates(updates).Error; err != nil {
		log.Printf("[admin.update-profile] failed to update: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}
	if name, ok := updates["name"].(string); ok {
		admin.Name = name
	}

	log.Printf("[admin.update-profile] success: %s", adminID)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Profile updated", admin.ToResponse()))
}
