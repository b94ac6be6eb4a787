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

// UpdateAdminStatus godoc
// @Summary Suspend or restore admin (Super admin only)
// @Description Suspending an admin ends all of their sessions. Admins cannot change their own status.
// @Tags Admin - Management
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Admin ID"
// @Param request body models.UpdateAdminStatusRequest true "New status"
// @Success 200 {object} models.ApiResponse{data=models.AdminResponse}
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Failure 404 {object} models.ApiResponse "Admin not found"
// @Router /admin/admins/{id}/status [patch]
func UpdateAdminStatus(c *gin.Context) {
	targetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid admin ID"))
		return
	}

	var req models.UpdateAdminStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	actorID, _ := uuid.Parse(c.GetString("adminID"))
	if actorID == targetID {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "You cannot change your own status"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	admin, err := findAdmin(ctx, targetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Admin not found"))
		} else {
			log.Printf("[admin.status] database error: %v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		}
		return
	}

	oldStatus := admin.Status
	err = config.CmsGorm.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(admin).Update("status", req.Status).Error; err != nil {
			return err
		}
		if req.Status != models.AdminStatusSuspended {
			return nil
		}
		return tx.Model(&models.AdminSession{}).
			Where("admin_id = ? AND revoked_at IS NULL", admin.ID).
			Update("revoked_at", gorm.Expr("CURRENT_TIMESTAMP")).Error
	})
	if err != nil {
		log.Printf("[admin.status] failed to update: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}
	admin.Status = req.Status

	_ = services.LogActivity(services.LogActivityRequest{
		AdminID:      actorID,
		AdminEmail:   c.GetString("adminEmail"),
		Action:       models.ActionUpdateAdminStatus,
		ResourceType: models.ResourceTypeAdmin,
		ResourceID:   admin.ID.String(),
		ResourceName: admin.Email,
		Changes: services.CreateChanges(
			map[string]any{"status": oldStatus},
			map[string]any{"status": req.Status},
		),
		Status:  models.StatusSuccess,
		Context: c,
	})

	log.Printf("[admin.status] ✅ %s: %s -> %s by %s", admin.Email, oldStatus, req.Status, c.GetString("adminEmail"))
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Admin status updated", admin.ToResponse()))
}
