package admin_controller

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/Emdad-Export/emdad-cms-backend/config"
	"github.com/Emdad-Export/emdad-cms-backend/models"
	"github.com/Emdad-Export/emdad-cms-backend/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CreateAdmin godoc
// @Summary Create admin (Super admin only)
// @Description Add a back office account for the sales, content or export desk
// @Tags Admin - Management
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CreateAdminRequest true "Account details"
// @Success 201 {object} models.ApiResponse{data=models.AdminResponse}
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Failure 409 {object} models.ApiResponse "Admin already exists"
// @Router /admin/admins [post]
func CreateAdmin(c *gin.Context) {
	var req models.CreateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	admin, err := services.GetAdminAuthService().CreateAdmin(ctx, req.Email, req.Name, req.Password, req.Role)
	switch {
	case errors.Is(err, services.ErrAdminExists):
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "An admin with this email already exists"))
		return
	case errors.Is(err, services.ErrWeakPassword):
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	case err != nil:
		log.Printf("[admin.create] ❌ %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	actorID, _ := uuid.Parse(c.GetString("adminID"))
	_ = services.LogActivity(services.LogActivityRequest{
		AdminID:      actorID,
		AdminEmail:   c.GetString("adminEmail"),
		Action:       models.ActionCreateAdmin,
		ResourceType: models.ResourceTypeAdmin,
		ResourceID:   admin.ID.String(),
		ResourceName: admin.Email,
		Changes:      services.CreateChanges(nil, map[string]any{"email": admin.Email, "role": admin.Role}),
		Status:       models.StatusSuccess,
		Context:      c,
	})

	log.Printf("[admin.create] ✅ %s (%s) created by %s", admin.Email, admin.Role, c.GetString("adminEmail"))
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Admin created", admin.ToResponse()))
}

func findAdmin(ctx context.Context, id uuid.UUID) (*models.Admin, error) {
	var admin models.Admin
	if err := config.CmsGorm.WithContext(ctx).
		Where("id = ?", id).
		First(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}
