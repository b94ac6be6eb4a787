package admin_auth_controller

import (
	"log"
	"net/http"

	"github.com/Emdad-Export/emdad-cms-backend/config"
	"github.com/Emdad-Export/emdad-cms-backend/middleware"
	"github.com/Emdad-Export/emdad-cms-backend/models"
	"github.com/Emdad-Export/emdad-cms-backend/services"
	"github.com/gin-gonic/gin"
)

// AdminLogout godoc
// @Summary Logout admin
// @Description Logout the current admin and revoke the session
// @Tags Admin - Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse
// @Router /admin/logout [post]
func AdminLogout(c *gin.Context) {
	if token := middleware.AdminToken(c); token != "" {
		ctx, cancel := config.WithTimeout()
		defer cancel()

		// logout always succeeds for the browser
		if err := services.GetAdminSessionService().Revoke(ctx, token); err != nil {
			log.Printf("[admin.logout] failed to revoke session: %v", err)
		}
		log.Printf("[admin.logout] admin logging out: %s", c.GetString("adminEmail"))
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		middleware.AdminTokenCookie,
		"",
		-1,
		"/",
		"",
		config.IsProduction(),
		true,
	)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Logout successful", nil))
}
