package admin_auth_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/Emdad-Export/emdad-cms-backend/config"
	"github.com/Emdad-Export/emdad-cms-backend/middleware"
	"github.com/Emdad-Export/emdad-cms-backend/models"
	"github.com/Emdad-Export/emdad-cms-backend/services"
	"github.com/gin-gonic/gin"
)

// AdminLogin godoc
// @Summary Login as admin
// @Description Authenticate admin with email and password. Returns JWT token and creates session
// @Tags Admin - Auth
// @Accept json
// @Produce json
// @Param loginRequest body models.AdminLoginRequest true "Email and password"
// @Success 200 {object} models.ApiResponse{data=models.AdminLoginResponse}
// @Failure 400 {object} models.ApiResponse "Invalid credentials"
// @Failure 403 {object} models.ApiResponse "Account suspended"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /admin/login [post]
func AdminLogin(c *gin.Context) {
	log.Printf("[admin.login] attempt")

	var req models.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	admin, err := services.GetAdminAuthService().Authenticate(ctx, req.Email, req.Password)
	switch {
	case errors.Is(err, services.ErrInvalidCredentials):
		log.Printf("[admin.login] invalid credentials: %s", req.Email)
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid email or password"))
		return
	case errors.Is(err, services.ErrAdminSuspended):
		log.Printf("[admin.login] suspended account attempt: %s", req.Email)
		c.JSON(http.StatusForbidden, models.ErrorResponse(c, "Account is suspended"))
		return
	case err != nil:
		log.Printf("[admin.login] ❌ %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	token, expiresAt, err := services.GenerateAdminJWT(admin)
	if err != nil {
		log.Printf("[admin.login] failed to generate token: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	if _, err := services.GetAdminSessionService().CreateSession(
		ctx,
		admin.ID,
		token,
		expiresAt,
		c.ClientIP(),
		c.Request.UserAgent(),
	); err != nil {
		log.Printf("[admin.login] failed to create session: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		middleware.AdminTokenCookie,
		token,
		int(models.AdminSessionTTL.Seconds()),
		"/",
		"",
		config.IsProduction(),
		true,
	)

	log.Printf("[admin.login] ✅ success: %s (%s)", admin.Email, admin.ID)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Login successful", models.AdminLoginResponse{
		Admin:     admin.ToResponse(),
		Token:     token,
		ExpiresAt: expiresAt,
	}))
}
