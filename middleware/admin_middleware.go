package middleware

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/Emdad-Export/emdad-cms-backend/config"
	"github.com/Emdad-Export/emdad-cms-backend/models"
	"github.com/Emdad-Export/emdad-cms-backend/services"
	"github.com/gin-gonic/gin"
)

// AdminTokenCookie carries the admin JWT for the back office.
const AdminTokenCookie = "admin_token"

// AdminToken reads the admin JWT from the cookie, then the Authorization header.
func AdminToken(c *gin.Context) string {
	if token, err := c.Cookie(AdminTokenCookie); err == nil && token != "" {
		return token
	}
	parts := strings.Split(c.GetHeader("Authorization"), " ")
	if len(parts) == 2 && parts[0] == "Bearer" {
		return parts[1]
	}
	return ""
}

// AdminAuthMiddleware validates JWT token and checks admin authorization
func AdminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := AdminToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized - no token provided"))
			c.Abort()
			return
		}

		claims, err := services.VerifyAdminJWT(token)
		if err != nil {
			log.Printf("[auth] invalid token: %v", err)
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized - invalid token"))
			c.Abort()
			return
		}

		ctx, cancel := config.WithTimeout()
		defer cancel()

		if _, err := services.GetAdminSessionService().Touch(ctx, token); err != nil {
			if errors.Is(err, services.ErrSessionInvalid) {
				c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized - session ended"))
				c.Abort()
				return
			}
			// store hiccups should not lock admins out
			log.Printf("[auth] failed to update session activity: %v", err)
		}

		var admin models.Admin
		if err := config.CmsGorm.WithContext(ctx).
			Select("id", "role", "status").
			Where("id = ?", claims.AdminID).
			First(&admin).Error; err != nil {
			log.Printf("[auth] failed to fetch admin role: %v", err)
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized - admin not found"))
			c.Abort()
			return
		}
		if admin.Status == models.AdminStatusSuspended {
			c.JSON(http.StatusForbidden, models.ErrorResponse(c, "Forbidden - account suspended"))
			c.Abort()
			return
		}

		c.Set("adminID", claims.AdminID)
		c.Set("adminEmail", claims.Email)
		c.Set("adminRole", admin.Role)

		c.Next()
	}
}

// RequireSuperAdminMiddleware checks if the admin is a super admin
func RequireSuperAdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		adminRole, exists := c.Get("adminRole")
		if !exists {
			c.JSON(http.StatusForbidden, models.ErrorResponse(c, "Forbidden - role not found"))
			c.Abort()
			return
		}

		if adminRole != models.AdminRoleSuperAdmin {
			log.Printf("[auth] non-super-admin attempted restricted action")
			c.JSON(http.StatusForbidden, models.ErrorResponse(c, "Forbidden - super admin access required"))
			c.Abort()
			return
		}

		c.Next()
	}
}
