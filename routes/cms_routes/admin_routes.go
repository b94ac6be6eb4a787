package cms_routes

import (
	"time"

	admin_controller "github.com/Emdad-Export/emdad-cms-backend/controllers/cms/admin_controller"
	admin_auth "github.com/Emdad-Export/emdad-cms-backend/controllers/cms/admin_controller/auth"
	"github.com/Emdad-Export/emdad-cms-backend/middleware"
	"github.com/gin-gonic/gin"
)

const loginWindow = 15 * time.Minute

// SetupAdminRoutes sets up all admin routes with appropriate middleware
func SetupAdminRoutes(rg *gin.RouterGroup) {
	// ════════════════════════════════════════════════════════════
	// Base Admin Group
	// ════════════════════════════════════════════════════════════

	admin := rg.Group("/admin")

	// ════════════════════════════════════════════════════════════
	// Public Routes (No Auth Required)
	// ════════════════════════════════════════════════════════════

	admin.POST("/login", middleware.RateLimiter(10, loginWindow), admin_auth.AdminLogin)

	// ════════════════════════════════════════════════════════════
	// Protected Routes (Auth Required)
	// ════════════════════════════════════════════════════════════

	protected := admin.Group("")
	protected.Use(middleware.AdminAuthMiddleware())
	{
		// Auth
		protected.POST("/logout", admin_auth.AdminLogout)
		protected.GET("/me", admin_auth.GetAdminMe)

		// Profile
		protected.PUT("/profile", admin_controller.UpdateAdminProfile)

		// Admins
		protected.GET("/admins", admin_controller.GetAdmins)
		protected.GET("/admins/:id", admin_controller.GetAdmin)

		// Activity logs
		protected.GET("/activity-logs", admin_controller.GetAllAdminActivityLogs)
		protected.GET("/admins/:id/activity", admin_controller.GetSingleAdminActivityLogs)
	}

	// ════════════════════════════════════════════════════════════
	// Super Admin Only Routes
	// ════════════════════════════════════════════════════════════

	superAdmin := admin.Group("")
	superAdmin.Use(
		middleware.AdminAuthMiddleware(),
		middleware.RequireSuperAdminMiddleware(),
	)
	{
		superAdmin.POST("/admins", admin_controller.CreateAdmin)
		superAdmin.PATCH("/admins/:id/status", admin_controller.UpdateAdminStatus)
	}
}
