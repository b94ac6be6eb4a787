// @title Emdad CMS API
// @version 1.0
// @description Emdad export site and CMS backend API
// @host localhost:8081
// @BasePath /api/v1
// @schemes http
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/Emdad-Export/emdad-cms-backend/config"
	_ "github.com/Emdad-Export/emdad-cms-backend/docs"
	"github.com/Emdad-Export/emdad-cms-backend/middleware"
	"github.com/Emdad-Export/emdad-cms-backend/routes/cms_routes"
	"github.com/Emdad-Export/emdad-cms-backend/routes/site_routes"
	"github.com/Emdad-Export/emdad-cms-backend/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	// Connect to DB
	config.InitDB()
	if err := config.Migrate(config.CmsGorm); err != nil {
		log.Fatalf("❌ Migration failed: %v", err)
	}
	defer config.CloseDB()

	// Redis connection
	config.ConnectRedis()
	defer config.CloseRedis()

	// Cloudinary stays disabled when credentials are missing
	if err := services.InitCloudinary(
		config.GetEnv("CLOUDINARY_CLOUD_NAME", ""),
		config.GetEnv("CLOUDINARY_API_KEY", ""),
		config.GetEnv("CLOUDINARY_API_SECRET", ""),
	); err != nil {
		log.Fatalf("Failed to initialize Cloudinary: %v", err)
	}

	// ✅ Initialize JWT Service for Admin Auth
	jwtSecret := config.GetEnv("JWT_SECRET", "")
	if jwtSecret == "" {
		log.Fatal("❌ JWT_SECRET environment variable not set")
	}
	if err := services.InitJWTService(jwtSecret); err != nil {
		log.Fatalf("Failed to initialize JWT service: %v", err)
	}
	log.Println("✅ JWT Service initialized")

	go cleanupSessions(time.Hour)

	corsCfg := cors.Config{
		AllowOrigins:     config.AllowedOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-CSRF-Token", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
		ExposeHeaders:    []string{"Content-Disposition", "Content-Length"},
	}

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	router.Use(cors.New(corsCfg))
	router.Use(middleware.MetricsMiddleware())

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/healthz", healthz)

	api := router.Group("/api/v1")

	// Admin auth and account management (at /api/v1/admin prefix)
	cms_routes.SetupAdminRoutes(api)
	log.Println("✅ Admin routes registered")

	// CMS content (at /api/v1/admin prefix)
	adminGroup := api.Group("/admin")
	adminGroup.Use(middleware.RateLimiter(100, time.Minute))
	cms_routes.SetupCategoryRoutes(adminGroup)
	cms_routes.SetupProductRoutes(adminGroup)
	cms_routes.SetupRFQRoutes(adminGroup)
	cms_routes.SetupPostRoutes(adminGroup)
	cms_routes.SetupGalleryRoutes(adminGroup)

	// Public site (no global rate limiter)
	site_routes.SetupSiteRoutes(api)

	// Swagger docs
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	port := config.GetEnv("PORT", "8081")
	fmt.Printf("🚀 Server is running on http://localhost:%s\n", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("❌ Server stopped: %v", err)
	}
}

func healthz(c *gin.Context) {
	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	status := gin.H{"database": "ok", "redis": "ok"}
	code := http.StatusOK
	if err := config.PingDB(ctx); err != nil {
		status["database"] = err.Error()
		code = http.StatusServiceUnavailable
	}
	if err := config.PingRedis(ctx); err != nil {
		status["redis"] = err.Error()
	}
	c.JSON(code, status)
}

func cleanupSessions(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for range ticker.C {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		removed, err := services.GetAdminSessionService().CleanupExpiredSessions(ctx)
		cancel()
		if err != nil {
			log.Printf("[sessions] ❌ cleanup failed: %v", err)
			continue
		}
		if removed > 0 {
			log.Printf("[sessions] ✅ removed %d expired sessions", removed)
		}
	}
}
