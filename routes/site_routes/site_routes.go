package site_routes

import (
	"time"

	"github.com/Emdad-Export/emdad-cms-backend/controllers/site/calendar_controller"
	site_category "github.com/Emdad-Export/emdad-cms-backend/controllers/site/category_controller"
	site_gallery "github.com/Emdad-Export/emdad-cms-backend/controllers/site/gallery_controller"
	"github.com/Emdad-Export/emdad-cms-backend/controllers/site/home_controller"
	"github.com/Emdad-Export/emdad-cms-backend/controllers/site/language_controller"
	"github.com/Emdad-Export/emdad-cms-backend/controllers/site/news_controller"
	site_product "github.com/Emdad-Export/emdad-cms-backend/controllers/site/product_controller"
	site_rfq "github.com/Emdad-Export/emdad-cms-backend/controllers/site/rfq_controller"
	"github.com/Emdad-Export/emdad-cms-backend/middleware"
	"github.com/gin-gonic/gin"
)

// SetupSiteRoutes mounts the public bilingual site API (no auth required).
func SetupSiteRoutes(router *gin.RouterGroup) {
	site := router.Group("/site")
	site.Use(middleware.LanguageMiddleware())

	site.GET("/home", home_controller.GetHome)
	site.GET("/calendar", calendar_controller.GetCalendar)
	site.POST("/language", language_controller.SetLanguage)

	// Catalog
	site.GET("/categories", site_category.GetCategories)
	products := site.Group("/products")
	{
		products.GET("", site_product.GetProducts)
		products.GET("/:slug", site_product.GetProductBySlug)
	}

	// Content
	site.GET("/news", news_controller.GetNews)
	site.GET("/news/:slug", news_controller.GetNewsBySlug)
	site.GET("/gallery", site_gallery.GetGallery)

	// RFQ form: 5 submissions per IP per 10 minutes
	site.POST("/rfq", middleware.RateLimiter(5, 10*time.Minute), site_rfq.SubmitQuoteRequest)
}
