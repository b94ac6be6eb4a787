package cms_routes

import (
	"github.com/Emdad-Export/emdad-cms-backend/controllers/cms/gallery_controller"
	"github.com/Emdad-Export/emdad-cms-backend/controllers/cms/post_controller"
	"github.com/Emdad-Export/emdad-cms-backend/controllers/cms/rfq_controller"
	"github.com/Emdad-Export/emdad-cms-backend/middleware"
	"github.com/gin-gonic/gin"
)

// SetupRFQRoutes is the sales desk inbox.
func SetupRFQRoutes(rg *gin.RouterGroup) {
	rfq := rg.Group("/rfqs")
	rfq.Use(middleware.AdminAuthMiddleware())
	rfq.Use(middleware.ActivityLoggingMiddleware())
	{
		rfq.GET("", rfq_controller.GetQuoteRequests)
		rfq.GET("/:id", rfq_controller.GetQuoteRequestByID)
		rfq.GET("/:id/pdf", rfq_controller.DownloadQuoteRequestPDF)
		rfq.PATCH("/:id/status", rfq_controller.UpdateQuoteRequestStatus)
		rfq.POST("/:id/resend", rfq_controller.ResendQuoteNotification)
	}
}

func SetupPostRoutes(rg *gin.RouterGroup) {
	post := rg.Group("/posts")
	post.Use(middleware.AdminAuthMiddleware())
	post.Use(middleware.ActivityLoggingMiddleware())
	{
		post.GET("", post_controller.GetPosts)
		post.GET("/:id", post_controller.GetPostByID)
		post.POST("", post_controller.CreatePost)
		post.PATCH("/:id", post_controller.UpdatePost)
		post.DELETE("/:id", post_controller.DeletePost)
	}
}

func SetupGalleryRoutes(rg *gin.RouterGroup) {
	gallery := rg.Group("/gallery")
	gallery.Use(middleware.AdminAuthMiddleware())
	gallery.Use(middleware.ActivityLoggingMiddleware())
	{
		gallery.GET("", gallery_controller.GetGalleryItems)
		gallery.POST("", gallery_controller.UploadGalleryItem)
		gallery.PATCH("/:id", gallery_controller.UpdateGalleryItem)
		gallery.DELETE("/:id", gallery_controller.DeleteGalleryItem)
	}
}
