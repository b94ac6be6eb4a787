package gallery_controller

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/Emdad-Export/emdad-cms-backend/config"
	"github.com/Emdad-Export/emdad-cms-backend/middleware"
	"github.com/Emdad-Export/emdad-cms-backend/models"
	"github.com/Emdad-Export/emdad-cms-backend/services"
	"github.com/gin-gonic/gin"
)

// UploadGalleryItem godoc
// @Summary Upload gallery item
// @Description Uploads a photo or clip to emdad/gallery and adds it to the site gallery
// @Tags Admin - Gallery
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Image or video"
// @Param kind formData string false "image (default) or video"
// @Param title_en formData string false "English caption"
// @Param title_ar formData string false "Arabic caption"
// @Param sort_order formData int false "Position in the gallery"
// @Success 201 {object} models.ApiResponse{data=models.GalleryItem}
// @Failure 400 {object} models.ApiResponse "Invalid upload"
// @Failure 503 {object} models.ApiResponse "Media storage not configured"
// @Router /admin/gallery [post]
func UploadGalleryItem(c *gin.Context) {
	kind := c.DefaultPostForm("kind", models.GalleryKindImage)
	if kind != models.GalleryKindImage && kind != models.GalleryKindVideo {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "kind must be image or video"))
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "A file is required"))
		return
	}

	cld, err := services.GetCloudinaryService()
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, err.Error()))
		return
	}

	file, err := header.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Could not read file"))
		return
	}
	defer file.Close()

	ctx, cancel := config.WithCustomTimeout(2 * time.Minute)
	defer cancel()

	asset, err := cld.Upload(ctx, file, header.Filename, services.MediaFolder("gallery"), kind)
	if err != nil {
		log.Printf("[gallery.upload] ❌ %v", err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to upload file"))
		return
	}

	sortOrder, _ := strconv.Atoi(c.PostForm("sort_order"))
	item := models.GalleryItem{
		TitleEn:   c.PostForm("title_en"),
		TitleAr:   c.PostForm("title_ar"),
		URL:       asset.URL,
		PublicID:  asset.PublicID,
		Kind:      kind,
		SortOrder: sortOrder,
	}
	if err := config.CmsGorm.WithContext(ctx).Create(&item).Error; err != nil {
		log.Printf("[gallery.upload] ❌ save: %v", err)
		// the upload is orphaned without a row
		go func(publicID, resourceType string) {
			cleanupCtx, cancel := config.WithCustomTimeout(30 * time.Second)
			defer cancel()
			if err := cld.DeleteAsset(cleanupCtx, publicID, resourceType); err != nil {
				log.Printf("[gallery.upload] ⚠️ failed to remove orphan %s: %v", publicID, err)
			}
		}(asset.PublicID, kind)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to save gallery item"))
		return
	}

	log.Printf("[gallery.upload] ✅ %s %s", item.Kind, item.PublicID)
	c.Set(middleware.CreatedResourceIDKey, item.ID.String())
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Gallery item uploaded", item))
}
