package product_controller

import (
	"log"
	"net/http"
	"regexp"
	"time"

	"github.com/Emdad-Export/emdad-cms-backend/config"
	"github.com/Emdad-Export/emdad-cms-backend/models"
	"github.com/Emdad-Export/emdad-cms-backend/services"
	"github.com/gin-gonic/gin"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// UploadProductImages godoc
// @Summary Upload product images
// @Description Uploads primaryImage and otherImages to emdad/products/{slug} and returns the media block for create/update
// @Tags CMS - Products
// @Accept multipart/form-data
// @Produce json
// @Param slug formData string true "Product slug (folder name)"
// @Param primaryImage formData file false "Primary image"
// @Param otherImages formData file false "Other images"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 503 {object} models.ApiResponse
// @Router /admin/products/images [post]
func UploadProductImages(c *gin.Context) {
	slug := c.PostForm("slug")
	if !slugPattern.MatchString(slug) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "A valid product slug is required"))
		return
	}

	cld, err := services.GetCloudinaryService()
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, err.Error()))
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid multipart form"))
		return
	}

	ctx, cancel := config.WithCustomTimeout(60 * time.Second)
	defer cancel()

	var media models.ProductMedia
	if primary := form.File["primaryImage"]; len(primary) > 0 {
		file, err := primary[0].Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Could not read primary image"))
			return
		}
		defer file.Close()

		asset, err := cld.UploadImage(ctx, file, primary[0].Filename, services.MediaFolder("products", slug, "primary"))
		if err != nil {
			log.Printf("[product.images] ❌ primary upload failed: %v", err)
			c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to upload primary image"))
			return
		}
		media.Primary = models.MediaURL{URL: asset.URL, PublicID: asset.PublicID}
	}

	if others := form.File["otherImages"]; len(others) > 0 {
		assets, err := cld.UploadMultipleImages(ctx, others, services.MediaFolder("products", slug, "other"))
		if err != nil {
			log.Printf("[product.images] ❌ gallery upload failed: %v", err)
			c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to upload images"))
			return
		}
		for i, asset := range assets {
			order := i + 1
			media.Other = append(media.Other, models.MediaURL{URL: asset.URL, PublicID: asset.PublicID, Order: &order})
		}
	}

	if media.Primary.URL == "" && len(media.Other) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "No images were provided"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Images uploaded successfully", gin.H{
		"folder": services.MediaFolder("products", slug),
		"media":  media,
	}))
}
