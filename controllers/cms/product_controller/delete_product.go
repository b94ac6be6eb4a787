package product_controller

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	catalog_cache "github.com/Emdad-Export/emdad-cms-backend/cache"
	"github.com/Emdad-Export/emdad-cms-backend/config"
	"github.com/Emdad-Export/emdad-cms-backend/models"
	"github.com/Emdad-Export/emdad-cms-backend/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DeleteProduct godoc
// @Summary Delete a product
// @Description Delete a product by ID and its Cloudinary folder
// @Tags CMS - Products
// @Produce json
// @Param id path string true "Product ID (UUID)"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /admin/products/{id} [delete]
func DeleteProduct(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var product models.Product
	if err := config.CmsGorm.WithContext(ctx).
		Select("id", "slug", "media").
		First(&product, "id = ?", productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		} else {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		}
		return
	}

	hasImages := product.Media.Primary.URL != "" || len(product.Media.Other) > 0

	if err := config.CmsGorm.WithContext(ctx).Delete(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete product"))
		return
	}
	catalog_cache.Invalidate()

	if cld, err := services.GetCloudinaryService(); hasImages && err == nil {
		go func(folderPath string) {
			deleteCtx, deleteCancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer deleteCancel()

			if err := cld.DeleteFolder(deleteCtx, folderPath); err != nil {
				log.Printf("[product.delete] ⚠️  failed to delete Cloudinary folder %s: %v", folderPath, err)
			}
		}(services.MediaFolder("products", product.Slug))
	}

	log.Printf("[product.delete] ✅ %s", product.Slug)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product deleted successfully", map[string]string{
		"id": productID.String(),
	}))
}
