package product_controller

import (
	"errors"
	"log"
	"net/http"

	catalog_cache "github.com/Emdad-Export/emdad-cms-backend/cache"
	"github.com/Emdad-Export/emdad-cms-backend/config"
	"github.com/Emdad-Export/emdad-cms-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UpdateProduct godoc
// @Summary Update an existing product
// @Description Partially update product fields. Seasonality has its own endpoint.
// @Tags CMS - Products
// @Accept json
// @Produce json
// @Param id path string true "Product ID (UUID)"
// @Param product body models.UpdateProductRequest true "Product update fields"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse
// @Router /admin/products/{id} [patch]
func UpdateProduct(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product ID"))
		return
	}

	var input models.UpdateProductRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	var product models.Product
	if err := config.CmsGorm.WithContext(ctx).
		Select("id").
		First(&product, "id = ?", productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		} else {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		}
		return
	}

	if input.CategoryID != nil {
		if status, msg := checkCategory(ctx, input.CategoryID.String()); status != http.StatusOK {
			c.JSON(status, models.ErrorResponse(c, msg))
			return
		}
	}
	if input.Slug != nil {
		if !slugPattern.MatchString(*input.Slug) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Slug must be lower-case words joined by hyphens"))
			return
		}
		taken, err := slugTaken(ctx, *input.Slug, productID.String())
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
			return
		}
		if taken {
			c.JSON(http.StatusConflict, models.ErrorResponse(c, "A product with this slug already exists"))
			return
		}
	}

	updates := make(map[string]any)
	if input.Slug != nil {
		updates["slug"] = *input.Slug
	}
	if input.NameEn != nil {
		updates["name_en"] = *input.NameEn
	}
	if input.NameAr != nil {
		updates["name_ar"] = *input.NameAr
	}
	if input.DescriptionEn != nil {
		updates["description_en"] = *input.DescriptionEn
	}
	if input.DescriptionAr != nil {
		updates["description_ar"] = *input.DescriptionAr
	}
	if input.Specifications != nil {
		updates["specifications"] = models.SpecificationList(*input.Specifications)
	}
	if input.CategoryID != nil {
		updates["category_id"] = *input.CategoryID
	}
	if input.Status != nil {
		updates["status"] = *input.Status
	}
	if input.IsHomepage != nil {
		updates["is_homepage"] = *input.IsHomepage
	}
	if input.SortOrder != nil {
		updates["sort_order"] = *input.SortOrder
	}
	// only replace media when a primary image is present
	if input.Media != nil && input.Media.Primary.URL != "" {
		updates["media"] = *input.Media
	}

	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "No fields to update"))
		return
	}

	if err := config.CmsGorm.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ?", productID).
		Updates(updates).Error; err != nil {
		log.Printf("[product.update] ❌ %s: %v", productID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update product"))
		return
	}
	catalog_cache.Invalidate()

	if err := config.CmsGorm.WithContext(ctx).
		Preload("Category").
		First(&product, "id = ?", productID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to reload product"))
		return
	}

	log.Printf("[product.update] ✅ %s (%d fields)", product.Slug, len(updates))
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product updated successfully", product))
}
