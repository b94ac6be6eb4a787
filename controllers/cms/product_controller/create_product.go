package product_controller

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	catalog_cache "github.com/Emdad-Export/emdad-cms-backend/cache"
	"github.com/Emdad-Export/emdad-cms-backend/config"
	"github.com/Emdad-Export/emdad-cms-backend/middleware"
	"github.com/Emdad-Export/emdad-cms-backend/models"
	"github.com/Emdad-Export/emdad-cms-backend/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreateProduct godoc
// @Summary Create a new product
// @Description Create a product with Cloudinary URLs from the image upload endpoint. Seasonality starts empty.
// @Tags CMS - Products
// @Accept json
// @Produce json
// @Param product body models.ProductRequest true "Product details"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/products [post]
func CreateProduct(c *gin.Context) {
	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	var req models.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[product.create] invalid request: %v", err)
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	if !slugPattern.MatchString(req.Slug) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Slug must be lower-case words joined by hyphens"))
		return
	}
	if status, msg := checkCategory(ctx, req.CategoryID.String()); status != http.StatusOK {
		c.JSON(status, models.ErrorResponse(c, msg))
		return
	}
	if taken, err := slugTaken(ctx, req.Slug, ""); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	} else if taken {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "A product with this slug already exists"))
		return
	}

	product := models.Product{
		Slug:           req.Slug,
		NameEn:         req.NameEn,
		NameAr:         req.NameAr,
		DescriptionEn:  req.DescriptionEn,
		DescriptionAr:  req.DescriptionAr,
		Specifications: models.SpecificationList(req.Specifications),
		CategoryID:     req.CategoryID,
		Status:         req.Status,
		IsHomepage:     req.IsHomepage,
		SortOrder:      req.SortOrder,
		Media:          req.Media,
	}

	if err := config.CmsGorm.WithContext(ctx).Create(&product).Error; err != nil {
		log.Printf("[product.create] ❌ failed to create product: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create product"))
		return
	}
	catalog_cache.Invalidate()

	if err := config.CmsGorm.WithContext(ctx).
		Preload("Category").
		First(&product, "id = ?", product.ID).Error; err != nil {
		log.Printf("[product.create] failed to reload product: %v", err)
	}

	log.Printf("[product.create] ✅ %s (%s)", product.Slug, product.ID)
	c.Set(middleware.CreatedResourceIDKey, product.ID.String())
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Product created successfully", product))
}

// checkCategory reports whether a category id may own products.
func checkCategory(ctx context.Context, categoryID string) (int, string) {
	var category models.Category
	err := config.CmsGorm.WithContext(ctx).Select("id").First(&category, "id = ?", categoryID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return http.StatusBadRequest, "Invalid category_id"
	}
	if err != nil {
		log.Printf("[product] category lookup failed: %v", err)
		return http.StatusInternalServerError, "Database error"
	}
	return http.StatusOK, ""
}

func slugTaken(ctx context.Context, slug, exceptID string) (bool, error) {
	query := config.CmsGorm.WithContext(ctx).Model(&models.Product{}).Where("slug = ?", strings.TrimSpace(slug))
	if exceptID != "" {
		query = query.Where("id <> ?", exceptID)
	}
	var count int64
	err := query.Count(&count).Error
	return count > 0, err
}

// ════════════════════════════════════════════════════════════
// CLEANUP ENDPOINT
// ════════════════════════════════════════════════════════════

// CleanupFolderRequest represents the request to delete a folder
type CleanupFolderRequest struct {
	FolderPath string `json:"folder_path" binding:"required"`
}

// CleanupOrphanedFolder godoc
// @Summary Delete orphaned product folder from Cloudinary
// @Description Deletes an uploaded product folder when saving the product failed afterwards
// @Tags CMS - Products
// @Accept json
// @Produce json
// @Param request body CleanupFolderRequest true "Folder path to delete"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 403 {object} models.ApiResponse
// @Router /admin/products/cleanup-folder [post]
func CleanupOrphanedFolder(c *gin.Context) {
	var req CleanupFolderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	prefix := services.MediaFolder("products") + "/"
	if !strings.HasPrefix(req.FolderPath, prefix) {
		log.Printf("[cleanup] ⚠️  blocked attempt to delete non-product folder: %s", req.FolderPath)
		c.JSON(http.StatusForbidden, models.ErrorResponse(c, "Can only cleanup product folders"))
		return
	}
	// emdad/products/{slug}
	if parts := strings.Split(req.FolderPath, "/"); len(parts) != 3 || parts[2] == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid folder path format"))
		return
	}

	cld, err := services.GetCloudinaryService()
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, err.Error()))
		return
	}

	go func(folderPath string) {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := cld.DeleteFolder(ctx, folderPath); err != nil {
			log.Printf("[cleanup] ❌ failed to delete folder %s: %v", folderPath, err)
		} else {
			log.Printf("[cleanup] ✅ deleted orphaned folder: %s", folderPath)
		}
	}(req.FolderPath)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Folder cleanup initiated", map[string]string{
		"folder": req.FolderPath,
		"status": "deleting",
	}))
}
