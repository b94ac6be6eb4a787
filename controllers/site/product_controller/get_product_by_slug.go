package product_controller

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/Emdad-Export/emdad-cms-backend/config"
	"github.com/Emdad-Export/emdad-cms-backend/middleware"
	"github.com/Emdad-Export/emdad-cms-backend/models"
	"github.com/Emdad-Export/emdad-cms-backend/services"
	"github.com/gin-gonic/gin"
)

// GetProductBySlug godoc
// @Summary Product page
// @Description One active product with specifications, media and its full seasonality
// @Tags Site
// @Produce json
// @Param slug path string true "Product slug"
// @Param lang query string false "en or ar"
// @Success 200 {object} models.ApiResponse{data=services.ProductDetail}
// @Failure 404 {object} models.ApiResponse
// @Router /site/products/{slug} [get]
func GetProductBySlug(c *gin.Context) {
	lang := middleware.RequestLang(c)

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	detail, err := services.GetProductDetail(ctx, c.Param("slug"), lang, time.Now())
	if errors.Is(err, services.ErrProductNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, lang.T("product_not_found")))
		return
	}
	if err != nil {
		log.Printf("[site.product] ❌ %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch product"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, detail.Name, detail))
}
