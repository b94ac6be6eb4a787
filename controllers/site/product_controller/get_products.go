package product_controller

import (
	"log"
	"net/http"
	"strconv"

	"github.com/Emdad-Export/emdad-cms-backend/config"
	"github.com/Emdad-Export/emdad-cms-backend/middleware"
	"github.com/Emdad-Export/emdad-cms-backend/models"
	"github.com/Emdad-Export/emdad-cms-backend/services"
	"github.com/gin-gonic/gin"
)

// GetProducts godoc
// @Summary List products
// @Description Active products in calendar order, each with its availability badge for the current month
// @Tags Site
// @Produce json
// @Param category query string false "Category key"
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Items per page (default: 24, max: 100)"
// @Param lang query string false "en or ar"
// @Success 200 {object} models.ApiResponse{data=[]models.ProductCard}
// @Failure 500 {object} models.ApiResponse
// @Router /site/products [get]
func GetProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "24"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 24
	}

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	cards, total, err := services.ListProductCards(ctx, services.ProductListQuery{
		CategoryKey: c.Query("category"),
		Lang:        middleware.RequestLang(c),
		Page:        page,
		Limit:       limit,
	})
	if err != nil {
		log.Printf("[site.products] ❌ %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch products"))
		return
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Products fetched", cards, models.NewPagination(page, limit, total)))
}
