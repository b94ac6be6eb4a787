package product_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/Emdad-Export/emdad-cms-backend/config"
	"github.com/Emdad-Export/emdad-cms-backend/i18n"
	"github.com/Emdad-Export/emdad-cms-backend/models"
	"github.com/Emdad-Export/emdad-cms-backend/seasonality"
	"github.com/Emdad-Export/emdad-cms-backend/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SeasonalityUpdateResponse is the admin editor's save acknowledgement.
type SeasonalityUpdateResponse struct {
	Success     bool               `json:"success"`
	Nested      bool               `json:"nested"`
	Seasonality seasonality.Record `json:"seasonality"`
}

// GetProductSeasonality godoc
// @Summary Get a product's seasonality
// @Description Normalized seasonality for the admin editor, whatever shape is stored
// @Tags CMS - Seasonality
// @Produce json
// @Param id path string true "Product ID (UUID)"
// @Param lang query string false "Language" Enums(en, ar)
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /admin/products/{id}/seasonality [get]
func GetProductSeasonality(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	lang := i18n.Resolve(c.Query("lang"))
	view, err := services.GetProductSeasonality(ctx, productID, lang)
	if errors.Is(err, services.ErrProductNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}
	if err != nil {
		log.Printf("[seasonality.get] ❌ %s: %v", productID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Seasonality fetched successfully", view))
}

// UpdateProductSeasonality godoc
// @Summary Replace a product's seasonality
// @Description Accepts a flat bucket ({peak, available, limited, off, iqf}) or the nested shape ({fresh: {...}, iqf: {year_round, months}}). Months outside 1-12 are dropped; lists are de-duplicated and sorted. The stored value is always the nested shape and fully replaces the previous one.
// @Tags CMS - Seasonality
// @Accept json
// @Produce json
// @Param id path string true "Product ID (UUID)"
// @Param seasonality body object true "Seasonality payload"
// @Success 200 {object} SeasonalityUpdateResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /admin/products/{id}/seasonality [put]
func UpdateProductSeasonality(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product ID"))
		return
	}

	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Seasonality must be a JSON object"))
		return
	}
	if payload == nil {
		payload = map[string]any{}
	}

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	result, err := services.SaveProductSeasonality(ctx, productID, payload)
	if errors.Is(err, services.ErrProductNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}
	if err != nil {
		log.Printf("[seasonality.save] ❌ %s: %v", productID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to save seasonality"))
		return
	}

	c.JSON(http.StatusOK, SeasonalityUpdateResponse{
		Success:     true,
		Nested:      result.Nested,
		Seasonality: result.Record,
	})
}
