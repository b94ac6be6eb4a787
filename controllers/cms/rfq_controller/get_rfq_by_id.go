package rfq_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/Emdad-Export/emdad-cms-backend/config"
	"github.com/Emdad-Export/emdad-cms-backend/models"
	"github.com/Emdad-Export/emdad-cms-backend/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetQuoteRequestByID godoc
// @Summary Get RFQ
// @Tags Admin - RFQs
// @Produce json
// @Security BearerAuth
// @Param id path string true "RFQ ID"
// @Success 200 {object} models.ApiResponse{data=models.QuoteRequest}
// @Failure 400 {object} models.ApiResponse "Invalid ID"
// @Failure 404 {object} models.ApiResponse "RFQ not found"
// @Router /admin/rfqs/{id} [get]
func GetQuoteRequestByID(c *gin.Context) {
	quote, ok := loadQuote(c, "[rfq.get]")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "RFQ fetched", quote))
}

// loadQuote resolves the :id param and writes the error response itself.
func loadQuote(c *gin.Context, tag string) (*models.QuoteRequest, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid RFQ ID"))
		return nil, false
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	quote, err := services.GetQuoteRequest(ctx, id)
	if errors.Is(err, services.ErrQuoteNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "RFQ not found"))
		return nil, false
	}
	if err != nil {
		log.Printf("%s ❌ %v", tag, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch RFQ"))
		return nil, false
	}
	return quote, true
}
