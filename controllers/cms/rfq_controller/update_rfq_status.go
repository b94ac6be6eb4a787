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

// UpdateQuoteRequestStatus godoc
// @Summary Update RFQ status
// @Description Move an RFQ through new, in_review, quoted and closed, optionally leaving a note
// @Tags Admin - RFQs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "RFQ ID"
// @Param request body models.UpdateQuoteStatusRequest true "New status"
// @Success 200 {object} models.ApiResponse{data=models.QuoteRequest}
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Failure 404 {object} models.ApiResponse "RFQ not found"
// @Router /admin/rfqs/{id}/status [patch]
func UpdateQuoteRequestStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid RFQ ID"))
		return
	}

	var req models.UpdateQuoteStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	quote, err := services.UpdateQuoteStatus(ctx, id, req)
	if errors.Is(err, services.ErrQuoteNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "RFQ not found"))
		return
	}
	if err != nil {
		log.Printf("[rfq.status] ❌ %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update RFQ"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "RFQ status updated", quote))
}
