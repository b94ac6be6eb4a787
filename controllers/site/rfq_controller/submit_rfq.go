package rfq_controller

import (
	"log"
	"net/http"

	"github.com/Emdad-Export/emdad-cms-backend/config"
	"github.com/Emdad-Export/emdad-cms-backend/middleware"
	"github.com/Emdad-Export/emdad-cms-backend/models"
	"github.com/Emdad-Export/emdad-cms-backend/services"
	"github.com/gin-gonic/gin"
)

// SubmitQuoteRequest godoc
// @Summary Request a quotation
// @Description Stores the buyer's RFQ and e-mails the sales desk; the buyer gets an acknowledgement in their language
// @Tags Site
// @Accept json
// @Produce json
// @Param lang query string false "en or ar"
// @Param request body models.CreateQuoteRequest true "RFQ form"
// @Success 201 {object} models.ApiResponse{data=models.QuoteReceipt}
// @Failure 400 {object} models.ApiResponse
// @Failure 429 {object} models.ApiResponse
// @Router /site/rfq [post]
func SubmitQuoteRequest(c *gin.Context) {
	var form models.CreateQuoteRequest
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	lang := middleware.RequestLang(c)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	quote, err := services.SubmitQuoteRequest(ctx, services.QuoteSubmission{
		Form:      form,
		Lang:      lang,
		IPAddress: services.ClientIP(c),
		UserAgent: c.Request.UserAgent(),
	})
	if err != nil {
		log.Printf("[rfq.submit] ❌ %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to submit request"))
		return
	}

	message := lang.T("rfq_received")
	c.JSON(http.StatusCreated, models.SuccessResponse(c, message, models.QuoteReceipt{
		Reference: quote.Reference,
		Status:    quote.Status,
		Message:   message,
		CreatedAt: quote.CreatedAt,
	}))
}
