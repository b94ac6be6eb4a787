package rfq_controller

import (
	"log"
	"net/http"

	"github.com/Emdad-Export/emdad-cms-backend/config"
	"github.com/Emdad-Export/emdad-cms-backend/models"
	"github.com/Emdad-Export/emdad-cms-backend/services"
	"github.com/gin-gonic/gin"
)

// ResendQuoteNotification godoc
// @Summary Resend RFQ emails
// @Description Sends the sales notification and buyer acknowledgement again
// @Tags Admin - RFQs
// @Produce json
// @Security BearerAuth
// @Param id path string true "RFQ ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse "RFQ not found"
// @Failure 503 {object} models.ApiResponse "Email not configured"
// @Router /admin/rfqs/{id}/resend [post]
func ResendQuoteNotification(c *gin.Context) {
	quote, ok := loadQuote(c, "[rfq.resend]")
	if !ok {
		return
	}

	if !services.NewResendClient().Enabled() {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "Email delivery is not configured"))
		return
	}

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	services.NotifyQuoteRequest(ctx, *quote)
	log.Printf("[rfq.resend] ✅ %s by %s", quote.Reference, c.GetString("adminEmail"))
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Notification sent", gin.H{"reference": quote.Reference}))
}
