package rfq_controller

import (
	"fmt"
	"log"
	"net/http"

	"github.com/Emdad-Export/emdad-cms-backend/models"
	"github.com/Emdad-Export/emdad-cms-backend/services"
	"github.com/gin-gonic/gin"
)

// DownloadQuoteRequestPDF godoc
// @Summary Download RFQ PDF
// @Description The same sheet that is attached to the sales notification
// @Tags Admin - RFQs
// @Produce application/pdf
// @Security BearerAuth
// @Param id path string true "RFQ ID"
// @Success 200 {file} file "PDF file"
// @Failure 404 {object} models.ApiResponse "RFQ not found"
// @Router /admin/rfqs/{id}/pdf [get]
func DownloadQuoteRequestPDF(c *gin.Context) {
	quote, ok := loadQuote(c, "[rfq.pdf]")
	if !ok {
		return
	}

	buf, err := services.QuoteRequestPDF(quote)
	if err != nil {
		log.Printf("[rfq.pdf] ❌ %s: %v", quote.Reference, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to generate PDF"))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.pdf"`, quote.Reference))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
