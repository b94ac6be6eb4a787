package rfq_controller

import (
	"log"
	"net/http"
	"strconv"

	"github.com/Emdad-Export/emdad-cms-backend/config"
	"github.com/Emdad-Export/emdad-cms-backend/models"
	"github.com/Emdad-Export/emdad-cms-backend/services"
	"github.com/gin-gonic/gin"
)

// GetQuoteRequests godoc
// @Summary List RFQs
// @Description Paginated request-for-quotation inbox, newest first
// @Tags Admin - RFQs
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Items per page (default: 20, max: 100)"
// @Param status query string false "Filter by status (new, in_review, quoted, closed)"
// @Param q query string false "Search reference, company or email"
// @Success 200 {object} models.ApiResponse{data=[]models.QuoteRequest}
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /admin/rfqs [get]
func GetQuoteRequests(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	quotes, total, err := services.ListQuoteRequests(ctx, services.QuoteFilter{
		Status: c.Query("status"),
		Search: c.Query("q"),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		log.Printf("[rfq.list] ❌ %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch RFQs"))
		return
	}

	log.Printf("[rfq.list] ✅ %d of %d", len(quotes), total)
	c.JSON(http.StatusOK, models.PaginatedResponse(c, "RFQs fetched", quotes, models.NewPagination(page, limit, total)))
}
