package calendar_controller

import (
	"log"
	"net/http"

	"github.com/Emdad-Export/emdad-cms-backend/config"
	"github.com/Emdad-Export/emdad-cms-backend/middleware"
	"github.com/Emdad-Export/emdad-cms-backend/models"
	"github.com/Emdad-Export/emdad-cms-backend/services"
	"github.com/gin-gonic/gin"
)

// GetCalendar godoc
// @Summary Seasonality calendar
// @Description Month-by-month availability of every active product, with category tabs and the featured footer
// @Tags Site
// @Produce json
// @Param category query string false "Category key; unknown keys show every product"
// @Param lang query string false "en or ar"
// @Success 200 {object} models.ApiResponse{data=services.CalendarPage}
// @Failure 500 {object} models.ApiResponse
// @Router /site/calendar [get]
func GetCalendar(c *gin.Context) {
	lang := middleware.RequestLang(c)

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	page, err := services.BuildCalendarPage(ctx, services.CalendarQuery{
		CategoryKey: c.Query("category"),
		Lang:        lang,
	})
	if err != nil {
		log.Printf("[calendar] ❌ %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load calendar"))
		return
	}

	middleware.ObserveCalendarView(lang.String())
	c.JSON(http.StatusOK, models.SuccessResponse(c, page.Title, page))
}
