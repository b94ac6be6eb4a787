package admin_controller

import (
	"log"
	"net/http"

	"github.com/Emdad-Export/emdad-cms-backend/config"
	"github.com/Emdad-Export/emdad-cms-backend/models"
	"github.com/Emdad-Export/emdad-cms-backend/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetAllAdminActivityLogs godoc
// @Summary Get all admin activities
// @Description Get activity logs for all admins with pagination and filters
// @Tags Admin - Management
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Items per page (default: 20, max: 100)"
// @Param admin_id query string false "Filter by admin ID"
// @Param action query string false "Filter by action (e.g., updated_seasonality, updated_rfq_status)"
// @Param resource_type query string false "Filter by resource type (product, category, rfq, post, gallery, admin)"
// @Param resource_id query string false "Filter by resource ID"
// @Success 200 {object} models.ApiResponse{data=[]models.ActivityLogResponse}
// @Failure 400 {object} models.ApiResponse "Invalid filter"
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Router /admin/activity-logs [get]
func GetAllAdminActivityLogs(c *gin.Context) {
	page, limit := pageParams(c)
	filter := services.ActivityLogFilter{
		ResourceType: c.Query("resource_type"),
		ResourceID:   c.Query("resource_id"),
		Action:       c.Query("action"),
		Page:         page,
		Limit:        limit,
	}
	if raw := c.Query("admin_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid admin_id"))
			return
		}
		filter.AdminID = &id
	}

	respondWithActivity(c, "[admin.all-activity]", filter)
}

func respondWithActivity(c *gin.Context, tag string, filter services.ActivityLogFilter) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	logs, total, err := services.GetActivityLogService().ListActivity(ctx, filter)
	if err != nil {
		log.Printf("%s ❌ %v", tag, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	responses := make([]models.ActivityLogResponse, len(logs))
	for i := range logs {
		responses[i] = logs[i].ToResponse()
	}

	meta := models.NewPagination(filter.Page, filter.Limit, total)
	log.Printf("%s retrieved %d activities (page %d/%d)", tag, len(responses), filter.Page, meta.TotalPages)
	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Activity logs retrieved", responses, meta))
}
