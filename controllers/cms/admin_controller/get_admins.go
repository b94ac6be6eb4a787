package admin_controller

import (
	"log"
	"net/http"
	"strconv"

	"github.com/Emdad-Export/emdad-cms-backend/config"
	"github.com/Emdad-Export/emdad-cms-backend/models"
	"github.com/gin-gonic/gin"
)

// GetAdmins godoc
// @Summary List all admins
// @Description Get list of all admins (paginated)
// @Tags Admin - Management
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Items per page (default: 20, max: 100)"
// @Param status query string false "Filter by status (active, suspended)"
// @Success 200 {object} models.ApiResponse{data=[]models.AdminResponse}
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Router /admin/admins [get]
func GetAdmins(c *gin.Context) {
	log.Printf("[admin.list] request")

	page, limit := pageParams(c)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	baseQuery := config.CmsGorm.WithContext(ctx).Model(&models.Admin{})
	if status := c.Query("status"); status != "" {
		baseQuery = baseQuery.Where("status = ?", status)
	}

	var total int64
	if err := baseQuery.Count(&total).Error; err != nil {
		log.Printf("[admin.list] failed to count admins: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	var admins []models.Admin
	if err := baseQuery.
		Order("joined_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&admins).Error; err != nil {
		log.Printf("[admin.list] database error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	responses := make([]models.AdminResponse, len(admins))
	for i := range admins {
		responses[i] = admins[i].ToResponse()
	}

	meta := models.NewPagination(page, limit, total)
	log.Printf("[admin.list] retrieved %d admins (page %d/%d, total: %d)", len(responses), page, meta.TotalPages, total)

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Admins retrieved", responses, meta))
}

// pageParams reads page and limit (max 100) from the query string.
func pageParams(c *gin.Context) (int, int) {
	page := 1
	if p := c.Query("page"); p != "" {
		if parsed, err := strconv.Atoi(p); err == nil && parsed > 0 {
			page = parsed
		}
	}

	limit := 20
	if l := c.Query("limit"); l != "" {
		if parsed, err := strconv.Atoi(l); err == nil && parsed > 0 {
			if parsed > 100 {
				parsed = 100
			}
			limit = parsed
		}
	}
	return page, limit
}
