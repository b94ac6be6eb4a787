package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/Emdad-Export/emdad-cms-backend/config"
	"github.com/Emdad-Export/emdad-cms-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ActivityLogService handles activity logging
type ActivityLogService struct{}

// NewActivityLogService creates a new activity log service
func NewActivityLogService() *ActivityLogService {
	return &ActivityLogService{}
}

// LogActivityRequest contains the parameters for logging an activity
type LogActivityRequest struct {
	AdminID      uuid.UUID
	AdminEmail   string
	Action       string // ActionUpdateSeasonality, ActionDeletePost, ...
	ResourceType string // ResourceTypeProduct, ResourceTypeQuote, ...
	ResourceID   string
	ResourceName string
	Changes      map[string]any // {before: {...}, after: {...}}
	Status       string
	ErrorMessage string
	Context      *gin.Context // For IP and User-Agent extraction
}

// LogActivity records an admin action. Logging failures are swallowed so they
// never fail the request being logged.
func (s *ActivityLogService) LogActivity(req LogActivityRequest) error {
	if req.AdminID == uuid.Nil {
		log.Printf("[activity-log] warning: AdminID is nil for action %s", req.Action)
		return nil
	}

	userAgent := ""
	if req.Context != nil {
		userAgent = req.Context.GetHeader("User-Agent")
	}

	var changesJSON datatypes.JSON
	if req.Changes != nil {
		data, err := json.Marshal(req.Changes)
		if err != nil {
			log.Printf("[activity-log] failed to marshal changes: %v", err)
			data = []byte("{}")
		}
		changesJSON = datatypes.JSON(data)
	}

	if req.Status == "" {
		req.Status = models.StatusSuccess
	}

	entry := models.ActivityLog{
		AdminID:      req.AdminID,
		AdminEmail:   req.AdminEmail,
		Action:       req.Action,
		ResourceType: req.ResourceType,
		ResourceID:   req.ResourceID,
		ResourceName: req.ResourceName,
		Changes:      changesJSON,
		Status:       req.Status,
		ErrorMessage: req.ErrorMessage,
		IPAddress:    ClientIP(req.Context),
		UserAgent:    userAgent,
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := config.CmsGorm.WithContext(ctx).Create(&entry).Error; err != nil {
		log.Printf("[activity-log] failed to create activity log: %v", err)
		return nil
	}

	log.Printf("[activity-log] %s: %s/%s/%s by %s", req.Action, req.ResourceType, req.ResourceID, req.ResourceName, req.AdminEmail)
	return nil
}

// ActivityLogFilter narrows the back office activity feed.
type ActivityLogFilter struct {
	AdminID      *uuid.UUID
	ResourceType string
	ResourceID   string
	Action       string
	Page         int
	Limit        int
}

// ListActivity returns one page of activity, newest first, and the total count.
func (s *ActivityLogService) ListActivity(ctx context.Context, f ActivityLogFilter) ([]models.ActivityLog, int64, error) {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > 100 {
		f.Limit = 20
	}

	query := config.CmsGorm.WithContext(ctx).Model(&models.ActivityLog{})
	if f.AdminID != nil {
		query = query.Where("admin_id = ?", *f.AdminID)
	}
	if f.ResourceType != "" {
		query = query.Where("resource_type = ?", f.ResourceType)
	}
	if f.ResourceID != "" {
		query = query.Where("resource_id = ?", f.ResourceID)
	}
	if f.Action != "" {
		query = query.Where("action = ?", f.Action)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count activity: %w", err)
	}

	var logs []models.ActivityLog
	if err := query.
		Order("created_at DESC").
		Offset((f.Page - 1) * f.Limit).
		Limit(f.Limit).
		Find(&logs).Error; err != nil {
		return nil, 0, fmt.Errorf("list activity: %w", err)
	}
	return logs, total, nil
}

// ClientIP extracts the client IP address from the request.
// Checks X-Forwarded-For, X-Real-IP, then RemoteAddr.
func ClientIP(c *gin.Context) string {
	if c == nil {
		return ""
	}
	if forwardedFor := c.GetHeader("X-Forwarded-For"); forwardedFor != "" {
		return forwardedFor
	}
	if realIP := c.GetHeader("X-Real-IP"); realIP != "" {
		return realIP
	}
	return c.RemoteIP()
}

// Global instance
var activityLogService *ActivityLogService

// GetActivityLogService returns the global activity log service
func GetActivityLogService() *ActivityLogService {
	if activityLogService == nil {
		activityLogService = NewActivityLogService()
	}
	return activityLogService
}

// LogActivity logs an activity using the global service
func LogActivity(req LogActivityRequest) error {
	return GetActivityLogService().LogActivity(req)
}

// CreateChanges builds the before/after changes map.
func CreateChanges(before, after any) map[string]any {
	return map[string]any{
		"before": before,
		"after":  after,
	}
}
