package middleware

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/Emdad-Export/emdad-cms-backend/config"
	"github.com/Emdad-Export/emdad-cms-backend/models"
	"github.com/Emdad-Export/emdad-cms-backend/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CreatedResourceIDKey is set by create handlers so the new record can be logged.
const CreatedResourceIDKey = "createdResourceID"

// ════════════════════════════════════════════════════════════
// Route → action table
// ════════════════════════════════════════════════════════════

var collectionResourceTypes = map[string]string{
	"products":   models.ResourceTypeProduct,
	"categories": models.ResourceTypeCategory,
	"rfqs":       models.ResourceTypeQuote,
	"posts":      models.ResourceTypePost,
	"gallery":    models.ResourceTypeGallery,
}

// routeActions is keyed by "METHOD resourceType[/segment]". Mutating routes
// missing from the table (image uploads, folder cleanup, resends) are not logged.
var routeActions = map[string]string{
	"POST product":                      models.ActionCreateProduct,
	"PATCH product":                     models.ActionUpdateProduct,
	"DELETE product":                    models.ActionDeleteProduct,
	"PUT product/seasonality":           models.ActionUpdateSeasonality,
	"POST category":                     models.ActionCreateCategory,
	"PATCH category":                    models.ActionUpdateCategory,
	"PATCH category/status":             models.ActionUpdateCategory,
	"DELETE category":                   models.ActionDeleteCategory,
	"POST category/delete-with-options": models.ActionDeleteCategory,
	"PATCH rfq/status":                  models.ActionUpdateQuoteStatus,
	"POST post":                         models.ActionCreatePost,
	"PATCH post":                        models.ActionUpdatePost,
	"DELETE post":                       models.ActionDeletePost,
	"POST gallery":                      models.ActionUploadGalleryItem,
	"PATCH gallery":                     models.ActionUpdateGalleryItem,
	"DELETE gallery":                    models.ActionDeleteGalleryItem,
}

// resolveRoute maps a route pattern such as
// /api/v1/admin/products/:id/seasonality to ("product", "seasonality").
func resolveRoute(fullPath string) (resourceType, segment string) {
	parts := strings.Split(strings.Trim(fullPath, "/"), "/")
	for i, part := range parts {
		rt, ok := collectionResourceTypes[part]
		if !ok {
			continue
		}
		rest := parts[i+1:]
		if len(rest) > 0 && strings.HasPrefix(rest[0], ":") {
			rest = rest[1:]
		}
		if len(rest) > 0 {
			segment = rest[len(rest)-1]
		}
		return rt, segment
	}
	return "", ""
}

func actionFor(method, resourceType, segment string) string {
	key := method + " " + resourceType
	if segment != "" {
		key += "/" + segment
	}
	return routeActions[key]
}

// ════════════════════════════════════════════════════════════
// Snapshots
// ════════════════════════════════════════════════════════════

type snapshotLoader func(ctx context.Context, id string) (snapshot any, name string, err error)

var snapshotLoaders = map[string]snapshotLoader{
	models.ResourceTypeProduct: func(ctx context.Context, id string) (any, string, error) {
		var p models.Product
		err := config.CmsGorm.WithContext(ctx).First(&p, "id = ?", id).Error
		// the seasonality column is hidden from the public JSON
		return productSnapshot{Product: p, Seasonality: p.Seasonality}, p.NameEn, err
	},
	models.ResourceTypeCategory: func(ctx context.Context, id string) (any, string, error) {
		var c models.Category
		err := config.CmsGorm.WithContext(ctx).First(&c, "id = ?", id).Error
		return c, c.NameEn, err
	},
	models.ResourceTypeQuote: func(ctx context.Context, id string) (any, string, error) {
		var q models.QuoteRequest
		err := config.CmsGorm.WithContext(ctx).First(&q, "id = ?", id).Error
		return q, q.Reference, err
	},
	models.ResourceTypePost: func(ctx context.Context, id string) (any, string, error) {
		var p models.Post
		err := config.CmsGorm.WithContext(ctx).First(&p, "id = ?", id).Error
		return p, p.TitleEn, err
	},
	models.ResourceTypeGallery: func(ctx context.Context, id string) (any, string, error) {
		var g models.GalleryItem
		err := config.CmsGorm.WithContext(ctx).First(&g, "id = ?", id).Error
		return g, g.TitleEn, err
	},
}

type productSnapshot struct {
	models.Product
	Seasonality *string `json:"seasonality"`
}

// loadSnapshot returns nil when the record is missing.
func loadSnapshot(resourceType, id string) (any, string) {
	load, ok := snapshotLoaders[resourceType]
	if !ok || id == "" {
		return nil, ""
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	snapshot, name, err := load(ctx, id)
	if err != nil {
		log.Printf("[activity-logging] no %s snapshot for %s: %v", resourceType, id, err)
		return nil, ""
	}
	return snapshot, name
}

// ════════════════════════════════════════════════════════════
// Activity Logging Middleware
// ════════════════════════════════════════════════════════════

// ActivityLoggingMiddleware records admin mutations with before/after
// snapshots. Must run after AdminAuthMiddleware.
func ActivityLoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodGet {
			c.Next()
			return
		}

		resourceType, segment := resolveRoute(c.FullPath())
		action := actionFor(c.Request.Method, resourceType, segment)
		if action == "" {
			c.Next()
			return
		}

		adminID, adminEmail, ok := activityAdmin(c)
		if !ok {
			log.Printf("[activity-logging] ⚠️ admin info not in context for %s", c.FullPath())
			c.Next()
			return
		}

		resourceID := c.Param("id")
		var before any
		var resourceName string
		if c.Request.Method != http.MethodPost || segment != "" {
			before, resourceName = loadSnapshot(resourceType, resourceID)
		}

		c.Next()

		entry := services.LogActivityRequest{
			AdminID:      adminID,
			AdminEmail:   adminEmail,
			Action:       action,
			ResourceType: resourceType,
			ResourceID:   resourceID,
			ResourceName: resourceName,
			Status:       models.StatusSuccess,
			Context:      c,
		}

		status := c.Writer.Status()
		if status < 200 || status >= 300 {
			entry.Status = models.StatusFailed
			entry.ErrorMessage = "Request failed with status " + http.StatusText(status)
			services.LogActivity(entry)
			return
		}

		if entry.ResourceID == "" {
			entry.ResourceID = c.GetString(CreatedResourceIDKey)
		}
		after, name := loadSnapshot(resourceType, entry.ResourceID)
		if name != "" {
			entry.ResourceName = name
		}
		entry.Changes = services.CreateChanges(before, after)
		services.LogActivity(entry)
	}
}

// activityAdmin reads what AdminAuthMiddleware put in the context.
func activityAdmin(c *gin.Context) (uuid.UUID, string, bool) {
	email := c.GetString("adminEmail")
	switch id := c.Value("adminID").(type) {
	case uuid.UUID:
		return id, email, email != ""
	case string:
		parsed, err := uuid.Parse(id)
		return parsed, email, err == nil && email != ""
	}
	return uuid.Nil, "", false
}
