package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Emdad-Export/emdad-cms-backend/models"
	"github.com/Emdad-Export/emdad-cms-backend/testutil"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveRoute(t *testing.T) {
	cases := []struct {
		path, resourceType, segment string
	}{
		{"/api/v1/admin/products", models.ResourceTypeProduct, ""},
		{"/api/v1/admin/products/:id", models.ResourceTypeProduct, ""},
		{"/api/v1/admin/products/:id/seasonality", models.ResourceTypeProduct, "seasonality"},
		{"/api/v1/admin/products/images", models.ResourceTypeProduct, "images"},
		{"/api/v1/admin/categories/:id/delete-with-options", models.ResourceTypeCategory, "delete-with-options"},
		{"/api/v1/admin/rfqs/:id/status", models.ResourceTypeQuote, "status"},
		{"/api/v1/admin/login", "", ""},
	}
	for _, tc := range cases {
		rt, seg := resolveRoute(tc.path)
		assert.Equal(t, tc.resourceType, rt, tc.path)
		assert.Equal(t, tc.segment, seg, tc.path)
	}

	assert.Equal(t, models.ActionUpdateSeasonality, actionFor(http.MethodPut, models.ResourceTypeProduct, "seasonality"))
	assert.Empty(t, actionFor(http.MethodPost, models.ResourceTypeProduct, "images"))
	assert.Empty(t, actionFor(http.MethodPost, models.ResourceTypeQuote, "resend"))
}

func activityRouter(adminID uuid.UUID, handler gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("adminID", adminID.String())
		c.Set("adminEmail", "desk@emdad-export.com")
		c.Next()
	})
	r.Use(ActivityLoggingMiddleware())
	r.PATCH("/api/v1/admin/categories/:id", handler)
	r.POST("/api/v1/admin/products/images", handler)
	return r
}

func TestActivityLoggingMiddleware_RecordsBeforeAndAfter(t *testing.T) {
	db := testutil.SetupTestDB(t)
	category := models.Category{Key: "citrus", NameEn: "Citrus", NameAr: "الحمضيات", Status: models.CategoryStatusActive}
	require.NoError(t, db.Create(&category).Error)

	adminID := uuid.New()
	r := activityRouter(adminID, func(c *gin.Context) {
		require.NoError(t, db.Model(&models.Category{}).Where("id = ?", c.Param("id")).Update("name_en", "Citrus Fruits").Error)
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/api/v1/admin/categories/"+category.ID.String(), strings.NewReader(`{}`)))
	require.Equal(t, http.StatusOK, w.Code)

	var entries []models.ActivityLog
	require.NoError(t, db.Find(&entries).Error)
	require.Len(t, entries, 1)

	entry := entries[0]
	assert.Equal(t, adminID, entry.AdminID)
	assert.Equal(t, models.ActionUpdateCategory, entry.Action)
	assert.Equal(t, models.ResourceTypeCategory, entry.ResourceType)
	assert.Equal(t, category.ID.String(), entry.ResourceID)
	assert.Equal(t, "Citrus Fruits", entry.ResourceName)
	assert.Equal(t, models.StatusSuccess, entry.Status)

	var changes struct {
		Before map[string]any `json:"before"`
		After  map[string]any `json:"after"`
	}
	require.NoError(t, json.Unmarshal(entry.Changes, &changes))
	assert.Equal(t, "Citrus", changes.Before["name_en"])
	assert.Equal(t, "Citrus Fruits", changes.After["name_en"])
}

func TestActivityLoggingMiddleware_FailuresAndSkippedRoutes(t *testing.T) {
	db := testutil.SetupTestDB(t)

	r := activityRouter(uuid.New(), func(c *gin.Context) {
		c.JSON(http.StatusBadRequest, gin.H{"error": true})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/admin/products/images", nil))
	var count int64
	require.NoError(t, db.Model(&models.ActivityLog{}).Count(&count).Error)
	assert.Zero(t, count)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/api/v1/admin/categories/"+uuid.NewString(), nil))

	var entry models.ActivityLog
	require.NoError(t, db.First(&entry).Error)
	assert.Equal(t, models.StatusFailed, entry.Status)
	assert.Equal(t, "Request failed with status Bad Request", entry.ErrorMessage)
	assert.Empty(t, entry.ResourceName)
}
