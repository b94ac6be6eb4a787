package product_controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	catalog_cache "github.com/Emdad-Export/emdad-cms-backend/cache"
	"github.com/Emdad-Export/emdad-cms-backend/middleware"
	"github.com/Emdad-Export/emdad-cms-backend/models"
	"github.com/Emdad-Export/emdad-cms-backend/testutil"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db := testutil.SetupTestDB(t)
	catalog_cache.Invalidate()
	t.Cleanup(catalog_cache.Invalidate)

	citrus := models.Category{Key: "citrus", NameEn: "Citrus", NameAr: "الحمضيات", Status: models.CategoryStatusActive}
	require.NoError(t, db.Create(&citrus).Error)
	yearRound := `{"fresh":{"available":[1,2,3,4,5,6,7,8,9,10,11,12]},"iqf":{"year_round":true}}`
	lemon := models.Product{Slug: "lemon", NameEn: "Lemon", NameAr: "ليمون", CategoryID: citrus.ID, Status: models.ProductStatusActive, Seasonality: &yearRound}
	draft := models.Product{Slug: "lime", NameEn: "Lime", NameAr: "ليم", CategoryID: citrus.ID, Status: models.ProductStatusDraft}
	require.NoError(t, db.Create(&lemon).Error)
	require.NoError(t, db.Create(&draft).Error)

	r := gin.New()
	r.Use(middleware.LanguageMiddleware())
	r.GET("/site/products", GetProducts)
	r.GET("/site/products/:slug", GetProductBySlug)
	return r
}

func TestGetProductBySlug(t *testing.T) {
	r := setupRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/site/products/lemon?lang=ar", nil))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Message string `json:"message"`
		Data    struct {
			Name         string `json:"name"`
			CurrentState string `json:"current_state"`
			Seasonality  struct {
				IQF struct {
					YearRound bool `json:"year_round"`
				} `json:"iqf"`
				States []string `json:"states"`
			} `json:"seasonality"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ليمون", resp.Message)
	assert.Equal(t, "ليمون", resp.Data.Name)
	assert.True(t, resp.Data.Seasonality.IQF.YearRound)
	assert.Len(t, resp.Data.Seasonality.States, 12)
	assert.Equal(t, "available", resp.Data.CurrentState)
}

func TestGetProductBySlug_NotFoundIsLocalized(t *testing.T) {
	r := setupRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/site/products/lime?lang=ar", nil))
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "المنتج غير موجود")
}

func TestGetProducts_Paginated(t *testing.T) {
	r := setupRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/site/products?limit=10", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []models.ProductCard `json:"data"`
		Meta models.Pagination    `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "lemon", resp.Data[0].Slug)
	assert.Equal(t, 1, resp.Meta.Total)
	assert.Equal(t, 10, resp.Meta.Limit)
}
