package product_controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	catalog_cache "github.com/Emdad-Export/emdad-cms-backend/cache"
	"github.com/Emdad-Export/emdad-cms-backend/models"
	"github.com/Emdad-Export/emdad-cms-backend/testutil"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupSeasonalityRouter(t *testing.T) (*gin.Engine, models.Product) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db := testutil.SetupTestDB(t)
	catalog_cache.Invalidate()

	category := models.Category{Key: "citrus", NameEn: "Citrus", NameAr: "الحمضيات", Status: models.CategoryStatusActive}
	require.NoError(t, db.Create(&category).Error)
	legacy := `{"peak":[1],"available":[2,3]}`
	product := models.Product{Slug: "navel-orange", NameEn: "Navel Orange", NameAr: "برتقال أبو سرة", CategoryID: category.ID, Status: models.ProductStatusActive, Seasonality: &legacy}
	require.NoError(t, db.Create(&product).Error)

	r := gin.New()
	r.GET("/admin/products/:id/seasonality", GetProductSeasonality)
	r.PUT("/admin/products/:id/seasonality", UpdateProductSeasonality)
	return r, product
}

func TestUpdateProductSeasonality_Nested(t *testing.T) {
	r, product := setupSeasonalityRouter(t)

	body := `{"fresh":{"peak":[12,1,2,1],"available":[3,11],"off":[4,5,6,7,8,9,10,13]},"iqf":{"year_round":false,"months":[8,6,7]}}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/admin/products/"+product.ID.String()+"/seasonality", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"success": true,
		"nested": true,
		"seasonality": {
			"fresh": {"peak":[1,2,12],"available":[3,11],"limited":[],"off":[4,5,6,7,8,9,10],"iqf":[6,7,8]},
			"iqf": {"year_round":false,"months":[6,7,8]}
		}
	}`, w.Body.String())
}

func TestUpdateProductSeasonality_FlatThenRead(t *testing.T) {
	r, product := setupSeasonalityRouter(t)
	path := "/admin/products/" + product.ID.String() + "/seasonality"

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, path, strings.NewReader(`{"limited":[5],"iqf":[1]}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var saved SeasonalityUpdateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &saved))
	assert.False(t, saved.Nested)
	assert.Equal(t, []int{5}, saved.Seasonality.Fresh.Limited)
	assert.Empty(t, saved.Seasonality.Fresh.Peak, "previous months are replaced, not merged")

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path+"?lang=ar", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Shape  string   `json:"shape"`
			States []string `json:"states"`
			Labels []string `json:"labels"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "nested", resp.Data.Shape)
	assert.Equal(t, "iqf", resp.Data.States[0])
	assert.Equal(t, "limited", resp.Data.States[4])
	assert.Equal(t, "off", resp.Data.States[1])
	assert.Equal(t, "خارج الموسم", resp.Data.Labels[1])
}

func TestUpdateProductSeasonality_Errors(t *testing.T) {
	r, product := setupSeasonalityRouter(t)

	cases := []struct {
		name string
		path string
		body string
		code int
	}{
		{"bad id", "/admin/products/not-a-uuid/seasonality", `{}`, http.StatusBadRequest},
		{"unknown product", "/admin/products/" + uuid.NewString() + "/seasonality", `{"peak":[1]}`, http.StatusNotFound},
		{"not an object", "/admin/products/" + product.ID.String() + "/seasonality", `[1,2,3]`, http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPut, tc.path, strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)
			assert.Equal(t, tc.code, w.Code)
		})
	}
}
