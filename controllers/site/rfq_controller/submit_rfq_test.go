package rfq_controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Emdad-Export/emdad-cms-backend/middleware"
	"github.com/Emdad-Export/emdad-cms-backend/models"
	"github.com/Emdad-Export/emdad-cms-backend/testutil"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db := testutil.SetupTestDB(t)

	r := gin.New()
	r.Use(middleware.LanguageMiddleware())
	r.POST("/site/rfq", SubmitQuoteRequest)
	return r, db
}

func TestSubmitQuoteRequest_Arabic(t *testing.T) {
	r, db := setupRouter(t)

	body := `{
		"company_name": "Gulf Fresh Trading",
		"contact_name": "Omar",
		"email": "omar@gulffresh.ae",
		"country": "UAE",
		"product_name": "Pomegranate",
		"quantity": 3,
		"unit": "container",
		"incoterm": "CFR"
	}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/site/rfq?lang=ar", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Message string              `json:"message"`
		Lang    string              `json:"lang"`
		Data    models.QuoteReceipt `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ar", resp.Lang)
	assert.Equal(t, "تم استلام طلب عرض السعر الخاص بك.", resp.Data.Message)
	assert.Equal(t, models.QuoteStatusNew, resp.Data.Status)
	assert.Regexp(t, `^RFQ-[A-Z2-9]{8}$`, resp.Data.Reference)

	var stored models.QuoteRequest
	require.NoError(t, db.First(&stored, "reference = ?", resp.Data.Reference).Error)
	assert.Equal(t, "ar", stored.Lang)
	assert.Equal(t, "Pomegranate", stored.ProductName)
	assert.Nil(t, stored.ProductID)
}

func TestSubmitQuoteRequest_Validation(t *testing.T) {
	r, db := setupRouter(t)

	for name, body := range map[string]string{
		"missing email": `{"company_name":"A","contact_name":"B","country":"C"}`,
		"bad incoterm":  `{"company_name":"A","contact_name":"B","email":"b@a.com","country":"C","incoterm":"XYZ"}`,
		"not json":      `company=A`,
	} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/site/rfq", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code, name)
	}

	var count int64
	require.NoError(t, db.Model(&models.QuoteRequest{}).Count(&count).Error)
	assert.Zero(t, count)
}
