package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func langRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(LanguageMiddleware())
	r.GET("/site/ping", func(c *gin.Context) {
		lang := RequestLang(c)
		c.JSON(http.StatusOK, gin.H{"lang": lang.String(), "dir": lang.Dir()})
	})
	return r
}

func TestLanguageMiddleware_DefaultsToEnglish(t *testing.T) {
	w := httptest.NewRecorder()
	langRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/site/ping", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"lang":"en","dir":"ltr"}`, w.Body.String())
	assert.Equal(t, "en", w.Header().Get("Content-Language"))
	assert.Empty(t, w.Result().Cookies())
}

func TestLanguageMiddleware_QueryWinsAndIsRemembered(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/site/ping?lang=AR", nil)
	req.AddCookie(&http.Cookie{Name: LangCookie, Value: "en"})
	w := httptest.NewRecorder()
	langRouter().ServeHTTP(w, req)

	assert.JSONEq(t, `{"lang":"ar","dir":"rtl"}`, w.Body.String())
	assert.Equal(t, "ar", w.Header().Get("Content-Language"))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, LangCookie, cookies[0].Name)
	assert.Equal(t, "ar", cookies[0].Value)
}

func TestLanguageMiddleware_CookieWhenQueryMissingOrUnsupported(t *testing.T) {
	for _, path := range []string{"/site/ping", "/site/ping?lang=fr"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.AddCookie(&http.Cookie{Name: LangCookie, Value: "ar"})
		w := httptest.NewRecorder()
		langRouter().ServeHTTP(w, req)

		assert.JSONEq(t, `{"lang":"ar","dir":"rtl"}`, w.Body.String(), path)
		assert.Empty(t, w.Result().Cookies(), path)
	}
}
