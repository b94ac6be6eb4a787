package middleware

import (
	"net/http"

	"github.com/Emdad-Export/emdad-cms-backend/config"
	"github.com/Emdad-Export/emdad-cms-backend/i18n"
	"github.com/gin-gonic/gin"
)

const (
	LangCookie    = "lang"
	langCookieAge = 365 * 24 * 60 * 60
)

// LanguageMiddleware resolves the request language: the lang query parameter
// wins and is remembered in the lang cookie, then the cookie, then English.
func LanguageMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := i18n.Default
		if requested, ok := i18n.Parse(c.Query("lang")); ok {
			lang = requested
			SetLangCookie(c, lang)
		} else if cookie, err := c.Cookie(LangCookie); err == nil {
			lang = i18n.Resolve(cookie)
		}

		c.Set("lang", lang.String())
		c.Header("Content-Language", lang.String())
		c.Next()
	}
}

// SetLangCookie remembers the visitor's language choice.
func SetLangCookie(c *gin.Context, lang i18n.Lang) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(LangCookie, lang.String(), langCookieAge, "/", "", config.IsProduction(), false)
}

// RequestLang returns the language resolved for this request.
func RequestLang(c *gin.Context) i18n.Lang {
	return i18n.Resolve(c.GetString("lang"))
}
