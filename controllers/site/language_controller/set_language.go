package language_controller

import (
	"net/http"

	"github.com/Emdad-Export/emdad-cms-backend/i18n"
	"github.com/Emdad-Export/emdad-cms-backend/middleware"
	"github.com/Emdad-Export/emdad-cms-backend/models"
	"github.com/gin-gonic/gin"
)

type SetLanguageRequest struct {
	Lang string `json:"lang" binding:"required" example:"ar"`
}

type LanguageResponse struct {
	Lang string `json:"lang"`
	Dir  string `json:"dir"`
}

// SetLanguage godoc
// @Summary Switch site language
// @Description Remembers the visitor's language in the lang cookie
// @Tags Site
// @Accept json
// @Produce json
// @Param request body SetLanguageRequest true "Language"
// @Success 200 {object} models.ApiResponse{data=LanguageResponse}
// @Failure 400 {object} models.ApiResponse
// @Router /site/language [post]
func SetLanguage(c *gin.Context) {
	var req SetLanguageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request"))
		return
	}

	lang, ok := i18n.Parse(req.Lang)
	if !ok {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Unsupported language"))
		return
	}

	middleware.SetLangCookie(c, lang)
	c.Set("lang", lang.String())
	c.Header("Content-Language", lang.String())

	c.JSON(http.StatusOK, models.SuccessResponse(c, lang.T("language_updated"), LanguageResponse{
		Lang: lang.String(),
		Dir:  lang.Dir(),
	}))
}
