package home_controller

import (
	"log"
	"net/http"
	"time"

	"github.com/Emdad-Export/emdad-cms-backend/config"
	"github.com/Emdad-Export/emdad-cms-backend/middleware"
	"github.com/Emdad-Export/emdad-cms-backend/models"
	"github.com/Emdad-Export/emdad-cms-backend/services"
	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

// HomePage is the data behind the landing page.
type HomePage struct {
	Lang          string                `json:"lang"`
	Dir           string                `json:"dir"`
	FeaturedTitle string                `json:"featured_title"`
	Featured      []models.ProductCard  `json:"featured"`
	Categories    []models.CategoryView `json:"categories"`
	LatestNews    []models.PostView     `json:"latest_news"`
}

const latestNewsLimit = 3

// GetHome godoc
// @Summary Home page
// @Description Featured products with their current-month badge, categories and latest news
// @Tags Site
// @Produce json
// @Param lang query string false "en or ar"
// @Success 200 {object} models.ApiResponse{data=HomePage}
// @Failure 500 {object} models.ApiResponse
// @Router /site/home [get]
func GetHome(c *gin.Context) {
	lang := middleware.RequestLang(c)
	now := time.Now()

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	var (
		featured   []models.Product
		categories []models.CategoryView
		posts      []models.Post
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		featured, err = services.LoadFeaturedProducts(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		categories, err = services.CategoryViews(gctx, lang)
		return err
	})
	g.Go(func() error {
		return config.CmsGorm.WithContext(gctx).
			Where("status = ?", models.PostStatusPublished).
			Order("published_at DESC").
			Limit(latestNewsLimit).
			Find(&posts).Error
	})
	if err := g.Wait(); err != nil {
		log.Printf("[home] ❌ %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load home page"))
		return
	}

	news := make([]models.PostView, 0, len(posts))
	for i := range posts {
		news = append(news, posts[i].Localize(lang, false))
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Home page", HomePage{
		Lang:          lang.String(),
		Dir:           lang.Dir(),
		FeaturedTitle: lang.T("featured_title"),
		Featured:      services.ProductCards(featured, lang, now),
		Categories:    categories,
		LatestNews:    news,
	}))
}
