package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Emdad-Export/emdad-cms-backend/config"
	"github.com/Emdad-Export/emdad-cms-backend/i18n"
	"github.com/Emdad-Export/emdad-cms-backend/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductDetail is the public product page.
type ProductDetail struct {
	models.ProductCard
	Description    string                     `json:"description"`
	Specifications []models.SpecificationView `json:"specifications"`
	Media          models.ProductMedia        `json:"media"`
	Seasonality    SeasonalityView            `json:"seasonality"`
}

// ProductListQuery selects a page of the public product listing.
type ProductListQuery struct {
	CategoryKey string
	Lang        i18n.Lang
	Now         time.Time
	Page        int
	Limit       int
}

// ListProductCards returns active products in calendar order with their
// current-month badge. A category key that is not an active category is
// ignored, as on the calendar.
func ListProductCards(ctx context.Context, q ProductListQuery) ([]models.ProductCard, int64, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 || q.Limit > 100 {
		q.Limit = 24
	}
	if q.Now.IsZero() {
		q.Now = time.Now()
	}

	categoryKey := ""
	if q.CategoryKey != "" {
		categories, err := ActiveCategories(ctx)
		if err != nil {
			return nil, 0, err
		}
		for _, c := range categories {
			if c.Key == q.CategoryKey {
				categoryKey = c.Key
				break
			}
		}
	}

	scoped := func() *gorm.DB {
		query := ActiveProductsQuery(config.CmsGorm.WithContext(ctx), q.Lang)
		if categoryKey != "" {
			query = query.Where("categories.slug = ?", categoryKey)
		}
		return query
	}

	var total int64
	if err := scoped().Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}

	var products []models.Product
	if err := scoped().
		Preload("Category").
		Offset((q.Page - 1) * q.Limit).
		Limit(q.Limit).
		Find(&products).Error; err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}

	return ProductCards(products, q.Lang, q.Now), total, nil
}

// GetProductDetail loads an active product of an active category by slug.
func GetProductDetail(ctx context.Context, slug string, lang i18n.Lang, now time.Time) (*ProductDetail, error) {
	if now.IsZero() {
		now = time.Now()
	}

	var product models.Product
	err := ActiveProductsQuery(config.CmsGorm.WithContext(ctx), lang).
		Preload("Category").
		Where("products.slug = ?", slug).
		First(&product).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load product %s: %w", slug, err)
	}

	result := NormalizeProduct(&product, lang)
	card := product.Card(lang)
	state := result.CurrentState(now)
	card.CurrentState = string(state)
	card.CurrentLabel = lang.StateLabel(string(state))

	return &ProductDetail{
		ProductCard:    card,
		Description:    product.Description(lang),
		Specifications: product.LocalizedSpecifications(lang),
		Media:          product.Media,
		Seasonality:    BuildSeasonalityView(result, lang),
	}, nil
}

// CategoryViews localizes the active categories with their active product counts.
func CategoryViews(ctx context.Context, lang i18n.Lang) ([]models.CategoryView, error) {
	categories, err := ActiveCategories(ctx)
	if err != nil {
		return nil, err
	}

	var rows []struct {
		CategoryID uuid.UUID
		Total      int
	}
	if err := config.CmsGorm.WithContext(ctx).
		Model(&models.Product{}).
		Select("category_id, COUNT(*) AS total").
		Where("status = ?", models.ProductStatusActive).
		Group("category_id").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("count products per category: %w", err)
	}
	counts := make(map[uuid.UUID]int, len(rows))
	for _, r := range rows {
		counts[r.CategoryID] = r.Total
	}

	views := make([]models.CategoryView, 0, len(categories))
	for i := range categories {
		view := categories[i].Localize(lang)
		view.ProductCount = counts[categories[i].ID]
		views = append(views, view)
	}
	return views, nil
}
