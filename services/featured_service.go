package services

import (
	"context"
	"fmt"
	"log"
	"sort"

	catalog_cache "github.com/Emdad-Export/emdad-cms-backend/cache"
	"github.com/Emdad-Export/emdad-cms-backend/config"
	"github.com/Emdad-Export/emdad-cms-backend/i18n"
	"github.com/Emdad-Export/emdad-cms-backend/models"
	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

const (
	FeaturedLimit         = 9
	FeaturedCategoryLimit = 8
)

var featuredGroup singleflight.Group

// SelectFeatured picks the featured strip shared by the homepage and the
// calendar footer.
//
// One product is taken from each of the first eight homepage-eligible
// categories (by sort order), preferring homepage-flagged products. Remaining
// slots are filled from other homepage-flagged products, then from any active
// product, in the order given. No product appears twice and at most nine are
// returned. Inactive products are ignored.
func SelectFeatured(categories []models.Category, products []models.Product) []models.Product {
	eligible := make([]models.Category, 0, len(categories))
	for _, c := range categories {
		if c.ShowOnHomepage {
			eligible = append(eligible, c)
		}
	}
	sort.SliceStable(eligible, func(i, j int) bool {
		return eligible[i].SortOrder < eligible[j].SortOrder
	})
	if len(eligible) > FeaturedCategoryLimit {
		eligible = eligible[:FeaturedCategoryLimit]
	}

	active := make([]models.Product, 0, len(products))
	for _, p := range products {
		if p.IsActive() {
			active = append(active, p)
		}
	}

	selected := make([]models.Product, 0, FeaturedLimit)
	chosen := make(map[uuid.UUID]bool, FeaturedLimit)
	take := func(p models.Product) {
		selected = append(selected, p)
		chosen[p.ID] = true
	}

	for _, c := range eligible {
		if len(selected) == FeaturedLimit {
			break
		}
		if p, ok := firstInCategory(active, c.ID, chosen); ok {
			take(p)
		}
	}

	for _, homepageOnly := range []bool{true, false} {
		for _, p := range active {
			if len(selected) == FeaturedLimit {
				return selected
			}
			if chosen[p.ID] || (homepageOnly && !p.IsHomepage) {
				continue
			}
			take(p)
		}
	}
	return selected
}

func firstInCategory(products []models.Product, categoryID uuid.UUID, chosen map[uuid.UUID]bool) (models.Product, bool) {
	var fallback *models.Product
	for i := range products {
		p := &products[i]
		if p.CategoryID != categoryID || chosen[p.ID] {
			continue
		}
		if p.IsHomepage {
			return *p, true
		}
		if fallback == nil {
			fallback = p
		}
	}
	if fallback != nil {
		return *fallback, true
	}
	return models.Product{}, false
}

// LoadFeaturedProducts returns the cached featured selection, rebuilding it
// from the store on a miss. Concurrent misses share one rebuild.
func LoadFeaturedProducts(ctx context.Context) ([]models.Product, error) {
	if products, ok := catalog_cache.GetFeatured(); ok {
		return products, nil
	}

	val, err, _ := featuredGroup.Do("featured", func() (any, error) {
		var categories []models.Category
		if err := config.CmsGorm.WithContext(ctx).
			Where("show_on_homepage = ?", true).
			Order("sort_order ASC").
			Find(&categories).Error; err != nil {
			return nil, fmt.Errorf("load homepage categories: %w", err)
		}

		var products []models.Product
		if err := ActiveProductsQuery(config.CmsGorm.WithContext(ctx), i18n.Default).
			Preload("Category").
			Find(&products).Error; err != nil {
			return nil, fmt.Errorf("load active products: %w", err)
		}

		featured := SelectFeatured(categories, products)
		catalog_cache.SetFeatured(featured)
		log.Printf("[featured] rebuilt selection: %d products from %d categories", len(featured), len(categories))
		return featured, nil
	})
	if err != nil {
		return nil, err
	}
	return val.([]models.Product), nil
}
