package catalog_cache

import (
	"sync"
	"time"

	"github.com/Emdad-Export/emdad-cms-backend/models"
)

const TTL = 5 * time.Minute

// ── Featured products ────────────────────────────────────────────────────────
// The homepage and the calendar footer show the same selection, with
// categories preloaded. Language is applied when rendering, so one entry
// serves both languages.

type featuredEntry struct {
	products  []models.Product
	fetchedAt time.Time
}

var (
	featuredMu    sync.RWMutex
	featuredCache *featuredEntry
)

func GetFeatured() ([]models.Product, bool) {
	featuredMu.RLock()
	defer featuredMu.RUnlock()
	if featuredCache != nil && time.Since(featuredCache.fetchedAt) < TTL {
		return featuredCache.products, true
	}
	return nil, false
}

func SetFeatured(products []models.Product) {
	featuredMu.Lock()
	defer featuredMu.Unlock()
	featuredCache = &featuredEntry{products: products, fetchedAt: time.Now()}
}

// ── Active categories ────────────────────────────────────────────────────────
// Ordered by sort_order; feeds the calendar tabs and the public category list.

type categoriesEntry struct {
	data      []models.Category
	fetchedAt time.Time
}

var (
	categoriesMu    sync.RWMutex
	categoriesCache *categoriesEntry
)

func GetCategories() ([]models.Category, bool) {
	categoriesMu.RLock()
	defer categoriesMu.RUnlock()
	if categoriesCache != nil && time.Since(categoriesCache.fetchedAt) < TTL {
		return categoriesCache.data, true
	}
	return nil, false
}

func SetCategories(data []models.Category) {
	categoriesMu.Lock()
	defer categoriesMu.Unlock()
	categoriesCache = &categoriesEntry{data: data, fetchedAt: time.Now()}
}

// ── Invalidate everything (call on any product or category write) ────────────

func Invalidate() {
	featuredMu.Lock()
	featuredCache = nil
	featuredMu.Unlock()

	categoriesMu.Lock()
	categoriesCache = nil
	categoriesMu.Unlock()
}
