package services

import (
	"fmt"
	"testing"

	"github.com/Emdad-Export/emdad-cms-backend/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCategory(key string, sort int, homepage bool) models.Category {
	return models.Category{
		ID:             uuid.New(),
		Key:            key,
		NameEn:         key,
		NameAr:         key,
		SortOrder:      sort,
		Status:         models.CategoryStatusActive,
		ShowOnHomepage: homepage,
	}
}

func newProduct(slug string, c models.Category, homepage bool) models.Product {
	return models.Product{
		ID:         uuid.New(),
		Slug:       slug,
		NameEn:     slug,
		CategoryID: c.ID,
		Status:     models.ProductStatusActive,
		IsHomepage: homepage,
	}
}

func slugs(products []models.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.Slug)
	}
	return out
}

func TestSelectFeatured_OnePerCategoryThenBackfill(t *testing.T) {
	var categories []models.Category
	var products []models.Product
	for i := 1; i <= 10; i++ {
		c := newCategory(fmt.Sprintf("cat-%02d", i), i, true)
		categories = append(categories, c)
		products = append(products,
			newProduct(fmt.Sprintf("plain-%02d", i), c, false),
			newProduct(fmt.Sprintf("home-%02d", i), c, true),
		)
	}

	featured := SelectFeatured(categories, products)

	require.Len(t, featured, FeaturedLimit)
	assert.Equal(t, []string{
		"home-01", "home-02", "home-03", "home-04", "home-05", "home-06", "home-07", "home-08",
		"home-09",
	}, slugs(featured))
}

func TestSelectFeatured_FallsBackToAnyActiveProductInCategory(t *testing.T) {
	citrus := newCategory("citrus", 1, true)
	grapes := newCategory("grapes", 2, true)
	products := []models.Product{
		newProduct("lemon", citrus, false),
		newProduct("orange", citrus, false),
		newProduct("red-globe", grapes, true),
	}

	featured := SelectFeatured([]models.Category{grapes, citrus}, products)

	assert.Equal(t, []string{"lemon", "red-globe", "orange"}, slugs(featured))
}

func TestSelectFeatured_IgnoresIneligibleAndInactive(t *testing.T) {
	citrus := newCategory("citrus", 1, true)
	hidden := newCategory("herbs", 0, false)

	draft := newProduct("draft-orange", citrus, true)
	draft.Status = models.ProductStatusDraft

	products := []models.Product{
		draft,
		newProduct("basil", hidden, true),
		newProduct("mandarin", citrus, false),
		newProduct("mint", hidden, false),
	}

	featured := SelectFeatured([]models.Category{hidden, citrus}, products)

	// citrus gets its slot first, then homepage backfill, then any active
	assert.Equal(t, []string{"mandarin", "basil", "mint"}, slugs(featured))
}

func TestSelectFeatured_OnlyTopEightCategoriesGetASlot(t *testing.T) {
	var categories []models.Category
	var products []models.Product
	for i := 1; i <= 9; i++ {
		c := newCategory(fmt.Sprintf("cat-%d", i), i, true)
		categories = append(categories, c)
		products = append(products, newProduct(fmt.Sprintf("p-%d-a", i), c, false))
	}
	// a homepage product in the first category outranks cat-9 during backfill
	products = append(products, newProduct("p-1-b", categories[0], true))

	featured := SelectFeatured(categories, products)

	require.Len(t, featured, FeaturedLimit)
	assert.Equal(t, "p-1-b", featured[0].Slug)
	assert.Equal(t, "p-1-a", featured[8].Slug)
	assert.NotContains(t, slugs(featured), "p-9-a")
}

func TestSelectFeatured_NoDuplicatesAndDeterministic(t *testing.T) {
	var categories []models.Category
	var products []models.Product
	for i := 1; i <= 4; i++ {
		c := newCategory(fmt.Sprintf("cat-%d", i), i, true)
		categories = append(categories, c)
		for j := 0; j < 4; j++ {
			products = append(products, newProduct(fmt.Sprintf("p-%d-%d", i, j), c, j%2 == 0))
		}
	}

	first := SelectFeatured(categories, products)
	second := SelectFeatured(categories, products)

	assert.Equal(t, slugs(first), slugs(second))
	require.Len(t, first, FeaturedLimit)

	seen := map[uuid.UUID]bool{}
	for _, p := range first {
		assert.False(t, seen[p.ID], "duplicate %s", p.Slug)
		seen[p.ID] = true
	}
}

func TestSelectFeatured_SmallPool(t *testing.T) {
	c := newCategory("dates", 1, true)
	featured := SelectFeatured([]models.Category{c}, []models.Product{newProduct("medjool", c, false)})
	assert.Equal(t, []string{"medjool"}, slugs(featured))

	assert.Empty(t, SelectFeatured(nil, nil))
}
