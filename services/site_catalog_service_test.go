package services

import (
	"context"
	"testing"

	"github.com/Emdad-Export/emdad-cms-backend/i18n"
	"github.com/Emdad-Export/emdad-cms-backend/models"
	"github.com/Emdad-Export/emdad-cms-backend/seasonality"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cardSlugs(cards []models.ProductCard) []string {
	out := make([]string, 0, len(cards))
	for _, c := range cards {
		out = append(out, c.Slug)
	}
	return out
}

func TestListProductCards_BadgesAndOrder(t *testing.T) {
	setupCatalog(t)

	cards, total, err := ListProductCards(context.Background(), ProductListQuery{Lang: i18n.English, Now: january()})
	require.NoError(t, err)

	assert.Equal(t, int64(4), total)
	assert.Equal(t, []string{"lemon", "navel-orange", "red-globe", "flame"}, cardSlugs(cards))
	assert.Equal(t, "peak", cards[0].CurrentState)
	assert.Equal(t, "Peak season", cards[0].CurrentLabel)
	assert.Equal(t, "citrus", cards[0].CategoryKey)
	assert.Equal(t, "off", cards[3].CurrentState)
}

func TestListProductCards_CategoryAndPaging(t *testing.T) {
	setupCatalog(t)

	cards, total, err := ListProductCards(context.Background(), ProductListQuery{CategoryKey: "grapes", Lang: i18n.Arabic, Now: january()})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Equal(t, []string{"red-globe", "flame"}, cardSlugs(cards))
	assert.Equal(t, "العنب", cards[0].CategoryName)
	assert.Equal(t, "كميات محدودة", cards[0].CurrentLabel)

	cards, total, err = ListProductCards(context.Background(), ProductListQuery{CategoryKey: "herbs", Lang: i18n.English, Now: january(), Page: 2, Limit: 3})
	require.NoError(t, err)
	assert.Equal(t, int64(4), total, "hidden category is ignored")
	assert.Equal(t, []string{"flame"}, cardSlugs(cards))
}

func TestGetProductDetail(t *testing.T) {
	setupCatalog(t)

	detail, err := GetProductDetail(context.Background(), "navel-orange", i18n.Arabic, january())
	require.NoError(t, err)
	assert.Equal(t, "برتقال أبو سرة", detail.Name)
	assert.Equal(t, "الحمضيات", detail.CategoryName)
	assert.Equal(t, "peak", detail.CurrentState)
	assert.Equal(t, []int{1, 2, 12}, detail.Seasonality.Fresh.Peak)
	assert.Equal(t, seasonality.StateIQF, detail.Seasonality.States[5])
	assert.Len(t, detail.Seasonality.Labels, 12)

	for _, slug := range []string{"mint", "crimson", "missing"} {
		_, err := GetProductDetail(context.Background(), slug, i18n.English, january())
		assert.ErrorIs(t, err, ErrProductNotFound, slug)
	}
}

func TestCategoryViews_CountsActiveProducts(t *testing.T) {
	setupCatalog(t)

	views, err := CategoryViews(context.Background(), i18n.English)
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "citrus", views[0].Key)
	assert.Equal(t, 2, views[0].ProductCount)
	assert.Equal(t, "Grapes", views[1].Name)
	assert.Equal(t, 2, views[1].ProductCount)
}
