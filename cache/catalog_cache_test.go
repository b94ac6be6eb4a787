package catalog_cache

import (
	"testing"

	"github.com/Emdad-Export/emdad-cms-backend/models"
	"github.com/stretchr/testify/assert"
)

func TestFeaturedRoundTripAndInvalidate(t *testing.T) {
	Invalidate()

	_, ok := GetFeatured()
	assert.False(t, ok)

	SetFeatured([]models.Product{{Slug: "navel-orange"}})
	got, ok := GetFeatured()
	assert.True(t, ok)
	assert.Equal(t, "navel-orange", got[0].Slug)

	SetCategories([]models.Category{{Key: "citrus"}})
	cats, ok := GetCategories()
	assert.True(t, ok)
	assert.Len(t, cats, 1)

	Invalidate()
	_, ok = GetFeatured()
	assert.False(t, ok)
	_, ok = GetCategories()
	assert.False(t, ok)
}
