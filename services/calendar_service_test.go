package services

import (
	"context"
	"testing"
	"time"

	catalog_cache "github.com/Emdad-Export/emdad-cms-backend/cache"
	"github.com/Emdad-Export/emdad-cms-backend/i18n"
	"github.com/Emdad-Export/emdad-cms-backend/models"
	"github.com/Emdad-Export/emdad-cms-backend/seasonality"
	"github.com/Emdad-Export/emdad-cms-backend/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const endToEndSeasonality = `{"fresh":{"peak":[12,1,2],"available":[3,11],"limited":[],"off":[4,5,6,7,8,9,10]},"iqf":{"year_round":false,"months":[6,7,8]}}`

type catalogFixture struct {
	citrus, grapes, herbs    models.Category
	orange, lemon, redGlobe  models.Product
	mint, draftGrape, broken models.Product
}

func strPtr(s string) *string { return &s }

func setupCatalog(t *testing.T) (*gorm.DB, catalogFixture) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	catalog_cache.Invalidate()
	t.Cleanup(catalog_cache.Invalidate)

	var f catalogFixture
	f.citrus = models.Category{Key: "citrus", NameEn: "Citrus", NameAr: "الحمضيات", SortOrder: 1, Status: models.CategoryStatusActive, ShowOnHomepage: true}
	f.grapes = models.Category{Key: "grapes", NameEn: "Grapes", NameAr: "العنب", SortOrder: 2, Status: models.CategoryStatusActive, ShowOnHomepage: true}
	f.herbs = models.Category{Key: "herbs", NameEn: "Herbs", NameAr: "الأعشاب", SortOrder: 0, Status: models.CategoryStatusInactive, ShowOnHomepage: true}
	for _, c := range []*models.Category{&f.citrus, &f.grapes, &f.herbs} {
		require.NoError(t, db.Create(c).Error)
	}

	f.orange = models.Product{Slug: "navel-orange", NameEn: "Navel Orange", NameAr: "برتقال أبو سرة", CategoryID: f.citrus.ID, Status: models.ProductStatusActive, SortOrder: 2, Seasonality: strPtr(endToEndSeasonality)}
	f.lemon = models.Product{Slug: "lemon", NameEn: "Lemon", NameAr: "ليمون", CategoryID: f.citrus.ID, Status: models.ProductStatusActive, SortOrder: 1, IsHomepage: true, Seasonality: strPtr(`{"peak":[1],"available":[2,3],"iqf":[4]}`)}
	f.redGlobe = models.Product{Slug: "red-globe", NameEn: "Red Globe", NameAr: "ريد جلوب", CategoryID: f.grapes.ID, Status: models.ProductStatusActive, SortOrder: 1, Seasonality: strPtr(`{"en":{"peak":[7,8],"limited":[1]}}`)}
	f.mint = models.Product{Slug: "mint", NameEn: "Mint", NameAr: "نعناع", CategoryID: f.herbs.ID, Status: models.ProductStatusActive, IsHomepage: true}
	f.draftGrape = models.Product{Slug: "crimson", NameEn: "Crimson", NameAr: "كريمسون", CategoryID: f.grapes.ID, Status: models.ProductStatusDraft}
	f.broken = models.Product{Slug: "flame", NameEn: "Flame", NameAr: "فليم", CategoryID: f.grapes.ID, Status: models.ProductStatusActive, SortOrder: 2, Seasonality: strPtr(`{not json`)}
	for _, p := range []*models.Product{&f.orange, &f.lemon, &f.redGlobe, &f.mint, &f.draftGrape, &f.broken} {
		require.NoError(t, db.Create(p).Error)
	}
	return db, f
}

func january() time.Time {
	return time.Date(2026, time.January, 15, 10, 0, 0, 0, time.UTC)
}

func rowSlugs(rows []CalendarRow) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Slug)
	}
	return out
}

func TestBuildCalendarPage_AllCategories(t *testing.T) {
	_, f := setupCatalog(t)

	page, err := BuildCalendarPage(context.Background(), CalendarQuery{Lang: i18n.English, Now: january()})
	require.NoError(t, err)

	assert.Equal(t, "en", page.Lang)
	assert.Equal(t, "ltr", page.Dir)
	assert.Equal(t, 1, page.CurrentMonth)
	assert.Len(t, page.Months, 12)
	assert.Equal(t, "January", page.Months[0].Name)
	assert.Len(t, page.Legend, 5)

	assert.Equal(t, 4, page.TotalProducts)
	assert.Equal(t, 4, page.FilteredCount)
	assert.Equal(t, []string{"lemon", "navel-orange", "red-globe", "flame"}, rowSlugs(page.Products))

	orange := page.Products[1]
	assert.Equal(t, f.orange.ID, orange.ID)
	assert.Equal(t, "Navel Orange", orange.Name)
	assert.Equal(t, "citrus", orange.CategoryKey)
	assert.Equal(t, "Citrus", orange.CategoryName)
	assert.Equal(t, []int{1, 2, 12}, orange.Fresh.Peak)
	assert.Equal(t, []int{6, 7, 8}, orange.IQF.Months)
	assert.Equal(t, seasonality.StatePeak, orange.CurrentState)
	assert.Equal(t, seasonality.StateIQF, orange.States[6])
	assert.Equal(t, seasonality.StateOff, orange.States[3])

	flame := page.Products[3]
	for _, s := range flame.States {
		assert.Equal(t, seasonality.StateOff, s)
	}

	require.Len(t, page.Categories, 3)
	assert.True(t, page.Categories[0].Active)
	assert.Equal(t, 4, page.Categories[0].Count)
	assert.Equal(t, "citrus", page.Categories[1].Key)
	assert.Equal(t, 2, page.Categories[1].Count)
	assert.Equal(t, 2, page.Categories[2].Count)
}

func TestBuildCalendarPage_CategoryFilter(t *testing.T) {
	setupCatalog(t)

	page, err := BuildCalendarPage(context.Background(), CalendarQuery{CategoryKey: "grapes", Lang: i18n.English, Now: january()})
	require.NoError(t, err)

	assert.Equal(t, "grapes", page.ActiveCategory)
	assert.Equal(t, 4, page.TotalProducts)
	assert.Equal(t, 2, page.FilteredCount)
	assert.Equal(t, []string{"red-globe", "flame"}, rowSlugs(page.Products))
	assert.False(t, page.Categories[0].Active)
	assert.True(t, page.Categories[2].Active)
}

func TestBuildCalendarPage_UnknownOrHiddenCategoryShowsAll(t *testing.T) {
	setupCatalog(t)

	for _, key := range []string{"bananas", "herbs"} {
		page, err := BuildCalendarPage(context.Background(), CalendarQuery{CategoryKey: key, Lang: i18n.English, Now: january()})
		require.NoError(t, err)
		assert.Empty(t, page.ActiveCategory, key)
		assert.Equal(t, page.TotalProducts, page.FilteredCount, key)
	}
}

func TestBuildCalendarPage_Arabic(t *testing.T) {
	setupCatalog(t)

	page, err := BuildCalendarPage(context.Background(), CalendarQuery{Lang: i18n.Arabic, Now: january()})
	require.NoError(t, err)

	assert.Equal(t, "ar", page.Lang)
	assert.Equal(t, "rtl", page.Dir)
	assert.Equal(t, "يناير", page.Months[0].Name)

	var redGlobe CalendarRow
	for _, r := range page.Products {
		if r.Slug == "red-globe" {
			redGlobe = r
		}
	}
	assert.Equal(t, "ريد جلوب", redGlobe.Name)
	assert.Equal(t, "العنب", redGlobe.CategoryName)
	// only English seasonality is stored; Arabic falls back to it
	assert.Equal(t, []int{7, 8}, redGlobe.Fresh.Peak)
	assert.Equal(t, seasonality.StateLimited, redGlobe.CurrentState)
}

func TestBuildCalendarPage_FeaturedFooter(t *testing.T) {
	setupCatalog(t)

	page, err := BuildCalendarPage(context.Background(), CalendarQuery{Lang: i18n.English, Now: january()})
	require.NoError(t, err)

	// hidden categories and drafts never reach the footer
	featured := make([]string, 0, len(page.Featured))
	for _, card := range page.Featured {
		featured = append(featured, card.Slug)
	}
	assert.Equal(t, []string{"lemon", "red-globe", "navel-orange", "flame"}, featured)
	assert.Equal(t, "peak", page.Featured[0].CurrentState)
	assert.Equal(t, "Peak season", page.Featured[0].CurrentLabel)
}

func TestLoadFeaturedProducts_CachedUntilInvalidated(t *testing.T) {
	db, f := setupCatalog(t)

	first, err := LoadFeaturedProducts(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, first)

	require.NoError(t, db.Model(&models.Product{}).Where("id = ?", f.lemon.ID).Update("status", models.ProductStatusDraft).Error)

	cached, err := LoadFeaturedProducts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, len(first), len(cached))

	catalog_cache.Invalidate()
	fresh, err := LoadFeaturedProducts(context.Background())
	require.NoError(t, err)
	assert.Len(t, fresh, len(first)-1)
}
