package services

import (
	"context"
	"testing"

	catalog_cache "github.com/Emdad-Export/emdad-cms-backend/cache"
	"github.com/Emdad-Export/emdad-cms-backend/i18n"
	"github.com/Emdad-Export/emdad-cms-backend/models"
	"github.com/Emdad-Export/emdad-cms-backend/seasonality"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveProductSeasonality_WritesCanonicalRecord(t *testing.T) {
	db, f := setupCatalog(t)

	payload := map[string]any{
		"peak":      []any{float64(3), float64(1), float64(1), float64(13)},
		"available": []any{float64(2)},
		"iqf":       []any{float64(9)},
	}
	result, err := SaveProductSeasonality(context.Background(), f.lemon.ID, payload)
	require.NoError(t, err)

	assert.False(t, result.Nested)
	assert.Equal(t, []int{1, 3}, result.Record.Fresh.Peak)
	assert.Equal(t, []int{4}, result.Previous.Fresh.IQF)

	var stored models.Product
	require.NoError(t, db.First(&stored, "id = ?", f.lemon.ID).Error)
	require.NotNil(t, stored.Seasonality)
	assert.JSONEq(t,
		`{"fresh":{"peak":[1,3],"available":[2],"limited":[],"off":[],"iqf":[9]},"iqf":{"year_round":false,"months":[9]}}`,
		*stored.Seasonality)

	normalized := seasonality.Normalize(stored.Seasonality, "ar")
	assert.Equal(t, seasonality.ShapeNested, normalized.Shape)
	assert.Equal(t, seasonality.StateIQF, normalized.DisplayStates()[8])
}

func TestSaveProductSeasonality_OverwritesInFull(t *testing.T) {
	db, f := setupCatalog(t)

	_, err := SaveProductSeasonality(context.Background(), f.orange.ID, map[string]any{
		"fresh": map[string]any{"limited": []any{float64(5)}},
	})
	require.NoError(t, err)

	var stored models.Product
	require.NoError(t, db.First(&stored, "id = ?", f.orange.ID).Error)
	states := seasonality.Normalize(stored.Seasonality, "en").DisplayStates()

	assert.Equal(t, seasonality.StateLimited, states[4])
	assert.Equal(t, seasonality.StateOff, states[0], "previous peak months are not merged")
	assert.Equal(t, seasonality.StateOff, states[6], "previous iqf months are not merged")
}

func TestSaveProductSeasonality_YearRound(t *testing.T) {
	_, f := setupCatalog(t)

	_, err := SaveProductSeasonality(context.Background(), f.redGlobe.ID, map[string]any{
		"fresh": map[string]any{"peak": []any{float64(8)}},
		"iqf":   map[string]any{"year_round": true, "months": []any{float64(2)}},
	})
	require.NoError(t, err)

	view, err := GetProductSeasonality(context.Background(), f.redGlobe.ID, i18n.English)
	require.NoError(t, err)
	assert.True(t, view.IQF.YearRound)
	assert.Empty(t, view.IQF.Months)
	assert.Equal(t, seasonality.AllMonths(), view.Fresh.IQF)
	assert.Equal(t, seasonality.StatePeak, view.States[7])
	assert.Equal(t, seasonality.StateIQF, view.States[0])
	assert.Equal(t, "IQF / Frozen", view.Labels[0])
}

func TestSaveProductSeasonality_UnknownProduct(t *testing.T) {
	setupCatalog(t)

	_, err := SaveProductSeasonality(context.Background(), uuid.New(), map[string]any{})
	assert.ErrorIs(t, err, ErrProductNotFound)

	_, err = GetProductSeasonality(context.Background(), uuid.New(), i18n.English)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestSaveProductSeasonality_InvalidatesFeaturedCache(t *testing.T) {
	_, f := setupCatalog(t)

	_, err := LoadFeaturedProducts(context.Background())
	require.NoError(t, err)
	_, cached := catalog_cache.GetFeatured()
	require.True(t, cached)

	_, err = SaveProductSeasonality(context.Background(), f.lemon.ID, map[string]any{"peak": []any{float64(6)}})
	require.NoError(t, err)

	_, cached = catalog_cache.GetFeatured()
	assert.False(t, cached)
}

func TestGetProductSeasonality_Defaults(t *testing.T) {
	_, f := setupCatalog(t)

	view, err := GetProductSeasonality(context.Background(), f.broken.ID, i18n.Arabic)
	require.NoError(t, err)
	assert.True(t, view.Defaulted)
	assert.Equal(t, seasonality.ReasonUnparseable, view.Reason)
	assert.Equal(t, "خارج الموسم", view.Labels[0])

	view, err = GetProductSeasonality(context.Background(), f.mint.ID, i18n.English)
	require.NoError(t, err)
	assert.Equal(t, seasonality.ReasonAbsent, view.Reason)
}
