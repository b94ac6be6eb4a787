package services

import (
	"context"
	"testing"

	"github.com/Emdad-Export/emdad-cms-backend/models"
	"github.com/Emdad-Export/emdad-cms-backend/seasonality"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrateSeasonality_DryRunCountsShapes(t *testing.T) {
	db, f := setupCatalog(t)

	report, err := MigrateSeasonality(context.Background(), true)
	require.NoError(t, err)

	assert.True(t, report.DryRun)
	assert.Equal(t, 4, report.Scanned)
	assert.Equal(t, 1, report.Shapes[seasonality.ShapeFlat])
	assert.Equal(t, 1, report.Shapes[seasonality.ShapeNested])
	assert.Equal(t, 1, report.Shapes[seasonality.ShapeLanguage])
	assert.Equal(t, 1, report.Skipped[seasonality.ReasonUnparseable])
	assert.Equal(t, 3, report.Rewritten)

	var lemon models.Product
	require.NoError(t, db.First(&lemon, "id = ?", f.lemon.ID).Error)
	assert.Equal(t, `{"peak":[1],"available":[2,3],"iqf":[4]}`, *lemon.Seasonality)
}

func TestMigrateSeasonality_RewritesToNestedLayout(t *testing.T) {
	db, f := setupCatalog(t)

	before := map[string][12]seasonality.State{}
	for _, p := range []models.Product{f.orange, f.lemon, f.redGlobe} {
		before[p.Slug] = seasonality.Normalize(p.Seasonality, "en").DisplayStates()
	}

	report, err := MigrateSeasonality(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, 3, report.Rewritten)

	var redGlobe models.Product
	require.NoError(t, db.First(&redGlobe, "id = ?", f.redGlobe.ID).Error)
	assert.JSONEq(t,
		`{"fresh":{"peak":[7,8],"available":[],"limited":[1],"off":[],"iqf":[]},"iqf":{"year_round":false,"months":[]}}`,
		*redGlobe.Seasonality)

	for _, p := range []models.Product{f.orange, f.lemon, f.redGlobe} {
		var stored models.Product
		require.NoError(t, db.First(&stored, "id = ?", p.ID).Error)
		result := seasonality.Normalize(stored.Seasonality, "en")
		assert.Equal(t, seasonality.ShapeNested, result.Shape, p.Slug)
		assert.Equal(t, before[p.Slug], result.DisplayStates(), p.Slug)
	}

	var broken models.Product
	require.NoError(t, db.First(&broken, "id = ?", f.broken.ID).Error)
	assert.Equal(t, `{not json`, *broken.Seasonality)

	again, err := MigrateSeasonality(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, 0, again.Rewritten)
	assert.Equal(t, 3, again.Unchanged)
}
