package services

import (
	"context"
	"fmt"
	"log"

	catalog_cache "github.com/Emdad-Export/emdad-cms-backend/cache"
	"github.com/Emdad-Export/emdad-cms-backend/config"
	"github.com/Emdad-Export/emdad-cms-backend/i18n"
	"github.com/Emdad-Export/emdad-cms-backend/models"
	"github.com/Emdad-Export/emdad-cms-backend/seasonality"
	"gorm.io/gorm"
)

const migrationBatchSize = 200

// SeasonalityMigrationReport counts what a migration run found and changed.
type SeasonalityMigrationReport struct {
	Scanned   int                       `json:"scanned"`
	Shapes    map[seasonality.Shape]int `json:"shapes"`
	Rewritten int                       `json:"rewritten"`
	Unchanged int                       `json:"unchanged"`
	Skipped   map[string]int            `json:"skipped"`
	DryRun    bool                      `json:"dry_run"`
}

// MigrateSeasonality rewrites every readable stored record in the canonical
// nested layout, reading the English view. Values that cannot be read are
// left untouched and counted by reason.
func MigrateSeasonality(ctx context.Context, dryRun bool) (*SeasonalityMigrationReport, error) {
	report := &SeasonalityMigrationReport{
		Shapes:  map[seasonality.Shape]int{},
		Skipped: map[string]int{},
		DryRun:  dryRun,
	}

	var batch []models.Product
	err := config.CmsGorm.WithContext(ctx).
		Model(&models.Product{}).
		Select("id, slug, seasonality").
		Where("seasonality IS NOT NULL").
		FindInBatches(&batch, migrationBatchSize, func(tx *gorm.DB, _ int) error {
			for i := range batch {
				if err := migrateOne(ctx, &batch[i], report); err != nil {
					return err
				}
			}
			return nil
		}).Error
	if err != nil {
		return report, fmt.Errorf("migrate seasonality: %w", err)
	}

	if report.Rewritten > 0 && !dryRun {
		catalog_cache.Invalidate()
	}
	log.Printf("[seasonality.migrate] ✅ scanned=%d rewritten=%d unchanged=%d dry_run=%t",
		report.Scanned, report.Rewritten, report.Unchanged, dryRun)
	return report, nil
}

func migrateOne(ctx context.Context, p *models.Product, report *SeasonalityMigrationReport) error {
	report.Scanned++
	result := seasonality.Normalize(p.Seasonality, i18n.English.String())
	report.Shapes[result.Shape]++

	if result.Defaulted {
		report.Skipped[result.Reason]++
		log.Printf("[seasonality.migrate] ⚠️ product %s (%s) left as is: %s", p.ID, p.Slug, result.Reason)
		return nil
	}

	encoded, err := result.Record().JSON()
	if err != nil {
		return fmt.Errorf("encode %s: %w", p.Slug, err)
	}
	if p.Seasonality != nil && *p.Seasonality == encoded {
		report.Unchanged++
		return nil
	}

	report.Rewritten++
	if report.DryRun {
		return nil
	}
	return config.CmsGorm.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ?", p.ID).
		Update("seasonality", encoded).Error
}
