package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	catalog_cache "github.com/Emdad-Export/emdad-cms-backend/cache"
	"github.com/Emdad-Export/emdad-cms-backend/config"
	"github.com/Emdad-Export/emdad-cms-backend/i18n"
	"github.com/Emdad-Export/emdad-cms-backend/models"
	"github.com/Emdad-Export/emdad-cms-backend/seasonality"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrCategoryNotFound = errors.New("category not found")
)

// SeasonalityView is a product's seasonality as the admin editor and the
// product page see it.
type SeasonalityView struct {
	Shape     seasonality.Shape     `json:"shape"`
	Defaulted bool                  `json:"defaulted"`
	Reason    string                `json:"reason,omitempty"`
	Fresh     seasonality.Bucket    `json:"fresh"`
	IQF       seasonality.IQF       `json:"iqf"`
	States    [12]seasonality.State `json:"states"`
	Labels    []string              `json:"labels"`
}

// SeasonalitySaveResult is what an admin save produced.
type SeasonalitySaveResult struct {
	Product  models.Product
	Previous seasonality.Record
	Record   seasonality.Record
	Nested   bool
}

// NormalizeProduct reads the product's stored seasonality in lang. Unreadable
// values are logged and come back as the empty bucket.
func NormalizeProduct(p *models.Product, lang i18n.Lang) seasonality.Result {
	result := seasonality.Normalize(p.Seasonality, lang.String())
	if result.Defaulted {
		switch result.Reason {
		case seasonality.ReasonUnparseable, seasonality.ReasonNotObject:
			log.Printf("[seasonality] ⚠️  product %s (%s): stored value ignored (%s)", p.ID, p.Slug, result.Reason)
		}
	}
	return result
}

// BuildSeasonalityView renders a normalized result with localized state labels.
func BuildSeasonalityView(result seasonality.Result, lang i18n.Lang) SeasonalityView {
	states := result.DisplayStates()
	labels := make([]string, 0, len(states))
	for _, s := range states {
		labels = append(labels, lang.StateLabel(string(s)))
	}
	return SeasonalityView{
		Shape:     result.Shape,
		Defaulted: result.Defaulted,
		Reason:    result.Reason,
		Fresh:     result.Bucket,
		IQF:       result.IQF,
		States:    states,
		Labels:    labels,
	}
}

// GetProductSeasonality loads one product and normalizes its seasonality.
func GetProductSeasonality(ctx context.Context, productID uuid.UUID, lang i18n.Lang) (*SeasonalityView, error) {
	var product models.Product
	if err := config.CmsGorm.WithContext(ctx).
		Select("id, slug, seasonality").
		First(&product, "id = ?", productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("load product %s: %w", productID, err)
	}

	view := BuildSeasonalityView(NormalizeProduct(&product, lang), lang)
	return &view, nil
}

// SaveProductSeasonality sanitizes an admin payload and overwrites the
// product's seasonality with the canonical nested record. There is no merge:
// the payload is the complete desired state and the last write wins.
func SaveProductSeasonality(ctx context.Context, productID uuid.UUID, payload map[string]any) (*SeasonalitySaveResult, error) {
	var product models.Product
	if err := config.CmsGorm.WithContext(ctx).
		Select("id, slug, name_en, name_ar, seasonality").
		First(&product, "id = ?", productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("load product %s: %w", productID, err)
	}

	previous := seasonality.Normalize(product.Seasonality, i18n.Default.String()).Record()

	record, nested := seasonality.BuildRecord(payload)
	encoded, err := record.JSON()
	if err != nil {
		return nil, fmt.Errorf("encode seasonality: %w", err)
	}

	if err := config.CmsGorm.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ?", productID).
		Update("seasonality", encoded).Error; err != nil {
		return nil, fmt.Errorf("save seasonality for %s: %w", productID, err)
	}
	product.Seasonality = &encoded

	catalog_cache.Invalidate()
	log.Printf("[seasonality.save] ✅ product %s (%s) nested=%t", product.ID, product.Slug, nested)

	return &SeasonalitySaveResult{
		Product:  product,
		Previous: previous,
		Record:   record,
		Nested:   nested,
	}, nil
}
