package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/Emdad-Export/emdad-cms-backend/i18n"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ProductStatusActive = "Active"
	ProductStatusDraft  = "Draft"
)

// ═══════════════════════════════════════════════════════════
// JSONB Type Definitions
// ═══════════════════════════════════════════════════════════

type MediaURL struct {
	URL      string `json:"url" binding:"required"`
	PublicID string `json:"public_id,omitempty"`
	Order    *int   `json:"order,omitempty"`
}

type ProductMedia struct {
	Primary MediaURL   `json:"primary"`
	Other   []MediaURL `json:"other,omitempty"`
}

// Specification is one row of the product data sheet (variety, calibre, packing...).
type Specification struct {
	LabelEn string `json:"label_en" binding:"required" example:"Packing"`
	LabelAr string `json:"label_ar" example:"التعبئة"`
	ValueEn string `json:"value_en" binding:"required" example:"15 kg open-top cartons"`
	ValueAr string `json:"value_ar" example:"كراتين مفتوحة ١٥ كجم"`
}

type SpecificationList []Specification

// ═══════════════════════════════════════════════════════════
// Main Product Model (GORM)
// ═══════════════════════════════════════════════════════════

type Product struct {
	ID             uuid.UUID         `json:"id" gorm:"type:uuid;primaryKey"`
	Slug           string            `json:"slug" gorm:"type:varchar(120);uniqueIndex;not null"`
	NameEn         string            `json:"name_en" gorm:"not null;index"`
	NameAr         string            `json:"name_ar" gorm:"not null"`
	DescriptionEn  string            `json:"description_en" gorm:"type:text"`
	DescriptionAr  string            `json:"description_ar" gorm:"type:text"`
	Specifications SpecificationList `json:"specifications" gorm:"type:jsonb;not null;default:'[]'"`
	CategoryID     uuid.UUID         `json:"category_id" gorm:"type:uuid;not null;index:idx_products_category"`
	Category       *Category         `json:"category,omitempty" gorm:"foreignKey:CategoryID;references:ID"`
	Status         string            `json:"status" gorm:"not null;check:status IN ('Active', 'Draft');index"`
	IsHomepage     bool              `json:"is_homepage" gorm:"not null;index"`
	SortOrder      int               `json:"sort_order" gorm:"not null;default:0"`
	Media          ProductMedia      `json:"media" gorm:"type:jsonb;not null;default:'{}'"`
	// Stored seasonality document as written over the years; read it through
	// the seasonality package, never directly.
	Seasonality *string   `json:"-" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.Must(uuid.NewV7())
	}
	if p.Status == "" {
		p.Status = ProductStatusDraft
	}
	return nil
}

// TableName specifies the table name
func (Product) TableName() string {
	return "products"
}

func (p *Product) IsActive() bool {
	return p.Status == ProductStatusActive
}

func (p *Product) Name(lang i18n.Lang) string {
	return lang.Pick(p.NameEn, p.NameAr)
}

func (p *Product) Description(lang i18n.Lang) string {
	return lang.Pick(p.DescriptionEn, p.DescriptionAr)
}

// LocalizedSpecifications returns the data sheet rows in one language.
func (p *Product) LocalizedSpecifications(lang i18n.Lang) []SpecificationView {
	rows := make([]SpecificationView, 0, len(p.Specifications))
	for _, s := range p.Specifications {
		rows = append(rows, SpecificationView{
			Label: lang.Pick(s.LabelEn, s.LabelAr),
			Value: lang.Pick(s.ValueEn, s.ValueAr),
		})
	}
	return rows
}

// ═══════════════════════════════════════════════════════════
// Request Models
// ═══════════════════════════════════════════════════════════

type ProductRequest struct {
	Slug           string          `json:"slug" binding:"required,max=120" example:"navel-orange"`
	NameEn         string          `json:"name_en" binding:"required" example:"Navel Orange"`
	NameAr         string          `json:"name_ar" binding:"required" example:"برتقال أبو سرة"`
	DescriptionEn  string          `json:"description_en" example:"Seedless navel oranges from the Nile Delta"`
	DescriptionAr  string          `json:"description_ar" example:"برتقال أبو سرة بدون بذور من دلتا النيل"`
	Specifications []Specification `json:"specifications" binding:"omitempty,dive"`
	CategoryID     uuid.UUID       `json:"category_id" binding:"required" example:"018d1234-5678-7abc-def0-123456789abc"`
	Status         string          `json:"status" binding:"omitempty,oneof=Active Draft" example:"Draft"`
	IsHomepage     bool            `json:"is_homepage" example:"false"`
	SortOrder      int             `json:"sort_order" example:"0"`
	Media          ProductMedia    `json:"media"`
}

type UpdateProductRequest struct {
	Slug           *string          `json:"slug" binding:"omitempty,max=120"`
	NameEn         *string          `json:"name_en"`
	NameAr         *string          `json:"name_ar"`
	DescriptionEn  *string          `json:"description_en"`
	DescriptionAr  *string          `json:"description_ar"`
	Specifications *[]Specification `json:"specifications"`
	CategoryID     *uuid.UUID       `json:"category_id"`
	Status         *string          `json:"status" binding:"omitempty,oneof=Active Draft"`
	IsHomepage     *bool            `json:"is_homepage"`
	SortOrder      *int             `json:"sort_order"`
	Media          *ProductMedia    `json:"media"`
}

// ═══════════════════════════════════════════════════════════
// Response Models
// ═══════════════════════════════════════════════════════════

type SpecificationView struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// ProductCard is the localized product summary used by listings and the
// featured strip.
type ProductCard struct {
	ID           uuid.UUID `json:"id"`
	Slug         string    `json:"slug"`
	Name         string    `json:"name"`
	CategoryKey  string    `json:"category_key"`
	CategoryName string    `json:"category_name"`
	ImageURL     string    `json:"image_url"`
	CurrentState string    `json:"current_state,omitempty"`
	CurrentLabel string    `json:"current_label,omitempty"`
}

// Card localizes the product without a seasonality badge.
func (p *Product) Card(lang i18n.Lang) ProductCard {
	card := ProductCard{
		ID:       p.ID,
		Slug:     p.Slug,
		Name:     p.Name(lang),
		ImageURL: p.Media.Primary.URL,
	}
	if p.Category != nil {
		card.CategoryKey = p.Category.Key
		card.CategoryName = p.Category.Name(lang)
	}
	return card
}

// ═══════════════════════════════════════════════════════════
// JSONB Scanner/Valuer for GORM
// ═══════════════════════════════════════════════════════════

// jsonBytes accepts what postgres (bytes) and sqlite (text) hand back for a
// json column.
func jsonBytes(value interface{}) ([]byte, bool) {
	switch v := value.(type) {
	case []byte:
		return v, true
	case string:
		return []byte(v), true
	default:
		return nil, false
	}
}

// SpecificationList methods
func (s *SpecificationList) Scan(value interface{}) error {
	if value == nil {
		*s = make(SpecificationList, 0)
		return nil
	}
	bytes, ok := jsonBytes(value)
	if !ok {
		return errors.New("failed to scan SpecificationList")
	}
	return json.Unmarshal(bytes, s)
}

func (s SpecificationList) Value() (driver.Value, error) {
	if s == nil {
		return json.Marshal([]Specification{})
	}
	return json.Marshal(s)
}

// ProductMedia methods
func (m *ProductMedia) Scan(value interface{}) error {
	if value == nil {
		*m = ProductMedia{Other: make([]MediaURL, 0)}
		return nil
	}
	bytes, ok := jsonBytes(value)
	if !ok {
		return errors.New("failed to scan ProductMedia")
	}
	return json.Unmarshal(bytes, m)
}

func (m ProductMedia) Value() (driver.Value, error) {
	return json.Marshal(m)
}
