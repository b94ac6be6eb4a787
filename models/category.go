package models

import (
	"time"

	"github.com/Emdad-Export/emdad-cms-backend/i18n"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	CategoryStatusActive   = "Active"
	CategoryStatusInactive = "Inactive"
)

// Category groups export products (citrus, grapes, vegetables, ...). Key is the
// stable identifier used by the calendar filter tabs.
type Category struct {
	ID             uuid.UUID `json:"id" gorm:"type:uuid;primaryKey" db:"id"`
	Key            string    `json:"key" gorm:"column:slug;type:varchar(80);uniqueIndex;not null" db:"slug"`
	NameEn         string    `json:"name_en" gorm:"not null" db:"name_en"`
	NameAr         string    `json:"name_ar" gorm:"not null" db:"name_ar"`
	DescriptionEn  string    `json:"description_en" gorm:"type:text" db:"description_en"`
	DescriptionAr  string    `json:"description_ar" gorm:"type:text" db:"description_ar"`
	SortOrder      int       `json:"sort_order" gorm:"not null;default:0;index" db:"sort_order"`
	Status         string    `json:"status" gorm:"type:varchar(20);default:'Active';check:status IN ('Active', 'Inactive')" db:"status"`
	ShowOnHomepage bool      `json:"show_on_homepage" gorm:"not null" db:"show_on_homepage"`
	CreatedAt      time.Time `json:"created_at" gorm:"autoCreateTime" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" gorm:"autoUpdateTime" db:"updated_at"`
}

// BeforeCreate hook - runs automatically before creating a record
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	// Auto-generate UUID v7 if not set
	if c.ID == uuid.Nil {
		c.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// TableName specifies the table name (optional, GORM auto-pluralizes)
func (Category) TableName() string {
	return "categories"
}

func (c *Category) IsActive() bool {
	return c.Status == CategoryStatusActive
}

func (c *Category) Name(lang i18n.Lang) string {
	return lang.Pick(c.NameEn, c.NameAr)
}

func (c *Category) Description(lang i18n.Lang) string {
	return lang.Pick(c.DescriptionEn, c.DescriptionAr)
}

// Localize renders the category for the public site.
func (c *Category) Localize(lang i18n.Lang) CategoryView {
	return CategoryView{
		ID:          c.ID,
		Key:         c.Key,
		Name:        c.Name(lang),
		Description: c.Description(lang),
		SortOrder:   c.SortOrder,
	}
}

// CategoryRequest is used when creating a category
type CategoryRequest struct {
	Key            string `json:"key" binding:"required,max=80" example:"citrus"`
	NameEn         string `json:"name_en" binding:"required" example:"Citrus"`
	NameAr         string `json:"name_ar" binding:"required" example:"الحمضيات"`
	DescriptionEn  string `json:"description_en" example:"Oranges, mandarins and lemons"`
	DescriptionAr  string `json:"description_ar" example:"البرتقال واليوسفي والليمون"`
	SortOrder      int    `json:"sort_order" example:"1"`
	Status         string `json:"status" binding:"omitempty,oneof=Active Inactive" example:"Active"`
	ShowOnHomepage bool   `json:"show_on_homepage" example:"true"`
}

// UpdateCategoryRequest is used when updating a category
type UpdateCategoryRequest struct {
	Key            *string `json:"key" binding:"omitempty,max=80"`
	NameEn         *string `json:"name_en"`
	NameAr         *string `json:"name_ar"`
	DescriptionEn  *string `json:"description_en"`
	DescriptionAr  *string `json:"description_ar"`
	SortOrder      *int    `json:"sort_order"`
	Status         *string `json:"status" binding:"omitempty,oneof=Active Inactive"`
	ShowOnHomepage *bool   `json:"show_on_homepage"`
}

// CategoryView is a category in one language.
type CategoryView struct {
	ID           uuid.UUID `json:"id"`
	Key          string    `json:"key"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	SortOrder    int       `json:"sort_order"`
	ProductCount int       `json:"product_count,omitempty"`
}

// CategoryWithProducts extends Category with product count
type CategoryWithProducts struct {
	Category
	Products int `json:"products"`
}

// DeleteCategoryOptions says what happens to the products of a deleted category.
type DeleteCategoryOptions struct {
	Mode           string     `json:"mode" binding:"required,oneof=cascade reassign" example:"reassign"`
	TargetCategory *uuid.UUID `json:"target_category_id" example:"018d1234-5678-7abc-def0-123456789abc"`
}

// UpdateCategoryStatusRequest hides or shows a category on the site.
type UpdateCategoryStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=Active Inactive" example:"Inactive"`
}
