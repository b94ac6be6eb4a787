package models

import (
	"time"

	"github.com/Emdad-Export/emdad-cms-backend/i18n"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	GalleryKindImage = "image"
	GalleryKindVideo = "video"
)

// GalleryItem is a photo or clip from the farms, packhouses or shipments.
type GalleryItem struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	TitleEn   string    `json:"title_en"`
	TitleAr   string    `json:"title_ar"`
	URL       string    `json:"url" gorm:"type:text;not null"`
	PublicID  string    `json:"public_id" gorm:"not null"` // Cloudinary public id
	Kind      string    `json:"kind" gorm:"type:varchar(10);not null;check:kind IN ('image', 'video')"`
	SortOrder int       `json:"sort_order" gorm:"not null;default:0;index"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (g *GalleryItem) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.Must(uuid.NewV7())
	}
	if g.Kind == "" {
		g.Kind = GalleryKindImage
	}
	return nil
}

func (GalleryItem) TableName() string {
	return "gallery_items"
}

type GalleryItemView struct {
	ID    uuid.UUID `json:"id"`
	Title string    `json:"title"`
	URL   string    `json:"url"`
	Kind  string    `json:"kind"`
}

func (g *GalleryItem) Localize(lang i18n.Lang) GalleryItemView {
	return GalleryItemView{
		ID:    g.ID,
		Title: lang.Pick(g.TitleEn, g.TitleAr),
		URL:   g.URL,
		Kind:  g.Kind,
	}
}

type UpdateGalleryItemRequest struct {
	TitleEn   *string `json:"title_en"`
	TitleAr   *string `json:"title_ar"`
	SortOrder *int    `json:"sort_order"`
}
