package models

import (
	"time"

	"github.com/Emdad-Export/emdad-cms-backend/i18n"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	PostStatusPublished = "Published"
	PostStatusDraft     = "Draft"
)

// Post is a news article (harvest updates, trade fairs, certifications).
type Post struct {
	ID          uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	Slug        string     `json:"slug" gorm:"type:varchar(160);uniqueIndex;not null"`
	TitleEn     string     `json:"title_en" gorm:"not null"`
	TitleAr     string     `json:"title_ar" gorm:"not null"`
	ExcerptEn   string     `json:"excerpt_en" gorm:"type:text"`
	ExcerptAr   string     `json:"excerpt_ar" gorm:"type:text"`
	BodyEn      string     `json:"body_en" gorm:"type:text"`
	BodyAr      string     `json:"body_ar" gorm:"type:text"`
	CoverImage  string     `json:"cover_image" gorm:"type:text"`
	Status      string     `json:"status" gorm:"type:varchar(20);not null;index;check:status IN ('Published', 'Draft')"`
	PublishedAt *time.Time `json:"published_at" gorm:"index"`
	CreatedAt   time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (p *Post) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.Must(uuid.NewV7())
	}
	if p.Status == "" {
		p.Status = PostStatusDraft
	}
	return nil
}

// BeforeSave stamps the first publication time.
func (p *Post) BeforeSave(tx *gorm.DB) error {
	if p.Status == PostStatusPublished && p.PublishedAt == nil {
		now := time.Now()
		p.PublishedAt = &now
	}
	return nil
}

func (Post) TableName() string {
	return "posts"
}

// PostView is a post in one language.
type PostView struct {
	ID          uuid.UUID  `json:"id"`
	Slug        string     `json:"slug"`
	Title       string     `json:"title"`
	Excerpt     string     `json:"excerpt"`
	Body        string     `json:"body,omitempty"`
	CoverImage  string     `json:"cover_image"`
	PublishedAt *time.Time `json:"published_at"`
}

// Localize renders the post; the body is included only when withBody is set.
func (p *Post) Localize(lang i18n.Lang, withBody bool) PostView {
	view := PostView{
		ID:          p.ID,
		Slug:        p.Slug,
		Title:       lang.Pick(p.TitleEn, p.TitleAr),
		Excerpt:     lang.Pick(p.ExcerptEn, p.ExcerptAr),
		CoverImage:  p.CoverImage,
		PublishedAt: p.PublishedAt,
	}
	if withBody {
		view.Body = lang.Pick(p.BodyEn, p.BodyAr)
	}
	return view
}

type PostRequest struct {
	Slug       string `json:"slug" binding:"required,max=160" example:"citrus-season-opens"`
	TitleEn    string `json:"title_en" binding:"required" example:"Citrus season opens"`
	TitleAr    string `json:"title_ar" binding:"required" example:"افتتاح موسم الحمضيات"`
	ExcerptEn  string `json:"excerpt_en"`
	ExcerptAr  string `json:"excerpt_ar"`
	BodyEn     string `json:"body_en"`
	BodyAr     string `json:"body_ar"`
	CoverImage string `json:"cover_image" binding:"omitempty,url"`
	Status     string `json:"status" binding:"omitempty,oneof=Published Draft" example:"Draft"`
}

type UpdatePostRequest struct {
	Slug       *string `json:"slug" binding:"omitempty,max=160"`
	TitleEn    *string `json:"title_en"`
	TitleAr    *string `json:"title_ar"`
	ExcerptEn  *string `json:"excerpt_en"`
	ExcerptAr  *string `json:"excerpt_ar"`
	BodyEn     *string `json:"body_en"`
	BodyAr     *string `json:"body_ar"`
	CoverImage *string `json:"cover_image" binding:"omitempty,url"`
	Status     *string `json:"status" binding:"omitempty,oneof=Published Draft"`
}
