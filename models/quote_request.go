package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RFQ lifecycle
const (
	QuoteStatusNew      = "new"
	QuoteStatusInReview = "in_review"
	QuoteStatusQuoted   = "quoted"
	QuoteStatusClosed   = "closed"
)

// QuoteRequest is a buyer's request for quotation submitted from the site.
type QuoteRequest struct {
	ID              uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	Reference       string     `json:"reference" gorm:"type:varchar(20);uniqueIndex;not null"` // RFQ-XXXXXXXX
	CompanyName     string     `json:"company_name" gorm:"not null"`
	ContactName     string     `json:"contact_name" gorm:"not null"`
	Email           string     `json:"email" gorm:"not null;index"`
	Phone           string     `json:"phone"`
	Country         string     `json:"country" gorm:"not null"`
	ProductID       *uuid.UUID `json:"product_id" gorm:"type:uuid;index"`
	ProductName     string     `json:"product_name"` // snapshot at submission time
	Quantity        float64    `json:"quantity" gorm:"type:numeric(12,2)"`
	Unit            string     `json:"unit" gorm:"type:varchar(20)"`
	Incoterm        string     `json:"incoterm" gorm:"type:varchar(10)"`
	DestinationPort string     `json:"destination_port"`
	Message         string     `json:"message" gorm:"type:text"`
	Lang            string     `json:"lang" gorm:"type:varchar(5);not null;default:'en'"`
	Status          string     `json:"status" gorm:"type:varchar(20);not null;index;check:status IN ('new', 'in_review', 'quoted', 'closed')"`
	AdminNote       string     `json:"admin_note" gorm:"type:text"`
	IPAddress       string     `json:"ip_address"`
	UserAgent       string     `json:"user_agent" gorm:"type:text"`
	CreatedAt       time.Time  `json:"created_at" gorm:"autoCreateTime;index"`
	UpdatedAt       time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (q *QuoteRequest) BeforeCreate(tx *gorm.DB) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.Must(uuid.NewV7())
	}
	if q.Status == "" {
		q.Status = QuoteStatusNew
	}
	return nil
}

// TableName specifies the table name
func (QuoteRequest) TableName() string {
	return "quote_requests"
}

// ════════════════════════════════════════════════════════════
// Request Models
// ════════════════════════════════════════════════════════════

// CreateQuoteRequest is the public RFQ form.
type CreateQuoteRequest struct {
	CompanyName     string     `json:"company_name" binding:"required,max=200" example:"Nordic Fresh AB"`
	ContactName     string     `json:"contact_name" binding:"required,max=120" example:"Anna Berg"`
	Email           string     `json:"email" binding:"required,email" example:"anna@nordicfresh.se"`
	Phone           string     `json:"phone" binding:"omitempty,max=40" example:"+46 8 123 456"`
	Country         string     `json:"country" binding:"required,max=80" example:"Sweden"`
	ProductID       *uuid.UUID `json:"product_id" example:"018d1234-5678-7abc-def0-123456789abc"`
	ProductName     string     `json:"product_name" binding:"omitempty,max=200" example:"Navel Orange"`
	Quantity        float64    `json:"quantity" binding:"omitempty,min=0" example:"2"`
	Unit            string     `json:"unit" binding:"omitempty,oneof=kg ton pallet container" example:"container"`
	Incoterm        string     `json:"incoterm" binding:"omitempty,oneof=EXW FCA FOB CFR CIF CPT CIP DAP DDP" example:"CIF"`
	DestinationPort string     `json:"destination_port" binding:"omitempty,max=120" example:"Gothenburg"`
	Message         string     `json:"message" binding:"omitempty,max=4000" example:"Weekly shipments from December to March"`
}

// UpdateQuoteStatusRequest moves an RFQ through its lifecycle.
type UpdateQuoteStatusRequest struct {
	Status    string `json:"status" binding:"required,oneof=new in_review quoted closed" example:"in_review"`
	AdminNote string `json:"admin_note" example:"Sent price list"`
}

// QuoteReceipt is what the buyer gets back after submitting.
type QuoteReceipt struct {
	Reference string    `json:"reference"`
	Status    string    `json:"status"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
