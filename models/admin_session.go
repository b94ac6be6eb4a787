package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AdminSessionTTL matches the lifetime of the admin JWT.
const AdminSessionTTL = 7 * 24 * time.Hour

// AdminSession is one signed-in browser of an admin. Only a hash of the token
// is stored so a leaked table cannot be replayed.
type AdminSession struct {
	ID             uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	AdminID        uuid.UUID  `json:"admin_id" gorm:"type:uuid;not null;index"`
	TokenHash      string     `json:"-" gorm:"not null;uniqueIndex"`
	IPAddress      string     `json:"ip_address"`
	UserAgent      string     `json:"user_agent" gorm:"type:text"`
	CreatedAt      time.Time  `json:"created_at" gorm:"autoCreateTime;index"`
	LastActivityAt time.Time  `json:"last_activity_at" gorm:"index"`
	ExpiresAt      time.Time  `json:"expires_at" gorm:"index"`
	RevokedAt      *time.Time `json:"revoked_at"`
}

func (s *AdminSession) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.Must(uuid.NewV7())
	}
	now := time.Now()
	if s.ExpiresAt.IsZero() {
		s.ExpiresAt = now.Add(AdminSessionTTL)
	}
	if s.LastActivityAt.IsZero() {
		s.LastActivityAt = now
	}
	return nil
}

func (AdminSession) TableName() string {
	return "admin_sessions"
}

// Valid reports whether the session may still authenticate requests at t.
func (s *AdminSession) Valid(t time.Time) bool {
	return s.RevokedAt == nil && t.Before(s.ExpiresAt)
}
