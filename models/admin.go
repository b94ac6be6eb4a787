package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	AdminRoleAdmin      = "admin"
	AdminRoleSuperAdmin = "super_admin"

	AdminStatusActive    = "active"
	AdminStatusSuspended = "suspended"
)

// ════════════════════════════════════════════════════════════
// Database Models
// ════════════════════════════════════════════════════════════

// Admin is a back office user (sales, content or export desk).
type Admin struct {
	ID           uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	Email        string     `json:"email" gorm:"uniqueIndex;not null"`
	Name         string     `json:"name" gorm:"not null"`
	PasswordHash string     `json:"-" gorm:"not null"`            // Never expose in JSON
	Role         string     `json:"role" gorm:"not null;index"`   // super_admin, admin
	Status       string     `json:"status" gorm:"not null;index"` // active, suspended
	LastLoginAt  *time.Time `json:"last_login_at"`
	JoinedAt     time.Time  `json:"joined_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (a *Admin) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.Must(uuid.NewV7())
	}
	if a.Status == "" {
		a.Status = AdminStatusActive
	}
	if a.Role == "" {
		a.Role = AdminRoleAdmin
	}
	return nil
}

// TableName specifies the table name
func (Admin) TableName() string {
	return "admins"
}

func (a *Admin) IsSuperAdmin() bool {
	return a.Role == AdminRoleSuperAdmin
}

// ════════════════════════════════════════════════════════════
// Request Models
// ════════════════════════════════════════════════════════════

// AdminLoginRequest is the request to login
type AdminLoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=1"`
}

// CreateAdminRequest adds a back office account (super admin only).
type CreateAdminRequest struct {
	Email    string `json:"email" binding:"required,email" example:"sales@emdad-export.com"`
	Name     string `json:"name" binding:"required,max=120" example:"Sales Desk"`
	Password string `json:"password" binding:"required,min=8" example:"correct-horse-battery"`
	Role     string `json:"role" binding:"omitempty,oneof=admin super_admin" example:"admin"`
}

// UpdateAdminStatusRequest suspends or restores an account.
type UpdateAdminStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=active suspended" example:"suspended"`
}

// UpdateAdminProfileRequest changes the signed-in admin's own profile.
type UpdateAdminProfileRequest struct {
	Name            *string `json:"name" binding:"omitempty,min=1,max=120"`
	CurrentPassword string  `json:"current_password"`
	NewPassword     *string `json:"new_password" binding:"omitempty,min=8"`
}

// ════════════════════════════════════════════════════════════
// Response Models
// ════════════════════════════════════════════════════════════

// AdminResponse is the public response for admin data (no password hash)
type AdminResponse struct {
	ID          uuid.UUID  `json:"id"`
	Email       string     `json:"email"`
	Name        string     `json:"name"`
	Role        string     `json:"role"`
	Status      string     `json:"status"`
	LastLoginAt *time.Time `json:"last_login_at"`
	JoinedAt    time.Time  `json:"joined_at"`
}

// AdminLoginResponse is the response after login
type AdminLoginResponse struct {
	Admin     AdminResponse `json:"admin"`
	Token     string        `json:"token"`
	ExpiresAt time.Time     `json:"expires_at"`
}

// ToResponse converts an Admin model to AdminResponse
func (a *Admin) ToResponse() AdminResponse {
	return AdminResponse{
		ID:          a.ID,
		Email:       a.Email,
		Name:        a.Name,
		Role:        a.Role,
		Status:      a.Status,
		LastLoginAt: a.LastLoginAt,
		JoinedAt:    a.JoinedAt,
	}
}
