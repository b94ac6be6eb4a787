package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Emdad-Export/emdad-cms-backend/config"
	"github.com/Emdad-Export/emdad-cms-backend/models"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAdminSuspended     = errors.New("admin account is suspended")
	ErrAdminExists        = errors.New("admin already exists")
	ErrWeakPassword       = errors.New("password must be at least 8 characters")
	ErrAdminNotFound      = errors.New("admin not found")
)

// AdminAuthService handles admin authentication operations
type AdminAuthService struct{}

// NewAdminAuthService creates a new admin auth service
func NewAdminAuthService() *AdminAuthService {
	return &AdminAuthService{}
}

// ════════════════════════════════════════════════════════════
// Password Management
// ════════════════════════════════════════════════════════════

// HashPassword hashes a password using bcrypt
func (s *AdminAuthService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword checks if a password matches its bcrypt hash
func (s *AdminAuthService) VerifyPassword(hash, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// ValidatePassword checks if a password meets minimum requirements
func (s *AdminAuthService) ValidatePassword(password string) bool {
	return len(password) >= 8
}

// HashToken hashes a token using SHA256 for storage in database
func (s *AdminAuthService) HashToken(token string) string {
	hash := sha256.Sum256([]byte(token))
	return hex.EncodeToString(hash[:])
}

// ════════════════════════════════════════════════════════════
// Accounts
// ════════════════════════════════════════════════════════════

// Authenticate checks credentials and stamps the login time. Unknown e-mails
// and wrong passwords are indistinguishable to the caller.
func (s *AdminAuthService) Authenticate(ctx context.Context, email, password string) (*models.Admin, error) {
	var admin models.Admin
	err := config.CmsGorm.WithContext(ctx).
		Where("email = ?", normalizeEmail(email)).
		First(&admin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("load admin: %w", err)
	}

	if !s.VerifyPassword(admin.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	if admin.Status == models.AdminStatusSuspended {
		return nil, ErrAdminSuspended
	}

	now := time.Now()
	if err := config.CmsGorm.WithContext(ctx).
		Model(&admin).
		Update("last_login_at", now).Error; err != nil {
		return nil, fmt.Errorf("stamp login: %w", err)
	}
	admin.LastLoginAt = &now

	return &admin, nil
}

// CreateAdmin registers a new back office account.
func (s *AdminAuthService) CreateAdmin(ctx context.Context, email, name, password, role string) (*models.Admin, error) {
	if !s.ValidatePassword(password) {
		return nil, ErrWeakPassword
	}

	email = normalizeEmail(email)
	var count int64
	if err := config.CmsGorm.WithContext(ctx).
		Model(&models.Admin{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return nil, fmt.Errorf("check admin: %w", err)
	}
	if count > 0 {
		return nil, ErrAdminExists
	}

	hash, err := s.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	admin := models.Admin{
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		Role:         role,
	}
	if err := config.CmsGorm.WithContext(ctx).Create(&admin).Error; err != nil {
		return nil, fmt.Errorf("create admin: %w", err)
	}
	return &admin, nil
}

// ActiveAdmin loads an admin that may still use the back office.
func (s *AdminAuthService) ActiveAdmin(ctx context.Context, id uuid.UUID) (*models.Admin, error) {
	var admin models.Admin
	err := config.CmsGorm.WithContext(ctx).First(&admin, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrAdminNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load admin %s: %w", id, err)
	}
	if admin.Status == models.AdminStatusSuspended {
		return &admin, ErrAdminSuspended
	}
	return &admin, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ════════════════════════════════════════════════════════════
// Global Instance
// ════════════════════════════════════════════════════════════

var adminAuthService *AdminAuthService

// GetAdminAuthService returns the global admin auth service instance
func GetAdminAuthService() *AdminAuthService {
	if adminAuthService == nil {
		adminAuthService = NewAdminAuthService()
	}
	return adminAuthService
}

// HashAdminToken hashes a token using the global service
func HashAdminToken(token string) string {
	return GetAdminAuthService().HashToken(token)
}
