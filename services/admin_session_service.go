package services

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/Emdad-Export/emdad-cms-backend/config"
	"github.com/Emdad-Export/emdad-cms-backend/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrSessionInvalid = errors.New("session expired or revoked")

// AdminSessionService handles admin session operations
type AdminSessionService struct{}

// NewAdminSessionService creates a new session service
func NewAdminSessionService() *AdminSessionService {
	return &AdminSessionService{}
}

// CreateSession records a freshly issued token.
func (s *AdminSessionService) CreateSession(
	ctx context.Context,
	adminID uuid.UUID,
	token string,
	expiresAt time.Time,
	ipAddress string,
	userAgent string,
) (*models.AdminSession, error) {
	session := &models.AdminSession{
		AdminID:   adminID,
		TokenHash: HashAdminToken(token),
		IPAddress: ipAddress,
		UserAgent: userAgent,
		ExpiresAt: expiresAt,
	}

	if err := config.CmsGorm.WithContext(ctx).Create(session).Error; err != nil {
		log.Printf("[session] failed to create session: %v", err)
		return nil, err
	}

	log.Printf("[session] created session %s for admin %s", session.ID, adminID)
	return session, nil
}

// Touch validates the session behind a token and bumps its last activity.
func (s *AdminSessionService) Touch(ctx context.Context, token string) (*models.AdminSession, error) {
	var session models.AdminSession
	err := config.CmsGorm.WithContext(ctx).
		Where("token_hash = ?", HashAdminToken(token)).
		First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSessionInvalid
	}
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if !session.Valid(now) {
		return nil, ErrSessionInvalid
	}

	if err := config.CmsGorm.WithContext(ctx).
		Model(&session).
		Update("last_activity_at", now).Error; err != nil {
		log.Printf("[session] failed to update session activity: %v", err)
	}
	return &session, nil
}

// Revoke ends the session behind a token (logout).
func (s *AdminSessionService) Revoke(ctx context.Context, token string) error {
	if err := config.CmsGorm.WithContext(ctx).
		Model(&models.AdminSession{}).
		Where("token_hash = ? AND revoked_at IS NULL", HashAdminToken(token)).
		Update("revoked_at", time.Now()).Error; err != nil {
		log.Printf("[session] failed to revoke session: %v", err)
		return err
	}
	return nil
}

// CleanupExpiredSessions removes sessions that can no longer authenticate.
func (s *AdminSessionService) CleanupExpiredSessions(ctx context.Context) (int64, error) {
	result := config.CmsGorm.WithContext(ctx).
		Where("expires_at < ? OR revoked_at IS NOT NULL", time.Now()).
		Delete(&models.AdminSession{})

	if result.Error != nil {
		log.Printf("[session] failed to cleanup expired sessions: %v", result.Error)
		return 0, result.Error
	}

	log.Printf("[session] cleaned up %d expired sessions", result.RowsAffected)
	return result.RowsAffected, nil
}

// Global instance
var adminSessionService *AdminSessionService

// GetAdminSessionService returns the global session service instance
func GetAdminSessionService() *AdminSessionService {
	if adminSessionService == nil {
		adminSessionService = NewAdminSessionService()
	}
	return adminSessionService
}
