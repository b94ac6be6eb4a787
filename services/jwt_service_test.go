package services

import (
	"testing"
	"time"

	"github.com/Emdad-Export/emdad-cms-backend/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTService_RoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret")
	admin := &models.Admin{ID: uuid.New(), Email: "desk@emdad-export.com", Role: models.AdminRoleSuperAdmin}

	token, expiresAt, err := svc.GenerateAdminJWT(admin)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(models.AdminSessionTTL), expiresAt, time.Minute)

	claims, err := svc.VerifyAdminJWT(token)
	require.NoError(t, err)
	assert.Equal(t, admin.ID.String(), claims.AdminID)
	assert.Equal(t, admin.Email, claims.Email)
	assert.Equal(t, models.AdminRoleSuperAdmin, claims.Role)
}

func TestJWTService_RejectsForeignSignature(t *testing.T) {
	admin := &models.Admin{ID: uuid.New(), Email: "desk@emdad-export.com"}
	token, _, err := NewJWTService("one").GenerateAdminJWT(admin)
	require.NoError(t, err)

	_, err = NewJWTService("two").VerifyAdminJWT(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsExpired(t *testing.T) {
	svc := &JWTService{secretKey: "test-secret", ttl: -time.Minute}
	token, _, err := svc.GenerateAdminJWT(&models.Admin{ID: uuid.New(), Email: "desk@emdad-export.com"})
	require.NoError(t, err)

	_, err = svc.VerifyAdminJWT(token)
	assert.Error(t, err)
}

func TestJWTService_RequiresAdmin(t *testing.T) {
	_, _, err := NewJWTService("s").GenerateAdminJWT(nil)
	assert.Error(t, err)
}
