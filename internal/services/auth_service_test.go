// internal/services/auth_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bhavik-1602/misha-barnd-factory/internal/apperrors"
	"github.com/Bhavik-1602/misha-barnd-factory/internal/config"
	"github.com/Bhavik-1602/misha-barnd-factory/internal/models"
	"github.com/Bhavik-1602/misha-barnd-factory/internal/utils"
)

func newTestAuthService(t *testing.T) (*AuthService, *models.AdminUser) {
	t.Helper()
	db := setupTestDB(t)

	admin := &models.AdminUser{Email: "admin@example.com", Name: "Admin", IsActive: true}
	require.NoError(t, admin.SetPassword("correct-horse"))
	require.NoError(t, db.Create(admin).Error)

	cfg := &config.Config{JWT: config.JWTConfig{AccessTokenTTL: 1}}
	return NewAuthService(db, cfg), admin
}

func TestLoginIssuesValidToken(t *testing.T) {
	svc, admin := newTestAuthService(t)

	resp, err := svc.Login(&LoginRequest{Email: "admin@example.com", Password: "correct-horse"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)

	claims, err := utils.ValidateJWT(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, admin.ID.String(), claims.UserID)
	assert.Equal(t, admin.Email, claims.Email)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.Login(&LoginRequest{Email: "admin@example.com", Password: "battery-staple"})
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindBadRequest))
}

func TestLoginUnknownAccount(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.Login(&LoginRequest{Email: "ghost@example.com", Password: "whatever"})
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindBadRequest))
}

func TestLoginInactiveAccountRejected(t *testing.T) {
	svc, admin := newTestAuthService(t)
	require.NoError(t, svc.db.Model(admin).Update("is_active", false).Error)

	_, err := svc.Login(&LoginRequest{Email: "admin@example.com", Password: "correct-horse"})
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindBadRequest))
}

func TestLoginValidatesRequest(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.Login(&LoginRequest{Email: "not-an-email", Password: "x"})
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindBadRequest))
}
