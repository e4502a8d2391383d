package service

import (
	"context"
	"testing"
	"time"

	"quizforge/internal/config"
	"quizforge/internal/domain"
	"quizforge/internal/repository/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func authTestConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			SecretKey:       "0123456789abcdef0123456789abcdef",
			AccessTokenTTL:  15 * time.Minute,
			RefreshTokenTTL: 24 * time.Hour,
		},
		GoogleOAuth: config.GoogleOAuthConfig{
			ClientID:     "client-id",
			ClientSecret: "client-secret",
			RedirectURL:  "http://localhost:8080/api/auth/google/callback",
		},
	}
}

func newTestAuthService(t *testing.T, userRepo *MockUserRepository) AuthService {
	t.Helper()
	svc, err := NewAuthService(userRepo, authTestConfig())
	require.NoError(t, err)
	return svc
}

func TestNewAuthService_RejectsShortSecret(t *testing.T) {
	cfg := authTestConfig()
	cfg.JWT.SecretKey = "too-short"

	_, err := NewAuthService(new(MockUserRepository), cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least 32 bytes")
}

func TestAuthService_GetGoogleLoginURL(t *testing.T) {
	svc := newTestAuthService(t, new(MockUserRepository))

	url := svc.GetGoogleLoginURL("random-state")

	assert.Contains(t, url, "state=random-state")
	assert.Contains(t, url, "access_type=offline")
	assert.Contains(t, url, "client_id=client-id")
}

func TestAuthService_CreateAndValidateJWT(t *testing.T) {
	svc := newTestAuthService(t, new(MockUserRepository))
	user := &models.User{ID: "01USER"}

	token, err := svc.CreateJWT(context.Background(), user, 15*time.Minute, "access")
	require.NoError(t, err)

	claims, err := svc.ValidateJWT(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "01USER", claims.UserID)
	assert.Equal(t, "access", claims.TokenType)
	assert.Equal(t, "01USER", claims.Subject)
}

func TestAuthService_ValidateJWT_Expired(t *testing.T) {
	svc := newTestAuthService(t, new(MockUserRepository))
	user := &models.User{ID: "01USER"}

	token, err := svc.CreateJWT(context.Background(), user, -time.Minute, "access")
	require.NoError(t, err)

	_, err = svc.ValidateJWT(context.Background(), token)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidJWTToken)
}

func TestAuthService_ValidateJWT_WrongSecret(t *testing.T) {
	svc := newTestAuthService(t, new(MockUserRepository))

	other := authTestConfig()
	other.JWT.SecretKey = "ffffffffffffffffffffffffffffffff"
	otherSvc, err := NewAuthService(new(MockUserRepository), other)
	require.NoError(t, err)

	token, err := otherSvc.CreateJWT(context.Background(), &models.User{ID: "01USER"}, time.Minute, "access")
	require.NoError(t, err)

	_, err = svc.ValidateJWT(context.Background(), token)
	assert.ErrorIs(t, err, ErrInvalidJWTToken)
}

func TestAuthService_RefreshToken(t *testing.T) {
	userRepo := new(MockUserRepository)
	userRepo.On("GetUserByID", mock.Anything, "01USER").Return(&models.User{ID: "01USER"}, nil)
	svc := newTestAuthService(t, userRepo)

	refreshToken, err := svc.CreateJWT(context.Background(), &models.User{ID: "01USER"}, time.Hour, "refresh")
	require.NoError(t, err)

	newAccess, newRefresh, err := svc.RefreshToken(context.Background(), refreshToken)
	require.NoError(t, err)

	accessClaims, err := svc.ValidateJWT(context.Background(), newAccess)
	require.NoError(t, err)
	assert.Equal(t, "access", accessClaims.TokenType)

	refreshClaims, err := svc.ValidateJWT(context.Background(), newRefresh)
	require.NoError(t, err)
	assert.Equal(t, "refresh", refreshClaims.TokenType)
}

func TestAuthService_RefreshToken_RejectsAccessToken(t *testing.T) {
	svc := newTestAuthService(t, new(MockUserRepository))

	accessToken, err := svc.CreateJWT(context.Background(), &models.User{ID: "01USER"}, time.Hour, "access")
	require.NoError(t, err)

	_, _, err = svc.RefreshToken(context.Background(), accessToken)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a refresh token")
}

func TestAuthService_RefreshToken_UserNotFound(t *testing.T) {
	userRepo := new(MockUserRepository)
	userRepo.On("GetUserByID", mock.Anything, "01GONE").Return(nil, nil)
	svc := newTestAuthService(t, userRepo)

	refreshToken, err := svc.CreateJWT(context.Background(), &models.User{ID: "01GONE"}, time.Hour, "refresh")
	require.NoError(t, err)

	_, _, err = svc.RefreshToken(context.Background(), refreshToken)
	require.Error(t, err)
	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeNotFound, domainErr.Code)
}

func TestAuthService_EncryptDecryptToken(t *testing.T) {
	svc := newTestAuthService(t, new(MockUserRepository))

	encrypted, err := svc.EncryptToken("ya29.google-access-token")
	require.NoError(t, err)
	assert.NotEqual(t, "ya29.google-access-token", encrypted)

	decrypted, err := svc.DecryptToken(encrypted)
	require.NoError(t, err)
	assert.Equal(t, "ya29.google-access-token", decrypted)
}

func TestAuthService_EncryptToken_EmptyPassesThrough(t *testing.T) {
	svc := newTestAuthService(t, new(MockUserRepository))

	encrypted, err := svc.EncryptToken("")
	require.NoError(t, err)
	assert.Empty(t, encrypted)
}

func TestAuthService_DecryptToken_Garbage(t *testing.T) {
	svc := newTestAuthService(t, new(MockUserRepository))

	_, err := svc.DecryptToken("not-base64!!!")
	assert.ErrorIs(t, err, ErrDecryptionFailed)
}
