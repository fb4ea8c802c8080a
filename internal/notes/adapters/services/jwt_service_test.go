package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adapters "gonotes/internal/notes/adapters/services"
	"gonotes/internal/notes/domain/services"
)

const (
	testSecret   = "test-secret-key"
	testIssuer   = "gonotes-test"
	testUserID   = "user-123"
	testUsername = "alice"
)

func newTestJWT(secret string, accessTTL, refreshTTL time.Duration) *adapters.ServiceJWT {
	return adapters.NewJWT(services.JWTConfig{
		SecretKey:       []byte(secret),
		Issuer:          testIssuer,
		AccessTokenTTL:  accessTTL,
		RefreshTokenTTL: refreshTTL,
	}).(*adapters.ServiceJWT)
}

func TestGenerateAndValidateAccessToken(t *testing.T) {
	svc := newTestJWT(testSecret, 15*time.Minute, 24*time.Hour)
	ctx := context.Background()

	token, issued, err := svc.GenerateAccessToken(ctx, testUserID, testUsername)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Equal(t, services.AccessTokenType, issued.Type)
	assert.NotEmpty(t, issued.TokenID)
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), issued.ExpiresAt, 5*time.Second)

	claims, err := svc.ValidateAccessToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, testUserID, claims.UserID)
	assert.Equal(t, testUsername, claims.Username)
	assert.Equal(t, issued.TokenID, claims.TokenID)
	assert.Equal(t, services.AccessTokenType, claims.Type)
}

func TestRefreshTokensHaveUniqueIDs(t *testing.T) {
	svc := newTestJWT(testSecret, time.Minute, time.Hour)
	ctx := context.Background()

	_, first, err := svc.GenerateRefreshToken(ctx, testUserID, testUsername)
	require.NoError(t, err)
	_, second, err := svc.GenerateRefreshToken(ctx, testUserID, testUsername)
	require.NoError(t, err)

	assert.NotEqual(t, first.TokenID, second.TokenID)
}

func TestTokenTypesAreNotInterchangeable(t *testing.T) {
	svc := newTestJWT(testSecret, time.Minute, time.Hour)
	ctx := context.Background()

	access, _, err := svc.GenerateAccessToken(ctx, testUserID, testUsername)
	require.NoError(t, err)
	refresh, _, err := svc.GenerateRefreshToken(ctx, testUserID, testUsername)
	require.NoError(t, err)

	_, err = svc.ValidateRefreshToken(ctx, access)
	require.ErrorIs(t, err, services.ErrInvalidJWTToken)

	_, err = svc.ValidateAccessToken(ctx, refresh)
	require.ErrorIs(t, err, services.ErrInvalidJWTToken)

	claims, err := svc.ValidateRefreshToken(ctx, refresh)
	require.NoError(t, err)
	assert.Equal(t, services.RefreshTokenType, claims.Type)
}

func TestValidateAccessTokenErrors(t *testing.T) {
	ctx := context.Background()
	svc := newTestJWT(testSecret, time.Minute, time.Hour)

	expired, _, err := newTestJWT(testSecret, -time.Minute, time.Hour).GenerateAccessToken(ctx, testUserID, testUsername)
	require.NoError(t, err)

	foreign, _, err := newTestJWT("another-secret", time.Minute, time.Hour).GenerateAccessToken(ctx, testUserID, testUsername)
	require.NoError(t, err)

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, adapters.Claims{
		UserID: testUserID,
		Type:   services.AccessTokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    testIssuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	noUser, err := jwt.NewWithClaims(jwt.SigningMethodHS256, adapters.Claims{
		Type: services.AccessTokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    testIssuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		},
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	tests := []struct {
		name        string
		token       string
		expectedErr error
	}{
		{name: "expired token", token: expired, expectedErr: services.ErrExpiredJWTToken},
		{name: "wrong signature", token: foreign, expectedErr: services.ErrInvalidJWTToken},
		{name: "none algorithm", token: noneToken, expectedErr: services.ErrInvalidJWTToken},
		{name: "missing user id", token: noUser, expectedErr: services.ErrInvalidJWTToken},
		{name: "garbage", token: "not.a.token", expectedErr: services.ErrInvalidJWTToken},
		{name: "empty", token: "", expectedErr: services.ErrInvalidJWTToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := svc.ValidateAccessToken(ctx, tt.token)
			require.ErrorIs(t, err, tt.expectedErr)
			assert.Empty(t, claims.UserID)
		})
	}
}

func TestGenerateWithEmptySecret(t *testing.T) {
	svc := newTestJWT("", time.Minute, time.Hour)

	token, _, err := svc.GenerateAccessToken(context.Background(), testUserID, testUsername)
	require.ErrorIs(t, err, services.ErrGeneratingJWTToken)
	require.ErrorIs(t, err, adapters.ErrEmptySecretKey)
	assert.Empty(t, token)
}

func TestServiceFactory(t *testing.T) {
	factory := adapters.NewServiceFactory(services.JWTConfig{SecretKey: []byte(testSecret)}, 4)

	hasher, ok := factory.PasswordService().(*adapters.BcryptHasher)
	require.True(t, ok)
	assert.Equal(t, 4, hasher.Cost())
	assert.IsType(t, &adapters.ServiceJWT{}, factory.TokenService())
}
