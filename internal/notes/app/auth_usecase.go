package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gonotes/internal/notes/domain/entities"
	"gonotes/internal/notes/domain/services"
	"gonotes/internal/notes/ports/api"
	"gonotes/internal/notes/ports/repositories"
	svc "gonotes/internal/notes/ports/services"
	"gonotes/pkg/logger"

	"go.uber.org/zap"
)

const (
	methodLogin          = "Login"
	methodRefreshTokens  = "RefreshTokens"
	methodLogout         = "Logout"
	methodAuthenticate   = "Authenticate"
	methodGenerateTokens = "generateTokenPair"

	msgLoginAttempt         = "login attempt"
	msgLoginNonExistent     = "login attempt with non-existent username"
	msgInvalidPasswordAuth  = "invalid password provided"
	msgUserLoggedIn         = "user logged in successfully"
	msgRefreshingTokens     = "refreshing tokens"
	msgRevokedTokenAttempt  = "attempt to use revoked token"
	msgTokenOwnerMismatch   = "refresh token owner mismatch"
	msgOldTokenRevoked      = "old token consumed"
	msgTokensRefreshed      = "tokens refreshed successfully"
	msgProcessingLogout     = "processing logout request"
	msgUserLoggedOut        = "user logged out successfully"
	msgTokenPairGenerated   = "token pair generated successfully"
	msgEmptyAccessToken     = "empty access token provided"
	msgInvalidAccessToken   = "invalid access token"
	msgRequestAuthenticated = "request authenticated"

	msgErrFindingUser           = "error finding user by username"
	msgErrVerifyingPassword     = "error verifying password"
	msgErrGenerateLoginTokens   = "failed to generate tokens on login"
	msgErrInvalidRefreshToken   = "invalid refresh token"
	msgErrConsumingRefreshToken = "failed to consume refresh token"
	msgErrFindingUserForToken   = "failed to find user for refresh token"
	msgErrGenerateRefreshTokens = "failed to generate new tokens during refresh"
	msgErrRevokingRefreshToken  = "failed to revoke refresh token"
	msgErrGenerateAccessToken   = "failed to generate access token"
	msgErrGenerateRefreshToken  = "failed to generate refresh token"
	msgErrStoreRefreshToken     = "failed to store refresh token"

	errCtxInvalidCredentials     = "invalid credentials"
	errCtxFindingUser            = "finding user"
	errCtxVerifyingPassword      = "verifying password"
	errCtxGeneratingTokens       = "generating tokens"
	errCtxValidatingRefreshToken = "validating refresh token"
	errCtxConsumingRefreshToken  = "consuming refresh token"
	errCtxTokenRevoked           = "token revoked"
	errCtxGeneratingNewTokens    = "generating new tokens"
	errCtxRevokingToken          = "revoking token"
	errCtxGeneratingAccessToken  = "generating access token"
	errCtxGeneratingRefreshToken = "generating refresh token"
	errCtxStoringRefreshToken    = "storing refresh token"
	errCtxValidatingAccessToken  = "validating access token"
)

// AuthUseCaseImpl реализует интерфейс AuthUseCase.
type AuthUseCaseImpl struct {
	userRepo    repositories.UserRepository
	tokenRepo   repositories.TokenRepository
	passwordSvc svc.PasswordService
	tokenSvc    svc.TokenService
}

// NewAuthUseCase создает новый экземпляр сервиса аутентификации.
func NewAuthUseCase(
	userRepo repositories.UserRepository,
	tokenRepo repositories.TokenRepository,
	passwordSvc svc.PasswordService,
	tokenSvc svc.TokenService,
) api.AuthUseCase {
	return &AuthUseCaseImpl{
		userRepo:    userRepo,
		tokenRepo:   tokenRepo,
		passwordSvc: passwordSvc,
		tokenSvc:    tokenSvc,
	}
}

// Login аутентифицирует пользователя по имени и паролю.
func (a *AuthUseCaseImpl) Login(ctx context.Context, username, password string) (*services.TokenPair, error) {
	username = strings.TrimSpace(username)
	log := logger.Log(ctx).With(zap.String("method", methodLogin), zap.String("username", username))
	log.Debug(ctx, msgLoginAttempt)

	if username == "" || password == "" {
		return nil, fmt.Errorf("%s: %w", errCtxInvalidCredentials, entities.ErrInvalidCredentials)
	}

	user, err := a.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			log.Debug(ctx, msgLoginNonExistent)
			a.passwordSvc.CompareWithDummy(ctx, password)
			return nil, fmt.Errorf("%s: %w", errCtxInvalidCredentials, entities.ErrInvalidCredentials)
		}
		log.Error(ctx, msgErrFindingUser, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxFindingUser, err)
	}

	valid, err := a.passwordSvc.Verify(ctx, password, user.PasswordHash)
	if err != nil {
		log.Error(ctx, msgErrVerifyingPassword, zap.Error(err), zap.String("userID", user.ID))
		return nil, fmt.Errorf("%s: %w", errCtxVerifyingPassword, err)
	}
	if !valid {
		log.Debug(ctx, msgInvalidPasswordAuth, zap.String("userID", user.ID))
		return nil, fmt.Errorf("%s: %w", errCtxInvalidCredentials, entities.ErrInvalidCredentials)
	}

	tokenPair, err := a.generateTokenPair(ctx, user)
	if err != nil {
		log.Error(ctx, msgErrGenerateLoginTokens, zap.Error(err), zap.String("userID", user.ID))
		return nil, fmt.Errorf("%s: %w", errCtxGeneratingTokens, err)
	}

	log.Info(ctx, msgUserLoggedIn, zap.String("userID", user.ID))
	return tokenPair, nil
}

// RefreshTokens выдает новую пару токенов и отзывает предъявленный refresh-токен.
func (a *AuthUseCaseImpl) RefreshTokens(ctx context.Context, refreshToken string) (*services.TokenPair, error) {
	log := logger.Log(ctx).With(zap.String("method", methodRefreshTokens))
	log.Debug(ctx, msgRefreshingTokens)

	claims, err := a.tokenSvc.ValidateRefreshToken(ctx, refreshToken)
	if err != nil {
		log.Debug(ctx, msgErrInvalidRefreshToken, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxValidatingRefreshToken, services.ErrInvalidRefreshToken)
	}

	log = log.With(zap.String("userID", claims.UserID))

	// Токен потребляется до выпуска новой пары: из одновременных запросов с одним токеном проходит один.
	stored, err := a.tokenRepo.ConsumeRefreshToken(ctx, claims.TokenID)
	if err != nil {
		if errors.Is(err, services.ErrRevokedRefreshToken) {
			log.Debug(ctx, msgRevokedTokenAttempt)
			return nil, fmt.Errorf("%s: %w", errCtxTokenRevoked, err)
		}
		log.Error(ctx, msgErrConsumingRefreshToken, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxConsumingRefreshToken, err)
	}
	log.Debug(ctx, msgOldTokenRevoked)

	if stored.UserID != claims.UserID {
		log.Debug(ctx, msgTokenOwnerMismatch)
		return nil, fmt.Errorf("%s: %w", errCtxValidatingRefreshToken, services.ErrInvalidRefreshToken)
	}

	user, err := a.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		log.Error(ctx, msgErrFindingUserForToken, zap.Error(err))
		if errors.Is(err, entities.ErrUserNotFound) {
			return nil, fmt.Errorf("%s: %w", errCtxFindingUser, services.ErrInvalidRefreshToken)
		}
		return nil, fmt.Errorf("%s: %w", errCtxFindingUser, err)
	}

	tokenPair, err := a.generateTokenPair(ctx, user)
	if err != nil {
		log.Error(ctx, msgErrGenerateRefreshTokens, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxGeneratingNewTokens, err)
	}

	log.Info(ctx, msgTokensRefreshed)
	return tokenPair, nil
}

// Logout отзывает refresh-токен. Повторный вызов с тем же токеном не является ошибкой.
func (a *AuthUseCaseImpl) Logout(ctx context.Context, refreshToken string) error {
	log := logger.Log(ctx).With(zap.String("method", methodLogout))
	log.Debug(ctx, msgProcessingLogout)

	claims, err := a.tokenSvc.ValidateRefreshToken(ctx, refreshToken)
	if err != nil {
		log.Debug(ctx, msgErrInvalidRefreshToken, zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxValidatingRefreshToken, services.ErrInvalidRefreshToken)
	}

	log = log.With(zap.String("userID", claims.UserID))

	if err := a.tokenRepo.RevokeRefreshToken(ctx, claims.TokenID); err != nil {
		log.Error(ctx, msgErrRevokingRefreshToken, zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxRevokingToken, err)
	}

	log.Info(ctx, msgUserLoggedOut)
	return nil
}

// Authenticate проверяет access-токен и возвращает личность его владельца.
func (a *AuthUseCaseImpl) Authenticate(ctx context.Context, accessToken string) (services.Identity, error) {
	log := logger.Log(ctx).With(zap.String("method", methodAuthenticate))

	if accessToken == "" {
		log.Debug(ctx, msgEmptyAccessToken)
		return services.Identity{}, fmt.Errorf("%s: %w", errCtxValidatingAccessToken, services.ErrUnauthenticated)
	}

	claims, err := a.tokenSvc.ValidateAccessToken(ctx, accessToken)
	if err != nil {
		log.Debug(ctx, msgInvalidAccessToken, zap.Error(err))
		return services.Identity{}, fmt.Errorf("%s: %w", errCtxValidatingAccessToken, services.ErrUnauthenticated)
	}

	log.Debug(ctx, msgRequestAuthenticated, zap.String("userID", claims.UserID))
	return services.Identity{UserID: claims.UserID, Username: claims.Username}, nil
}

// Вспомогательная функция для генерации пары токенов.
func (a *AuthUseCaseImpl) generateTokenPair(ctx context.Context, user *entities.User) (*services.TokenPair, error) {
	log := logger.Log(ctx).With(
		zap.String("method", methodGenerateTokens),
		zap.String("userID", user.ID),
	)

	accessToken, accessClaims, err := a.tokenSvc.GenerateAccessToken(ctx, user.ID, user.Username)
	if err != nil {
		log.Error(ctx, msgErrGenerateAccessToken, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxGeneratingAccessToken, services.ErrTokenGenerationFailed)
	}

	refreshToken, refreshClaims, err := a.tokenSvc.GenerateRefreshToken(ctx, user.ID, user.Username)
	if err != nil {
		log.Error(ctx, msgErrGenerateRefreshToken, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxGeneratingRefreshToken, services.ErrTokenGenerationFailed)
	}

	if err := a.tokenRepo.StoreRefreshToken(ctx, &services.RefreshToken{
		ID:        refreshClaims.TokenID,
		UserID:    user.ID,
		ExpiresAt: refreshClaims.ExpiresAt,
	}); err != nil {
		log.Error(ctx, msgErrStoreRefreshToken, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxStoringRefreshToken, err)
	}

	log.Debug(ctx, msgTokenPairGenerated)

	return &services.TokenPair{
		UserID:       user.ID,
		Username:     user.Username,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    accessClaims.ExpiresAt,
	}, nil
}
