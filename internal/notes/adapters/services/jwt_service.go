package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"gonotes/internal/notes/domain/services"
	svc "gonotes/internal/notes/ports/services"
	"gonotes/pkg/logger"
)

// Константы для работы с JWT.
const (
	methodGenerateAccessToken  = "GenerateAccessToken"
	methodGenerateRefreshToken = "GenerateRefreshToken"
	methodValidateAccessToken  = "ValidateAccessToken"
	methodValidateRefreshToken = "ValidateRefreshToken"
	msgGeneratingToken         = "generating token"
	msgValidatingToken         = "validating token"
	msgTokenGenerated          = "token generated successfully"
	msgTokenValidated          = "token validated successfully"
	msgInvalidToken            = "invalid token format"
	msgTokenExpired            = "token has expired"
	msgWrongTokenType          = "unexpected token type"
	msgEmptyUserID             = "user_id claim is empty"
	msgEmptySecret             = "empty secret key provided"
	//nolint:gosec
	msgErrSigningToken = "error signing token"
	//nolint:gosec
	msgErrParsingToken    = "error parsing token"
	errCtxGeneratingToken = "generating token"
	errCtxParsingToken    = "parsing token"
	errCtxValidatingToken = "validating token"
)

// Ошибки JWT сервиса.
var (
	ErrInvalidAlgorithm = errors.New("invalid signing algorithm")
	ErrEmptySecretKey   = errors.New("empty secret key")
)

// Claims используется для адаптации между доменной моделью и библиотекой JWT.
type Claims struct {
	UserID   string             `json:"user_id"`
	Username string             `json:"username"`
	Type     services.TokenType `json:"token_type"`
	jwt.RegisteredClaims
}

// ServiceJWT реализует интерфейс TokenService.
type ServiceJWT struct {
	config services.JWTConfig
}

// NewJWT создает новый экземпляр сервиса JWT.
func NewJWT(config services.JWTConfig) svc.TokenService {
	return &ServiceJWT{config: config}
}

func domainToJWTClaims(claims services.JWTClaims, issuer string) Claims {
	return Claims{
		UserID:   claims.UserID,
		Username: claims.Username,
		Type:     claims.Type,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        claims.TokenID,
			Issuer:    issuer,
			Subject:   claims.UserID,
			IssuedAt:  jwt.NewNumericDate(claims.IssuedAt),
			ExpiresAt: jwt.NewNumericDate(claims.ExpiresAt),
		},
	}
}

func jwtToDomainClaims(claims *Claims) services.JWTClaims {
	var expiresAt, issuedAt time.Time
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}
	if claims.IssuedAt != nil {
		issuedAt = claims.IssuedAt.Time
	}

	return services.JWTClaims{
		TokenID:   claims.ID,
		UserID:    claims.UserID,
		Username:  claims.Username,
		Type:      claims.Type,
		IssuedAt:  issuedAt,
		ExpiresAt: expiresAt,
	}
}

// GenerateAccessToken генерирует JWT токен доступа.
func (s *ServiceJWT) GenerateAccessToken(ctx context.Context, userID, username string) (string, services.JWTClaims, error) {
	return s.generate(ctx, methodGenerateAccessToken, userID, username, services.AccessTokenType, s.config.AccessTokenTTL)
}

// GenerateRefreshToken генерирует refresh токен с уникальным идентификатором.
func (s *ServiceJWT) GenerateRefreshToken(ctx context.Context, userID, username string) (string, services.JWTClaims, error) {
	return s.generate(ctx, methodGenerateRefreshToken, userID, username, services.RefreshTokenType, s.config.RefreshTokenTTL)
}

// ValidateAccessToken проверяет токен доступа.
func (s *ServiceJWT) ValidateAccessToken(ctx context.Context, tokenString string) (services.JWTClaims, error) {
	return s.validate(ctx, methodValidateAccessToken, tokenString, services.AccessTokenType)
}

// ValidateRefreshToken проверяет refresh токен.
func (s *ServiceJWT) ValidateRefreshToken(ctx context.Context, tokenString string) (services.JWTClaims, error) {
	return s.validate(ctx, methodValidateRefreshToken, tokenString, services.RefreshTokenType)
}

func (s *ServiceJWT) generate(
	ctx context.Context,
	method, userID, username string,
	tokenType services.TokenType,
	ttl time.Duration,
) (string, services.JWTClaims, error) {
	log := logger.Log(ctx).With(
		zap.String("method", method),
		zap.String("userID", userID),
	)
	log.Debug(ctx, msgGeneratingToken)

	if len(s.config.SecretKey) == 0 {
		log.Error(ctx, msgEmptySecret)
		return "", services.JWTClaims{}, fmt.Errorf("%s: %w: %w", errCtxGeneratingToken, services.ErrGeneratingJWTToken, ErrEmptySecretKey)
	}

	now := time.Now()
	domainClaims := services.JWTClaims{
		TokenID:   uuid.NewString(),
		UserID:    userID,
		Username:  username,
		Type:      tokenType,
		IssuedAt:  now,
		ExpiresAt: now.Add(ttl),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, domainToJWTClaims(domainClaims, s.config.Issuer))

	tokenString, err := token.SignedString(s.config.SecretKey)
	if err != nil {
		log.Error(ctx, msgErrSigningToken, zap.Error(err))
		return "", services.JWTClaims{}, fmt.Errorf("%s: %w: %w", errCtxGeneratingToken, services.ErrGeneratingJWTToken, err)
	}

	log.Debug(ctx, msgTokenGenerated, zap.Time("expiresAt", domainClaims.ExpiresAt))
	return tokenString, domainClaims, nil
}

func (s *ServiceJWT) validate(
	ctx context.Context,
	method, tokenString string,
	expected services.TokenType,
) (services.JWTClaims, error) {
	log := logger.Log(ctx).With(zap.String("method", method))
	log.Debug(ctx, msgValidatingToken)

	opts := []jwt.ParserOption{jwt.WithExpirationRequired()}
	if s.config.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.config.Issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAlgorithm, token.Header["alg"])
		}
		return s.config.SecretKey, nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			log.Debug(ctx, msgTokenExpired)
			return services.JWTClaims{}, fmt.Errorf("%s: %w", errCtxValidatingToken, services.ErrExpiredJWTToken)
		}
		log.Debug(ctx, msgErrParsingToken, zap.Error(err))
		return services.JWTClaims{}, fmt.Errorf("%s: %w: %w", errCtxParsingToken, services.ErrInvalidJWTToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		log.Debug(ctx, msgInvalidToken)
		return services.JWTClaims{}, fmt.Errorf("%s: %w", errCtxValidatingToken, services.ErrInvalidJWTToken)
	}

	if claims.Type != expected {
		log.Debug(ctx, msgWrongTokenType, zap.String("type", string(claims.Type)))
		return services.JWTClaims{}, fmt.Errorf("%s: %w: unexpected type %q", errCtxValidatingToken, services.ErrInvalidJWTToken, claims.Type)
	}

	if claims.UserID == "" {
		log.Debug(ctx, msgEmptyUserID)
		return services.JWTClaims{}, fmt.Errorf("%s: %w: empty user_id", errCtxValidatingToken, services.ErrInvalidJWTToken)
	}

	log.Debug(ctx, msgTokenValidated, zap.String("userID", claims.UserID))
	return jwtToDomainClaims(claims), nil
}
