// Package services defines service interfaces for the notes service.
package services

import (
	"context"

	"gonotes/internal/notes/domain/services"
)

// TokenService определяет операции с JWT токенами.
type TokenService interface {
	GenerateAccessToken(ctx context.Context, userID, username string) (string, services.JWTClaims, error)
	GenerateRefreshToken(ctx context.Context, userID, username string) (string, services.JWTClaims, error)
	ValidateAccessToken(ctx context.Context, token string) (services.JWTClaims, error)
	ValidateRefreshToken(ctx context.Context, token string) (services.JWTClaims, error)
}
