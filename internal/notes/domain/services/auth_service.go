// Package services содержит доменные типы аутентификации.
package services

import (
	"errors"
	"time"
)

// Ошибки домена аутентификации.
var (
	ErrInvalidRefreshToken   = errors.New("invalid refresh token")
	ErrRevokedRefreshToken   = errors.New("refresh token has been revoked")
	ErrTokenGenerationFailed = errors.New("failed to generate authentication tokens")
	ErrUnauthenticated       = errors.New("authentication credentials were not provided or are invalid")
)

// TokenPair представляет пару токенов, выданную пользователю.
type TokenPair struct {
	UserID       string
	Username     string
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
}

// RefreshToken представляет сохраненный refresh-токен.
type RefreshToken struct {
	ID        string
	UserID    string
	ExpiresAt time.Time
}

// Identity - аутентифицированный пользователь текущего запроса.
type Identity struct {
	UserID   string
	Username string
}
