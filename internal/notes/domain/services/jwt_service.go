package services

import (
	"errors"
	"time"
)

// Ошибки JWT.
var (
	ErrInvalidJWTToken    = errors.New("invalid JWT token")
	ErrExpiredJWTToken    = errors.New("JWT token has expired")
	ErrGeneratingJWTToken = errors.New("failed to generate JWT token")
)

// TokenType различает access и refresh токены.
type TokenType string

// Типы токенов.
const (
	AccessTokenType  TokenType = "access"
	RefreshTokenType TokenType = "refresh"
)

// JWTConfig содержит настройки JWT сервиса.
type JWTConfig struct {
	SecretKey       []byte
	Issuer          string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
}

// JWTClaims - доменное представление содержимого токена.
type JWTClaims struct {
	TokenID   string
	UserID    string
	Username  string
	Type      TokenType
	IssuedAt  time.Time
	ExpiresAt time.Time
}
