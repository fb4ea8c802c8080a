package config

import (
	"errors"
	"time"

	"gonotes/internal/notes/domain/services"
)

// MinSecretKeyLength - минимальная длина ключа подписи HS256.
const MinSecretKeyLength = 32

// Ошибки конфигурации JWT.
var (
	ErrShortSecretKey = errors.New("jwt secret key must be at least 32 bytes")
	ErrInvalidTTL     = errors.New("token ttl must be positive")
)

// JWTConfig содержит настройки для JWT токенов и хеширования паролей.
type JWTConfig struct {
	SecretKey       string        `yaml:"secret_key" env:"NOTES_JWT_SECRET_KEY" env-required:"true"`
	Issuer          string        `yaml:"issuer" env:"NOTES_JWT_ISSUER" env-default:"gonotes"`
	AccessTokenTTL  time.Duration `yaml:"access_token_ttl" env:"NOTES_JWT_ACCESS_TOKEN_TTL" env-default:"15m"`
	RefreshTokenTTL time.Duration `yaml:"refresh_token_ttl" env:"NOTES_JWT_REFRESH_TOKEN_TTL" env-default:"24h"`
	BCryptCost      int           `yaml:"bcrypt_cost" env:"NOTES_BCRYPT_COST" env-default:"10"`
}

// Validate проверяет настройки токенов.
func (c *JWTConfig) Validate() error {
	if len(c.SecretKey) < MinSecretKeyLength {
		return ErrShortSecretKey
	}
	if c.AccessTokenTTL <= 0 || c.RefreshTokenTTL <= 0 {
		return ErrInvalidTTL
	}
	return nil
}

// Domain преобразует настройки в доменную конфигурацию JWT сервиса.
func (c *JWTConfig) Domain() services.JWTConfig {
	return services.JWTConfig{
		SecretKey:       []byte(c.SecretKey),
		Issuer:          c.Issuer,
		AccessTokenTTL:  c.AccessTokenTTL,
		RefreshTokenTTL: c.RefreshTokenTTL,
	}
}
