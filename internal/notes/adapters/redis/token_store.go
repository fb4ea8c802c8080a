// Package redis хранит refresh-токены в Redis.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"gonotes/internal/notes/domain/services"
	"gonotes/internal/notes/ports/repositories"
	"gonotes/pkg/logger"
)

// KeyPrefix - префикс ключей refresh-токенов.
const KeyPrefix = "refresh_token:"

// ErrTokenAlreadyExpired возвращается при попытке сохранить истекший токен.
var ErrTokenAlreadyExpired = errors.New("refresh token already expired")

// TokenStore реализует repositories.TokenRepository поверх Redis.
// Ключ живет ровно до истечения токена, отзыв удаляет ключ.
type TokenStore struct {
	client redis.Cmdable
}

// NewTokenStore создает хранилище refresh-токенов.
func NewTokenStore(client redis.Cmdable) repositories.TokenRepository {
	return &TokenStore{client: client}
}

func tokenKey(tokenID string) string {
	return KeyPrefix + tokenID
}

// StoreRefreshToken сохраняет токен с TTL до его истечения.
func (s *TokenStore) StoreRefreshToken(ctx context.Context, token *services.RefreshToken) error {
	log := logger.Log(ctx).With(
		zap.String("method", "TokenStore.StoreRefreshToken"),
		zap.String("userID", token.UserID),
	)

	ttl := time.Until(token.ExpiresAt)
	if ttl <= 0 {
		log.Debug(ctx, "refusing to store expired token")
		return ErrTokenAlreadyExpired
	}

	if err := s.client.Set(ctx, tokenKey(token.ID), token.UserID, ttl).Err(); err != nil {
		log.Error(ctx, "failed to store refresh token", zap.Error(err))
		return fmt.Errorf("failed to store refresh token: %w", err)
	}

	log.Debug(ctx, "refresh token stored", zap.Duration("ttl", ttl))
	return nil
}

// ConsumeRefreshToken читает и удаляет токен одной транзакцией MULTI/EXEC (GETDEL).
// Повторное или одновременное потребление того же токена получает services.ErrRevokedRefreshToken.
func (s *TokenStore) ConsumeRefreshToken(ctx context.Context, tokenID string) (*services.RefreshToken, error) {
	log := logger.Log(ctx).With(zap.String("method", "TokenStore.ConsumeRefreshToken"))

	var (
		ttl *redis.DurationCmd
		get *redis.StringCmd
	)
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		ttl = pipe.PTTL(ctx, tokenKey(tokenID))
		get = pipe.GetDel(ctx, tokenKey(tokenID))
		return nil
	})
	if err != nil && !errors.Is(err, redis.Nil) {
		log.Error(ctx, "failed to consume refresh token", zap.Error(err))
		return nil, fmt.Errorf("failed to consume refresh token: %w", err)
	}

	userID, err := get.Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			log.Debug(ctx, "refresh token not found")
			return nil, services.ErrRevokedRefreshToken
		}
		return nil, fmt.Errorf("failed to read refresh token: %w", err)
	}

	token := &services.RefreshToken{ID: tokenID, UserID: userID}
	if remaining, err := ttl.Result(); err == nil && remaining > 0 {
		token.ExpiresAt = time.Now().Add(remaining)
	}

	log.Debug(ctx, "refresh token consumed", zap.String("userID", userID))
	return token, nil
}

// RevokeRefreshToken удаляет токен. Отзыв отсутствующего токена не является ошибкой.
func (s *TokenStore) RevokeRefreshToken(ctx context.Context, tokenID string) error {
	log := logger.Log(ctx).With(zap.String("method", "TokenStore.RevokeRefreshToken"))

	deleted, err := s.client.Del(ctx, tokenKey(tokenID)).Result()
	if err != nil {
		log.Error(ctx, "failed to revoke refresh token", zap.Error(err))
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}

	log.Debug(ctx, "refresh token revoked", zap.Int64("deleted", deleted))
	return nil
}
