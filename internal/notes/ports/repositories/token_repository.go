package repositories

import (
	"context"

	"gonotes/internal/notes/domain/services"
)

// TokenRepository хранит выданные refresh-токены до их отзыва или истечения.
type TokenRepository interface {
	StoreRefreshToken(ctx context.Context, token *services.RefreshToken) error
	// ConsumeRefreshToken атомарно извлекает и удаляет токен: из нескольких
	// одновременных вызовов успешен только один. Для отозванного или
	// неизвестного токена возвращает services.ErrRevokedRefreshToken.
	ConsumeRefreshToken(ctx context.Context, tokenID string) (*services.RefreshToken, error)
	RevokeRefreshToken(ctx context.Context, tokenID string) error
}
