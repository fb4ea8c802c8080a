package api

import (
	"context"

	"gonotes/internal/notes/domain/services"
)

// AuthUseCase определяет операции выдачи и проверки токенов.
type AuthUseCase interface {
	Login(ctx context.Context, username, password string) (*services.TokenPair, error)

	RefreshTokens(ctx context.Context, refreshToken string) (*services.TokenPair, error)

	Logout(ctx context.Context, refreshToken string) error

	Authenticate(ctx context.Context, accessToken string) (services.Identity, error)
}
