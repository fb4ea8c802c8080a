package api

import (
	"context"

	"gonotes/internal/notes/domain/entities"
)

// UserUseCase определяет операции с учетными записями.
type UserUseCase interface {
	Register(ctx context.Context, username, password string) (*entities.User, error)

	GetUserProfile(ctx context.Context, userID string) (*entities.User, error)
}
