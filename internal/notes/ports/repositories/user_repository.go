package repositories

import (
	"context"

	"gonotes/internal/notes/domain/entities"
)

// UserRepository определяет операции хранилища пользователей.
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) (*entities.User, error)
	FindByID(ctx context.Context, id string) (*entities.User, error)
	FindByUsername(ctx context.Context, username string) (*entities.User, error)
}
