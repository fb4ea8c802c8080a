package api

import (
	"context"

	"gonotes/internal/notes/domain/services"
)

// HealthUseCase проверяет доступность зависимостей сервиса.
type HealthUseCase interface {
	Check(ctx context.Context) services.HealthReport
}
