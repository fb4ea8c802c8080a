package app

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"gonotes/internal/notes/domain/services"
	"gonotes/internal/notes/ports/api"
	"gonotes/pkg/logger"
)

// DefaultCheckTimeout ограничивает одну проверку зависимости.
const DefaultCheckTimeout = 2 * time.Second

// Dependency - именованная проверка внешней зависимости.
type Dependency struct {
	Name  string
	Check func(ctx context.Context) error
}

// HealthUseCaseImpl реализует интерфейс HealthUseCase.
type HealthUseCaseImpl struct {
	timeout      time.Duration
	dependencies []Dependency
}

// NewHealthUseCase создает сервис проверки здоровья.
func NewHealthUseCase(timeout time.Duration, dependencies ...Dependency) api.HealthUseCase {
	if timeout <= 0 {
		timeout = DefaultCheckTimeout
	}
	return &HealthUseCaseImpl{timeout: timeout, dependencies: dependencies}
}

// Check опрашивает все зависимости параллельно. Отказ одной зависимости
// не прерывает остальные: в отчет попадает каждая.
func (h *HealthUseCaseImpl) Check(ctx context.Context) services.HealthReport {
	report := services.HealthReport{
		Healthy:    true,
		Components: make(map[string]string, len(h.dependencies)),
	}

	var (
		mu sync.Mutex
		g  errgroup.Group
	)
	for _, dep := range h.dependencies {
		g.Go(func() error {
			checkCtx, cancel := context.WithTimeout(ctx, h.timeout)
			defer cancel()

			status := services.HealthStatusUp
			if err := dep.Check(checkCtx); err != nil {
				logger.Log(ctx).Warn(ctx, "health check failed", zap.String("component", dep.Name), zap.Error(err))
				status = services.HealthStatusDown
			}

			mu.Lock()
			defer mu.Unlock()
			report.Components[dep.Name] = status
			if status != services.HealthStatusUp {
				report.Healthy = false
			}
			return nil
		})
	}
	_ = g.Wait()

	return report
}
