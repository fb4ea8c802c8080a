package app_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"gonotes/internal/notes/app"
	"gonotes/internal/notes/domain/services"
)

func TestHealthCheck(t *testing.T) {
	up := func(context.Context) error { return nil }
	down := func(context.Context) error { return ErrDatabaseOperation }
	slow := func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	}

	tests := []struct {
		name         string
		dependencies []app.Dependency
		healthy      bool
		components   map[string]string
	}{
		{
			name:         "all dependencies up",
			dependencies: []app.Dependency{{Name: "postgres", Check: up}, {Name: "redis", Check: up}},
			healthy:      true,
			components:   map[string]string{"postgres": services.HealthStatusUp, "redis": services.HealthStatusUp},
		},
		{
			name:         "one dependency down",
			dependencies: []app.Dependency{{Name: "postgres", Check: down}, {Name: "redis", Check: up}},
			healthy:      false,
			components:   map[string]string{"postgres": services.HealthStatusDown, "redis": services.HealthStatusUp},
		},
		{
			name:         "timeout counts as down",
			dependencies: []app.Dependency{{Name: "redis", Check: slow}},
			healthy:      false,
			components:   map[string]string{"redis": services.HealthStatusDown},
		},
		{
			name:       "no dependencies",
			healthy:    true,
			components: map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := app.NewHealthUseCase(50*time.Millisecond, tt.dependencies...).Check(context.Background())

			assert.Equal(t, tt.healthy, report.Healthy)
			assert.Equal(t, tt.components, report.Components)
		})
	}
}

func TestHealthCheckRunsConcurrently(t *testing.T) {
	var started sync.WaitGroup
	started.Add(2)
	// Каждая проверка ждет старта второй: последовательный опрос упрется в таймаут.
	rendezvous := func(ctx context.Context) error {
		started.Done()
		done := make(chan struct{})
		go func() {
			started.Wait()
			close(done)
		}()
		select {
		case <-done:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	failing := func(context.Context) error { return ErrDatabaseOperation }

	report := app.NewHealthUseCase(time.Second,
		app.Dependency{Name: "postgres", Check: rendezvous},
		app.Dependency{Name: "redis", Check: rendezvous},
		app.Dependency{Name: "broken", Check: failing},
	).Check(context.Background())

	assert.False(t, report.Healthy)
	assert.Equal(t, map[string]string{
		"postgres": services.HealthStatusUp,
		"redis":    services.HealthStatusUp,
		"broken":   services.HealthStatusDown,
	}, report.Components)
}
