// Package health содержит HTTP обработчик проверки здоровья.
package health

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"gonotes/internal/notes/adapters/http/middleware"
	"gonotes/internal/notes/domain/services"
	"gonotes/internal/notes/ports/api"
)

// Response - тело ответа проверки здоровья.
type Response struct {
	Status     string            `json:"status"`
	Components map[string]string `json:"components"`
}

// Handler отдает состояние зависимостей сервиса.
type Handler struct {
	health api.HealthUseCase
}

// NewHandler создает обработчик проверки здоровья.
func NewHandler(health api.HealthUseCase) *Handler {
	return &Handler{health: health}
}

// Check отвечает 200, если все зависимости доступны, иначе 503.
func (h *Handler) Check(ctx fiber.Ctx) error {
	report := h.health.Check(middleware.RequestContext(ctx))

	status, code := services.HealthStatusUp, fiber.StatusOK
	if !report.Healthy {
		status, code = services.HealthStatusDown, fiber.StatusServiceUnavailable
	}

	if err := ctx.Status(code).JSON(Response{Status: status, Components: report.Components}); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}
