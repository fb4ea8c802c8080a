// Package users содержит HTTP-обработчики учетных записей.
package users

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"gonotes/internal/notes/adapters/http/dto"
	"gonotes/internal/notes/adapters/http/middleware"
	"gonotes/internal/notes/adapters/http/request"
	"gonotes/internal/notes/adapters/http/response"
	"gonotes/internal/notes/domain/services"
	"gonotes/internal/notes/ports/api"
	"gonotes/pkg/logger"
)

// Константы для логирования.
const (
	LogHandlerRegister   = "users handler: register"
	LogHandlerGetProfile = "users handler: get profile"
)

// Handler содержит HTTP обработчики пользователей.
type Handler struct {
	users api.UserUseCase
}

// NewHandler создает новый экземпляр обработчика пользователей.
func NewHandler(users api.UserUseCase) *Handler {
	return &Handler{users: users}
}

// Register обрабатывает запрос на регистрацию нового пользователя.
func (h *Handler) Register(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx)
	log.Debug(requestCtx, LogHandlerRegister)

	var req dto.RegisterRequest
	if err := request.Decode(ctx, &req); err != nil {
		log.Debug(requestCtx, "invalid registration payload", zap.Error(err))
		return response.Error(ctx, err)
	}

	user, err := h.users.Register(requestCtx, req.Username, req.Password)
	if err != nil {
		log.Debug(requestCtx, "registration failed", zap.Error(err))
		return response.Error(ctx, err)
	}

	if err := ctx.Status(fiber.StatusCreated).JSON(dto.UserFromEntity(user)); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// GetProfile возвращает профиль текущего пользователя.
func (h *Handler) GetProfile(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx)
	log.Debug(requestCtx, LogHandlerGetProfile)

	identity, ok := middleware.IdentityFrom(ctx)
	if !ok {
		return response.Error(ctx, services.ErrUnauthenticated)
	}

	user, err := h.users.GetUserProfile(requestCtx, identity.UserID)
	if err != nil {
		log.Error(requestCtx, "failed to get profile", zap.Error(err))
		return response.Error(ctx, err)
	}

	if err := ctx.JSON(dto.UserFromEntity(user)); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}
