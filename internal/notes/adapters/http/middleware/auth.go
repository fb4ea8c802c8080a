package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"gonotes/internal/notes/adapters/http/response"
	"gonotes/internal/notes/domain/services"
	"gonotes/internal/notes/ports/api"
	"gonotes/pkg/logger"
)

// Константы для логирования.
const (
	LogAuthMiddleware = "auth middleware"

	ErrorNoAuthHeader       = "no authorization header provided"
	ErrorInvalidTokenFormat = "invalid token format"
	ErrorInvalidToken       = "invalid access token"

	identityKey  = "identity"
	bearerPrefix = "bearer "
)

// NewAuthMiddleware проверяет Bearer токен и сохраняет личность пользователя в запросе.
// Без валидного токена запрос завершается ответом 401.
func NewAuthMiddleware(authUseCase api.AuthUseCase) fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestCtx := RequestContext(ctx)
		log := logger.Log(requestCtx).With(zap.String("middleware", "auth"))
		log.Debug(requestCtx, LogAuthMiddleware)

		authHeader := ctx.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			log.Debug(requestCtx, ErrorNoAuthHeader)
			return response.Error(ctx, services.ErrUnauthenticated)
		}

		if len(authHeader) <= len(bearerPrefix) || !strings.EqualFold(authHeader[:len(bearerPrefix)], bearerPrefix) {
			log.Debug(requestCtx, ErrorInvalidTokenFormat)
			return response.Error(ctx, services.ErrUnauthenticated)
		}

		identity, err := authUseCase.Authenticate(requestCtx, strings.TrimSpace(authHeader[len(bearerPrefix):]))
		if err != nil {
			log.Debug(requestCtx, ErrorInvalidToken, zap.Error(err))
			return response.Error(ctx, err)
		}

		ctx.Locals(identityKey, identity)
		ctx.Locals(userContextKey, logger.NewContext(requestCtx, logger.Log(requestCtx).With(zap.String("userID", identity.UserID))))

		return ctx.Next()
	}
}

// IdentityFrom возвращает личность, установленную NewAuthMiddleware.
func IdentityFrom(ctx fiber.Ctx) (services.Identity, bool) {
	identity, ok := ctx.Locals(identityKey).(services.Identity)
	if !ok || identity.UserID == "" {
		return services.Identity{}, false
	}
	return identity, true
}
