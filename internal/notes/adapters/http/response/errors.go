// Package response формирует HTTP ответы об ошибках.
package response

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v3"

	"gonotes/internal/notes/domain/entities"
	"gonotes/internal/notes/domain/services"
)

// Сообщения об ошибках, отдаваемые клиенту.
const (
	MsgValidationFailed = "validation failed"
	MsgUnauthenticated  = "authentication credentials were not provided or are invalid"
	MsgInvalidLogin     = "invalid username or password"
	MsgNotFound         = "not found"
	MsgUsernameTaken    = "user with this username already exists"
	MsgInternal         = "internal server error"
)

// ErrorBody - тело ответа об ошибке.
type ErrorBody struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// Classify сопоставляет ошибку с HTTP статусом и телом ответа.
func Classify(err error) (int, ErrorBody) {
	var verr *entities.ValidationError
	switch {
	case errors.As(err, &verr):
		return fiber.StatusBadRequest, ErrorBody{Error: MsgValidationFailed, Fields: verr.Fields}
	case errors.Is(err, entities.ErrInvalidCredentials):
		return fiber.StatusUnauthorized, ErrorBody{Error: MsgInvalidLogin}
	case errors.Is(err, services.ErrUnauthenticated),
		errors.Is(err, services.ErrInvalidRefreshToken),
		errors.Is(err, services.ErrRevokedRefreshToken):
		return fiber.StatusUnauthorized, ErrorBody{Error: MsgUnauthenticated}
	case errors.Is(err, entities.ErrNoteNotFound),
		errors.Is(err, entities.ErrUserNotFound):
		return fiber.StatusNotFound, ErrorBody{Error: MsgNotFound}
	case errors.Is(err, entities.ErrUsernameTaken):
		return fiber.StatusConflict, ErrorBody{Error: MsgUsernameTaken}
	default:
		return fiber.StatusInternalServerError, ErrorBody{Error: MsgInternal}
	}
}

// Error отправляет ответ, соответствующий ошибке err.
func Error(ctx fiber.Ctx, err error) error {
	status, body := Classify(err)
	if status == fiber.StatusUnauthorized {
		ctx.Set(fiber.HeaderWWWAuthenticate, "Bearer")
	}

	if err := ctx.Status(status).JSON(body); err != nil {
		return fmt.Errorf("error sending %d response: %w", status, err)
	}
	return nil
}
